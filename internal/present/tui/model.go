package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/gemchat/internal/answer"
	"github.com/mithrel/gemchat/internal/prompt"
	"github.com/mithrel/gemchat/internal/session"
)

const (
	title       = "Gemini"
	greeting    = "Hello, Dev."
	subtitle    = "How can I help you today?"
	placeholder = "Enter a prompt here"
	disclaimer  = "Gemini may display inaccurate info, including about people, so double-check its responses."
)

// Options configure the chat screen.
type Options struct {
	// Question pre-fills the input box.
	Question string
	// Submit sends Question as soon as the screen opens.
	Submit   bool
	Renderer answer.Renderer
}

// Run opens the chat screen and blocks until the user quits. Cancelling
// ctx aborts an in-flight request.
func Run(ctx context.Context, r *session.Responder, opts Options) error {
	m := newModel(ctx, r, opts)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	resp     *session.Responder
	render   answer.Renderer
	input    textinput.Model
	spin     spinner.Model
	vp       viewport.Model
	styles   styles
	card     int
	width    int
	height   int
	lastDur  time.Duration
	startCmd tea.Cmd
}

func newModel(ctx context.Context, r *session.Responder, opts Options) model {
	ctx, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Width = 76
	ti.SetValue(opts.Question)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	render := opts.Renderer
	if render == nil {
		render = answer.Render
	}

	m := model{
		ctx:    ctx,
		cancel: cancel,
		resp:   r,
		render: render,
		input:  ti,
		spin:   sp,
		vp:     viewport.New(80, 10),
		styles: defaultStyles(),
		card:   -1,
	}
	if opts.Submit {
		m.startCmd = m.submit()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startCmd)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		m.refresh()
		return m, nil
	case answerMsg:
		// Stale tickets are dropped inside Finish.
		if err := m.resp.Finish(msg.req, msg.text, msg.err); err == nil {
			m.lastDur = msg.dur
			m.refresh()
		}
		return m, nil
	case spinner.TickMsg:
		if !m.resp.Session().Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "enter":
			return m, m.submit()
		case "tab":
			if !m.resp.Session().ResultVisible() {
				m.pickCard((m.card + 1) % len(prompt.Cards))
				return m, nil
			}
		case "pgup":
			m.vp.LineUp(max(1, m.vp.Height-1))
			return m, nil
		case "pgdown":
			m.vp.LineDown(max(1, m.vp.Height-1))
			return m, nil
		case "1", "2", "3", "4":
			if m.input.Value() == "" && !m.resp.Session().ResultVisible() {
				m.pickCard(int(msg.Runes[0] - '1'))
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a request for the current input. Blank input is ignored.
func (m *model) submit() tea.Cmd {
	req, ok := m.resp.Start(m.input.Value())
	if !ok {
		return nil
	}
	m.refresh()
	return tea.Batch(fetchCmd(m.ctx, m.resp, req), m.spin.Tick)
}

func (m *model) pickCard(i int) {
	if i < 0 || i >= len(prompt.Cards) {
		return
	}
	m.card = i
	m.input.SetValue(prompt.Cards[i].Text)
	m.input.CursorEnd()
}

func (m *model) applyLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.input.Width = max(10, m.width-4)
	m.vp.Width = max(20, m.width-2)
	// nav, question, input, disclaimer and the blank lines between them
	m.vp.Height = max(3, m.height-9)
}

// refresh re-renders the current answer into the viewport.
func (m *model) refresh() {
	m.vp.SetContent(m.renderAnswer(m.resp.Session().Answer()))
	m.vp.GotoTop()
}

func (m model) renderAnswer(text string) string {
	nodes := m.render(text)
	lines := make([]string, 0, len(nodes))
	body := m.styles.body.Width(max(20, m.vp.Width-1))
	for i, n := range nodes {
		if n.Kind == answer.KindHeading {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, m.styles.heading.Render(n.Text))
			continue
		}
		lines = append(lines, body.Render(n.Text))
	}
	return strings.Join(lines, "\n")
}

func (m model) cardsView() string {
	rows := make([]string, 0, len(prompt.Cards))
	for i, c := range prompt.Cards {
		st := m.styles.card
		if i == m.card {
			st = m.styles.cardActive
		}
		rows = append(rows, st.Render(fmt.Sprintf("%d  %s  %s", i+1, cardIcon(c), c.Text)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m model) renderFooter() string {
	left := "enter=send • tab=cards • pgup/pgdown=scroll • esc=quit"
	if m.lastDur <= 0 {
		return m.styles.status.Render(left)
	}
	return m.styles.status.Render(fmt.Sprintf("%s • last answer in %s", left, m.lastDur.Round(time.Millisecond)))
}

func (m model) View() string {
	s := m.resp.Session()

	var b strings.Builder
	b.WriteString(m.styles.nav.Render(title))
	b.WriteString("\n\n")
	if !s.ResultVisible() {
		b.WriteString(m.styles.greeting.Render(greeting))
		b.WriteString("\n")
		b.WriteString(m.styles.subtitle.Render(subtitle))
		b.WriteString("\n\n")
		b.WriteString(m.cardsView())
	} else {
		b.WriteString(m.styles.question.Render(s.Question()))
		b.WriteString("\n\n")
		if s.Loading() {
			b.WriteString(m.spin.View())
		} else {
			b.WriteString(m.vp.View())
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.disclaimer.Render(disclaimer))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")
	return b.String()
}
