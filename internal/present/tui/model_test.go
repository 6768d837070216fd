package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mithrel/gemchat/internal/answer"
	mock_genai "github.com/mithrel/gemchat/internal/mocks/genai"
	"github.com/mithrel/gemchat/internal/prompt"
	"github.com/mithrel/gemchat/internal/session"
)

func newTestModel(t *testing.T, opts Options) (model, *mock_genai.MockGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gen := mock_genai.NewMockGenerator(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := session.NewResponder(session.New(), gen, logger)
	return newModel(context.Background(), r, opts), gen
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestInitialViewShowsGreetingAndCards(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	view := m.View()
	assert.Contains(t, view, title)
	assert.Contains(t, view, greeting)
	assert.Contains(t, view, subtitle)
	for _, c := range prompt.Cards {
		assert.Contains(t, view, c.Text)
	}
	assert.Contains(t, view, disclaimer)
}

func TestEnterWithBlankInputDoesNothing(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.input.SetValue("   ")
	m, cmd := update(t, m, key("enter"))
	assert.Nil(t, cmd)
	assert.False(t, m.resp.Session().ResultVisible())
	assert.IsType(t, session.Idle{}, m.resp.Session().State())
}

func TestEnterStartsRequestAndAnswerRenders(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.input.SetValue("cats")

	m, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.resp.Session().Loading())
	view := m.View()
	assert.Contains(t, view, "cats")
	assert.Contains(t, view, m.spin.View())
	assert.NotContains(t, view, greeting)
	assert.Equal(t, "cats", m.input.Value())

	req := session.Request{Ticket: 1, Question: "cats", Text: "cats"}
	m, _ = update(t, m, answerMsg{req: req, text: "## Intro\nHello world"})
	assert.False(t, m.resp.Session().Loading())
	view = m.View()
	assert.Contains(t, view, "Intro")
	assert.Contains(t, view, "Hello world")
	assert.NotContains(t, view, "##")
	assert.NotContains(t, view, m.spin.View())

	// A follow-up question hides the previous answer behind the spinner.
	m.input.SetValue("dogs")
	m, _ = update(t, m, key("enter"))
	require.True(t, m.resp.Session().Loading())
	view = m.View()
	assert.Contains(t, view, m.spin.View())
	assert.Contains(t, view, "dogs")
	assert.NotContains(t, view, "Hello world")
	assert.NotContains(t, view, m.vp.View())
}

func TestFailedAnswerShowsApology(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.input.SetValue("Explain quantum computing")
	m, _ = update(t, m, key("enter"))

	req := session.Request{Ticket: 1, Question: "Explain quantum computing"}
	m, _ = update(t, m, answerMsg{req: req, err: errors.New("boom")})
	assert.Contains(t, m.View(), session.FailureMessage)
	assert.True(t, m.resp.Session().ResultVisible())
}

func TestStaleAnswerIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.input.SetValue("first question")
	m, _ = update(t, m, key("enter"))
	m.input.SetValue("second question")
	m, _ = update(t, m, key("enter"))

	stale := session.Request{Ticket: 1, Question: "first question"}
	m, _ = update(t, m, answerMsg{req: stale, text: "old"})
	assert.True(t, m.resp.Session().Loading())
	assert.Equal(t, "second question", m.resp.Session().Question())

	fresh := session.Request{Ticket: 2, Question: "second question"}
	m, _ = update(t, m, answerMsg{req: fresh, text: "new"})
	assert.Equal(t, "new", m.resp.Session().Answer())
}

func TestCardKeysPrefillInput(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = update(t, m, key("2"))
	assert.Equal(t, prompt.Cards[1].Text, m.input.Value())

	// With text present the digit is typed into the input.
	m, _ = update(t, m, key("3"))
	assert.Equal(t, prompt.Cards[1].Text+"3", m.input.Value())
}

func TestTabCyclesCards(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	for i := range prompt.Cards {
		m, _ = update(t, m, key("tab"))
		assert.Equal(t, prompt.Cards[i].Text, m.input.Value())
	}
	m, _ = update(t, m, key("tab"))
	assert.Equal(t, prompt.Cards[0].Text, m.input.Value())
}

func TestAutoSubmit(t *testing.T) {
	m, _ := newTestModel(t, Options{Question: "cats", Submit: true})
	assert.NotNil(t, m.startCmd)
	assert.True(t, m.resp.Session().Loading())
	assert.Equal(t, "cats", m.resp.Session().Question())
}

func TestEscQuitsAndCancels(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, cmd := update(t, m, key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Error(t, m.ctx.Err())
}

func TestMarkdownRenderer(t *testing.T) {
	m, _ := newTestModel(t, Options{Renderer: answer.RenderMarkdown})
	m.input.SetValue("list please")
	m, _ = update(t, m, key("enter"))
	req := session.Request{Ticket: 1, Question: "list please"}
	m, _ = update(t, m, answerMsg{req: req, text: "# Title\n\n- one\n- **two**"})
	view := m.View()
	assert.Contains(t, view, "Title")
	assert.Contains(t, view, "one")
	assert.Contains(t, view, "two")
	assert.NotContains(t, view, "**")
}

func TestFetchCmdCallsGenerator(t *testing.T) {
	m, gen := newTestModel(t, Options{})
	gen.EXPECT().Generate(gomock.Any(), "cats").Return("meow", nil)

	req, ok := m.resp.Start("cats")
	require.True(t, ok)
	msg := fetchCmd(context.Background(), m.resp, req)()
	am, ok := msg.(answerMsg)
	require.True(t, ok)
	assert.Equal(t, "meow", am.text)
	assert.NoError(t, am.err)
}
