package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mithrel/gemchat/internal/answer"
)

// WritePrettyAnswer writes the question as a quote followed by the answer
// nodes, colored with the named glamour style and wrapped at wrap columns.
// Node text is printed as is; it is never parsed as markdown again.
func WritePrettyAnswer(w io.Writer, r Result, style string, wrap int) error {
	re := lipgloss.NewRenderer(w)
	cfg, err := glamourStyle(re, style)
	if err != nil {
		return err
	}

	margin := 2
	if cfg.Document.Margin != nil {
		margin = int(*cfg.Document.Margin)
	}
	width := max(20, wrap-margin)
	base := re.NewStyle().PaddingLeft(margin)

	heading := applyPrimitive(base, cfg.Heading.StylePrimitive)
	heading = applyPrimitive(heading, cfg.H3.StylePrimitive).Width(width)
	body := applyPrimitive(base, cfg.Paragraph.StylePrimitive).Width(width)
	quote := applyPrimitive(base, cfg.BlockQuote.StylePrimitive).Width(width)

	blocks := make([]string, 0, len(r.Nodes)+1)
	if q := strings.TrimSpace(r.Question); q != "" {
		blocks = append(blocks, quote.Render("│ "+q), "")
	}
	for i, n := range r.Nodes {
		if n.Kind == answer.KindHeading {
			if i > 0 {
				blocks = append(blocks, "")
			}
			blocks = append(blocks, heading.Render(n.Text))
			continue
		}
		blocks = append(blocks, body.Render(n.Text))
	}

	_, err = io.WriteString(w, "\n"+strings.Join(blocks, "\n")+"\n\n")
	return err
}

// glamourStyle resolves a standard glamour style name. "auto" picks dark or
// light from the terminal background.
func glamourStyle(re *lipgloss.Renderer, name string) (*ansi.StyleConfig, error) {
	if name == styles.AutoStyle {
		name = styles.LightStyle
		if re.HasDarkBackground() {
			name = styles.DarkStyle
		}
	}
	cfg, ok := styles.DefaultStyles[name]
	if !ok {
		return nil, fmt.Errorf("%s: style not found", name)
	}
	return cfg, nil
}

func applyPrimitive(s lipgloss.Style, p ansi.StylePrimitive) lipgloss.Style {
	if p.Color != nil {
		s = s.Foreground(lipgloss.Color(*p.Color))
	}
	if p.BackgroundColor != nil {
		s = s.Background(lipgloss.Color(*p.BackgroundColor))
	}
	if p.Bold != nil {
		s = s.Bold(*p.Bold)
	}
	if p.Italic != nil {
		s = s.Italic(*p.Italic)
	}
	if p.Underline != nil {
		s = s.Underline(*p.Underline)
	}
	if p.Faint != nil {
		s = s.Faint(*p.Faint)
	}
	return s
}
