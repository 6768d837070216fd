package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mithrel/gemchat/internal/answer"
)

// WritePlainAnswer writes one node per line. Headings are bold when w is a
// terminal and are separated from the preceding paragraph by a blank line.
func WritePlainAnswer(w io.Writer, r Result) error {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	for i, n := range r.Nodes {
		line := n.Text
		if n.Kind == answer.KindHeading {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			line = heading.Render(n.Text)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
