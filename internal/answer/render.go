package answer

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind is the visual class of a display node.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "heading":
		*k = KindHeading
	case "paragraph":
		*k = KindParagraph
	default:
		return fmt.Errorf("unknown node kind %q", string(b))
	}
	return nil
}

// Node is one rendered line of an answer.
type Node struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

func Heading(text string) Node   { return Node{Kind: KindHeading, Text: text} }
func Paragraph(text string) Node { return Node{Kind: KindParagraph, Text: text} }

// Renderer turns raw answer text into display nodes.
type Renderer func(answer string) []Node

const headingMarker = "##"

// Render maps each line of answer to a node: lines starting with "##" become
// headings with the marker and following whitespace removed, other
// non-blank lines become paragraphs with their text untouched, and blank
// lines are dropped.
func Render(answer string) []Node {
	lines := strings.Split(answer, "\n")
	nodes := make([]Node, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, headingMarker):
			nodes = append(nodes, Heading(strings.TrimLeftFunc(line[len(headingMarker):], unicode.IsSpace)))
		case strings.TrimSpace(line) != "":
			nodes = append(nodes, Paragraph(line))
		}
	}
	return nodes
}

// ParseRenderer resolves a renderer name: "lines" or "markdown".
func ParseRenderer(name string) (Renderer, bool) {
	switch name {
	case "", "lines":
		return Render, true
	case "markdown":
		return RenderMarkdown, true
	default:
		return nil, false
	}
}
