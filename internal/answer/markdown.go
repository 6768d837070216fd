package answer

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// RenderMarkdown parses answer as CommonMark and keeps only headings and
// paragraphs. Headings of every level become heading nodes. Paragraphs,
// list items and quoted text become paragraph nodes, code blocks yield one
// paragraph per non-blank line, and raw HTML is dropped. Inline markup is
// flattened to its text.
func RenderMarkdown(answer string) []Node {
	src := []byte(answer)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var nodes []Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			nodes = append(nodes, Heading(inlineText(n, src)))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			if t := inlineText(n, src); t != "" {
				nodes = append(nodes, Paragraph(t))
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				line := strings.TrimRight(string(seg.Value(src)), "\r\n")
				if strings.TrimSpace(line) != "" {
					nodes = append(nodes, Paragraph(line))
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return nodes
}

func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	writeInline(&b, n, src)
	return strings.TrimSpace(b.String())
}

func writeInline(b *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.Label(src))
		case *ast.RawHTML:
			// dropped
		default:
			writeInline(b, c, src)
		}
	}
}
