// Package markdown bridges a Goldmark AST into the docmodel event stream.
//
// It exists so the renderer has a real upstream parser collaborator without
// owning a markup grammar: Goldmark parses, this package flattens the AST
// into ordered structural events and converts inline spans to the HTML-tag
// form the render package's inline scanner expects (<b>/<i>/<tt> plus
// pattern-recognized link spans).
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docrender/docmodel"
)

// inlineEscaper escapes text content the way the upstream inline formatter
// contract requires: entities for markup-significant characters, but a raw
// apostrophe so the typographic scanner can still pick quote direction.
var inlineEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// ToNodes parses a Markdown body (frontmatter already removed) and flattens
// it into docmodel events.
func ToNodes(body []byte) ([]docmodel.Node, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var nodes []docmodel.Node
	flattenBlocks(root, body, &nodes)
	return nodes, nil
}

// flattenBlocks appends the events for every block child of n, in order.
func flattenBlocks(n gmast.Node, body []byte, out *[]docmodel.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if hb, ok := c.(interface{ HasBlankPreviousLines() bool }); ok {
			if hb.HasBlankPreviousLines() && len(*out) > 0 {
				*out = append(*out, docmodel.Blank())
			}
		}

		switch node := c.(type) {
		case *gmast.Heading:
			*out = append(*out, docmodel.Heading(node.Level, inlineText(node, body)))
		case *gmast.Paragraph:
			*out = append(*out, docmodel.Paragraph(inlineText(node, body)))
		case *gmast.TextBlock:
			*out = append(*out, docmodel.Paragraph(inlineText(node, body)))
		case *gmast.CodeBlock:
			*out = append(*out, docmodel.Verbatim(blockLines(node, body)))
		case *gmast.FencedCodeBlock:
			*out = append(*out, docmodel.Verbatim(blockLines(node, body)))
		case *gmast.ThematicBreak:
			*out = append(*out, docmodel.Rule(1))
		case *gmast.HTMLBlock:
			*out = append(*out, docmodel.Raw(strings.Split(strings.TrimRight(blockLines(node, body), "\n"), "\n")...))
		case *gmast.List:
			listType := docmodel.ListBullet
			if node.IsOrdered() {
				listType = docmodel.ListNumber
			}
			*out = append(*out, docmodel.ListStart(listType))
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				*out = append(*out, docmodel.ListItemStart())
				flattenBlocks(item, body, out)
				*out = append(*out, docmodel.ListItemEnd())
			}
			*out = append(*out, docmodel.ListEnd(listType))
		default:
			// Unmapped containers (e.g. blockquotes) degrade to their
			// flattened children rather than disappearing.
			flattenBlocks(c, body, out)
		}
	}
}

// blockLines joins the source lines of a leaf block.
func blockLines(n gmast.Node, body []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(body))
	}
	return b.String()
}

// inlineText flattens the inline children of a block into the renderer's
// upstream-formatted text form.
func inlineText(n gmast.Node, body []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeInline(&b, c, body)
	}
	return b.String()
}

func writeInline(b *strings.Builder, n gmast.Node, body []byte) {
	switch node := n.(type) {
	case *gmast.Text:
		b.WriteString(inlineEscaper.Replace(string(node.Segment.Value(body))))
		if node.SoftLineBreak() || node.HardLineBreak() {
			b.WriteByte(' ')
		}
	case *gmast.String:
		b.WriteString(inlineEscaper.Replace(string(node.Value)))
	case *gmast.Emphasis:
		tag := "i"
		if node.Level >= 2 {
			tag = "b"
		}
		b.WriteString("<" + tag + ">")
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			writeInline(b, c, body)
		}
		b.WriteString("</" + tag + ">")
	case *gmast.CodeSpan:
		b.WriteString("<tt>")
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*gmast.Text); ok {
				b.WriteString(inlineEscaper.Replace(string(t.Segment.Value(body))))
			}
		}
		b.WriteString("</tt>")
	case *gmast.Link:
		// Hand the span to the renderer's labeled-link recognition.
		b.WriteByte('{')
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			writeInline(b, c, body)
		}
		b.WriteString("}[")
		b.Write(node.Destination)
		b.WriteByte(']')
	case *gmast.AutoLink:
		b.Write(node.URL(body))
	case *gmast.Image:
		b.WriteString(`<img src="`)
		b.Write(node.Destination)
		b.WriteString(`" />`)
	case *gmast.RawHTML:
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			b.Write(seg.Value(body))
		}
	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			writeInline(b, c, body)
		}
	}
}
