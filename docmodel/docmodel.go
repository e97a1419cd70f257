// Package docmodel defines the structural node events produced by an upstream
// markup parser and consumed by the render package.
//
// A document is an ordered, read-only sequence of Node values. The model
// deliberately carries no tree links; nesting (lists) is expressed through
// paired start/end events so that a renderer can process the stream in one
// pass without owning parser memory.
package docmodel

import "fmt"

// NodeKind identifies the structural variant of a Node.
type NodeKind int

const (
	KindParagraph NodeKind = iota
	KindVerbatim
	KindRule
	KindListStart
	KindListEnd
	KindListItemStart
	KindListItemEnd
	KindBlank
	KindHeading
	KindRaw
)

// String returns the kind name used in logs and metrics labels.
func (k NodeKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindVerbatim:
		return "verbatim"
	case KindRule:
		return "rule"
	case KindListStart:
		return "list_start"
	case KindListEnd:
		return "list_end"
	case KindListItemStart:
		return "list_item_start"
	case KindListItemEnd:
		return "list_item_end"
	case KindBlank:
		return "blank"
	case KindHeading:
		return "heading"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ListType enumerates the list flavors the renderer knows how to tag.
//
// The mapping from ListType to HTML tags is total and lives in the render
// package; a value outside this enum reaching the renderer is a contract
// violation between parser and renderer, not user input.
type ListType int

const (
	ListBullet ListType = iota
	ListLabel
	ListLowerAlpha
	ListNote
	ListNumber
	ListUpperAlpha
)

// String returns the list type name used in error messages.
func (t ListType) String() string {
	switch t {
	case ListBullet:
		return "bullet"
	case ListLabel:
		return "label"
	case ListLowerAlpha:
		return "loweralpha"
	case ListNote:
		return "note"
	case ListNumber:
		return "number"
	case ListUpperAlpha:
		return "upperalpha"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Node is one structural event in a document stream.
//
// Only the fields relevant to Kind are set; use the constructor helpers
// rather than building Node literals so that invariants (e.g. HasLabel)
// stay consistent.
type Node struct {
	Kind NodeKind

	// Text carries the flattened inline text of paragraphs, verbatim
	// blocks and headings. Inline-span markup (bold/italic/teletype) has
	// already been converted to HTML tags by the upstream inline formatter.
	Text string

	// Level is the heading level. It is caller-supplied and not
	// range-checked anywhere in this module.
	Level int

	// Weight is the rule thickness requested by the document.
	Weight int

	// List is the list type of KindListStart and KindListEnd events.
	List ListType

	// Label is the item label for KindListItemStart events inside label
	// and note lists; HasLabel distinguishes an empty label from no label.
	Label    string
	HasLabel bool

	// Parts holds the lines of a KindRaw literal-HTML block.
	Parts []string
}

// Paragraph returns a paragraph event.
func Paragraph(text string) Node { return Node{Kind: KindParagraph, Text: text} }

// Verbatim returns a preformatted-block event.
func Verbatim(text string) Node { return Node{Kind: KindVerbatim, Text: text} }

// Rule returns a horizontal-rule event with the given weight.
func Rule(weight int) Node { return Node{Kind: KindRule, Weight: weight} }

// ListStart returns a list-open event.
func ListStart(t ListType) Node { return Node{Kind: KindListStart, List: t} }

// ListEnd returns a list-close event.
func ListEnd(t ListType) Node { return Node{Kind: KindListEnd, List: t} }

// ListItemStart returns an unlabeled item-open event.
func ListItemStart() Node { return Node{Kind: KindListItemStart} }

// ListItemStartLabeled returns an item-open event carrying a label, as
// produced inside label and note lists.
func ListItemStartLabeled(label string) Node {
	return Node{Kind: KindListItemStart, Label: label, HasLabel: true}
}

// ListItemEnd returns an item-close event.
func ListItemEnd() Node { return Node{Kind: KindListItemEnd} }

// Blank returns a blank-line event. The renderer emits nothing for it; the
// event is kept in the model so stream positions survive round trips.
func Blank() Node { return Node{Kind: KindBlank} }

// Heading returns a heading event.
func Heading(level int, text string) Node {
	return Node{Kind: KindHeading, Level: level, Text: text}
}

// Raw returns a literal-HTML passthrough event. Parts are emitted joined by
// newlines with no escaping or substitution of any kind.
func Raw(parts ...string) Node { return Node{Kind: KindRaw, Parts: parts} }
