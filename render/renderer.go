// Package render turns a docmodel node stream into an HTML fragment.
//
// The package implements the visitor/renderer stage of the documentation
// toolchain: block structure (paragraphs, verbatim blocks, rules, headings,
// nested lists) is emitted by Renderer.Render, while inline text runs through
// special-span substitution and a typographic scanner before emission.
//
// A Renderer carries only immutable configuration; every Render call owns its
// own output buffer and list stacks, so independent documents may be rendered
// concurrently with the same Renderer.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docrender/docmodel"
	"git.home.luguber.info/inful/docrender/internal/observability"
	"git.home.luguber.info/inful/docrender/metrics"
)

// maxRuleWeight caps horizontal-rule thickness so malformed input cannot
// request pathological visual output.
const maxRuleWeight = 10

// Renderer renders document node streams into HTML fragments. The zero
// configuration from New is usable as-is; use the With* methods to set the
// document output path (for resolving link: targets), wrap width, and a
// metrics recorder.
type Renderer struct {
	spans     spanRenderer
	wrapWidth int
	recorder  metrics.Recorder
}

// New returns a Renderer with default configuration and no metrics.
func New() *Renderer {
	return &Renderer{
		wrapWidth: defaultWrapWidth,
		recorder:  metrics.NoopRecorder{},
	}
}

// WithDocPath sets the output location of the document being rendered.
// Local link: spans resolve relative to it.
func (r *Renderer) WithDocPath(path string) *Renderer {
	r.spans.docPath = path
	return r
}

// WithWrapWidth overrides the paragraph wrap column.
func (r *Renderer) WithWrapWidth(width int) *Renderer {
	if width > 0 {
		r.wrapWidth = width
	}
	return r
}

// WithRecorder injects a metrics recorder.
func (r *Renderer) WithRecorder(rec metrics.Recorder) *Renderer {
	if rec != nil {
		r.recorder = rec
	}
	return r
}

// ConvertInline rewrites special spans and typography in one piece of inline
// text. Render calls this for paragraph, heading and list-label text; it is
// exported for collaborators that need the same conversion on text fragments
// of their own (e.g. page titles).
func (r *Renderer) ConvertInline(text string) string {
	return convertTypography(r.spans.convertSpecials(text))
}

// Render consumes the node stream strictly in arrival order and returns the
// HTML fragment for the document body. The fragment carries no <html>/<body>
// wrapper; page assembly belongs to the caller.
//
// A fatal error (unknown list type, list event without an open list) aborts
// the render of this document; malformed inline markup never does.
func (r *Renderer) Render(ctx context.Context, nodes []docmodel.Node) (string, error) {
	ctx = observability.WithStage(ctx, "render")
	start := time.Now()

	v := visitor{r: r}
	for _, n := range nodes {
		if err := v.visit(ctx, n); err != nil {
			r.recorder.IncRenderOutcome(metrics.OutcomeFatal)
			observability.ErrorContext(ctx, "render aborted",
				slog.String("node", n.Kind.String()),
				slog.String("error", err.Error()))
			return "", err
		}
		r.recorder.IncNode(n.Kind.String())
	}

	out := v.out.String()
	r.recorder.ObserveRenderDuration(time.Since(start))
	r.recorder.ObserveOutputSize(len(out))
	r.recorder.IncRenderOutcome(metrics.OutcomeSuccess)
	observability.DebugContext(ctx, "document rendered",
		slog.Int("nodes", len(nodes)),
		slog.Int("bytes", len(out)))
	return out, nil
}

// visitor holds the mutable state of a single Render call.
type visitor struct {
	r     *Renderer
	out   strings.Builder
	lists listStack
}

func (v *visitor) visit(ctx context.Context, n docmodel.Node) error {
	switch n.Kind {
	case docmodel.KindParagraph:
		v.out.WriteString("\n<p>")
		v.out.WriteString(wrap(v.r.ConvertInline(n.Text), v.r.wrapWidth))
		v.out.WriteString("</p>\n")

	case docmodel.KindVerbatim:
		// Verbatim text is literal: entity-escaped, never typographically
		// substituted or wrapped.
		v.out.WriteString("\n<pre>")
		v.out.WriteString(html.EscapeString(strings.TrimRight(n.Text, " \t\r\n")))
		v.out.WriteString("</pre>\n")

	case docmodel.KindRule:
		weight := n.Weight
		if weight > maxRuleWeight {
			weight = maxRuleWeight
		}
		fmt.Fprintf(&v.out, "\n<hr size=\"%d\" />\n", weight)

	case docmodel.KindListStart:
		tags, err := tagsFor(n.List)
		if err != nil {
			return err
		}
		v.lists.push(n.List)
		v.out.WriteString(tags.open)

	case docmodel.KindListEnd:
		if v.lists.depth() == 0 {
			return fmt.Errorf("%w: %s", ErrListStackUnderflow, n.Kind)
		}
		if pending := v.lists.takePendingClose(); pending != "" {
			v.out.WriteString(pending)
		}
		tags, err := tagsFor(v.lists.pop())
		if err != nil {
			return err
		}
		v.out.WriteString(tags.close)
		v.out.WriteByte('\n')

	case docmodel.KindListItemStart:
		if v.lists.depth() == 0 {
			return fmt.Errorf("%w: %s", ErrListStackUnderflow, n.Kind)
		}
		if pending := v.lists.takePendingClose(); pending != "" {
			v.out.WriteString(pending)
		}
		tags, err := tagsFor(v.lists.current())
		if err != nil {
			return err
		}
		if tags.labeled {
			fmt.Fprintf(&v.out, tags.itemOpen, v.r.ConvertInline(n.Label))
		} else {
			v.out.WriteString(tags.itemOpen)
		}

	case docmodel.KindListItemEnd:
		if v.lists.depth() == 0 {
			return fmt.Errorf("%w: %s", ErrListStackUnderflow, n.Kind)
		}
		tags, err := tagsFor(v.lists.current())
		if err != nil {
			return err
		}
		// Deferred: written right before the next sibling item or the
		// list's own close tag.
		v.lists.setPendingClose(tags.itemClose)

	case docmodel.KindBlank:
		// Structurally recorded, visually inert.

	case docmodel.KindHeading:
		// Level is caller-supplied and passed through unclamped.
		fmt.Fprintf(&v.out, "\n<h%d>%s</h%d>\n", n.Level, v.r.ConvertInline(n.Text), n.Level)

	case docmodel.KindRaw:
		v.out.WriteString(strings.Join(n.Parts, "\n"))

	default:
		observability.WarnContext(ctx, "skipping unrecognized node kind",
			slog.String("node", n.Kind.String()))
	}
	return nil
}
