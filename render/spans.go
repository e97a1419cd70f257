package render

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docrender/relpath"
)

// Special spans are inline constructs recognized by pattern rather than by
// delimiter tags: bare hyperlinks and labeled ("tidy") links. Recognition
// scans the flattened text left to right and writes each replacement straight
// to the output, so generated markup is never rescanned by either pattern.
var (
	// hyperFlowRe matches bare hyperlinks with a recognized scheme prefix,
	// or a bare www. host treated as http.
	hyperFlowRe = regexp.MustCompile(`(?:\blink:|\bhttps?:|\bmailto:|\bftp:|\bwww\.)\S+\w`)
	// tidyFlowRe matches {label}[target] and word[target] labeled links.
	// The target must contain a dot so that index expressions like a[1]
	// in running text are left alone.
	tidyFlowRe = regexp.MustCompile(`(?:\{.*?\}|\b\S+?)\[\S+?\.\S+?\]`)

	tidyBraceRe = regexp.MustCompile(`^\{(.*?)\}\[(.*?)\]$`)
	tidyWordRe  = regexp.MustCompile(`^(\S+)\[(.*?)\]$`)
)

// bitmapExtensions are the image suffixes (case-sensitive) that turn a local
// or web link into an inline image instead of an anchor.
var bitmapExtensions = []string{".gif", ".png", ".jpg", ".jpeg", ".bmp"}

// spanRenderer turns recognized special spans into anchor or image markup.
// docPath is the output location of the document being rendered; local
// link: targets resolve relative to it.
type spanRenderer struct {
	docPath string
}

// convertSpecials rewrites every special span in s. The text already carries
// upstream HTML tags, so recognition walks the tag structure rather than the
// raw bytes: tags pass through whole (a URL inside an attribute is markup,
// not flow text) and teletype spans pass through with their content literal.
// The patterns only ever run on the plain text between tags.
func (sr *spanRenderer) convertSpecials(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	start := 0
	i := 0
	for i < len(s) {
		if s[i] != '<' {
			i++
			continue
		}
		end, ok := matchTagAt(s, i)
		if !ok {
			i++
			continue
		}
		sr.convertRun(&out, s[start:i])
		tag := s[i:end]
		out.WriteString(tag)
		if tag == ttOpen {
			rest := s[end:]
			if stop := strings.Index(rest, ttClose); stop >= 0 {
				out.WriteString(rest[:stop+len(ttClose)])
				end += stop + len(ttClose)
			} else {
				out.WriteString(rest)
				end = len(s)
			}
		}
		start, i = end, end
	}
	sr.convertRun(&out, s[start:])
	return out.String()
}

// convertRun rewrites the special spans in one tag-free text run. Each
// replacement is written straight to out, never rescanned. Labeled links win
// ties when both patterns match at the same position, since the brace form
// can carry embedded whitespace that the hyperlink pattern would split.
func (sr *spanRenderer) convertRun(out *strings.Builder, rest string) {
	for {
		tidy := tidyFlowRe.FindStringIndex(rest)
		hyper := hyperFlowRe.FindStringIndex(rest)
		if tidy == nil && hyper == nil {
			out.WriteString(rest)
			return
		}

		useTidy := hyper == nil || (tidy != nil && tidy[0] <= hyper[0])
		var loc []int
		if useTidy {
			loc = tidy
		} else {
			loc = hyper
		}

		out.WriteString(rest[:loc[0]])
		span := rest[loc[0]:loc[1]]
		if useTidy {
			out.WriteString(sr.renderTidyLink(span))
		} else {
			out.WriteString(sr.renderHyperlink(span))
		}
		rest = rest[loc[1]:]
	}
}

// renderHyperlink renders a bare URL span; the link label is the URL itself
// minus its redundant scheme prefix.
func (sr *spanRenderer) renderHyperlink(url string) string {
	return sr.genURL(url, url)
}

// renderTidyLink renders a {label}[target] or word[target] span. The brace
// form is tried first since it permits whitespace in the label. Text that
// matches neither form is returned unchanged.
func (sr *spanRenderer) renderTidyLink(text string) string {
	m := tidyBraceRe.FindStringSubmatch(text)
	if m == nil {
		m = tidyWordRe.FindStringSubmatch(text)
	}
	if m == nil {
		return text
	}
	return sr.genURL(m[2], m[1])
}

// genURL builds the anchor or image markup for a resolved URL. link: targets
// are local document paths resolved against the renderer's document output
// path, except pure in-page fragments which pass through untouched. A
// http/https/link URL ending in a bitmap-image extension becomes a
// self-closing img tag.
func (sr *spanRenderer) genURL(url, text string) string {
	scheme := "http"
	path := url
	if i := schemeEnd(url); i >= 0 {
		scheme = url[:i]
		path = url[i+1:]
	} else {
		// Schemeless spans only arrive via the bare www. pattern.
		url = "http://" + url
	}

	if scheme == "link" {
		if strings.HasPrefix(path, "#") {
			url = path
		} else {
			url = relpath.Resolve(sr.docPath, path)
		}
	}

	if scheme == "http" || scheme == "https" || scheme == "link" {
		for _, ext := range bitmapExtensions {
			if strings.HasSuffix(url, ext) {
				return fmt.Sprintf(`<img src="%s" />`, url)
			}
		}
	}

	return fmt.Sprintf(`<a href="%s">%s</a>`, url, stripSchemePrefix(text, scheme))
}

// schemeEnd returns the index of the colon terminating a leading
// all-letters scheme, or -1 when url has no scheme.
func schemeEnd(url string) int {
	for i := 0; i < len(url); i++ {
		if url[i] == ':' {
			if i == 0 {
				return -1
			}
			return i
		}
		if !isASCIILetter(url[i]) {
			return -1
		}
	}
	return -1
}

// stripSchemePrefix drops a leading "scheme:" plus any slashes from a link
// label, so a bare http://example.com span reads as just example.com.
func stripSchemePrefix(text, scheme string) string {
	prefix := scheme + ":"
	if !strings.HasPrefix(text, prefix) {
		return text
	}
	return strings.TrimLeft(text[len(prefix):], "/")
}
