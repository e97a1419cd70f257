package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Numeric character references used by the typographic substitutions. Numeric
// (not named) references keep the output independent of the document charset.
const (
	entEllipsis    = "&#8230;"
	entCopyright   = "&#169;"
	entRegistered  = "&#174;"
	entEmDash      = "&#8212;"
	entOpenDouble  = "&#8220;"
	entCloseDouble = "&#8221;"
	entOpenSingle  = "&#8216;"
	entCloseSingle = "&#8217;"
)

// Teletype spans arrive from the upstream inline formatter as literal <tt>
// regions; their content must bypass every typographic substitution.
const (
	ttOpen  = "<tt>"
	ttClose = "</tt>"
)

// inlineScanner is the cursor state of one typography conversion. It lives
// for a single convert call; nothing persists across calls.
type inlineScanner struct {
	src string
	out strings.Builder

	inSingleQuote bool // a directional single-quote run is open
	inDoubleQuote bool // &quot; toggling state
	afterWord     bool // previous matched token ended in a word character
}

// convertTypography rewrites escapes, typographic substitutions and
// directional quotes in inline text that already carries upstream HTML tags.
//
// The scanner walks left to right and at each position takes the first
// matching rule, in this fixed priority order: HTML tag passthrough (with
// teletype literal spans), backslash escape, ellipsis dots, (c), (r),
// em-dash hyphens, &quot; toggling, ``-style open quote, ''-style close
// quote, single apostrophe, then a greedy verbatim run. The order is
// observable behavior (dash-vs-ellipsis ties, quote lookback) and must not
// be rearranged.
//
// The pass is linear: every rule consumes at least one byte and lookahead is
// bounded except for tag and teletype close scans, which consume what they
// scanned.
func convertTypography(src string) string {
	sc := inlineScanner{src: src}
	sc.out.Grow(len(src) + len(src)/8)
	sc.run()
	return sc.out.String()
}

func (sc *inlineScanner) run() {
	n := len(sc.src)
	i := 0
	for i < n {
		switch sc.src[i] {
		case '<':
			if end, ok := matchTagAt(sc.src, i); ok {
				tag := sc.src[i:end]
				sc.out.WriteString(tag)
				if tag == ttOpen {
					i = sc.copyTeletype(end)
				} else {
					i = end
				}
				continue
			}
		case '\\':
			if i+1 < n && sc.src[i+1] != ' ' {
				sc.out.WriteByte(sc.src[i+1])
				sc.afterWord = false
				i += 2
				continue
			}
		case '.':
			if dots := runLen(sc.src[i:], '.'); dots >= 3 {
				if dots >= 4 {
					// The fourth dot is the author's literal full stop.
					sc.out.WriteByte('.')
					i++
				}
				sc.out.WriteString(entEllipsis)
				sc.afterWord = false
				i += 3
				continue
			}
		case '(':
			if strings.HasPrefix(sc.src[i:], "(c)") {
				sc.out.WriteString(entCopyright)
				sc.afterWord = false
				i += 3
				continue
			}
			if strings.HasPrefix(sc.src[i:], "(r)") {
				sc.out.WriteString(entRegistered)
				sc.afterWord = false
				i += 3
				continue
			}
		case '-':
			if dashes := runLen(sc.src[i:], '-'); dashes >= 2 {
				sc.out.WriteString(entEmDash)
				sc.afterWord = false
				if dashes >= 3 {
					i += 3
				} else {
					i += 2
				}
				continue
			}
		case '&':
			if strings.HasPrefix(sc.src[i:], "&quot;") {
				if sc.inDoubleQuote {
					sc.out.WriteString(entCloseDouble)
				} else {
					sc.out.WriteString(entOpenDouble)
				}
				sc.inDoubleQuote = !sc.inDoubleQuote
				sc.afterWord = false
				i += len("&quot;")
				continue
			}
		case '`':
			if strings.HasPrefix(sc.src[i:], "``") {
				sc.out.WriteString(entOpenDouble)
				sc.afterWord = false
				i += 2
				continue
			}
		case '\'':
			if strings.HasPrefix(sc.src[i:], "''") {
				sc.out.WriteString(entCloseDouble)
				sc.afterWord = false
				i += 2
				continue
			}
			switch {
			case sc.inSingleQuote:
				sc.out.WriteString(entCloseSingle)
				sc.inSingleQuote = false
			case sc.afterWord:
				// Possessive or contraction ("Mary's", "parents'"):
				// close without ever opening a run.
				sc.out.WriteString(entCloseSingle)
			default:
				sc.out.WriteString(entOpenSingle)
				sc.inSingleQuote = true
			}
			// Every branch emitted a quote entity, not a word character.
			sc.afterWord = false
			i++
			continue
		}

		i = sc.copyRun(i)
	}
}

// matchTagAt reports whether an HTML start or end tag begins at i in s and,
// if so, the index just past its closing '>'. Shared by the typography
// scanner and special-span recognition, which both treat tags as opaque.
func matchTagAt(s string, i int) (int, bool) {
	j := i + 1
	if j < len(s) && s[j] == '/' {
		j++
	}
	if j >= len(s) || !isASCIILetter(s[j]) {
		return 0, false
	}
	for ; j < len(s); j++ {
		if s[j] == '>' {
			return j + 1, true
		}
	}
	return 0, false
}

// copyTeletype copies a teletype literal span starting just past its open
// tag. Content passes through with no substitution except collapsing escaped
// backslashes; an unterminated span copies the remainder verbatim so that
// malformed input is preserved, not dropped.
func (sc *inlineScanner) copyTeletype(start int) int {
	rest := sc.src[start:]
	end := strings.Index(rest, ttClose)
	if end < 0 {
		sc.out.WriteString(rest)
		return len(sc.src)
	}
	sc.out.WriteString(strings.ReplaceAll(rest[:end], `\\`, `\`))
	sc.out.WriteString(ttClose)
	return start + end + len(ttClose)
}

// copyRun copies the verbatim run starting at i up to (not including) the
// next byte that could begin any substitution rule, recording whether the
// run ended in a word character for the apostrophe lookback. The byte at i
// is always consumed, which guarantees forward progress when a trigger byte
// failed every rule above.
func (sc *inlineScanner) copyRun(i int) int {
	j := i + 1
	for j < len(sc.src) && !isTrigger(sc.src[j]) {
		j++
	}
	run := sc.src[i:j]
	sc.out.WriteString(run)
	r, _ := utf8.DecodeLastRuneInString(run)
	sc.afterWord = isWordRune(r)
	return j
}

// isTrigger reports whether a byte can start any of the scanner's
// substitution rules (or is an ampersand, which rule 7 inspects).
func isTrigger(b byte) bool {
	switch b {
	case '<', '\\', '.', '(', '-', '&', '`', '\'':
		return true
	}
	return false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// runLen counts the leading repetition of b in s.
func runLen(s string, b byte) int {
	n := 0
	for n < len(s) && s[n] == b {
		n++
	}
	return n
}
