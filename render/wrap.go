package render

import "strings"

// defaultWrapWidth is the column at which paragraph text is wrapped before
// emission. Wrapping is cosmetic source formatting only; browsers reflow.
const defaultWrapWidth = 76

// wrap inserts newlines into text so no line exceeds width where a space
// allows it. It is greedy: each line takes the longest prefix ending at or
// before a space inside the window; when the window holds no space the line
// extends forward to the next space instead, so words are never broken. A
// single word longer than width comes out unbroken on its own line.
//
// Only newlines are inserted at existing spaces; visible characters are
// never altered.
func wrap(text string, width int) string {
	var out strings.Builder
	out.Grow(len(text) + len(text)/width + 1)

	sp, ep := 0, len(text)
	for sp < ep {
		p := sp + width - 1
		if p >= ep {
			p = ep
		} else {
			for p > sp && text[p] != ' ' {
				p--
			}
			if p <= sp {
				// No space inside the window; run to the next one.
				p = sp + width
				for p < ep && text[p] != ' ' {
					p++
				}
			}
		}
		out.WriteString(text[sp:p])
		out.WriteByte('\n')
		sp = p
		for sp < ep && text[sp] == ' ' {
			sp++
		}
	}
	return strings.TrimSpace(out.String())
}
