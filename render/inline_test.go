package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertTypography(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Plain text untouched",
			in:   "just some words",
			want: "just some words",
		},
		{
			name: "Single quotes directional with possessive",
			in:   "'hello' and Mary's dog",
			want: "&#8216;hello&#8217; and Mary&#8217;s dog",
		},
		{
			name: "Trailing plural possessive closes without opening",
			in:   "the parents' house",
			want: "the parents&#8217; house",
		},
		{
			name: "Double quote entities toggle direction",
			in:   "&quot;hi&quot; she said",
			want: "&#8220;hi&#8221; she said",
		},
		{
			name: "Backtick and double apostrophe quotes",
			in:   "``fixed'' quotes",
			want: "&#8220;fixed&#8221; quotes",
		},
		{
			name: "Two hyphens become em dash",
			in:   "a--b",
			want: "a&#8212;b",
		},
		{
			name: "Three hyphens become one em dash",
			in:   "a---b",
			want: "a&#8212;b",
		},
		{
			name: "Single hyphen untouched",
			in:   "a-b",
			want: "a-b",
		},
		{
			name: "Three dots become ellipsis",
			in:   "wait...",
			want: "wait&#8230;",
		},
		{
			name: "Four dots keep one literal dot",
			in:   "wait....",
			want: "wait.&#8230;",
		},
		{
			name: "Two dots untouched",
			in:   "wait..",
			want: "wait..",
		},
		{
			name: "Copyright mark",
			in:   "(c) 2026",
			want: "&#169; 2026",
		},
		{
			name: "Registered mark",
			in:   "brand(r)",
			want: "brand&#174;",
		},
		{
			name: "Backslash escapes suppress substitution",
			in:   `\(c\) stays literal`,
			want: "(c) stays literal",
		},
		{
			name: "Escape clears word state before apostrophe",
			in:   `x\y'quote'`,
			want: "xy&#8216;quote&#8217;",
		},
		{
			name: "Apostrophe after copyright mark opens quote",
			in:   "(c)'tis",
			want: "&#169;&#8216;tis",
		},
		{
			name: "Apostrophe after em dash opens quote",
			in:   "wait--'here'",
			want: "wait&#8212;&#8216;here&#8217;",
		},
		{
			name: "HTML tags copied verbatim",
			in:   "<b>bold--dash</b>",
			want: "<b>bold&#8212;dash</b>",
		},
		{
			name: "Apostrophe after closing tag still possessive",
			in:   "<b>Mary</b>'s dog",
			want: "<b>Mary</b>&#8217;s dog",
		},
		{
			name: "Lone angle bracket not a tag",
			in:   "1 < 2",
			want: "1 < 2",
		},
		{
			name: "Bare ampersand untouched",
			in:   "fish & chips",
			want: "fish & chips",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertTypography(tt.in))
		})
	}
}

func TestConvertTypographyTeletype(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "No double escaping inside teletype",
			in:   "<tt>a & b</tt>",
			want: "<tt>a & b</tt>",
		},
		{
			name: "No typography inside teletype",
			in:   "<tt>--raw... 'code'</tt> but -- outside",
			want: "<tt>--raw... 'code'</tt> but &#8212; outside",
		},
		{
			name: "Escaped backslash collapses inside teletype",
			in:   `<tt>C:\\dir</tt>`,
			want: `<tt>C:\dir</tt>`,
		},
		{
			name: "Unterminated teletype copies remainder verbatim",
			in:   "<tt>never closed -- here",
			want: "<tt>never closed -- here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertTypography(tt.in))
		})
	}
}

func TestConvertTypographyQuoteStateResetsPerCall(t *testing.T) {
	// A dangling open quote must not leak into the next conversion.
	assert.Equal(t, "&#8216;open", convertTypography("'open"))
	assert.Equal(t, "&#8216;open", convertTypography("'open"))
}
