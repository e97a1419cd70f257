package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "Short text untouched",
			text:  "hello world",
			width: 76,
			want:  "hello world",
		},
		{
			name:  "Breaks at spaces",
			text:  "aaa bbb ccc",
			width: 8,
			want:  "aaa bbb\nccc",
		},
		{
			name:  "Greedy fill",
			text:  "aa bb cc dd",
			width: 6,
			want:  "aa bb\ncc dd",
		},
		{
			name:  "Word crossing the boundary moves down",
			text:  "aaa bbb ccc",
			width: 7,
			want:  "aaa\nbbb\nccc",
		},
		{
			name:  "No space in window extends to next space",
			text:  "aaaaaaaaaa bb",
			width: 5,
			want:  "aaaaaaaaaa\nbb",
		},
		{
			name:  "Empty input",
			text:  "",
			width: 10,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.text, tt.width))
		})
	}
}

func TestWrapOversizedWordStaysWhole(t *testing.T) {
	word := strings.Repeat("x", 120)
	assert.Equal(t, word, wrap(word, 10), "a word longer than width is never broken or truncated")

	got := wrap("a "+word+" b", 10)
	assert.Equal(t, "a\n"+word+"\nb", got)
}

func TestWrapNeverAltersVisibleCharacters(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog again and again and again"
	got := wrap(text, 20)
	assert.Equal(t, text, strings.Join(strings.Fields(got), " "))
}
