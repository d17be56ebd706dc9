package utils

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "issue", 10, "issue"},
		{"exact", "issue", 5, "issue"},
		{"cut", "milestones", 6, "miles…"},
		{"zero width", "anything", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.width))
		})
	}
}

func TestTruncateString_WideRunes(t *testing.T) {
	got := TruncateString("課題の一覧です", 7)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 7)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "hello", FirstLine("\n  \n  hello\nworld"))
	assert.Equal(t, "", FirstLine(""))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
}
