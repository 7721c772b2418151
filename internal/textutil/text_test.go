package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "  نص عادي  ", want: "نص عادي"},
		{name: "line breaks", in: "سطر<br>سطر آخر<br/>ثالث", want: "سطر\nسطر آخر\nثالث"},
		{name: "inline tags dropped", in: "<b>مهم</b> جدا", want: "مهم جدا"},
		{name: "paragraphs separated", in: "<p>أ</p><p>ب</p>", want: "أ\n\nب"},
		{name: "entities unescaped", in: "a &amp; b<br>", want: "a & b"},
		{name: "list items", in: "<ul><li>one</li><li>two</li></ul>", want: "• one\n• two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}

func TestArabicDigits(t *testing.T) {
	assert.Equal(t, "٠", ArabicDigits(0))
	assert.Equal(t, "٢٥", ArabicDigits(25))
	assert.Equal(t, "٢٨٦", ArabicDigits(286))
	assert.Equal(t, "-٣", ArabicDigits(-3))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Al-Baqara", "baq"))
	assert.True(t, ContainsFold("AL-KAHF", "al-kahf"))
	assert.False(t, ContainsFold("Yaseen", "kahf"))
	assert.True(t, ContainsFold("anything", ""))
}

func TestWrap(t *testing.T) {
	out := Wrap("one two three four", 9)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
	assert.Equal(t, "as is", Wrap("as is", 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestRenderMarkdown_KeepsWords(t *testing.T) {
	out := RenderMarkdown("**الصبر** مفتاح الفرج", 40, true)
	assert.Contains(t, out, "الصبر")
	assert.Contains(t, out, "الفرج")
}
