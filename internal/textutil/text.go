// Package textutil holds small text helpers shared by the clients, the
// CLI and the terminal UI.
package textutil

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var reBlankRuns = regexp.MustCompile(`\n{3,}`)

// StripMarkup flattens inline HTML that models sometimes emit into plain
// text. Line-breaking elements become newlines.
func StripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			out := reBlankRuns.ReplaceAllString(b.String(), "\n\n")
			return strings.TrimSpace(out)
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Br:
				b.WriteString("\n")
			case atom.Li:
				b.WriteString("\n• ")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.P, atom.Div, atom.Ul, atom.Ol, atom.H1, atom.H2, atom.H3, atom.H4:
				b.WriteString("\n\n")
			}
		}
	}
}

const arabicIndicZero = '٠'

// ArabicDigits renders n with Arabic-Indic digits.
func ArabicDigits(n int) string {
	src := strconv.Itoa(n)
	var b strings.Builder
	b.Grow(len(src) * 2)
	for _, r := range src {
		if r >= '0' && r <= '9' {
			b.WriteRune(arabicIndicZero + (r - '0'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fold returns s in NFC with Unicode case folding applied.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// Wrap breaks s into lines of at most width cells on word boundaries.
func Wrap(s string, width int) string {
	if width < 1 {
		return s
	}
	return wordwrap.String(s, width)
}

func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// RenderMarkdown renders model output as terminal markdown, falling back
// to plain wrapping when the renderer cannot be built.
func RenderMarkdown(md string, width int, dark bool) string {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return Wrap(md, width)
	}
	out, err := r.Render(md)
	if err != nil {
		return Wrap(md, width)
	}
	return strings.Trim(out, "\n")
}
