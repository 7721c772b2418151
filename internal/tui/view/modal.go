package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/noor-cli/internal/reader"
	"github.com/glabrego/noor-cli/internal/textutil"
	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
)

const (
	ExplanationError   = "تعذر جلب التفسير. حاول مرة أخرى."
	explanationLoading = "جاري جلب التفسير..."
	explanationHeading = "التفسير الميسر:"
	verseActions       = "[b] حفظ كآخر قراءة   [e] تفسير الآية   [y] نسخ   [o] فتح في المتصفح   [esc] إغلاق"
	backToActions      = "[a] العودة للخيارات   [esc] إغلاق"
)

type ModalParams struct {
	ChapterName string
	VerseNumber int
	Text        string
	State       reader.SelectionState
	Explanation string
	Spinner     string
	Width       int
	Dark        bool
}

// RenderVerseModal draws the action sheet for the selected verse.
func RenderVerseModal(p ModalParams, th tuitheme.Theme) string {
	width := p.Width
	if width <= 0 {
		width = 80
	}
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	right := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right)

	parts := []string{
		right.Render(th.ModalTitle.Render(fmt.Sprintf("%s - آية %s", p.ChapterName, textutil.ArabicDigits(p.VerseNumber)))),
		"",
		right.Render(th.Verse.Render(textutil.Wrap(p.Text, inner))),
		"",
	}

	switch p.State {
	case reader.SelectionLoading:
		parts = append(parts, right.Render(p.Spinner+" "+explanationLoading))
	case reader.SelectionExplained:
		parts = append(parts,
			right.Render(th.Section.Render(explanationHeading)),
			textutil.RenderMarkdown(p.Explanation, inner, p.Dark),
			"",
			right.Render(th.MetaLabel.Render(backToActions)),
		)
	case reader.SelectionFailed:
		parts = append(parts,
			right.Render(th.ErrorText.Render(ExplanationError)),
			right.Render(th.MetaLabel.Render(verseActions)),
		)
	default:
		parts = append(parts, right.Render(th.MetaLabel.Render(verseActions)))
	}

	return th.Modal.Width(width - 2).Render(strings.Join(parts, "\n"))
}
