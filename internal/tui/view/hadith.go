package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/noor-cli/internal/explain"
	"github.com/glabrego/noor-cli/internal/textutil"
	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
)

const (
	HadithError       = "تعذر جلب الحديث. حاول مرة أخرى."
	HadithTopicHint   = "اكتب موضوعاً (مثلاً: الصبر، الصلاة، بر الوالدين)..."
	hadithTitle       = "الأحاديث النبوية وشرحها"
	hadithSubtitle    = "اسأل عن موضوع معين أو احصل على حديث عشوائي مع الشرح"
	hadithCardHeading = "الحديث الشريف"
	hadithLoading     = "جاري البحث عن حديث..."
)

func HadithHeader(width int, th tuitheme.Theme) string {
	title := th.Section.Render(hadithTitle)
	sub := th.MetaLabel.Render(hadithSubtitle)
	if width <= 0 {
		return title + "\n" + sub
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, sub)
}

func HadithLoading(spinner string) string {
	return spinner + " " + hadithLoading
}

// RenderHadithCard renders one record. Weak or fabricated grades switch
// the card to the warning palette.
func RenderHadithCard(h explain.Hadith, width int, th tuitheme.Theme) string {
	if width <= 0 {
		width = 80
	}
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	weak := h.Weak()
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)
	right := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right)

	heading := th.ModalTitle.Render(hadithCardHeading) + "   " + th.StyleGrade(h.Grade, weak)
	parts := []string{
		right.Render(heading),
		"",
		center.Render(lipgloss.NewStyle().Bold(true).Render(textutil.Wrap(h.Arabic, inner))),
		"",
		center.Render(th.StyleSource("المصدر: "+h.Source, weak)),
		"",
		right.Render(th.Section.Render("الشرح")),
		textutil.RenderMarkdown(h.Explanation, inner, th.Dark),
	}
	return th.HadithFrame(weak).Width(width - 2).Render(strings.Join(parts, "\n"))
}
