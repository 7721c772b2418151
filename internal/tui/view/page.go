package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/noor-cli/internal/quran"
	"github.com/glabrego/noor-cli/internal/reader"
	"github.com/glabrego/noor-cli/internal/textutil"
	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
)

const (
	ChapterLoadError = "تعذر تحميل السورة. يرجى التحقق من الاتصال بالإنترنت."
	readerHint       = "اختر آية ثم اضغط enter للتفسير أو وضع علامة"
	bookmarkMarker   = "★ "
	cursorMarker     = "◀"
)

type PageParams struct {
	Chapter    int
	Page       int
	Verses     []quran.Verse
	Cursor     int
	Bookmarked int
	Width      int
	Appearance reader.Appearance
}

// PageLayout is a rendered page plus the line each verse starts on.
type PageLayout struct {
	Content string
	Offsets []int
	Heights []int
	Lines   int
}

// RenderPage lays out one page of verses right-aligned in a column sized
// by the appearance settings.
func RenderPage(p PageParams, th tuitheme.Theme) PageLayout {
	width := p.Width
	if width <= 0 {
		width = 80
	}
	col := p.Appearance.ColumnWidth(width)
	gap := p.Appearance.VerseGap()

	var lines []string
	if p.Page == 1 && reader.ShowsOpeningHeader(p.Chapter) {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, th.Opening.Render(reader.OpeningFormula)), "")
	}

	layout := PageLayout{
		Offsets: make([]int, len(p.Verses)),
		Heights: make([]int, len(p.Verses)),
	}
	for i, v := range p.Verses {
		text := reader.DisplayText(p.Chapter, v.NumberInSurah, v.Text)
		number := "﴿" + textutil.ArabicDigits(v.NumberInSurah) + "﴾"
		if v.NumberInSurah == p.Bookmarked {
			number = bookmarkMarker + number
		}
		wrapped := textutil.Wrap(text+" "+number, col-2)

		style := th.Verse
		switch {
		case i == p.Cursor:
			style = th.CursorVerse
		case v.NumberInSurah == p.Bookmarked:
			style = th.Bookmarked
		}
		style = style.Bold(p.Appearance.Bold).Width(col - 2).Align(lipgloss.Right)

		marker := "  "
		if i == p.Cursor {
			marker = th.VerseNumber.Render(cursorMarker) + " "
		}
		block := lipgloss.JoinHorizontal(lipgloss.Top, style.Render(wrapped), " "+marker)
		block = lipgloss.PlaceHorizontal(width, lipgloss.Right, block)

		layout.Offsets[i] = len(lines)
		blockLines := strings.Split(block, "\n")
		layout.Heights[i] = len(blockLines)
		lines = append(lines, blockLines...)
		if i < len(p.Verses)-1 {
			for g := 0; g < gap; g++ {
				lines = append(lines, "")
			}
		}
	}

	layout.Content = strings.Join(lines, "\n")
	layout.Lines = len(lines)
	return layout
}

func ReaderHeader(name string, page, count int, th tuitheme.Theme) string {
	return th.Section.Render(name) + "  " +
		th.MetaLabel.Render(fmt.Sprintf("صفحة %d من %d", page, count))
}

func ReaderFooter(page, count int, th tuitheme.Theme) string {
	prev := th.MetaLabel.Render("[p] السابقة")
	next := th.MetaLabel.Render("[n] التالية")
	if page <= 1 {
		prev = th.MetaLabel.Faint(true).Render("[p] السابقة")
	}
	if page >= count {
		next = th.MetaLabel.Faint(true).Render("[n] التالية")
	}
	return fmt.Sprintf("%s   %d / %d   %s   %s", next, page, count, prev, th.MetaLabel.Render(readerHint))
}

func onOff(v bool) string {
	if v {
		return "تشغيل"
	}
	return "إيقاف"
}

func SettingsPanel(a reader.Appearance, th tuitheme.Theme) string {
	rows := []string{
		th.Section.Render("تخصيص"),
		fmt.Sprintf("الوضع الليلي: %s  [D]", onOff(a.Dark)),
		fmt.Sprintf("حجم الخط: %d  [-/+]", a.FontSize),
		fmt.Sprintf("تباعد الأسطر: %.1f  [</>]", a.LineHeight),
		fmt.Sprintf("خط عريض: %s  [B]", onOff(a.Bold)),
	}
	return th.SettingsCard.Render(strings.Join(rows, "\n"))
}
