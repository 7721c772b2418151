package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/noor-cli/internal/bookmark"
	"github.com/glabrego/noor-cli/internal/quran"
	"github.com/glabrego/noor-cli/internal/textutil"
	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
)

const (
	EmptyListText   = "لا توجد سور للعرض."
	LoadingText     = "جاري التحميل..."
	SearchPrompt    = "ابحث عن اسم السورة..."
	homeDedication  = "كِتَـٰبٌ أَنزَلۡنَـٰهُ إِلَيۡكَ مُبَـٰرَكٞ لِّيَدَّبَّرُوٓاْ ءَايَـٰتِهِۦ"
	meccanLabel     = "مكية"
	medinanLabel    = "مدنية"
	continueReading = "[c] أكمل القراءة"
)

func RevelationLabel(c quran.Chapter, th tuitheme.Theme) string {
	if c.IsMeccan() {
		return th.Meccan.Render(meccanLabel)
	}
	return th.Medinan.Render(medinanLabel)
}

type ChapterRowParams struct {
	Chapter quran.Chapter
	Active  bool
	Width   int
}

func RenderChapterRow(p ChapterRowParams, th tuitheme.Theme) string {
	marker := "  "
	if p.Active {
		marker = "> "
	}
	c := p.Chapter
	left := fmt.Sprintf("%s%3d  %s", marker, c.Number, c.Name)
	right := fmt.Sprintf("%s • %d آيات", RevelationLabel(c, th), c.NumberOfAyahs)
	english := c.EnglishName

	if p.Width > 0 {
		available := p.Width - visibleLen(left) - visibleLen(right) - 2
		if available < 0 {
			available = 0
		}
		english = textutil.Truncate(english, available)
	}
	line := left + "  " + th.MetaLabel.Render(english)
	gap := p.Width - visibleLen(line) - visibleLen(right)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(p.Active, line+strings.Repeat(" ", gap)+right)
}

type ListRenderInput struct {
	Chapters []quran.Chapter
	Start    int
	End      int
	Cursor   int
	Width    int
}

func RenderChapterList(in ListRenderInput, th tuitheme.Theme) string {
	if len(in.Chapters) == 0 {
		return th.MetaLabel.Render(EmptyListText)
	}
	if in.Start < 0 || in.Start >= in.End || in.End > len(in.Chapters) {
		return ""
	}
	lines := make([]string, 0, in.End-in.Start)
	for i := in.Start; i < in.End; i++ {
		lines = append(lines, RenderChapterRow(ChapterRowParams{
			Chapter: in.Chapters[i],
			Active:  i == in.Cursor,
			Width:   in.Width,
		}, th))
	}
	return strings.Join(lines, "\n")
}

func BookmarkBox(b bookmark.Bookmark, th tuitheme.Theme) string {
	body := fmt.Sprintf("آخر قراءة: %s - آية %d\n%s", b.SurahName, b.AyahNumber, th.MetaLabel.Render(continueReading))
	return th.BookmarkBox.Render(body)
}

func HomeHeader(width int, th tuitheme.Theme) string {
	title := th.Section.Render("القرآن الكريم")
	quote := th.MetaValue.Render(homeDedication)
	if width <= 0 {
		return title + "\n" + quote
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, quote)
}

func SearchLine(input string, active bool, th tuitheme.Theme) string {
	label := th.MetaLabel.Render("بحث:")
	if !active && strings.TrimSpace(input) == "" {
		return label + " " + th.MetaLabel.Render(SearchPrompt+" (/)")
	}
	return label + " " + input
}

func visibleLen(s string) int {
	return lipgloss.Width(s)
}
