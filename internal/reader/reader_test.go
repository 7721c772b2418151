package reader

import (
	"testing"

	"github.com/glabrego/noor-cli/internal/quran"
)

func verses(n int) []quran.Verse {
	out := make([]quran.Verse, n)
	for i := range out {
		out[i] = quran.Verse{Number: i + 1, NumberInSurah: i + 1}
	}
	return out
}

func TestPageCount(t *testing.T) {
	cases := map[int]int{0: 0, -1: 0, 1: 1, 7: 1, 25: 1, 26: 2, 50: 2, 286: 12}
	for n, want := range cases {
		if got := PageCount(n); got != want {
			t.Fatalf("PageCount(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestPageForVerse(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 25: 1, 26: 2, 255: 11, 286: 12}
	for v, want := range cases {
		if got := PageForVerse(v); got != want {
			t.Fatalf("PageForVerse(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestPageVerses_LastPageIsPartial(t *testing.T) {
	all := verses(286)
	page := PageVerses(all, 12)
	if len(page) != 11 {
		t.Fatalf("expected 11 verses on last page, got %d", len(page))
	}
	if page[0].NumberInSurah != 276 || page[len(page)-1].NumberInSurah != 286 {
		t.Fatalf("unexpected page range %d..%d", page[0].NumberInSurah, page[len(page)-1].NumberInSurah)
	}

	if got := PageVerses(all, 99); len(got) != 11 {
		t.Fatalf("expected out of range page to clamp to last, got %d verses", len(got))
	}
	if got := PageVerses(nil, 1); len(got) != 0 {
		t.Fatalf("expected empty page for empty chapter, got %d", len(got))
	}
}

func TestPager_StaysInBounds(t *testing.T) {
	p := NewPager(7)
	if p.Page() != 1 || p.Count() != 1 {
		t.Fatalf("expected single page, got %d/%d", p.Page(), p.Count())
	}
	if p.Next() || p.Prev() {
		t.Fatal("expected no movement on a single page chapter")
	}

	p = NewPager(286)
	if !p.Next() || p.Page() != 2 {
		t.Fatalf("expected next to reach page 2, got %d", p.Page())
	}
	p.Jump(12)
	if p.Next() {
		t.Fatal("expected next to be a no-op on the last page")
	}
	p.Jump(0)
	if p.Page() != 1 {
		t.Fatalf("expected jump to clamp to 1, got %d", p.Page())
	}
	if p.Prev() {
		t.Fatal("expected prev to be a no-op on the first page")
	}
}

func TestDisplayText(t *testing.T) {
	withFormula := OpeningFormula + " الٓمٓ"

	if got := DisplayText(2, 1, withFormula); got != "الٓمٓ" {
		t.Fatalf("expected formula stripped from chapter 2 verse 1, got %q", got)
	}
	if got := DisplayText(2, 1, "\ufeff"+withFormula); got != "الٓمٓ" {
		t.Fatalf("expected formula stripped after byte order mark, got %q", got)
	}
	if got := DisplayText(1, 1, OpeningFormula); got != OpeningFormula {
		t.Fatalf("expected chapter 1 verse 1 unchanged, got %q", got)
	}
	if got := DisplayText(2, 2, withFormula); got != withFormula {
		t.Fatalf("expected later verses unchanged, got %q", got)
	}
	if got := DisplayText(2, 1, "ذَٰلِكَ"); got != "ذَٰلِكَ" {
		t.Fatalf("expected verse without formula unchanged, got %q", got)
	}
}

func TestShowsOpeningHeader(t *testing.T) {
	if ShowsOpeningHeader(9) {
		t.Fatal("chapter 9 must not show the opening header")
	}
	for _, n := range []int{1, 2, 8, 10, 114} {
		if !ShowsOpeningHeader(n) {
			t.Fatalf("expected header for chapter %d", n)
		}
	}
}

func TestSelection_Lifecycle(t *testing.T) {
	var s Selection
	if s.IsOpen() {
		t.Fatal("zero selection must be closed")
	}
	if _, ok := s.BeginExplain(); ok {
		t.Fatal("explain must not start from closed")
	}

	v := quran.Verse{NumberInSurah: 5, Text: "x"}
	s.Open(v)
	if s.State() != SelectionChoosing || s.Verse().NumberInSurah != 5 {
		t.Fatalf("unexpected state after open: %s", s.State())
	}

	ticket, ok := s.BeginExplain()
	if !ok || s.State() != SelectionLoading {
		t.Fatalf("expected loading, got %s", s.State())
	}
	if _, ok := s.BeginExplain(); ok {
		t.Fatal("explain must not restart while loading")
	}

	if !s.Resolve(ticket, "تفسير", true) {
		t.Fatal("expected matching answer to apply")
	}
	if s.State() != SelectionExplained || s.Explanation() != "تفسير" {
		t.Fatalf("unexpected state after resolve: %s %q", s.State(), s.Explanation())
	}

	s.BackToActions()
	if s.State() != SelectionChoosing || s.Explanation() != "" {
		t.Fatalf("expected actions with cleared text, got %s %q", s.State(), s.Explanation())
	}
}

func TestSelection_FailureAllowsRetry(t *testing.T) {
	var s Selection
	s.Open(quran.Verse{NumberInSurah: 1})
	ticket, _ := s.BeginExplain()
	s.Resolve(ticket, "", false)
	if s.State() != SelectionFailed {
		t.Fatalf("expected failed, got %s", s.State())
	}
	if _, ok := s.BeginExplain(); !ok {
		t.Fatal("expected retry from failed")
	}
}

func TestSelection_StaleAnswersIgnored(t *testing.T) {
	var s Selection
	s.Open(quran.Verse{NumberInSurah: 1})
	first, _ := s.BeginExplain()

	s.Close()
	if s.Resolve(first, "late", true) {
		t.Fatal("answer after close must be ignored")
	}

	s.Open(quran.Verse{NumberInSurah: 2})
	if s.Explanation() != "" {
		t.Fatal("reopening must reset the explanation")
	}
	second, _ := s.BeginExplain()
	if s.Resolve(first, "for verse 1", true) {
		t.Fatal("answer for an earlier request must be ignored")
	}
	if !s.Resolve(second, "for verse 2", true) || s.Explanation() != "for verse 2" {
		t.Fatalf("expected current answer applied, got %q", s.Explanation())
	}
}

func TestAppearance_Bounds(t *testing.T) {
	a := DefaultAppearance()
	if a.FontSize != 36 || a.LineHeight != 2.5 || a.Bold || a.Dark {
		t.Fatalf("unexpected defaults %+v", a)
	}

	for i := 0; i < 30; i++ {
		a.IncreaseFont()
		a.IncreaseLineHeight()
	}
	if a.FontSize != MaxFontSize || a.LineHeight != MaxLineHeight {
		t.Fatalf("expected upper bounds, got %d %.1f", a.FontSize, a.LineHeight)
	}
	for i := 0; i < 30; i++ {
		a.DecreaseFont()
		a.DecreaseLineHeight()
	}
	if a.FontSize != MinFontSize || a.LineHeight != MinLineHeight {
		t.Fatalf("expected lower bounds, got %d %.1f", a.FontSize, a.LineHeight)
	}

	a = DefaultAppearance()
	a.IncreaseLineHeight()
	if a.LineHeight != 2.7 {
		t.Fatalf("expected one decimal step to 2.7, got %v", a.LineHeight)
	}
}

func TestAppearance_Layout(t *testing.T) {
	a := DefaultAppearance()
	if got := a.ColumnWidth(100); got != 100 {
		t.Fatalf("default font should use full width, got %d", got)
	}
	a.FontSize = 60
	if got := a.ColumnWidth(100); got != 60 {
		t.Fatalf("expected 60 columns at size 60, got %d", got)
	}
	a.FontSize = 20
	if got := a.ColumnWidth(100); got != 100 {
		t.Fatalf("expected small font capped at available width, got %d", got)
	}
	if got := a.ColumnWidth(0); got != 80 {
		t.Fatalf("expected fallback width, got %d", got)
	}

	a.LineHeight = 2.5
	if got := a.VerseGap(); got != 2 {
		t.Fatalf("expected gap 2, got %d", got)
	}
	a.LineHeight = 1.5
	if got := a.VerseGap(); got != 1 {
		t.Fatalf("expected gap 1, got %d", got)
	}
}

func TestFilterChapters(t *testing.T) {
	chapters := []quran.Chapter{
		{Number: 1, Name: "سُورَةُ ٱلْفَاتِحَةِ", EnglishName: "Al-Faatiha"},
		{Number: 2, Name: "سُورَةُ البَقَرَةِ", EnglishName: "Al-Baqara"},
		{Number: 18, Name: "سُورَةُ الكَهۡفِ", EnglishName: "Al-Kahf"},
	}

	if got := FilterChapters(chapters, ""); len(got) != 3 {
		t.Fatalf("expected empty term to match all, got %d", len(got))
	}
	if got := FilterChapters(chapters, "kahf"); len(got) != 1 || got[0].Number != 18 {
		t.Fatalf("expected english match, got %+v", got)
	}
	if got := FilterChapters(chapters, "البَقَرَةِ"); len(got) != 1 || got[0].Number != 2 {
		t.Fatalf("expected arabic match, got %+v", got)
	}
	if got := FilterChapters(chapters, "1"); len(got) != 1 || got[0].Number != 1 {
		t.Fatalf("expected exact number match only, got %+v", got)
	}
	if got := FilterChapters(chapters, "zzz"); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}
