package state

import (
	"testing"

	"github.com/glabrego/noor-cli/internal/quran"
)

func TestClampCursor(t *testing.T) {
	if got := ClampCursor(-1, 3); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampCursor(3, 3); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := ClampCursor(1, 3); got != 1 {
		t.Fatalf("expected keep 1, got %d", got)
	}
	if got := ClampCursor(5, 0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestListRows(t *testing.T) {
	if got := ListRows(0, false); got != 20 {
		t.Fatalf("expected default 20 rows, got %d", got)
	}
	if got := ListRows(30, false); got != 23 {
		t.Fatalf("expected 23 rows, got %d", got)
	}
	if got := ListRows(30, true); got != 20 {
		t.Fatalf("expected 20 rows with bookmark box, got %d", got)
	}
	if got := ListRows(5, true); got != 3 {
		t.Fatalf("expected minimum 3 rows, got %d", got)
	}
}

func TestCenteredWindow(t *testing.T) {
	start, end := CenteredWindow(114, 0, 10)
	if start != 0 || end != 10 {
		t.Fatalf("expected top window, got %d..%d", start, end)
	}
	start, end = CenteredWindow(114, 50, 10)
	if start != 45 || end != 55 {
		t.Fatalf("expected centered window, got %d..%d", start, end)
	}
	start, end = CenteredWindow(114, 113, 10)
	if start != 104 || end != 114 {
		t.Fatalf("expected bottom window, got %d..%d", start, end)
	}
	start, end = CenteredWindow(5, 3, 10)
	if start != 0 || end != 5 {
		t.Fatalf("expected whole list, got %d..%d", start, end)
	}
}

func TestCenteredOffset(t *testing.T) {
	if got := CenteredOffset(50, 20, 200); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
	if got := CenteredOffset(3, 20, 200); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := CenteredOffset(195, 20, 200); got != 180 {
		t.Fatalf("expected clamp to bottom, got %d", got)
	}
	if got := CenteredOffset(5, 20, 10); got != 0 {
		t.Fatalf("expected 0 when content is shorter than view, got %d", got)
	}
}

func TestVisibleOffset(t *testing.T) {
	if got := VisibleOffset(10, 5, 2, 10); got != 5 {
		t.Fatalf("expected scroll up to 5, got %d", got)
	}
	if got := VisibleOffset(0, 12, 3, 10); got != 5 {
		t.Fatalf("expected scroll down to 5, got %d", got)
	}
	if got := VisibleOffset(0, 4, 2, 10); got != 0 {
		t.Fatalf("expected no change, got %d", got)
	}
	if got := VisibleOffset(0, 30, 15, 10); got != 30 {
		t.Fatalf("expected block taller than view to align its top, got %d", got)
	}
}

func TestLookups(t *testing.T) {
	chapters := []quran.Chapter{{Number: 1}, {Number: 2}, {Number: 3}}
	if got := ChapterIndexByNumber(chapters, 2); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := ChapterIndexByNumber(chapters, 9); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}

	verses := []quran.Verse{{NumberInSurah: 26}, {NumberInSurah: 27}}
	if got := VerseIndex(verses, 27); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := VerseIndex(verses, 1); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
