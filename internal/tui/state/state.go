package state

import (
	"github.com/glabrego/noor-cli/internal/quran"
)

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// ListRows is the number of chapter rows that fit under the home screen
// chrome.
func ListRows(height int, hasBookmark bool) int {
	if height <= 0 {
		return 20
	}
	chrome := 7
	if hasBookmark {
		chrome += 3
	}
	rows := height - chrome
	if rows < 3 {
		rows = 3
	}
	return rows
}

func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

// CenteredOffset is the viewport offset that puts line in the middle of
// a view of the given height, clamped to the content.
func CenteredOffset(line, viewHeight, totalLines int) int {
	offset := line - viewHeight/2
	maxOffset := totalLines - viewHeight
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}

// VisibleOffset returns the smallest scroll change that keeps the block
// [line, line+size) inside the view.
func VisibleOffset(current, line, size, viewHeight int) int {
	if viewHeight <= 0 {
		return current
	}
	if line < current {
		return line
	}
	if end := line + size; end > current+viewHeight {
		next := end - viewHeight
		if next > line {
			next = line
		}
		return next
	}
	return current
}

func ChapterIndexByNumber(chapters []quran.Chapter, number int) int {
	for i, c := range chapters {
		if c.Number == number {
			return i
		}
	}
	return -1
}

func VerseIndex(verses []quran.Verse, numberInSurah int) int {
	for i, v := range verses {
		if v.NumberInSurah == numberInSurah {
			return i
		}
	}
	return -1
}
