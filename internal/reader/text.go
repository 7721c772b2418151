package reader

import "strings"

// OpeningFormula is the basmala as spelled in the uthmani edition.
const OpeningFormula = "بِسۡمِ ٱللَّهِ ٱلرَّحۡمَـٰنِ ٱلرَّحِيمِ"

const repentanceChapter = 9

// ShowsOpeningHeader reports whether page 1 of a chapter starts with the
// formula header. Chapter 9 never does.
func ShowsOpeningHeader(chapter int) bool {
	return chapter != repentanceChapter
}

// DisplayText returns the text shown for a verse. The edition prefixes
// verse 1 of most chapters with the formula, which the header already
// shows. Chapter 1 keeps it because there it is the verse itself.
func DisplayText(chapter, verse int, text string) string {
	if chapter <= 1 || chapter == repentanceChapter || verse != 1 {
		return text
	}
	trimmed := strings.TrimPrefix(text, "\ufeff")
	if !strings.HasPrefix(trimmed, OpeningFormula) {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, OpeningFormula))
}
