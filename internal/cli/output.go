package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/glabrego/noor-cli/internal/bookmark"
	"github.com/glabrego/noor-cli/internal/explain"
	"github.com/glabrego/noor-cli/internal/quran"
	"github.com/glabrego/noor-cli/internal/textutil"
)

const (
	englishColumn = 22
	wrapWidth     = 80
)

// WriteChapters prints one line per chapter. The Arabic name goes last so
// bidi rendering in the terminal cannot shift the other columns.
func WriteChapters(w io.Writer, chapters []quran.Chapter) {
	if len(chapters) == 0 {
		fmt.Fprintln(w, "no chapters match")
		return
	}
	for _, c := range chapters {
		kind := "Medinan"
		if c.IsMeccan() {
			kind = "Meccan"
		}
		fmt.Fprintf(w, "%3d  %s  %-7s  %3d verses  %s\n",
			c.Number,
			runewidth.FillRight(runewidth.Truncate(c.EnglishName, englishColumn, "…"), englishColumn),
			kind,
			c.NumberOfAyahs,
			c.Name,
		)
	}
}

func WriteBookmark(w io.Writer, b *bookmark.Bookmark) {
	if b == nil {
		fmt.Fprintln(w, "no bookmark saved")
		return
	}
	fmt.Fprintf(w, "chapter %d (%s), verse %d\n", b.SurahNumber, b.SurahName, b.AyahNumber)
	if b.Timestamp > 0 {
		fmt.Fprintf(w, "saved %s\n", b.SavedAt().Local().Format("2006-01-02 15:04"))
	}
}

func WriteHadith(w io.Writer, h explain.Hadith) {
	grade := h.Grade
	if h.Weak() {
		grade += " (weak)"
	}
	fmt.Fprintln(w, textutil.Wrap(h.Arabic, wrapWidth))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "source: %s\n", h.Source)
	fmt.Fprintf(w, "grade:  %s\n", grade)
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimSpace(textutil.Wrap(h.Explanation, wrapWidth)))
}
