package reader

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/glabrego/noor-cli/internal/quran"
	"github.com/glabrego/noor-cli/internal/textutil"
)

// FilterChapters keeps chapters whose Arabic name contains term, whose
// English name contains it ignoring case, or whose number equals it.
func FilterChapters(chapters []quran.Chapter, term string) []quran.Chapter {
	term = strings.TrimSpace(term)
	if term == "" {
		return chapters
	}
	arabic := norm.NFC.String(term)
	out := make([]quran.Chapter, 0, len(chapters))
	for _, c := range chapters {
		switch {
		case strings.Contains(norm.NFC.String(c.Name), arabic),
			textutil.ContainsFold(c.EnglishName, term),
			strconv.Itoa(c.Number) == term:
			out = append(out, c)
		}
	}
	return out
}
