package actions

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/noor-cli/internal/bookmark"
	"github.com/glabrego/noor-cli/internal/explain"
	"github.com/glabrego/noor-cli/internal/quran"
)

// User-visible failures of the external actions.
const (
	CopyFailedText = "تعذر نسخ الآية"
	OpenFailedText = "تعذر فتح الرابط أو نسخه"
)

const (
	contentTimeout = 10 * time.Second
	modelTimeout   = 60 * time.Second
)

type Service interface {
	Chapters(ctx context.Context) []quran.Chapter
	Chapter(ctx context.Context, number int) *quran.ChapterDetail
	Hadith(ctx context.Context, topic string) *explain.Hadith
	VerseExplanation(ctx context.Context, chapterName string, verseNumber int, verseText string) (string, bool)
	SaveBookmark(ctx context.Context, b bookmark.Bookmark) error
}

// Mount identifies one visit to a screen. Results carrying an older mount
// belong to a screen the user has left and are dropped.

type ChaptersLoadedMsg struct {
	Mount    int
	Chapters []quran.Chapter
}

type ChapterLoadedMsg struct {
	Mount  int
	Number int
	Detail *quran.ChapterDetail
}

type ExplanationMsg struct {
	Mount       int
	Ticket      int
	VerseNumber int
	Text        string
	OK          bool
}

type HadithMsg struct {
	Mount  int
	Seq    int
	Hadith *explain.Hadith
}

type BookmarkPersistedMsg struct {
	Bookmark bookmark.Bookmark
	Err      error
}

type ExternalSuccessMsg struct {
	Status string
}

type ExternalErrorMsg struct {
	Err error
}

func LoadChaptersCmd(service Service, mount int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), contentTimeout)
		defer cancel()

		return ChaptersLoadedMsg{Mount: mount, Chapters: service.Chapters(ctx)}
	}
}

func LoadChapterCmd(service Service, mount, number int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), contentTimeout)
		defer cancel()

		return ChapterLoadedMsg{Mount: mount, Number: number, Detail: service.Chapter(ctx, number)}
	}
}

func ExplainVerseCmd(service Service, mount, ticket int, chapterName string, verse quran.Verse) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), modelTimeout)
		defer cancel()

		text, ok := service.VerseExplanation(ctx, chapterName, verse.NumberInSurah, verse.Text)
		return ExplanationMsg{
			Mount:       mount,
			Ticket:      ticket,
			VerseNumber: verse.NumberInSurah,
			Text:        text,
			OK:          ok,
		}
	}
}

func FetchHadithCmd(service Service, mount, seq int, topic string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), modelTimeout)
		defer cancel()

		return HadithMsg{Mount: mount, Seq: seq, Hadith: service.Hadith(ctx, topic)}
	}
}

func SaveBookmarkCmd(service Service, b bookmark.Bookmark) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), contentTimeout)
		defer cancel()

		return BookmarkPersistedMsg{Bookmark: b, Err: service.SaveBookmark(ctx, b)}
	}
}

func CopyTextCmd(text string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(text); err == nil {
				return ExternalSuccessMsg{Status: "تم نسخ الآية"}
			}
		}
		return ExternalErrorMsg{Err: errors.New(CopyFailedText)}
	}
}

// OpenURLCmd opens url in the browser and falls back to copying it.
func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return ExternalSuccessMsg{Status: "تم فتح الآية في المتصفح"}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return ExternalSuccessMsg{Status: "تعذر فتح المتصفح، تم نسخ الرابط"}
			}
		}
		return ExternalErrorMsg{Err: errors.New(OpenFailedText)}
	}
}
