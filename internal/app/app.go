package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/glabrego/noor-cli/internal/bookmark"
	"github.com/glabrego/noor-cli/internal/explain"
	"github.com/glabrego/noor-cli/internal/quran"
)

type QuranClient interface {
	ListChapters(ctx context.Context) ([]quran.Chapter, error)
	GetChapter(ctx context.Context, number int) (*quran.ChapterDetail, error)
}

type Explainer interface {
	Hadith(ctx context.Context, topic string) *explain.Hadith
	VerseExplanation(ctx context.Context, chapterName string, verseNumber int, verseText string) (string, bool)
}

type BookmarkStore interface {
	Load(ctx context.Context) *bookmark.Bookmark
	Save(ctx context.Context, b bookmark.Bookmark) error
	Clear(ctx context.Context) error
}

// Service is the boundary between the screens and the remote sources.
// Content failures are logged and surface as empty results.
type Service struct {
	quran     QuranClient
	explainer Explainer
	bookmarks BookmarkStore
	log       zerolog.Logger
}

func NewService(q QuranClient, e Explainer, b BookmarkStore, logger zerolog.Logger) *Service {
	return &Service{
		quran:     q,
		explainer: e,
		bookmarks: b,
		log:       logger.With().Str("component", "app").Logger(),
	}
}

// Chapters returns the chapter index, or an empty list on failure.
func (s *Service) Chapters(ctx context.Context) []quran.Chapter {
	chapters, err := s.quran.ListChapters(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch chapter index")
		return []quran.Chapter{}
	}
	return chapters
}

// Chapter returns one chapter with its verses, or nil on failure.
func (s *Service) Chapter(ctx context.Context, number int) *quran.ChapterDetail {
	detail, err := s.quran.GetChapter(ctx, number)
	if err != nil {
		s.log.Error().Err(err).Int("chapter", number).Msg("fetch chapter")
		return nil
	}
	if detail == nil {
		s.log.Warn().Int("chapter", number).Msg("chapter not found")
	}
	return detail
}

func (s *Service) Hadith(ctx context.Context, topic string) *explain.Hadith {
	return s.explainer.Hadith(ctx, topic)
}

func (s *Service) VerseExplanation(ctx context.Context, chapterName string, verseNumber int, verseText string) (string, bool) {
	return s.explainer.VerseExplanation(ctx, chapterName, verseNumber, verseText)
}

func (s *Service) LoadBookmark(ctx context.Context) *bookmark.Bookmark {
	return s.bookmarks.Load(ctx)
}

func (s *Service) SaveBookmark(ctx context.Context, b bookmark.Bookmark) error {
	if !b.Valid() {
		return fmt.Errorf("refusing to save bookmark for chapter %d verse %d", b.SurahNumber, b.AyahNumber)
	}
	if err := s.bookmarks.Save(ctx, b); err != nil {
		return fmt.Errorf("persist bookmark: %w", err)
	}
	return nil
}

func (s *Service) ClearBookmark(ctx context.Context) error {
	if err := s.bookmarks.Clear(ctx); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}
