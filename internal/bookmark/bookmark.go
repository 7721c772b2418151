// Package bookmark persists the single "last read" position.
package bookmark

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Key is the storage key holding the serialized bookmark.
const Key = "quran_bookmark"

const maxChapter = 114

type Bookmark struct {
	SurahNumber int    `json:"surahNumber"`
	SurahName   string `json:"surahName"`
	AyahNumber  int    `json:"ayahNumber"`
	Timestamp   int64  `json:"timestamp"`
}

func New(surahNumber int, surahName string, ayahNumber int, at time.Time) Bookmark {
	return Bookmark{
		SurahNumber: surahNumber,
		SurahName:   surahName,
		AyahNumber:  ayahNumber,
		Timestamp:   at.UnixMilli(),
	}
}

// Valid reports whether the record points at a real chapter and verse.
// Whether the verse exists in that chapter is the writer's concern.
func (b Bookmark) Valid() bool {
	return b.SurahNumber >= 1 && b.SurahNumber <= maxChapter && b.AyahNumber >= 1
}

func (b Bookmark) SavedAt() time.Time {
	return time.UnixMilli(b.Timestamp)
}

type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	kv  KV
	log zerolog.Logger
}

func NewStore(kv KV, logger zerolog.Logger) *Store {
	return &Store{kv: kv, log: logger.With().Str("component", "bookmark").Logger()}
}

// Load returns the saved bookmark, or nil when none is stored or the
// stored value cannot be used.
func (s *Store) Load(ctx context.Context) *Bookmark {
	raw, found, err := s.kv.Get(ctx, Key)
	if err != nil {
		s.log.Warn().Err(err).Msg("read bookmark failed")
		return nil
	}
	if !found {
		return nil
	}

	var b Bookmark
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		s.log.Warn().Err(err).Str("raw", raw).Msg("stored bookmark is malformed")
		return nil
	}
	if !b.Valid() {
		s.log.Warn().Int("surah", b.SurahNumber).Int("ayah", b.AyahNumber).Msg("stored bookmark is out of range")
		return nil
	}
	return &b
}

func (s *Store) Save(ctx context.Context, b Bookmark) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode bookmark: %w", err)
	}
	if err := s.kv.Put(ctx, Key, string(data)); err != nil {
		s.log.Error().Err(err).Int("surah", b.SurahNumber).Int("ayah", b.AyahNumber).Msg("save bookmark failed")
		return fmt.Errorf("save bookmark: %w", err)
	}
	s.log.Debug().Int("surah", b.SurahNumber).Int("ayah", b.AyahNumber).Msg("bookmark saved")
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear bookmark: %w", err)
	}
	return nil
}
