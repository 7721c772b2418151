package bookmark

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/noor-cli/internal/storage"
)

type memKV struct {
	values map[string]string
	getErr error
	putErr error
}

func newMemKV() *memKV {
	return &memKV{values: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Put(_ context.Context, key, value string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.values[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(newMemKV(), zerolog.Nop())
	assert.Nil(t, s.Load(context.Background()))
}

func TestStore_LoadMalformed(t *testing.T) {
	kv := newMemKV()
	kv.values[Key] = "{not json"
	s := NewStore(kv, zerolog.Nop())

	assert.Nil(t, s.Load(context.Background()))
}

func TestStore_LoadOutOfRange(t *testing.T) {
	kv := newMemKV()
	kv.values[Key] = `{"surahNumber":200,"surahName":"x","ayahNumber":1,"timestamp":1}`
	s := NewStore(kv, zerolog.Nop())

	assert.Nil(t, s.Load(context.Background()))
}

func TestStore_LoadStorageError(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk gone")
	s := NewStore(kv, zerolog.Nop())

	assert.Nil(t, s.Load(context.Background()))
}

func TestStore_SaveThenLoadLastWriteWins(t *testing.T) {
	s := NewStore(newMemKV(), zerolog.Nop())
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, New(2, "البقرة", 30, at)))
	second := New(18, "الكهف", 10, at.Add(time.Minute))
	require.NoError(t, s.Save(ctx, second))

	loaded := s.Load(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, second, *loaded)
	assert.True(t, loaded.SavedAt().Equal(at.Add(time.Minute)))
}

func TestStore_SaveUsesCamelCaseJSONKeys(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv, zerolog.Nop())

	require.NoError(t, s.Save(context.Background(), Bookmark{SurahNumber: 1, SurahName: "الفاتحة", AyahNumber: 2, Timestamp: 5}))
	assert.JSONEq(t, `{"surahNumber":1,"surahName":"الفاتحة","ayahNumber":2,"timestamp":5}`, kv.values[Key])
}

func TestStore_SaveError(t *testing.T) {
	kv := newMemKV()
	kv.putErr = errors.New("read-only")
	s := NewStore(kv, zerolog.Nop())

	err := s.Save(context.Background(), New(1, "الفاتحة", 1, time.Now()))
	assert.Error(t, err)
}

func TestStore_Clear(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, New(1, "الفاتحة", 1, time.Now())))
	require.NoError(t, s.Clear(ctx))
	assert.Nil(t, s.Load(ctx))
}

func TestStore_SQLiteRoundTrip(t *testing.T) {
	repo, err := storage.NewRepository(filepath.Join(t.TempDir(), "noor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	s := NewStore(repo, zerolog.Nop())
	want := New(36, "يس", 58, time.UnixMilli(1767225600000))
	require.NoError(t, s.Save(ctx, want))

	got := s.Load(ctx)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestBookmark_Valid(t *testing.T) {
	assert.True(t, Bookmark{SurahNumber: 1, AyahNumber: 1}.Valid())
	assert.True(t, Bookmark{SurahNumber: 114, AyahNumber: 6}.Valid())
	assert.False(t, Bookmark{SurahNumber: 0, AyahNumber: 1}.Valid())
	assert.False(t, Bookmark{SurahNumber: 115, AyahNumber: 1}.Valid())
	assert.False(t, Bookmark{SurahNumber: 2, AyahNumber: 0}.Valid())
}
