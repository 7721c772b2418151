package quran

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// ChapterCount is the number of chapters in the text.
	ChapterCount = 114
	// UthmaniEdition is the text edition requested for chapter detail.
	UthmaniEdition = "quran-uthmani"
)

// Chapter is the index entry for one surah.
type Chapter struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

func (c Chapter) IsMeccan() bool {
	return c.RevelationType == "Meccan"
}

// Sajda is true for prostration verses. The API sends either false or an
// object describing the prostration.
type Sajda bool

func (s *Sajda) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("false")), bytes.Equal(trimmed, []byte("null")):
		*s = false
	case bytes.Equal(trimmed, []byte("true")):
		*s = true
	case len(trimmed) > 0 && trimmed[0] == '{':
		*s = true
	default:
		return fmt.Errorf("unexpected sajda value %s", trimmed)
	}
	return nil
}

type Verse struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Juz           int    `json:"juz"`
	Manzil        int    `json:"manzil"`
	Page          int    `json:"page"`
	Ruku          int    `json:"ruku"`
	HizbQuarter   int    `json:"hizbQuarter"`
	Sajda         Sajda  `json:"sajda"`
}

type Edition struct {
	Identifier  string `json:"identifier"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Format      string `json:"format"`
	Type        string `json:"type"`
}

type ChapterDetail struct {
	Chapter
	Ayahs   []Verse `json:"ayahs"`
	Edition Edition `json:"edition"`
}

type envelope[T any] struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   T      `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) ListChapters(ctx context.Context) ([]Chapter, error) {
	chapters, err := getData[[]Chapter](ctx, c, "/surah", "chapter list")
	if err != nil {
		return nil, err
	}
	return chapters, nil
}

func (c *Client) GetChapter(ctx context.Context, number int) (*ChapterDetail, error) {
	if number < 1 || number > ChapterCount {
		return nil, fmt.Errorf("chapter number out of range: %d", number)
	}

	path := fmt.Sprintf("/surah/%d/%s", number, UthmaniEdition)
	detail, err := getData[ChapterDetail](ctx, c, path, fmt.Sprintf("chapter %d", number))
	if err != nil {
		return nil, err
	}
	if err := checkVerseOrder(detail.Ayahs); err != nil {
		return nil, fmt.Errorf("chapter %d: %w", number, err)
	}
	return &detail, nil
}

func checkVerseOrder(verses []Verse) error {
	if len(verses) == 0 {
		return fmt.Errorf("response has no verses")
	}
	for i, v := range verses {
		if v.NumberInSurah != i+1 {
			return fmt.Errorf("verse %d out of order at position %d", v.NumberInSurah, i+1)
		}
	}
	return nil
}

func getData[T any](ctx context.Context, c *Client, path, resource string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s request failed: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return zero, fmt.Errorf("%s failed with status %d: %s", resource, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("decode %s response: %w", resource, err)
	}
	if env.Code != http.StatusOK {
		return zero, fmt.Errorf("%s returned code %d: %s", resource, env.Code, env.Status)
	}
	return env.Data, nil
}
