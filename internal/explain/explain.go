// Package explain asks a generative model for hadith records and verse
// explanations and degrades every failure into an empty result.
package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/glabrego/noor-cli/internal/gemini"
	"github.com/glabrego/noor-cli/internal/textutil"
)

// VerseFallback is shown when the model answered with no text.
const VerseFallback = "عذراً، لم يتم العثور على تفسير في الوقت الحالي."

type Hadith struct {
	Arabic      string `json:"hadithArabic"`
	Source      string `json:"source"`
	Grade       string `json:"grade"`
	Explanation string `json:"explanation"`
}

// Weak reports whether the record is graded weak or fabricated.
func (h Hadith) Weak() bool {
	return IsWeakGrade(h.Grade)
}

// Generator is the subset of the model client this package needs.
type Generator interface {
	GenerateContent(ctx context.Context, r gemini.Request) (string, error)
}

type Client struct {
	gen   Generator
	log   zerolog.Logger
	newID func() string
}

func NewClient(gen Generator, logger zerolog.Logger) *Client {
	return &Client{
		gen:   gen,
		log:   logger.With().Str("component", "explain").Logger(),
		newID: uuid.NewString,
	}
}

func HadithPrompt(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "Provide a random authentic Hadith (Sahih) in Arabic (with Tashkeel) about good character or worship. " +
			"Include the source, grade (Sahih), and a detailed explanation in Arabic."
	}
	return fmt.Sprintf("Provide a Hadith about %q in Arabic (with Tashkeel). "+
		"Include the source (e.g., Sahih Bukhari), the grade (Authentic/Sahih, Hasan, or Weak/Da'if), "+
		"and a detailed explanation in Arabic.", topic)
}

func VersePrompt(chapterName string, verseNumber int, verseText string) string {
	return fmt.Sprintf(`Provide a clear, simple, and concise Tafsir (explanation) in Arabic for the following verse from the Holy Quran.

Surah: %s
Ayah Number: %d
Ayah Text: "%s"

The explanation should be easy to understand for a general reader. If applicable, reference well-known Tafsir scholars (like Al-Sa'di or Ibn Kathir) briefly.`, chapterName, verseNumber, verseText)
}

// HadithSchema is the structured output requested for Hadith.
func HadithSchema() *gemini.Schema {
	str := func(desc string) *gemini.Schema {
		return &gemini.Schema{Type: gemini.TypeString, Description: desc}
	}
	return &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"hadithArabic": str("The text of the hadith in Arabic with diacritics (tashkeel)"),
			"source":       str("The source book of the hadith (e.g. Sahih Muslim)"),
			"grade":        str("The grade of the hadith in Arabic (e.g., صحيح, حسن, ضعيف)"),
			"explanation":  str("A detailed explanation of the hadith in Arabic"),
		},
		Required: []string{"hadithArabic", "source", "grade", "explanation"},
	}
}

// Hadith returns one record about topic, or a random authentic one when
// topic is blank. Any failure yields nil.
func (c *Client) Hadith(ctx context.Context, topic string) *Hadith {
	log := c.log.With().Str("request_id", c.newID()).Str("op", "hadith").Logger()

	text, err := c.gen.GenerateContent(ctx, gemini.Request{
		Prompt: HadithPrompt(topic),
		Config: &gemini.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   HadithSchema(),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("hadith request failed")
		return nil
	}

	text = trimFence(text)
	if text == "" {
		log.Warn().Msg("hadith response was empty")
		return nil
	}

	var h Hadith
	if err := json.Unmarshal([]byte(text), &h); err != nil {
		log.Error().Err(err).Msg("decode hadith response")
		return nil
	}
	h.Arabic = strings.TrimSpace(h.Arabic)
	if h.Arabic == "" {
		log.Warn().Msg("hadith response had no text")
		return nil
	}
	h.Source = strings.TrimSpace(h.Source)
	h.Grade = strings.TrimSpace(h.Grade)
	h.Explanation = textutil.StripMarkup(h.Explanation)

	log.Debug().Str("grade", h.Grade).Msg("hadith received")
	return &h
}

// VerseExplanation returns a plain-text explanation of one verse. ok is
// false only when the request itself failed.
func (c *Client) VerseExplanation(ctx context.Context, chapterName string, verseNumber int, verseText string) (string, bool) {
	log := c.log.With().
		Str("request_id", c.newID()).
		Str("op", "verse_explanation").
		Int("verse", verseNumber).
		Logger()

	text, err := c.gen.GenerateContent(ctx, gemini.Request{
		Prompt: VersePrompt(chapterName, verseNumber, verseText),
	})
	if err != nil {
		log.Error().Err(err).Msg("explanation request failed")
		return "", false
	}

	text = textutil.StripMarkup(text)
	if text == "" {
		log.Warn().Msg("explanation response was empty")
		return VerseFallback, true
	}
	return text, true
}

func trimFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// IsWeakGrade reports whether a grade string marks a weak or fabricated
// narration, in Arabic or transliterated English.
func IsWeakGrade(grade string) bool {
	if strings.Contains(grade, "ضعيف") || strings.Contains(grade, "موضوع") {
		return true
	}
	lower := strings.ToLower(grade)
	return strings.Contains(lower, "weak") || strings.Contains(lower, "daif")
}
