package quran

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const chapterListBody = `{"code":200,"status":"OK","data":[
 {"number":1,"name":"سُورَةُ ٱلْفَاتِحَةِ","englishName":"Al-Faatiha","englishNameTranslation":"The Opening","numberOfAyahs":7,"revelationType":"Meccan"},
 {"number":2,"name":"سُورَةُ البَقَرَةِ","englishName":"Al-Baqara","englishNameTranslation":"The Cow","numberOfAyahs":286,"revelationType":"Medinan"}
]}`

const chapterDetailBody = `{"code":200,"status":"OK","data":{
 "number":112,"name":"سُورَةُ الإِخۡلَاصِ","englishName":"Al-Ikhlaas","englishNameTranslation":"Sincerity","revelationType":"Meccan","numberOfAyahs":2,
 "ayahs":[
  {"number":6222,"text":"بِسۡمِ ٱللَّهِ ٱلرَّحۡمَـٰنِ ٱلرَّحِيمِ قُلۡ هُوَ ٱللَّهُ أَحَدٌ","numberInSurah":1,"juz":30,"manzil":7,"page":604,"ruku":550,"hizbQuarter":240,"sajda":false},
  {"number":6223,"text":"ٱللَّهُ ٱلصَّمَدُ","numberInSurah":2,"juz":30,"manzil":7,"page":604,"ruku":550,"hizbQuarter":240,"sajda":{"id":1,"recommended":true,"obligatory":false}}
 ],
 "edition":{"identifier":"quran-uthmani","language":"ar","name":"QuranUthmani","englishName":"Uthmani","format":"text","type":"quran"}
}}`

func TestListChapters_ParsesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/surah" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chapterListBody))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	chapters, err := c.ListChapters(context.Background())
	if err != nil {
		t.Fatalf("ListChapters returned error: %v", err)
	}
	if len(chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(chapters))
	}
	if chapters[1].EnglishName != "Al-Baqara" || chapters[1].NumberOfAyahs != 286 {
		t.Fatalf("unexpected chapter: %+v", chapters[1])
	}
	if !chapters[0].IsMeccan() || chapters[1].IsMeccan() {
		t.Fatalf("unexpected revelation types: %+v", chapters)
	}
}

func TestListChapters_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	_, err := c.ListChapters(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestGetChapter_RequestsUthmaniEdition(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/surah/112/quran-uthmani" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(chapterDetailBody))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", ts.Client())
	detail, err := c.GetChapter(context.Background(), 112)
	if err != nil {
		t.Fatalf("GetChapter returned error: %v", err)
	}
	if detail.Number != 112 || detail.EnglishName != "Al-Ikhlaas" {
		t.Fatalf("unexpected chapter meta: %+v", detail.Chapter)
	}
	if len(detail.Ayahs) != 2 {
		t.Fatalf("expected 2 verses, got %d", len(detail.Ayahs))
	}
	if detail.Ayahs[0].Sajda {
		t.Fatal("expected first verse without sajda")
	}
	if !detail.Ayahs[1].Sajda {
		t.Fatal("expected object sajda to decode as true")
	}
	if detail.Edition.Identifier != UthmaniEdition {
		t.Fatalf("unexpected edition: %+v", detail.Edition)
	}
}

func TestGetChapter_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"status":"Not Found"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	detail, err := c.GetChapter(context.Background(), 5)
	if err == nil {
		t.Fatal("expected error")
	}
	if detail != nil {
		t.Fatalf("expected nil detail, got %+v", detail)
	}
}

func TestGetChapter_EnvelopeErrorCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":400,"status":"Bad Request","data":"Invalid edition"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	if _, err := c.GetChapter(context.Background(), 5); err == nil {
		t.Fatal("expected error for envelope code 400")
	}
}

func TestGetChapter_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	if _, err := c.GetChapter(context.Background(), 5); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGetChapter_RejectsOutOfOrderVerses(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"status":"OK","data":{"number":3,"ayahs":[{"numberInSurah":2,"text":"x"}]}}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	if _, err := c.GetChapter(context.Background(), 3); err == nil {
		t.Fatal("expected ordering error")
	}
}

func TestGetChapter_OutOfRangeSkipsRequest(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	for _, n := range []int{0, 115} {
		if _, err := c.GetChapter(context.Background(), n); err == nil {
			t.Fatalf("expected error for chapter %d", n)
		}
	}
	if called {
		t.Fatal("expected no request for out-of-range chapters")
	}
}

func TestSajda_RejectsUnexpectedValue(t *testing.T) {
	var v Verse
	err := json.Unmarshal([]byte(`{"sajda":"sometimes"}`), &v)
	if err == nil {
		t.Fatal("expected error for string sajda")
	}
}
