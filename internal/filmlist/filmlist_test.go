package filmlist

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

const sampleDocument = `{
  "Filmliste": ["28.08.2026, 09:00", "28.08.2026, 07:00", "3", "MSearch [Vers.: 3.1.139]", "abc"],
  "Filmliste": ["Sender", "Thema", "Titel", "Datum", "Zeit", "Dauer", "Größe [MB]", "Beschreibung", "Url"],
  "X": ["SWR", "Eisenbahn-Romantik", "Die Gotthardbahn", "10.07.2006", "20:15:00", "00:43:25", "450", "Unterwegs am Gotthard. (Folge 1)", "https://example.org/1.mp4"],
  "X": ["ARD", "Quarks", "Warum Züge Verspätung haben", "11.07.2006", "21:00:00", "00:43:25", "450", "Wissenschaft.", "https://example.org/2.mp4"],
  "X": ["SWR", "Eisenbahn – Romantik", "Schmalspur im Harz", "17.07.2006", "20:15:00", "00:43:25", "450", "Dampf im Harz. Folge 2", "https://example.org/3.mp4"],
  "X": ["SWR", "Eisenbahn-Romantik", "Kurzmeldung", "18.07.2006"]
}`

func TestExtractFiltersAndSkipsMetadata(t *testing.T) {
	records, err := Extract(strings.NewReader(sampleDocument), Keywords("Eisenbahn-Romantik"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Extract kept %d records, want 2", len(records))
	}
	if records[0].Title != "Die Gotthardbahn" {
		t.Fatalf("first record title = %q", records[0].Title)
	}
	// Dash variant in the topic still matches.
	if records[1].Title != "Schmalspur im Harz" {
		t.Fatalf("second record title = %q", records[1].Title)
	}
	if records[1].URL != "https://example.org/3.mp4" {
		t.Fatalf("second record url = %q", records[1].URL)
	}
}

func TestExtractRejectsNonObject(t *testing.T) {
	if _, err := Extract(strings.NewReader(`["not", "an", "object"]`), Keywords("x")); err == nil {
		t.Fatal("expected error for non-object document")
	}
}

func TestEpisodeNumber(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want int
		ok   bool
	}{
		{name: "parenthesized", desc: "Unterwegs am Gotthard. (Folge 107)", want: 107, ok: true},
		{name: "bare", desc: "Folge 2 über den Harz", want: 2, ok: true},
		{name: "missing", desc: "Eine Sondersendung ohne Nummer", ok: false},
		{name: "word boundary", desc: "Erfolge 33 zählen nicht", ok: false},
		{name: "empty", desc: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Description: tt.desc}
			got, ok := r.EpisodeNumber()
			if ok != tt.ok || got != tt.want {
				t.Fatalf("EpisodeNumber() = %d, %v; want %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	got := Keywords("Eisenbahn-Romantik")
	if len(got) != 2 || got[0] != "eisenbahn" || got[1] != "romantik" {
		t.Fatalf("Keywords = %v", got)
	}
}

func TestMatchesKeywordsRequiresAllInOneField(t *testing.T) {
	r := Record{Topic: "Eisenbahn", Title: "Romantik pur"}
	if r.MatchesKeywords(Keywords("Eisenbahn-Romantik")) {
		t.Fatal("keywords split across fields must not match")
	}
	r.Description = "Die Reihe Eisenbahn-Romantik zeigt..."
	if !r.MatchesKeywords(Keywords("Eisenbahn-Romantik")) {
		t.Fatal("expected description match")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	records := []Record{
		{
			Station: "SWR", Topic: "Eisenbahn-Romantik", Title: "Die Gotthardbahn",
			Date: "10.07.2006", StartTime: "20:15:00", Duration: "00:43:25",
			Size: "450", Description: "(Folge 1)", URL: "https://example.org/1.mp4",
		},
	}
	path := filepath.Join(t.TempDir(), "extract", "filmliste.json")
	if err := Save(path, records); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != records[0] {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestObservationsKeepOnlyNumbered(t *testing.T) {
	records := []Record{
		{Title: "Die Gotthardbahn", Date: "10.07.2006", StartTime: "20:15:00", Duration: "00:43:25", Description: "(Folge 1)"},
		{Title: "Sondersendung", Date: "11.07.2006", StartTime: "21:00:00", Duration: "00:43:25", Description: "ohne Nummer"},
	}
	obs := Observations(records)
	if len(obs) != 1 {
		t.Fatalf("Observations kept %d, want 1", len(obs))
	}
	if obs[0].Episode != 1 || obs[0].Title != "Die Gotthardbahn" {
		t.Fatalf("unexpected observation: %+v", obs[0])
	}
}

func TestFilterMinDuration(t *testing.T) {
	obs := Observations([]Record{
		{Title: "Lang", Duration: "00:43:25", Description: "Folge 1"},
		{Title: "Kurz", Duration: "00:05:00", Description: "Folge 2"},
	})
	kept := FilterMinDuration(obs, 20)
	if len(kept) != 1 || kept[0].Title != "Lang" {
		t.Fatalf("FilterMinDuration kept %+v", kept)
	}
	if got := FilterMinDuration(obs, 0); len(got) != 2 {
		t.Fatalf("zero minimum should keep everything, got %d", len(got))
	}
}

func TestWriteObservationsCSV(t *testing.T) {
	obs := Observations([]Record{
		{Title: "Die Gotthardbahn", Date: "10.07.2006", StartTime: "20:15:00", Duration: "00:43:25", Description: "(Folge 1)"},
	})
	var buf bytes.Buffer
	if err := WriteObservationsCSV(&buf, obs); err != nil {
		t.Fatalf("WriteObservationsCSV failed: %v", err)
	}
	want := "title,date,start_time,duration,episode\nDie Gotthardbahn,10.07.2006,20:15:00,00:43:25,1\n"
	if buf.String() != want {
		t.Fatalf("csv output = %q, want %q", buf.String(), want)
	}
}

func TestDownloadStreamsXZ(t *testing.T) {
	var compressed bytes.Buffer
	xw, err := xz.NewWriter(&compressed)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write([]byte(sampleDocument)); err != nil {
		t.Fatalf("compress sample: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("close xz writer: %v", err)
	}

	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write(compressed.Bytes())
	}))
	defer server.Close()

	records, err := Download(context.Background(), server.Client(), server.URL, "bahnarchiv-test/1.0", Keywords("Eisenbahn-Romantik"))
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Download kept %d records, want 2", len(records))
	}
	if gotAgent != "bahnarchiv-test/1.0" {
		t.Fatalf("user agent = %q", gotAgent)
	}
}

func TestDownloadRejectsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	if _, err := Download(context.Background(), server.Client(), server.URL, "ua", Keywords("x")); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
