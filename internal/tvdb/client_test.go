package tvdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bahnarchiv/internal/config"
	"bahnarchiv/internal/naming"
)

func TestFetchListingAssignsAbsoluteNumbers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/allseasons/official") {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("User-Agent") != "bahnarchiv-test/1.0" {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(listingHTML))
	}))
	defer server.Close()

	client := NewClient(config.TVDB{
		BaseURL:           server.URL,
		SeriesSlug:        "railway-romance",
		UserAgent:         "bahnarchiv-test/1.0",
		RequestsPerMinute: 600,
		RequestTimeout:    5,
	}, nil)

	scheme := naming.NewScheme("Eisenbahn-Romantik")
	episodes, err := client.FetchListing(context.Background(), scheme)
	if err != nil {
		t.Fatalf("FetchListing failed: %v", err)
	}
	if len(episodes) != 3 {
		t.Fatalf("fetched %d episodes, want 3", len(episodes))
	}
	// Specials sort first (season 0), then the 1991 season.
	if episodes[0].SeasonEpisodeCode != "S0000E01" || episodes[0].AbsEpisode != 1 {
		t.Fatalf("first episode = %+v", episodes[0])
	}
	if episodes[1].SeasonEpisodeCode != "S1991E01" || episodes[1].AbsEpisode != 2 {
		t.Fatalf("second episode = %+v", episodes[1])
	}
	want := "Eisenbahn-Romantik S1991E01 - 1991-04-07 - 2 - Die Gotthardbahn.mp4"
	if episodes[1].TargetFilename != want {
		t.Fatalf("target filename = %q, want %q", episodes[1].TargetFilename, want)
	}
}

func TestFetchListingPropagatesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(config.TVDB{
		BaseURL:           server.URL,
		SeriesSlug:        "railway-romance",
		UserAgent:         "ua",
		RequestsPerMinute: 600,
		RequestTimeout:    5,
	}, nil)

	if _, err := client.FetchListing(context.Background(), naming.NewScheme("X")); err == nil {
		t.Fatal("expected error for 503 response")
	}
}
