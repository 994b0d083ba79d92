package naming

import (
	"testing"

	"bahnarchiv/internal/catalog"
	"bahnarchiv/internal/epkey"
)

func TestBuildComplete(t *testing.T) {
	s := NewScheme("Eisenbahn-Romantik")
	ep := catalog.Episode{
		SeasonEpisodeCode: "S01E01",
		AirDateISO:        "2006-07-10",
		AbsEpisode:        1,
		Title:             "Die Gotthardbahn",
	}
	got := s.Build(ep)
	want := "Eisenbahn-Romantik S01E01 - 2006-07-10 - 1 - Die Gotthardbahn.mp4"
	if got != want {
		t.Fatalf("Build() = %q, want %q", got, want)
	}
}

func TestBuildPlaceholders(t *testing.T) {
	s := NewScheme("Eisenbahn-Romantik")
	got := s.Build(catalog.Episode{})
	want := "Eisenbahn-Romantik S00E00 - 0000-00-00 - 0 - Unknown Title.mp4"
	if got != want {
		t.Fatalf("Build() = %q, want %q", got, want)
	}
}

func TestBuildSanitizesTitle(t *testing.T) {
	s := NewScheme("Eisenbahn-Romantik")
	ep := catalog.Episode{
		SeasonEpisodeCode: "S02E05",
		AirDateISO:        "2008-03-02",
		AbsEpisode:        42,
		Title:             `Loks: gestern/heute?`,
	}
	got := s.Build(ep)
	want := "Eisenbahn-Romantik S02E05 - 2008-03-02 - 42 - Loks gestern-heute.mp4"
	if got != want {
		t.Fatalf("Build() = %q, want %q", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	s := NewScheme("Eisenbahn-Romantik")
	ep := catalog.Episode{
		SeasonEpisodeCode: "S0007E12",
		AirDateISO:        "2011-11-20",
		AbsEpisode:        390,
		Title:             "Schmalspur im Harz",
	}
	name := s.Build(ep)
	p, ok := s.Parse(name)
	if !ok {
		t.Fatalf("Parse(%q) did not match", name)
	}
	if p.Code != "S0007E12" || p.Date != "2011-11-20" || p.Abs != 390 || p.Title != "Schmalspur im Harz" {
		t.Fatalf("Parse(%q) = %+v", name, p)
	}
}

func TestParseQualifierSuffix(t *testing.T) {
	s := NewScheme("Eisenbahn-Romantik")
	p, ok := s.Parse("Eisenbahn-Romantik S0000E31 - 2015-12-25 - 890XL - Winterdampf.mp4")
	if !ok {
		t.Fatal("Parse did not match")
	}
	if p.AbsRaw != "890XL" {
		t.Fatalf("AbsRaw = %q, want %q", p.AbsRaw, "890XL")
	}
	if p.Abs != 890 {
		t.Fatalf("Abs = %d, want 890", p.Abs)
	}
}

func TestParseRejectsLooseNames(t *testing.T) {
	s := NewScheme("Eisenbahn-Romantik")
	for _, name := range []string{
		"Eisenbahn-Romantik Die Gotthardbahn.mp4",
		"S01E01 - 2006-07-10 - 1 - Die Gotthardbahn.mp4",
		"Eisenbahn-Romantik S01E01 - 2006-07-10 - Die Gotthardbahn.mp4",
		"Eisenbahn-Romantik S01E01 - 2006-07-10 - 1 - Die Gotthardbahn.mkv",
	} {
		if _, ok := s.Parse(name); ok {
			t.Errorf("Parse(%q) matched, want rejection", name)
		}
	}
}

func TestBuildFilenameYieldsSameKey(t *testing.T) {
	s := NewScheme("Eisenbahn-Romantik")
	ep := catalog.Episode{
		SeasonEpisodeCode: "S01E01",
		AirDateISO:        "2006-07-10",
		AbsEpisode:        1,
		Title:             "Die Gotthardbahn",
	}
	name := s.Build(ep)
	fromFile, ok := epkey.FromFilename(name)
	if !ok {
		t.Fatalf("FromFilename(%q) did not match", name)
	}
	fromRow := epkey.FromRow(epkey.Row{
		SeasonEpisode: ep.SeasonEpisodeCode,
		Date:          ep.AirDateISO,
		AbsEpisode:    "1",
	})
	if fromFile != fromRow {
		t.Fatalf("key mismatch: filename %q vs row %q", fromFile, fromRow)
	}
}
