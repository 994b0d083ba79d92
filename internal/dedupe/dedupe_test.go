package dedupe

import (
	"reflect"
	"testing"
)

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "typical", in: "00:43:25", want: 2605},
		{name: "with hours", in: "01:28:45", want: 5325},
		{name: "zero", in: "00:00:00", want: 0},
		{name: "padded", in: " 00:30:00 ", want: 1800},
		{name: "two fields", in: "43:25", want: 0},
		{name: "garbage", in: "n/a", want: 0},
		{name: "negative field", in: "00:-1:00", want: 0},
		{name: "empty", in: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationSeconds(tt.in); got != tt.want {
				t.Fatalf("DurationSeconds(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSelectKeepsNewestAiring(t *testing.T) {
	obs := []Observation{
		{Title: "Die Gotthardbahn", Date: "10.07.2006", StartTime: "20:15:00", Duration: "00:43:25", Episode: 1},
		{Title: "Die Gotthardbahn", Date: "03.01.2020", StartTime: "14:15:00", Duration: "00:43:25", Episode: 1},
	}
	got := Select(obs)
	if len(got) != 1 {
		t.Fatalf("Select kept %d observations, want 1", len(got))
	}
	if got[0].Date != "03.01.2020" {
		t.Fatalf("kept airing from %s, want 03.01.2020", got[0].Date)
	}
}

func TestSelectTieBreakers(t *testing.T) {
	// Same date: longer runtime wins; same runtime: later start wins.
	obs := []Observation{
		{Title: "Winterdampf", Date: "25.12.2015", StartTime: "20:15:00", Duration: "00:43:25", Episode: 890},
		{Title: "Winterdampf", Date: "25.12.2015", StartTime: "14:00:00", Duration: "01:28:45", Episode: 890},
		{Title: "Winterdampf", Date: "25.12.2015", StartTime: "10:00:00", Duration: "00:43:25", Episode: 890},
	}
	got := Select(obs)
	if len(got) != 1 {
		t.Fatalf("Select kept %d observations, want 1", len(got))
	}
	if got[0].Duration != "01:28:45" {
		t.Fatalf("kept duration %s, want 01:28:45", got[0].Duration)
	}

	obs = obs[:1]
	obs = append(obs, Observation{Title: "Winterdampf", Date: "25.12.2015", StartTime: "23:30:00", Duration: "00:43:25", Episode: 890})
	got = Select(obs)
	if got[0].StartTime != "23:30:00" {
		t.Fatalf("kept start %s, want 23:30:00", got[0].StartTime)
	}
}

func TestSelectGroupsByEpisodeAndTitle(t *testing.T) {
	obs := []Observation{
		{Title: "Die Gotthardbahn", Date: "10.07.2006", StartTime: "20:15:00", Duration: "00:43:25", Episode: 1},
		{Title: "Schmalspur im Harz", Date: "10.07.2006", StartTime: "21:00:00", Duration: "00:43:25", Episode: 2},
		// Same episode number, distinct title: kept separately.
		{Title: "Schmalspur im Harz Teil 2", Date: "11.07.2006", StartTime: "21:00:00", Duration: "00:43:25", Episode: 2},
	}
	got := Select(obs)
	if len(got) != 3 {
		t.Fatalf("Select kept %d observations, want 3", len(got))
	}
}

func TestSelectTitleVariantsCollapse(t *testing.T) {
	// Umlaut decomposition and punctuation differ, normalized titles agree.
	obs := []Observation{
		{Title: "Zahnradbahnen der Schweiz", Date: "01.05.2010", StartTime: "20:15:00", Duration: "00:43:25", Episode: 5},
		{Title: "Zahnradbahnen, der Schweiz", Date: "07.05.2010", StartTime: "20:15:00", Duration: "00:43:25", Episode: 5},
	}
	got := Select(obs)
	if len(got) != 1 {
		t.Fatalf("Select kept %d observations, want 1", len(got))
	}
	if got[0].Date != "07.05.2010" {
		t.Fatalf("kept airing from %s, want 07.05.2010", got[0].Date)
	}
}

func TestSelectOrderIndependent(t *testing.T) {
	obs := []Observation{
		{Title: "Die Gotthardbahn", Date: "10.07.2006", StartTime: "20:15:00", Duration: "00:43:25", Episode: 1},
		{Title: "Die Gotthardbahn", Date: "03.01.2020", StartTime: "14:15:00", Duration: "00:43:25", Episode: 1},
		{Title: "Schmalspur im Harz", Date: "17.07.2006", StartTime: "20:15:00", Duration: "00:43:25", Episode: 2},
		{Title: "Schmalspur im Harz", Date: "17.07.2006", StartTime: "23:45:00", Duration: "00:43:25", Episode: 2},
		{Title: "Winterdampf", Date: "25.12.2015", StartTime: "20:15:00", Duration: "01:28:45", Episode: 890},
	}
	forward := Select(obs)
	reversed := make([]Observation, len(obs))
	for i, o := range obs {
		reversed[len(obs)-1-i] = o
	}
	backward := Select(reversed)
	if !reflect.DeepEqual(forward, backward) {
		t.Fatalf("selection depends on input order:\nforward  %+v\nbackward %+v", forward, backward)
	}
}

func TestSelectResultNewestFirst(t *testing.T) {
	obs := []Observation{
		{Title: "Die Gotthardbahn", Date: "10.07.2006", StartTime: "20:15:00", Duration: "00:43:25", Episode: 1},
		{Title: "Winterdampf", Date: "25.12.2015", StartTime: "20:15:00", Duration: "01:28:45", Episode: 890},
		{Title: "Schmalspur im Harz", Date: "17.07.2006", StartTime: "20:15:00", Duration: "00:43:25", Episode: 2},
	}
	got := Select(obs)
	want := []string{"25.12.2015", "17.07.2006", "10.07.2006"}
	for i, date := range want {
		if got[i].Date != date {
			t.Fatalf("position %d has date %s, want %s", i, got[i].Date, date)
		}
	}
}

func TestSelectEmpty(t *testing.T) {
	if got := Select(nil); len(got) != 0 {
		t.Fatalf("Select(nil) kept %d observations", len(got))
	}
}
