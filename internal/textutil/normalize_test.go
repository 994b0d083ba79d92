package textutil

import "testing"

func TestNormalizeKeyUnifiesPunctuationVariants(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"en dash vs hyphen", "S2024E10 – 2024-03-22", "S2024E10 - 2024-03-22"},
		{"em dash vs hyphen", "Zug — Berge", "Zug - Berge"},
		{"minus sign vs hyphen", "1071 − Titel", "1071 - Titel"},
		{"curly apostrophe", "G’schichten", "G'schichten"},
		{"acute as apostrophe", "G´schichten", "G'schichten"},
		{"nbsp vs space", "S01E01 - 2006-07-10", "S01E01 - 2006-07-10"},
		{"narrow nbsp", "1071 XL", "1071 XL"},
		{"zero width space removed", "S01​E01", "S01E01"},
		{"bom removed", "\ufeffTitel", "Titel"},
		{"case folded", "EISENBAHN-ROMANTIK", "eisenbahn-romantik"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := NormalizeKey(tt.a), NormalizeKey(tt.b); got != want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.a, got, want)
			}
		})
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"S2024E10 – 2024-03-22 – 1071 XL – Alpenzüge",
		"  mixed\tWHITESPACE   runs  ",
		"Straße ’quoted’ — text",
	}
	for _, in := range inputs {
		once := NormalizeKey(in)
		if twice := NormalizeKey(once); twice != once {
			t.Errorf("NormalizeKey not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalizeKeyCollapsesWhitespace(t *testing.T) {
	got := NormalizeKey("  S01E01   -  2006-07-10  ")
	if got != "s01e01 - 2006-07-10" {
		t.Errorf("NormalizeKey = %q", got)
	}
}

func TestNormalizeKeyEmpty(t *testing.T) {
	if NormalizeKey("") != "" {
		t.Error("expected empty output for empty input")
	}
	if NormalizeKey("   ​  ") != "" {
		t.Error("expected empty output for invisible-only input")
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Die Gotthardbahn", "die gotthardbahn"},
		{"accents stripped", "Züge in Südtirol", "zuge in sudtirol"},
		{"sharp s folded", "Große Bahnen", "grosse bahnen"},
		{"punctuation removed", "Nostalgie-Express: Teil 1!", "nostalgieexpress teil 1"},
		{"underscores as spaces", "Balkan_Nostalgie_Express", "balkan nostalgie express"},
		{"whitespace collapsed", "Zug   durch   die  Alpen", "zug durch die alpen"},
		{"empty", "", ""},
		{"punctuation only", "–—:!?", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.input); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{"Die Große Alpenbahn", "Züge: gestern & heute", ""}
	for _, in := range inputs {
		once := NormalizeTitle(in)
		if twice := NormalizeTitle(once); twice != once {
			t.Errorf("NormalizeTitle not idempotent for %q", in)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Zug/Land\\Leute", "Zug-Land-Leute"},
		{"Was? Wo: \"Zitat\" <hier> | 2*2", "Was Wo Zitat hier  22"},
		{"  gepolstert  ", "gepolstert"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.input); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
