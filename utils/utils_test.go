package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Airpods Pro 2":                  "airpods-pro-2",
		"  LED Neon Light Signs  ":       "led-neon-light-signs",
		"Rice Dispenser / Storage Box!!": "rice-dispenser-storage-box",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateIDLength(t *testing.T) {
	if got := GenerateID(14); len(got) != 14 {
		t.Errorf("expected length 14, got %d", len(got))
	}
}
