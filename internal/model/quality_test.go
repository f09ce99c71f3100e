package model

import "testing"

func TestQualities_Order(t *testing.T) {
	qs := Qualities()

	if len(qs) != 5 {
		t.Fatalf("Expected 5 quality tiers, got %d", len(qs))
	}

	expectedFiles := []string{
		"maxresdefault.jpg",
		"sddefault.jpg",
		"hqdefault.jpg",
		"mqdefault.jpg",
		"default.jpg",
	}
	for i, want := range expectedFiles {
		if qs[i].FileName != want {
			t.Errorf("Tier %d: expected filename %s, got %s", i, want, qs[i].FileName)
		}
	}

	// Order must be descending by nominal resolution
	for i := 1; i < len(qs); i++ {
		if qs[i].Width >= qs[i-1].Width {
			t.Errorf("Tier %d (%s) should have smaller width than tier %d (%s)",
				i, qs[i].Code, i-1, qs[i-1].Code)
		}
	}

	if qs[0].Code != "MAXRES" {
		t.Errorf("Expected highest tier code MAXRES, got %s", qs[0].Code)
	}
}

func TestQualities_CodesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range Qualities() {
		if seen[q.Code] {
			t.Errorf("Duplicate quality code: %s", q.Code)
		}
		seen[q.Code] = true
	}
}

func TestQualities_ReturnsCopy(t *testing.T) {
	first := Qualities()
	first[0].Code = "MUTATED"

	second := Qualities()
	if second[0].Code != "MAXRES" {
		t.Error("Mutating the returned slice must not affect the canonical list")
	}
}

func TestQuality_Dimensions(t *testing.T) {
	q := Quality{Code: "MAXRES", Width: 1280, Height: 720}

	if got := q.Dimensions(); got != "1280×720" {
		t.Errorf("Dimensions() = %s, expected 1280×720", got)
	}
}

func TestQuality_Extension(t *testing.T) {
	tests := []struct {
		fileName string
		expected string
	}{
		{"maxresdefault.jpg", "jpg"},
		{"default.webp", "webp"},
		{"noextension", "jpg"},
		{"trailingdot.", "jpg"},
	}

	for _, test := range tests {
		q := Quality{FileName: test.fileName}
		if got := q.Extension(); got != test.expected {
			t.Errorf("Extension(%s) = %s, expected %s", test.fileName, got, test.expected)
		}
	}
}
