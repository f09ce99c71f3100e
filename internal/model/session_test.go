package model

import "testing"

func newReadySession() *ProbeSession {
	qs := Qualities()
	return &ProbeSession{
		ID:      "session-1",
		VideoID: "dQw4w9WgXcQ",
		Status:  SessionStatusReady,
		Candidates: []*Candidate{
			{Quality: qs[0], URL: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"},
			{Quality: qs[2], URL: "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"},
		},
		Selected: 0,
	}
}

func TestProbeSession_Select(t *testing.T) {
	session := newReadySession()

	if err := session.Select(1); err != nil {
		t.Fatalf("Select(1) returned error: %v", err)
	}
	if session.Selected != 1 {
		t.Errorf("Expected selected index 1, got %d", session.Selected)
	}

	// Out of range indices are rejected and leave selection unchanged
	if err := session.Select(2); err == nil {
		t.Error("Expected error for out of range index 2")
	}
	if err := session.Select(-1); err == nil {
		t.Error("Expected error for negative index")
	}
	if session.Selected != 1 {
		t.Errorf("Failed Select must not change selection, got %d", session.Selected)
	}
}

func TestProbeSession_SelectedCandidate(t *testing.T) {
	session := newReadySession()

	candidate := session.SelectedCandidate()
	if candidate == nil {
		t.Fatal("Expected selected candidate, got nil")
	}
	if candidate.Quality.Code != "MAXRES" {
		t.Errorf("Expected default selection MAXRES, got %s", candidate.Quality.Code)
	}

	empty := &ProbeSession{Status: SessionStatusEmpty, Selected: NoSelection}
	if empty.SelectedCandidate() != nil {
		t.Error("Empty session should have no selected candidate")
	}
}

func TestCandidate_OutputFileName(t *testing.T) {
	tests := []struct {
		code     string
		fileName string
		expected string
	}{
		{"MAXRES", "maxresdefault.jpg", "thumbnail_dQw4w9WgXcQ_maxres.jpg"},
		{"SD", "sddefault.jpg", "thumbnail_dQw4w9WgXcQ_sd.jpg"},
		{"DEFAULT", "default.jpg", "thumbnail_dQw4w9WgXcQ_default.jpg"},
	}

	for _, test := range tests {
		c := &Candidate{Quality: Quality{Code: test.code, FileName: test.fileName}}
		if got := c.OutputFileName("dQw4w9WgXcQ"); got != test.expected {
			t.Errorf("OutputFileName(%s) = %s, expected %s", test.code, got, test.expected)
		}
	}
}
