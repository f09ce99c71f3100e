package model

import (
	"fmt"
	"strings"
	"time"
)

// NoSelection marks a session without a selected candidate
const NoSelection = -1

// Candidate pairs a quality tier with the confirmed URL for a specific video.
// A candidate exists only after a successful existence probe; Image holds the
// bytes that probe captured, so previewing never refetches.
type Candidate struct {
	Quality Quality
	URL     string
	Image   []byte
}

// OutputFileName derives the local filename for a downloaded thumbnail from
// the video identifier and the tier short code.
func (c *Candidate) OutputFileName(videoID string) string {
	return fmt.Sprintf("thumbnail_%s_%s.%s", videoID, strings.ToLower(c.Quality.Code), c.Quality.Extension())
}

// ProbeSession captures one submission lifecycle: the video identifier, the
// probe outcome, and the transient selection state. A new submission always
// produces a new session; selection never carries over.
type ProbeSession struct {
	ID         string
	VideoID    string
	Status     SessionStatus
	Candidates []*Candidate // surviving tiers, preserving canonical tier order
	Selected   int          // index into Candidates, NoSelection when none
	StartedAt  time.Time    // when probing started
	SettledAt  time.Time    // when all probes resolved
}

// SelectedCandidate returns the currently selected candidate, or nil when the
// session has no selection.
func (ps *ProbeSession) SelectedCandidate() *Candidate {
	if ps.Selected == NoSelection || ps.Selected < 0 || ps.Selected >= len(ps.Candidates) {
		return nil
	}
	return ps.Candidates[ps.Selected]
}

// Select moves the selection to the candidate at index i. Only surviving
// candidates can be selected.
func (ps *ProbeSession) Select(i int) error {
	if i < 0 || i >= len(ps.Candidates) {
		return fmt.Errorf("candidate index out of range: %d", i)
	}
	ps.Selected = i
	return nil
}
