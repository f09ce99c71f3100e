// Package videoid maps arbitrary user input (URL or bare token) to the
// 11-character video identifier used by the platform's URL scheme.
package videoid

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoVideoID is returned when no identifier can be extracted from the input
var ErrNoVideoID = errors.New("no video id found in input")

// bareIDPattern matches a bare 11-character identifier from the allowed alphabet
var bareIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// urlPatterns are tried in order; the first match wins. They cover the known
// URL shapes: standard watch, embed, short link, shorts, live, and the legacy
// /v/ embed path.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`/embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`/shorts/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`/live/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`/v/([0-9A-Za-z_-]{11})`),
}

// Extract accepts either a raw id or common YouTube URL shapes and returns
// the 11-character video identifier. It is deterministic and side-effect-free.
// Empty or whitespace-only input always fails with ErrNoVideoID.
func Extract(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrNoVideoID
	}

	for _, pattern := range urlPatterns {
		if m := pattern.FindStringSubmatch(s); len(m) == 2 {
			return m[1], nil
		}
	}

	// Fallback: the whole trimmed input as a literal identifier
	if bareIDPattern.MatchString(s) {
		return s, nil
	}

	return "", ErrNoVideoID
}
