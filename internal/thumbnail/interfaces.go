package thumbnail

import (
	"github.com/ytget/thumbgrab/internal/model"
)

// Resolver defines the interface for the thumbnail probe service.
type Resolver interface {
	SetUpdateCallback(func(*model.ProbeSession))
	Probe(videoID string) *model.ProbeSession
	Select(sessionID string, index int) error
	Current() *model.ProbeSession
	CandidateURL(videoID string, quality model.Quality) string
}
