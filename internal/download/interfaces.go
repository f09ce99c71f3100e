package download

import (
	"github.com/ytget/thumbgrab/internal/model"
)

// Saver defines the interface for the download service.
type Saver interface {
	// Save fetches the candidate's bytes and writes them into dir, returning
	// the path of the written file.
	Save(candidate *model.Candidate, dir, videoID string) (string, error)
}
