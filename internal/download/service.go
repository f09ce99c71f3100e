package download

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ytget/thumbgrab/internal/model"
	"github.com/ytget/thumbgrab/internal/platform"
)

// Fetch limits
const (
	FetchTimeout = 30 * time.Second
)

// File permissions
const (
	DefaultFilePermissions = 0644
)

// Service handles saving thumbnails to disk
type Service struct {
	client *http.Client
}

// NewService creates a new download service
func NewService() *Service {
	return &Service{
		client: &http.Client{Timeout: FetchTimeout},
	}
}

// Save fetches the candidate's bytes and writes them into dir with a
// filename derived from the video identifier and the tier short code.
// Failures are recoverable: no partial file is left behind, and nothing the
// caller holds (candidate list, selection) is touched.
func (s *Service) Save(candidate *model.Candidate, dir, videoID string) (string, error) {
	if candidate == nil {
		return "", fmt.Errorf("no candidate selected")
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to prepare download directory: %w", err)
	}

	resp, err := s.client.Get(candidate.URL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status fetching thumbnail: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read thumbnail body: %w", err)
	}

	path := filepath.Join(dir, candidate.OutputFileName(videoID))
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write thumbnail file: %w", err)
	}

	log.Printf("Saved thumbnail for video %s tier %s to %s (%d bytes)",
		videoID, candidate.Quality.Code, path, len(data))

	return path, nil
}
