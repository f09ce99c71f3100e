package thumbnail

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/thumbgrab/internal/model"
)

// DefaultBaseURL is the image host serving the per-tier thumbnail files
const DefaultBaseURL = "https://img.youtube.com"

// Probe limits
const (
	ProbeTimeout  = 10 * time.Second
	MaxImageBytes = 8 << 20
)

// Service handles thumbnail probing and selection. It owns at most one
// current session; a new submission replaces it, and probes of a replaced
// session are allowed to finish with their results discarded.
type Service struct {
	baseURL string
	client  *http.Client

	sessionMutex sync.RWMutex
	session      *model.ProbeSession

	onUpdate func(*model.ProbeSession) // callback for UI updates
}

// NewService creates a new thumbnail service against the default image host
func NewService() *Service {
	return NewServiceWithBaseURL(DefaultBaseURL)
}

// NewServiceWithBaseURL creates a new thumbnail service against a custom
// image host. Used by tests.
func NewServiceWithBaseURL(baseURL string) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: ProbeTimeout},
	}
}

// SetUpdateCallback sets the callback function invoked when a session starts
// probing and when it settles
func (s *Service) SetUpdateCallback(callback func(*model.ProbeSession)) {
	s.onUpdate = callback
}

// CandidateURL builds the probe URL for one quality tier of a video
func (s *Service) CandidateURL(videoID string, quality model.Quality) string {
	return fmt.Sprintf("%s/vi/%s/%s", s.baseURL, videoID, quality.FileName)
}

// Probe starts a new probe session for the given video identifier. All tier
// probes fire at once; the session settles only after the complete set
// resolved. The returned session is the one that becomes current.
func (s *Service) Probe(videoID string) *model.ProbeSession {
	session := &model.ProbeSession{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		Status:    model.SessionStatusProbing,
		Selected:  model.NoSelection,
		StartedAt: time.Now(),
	}

	s.sessionMutex.Lock()
	s.session = session
	s.sessionMutex.Unlock()

	log.Printf("Probe session %s started for video %s", session.ID, videoID)
	s.notifyUpdate(session)

	go s.runProbes(session)

	return session
}

// runProbes fires one existence probe per tier and settles the session once
// the whole set resolved
func (s *Service) runProbes(session *model.ProbeSession) {
	tiers := model.Qualities()
	results := make([]*model.Candidate, len(tiers))

	var wg sync.WaitGroup
	for i, tier := range tiers {
		wg.Add(1)
		go func(i int, tier model.Quality) {
			defer wg.Done()

			candidateURL := s.CandidateURL(session.VideoID, tier)
			img, err := s.fetchImage(candidateURL)
			if err != nil {
				log.Printf("Probe miss for video %s tier %s: %v", session.VideoID, tier.Code, err)
				return
			}
			results[i] = &model.Candidate{Quality: tier, URL: candidateURL, Image: img}
		}(i, tier)
	}
	wg.Wait()

	// Survivors keep the canonical tier order
	var survivors []*model.Candidate
	for _, candidate := range results {
		if candidate != nil {
			survivors = append(survivors, candidate)
		}
	}

	s.sessionMutex.Lock()
	if s.session == nil || s.session.ID != session.ID {
		s.sessionMutex.Unlock()
		log.Printf("Discarding stale probe session %s for video %s", session.ID, session.VideoID)
		return
	}

	session.Candidates = survivors
	if len(survivors) > 0 {
		session.Status = model.SessionStatusReady
		session.Selected = 0 // highest surviving tier is the default selection
	} else {
		session.Status = model.SessionStatusEmpty
		session.Selected = model.NoSelection
	}
	session.SettledAt = time.Now()
	s.sessionMutex.Unlock()

	log.Printf("Probe session %s settled: %d of %d tiers exist for video %s",
		session.ID, len(survivors), len(tiers), session.VideoID)

	s.notifyUpdate(session)
}

// fetchImage loads one candidate URL. Any transport error or non-200 response
// counts as "did not load".
func (s *Service) fetchImage(candidateURL string) ([]byte, error) {
	resp, err := s.client.Get(candidateURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	return data, nil
}

// Select changes the selection among the current session's survivors. It
// never re-triggers probing.
func (s *Service) Select(sessionID string, index int) error {
	s.sessionMutex.Lock()
	defer s.sessionMutex.Unlock()

	if s.session == nil || s.session.ID != sessionID {
		return fmt.Errorf("session is not current: %s", sessionID)
	}
	if !s.session.Status.HasResults() {
		return fmt.Errorf("session has no candidates to select: %s", s.session.Status)
	}
	return s.session.Select(index)
}

// Current returns the current probe session, or nil before the first submission
func (s *Service) Current() *model.ProbeSession {
	s.sessionMutex.RLock()
	defer s.sessionMutex.RUnlock()
	return s.session
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(session *model.ProbeSession) {
	if s.onUpdate != nil {
		s.onUpdate(session)
	}
}
