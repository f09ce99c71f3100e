package thumbnail

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ytget/thumbgrab/internal/model"
)

const testVideoID = "dQw4w9WgXcQ"

// newTierServer serves fake image bytes for the given tier filenames and 404
// for everything else. The counter tracks the total number of requests.
func newTierServer(available []string, counter *int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if counter != nil {
			atomic.AddInt64(counter, 1)
		}
		for _, name := range available {
			if strings.HasSuffix(r.URL.Path, "/"+name) {
				w.Header().Set("Content-Type", "image/jpeg")
				w.Write([]byte("jpeg-bytes-" + name))
				return
			}
		}
		http.NotFound(w, r)
	}))
}

// probeAndWait runs a probe and blocks until the session settles
func probeAndWait(t *testing.T, service *Service, videoID string) *model.ProbeSession {
	t.Helper()

	settled := make(chan *model.ProbeSession, 4)
	service.SetUpdateCallback(func(session *model.ProbeSession) {
		if session.Status.IsSettled() {
			settled <- session
		}
	})

	service.Probe(videoID)

	select {
	case session := <-settled:
		return session
	case <-time.After(5 * time.Second):
		t.Fatal("Probe session did not settle in time")
		return nil
	}
}

func TestCandidateURL(t *testing.T) {
	service := NewService()
	tier := model.Qualities()[0]

	got := service.CandidateURL(testVideoID, tier)
	want := "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"
	if got != want {
		t.Errorf("CandidateURL = %s, expected %s", got, want)
	}
}

func TestProbe_AllTiersExist(t *testing.T) {
	server := newTierServer([]string{
		"maxresdefault.jpg", "sddefault.jpg", "hqdefault.jpg", "mqdefault.jpg", "default.jpg",
	}, nil)
	defer server.Close()

	service := NewServiceWithBaseURL(server.URL)
	session := probeAndWait(t, service, testVideoID)

	if session.Status != model.SessionStatusReady {
		t.Fatalf("Expected status Ready, got %s", session.Status)
	}
	if len(session.Candidates) != 5 {
		t.Fatalf("Expected 5 candidates, got %d", len(session.Candidates))
	}

	// Candidates keep the fixed priority order
	expectedCodes := []string{"MAXRES", "SD", "HQ", "MQ", "DEFAULT"}
	for i, want := range expectedCodes {
		if session.Candidates[i].Quality.Code != want {
			t.Errorf("Candidate %d: expected code %s, got %s", i, want, session.Candidates[i].Quality.Code)
		}
	}

	// Default selection is the highest tier
	selected := session.SelectedCandidate()
	if selected == nil || selected.Quality.Code != "MAXRES" {
		t.Errorf("Expected default selection MAXRES, got %v", selected)
	}

	// Probe bytes are captured for previewing
	if string(selected.Image) != "jpeg-bytes-maxresdefault.jpg" {
		t.Errorf("Unexpected probe image bytes: %q", selected.Image)
	}
}

func TestProbe_NoTierExists(t *testing.T) {
	server := newTierServer(nil, nil)
	defer server.Close()

	service := NewServiceWithBaseURL(server.URL)
	session := probeAndWait(t, service, testVideoID)

	if session.Status != model.SessionStatusEmpty {
		t.Fatalf("Expected status Empty, got %s", session.Status)
	}
	if len(session.Candidates) != 0 {
		t.Errorf("Expected 0 candidates, got %d", len(session.Candidates))
	}
	if session.SelectedCandidate() != nil {
		t.Error("Empty session must not have a selection")
	}
}

func TestProbe_PartialSubsetKeepsTierOrder(t *testing.T) {
	server := newTierServer([]string{"hqdefault.jpg", "default.jpg"}, nil)
	defer server.Close()

	service := NewServiceWithBaseURL(server.URL)
	session := probeAndWait(t, service, testVideoID)

	if session.Status != model.SessionStatusReady {
		t.Fatalf("Expected status Ready, got %s", session.Status)
	}
	if len(session.Candidates) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(session.Candidates))
	}
	if session.Candidates[0].Quality.Code != "HQ" || session.Candidates[1].Quality.Code != "DEFAULT" {
		t.Errorf("Candidates out of tier order: %s, %s",
			session.Candidates[0].Quality.Code, session.Candidates[1].Quality.Code)
	}

	// Highest surviving tier becomes the default selection
	if selected := session.SelectedCandidate(); selected == nil || selected.Quality.Code != "HQ" {
		t.Errorf("Expected default selection HQ, got %v", selected)
	}
}

func TestSelect_DoesNotReprobe(t *testing.T) {
	var requests int64
	server := newTierServer([]string{"hqdefault.jpg", "mqdefault.jpg", "default.jpg"}, &requests)
	defer server.Close()

	service := NewServiceWithBaseURL(server.URL)
	session := probeAndWait(t, service, testVideoID)

	probeRequests := atomic.LoadInt64(&requests)
	if probeRequests != 5 {
		t.Fatalf("Expected exactly 5 probe requests, got %d", probeRequests)
	}

	if err := service.Select(session.ID, 2); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if err := service.Select(session.ID, 1); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}

	if got := atomic.LoadInt64(&requests); got != probeRequests {
		t.Errorf("Selection changes triggered %d extra requests", got-probeRequests)
	}

	if selected := service.Current().SelectedCandidate(); selected == nil || selected.Quality.Code != "MQ" {
		t.Errorf("Expected selection MQ after Select(1), got %v", selected)
	}
}

func TestSelect_RejectsInvalid(t *testing.T) {
	server := newTierServer([]string{"default.jpg"}, nil)
	defer server.Close()

	service := NewServiceWithBaseURL(server.URL)
	session := probeAndWait(t, service, testVideoID)

	if err := service.Select("not-the-current-session", 0); err == nil {
		t.Error("Expected error selecting on a stale session ID")
	}
	if err := service.Select(session.ID, 5); err == nil {
		t.Error("Expected error selecting out of range index")
	}
	if selected := session.SelectedCandidate(); selected == nil || selected.Quality.Code != "DEFAULT" {
		t.Errorf("Failed selects must not change selection, got %v", selected)
	}
}

func TestProbe_NewSubmissionDiscardsStaleResults(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	service := NewServiceWithBaseURL(server.URL)

	var settledIDs []string
	settled := make(chan struct{}, 2)
	service.SetUpdateCallback(func(session *model.ProbeSession) {
		if session.Status.IsSettled() {
			settledIDs = append(settledIDs, session.ID)
			settled <- struct{}{}
		}
	})

	stale := service.Probe("aaaaaaaaaaa")
	newer := service.Probe("bbbbbbbbbbb")
	close(release)

	// Only the newer session may settle through the callback; the stale one
	// finishes silently.
	select {
	case <-settled:
	case <-time.After(5 * time.Second):
		t.Fatal("No session settled in time")
	}

	select {
	case <-settled:
		t.Fatalf("Both sessions settled; stale session %s should have been discarded", stale.ID)
	case <-time.After(500 * time.Millisecond):
	}

	if len(settledIDs) != 1 || settledIDs[0] != newer.ID {
		t.Errorf("Expected only session %s to settle, got %v", newer.ID, settledIDs)
	}

	if current := service.Current(); current.ID != newer.ID {
		t.Errorf("Current session should be %s, got %s", newer.ID, current.ID)
	}
}
