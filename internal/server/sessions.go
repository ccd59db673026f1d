package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/playback"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
)

// sessionRegistry hands out one playback session per trial, created lazily
// on first access.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*playback.Session

	reviewerID string
	trials     *stores.TrialStore
	anns       *stores.AnnotationStore
	now        func() time.Time
}

func newSessionRegistry(reviewerID string, trials *stores.TrialStore, anns *stores.AnnotationStore, now func() time.Time) *sessionRegistry {
	return &sessionRegistry{
		sessions:   make(map[string]*playback.Session),
		reviewerID: reviewerID,
		trials:     trials,
		anns:       anns,
		now:        now,
	}
}

func (r *sessionRegistry) get(trialID string) (*playback.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[trialID]; ok {
		return sess, nil
	}

	t, err := r.trials.Trial(trialID)
	if err != nil {
		return nil, err
	}
	var transcript *trial.Transcript
	if tr, err := r.trials.Transcript(trialID); err == nil {
		transcript = &tr
	} else if !errors.Is(err, stores.ErrNotFound) {
		return nil, err
	}

	sess := playback.NewSession(trialID, r.reviewerID, float64(t.Duration), transcript, r.anns, r.now)
	r.sessions[trialID] = sess
	return sess, nil
}

// marker is an annotation's position on the seek bar.
type marker struct {
	AnnotationID string  `json:"annotationId"`
	StartTime    float64 `json:"startTime"`
	Position     float64 `json:"position"`
}

// sessionState is the full snapshot returned after every session mutation,
// so clients never need to track state deltas.
type sessionState struct {
	TrialID        string         `json:"trialId"`
	ReviewerID     string         `json:"reviewerId"`
	CurrentTime    float64        `json:"currentTime"`
	Duration       float64        `json:"duration"`
	Playing        bool           `json:"playing"`
	PlaybackRate   float64        `json:"playbackRate"`
	PlayerReady    bool           `json:"playerReady"`
	ActiveTab      playback.Tab   `json:"activeTab"`
	FieldFocused   bool           `json:"fieldFocused"`
	Draft          playback.Draft `json:"draft"`
	CurrentSegment *trial.Segment `json:"currentSegment,omitempty"`
	Markers        []marker       `json:"markers"`
}

func (s *Server) snapshot(sess *playback.Session) sessionState {
	anns := s.anns.List(sess.TrialID)
	markers := make([]marker, 0, len(anns))
	for _, a := range anns {
		markers = append(markers, marker{
			AnnotationID: a.AnnotationID,
			StartTime:    a.Timestamp.Start,
			Position:     playback.MarkerPosition(a.Timestamp.Start, sess.Duration),
		})
	}

	return sessionState{
		TrialID:        sess.TrialID,
		ReviewerID:     sess.ReviewerID,
		CurrentTime:    sess.CurrentTime,
		Duration:       sess.Duration,
		Playing:        sess.Playing,
		PlaybackRate:   sess.PlaybackRate,
		PlayerReady:    sess.PlayerReady,
		ActiveTab:      sess.ActiveTab,
		FieldFocused:   sess.FieldFocused,
		Draft:          sess.Draft(),
		CurrentSegment: sess.CurrentSegment(),
		Markers:        markers,
	}
}

// withSession resolves the trial's session and runs fn against it. fn
// returning an error maps to a 400; the full state snapshot is written on
// success.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*playback.Session) error) {
	sess, err := s.registry.get(r.PathValue("trialId"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trial not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load session", nil)
		return
	}

	if fn != nil {
		if err := fn(sess); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}
	writeJSON(w, http.StatusOK, s.snapshot(sess))
}

func decodeBody[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, errors.New("missing request body")
	}
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, errors.New("invalid request body")
	}
	return v, nil
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, nil)
}

func (s *Server) handleSessionSeek(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		req, err := decodeBody[struct {
			Time float64 `json:"time"`
		}](r)
		if err != nil {
			return err
		}
		return sess.SeekTo(req.Time)
	})
}

func (s *Server) handleSessionPlay(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		sess.Play()
		return nil
	})
}

func (s *Server) handleSessionPause(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		sess.Pause()
		return nil
	})
}

func (s *Server) handleSessionRate(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		req, err := decodeBody[struct {
			Rate float64 `json:"rate"`
		}](r)
		if err != nil {
			return err
		}
		sess.SetRate(req.Rate)
		return nil
	})
}

func (s *Server) handleSessionTime(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		req, err := decodeBody[struct {
			Time float64 `json:"time"`
		}](r)
		if err != nil {
			return err
		}
		sess.TimeUpdate(req.Time)
		return nil
	})
}

func (s *Server) handleSessionReady(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		req, err := decodeBody[struct {
			Duration float64 `json:"duration"`
			Forced   bool    `json:"forced"`
		}](r)
		if err != nil {
			return err
		}
		if req.Forced {
			sess.ForceReady()
		} else {
			sess.HandleLoaded(req.Duration)
		}
		return nil
	})
}

func (s *Server) handleSessionTab(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		req, err := decodeBody[struct {
			Tab playback.Tab `json:"tab"`
		}](r)
		if err != nil {
			return err
		}
		sess.SetActiveTab(req.Tab)
		return nil
	})
}

func (s *Server) handleSessionFocus(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		req, err := decodeBody[struct {
			Focused bool `json:"focused"`
		}](r)
		if err != nil {
			return err
		}
		sess.SetFieldFocus(req.Focused)
		return nil
	})
}

func (s *Server) handleSessionKey(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		req, err := decodeBody[struct {
			Key string `json:"key"`
		}](r)
		if err != nil {
			return err
		}
		sess.HandleShortcut(req.Key)
		return nil
	})
}

func (s *Server) handleDraftStart(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		return sess.StartDraft()
	})
}

func (s *Server) handleDraftEnd(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		return sess.MarkEnd()
	})
}

func (s *Server) handleDraftEdit(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		req, err := decodeBody[struct {
			Content *string        `json:"content"`
			Part    *trial.Part    `json:"trialPart"`
			Emotion *trial.Emotion `json:"emotion"`
		}](r)
		if err != nil {
			return err
		}
		return sess.EditDraft(req.Content, req.Part, req.Emotion)
	})
}

func (s *Server) handleDraftSave(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		_, err := sess.SaveDraft()
		return err
	})
}

func (s *Server) handleDraftCancel(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *playback.Session) error {
		sess.CancelDraft()
		return nil
	})
}
