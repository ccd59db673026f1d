// Package playback owns the stateful review session for one trial: the
// playback clock, the in-progress annotation draft, and everything derived
// from the current position (active transcript segment, marker placement).
package playback

import (
	"errors"
	"strings"
	"time"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
)

// readyFallback bounds how long the session waits for a load signal before
// declaring the player ready anyway. Degraded usability beats a permanently
// blocked page when the video element never reports in.
const readyFallback = 3 * time.Second

// Marker clamp bounds, in percent of the seek bar. Keeps markers visible at
// the extremes instead of vanishing off the edge.
const (
	markerMin = 2.0
	markerMax = 98.0
)

// Session errors.
var (
	ErrDraftOpen    = errors.New("a draft annotation is already open")
	ErrNoDraft      = errors.New("no draft annotation is open")
	ErrEmptyContent = errors.New("draft content is empty")
	ErrNotReady     = errors.New("player is not ready")
)

// Tab is the active side-panel tab.
type Tab string

const (
	TabTranscript  Tab = "transcript"
	TabAnnotations Tab = "annotations"
)

// Session tracks playback state for one trial under review. It is driven by
// discrete events (time updates, seeks, draft edits) and holds no goroutines;
// the ready-fallback timer is a deadline checked on each event.
type Session struct {
	TrialID    string
	ReviewerID string

	CurrentTime  float64
	Duration     float64
	Playing      bool
	PlaybackRate float64
	PlayerReady  bool
	ActiveTab    Tab

	// FieldFocused is set while an editable field has focus; keyboard
	// shortcuts are suppressed for its duration. Replaces the original's
	// event-target type probing.
	FieldFocused bool

	draft      Draft
	transcript *trial.Transcript
	anns       *stores.AnnotationStore

	now           func() time.Time
	readyDeadline time.Time
}

// NewSession creates a session for one trial. transcript may be nil when the
// trial has none. The clock is injectable for tests; pass nil for time.Now.
// The ready-fallback deadline starts counting immediately.
func NewSession(trialID, reviewerID string, duration float64, transcript *trial.Transcript, anns *stores.AnnotationStore, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		TrialID:       trialID,
		ReviewerID:    reviewerID,
		Duration:      duration,
		PlaybackRate:  1,
		ActiveTab:     TabTranscript,
		draft:         Draft{Phase: DraftNone},
		transcript:    transcript,
		anns:          anns,
		now:           now,
		readyDeadline: now().Add(readyFallback),
	}
}

// checkFallback flips PlayerReady once the fallback deadline passes without
// a real load signal. Called on every incoming event so no timer goroutine
// is needed. A zero deadline means ready already happened or fired.
func (s *Session) checkFallback() {
	if s.PlayerReady || s.readyDeadline.IsZero() {
		return
	}
	if !s.now().Before(s.readyDeadline) {
		s.PlayerReady = true
		s.readyDeadline = time.Time{}
	}
}

// HandleLoaded records the real load signal: duration is known and the
// player is ready. Clears the fallback deadline so it cannot fire late.
func (s *Session) HandleLoaded(duration float64) {
	if duration > 0 {
		s.Duration = duration
	}
	s.PlayerReady = true
	s.readyDeadline = time.Time{}
}

// ForceReady is the degraded fallback a user can trigger manually after a
// video error. Not a correctness guarantee.
func (s *Session) ForceReady() {
	s.PlayerReady = true
	s.readyDeadline = time.Time{}
}

// TimeUpdate records the player's reported position.
func (s *Session) TimeUpdate(t float64) {
	s.checkFallback()
	s.CurrentTime = t
}

// Play resumes playback.
func (s *Session) Play() {
	s.checkFallback()
	s.Playing = true
}

// Pause stops playback.
func (s *Session) Pause() {
	s.checkFallback()
	s.Playing = false
}

// SetRate changes the playback rate. Non-positive rates are ignored.
func (s *Session) SetRate(rate float64) {
	if rate > 0 {
		s.PlaybackRate = rate
	}
}

// SetFieldFocus records whether an editable field currently has focus.
func (s *Session) SetFieldFocus(focused bool) {
	s.FieldFocused = focused
}

// SetActiveTab switches the side panel tab.
func (s *Session) SetActiveTab(tab Tab) {
	s.ActiveTab = tab
}

// SeekTo moves playback to t, clamped into [0, Duration]. Seeking before the
// player is ready is a no-op so the client cannot land in an unbuffered
// position. While a draft is open, seeking doubles as marking its end time.
func (s *Session) SeekTo(t float64) error {
	s.checkFallback()
	if !s.PlayerReady || s.Duration <= 0 {
		return ErrNotReady
	}

	s.CurrentTime = clamp(t, 0, s.Duration)

	switch s.draft.Phase {
	case DraftOpen, DraftEnded:
		s.draft.End = s.CurrentTime
		s.draft.Phase = DraftEnded
	case DraftNone:
	}
	return nil
}

// CurrentSegment returns the transcript segment containing the playback
// position, or nil between segments or without a transcript.
func (s *Session) CurrentSegment() *trial.Segment {
	if s.transcript == nil {
		return nil
	}
	return s.transcript.SegmentAt(s.CurrentTime)
}

// Draft returns a copy of the current draft state.
func (s *Session) Draft() Draft {
	return s.draft
}

// StartDraft opens a draft at the current playback position, pausing
// playback and switching to the annotations tab. Only one draft may exist.
func (s *Session) StartDraft() error {
	s.checkFallback()
	if s.draft.Phase != DraftNone {
		return ErrDraftOpen
	}

	s.draft = Draft{
		Phase:   DraftOpen,
		Start:   s.CurrentTime,
		Part:    trial.PartOne,
		Emotion: trial.EmotionPositive,
	}
	s.Playing = false
	s.ActiveTab = TabAnnotations
	return nil
}

// MarkEnd captures the current position as the draft's end time.
func (s *Session) MarkEnd() error {
	if s.draft.Phase == DraftNone {
		return ErrNoDraft
	}
	s.draft.End = s.CurrentTime
	s.draft.Phase = DraftEnded
	return nil
}

// EditDraft updates the draft's text fields. Nil fields are left alone.
func (s *Session) EditDraft(content *string, part *trial.Part, emotion *trial.Emotion) error {
	if s.draft.Phase == DraftNone {
		return ErrNoDraft
	}
	if content != nil {
		s.draft.Content = *content
	}
	if part != nil {
		s.draft.Part = *part
	}
	if emotion != nil {
		s.draft.Emotion = *emotion
	}
	return nil
}

// SaveDraft validates the draft, derives its transcript snippet, inserts it
// into the annotation store, and clears the draft. An invalid draft leaves
// both the store and the draft untouched.
func (s *Session) SaveDraft() (trial.Annotation, error) {
	switch s.draft.Phase {
	case DraftNone:
		return trial.Annotation{}, ErrNoDraft
	case DraftOpen, DraftEnded:
	}
	if strings.TrimSpace(s.draft.Content) == "" {
		return trial.Annotation{}, ErrEmptyContent
	}

	ann := trial.Annotation{
		TrialID:    s.TrialID,
		ReviewerID: s.ReviewerID,
		TrialPart:  s.draft.Part,
		Emotion:    s.draft.Emotion,
		Timestamp:  s.draft.timestamp(),
		Content:    s.draft.Content,
	}
	if s.transcript != nil {
		ann.TranscriptSnippet = s.transcript.SnippetFor(s.draft.Start, s.draft.endPtr())
	}

	saved, err := s.anns.Create(ann)
	if err != nil {
		return trial.Annotation{}, err
	}

	s.draft = Draft{Phase: DraftNone}
	return saved, nil
}

// CancelDraft discards the draft without inserting anything.
func (s *Session) CancelDraft() {
	s.draft = Draft{Phase: DraftNone}
}

// HandleShortcut applies a keyboard shortcut. Shortcuts are suppressed while
// an editable field has focus. Unknown keys are ignored.
func (s *Session) HandleShortcut(key string) {
	s.checkFallback()
	if s.FieldFocused {
		return
	}

	switch key {
	case " ":
		if s.Playing {
			s.Pause()
		} else {
			s.Play()
		}
	case "ArrowLeft":
		_ = s.SeekTo(s.CurrentTime - 5)
	case "ArrowRight":
		_ = s.SeekTo(s.CurrentTime + 5)
	case "a", "A":
		_ = s.StartDraft()
	}
}

// MarkerPosition places an item on the seek bar as a percentage of the
// duration, clamped to [2, 98] so edge markers stay visible.
func MarkerPosition(start, duration float64) float64 {
	if duration <= 0 {
		return markerMin
	}
	return clamp(start/duration*100, markerMin, markerMax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
