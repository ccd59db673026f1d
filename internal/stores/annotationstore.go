// Package stores holds the in-memory state the server owns: reviewer
// annotations and the trial/transcript fixture set. Nothing here persists
// across restarts; that is a deliberate scope boundary, not an oversight.
package stores

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
)

// AnnotationStore is the per-trial ordered collection of reviewer
// annotations. The collection is kept sorted ascending by timestamp start
// after every mutation. Safe for concurrent use by HTTP handlers.
type AnnotationStore struct {
	mu      sync.RWMutex
	byTrial map[string][]trial.Annotation
	now     func() time.Time
}

// NewAnnotationStore creates an empty store. The clock is injectable for
// tests; pass nil for time.Now.
func NewAnnotationStore(now func() time.Time) *AnnotationStore {
	if now == nil {
		now = time.Now
	}
	return &AnnotationStore{
		byTrial: make(map[string][]trial.Annotation),
		now:     now,
	}
}

// Seed loads pre-existing annotations (fixtures) without validation beyond
// the sort invariant.
func (s *AnnotationStore) Seed(anns []trial.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range anns {
		s.byTrial[a.TrialID] = append(s.byTrial[a.TrialID], a)
	}
	for id := range s.byTrial {
		sortByStart(s.byTrial[id])
	}
}

// List returns the trial's annotations sorted ascending by start time.
// Unknown trials yield an empty slice, not an error.
func (s *AnnotationStore) List(trialID string) []trial.Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]trial.Annotation, len(s.byTrial[trialID]))
	copy(out, s.byTrial[trialID])
	return out
}

// Get returns one annotation by id. Returns ErrNotFound if absent.
func (s *AnnotationStore) Get(trialID, annotationID string) (trial.Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.byTrial[trialID] {
		if a.AnnotationID == annotationID {
			return a, nil
		}
	}
	return trial.Annotation{}, ErrNotFound
}

// Create validates and inserts a new annotation, keeping the collection
// sorted. Empty content or a negative start fails with ErrInvalidAnnotation
// and leaves the store unchanged. The id, createdAt and updatedAt fields are
// assigned here.
func (s *AnnotationStore) Create(a trial.Annotation) (trial.Annotation, error) {
	if strings.TrimSpace(a.Content) == "" || a.Timestamp.Start < 0 {
		return trial.Annotation{}, ErrInvalidAnnotation
	}
	if a.Emotion == "" {
		a.Emotion = trial.EmotionPositive
	}

	now := s.now()
	a.AnnotationID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byTrial[a.TrialID] = append(s.byTrial[a.TrialID], a)
	sortByStart(s.byTrial[a.TrialID])
	return a, nil
}

// UpdateFields is the mutable subset of an annotation. Nil fields are left
// as-is. Start time is intentionally not editable.
type UpdateFields struct {
	Content   *string
	TrialPart *trial.Part
	Emotion   *trial.Emotion
}

// Update edits an annotation in place and bumps updatedAt. The collection
// is re-sorted afterwards; edits cannot change start today, so the re-sort
// only guards the invariant against future field additions.
func (s *AnnotationStore) Update(trialID, annotationID string, f UpdateFields) (trial.Annotation, error) {
	if f.Content != nil && strings.TrimSpace(*f.Content) == "" {
		return trial.Annotation{}, ErrInvalidAnnotation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	anns := s.byTrial[trialID]
	for i := range anns {
		if anns[i].AnnotationID != annotationID {
			continue
		}
		if f.Content != nil {
			anns[i].Content = *f.Content
		}
		if f.TrialPart != nil {
			anns[i].TrialPart = *f.TrialPart
		}
		if f.Emotion != nil {
			anns[i].Emotion = *f.Emotion
		}
		anns[i].UpdatedAt = s.now()
		sortByStart(anns)

		for j := range anns {
			if anns[j].AnnotationID == annotationID {
				return anns[j], nil
			}
		}
	}
	return trial.Annotation{}, ErrNotFound
}

// Delete removes an annotation by id. Deleting an absent id is a no-op;
// the returned bool reports whether anything was removed.
func (s *AnnotationStore) Delete(trialID, annotationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	anns := s.byTrial[trialID]
	for i := range anns {
		if anns[i].AnnotationID == annotationID {
			s.byTrial[trialID] = append(anns[:i], anns[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of annotations held for a trial.
func (s *AnnotationStore) Count(trialID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byTrial[trialID])
}

// All returns every annotation across trials (dashboard input).
func (s *AnnotationStore) All() []trial.Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []trial.Annotation
	for _, anns := range s.byTrial {
		out = append(out, anns...)
	}
	return out
}

func sortByStart(anns []trial.Annotation) {
	sort.SliceStable(anns, func(i, j int) bool {
		return anns[i].Timestamp.Start < anns[j].Timestamp.Start
	})
}
