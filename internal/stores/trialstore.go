package stores

import (
	"sort"
	"sync"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/analysis"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
)

// TrialStore holds the immutable trial set plus transcripts and structured
// issues, constructed once at startup from the fixture generator (or any
// other loader) and passed by reference to consumers. It replaces the
// original tool's ambient module-level arrays.
type TrialStore struct {
	mu          sync.RWMutex
	trials      map[string]trial.Trial
	order       []string // insertion order for stable listings
	transcripts map[string]trial.Transcript
	issues      map[string][]analysis.IssueAnnotation
	reviewers   map[string]trial.Reviewer
}

// NewTrialStore creates an empty store.
func NewTrialStore() *TrialStore {
	return &TrialStore{
		trials:      make(map[string]trial.Trial),
		transcripts: make(map[string]trial.Transcript),
		issues:      make(map[string][]analysis.IssueAnnotation),
		reviewers:   make(map[string]trial.Reviewer),
	}
}

// AddTrial registers a trial. Duplicate ids overwrite silently; the fixture
// generator never produces them.
func (s *TrialStore) AddTrial(t trial.Trial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trials[t.TrialID]; !ok {
		s.order = append(s.order, t.TrialID)
	}
	s.trials[t.TrialID] = t
}

// AddTranscript registers a transcript keyed by its trial.
func (s *TrialStore) AddTranscript(t trial.Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[t.TrialID] = t
}

// AddIssues registers structured issues for a trial, kept sorted by start.
func (s *TrialStore) AddIssues(trialID string, issues []analysis.IssueAnnotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := append(s.issues[trialID], issues...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartTime < merged[j].StartTime
	})
	s.issues[trialID] = merged
}

// AddReviewer registers a reviewer identity.
func (s *TrialStore) AddReviewer(r trial.Reviewer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviewers[r.ReviewerID] = r
}

// Trial returns a trial by id. Returns ErrNotFound if unknown.
func (s *TrialStore) Trial(id string) (trial.Trial, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trials[id]
	if !ok {
		return trial.Trial{}, ErrNotFound
	}
	return t, nil
}

// Trials returns all trials in insertion order.
func (s *TrialStore) Trials() []trial.Trial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]trial.Trial, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.trials[id])
	}
	return out
}

// Transcript returns a trial's transcript. Returns ErrNotFound if the trial
// has none.
func (s *TrialStore) Transcript(trialID string) (trial.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transcripts[trialID]
	if !ok {
		return trial.Transcript{}, ErrNotFound
	}
	return t, nil
}

// Issues returns the structured issues recorded for a trial, sorted by
// start time. Unknown trials yield an empty slice.
func (s *TrialStore) Issues(trialID string) []analysis.IssueAnnotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]analysis.IssueAnnotation, len(s.issues[trialID]))
	copy(out, s.issues[trialID])
	return out
}

// Reviewer returns a reviewer by id, with ok reporting existence.
func (s *TrialStore) Reviewer(id string) (trial.Reviewer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviewers[id]
	return r, ok
}
