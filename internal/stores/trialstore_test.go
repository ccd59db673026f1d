package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/analysis"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
)

func TestTrialStore_InsertionOrder(t *testing.T) {
	s := NewTrialStore()
	s.AddTrial(trial.Trial{TrialID: "trial-002"})
	s.AddTrial(trial.Trial{TrialID: "trial-001"})
	s.AddTrial(trial.Trial{TrialID: "trial-003"})

	trials := s.Trials()
	require.Len(t, trials, 3)
	assert.Equal(t, "trial-002", trials[0].TrialID)
	assert.Equal(t, "trial-001", trials[1].TrialID)
	assert.Equal(t, "trial-003", trials[2].TrialID)
}

func TestTrialStore_Lookup(t *testing.T) {
	s := NewTrialStore()
	s.AddTrial(trial.Trial{TrialID: "trial-001", StudentName: "Aarav", TrialDate: time.Now()})

	got, err := s.Trial("trial-001")
	require.NoError(t, err)
	assert.Equal(t, "Aarav", got.StudentName)

	_, err = s.Trial("trial-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrialStore_Transcript(t *testing.T) {
	s := NewTrialStore()
	s.AddTranscript(trial.Transcript{TranscriptID: "tr-001", TrialID: "trial-001"})

	got, err := s.Transcript("trial-001")
	require.NoError(t, err)
	assert.Equal(t, "tr-001", got.TranscriptID)

	_, err = s.Transcript("trial-002")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrialStore_IssuesSorted(t *testing.T) {
	s := NewTrialStore()
	s.AddIssues("trial-001", []analysis.IssueAnnotation{
		{IssueID: "b", StartTime: 60},
		{IssueID: "a", StartTime: 10},
	})
	s.AddIssues("trial-001", []analysis.IssueAnnotation{
		{IssueID: "c", StartTime: 30},
	})

	issues := s.Issues("trial-001")
	require.Len(t, issues, 3)
	assert.Equal(t, "a", issues[0].IssueID)
	assert.Equal(t, "c", issues[1].IssueID)
	assert.Equal(t, "b", issues[2].IssueID)

	assert.Empty(t, s.Issues("trial-999"))
}

func TestTrialStore_Reviewer(t *testing.T) {
	s := NewTrialStore()
	s.AddReviewer(trial.Reviewer{ReviewerID: "rev-001", Name: "Priya"})

	r, ok := s.Reviewer("rev-001")
	require.True(t, ok)
	assert.Equal(t, "Priya", r.Name)

	_, ok = s.Reviewer("rev-404")
	assert.False(t, ok)
}
