package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/analysis"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
)

var rowsNow = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

func seededStores() (*stores.TrialStore, *stores.AnnotationStore) {
	ts := stores.NewTrialStore()
	ts.AddReviewer(trial.Reviewer{ReviewerID: "rev-001", Name: "Priya Sharma"})

	ts.AddTrial(trial.Trial{
		TrialID:   "trial-001",
		Grade:     "5",
		Region:    trial.RegionNAM,
		Channel:   trial.ChannelPerfMeta,
		TrialDate: rowsNow.AddDate(0, 0, -30),
	})
	ts.AddTrial(trial.Trial{
		TrialID:   "trial-002",
		Grade:     "7",
		Region:    trial.RegionISC,
		Channel:   trial.ChannelBTL,
		TrialDate: rowsNow.AddDate(0, 0, -3),
	})

	anns := stores.NewAnnotationStore(func() time.Time { return rowsNow })
	anns.Seed([]trial.Annotation{
		{
			AnnotationID: "ann-001",
			TrialID:      "trial-001",
			ReviewerID:   "rev-001",
			Content:      "good",
			Timestamp:    trial.Timestamp{Start: 10},
			UpdatedAt:    rowsNow.AddDate(0, 0, -1),
		},
	})
	return ts, anns
}

func TestBuildStatusRows(t *testing.T) {
	ts, anns := seededStores()

	rows := BuildStatusRows(ts, anns, rowsNow)
	require.Len(t, rows, 2)

	annotated := rows[0]
	assert.Equal(t, "trial-001", annotated.TrialID)
	assert.Equal(t, StatusAnnotated, annotated.AnnotationStatus)
	assert.Equal(t, []string{"Priya Sharma"}, annotated.AnnotatorNames)
	assert.Equal(t, rowsNow.AddDate(0, 0, -1), annotated.LastModified)

	bare := rows[1]
	assert.Equal(t, StatusNotAnnotated, bare.AnnotationStatus)
	assert.Empty(t, bare.AnnotatorNames)
	assert.Equal(t, bare.TrialDate, bare.LastModified)
}

func TestBuildStatusRows_UnknownReviewer(t *testing.T) {
	ts, anns := seededStores()
	anns.Seed([]trial.Annotation{
		{AnnotationID: "ann-x", TrialID: "trial-002", ReviewerID: "rev-999", Content: "hm"},
	})

	rows := BuildStatusRows(ts, anns, rowsNow)
	assert.Equal(t, []string{"Unknown"}, rows[1].AnnotatorNames)
}

func TestEnrollmentStatus_Deterministic(t *testing.T) {
	ts, anns := seededStores()

	first := BuildStatusRows(ts, anns, rowsNow)
	second := BuildStatusRows(ts, anns, rowsNow)

	for i := range first {
		assert.Equal(t, first[i].EnrollmentStatus, second[i].EnrollmentStatus)
	}
}

func TestEnrollmentStatus_RecentTrialNeverNo(t *testing.T) {
	// Trials inside the two-week window can only be yes or not-yet.
	ts, anns := seededStores()

	rows := BuildStatusRows(ts, anns, rowsNow)
	recent := rows[1] // trial-002, three days old
	assert.NotEqual(t, EnrollmentNo, recent.EnrollmentStatus)
}

func TestBuildIssueRows(t *testing.T) {
	ts, _ := seededStores()
	ts.AddIssues("trial-001", []analysis.IssueAnnotation{
		{IssueID: "i1", Severity: analysis.SeverityCritical, StartTime: 10},
		{IssueID: "i2", Severity: analysis.SeverityLow, StartTime: 60},
	})

	rows := BuildIssueRows(ts)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].IssueCount)
	assert.Equal(t, 1, rows[0].CriticalIssueCount)
	assert.Zero(t, rows[1].IssueCount)
}
