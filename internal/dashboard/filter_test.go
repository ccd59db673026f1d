package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
)

func statusRow(id, student, grade string, region trial.Region, date time.Time) TrialWithStatus {
	return TrialWithStatus{
		Trial: trial.Trial{
			TrialID:     id,
			StudentName: student,
			Grade:       grade,
			Region:      region,
			TrialDate:   date,
		},
		AnnotationStatus: StatusNotAnnotated,
	}
}

func TestFilterStatusRows_Search(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	rows := []TrialWithStatus{
		statusRow("trial-001", "Aarav Patel", "5", trial.RegionNAM, date),
		statusRow("trial-002", "Sofia Chen", "7", trial.RegionISC, date),
	}

	t.Run("matches student name, case-insensitive", func(t *testing.T) {
		got := FilterStatusRows(rows, Filters{Search: "aarav"})
		require.Len(t, got, 1)
		assert.Equal(t, "trial-001", got[0].TrialID)
	})

	t.Run("matches trial id substring", func(t *testing.T) {
		got := FilterStatusRows(rows, Filters{Search: "002"})
		require.Len(t, got, 1)
		assert.Equal(t, "trial-002", got[0].TrialID)
	})

	t.Run("empty query matches all", func(t *testing.T) {
		assert.Len(t, FilterStatusRows(rows, Filters{Search: "  "}), 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterStatusRows(rows, Filters{Search: "zzz"}))
	})
}

func TestFilterStatusRows_Facets(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	rows := []TrialWithStatus{
		statusRow("trial-001", "Aarav", "5", trial.RegionNAM, date),
		statusRow("trial-002", "Sofia", "7", trial.RegionISC, date),
		statusRow("trial-003", "Liam", "5", trial.RegionROW, date),
	}

	t.Run("single facet multi-select", func(t *testing.T) {
		got := FilterStatusRows(rows, Filters{
			Facets: map[string][]string{FacetRegion: {"NAM", "ROW"}},
		})
		assert.Len(t, got, 2)
	})

	t.Run("facets are conjunctive", func(t *testing.T) {
		got := FilterStatusRows(rows, Filters{
			Facets: map[string][]string{
				FacetRegion: {"NAM", "ROW"},
				FacetGrade:  {"5"},
			},
		})
		assert.Len(t, got, 2)

		got = FilterStatusRows(rows, Filters{
			Facets: map[string][]string{
				FacetRegion: {"ISC"},
				FacetGrade:  {"5"},
			},
		})
		assert.Empty(t, got)
	})

	t.Run("empty selection is inactive", func(t *testing.T) {
		got := FilterStatusRows(rows, Filters{
			Facets: map[string][]string{FacetRegion: {}},
		})
		assert.Len(t, got, 3)
	})
}

func TestDateRangeFilter(t *testing.T) {
	jan05 := time.Date(2024, 1, 5, 10, 0, 0, 0, time.Local)
	jan31 := time.Date(2024, 1, 31, 23, 55, 0, 0, time.Local)
	feb10 := time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local)

	rows := []TrialWithStatus{
		statusRow("trial-jan-early", "A", "5", trial.RegionNAM, jan05),
		statusRow("trial-jan-late", "B", "5", trial.RegionNAM, jan31),
		statusRow("trial-feb", "C", "5", trial.RegionNAM, feb10),
	}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)

	t.Run("inclusive day boundaries", func(t *testing.T) {
		got := FilterStatusRows(rows, Filters{Dates: DateRange{From: &from, To: &to}})
		require.Len(t, got, 2)
		// 23:55 on the final day still matches: day comparison, not instant.
		assert.Equal(t, "trial-jan-late", got[1].TrialID)
	})

	t.Run("from only means that single day", func(t *testing.T) {
		day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local)
		got := FilterStatusRows(rows, Filters{Dates: DateRange{From: &day}})
		require.Len(t, got, 1)
		assert.Equal(t, "trial-jan-early", got[0].TrialID)
	})

	t.Run("nil range matches all", func(t *testing.T) {
		assert.Len(t, FilterStatusRows(rows, Filters{}), 3)
	})
}

func TestFilterIssueRows(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	rows := []TrialWithIssues{
		{Trial: trial.Trial{TrialID: "trial-001", Grade: "5", Region: trial.RegionNAM, TrialDate: date}},
		{Trial: trial.Trial{TrialID: "trial-002", Grade: "7", Region: trial.RegionISC, TrialDate: date}},
	}

	got := FilterIssueRows(rows, Filters{
		Search: "trial",
		Facets: map[string][]string{FacetGrade: {"7"}},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "trial-002", got[0].TrialID)
}
