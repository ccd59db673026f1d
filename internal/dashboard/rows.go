// Package dashboard turns the trial set plus active filters into filtered
// rows and summary statistics for the chart widgets. Everything here is a
// pure function of its inputs; no hidden state survives between calls.
package dashboard

import (
	"hash/fnv"
	"time"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/analysis"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
)

// AnnotationStatus marks whether any reviewer has annotated a trial.
type AnnotationStatus string

const (
	StatusAnnotated    AnnotationStatus = "Annotated"
	StatusNotAnnotated AnnotationStatus = "Not Annotated"
)

// EnrollmentStatus is the post-trial conversion outcome shown on the
// dashboard. The wording carries the two-week window rule.
type EnrollmentStatus string

const (
	EnrollmentYes    EnrollmentStatus = "yes"
	EnrollmentNo     EnrollmentStatus = "no (>2w since trial)"
	EnrollmentNotYet EnrollmentStatus = "not yet (<2w since trial)"
)

// TrialWithStatus is the trials-dashboard row: a trial plus its annotation
// state.
type TrialWithStatus struct {
	trial.Trial
	AnnotationStatus AnnotationStatus `json:"annotationStatus"`
	AnnotatorNames   []string         `json:"annotatorNames"`
	LastModified     time.Time        `json:"lastModified"`
	EnrollmentStatus EnrollmentStatus `json:"enrollmentStatus"`
}

// TrialWithIssues is the issues-dashboard row: a trial plus its structured
// issues and derived counts.
type TrialWithIssues struct {
	trial.Trial
	Issues             []analysis.IssueAnnotation `json:"issues"`
	IssueCount         int                        `json:"issueCount"`
	CriticalIssueCount int                        `json:"criticalIssueCount"`
}

// BuildStatusRows derives the trials-dashboard rows from the stores.
// now anchors the enrollment window calculation.
func BuildStatusRows(ts *stores.TrialStore, anns *stores.AnnotationStore, now time.Time) []TrialWithStatus {
	trials := ts.Trials()
	rows := make([]TrialWithStatus, 0, len(trials))

	for _, t := range trials {
		trialAnns := anns.List(t.TrialID)

		var names []string
		seen := map[string]bool{}
		lastModified := t.TrialDate
		for _, a := range trialAnns {
			if a.UpdatedAt.After(lastModified) {
				lastModified = a.UpdatedAt
			}
			if seen[a.ReviewerID] {
				continue
			}
			seen[a.ReviewerID] = true
			if r, ok := ts.Reviewer(a.ReviewerID); ok {
				names = append(names, r.Name)
			} else {
				names = append(names, "Unknown")
			}
		}

		status := StatusNotAnnotated
		if len(trialAnns) > 0 {
			status = StatusAnnotated
		}

		rows = append(rows, TrialWithStatus{
			Trial:            t,
			AnnotationStatus: status,
			AnnotatorNames:   names,
			LastModified:     lastModified,
			EnrollmentStatus: enrollmentFor(t, now),
		})
	}
	return rows
}

// BuildIssueRows derives the issues-dashboard rows.
func BuildIssueRows(ts *stores.TrialStore) []TrialWithIssues {
	trials := ts.Trials()
	rows := make([]TrialWithIssues, 0, len(trials))

	for _, t := range trials {
		issues := ts.Issues(t.TrialID)
		critical := 0
		for _, iss := range issues {
			if iss.Severity == analysis.SeverityCritical {
				critical++
			}
		}
		rows = append(rows, TrialWithIssues{
			Trial:              t,
			Issues:             issues,
			IssueCount:         len(issues),
			CriticalIssueCount: critical,
		})
	}
	return rows
}

// enrollmentFor derives a deterministic enrollment status from the trial id
// and the two-week window. The original tool rolled fresh randomness on
// every render; a stable hash keeps rows consistent across requests.
func enrollmentFor(t trial.Trial, now time.Time) EnrollmentStatus {
	daysSince := int(now.Sub(t.TrialDate).Hours() / 24)

	h := fnv.New32a()
	_, _ = h.Write([]byte(t.TrialID))
	roll := h.Sum32() % 100

	if daysSince > 14 {
		switch {
		case roll < 50:
			return EnrollmentYes
		case roll < 75:
			return EnrollmentNo
		default:
			return EnrollmentNotYet
		}
	}
	if roll >= 70 {
		return EnrollmentYes
	}
	return EnrollmentNotYet
}
