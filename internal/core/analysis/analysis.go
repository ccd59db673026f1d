// Package analysis models the AI analysis artifacts produced by the offline
// review pipeline. Everything here is read-only from the tool's perspective.
package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Severity is the AI-assigned severity of a flagged issue.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Issue is one AI-flagged moment in a trial.
type Issue struct {
	Timestamp     string `json:"timestamp"` // wire form [HH:MM:SS,mmm]
	Speaker       string `json:"speaker"`
	Theme         string `json:"theme"`
	Severity      string `json:"severity"`
	Quote         string `json:"quote"`
	Context       string `json:"context"`
	Justification string `json:"justification"`
	Alternative   string `json:"alternative"`
	AnalysisPass  string `json:"analysisPass,omitempty"`
}

// Document is the full per-trial analysis artifact (ai-analysis.json).
type Document struct {
	AnalysisID     string  `json:"analysisId"`
	TrialID        string  `json:"trialId"`
	Timestamp      string  `json:"timestamp"`
	ModelVersion   string  `json:"modelVersion"`
	AnalysisMethod string  `json:"analysisMethod"`
	Status         string  `json:"status"`
	Issues         []Issue `json:"issues"`
}

// timestampRe matches the artifact wire format, e.g. [00:01:05,500].
// The surrounding brackets are literal; milliseconds use a comma separator.
var timestampRe = regexp.MustCompile(`^\[(\d{2}):(\d{2}):(\d{2}),(\d{3})\]$`)

// ParseTimestamp converts the artifact's [HH:MM:SS,mmm] form to seconds.
func ParseTimestamp(s string) (float64, error) {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("malformed analysis timestamp %q", s)
	}

	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])

	return float64(h*3600+min*60+sec) + float64(ms)/1000, nil
}

// IssueAnnotation is the structured issue model the dashboards aggregate
// over. It is deliberately distinct from trial.Annotation: the free-text
// reviewer model and this taxonomy-driven model have not been unified.
type IssueAnnotation struct {
	IssueID     string    `json:"issueId"`
	TrialID     string    `json:"trialId"`
	Domain      Domain    `json:"domain"`
	IssueType   IssueType `json:"issueType"`
	Severity    Severity  `json:"severity"`
	StartTime   float64   `json:"startTime"`
	EndTime     *float64  `json:"endTime,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
