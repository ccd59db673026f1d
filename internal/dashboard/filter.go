package dashboard

import (
	"strings"
	"time"
)

// DateRange is an inclusive calendar-day range. Either bound may be nil.
// Comparison uses local day boundaries, not instants, so a trial at 23:55 on
// the last day of the range still matches.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Filters is the ephemeral filter state for one dashboard request: free-text
// search, per-column facet selections, and a date range. A row passes only
// when it matches all three (conjunction).
type Filters struct {
	Search string
	Facets map[string][]string
	Dates  DateRange
}

// Facet column identifiers. Keep list sorted A-Z.
const (
	FacetAnnotationStatus = "annotationStatus"
	FacetChannel          = "channel"
	FacetEnrollment       = "enrollmentStatus"
	FacetGrade            = "grade"
	FacetRegion           = "region"
)

// FilterStatusRows returns the rows passing every active filter.
func FilterStatusRows(rows []TrialWithStatus, f Filters) []TrialWithStatus {
	out := make([]TrialWithStatus, 0, len(rows))
	for _, r := range rows {
		if matchesSearch(searchFieldsStatus(r), f.Search) &&
			matchesFacets(statusFacetValue(r), f.Facets) &&
			f.Dates.contains(r.TrialDate) {
			out = append(out, r)
		}
	}
	return out
}

// FilterIssueRows returns the issue rows passing every active filter.
func FilterIssueRows(rows []TrialWithIssues, f Filters) []TrialWithIssues {
	out := make([]TrialWithIssues, 0, len(rows))
	for _, r := range rows {
		if matchesSearch(searchFieldsIssues(r), f.Search) &&
			matchesFacets(issueFacetValue(r), f.Facets) &&
			f.Dates.contains(r.TrialDate) {
			out = append(out, r)
		}
	}
	return out
}

func (d DateRange) contains(t time.Time) bool {
	if d.From == nil && d.To == nil {
		return true
	}
	day := localDay(t)
	if d.From != nil && day.Before(localDay(*d.From)) {
		return false
	}
	to := d.To
	if to == nil {
		to = d.From
	}
	if to != nil && day.After(localDay(*to)) {
		return false
	}
	return true
}

func localDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// matchesSearch does a case-insensitive substring match against the row's
// searchable fields. An empty query matches everything.
func matchesSearch(fields []string, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// matchesFacets checks every active facet: the row's value for that column
// must be in the selected set. Empty selections are inactive.
func matchesFacets(valueOf func(column string) string, facets map[string][]string) bool {
	for column, selected := range facets {
		if len(selected) == 0 {
			continue
		}
		v := valueOf(column)
		found := false
		for _, s := range selected {
			if s == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func searchFieldsStatus(r TrialWithStatus) []string {
	return []string{
		r.TrialID, r.StudentID, r.StudentName, r.TutorID, r.TutorName, r.Grade,
	}
}

func searchFieldsIssues(r TrialWithIssues) []string {
	return []string{
		r.TrialID, r.StudentID, r.StudentName, r.TutorID, r.TutorName, r.Grade,
	}
}

func statusFacetValue(r TrialWithStatus) func(string) string {
	return func(column string) string {
		switch column {
		case FacetRegion:
			return string(r.Region)
		case FacetChannel:
			return string(r.Channel)
		case FacetGrade:
			return r.Grade
		case FacetEnrollment:
			return string(r.EnrollmentStatus)
		case FacetAnnotationStatus:
			return string(r.AnnotationStatus)
		default:
			return ""
		}
	}
}

func issueFacetValue(r TrialWithIssues) func(string) string {
	return func(column string) string {
		switch column {
		case FacetRegion:
			return string(r.Region)
		case FacetChannel:
			return string(r.Channel)
		case FacetGrade:
			return r.Grade
		default:
			return ""
		}
	}
}
