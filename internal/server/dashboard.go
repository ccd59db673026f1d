package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/dashboard"
)

// filtersFromQuery builds dashboard filters from the request query string.
// Facet params repeat for multi-select: ?region=NAM&region=ISC. Dates use
// YYYY-MM-DD in the server's local zone.
func filtersFromQuery(q url.Values) dashboard.Filters {
	f := dashboard.Filters{
		Search: q.Get("q"),
		Facets: map[string][]string{},
	}

	for column, param := range map[string]string{
		dashboard.FacetRegion:           "region",
		dashboard.FacetChannel:          "channel",
		dashboard.FacetGrade:            "grade",
		dashboard.FacetAnnotationStatus: "status",
		dashboard.FacetEnrollment:       "enrollment",
	} {
		if vals := q[param]; len(vals) > 0 {
			f.Facets[column] = vals
		}
	}

	if from, err := time.ParseInLocation("2006-01-02", q.Get("from"), time.Local); err == nil {
		f.Dates.From = &from
	}
	if to, err := time.ParseInLocation("2006-01-02", q.Get("to"), time.Local); err == nil {
		f.Dates.To = &to
	}
	return f
}

func (s *Server) handleDashboardTrials(w http.ResponseWriter, r *http.Request) {
	rows := dashboard.BuildStatusRows(s.trials, s.anns, s.now())
	rows = dashboard.FilterStatusRows(rows, filtersFromQuery(r.URL.Query()))

	writeJSON(w, http.StatusOK, map[string]any{
		"trials": rows,
		"total":  len(rows),
	})
}

func (s *Server) handleDashboardIssues(w http.ResponseWriter, r *http.Request) {
	rows := dashboard.BuildIssueRows(s.trials)
	rows = dashboard.FilterIssueRows(rows, filtersFromQuery(r.URL.Query()))

	writeJSON(w, http.StatusOK, map[string]any{
		"trials": rows,
		"total":  len(rows),
		"stats":  dashboard.IssueStatsFor(rows),
	})
}

func (s *Server) handleDashboardIssueVolume(w http.ResponseWriter, r *http.Request) {
	key := dashboard.BreakdownKey(r.URL.Query().Get("breakdown"))
	switch key {
	case "":
		key = dashboard.ByDomain
	case dashboard.ByDomain, dashboard.ByIssueType, dashboard.BySeverity,
		dashboard.ByGrade, dashboard.ByRegion, dashboard.ByChannel:
	default:
		writeError(w, http.StatusBadRequest, "unknown breakdown", map[string]any{
			"breakdown": string(key),
		})
		return
	}

	rows := dashboard.BuildIssueRows(s.trials)
	rows = dashboard.FilterIssueRows(rows, filtersFromQuery(r.URL.Query()))
	series := dashboard.MonthlySeries(dashboard.IssueObservations(rows, key))

	writeJSON(w, http.StatusOK, map[string]any{
		"breakdown": key,
		"series":    series,
	})
}

func (s *Server) handleDashboardTrialVolume(w http.ResponseWriter, r *http.Request) {
	column := r.URL.Query().Get("breakdown")
	switch column {
	case "":
		column = dashboard.FacetRegion
	case dashboard.FacetRegion, dashboard.FacetChannel, dashboard.FacetGrade,
		dashboard.FacetEnrollment, dashboard.FacetAnnotationStatus:
	default:
		writeError(w, http.StatusBadRequest, "unknown breakdown", map[string]any{
			"breakdown": column,
		})
		return
	}

	rows := dashboard.BuildStatusRows(s.trials, s.anns, s.now())
	rows = dashboard.FilterStatusRows(rows, filtersFromQuery(r.URL.Query()))

	writeJSON(w, http.StatusOK, map[string]any{
		"breakdown": column,
		"items":     dashboard.Breakdown(dashboard.TrialBreakdownValues(rows, column)),
	})
}
