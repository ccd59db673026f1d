package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/analysis"
)

// BreakdownItem is one slice of a breakdown chart.
type BreakdownItem struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"` // round(100 * value / total)
}

// Breakdown counts values per distinct key. Keys absent from the input never
// appear (zero-count categories are omitted from chart series). Items keep
// first-seen order; percentages are rounded to whole percent of the total.
func Breakdown(values []string) []BreakdownItem {
	counts := map[string]int{}
	var order []string
	for _, v := range values {
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}

	total := len(values)
	items := make([]BreakdownItem, 0, len(order))
	for _, name := range order {
		items = append(items, BreakdownItem{
			Name:       name,
			Value:      counts[name],
			Percentage: roundPct(counts[name], total),
		})
	}
	return items
}

// TopN returns the n most frequent values, most frequent first. Ties break
// lexically so the ordering is stable across requests.
func TopN(values []string, n int) []BreakdownItem {
	items := Breakdown(values)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// CategoryAt is one dated, categorised observation feeding a time series.
type CategoryAt struct {
	Date     time.Time
	Category string
}

// SeriesPoint is one month of a volume-trends chart. Every category present
// anywhere in the series has a value here, zero-filled when absent that
// month.
type SeriesPoint struct {
	Month  string         `json:"month"` // localized "Jan 2006"
	Values map[string]int `json:"values"`
}

// MonthlySeries buckets observations by calendar month, then by category
// within each month. Months are sorted chronologically, not lexically.
// Empty input yields an empty (non-nil) series.
func MonthlySeries(obs []CategoryAt) []SeriesPoint {
	type monthKey struct {
		year  int
		month time.Month
	}

	buckets := map[monthKey]map[string]int{}
	categories := map[string]bool{}
	var keys []monthKey

	for _, o := range obs {
		k := monthKey{o.Date.Year(), o.Date.Month()}
		if buckets[k] == nil {
			buckets[k] = map[string]int{}
			keys = append(keys, k)
		}
		buckets[k][o.Category]++
		categories[o.Category] = true
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	series := make([]SeriesPoint, 0, len(keys))
	for _, k := range keys {
		values := make(map[string]int, len(categories))
		for c := range categories {
			values[c] = buckets[k][c] // zero-fill absent categories
		}
		label := time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.Local).Format("Jan 2006")
		series = append(series, SeriesPoint{Month: label, Values: values})
	}
	return series
}

// IssueStats is the issues-dashboard summary block.
type IssueStats struct {
	TotalIssues       int             `json:"totalIssues"`
	AvgIssuesPerTrial float64         `json:"avgIssuesPerTrial"` // 1 decimal
	CriticalRate      int             `json:"criticalIssueRate"` // whole percent
	DomainBreakdown   []BreakdownItem `json:"domainBreakdown"`
	SeverityBreakdown []BreakdownItem `json:"severityBreakdown"`
	TopIssues         []BreakdownItem `json:"topIssues"`
}

// IssueStatsFor computes the summary for a filtered row set. Empty input
// yields zero values and empty slices, never an error.
func IssueStatsFor(rows []TrialWithIssues) IssueStats {
	var domains, severities, types []string
	critical := 0
	total := 0

	for _, r := range rows {
		for _, iss := range r.Issues {
			total++
			domains = append(domains, string(iss.Domain))
			severities = append(severities, string(iss.Severity))
			types = append(types, string(iss.IssueType))
			if iss.Severity == analysis.SeverityCritical {
				critical++
			}
		}
	}

	stats := IssueStats{
		TotalIssues:       total,
		DomainBreakdown:   Breakdown(domains),
		SeverityBreakdown: Breakdown(severities),
		TopIssues:         TopN(types, 10),
	}
	if total > 0 && len(rows) > 0 {
		stats.AvgIssuesPerTrial = math.Round(float64(total)/float64(len(rows))*10) / 10
		stats.CriticalRate = roundPct(critical, total)
	}
	return stats
}

// BreakdownKey selects the grouping for volume charts.
type BreakdownKey string

const (
	ByDomain    BreakdownKey = "domain"
	ByIssueType BreakdownKey = "issueType"
	BySeverity  BreakdownKey = "severity"
	ByGrade     BreakdownKey = "grade"
	ByRegion    BreakdownKey = "region"
	ByChannel   BreakdownKey = "channel"
)

// IssueObservations flattens issue rows into dated observations grouped by
// the chosen key, ready for MonthlySeries.
func IssueObservations(rows []TrialWithIssues, key BreakdownKey) []CategoryAt {
	var obs []CategoryAt
	for _, r := range rows {
		for _, iss := range r.Issues {
			var category string
			switch key {
			case ByDomain:
				category = string(iss.Domain)
			case ByIssueType:
				category = string(iss.IssueType)
			case BySeverity:
				category = string(iss.Severity)
			case ByGrade:
				category = r.Grade
			case ByRegion:
				category = string(r.Region)
			case ByChannel:
				category = string(r.Channel)
			default:
				category = "Unknown"
			}
			obs = append(obs, CategoryAt{Date: iss.CreatedAt, Category: category})
		}
	}
	return obs
}

// TrialBreakdownValues extracts the grouping value per trial row for the
// trials-dashboard breakdown chart.
func TrialBreakdownValues(rows []TrialWithStatus, column string) []string {
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, statusFacetValue(r)(column))
	}
	return values
}

func roundPct(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
