package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/analysis"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/config"
)

// ArtifactsCheck inspects every trial directory under the trials root:
// the analysis artifact must parse and its issues must carry parseable
// timestamps; a missing video file is reported as a warning.
type ArtifactsCheck struct {
	trialsDir string
}

// NewArtifactsCheck creates a new trial artifacts check.
func NewArtifactsCheck(trialsDir string) *ArtifactsCheck {
	return &ArtifactsCheck{trialsDir: trialsDir}
}

func (c *ArtifactsCheck) Name() string {
	return "Trial Artifacts"
}

func (c *ArtifactsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if _, err := os.Stat(c.trialsDir); os.IsNotExist(err) {
		result.Items = append(result.Items, CheckItem{
			Label:  "trials",
			Status: StatusWarn,
			Detail: "no trials directory",
		})
		return result
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(c.trialsDir, "*", config.AnalysisFilename))
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "trials",
			Status: StatusFail,
			Detail: fmt.Sprintf("scan failed: %v", err),
		})
		return result
	}
	if len(matches) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "trials",
			Status: StatusWarn,
			Detail: "no analysis artifacts found",
		})
		return result
	}
	sort.Strings(matches)

	for _, m := range matches {
		trialID := filepath.Base(filepath.Dir(m))
		result.Items = append(result.Items, c.checkTrial(trialID, m)...)
	}
	return result
}

func (c *ArtifactsCheck) checkTrial(trialID, artifactPath string) []CheckItem {
	var items []CheckItem

	raw, err := os.ReadFile(artifactPath)
	if err != nil {
		return append(items, CheckItem{
			Label:  trialID,
			Status: StatusFail,
			Detail: fmt.Sprintf("read analysis: %v", err),
		})
	}

	var doc analysis.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return append(items, CheckItem{
			Label:  trialID,
			Status: StatusFail,
			Detail: fmt.Sprintf("parse analysis: %v", err),
		})
	}

	badStamps := 0
	for _, iss := range doc.Issues {
		if _, err := analysis.ParseTimestamp(iss.Timestamp); err != nil {
			badStamps++
		}
	}
	switch {
	case badStamps > 0:
		items = append(items, CheckItem{
			Label:  trialID,
			Status: StatusWarn,
			Detail: fmt.Sprintf("%d issues, %d unparseable timestamps", len(doc.Issues), badStamps),
		})
	default:
		items = append(items, CheckItem{
			Label:  trialID,
			Status: StatusPass,
			Detail: fmt.Sprintf("%d issues", len(doc.Issues)),
		})
	}

	videoPath := filepath.Join(filepath.Dir(artifactPath), config.VideoFilename)
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		items = append(items, CheckItem{
			Label:  trialID,
			Status: StatusWarn,
			Detail: "video file missing",
		})
	}
	return items
}
