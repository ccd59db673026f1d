package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/config"
)

var (
	// ErrTrialNotFound is returned when a trial directory or artifact
	// does not exist on disk.
	ErrTrialNotFound = errors.New("trial not found")

	// ErrBadArtifact is returned when an on-disk analysis file exists
	// but does not contain valid JSON.
	ErrBadArtifact = errors.New("invalid analysis artifact")
)

// TrialArtifacts summarizes one trial directory that carries an
// AI analysis artifact.
type TrialArtifacts struct {
	TrialID           string `json:"trialId"`
	VideoURL          string `json:"videoUrl"`
	TranscriptURL     string `json:"transcriptUrl"`
	HasAnalysis       bool   `json:"hasAnalysis"`
	AnalysisID        string `json:"analysisId"`
	AnalysisTimestamp string `json:"analysisTimestamp"`
	ModelVersion      string `json:"modelVersion"`
	AnalysisMethod    string `json:"analysisMethod"`
	Status            string `json:"status"`
	IssueCount        int    `json:"issueCount"`
	HasVideo          bool   `json:"hasVideo"`
}

// Provider reads trial artifacts from a directory tree laid out as
// <root>/<trial-id>/{video.mp4,ai-analysis.json}.
type Provider struct {
	root string
	log  zerolog.Logger
}

func NewProvider(root string, log zerolog.Logger) *Provider {
	return &Provider{root: root, log: log}
}

// List scans the trials root for directories containing an analysis
// artifact. A missing root is not an error; it yields an empty list.
func (p *Provider) List() ([]TrialArtifacts, error) {
	if _, err := os.Stat(p.root); os.IsNotExist(err) {
		p.log.Debug().Str("root", p.root).Msg("trials dir missing, returning empty list")
		return []TrialArtifacts{}, nil
	}

	pattern := filepath.Join(p.root, "*", config.AnalysisFilename)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan trials dir: %w", err)
	}

	out := make([]TrialArtifacts, 0, len(matches))
	for _, m := range matches {
		trialID := filepath.Base(filepath.Dir(m))

		raw, err := os.ReadFile(m)
		if err != nil {
			return nil, fmt.Errorf("read analysis for %s: %w", trialID, err)
		}

		var doc struct {
			AnalysisID     string `json:"analysisId"`
			Timestamp      string `json:"timestamp"`
			ModelVersion   string `json:"modelVersion"`
			AnalysisMethod string `json:"analysisMethod"`
			Status         string `json:"status"`
			Issues         []any  `json:"issues"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadArtifact, trialID, err)
		}

		_, statErr := os.Stat(filepath.Join(p.root, trialID, config.VideoFilename))

		out = append(out, TrialArtifacts{
			TrialID:           trialID,
			VideoURL:          fmt.Sprintf("/api/trials/%s/video", trialID),
			TranscriptURL:     fmt.Sprintf("/api/trials/%s/transcript", trialID),
			HasAnalysis:       true,
			AnalysisID:        doc.AnalysisID,
			AnalysisTimestamp: doc.Timestamp,
			ModelVersion:      doc.ModelVersion,
			AnalysisMethod:    doc.AnalysisMethod,
			Status:            doc.Status,
			IssueCount:        len(doc.Issues),
			HasVideo:          statErr == nil,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].TrialID < out[j].TrialID })
	return out, nil
}

// Analysis returns the raw analysis artifact for one trial, byte for
// byte as stored. The content is validated as JSON before returning so
// a corrupt file surfaces as ErrBadArtifact instead of garbage output.
func (p *Provider) Analysis(trialID string) ([]byte, error) {
	path, err := p.artifactPath(trialID, config.AnalysisFilename)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTrialNotFound
		}
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s", ErrBadArtifact, trialID)
	}
	return raw, nil
}

// VideoPath resolves the video file for a trial without touching disk.
func (p *Provider) VideoPath(trialID string) (string, error) {
	return p.artifactPath(trialID, config.VideoFilename)
}

func (p *Provider) artifactPath(trialID, name string) (string, error) {
	if trialID == "" || trialID != filepath.Base(trialID) || strings.HasPrefix(trialID, ".") {
		return "", ErrTrialNotFound
	}
	return filepath.Join(p.root, trialID, name), nil
}
