// Package trial defines the trial domain types shared by the stores,
// the dashboard, and the HTTP surface.
package trial

import (
	"fmt"
	"time"
)

// Region is the market a trial was booked from.
// ENUM(NAM, ISC, ROW).
type Region string

const (
	RegionNAM Region = "NAM"
	RegionISC Region = "ISC"
	RegionROW Region = "ROW"
)

// Channel is the acquisition channel that produced the trial booking.
type Channel string

const (
	ChannelPerfMeta       Channel = "perf-meta"
	ChannelOrganicContent Channel = "organic-content"
	ChannelBTL            Channel = "BTL"
	ChannelTutorReferral  Channel = "tutor-referral"
	ChannelParentReferral Channel = "parent-referral"
)

// Version identifies which trial-flow script the tutor was running.
type Version string

const (
	VersionLegacy Version = "legacy"
	VersionV31    Version = "v3.1"
	VersionV32    Version = "v3.2"
)

// Trial identifies one recorded tutoring session. Immutable once created;
// sourced from the fixture generator or the on-disk trial listing.
type Trial struct {
	TrialID       string    `json:"trialId"`
	VideoURL      string    `json:"videoUrl"`
	TranscriptURL string    `json:"transcriptUrl"`
	StudentID     string    `json:"studentId"`
	StudentName   string    `json:"studentName"`
	TutorID       string    `json:"tutorId"`
	TutorName     string    `json:"tutorName"`
	Grade         string    `json:"grade"`
	TrialDate     time.Time `json:"trialDate"`
	Region        Region    `json:"region"`
	Channel       Channel   `json:"channel"`
	Duration      int       `json:"duration"` // seconds
	TrialVersion  Version   `json:"trialVersion"`
}

// Reviewer is a human annotator identity attached to annotations.
type Reviewer struct {
	ReviewerID string `json:"reviewerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// FormatDuration renders whole seconds as m:ss, or h:mm:ss past the hour.
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
