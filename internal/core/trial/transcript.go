package trial

// Speaker identifies who is talking in a transcript segment.
type Speaker string

const (
	SpeakerStudent Speaker = "Student"
	SpeakerTutor   Speaker = "Tutor"
	SpeakerParent  Speaker = "Parent"
)

// Segment is one time-aligned utterance. StartTime <= EndTime always holds;
// segments are ordered by time but may overlap, so containment lookups take
// the first match.
type Segment struct {
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Speaker   Speaker `json:"speaker"`
	Text      string  `json:"text"`
}

// Contains reports whether t falls inside the segment, boundaries included.
func (s Segment) Contains(t float64) bool {
	return t >= s.StartTime && t <= s.EndTime
}

// Transcript is the full time-aligned transcript for one trial.
type Transcript struct {
	TranscriptID string    `json:"transcriptId"`
	TrialID      string    `json:"trialId"`
	Segments     []Segment `json:"segments"`
}

// SegmentAt returns the first segment containing t, or nil when playback is
// between segments. Linear scan; transcripts are small enough that this runs
// on every time update without an index.
func (t *Transcript) SegmentAt(at float64) *Segment {
	for i := range t.Segments {
		if t.Segments[i].Contains(at) {
			return &t.Segments[i]
		}
	}
	return nil
}
