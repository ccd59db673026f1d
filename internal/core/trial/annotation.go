package trial

import (
	"math"
	"time"
)

// snippetWindow is how close (in seconds) a segment's start must be to a
// point annotation's start for the segment to be pulled into the snippet.
const snippetWindow = 2.0

// Part is the section of the trial flow an annotation refers to.
type Part string

const (
	PartOne   Part = "Trial Part 1"
	PartTwo   Part = "Trial Part 2"
	PartThree Part = "Trial Part 3"
)

// Emotion tags an annotation as praising or flagging the moment.
type Emotion string

const (
	EmotionPositive Emotion = "positive"
	EmotionNegative Emotion = "negative"
)

// Timestamp is an annotation's anchor on the playback timeline. End is
// optional; a point annotation has only a start.
type Timestamp struct {
	Start float64  `json:"start"`
	End   *float64 `json:"end,omitempty"`
}

// Snippet is the transcript excerpt captured alongside an annotation.
type Snippet struct {
	Text     string    `json:"text"`
	Speakers []Speaker `json:"speakers"`
	Segments []Segment `json:"segments"`
}

// Annotation is a reviewer-authored note bound to one trial. Owned
// exclusively by that trial's annotation store; no cross-trial references.
type Annotation struct {
	AnnotationID      string    `json:"annotationId"`
	TrialID           string    `json:"trialId"`
	ReviewerID        string    `json:"reviewerId"`
	TrialPart         Part      `json:"trialPart"`
	Emotion           Emotion   `json:"emotion"`
	Timestamp         Timestamp `json:"timestamp"`
	Content           string    `json:"content"`
	TranscriptSnippet *Snippet  `json:"transcriptSnippet,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// SnippetFor extracts the transcript excerpt for an annotation span.
//
// With an end time, every segment fully contained in [start, end] is
// included. Without one, segments starting within snippetWindow seconds of
// start are included. Returns nil when nothing matches so callers can omit
// the field entirely.
func (t *Transcript) SnippetFor(start float64, end *float64) *Snippet {
	var matched []Segment
	for _, seg := range t.Segments {
		if end != nil {
			if seg.StartTime >= start && seg.EndTime <= *end {
				matched = append(matched, seg)
			}
		} else if math.Abs(seg.StartTime-start) <= snippetWindow {
			matched = append(matched, seg)
		}
	}

	if len(matched) == 0 {
		return nil
	}

	text := ""
	seen := map[Speaker]bool{}
	var speakers []Speaker
	for i, seg := range matched {
		if i > 0 {
			text += " "
		}
		text += seg.Text
		if !seen[seg.Speaker] {
			seen[seg.Speaker] = true
			speakers = append(speakers, seg.Speaker)
		}
	}

	return &Snippet{Text: text, Speakers: speakers, Segments: matched}
}
