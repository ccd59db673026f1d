package playback

import "github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"

// DraftPhase is the explicit tag for the draft variant. The original tool
// discriminated drafts from saved annotations by probing object shape; here
// every consumer switches on the phase exhaustively.
type DraftPhase string

const (
	// DraftNone means no draft exists; the session is idle.
	DraftNone DraftPhase = "none"
	// DraftOpen means a start time was captured but no end yet.
	DraftOpen DraftPhase = "open"
	// DraftEnded means both start and end times are captured.
	DraftEnded DraftPhase = "ended"
)

// Draft is the in-progress annotation. Start is valid in phases open and
// ended; End only in ended. At most one draft exists per session.
type Draft struct {
	Phase   DraftPhase    `json:"phase"`
	Start   float64       `json:"start"`
	End     float64       `json:"end"`
	Content string        `json:"content"`
	Part    trial.Part    `json:"trialPart"`
	Emotion trial.Emotion `json:"emotion"`
}

// timestamp converts the draft to an annotation timestamp, carrying the end
// only when one was marked.
func (d Draft) timestamp() trial.Timestamp {
	ts := trial.Timestamp{Start: d.Start}
	if d.Phase == DraftEnded {
		end := d.End
		ts.End = &end
	}
	return ts
}

// endPtr returns the draft end for snippet derivation, nil when unset.
func (d Draft) endPtr() *float64 {
	if d.Phase == DraftEnded {
		end := d.End
		return &end
	}
	return nil
}
