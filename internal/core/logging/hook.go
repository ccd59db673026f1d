package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts reviewer_id and trial_id from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if reviewerID := GetReviewerID(ctx); reviewerID != "" {
		e.Str("reviewer_id", reviewerID)
	}

	if trialID := GetTrialID(ctx); trialID != "" {
		e.Str("trial_id", trialID)
	}
}
