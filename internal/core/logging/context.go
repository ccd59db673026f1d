package logging

import "context"

type contextKey string

const (
	reviewerIDKey contextKey = "reviewer_id"
	trialIDKey    contextKey = "trial_id"
)

// WithReviewerID adds a reviewer ID to the context.
func WithReviewerID(ctx context.Context, reviewerID string) context.Context {
	return context.WithValue(ctx, reviewerIDKey, reviewerID)
}

// WithTrialID adds a trial ID to the context.
func WithTrialID(ctx context.Context, trialID string) context.Context {
	return context.WithValue(ctx, trialIDKey, trialID)
}

// GetReviewerID retrieves the reviewer ID from the context.
// Returns empty string if not present.
func GetReviewerID(ctx context.Context) string {
	if id, ok := ctx.Value(reviewerIDKey).(string); ok {
		return id
	}
	return ""
}

// GetTrialID retrieves the trial ID from the context.
// Returns empty string if not present.
func GetTrialID(ctx context.Context) string {
	if id, ok := ctx.Value(trialIDKey).(string); ok {
		return id
	}
	return ""
}
