// Package validate provides shared validation functions for annotation
// fields.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
)

// Content validates annotation content is non-empty after trimming whitespace.
func Content(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// Span validates a timestamp: start must be non-negative and end, when
// present, must not precede start.
func Span(ts trial.Timestamp) error {
	if ts.Start < 0 {
		return fmt.Errorf("start time is negative")
	}
	if ts.End != nil && *ts.End < ts.Start {
		return fmt.Errorf("end time precedes start time")
	}
	return nil
}

// Part validates a trial part value. Empty is accepted; callers fill in a
// default.
func Part(p trial.Part) error {
	switch p {
	case trial.PartOne, trial.PartTwo, trial.PartThree, "":
		return nil
	}
	return fmt.Errorf("unknown trial part %q", p)
}

// Emotion validates an emotion value. Empty is accepted; callers fill in a
// default.
func Emotion(e trial.Emotion) error {
	switch e {
	case trial.EmotionPositive, trial.EmotionNegative, "":
		return nil
	}
	return fmt.Errorf("unknown emotion %q", e)
}

// Annotation runs every field check and returns a validation error naming
// the offending fields, or nil when the annotation is well formed.
func Annotation(a trial.Annotation) error {
	var errs criterio.FieldErrorsBuilder
	if err := Content(a.Content); err != nil {
		errs = errs.Append("content", err)
	}
	if err := Span(a.Timestamp); err != nil {
		errs = errs.Append("timestamp", err)
	}
	if err := Part(a.TrialPart); err != nil {
		errs = errs.Append("trialPart", err)
	}
	if err := Emotion(a.Emotion); err != nil {
		errs = errs.Append("emotion", err)
	}
	return errs.ToError()
}
