package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
)

func TestContent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid content", "Good rapport with the student", false},
		{"valid with leading space", "  note", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Content(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Content(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestSpan(t *testing.T) {
	end := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		input   trial.Timestamp
		wantErr bool
	}{
		{"point annotation", trial.Timestamp{Start: 12.5}, false},
		{"range annotation", trial.Timestamp{Start: 5, End: end(10)}, false},
		{"zero-length range", trial.Timestamp{Start: 5, End: end(5)}, false},
		{"start at zero", trial.Timestamp{Start: 0}, false},
		{"negative start", trial.Timestamp{Start: -1}, true},
		{"end before start", trial.Timestamp{Start: 10, End: end(5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Span(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Span(%+v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestPart(t *testing.T) {
	tests := []struct {
		name    string
		input   trial.Part
		wantErr bool
	}{
		{"part one", trial.PartOne, false},
		{"part two", trial.PartTwo, false},
		{"part three", trial.PartThree, false},
		{"empty defaults later", trial.Part(""), false},
		{"unknown", trial.Part("Trial Part 9"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Part(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Part(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestEmotion(t *testing.T) {
	tests := []struct {
		name    string
		input   trial.Emotion
		wantErr bool
	}{
		{"positive", trial.EmotionPositive, false},
		{"negative", trial.EmotionNegative, false},
		{"empty defaults later", trial.Emotion(""), false},
		{"unknown", trial.Emotion("ambivalent"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Emotion(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Emotion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestAnnotation(t *testing.T) {
	good := trial.Annotation{
		TrialID:   "trial-001",
		TrialPart: trial.PartOne,
		Emotion:   trial.EmotionPositive,
		Timestamp: trial.Timestamp{Start: 10},
		Content:   "solid explanation of fractions",
	}
	assert.NoError(t, Annotation(good))

	bad := good
	bad.Content = "  "
	bad.Timestamp.Start = -3

	err := Annotation(bad)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "content")
	assert.Contains(t, err.Error(), "timestamp")
}
