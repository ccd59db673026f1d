package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"zero", "[00:00:00,000]", 0},
		{"seconds and millis", "[00:01:05,500]", 65.5},
		{"hours", "[01:02:03,250]", 3723.25},
		{"millis only", "[00:00:00,999]", 0.999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing brackets", "00:01:05,500"},
		{"dot separator", "[00:01:05.500]"},
		{"short fields", "[0:1:5,500]"},
		{"trailing garbage", "[00:01:05,500]x"},
		{"not a timestamp", "early in the session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimestamp(tt.input)
			assert.Error(t, err)
		})
	}
}
