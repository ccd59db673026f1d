package trial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 59, "0:59"},
		{"exact minute", 60, "1:00"},
		{"minutes and seconds", 754, "12:34"},
		{"exact hour", 3600, "1:00:00"},
		{"hours", 4725, "1:18:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.seconds))
		})
	}
}
