package trial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestSnippetFor_Range(t *testing.T) {
	tr := testTranscript()

	t.Run("fully contained segments only", func(t *testing.T) {
		sn := tr.SnippetFor(0, ptr(9))
		require.NotNil(t, sn)
		assert.Equal(t, "Hello there. Hi!", sn.Text)
		assert.Equal(t, []Speaker{SpeakerTutor, SpeakerStudent}, sn.Speakers)
		assert.Len(t, sn.Segments, 2)
	})

	t.Run("partially overlapping segment is excluded", func(t *testing.T) {
		// The second segment ends at 9, past the annotation end, so only
		// the first qualifies.
		sn := tr.SnippetFor(0, ptr(8))
		require.NotNil(t, sn)
		assert.Equal(t, "Hello there.", sn.Text)
	})

	t.Run("empty range", func(t *testing.T) {
		assert.Nil(t, tr.SnippetFor(9.5, ptr(11)))
	})
}

func TestSnippetFor_Point(t *testing.T) {
	tr := testTranscript()

	t.Run("segments starting within the window", func(t *testing.T) {
		// Window is two seconds: segments starting at 5 qualify for
		// start=4, the one at 12 does not.
		sn := tr.SnippetFor(4, nil)
		require.NotNil(t, sn)
		assert.Equal(t, "Hi!", sn.Text)
		assert.Equal(t, []Speaker{SpeakerStudent}, sn.Speakers)
	})

	t.Run("window is symmetric", func(t *testing.T) {
		sn := tr.SnippetFor(13, nil)
		require.NotNil(t, sn)
		assert.Equal(t, "Let's begin.", sn.Text)
	})

	t.Run("nothing nearby", func(t *testing.T) {
		assert.Nil(t, tr.SnippetFor(9.5, nil))
	})
}

func TestSnippetFor_DistinctSpeakers(t *testing.T) {
	tr := &Transcript{
		Segments: []Segment{
			{StartTime: 0, EndTime: 1, Speaker: SpeakerTutor, Text: "One."},
			{StartTime: 1, EndTime: 2, Speaker: SpeakerStudent, Text: "Two."},
			{StartTime: 2, EndTime: 3, Speaker: SpeakerTutor, Text: "Three."},
		},
	}

	sn := tr.SnippetFor(0, ptr(3))
	require.NotNil(t, sn)
	assert.Equal(t, "One. Two. Three.", sn.Text)
	// Speakers are deduplicated in first-seen order.
	assert.Equal(t, []Speaker{SpeakerTutor, SpeakerStudent}, sn.Speakers)
}
