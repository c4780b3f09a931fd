package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLabel_Minutes(t *testing.T) {
	tests := []struct {
		label   TimeLabel
		minutes int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"09:00 AM", 540},
		{"9:00 AM", 540},
		{"10 AM", 600},
		{"12:00 PM", 720},
		{"01:30 PM", 810},
		{"3:30 PM", 930},
		{"11:59 PM", 1439},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			minutes, err := tt.label.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, minutes)
		})
	}
}

func TestTimeLabel_Minutes_Malformed(t *testing.T) {
	malformed := []TimeLabel{
		"",
		"10:30",
		"13:00 AM",
		"0:30 PM",
		"10:65 AM",
		"lunch",
		"10:30AM",
	}

	for _, label := range malformed {
		t.Run(string(label), func(t *testing.T) {
			_, err := label.Minutes()
			require.ErrorIs(t, err, ErrMalformedTimeLabel)
			assert.False(t, label.IsValid())
		})
	}
}

func TestSortTimeLabels(t *testing.T) {
	labels := []TimeLabel{"03:00 PM", "12:00 AM", "09:00 AM", "12:00 PM"}
	SortTimeLabels(labels)
	assert.Equal(t, []TimeLabel{"12:00 AM", "09:00 AM", "12:00 PM", "03:00 PM"}, labels)
}

func TestSortTimeLabels_MalformedSortLast(t *testing.T) {
	labels := []TimeLabel{"13:00 AM", "09:00 AM", "bogus", "06:00 PM"}
	SortTimeLabels(labels)

	assert.Equal(t, []TimeLabel{"09:00 AM", "06:00 PM", "13:00 AM", "bogus"}, labels)
}

func TestInsertTimeLabel(t *testing.T) {
	labels := []TimeLabel{"09:00 AM", "03:00 PM"}

	labels = InsertTimeLabel(labels, "10:30 AM")
	assert.Equal(t, []TimeLabel{"09:00 AM", "10:30 AM", "03:00 PM"}, labels)

	// Duplicate insert is a no-op
	labels = InsertTimeLabel(labels, "10:30 AM")
	assert.Equal(t, []TimeLabel{"09:00 AM", "10:30 AM", "03:00 PM"}, labels)
}

func TestRemoveTimeLabel(t *testing.T) {
	labels := []TimeLabel{"09:00 AM", "10:30 AM"}

	labels, removed := RemoveTimeLabel(labels, "09:00 AM")
	assert.True(t, removed)
	assert.Equal(t, []TimeLabel{"10:30 AM"}, labels)

	labels, removed = RemoveTimeLabel(labels, "06:00 PM")
	assert.False(t, removed)
	assert.Equal(t, []TimeLabel{"10:30 AM"}, labels)
}
