package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

func TestNormalizeClockInput(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"930", "9:30"},
		{"1015", "10:15"},
		{"10", "10:00"},
		{"9", "9:00"},
		{"9:30", "9:30"},
		{"09:05", "09:05"},
		{" 9 30 ", "9:30"},
		{"9a30", "9:30"},
		{"12345", "123:45"},
	}

	for _, tc := range cases {
		got, err := NormalizeClockInput(tc.raw)
		require.NoError(t, err, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}
}

func TestNormalizeClockInput_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc"} {
		_, err := NormalizeClockInput(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeInput, "raw %q", raw)
	}
}

func TestBuildCustomLabel(t *testing.T) {
	label, err := BuildCustomLabel("930", "AM")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeLabel("9:30 AM"), label)

	label, err = BuildCustomLabel("4", "pm")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeLabel("4:00 PM"), label)
}

func TestBuildCustomLabel_BadPeriod(t *testing.T) {
	for _, period := range []string{"", "XM", "A.M."} {
		_, err := BuildCustomLabel("930", period)
		assert.ErrorIs(t, err, ErrInvalidTimeInput, "period %q", period)
	}
}

func TestBuildCustomLabel_HourRangeNotValidated(t *testing.T) {
	// Час вне 1-12 не отклоняется при вводе; такая метка просто
	// не парсится и уходит в конец при сортировке.
	label, err := BuildCustomLabel("13", "AM")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeLabel("13:00 AM"), label)
	assert.False(t, label.IsValid())

	// Минуты тоже не проверяются; "965" становится "9:65 AM" и так же
	// не парсится.
	label, err = BuildCustomLabel("965", "AM")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeLabel("9:65 AM"), label)
	assert.False(t, label.IsValid())
}
