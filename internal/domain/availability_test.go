package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey_Canonical(t *testing.T) {
	morning := time.Date(2024, time.January, 1, 9, 15, 0, 0, time.UTC)
	evening := time.Date(2024, time.January, 1, 22, 45, 0, 0, time.UTC)

	// Same day => same key, regardless of time of day
	assert.Equal(t, NewDateKey(morning), NewDateKey(evening))
	assert.Equal(t, DateKey("Mon Jan 01 2024"), NewDateKey(morning))

	parsed, err := ParseDateKey("Mon Jan 01 2024")
	require.NoError(t, err)
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 1, parsed.Day())
}

func TestAvailabilityRecord_SetSlot(t *testing.T) {
	rec := AvailabilityRecord{}
	date := DateKey("Mon Jan 01 2024")

	assert.True(t, rec.SetSlot(date, "03:00 PM"))
	assert.True(t, rec.SetSlot(date, "09:00 AM"))
	assert.Equal(t, []TimeLabel{"09:00 AM", "03:00 PM"}, rec.Slots(date))

	// Idempotent: a second identical set changes nothing
	assert.False(t, rec.SetSlot(date, "09:00 AM"))
	assert.Equal(t, []TimeLabel{"09:00 AM", "03:00 PM"}, rec.Slots(date))
}

func TestAvailabilityRecord_UnsetSlot_RemovesEmptyDate(t *testing.T) {
	rec := AvailabilityRecord{}
	date := DateKey("Tue Jan 02 2024")

	rec.SetSlot(date, "10:30 AM")
	assert.Equal(t, []DateKey{date}, rec.Dates())

	assert.True(t, rec.UnsetSlot(date, "10:30 AM"))
	assert.Empty(t, rec.Dates())
	assert.Empty(t, rec.Slots(date))

	// Date must be gone from the record, not merely emptied
	_, present := rec[date]
	assert.False(t, present)
}

func TestAvailabilityRecord_ClearDate(t *testing.T) {
	rec := AvailabilityRecord{}
	date := DateKey("Wed Jan 03 2024")

	rec.SetSlot(date, "09:00 AM")
	rec.SetSlot(date, "10:30 AM")

	assert.True(t, rec.ClearDate(date))
	assert.NotContains(t, rec.Dates(), date)
	assert.False(t, rec.ClearDate(date))
}

func TestAvailabilityRecord_DatesChronological(t *testing.T) {
	rec := AvailabilityRecord{}
	rec.SetSlot("Wed Jan 03 2024", "09:00 AM")
	rec.SetSlot("Mon Jan 01 2024", "09:00 AM")
	rec.SetSlot("Fri Dec 29 2023", "09:00 AM")

	assert.Equal(t, []DateKey{"Fri Dec 29 2023", "Mon Jan 01 2024", "Wed Jan 03 2024"}, rec.Dates())
}

func TestAvailabilityRecord_SlotsReturnsCopy(t *testing.T) {
	rec := AvailabilityRecord{}
	date := DateKey("Mon Jan 01 2024")
	rec.SetSlot(date, "09:00 AM")

	slots := rec.Slots(date)
	slots[0] = "mutated"
	assert.Equal(t, []TimeLabel{"09:00 AM"}, rec.Slots(date))
}
