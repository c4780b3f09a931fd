package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid_January2024(t *testing.T) {
	// 2024-01-01 is a Monday, so one leading blank (Sunday = 0)
	cells := MonthGrid(2024, time.January)

	require.Len(t, cells, 1+31)
	assert.True(t, cells[0].IsBlank())
	assert.Equal(t, 1, cells[1].Day)
	assert.Equal(t, DateKey("Mon Jan 01 2024"), cells[1].Key)
	assert.Equal(t, 31, cells[len(cells)-1].Day)
	assert.Equal(t, DateKey("Wed Jan 31 2024"), cells[len(cells)-1].Key)
}

func TestMonthGrid_NoLeadingBlanks(t *testing.T) {
	// 2023-10-01 is a Sunday
	cells := MonthGrid(2023, time.October)

	require.Len(t, cells, 31)
	assert.Equal(t, 1, cells[0].Day)
}

func TestMonthGrid_LeapFebruary(t *testing.T) {
	// 2024-02-01 is a Thursday => 4 leading blanks, 29 days
	cells := MonthGrid(2024, time.February)

	require.Len(t, cells, 4+29)
	for i := 0; i < 4; i++ {
		assert.True(t, cells[i].IsBlank())
	}
	assert.Equal(t, 29, cells[len(cells)-1].Day)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
}

func TestMonthNavigation_YearRollover(t *testing.T) {
	year, month := NextMonth(2024, time.December)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)

	year, month = PrevMonth(2025, time.January)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)

	year, month = NextMonth(2024, time.June)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.July, month)
}
