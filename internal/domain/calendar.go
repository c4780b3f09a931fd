package domain

import "time"

// GridCell is one cell of a month grid. Leading blank cells (before the
// first day of the month) have Day == 0 and an empty Key.
type GridCell struct {
	Day int
	Key DateKey
}

// IsBlank reports whether the cell is a leading filler cell.
func (c GridCell) IsBlank() bool {
	return c.Day == 0
}

// MonthGrid builds the calendar grid for a month: leadingBlanks filler
// cells (leadingBlanks = weekday of day 1, Sunday = 0) followed by one
// cell per day 1..N. Pure and deterministic.
func MonthGrid(year int, month time.Month) []GridCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	days := DaysInMonth(year, month)

	cells := make([]GridCell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, GridCell{})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cells = append(cells, GridCell{Day: day, Key: NewDateKey(date)})
	}
	return cells
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NextMonth advances one month, rolling the year forward at December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PrevMonth retreats one month, rolling the year back at January.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
