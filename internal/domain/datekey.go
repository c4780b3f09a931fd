package domain

import "time"

// DateKey is the canonical string identity of a calendar date,
// rendered as "weekday month day year" (e.g. "Mon Jan 01 2024").
// Two dates are the same day iff their keys are equal; time of day is ignored.
type DateKey string

// NewDateKey builds the canonical key for the given moment's calendar date.
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyFormat))
}

// ParseDateKey parses a canonical key back into a midnight time value.
func ParseDateKey(key DateKey) (time.Time, error) {
	return time.Parse(DateKeyFormat, string(key))
}

// IsZero returns true if the key is empty.
func (k DateKey) IsZero() bool {
	return k == ""
}

// String returns the key as a plain string.
func (k DateKey) String() string {
	return string(k)
}

// Before reports whether k's calendar date is earlier than other's.
// Keys that fail to parse sort after valid ones.
func (k DateKey) Before(other DateKey) bool {
	t1, err1 := ParseDateKey(k)
	t2, err2 := ParseDateKey(other)
	if err1 != nil {
		return false
	}
	if err2 != nil {
		return true
	}
	return t1.Before(t2)
}
