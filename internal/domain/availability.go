package domain

import "sort"

// AvailabilityRecord maps a calendar date key to its ordered, de-duplicated
// set of open time labels. A date is available iff its slot list is
// non-empty; emptying a date removes it from the record entirely.
type AvailabilityRecord map[DateKey][]TimeLabel

// Slots returns the ordered slot list for a date, or an empty slice if the
// date is absent. The returned slice is a copy.
func (r AvailabilityRecord) Slots(date DateKey) []TimeLabel {
	slots, ok := r[date]
	if !ok {
		return []TimeLabel{}
	}
	return append([]TimeLabel{}, slots...)
}

// SetSlot adds label to the date's slot list, keeping it sorted and
// de-duplicated. Returns true if the record changed.
func (r AvailabilityRecord) SetSlot(date DateKey, label TimeLabel) bool {
	before := len(r[date])
	r[date] = InsertTimeLabel(r[date], label)
	return len(r[date]) != before
}

// UnsetSlot removes label from the date's slot list. If the list becomes
// empty the date is removed from the record. Returns true if the record
// changed.
func (r AvailabilityRecord) UnsetSlot(date DateKey, label TimeLabel) bool {
	slots, removed := RemoveTimeLabel(r[date], label)
	if !removed {
		return false
	}
	if len(slots) == 0 {
		delete(r, date)
	} else {
		r[date] = slots
	}
	return true
}

// ClearDate removes all slots for a date. Returns true if the date had
// any slots.
func (r AvailabilityRecord) ClearDate(date DateKey) bool {
	if _, ok := r[date]; !ok {
		return false
	}
	delete(r, date)
	return true
}

// Dates returns all available date keys sorted chronologically.
func (r AvailabilityRecord) Dates() []DateKey {
	dates := make([]DateKey, 0, len(r))
	for date, slots := range r {
		if len(slots) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// Clone returns a deep copy of the record.
func (r AvailabilityRecord) Clone() AvailabilityRecord {
	out := make(AvailabilityRecord, len(r))
	for date, slots := range r {
		out[date] = append([]TimeLabel{}, slots...)
	}
	return out
}
