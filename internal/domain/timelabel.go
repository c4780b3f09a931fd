package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedTimeLabel is returned when a label cannot be parsed into a
// minutes-since-midnight order. Such labels are kept but sort last; they
// never crash the ordering routine.
var ErrMalformedTimeLabel = errors.New("domain: malformed time label")

// TimeLabel is the display string of a slot on a 12-hour clock,
// e.g. "09:00 AM" or "3:30 PM". Ordering is derived by parsing the label
// into minutes since midnight ("12:00 AM" = 0, "12:00 PM" = 720).
type TimeLabel string

var timeLabelRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))? (AM|PM)$`)

// Minutes parses the label into minutes since midnight.
// Hours outside 1-12 and minutes outside 0-59 are rejected with
// ErrMalformedTimeLabel rather than guessed at.
func (t TimeLabel) Minutes() (int, error) {
	m := timeLabelRe.FindStringSubmatch(strings.TrimSpace(string(t)))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimeLabel, string(t))
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour out of range in %q", ErrMalformedTimeLabel, string(t))
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, fmt.Errorf("%w: minute out of range in %q", ErrMalformedTimeLabel, string(t))
		}
	}

	if m[3] == "PM" && hour < 12 {
		hour += 12
	}
	if m[3] == "AM" && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, nil
}

// IsValid reports whether the label parses into a minute order.
func (t TimeLabel) IsValid() bool {
	_, err := t.Minutes()
	return err == nil
}

// String returns the label as a plain string.
func (t TimeLabel) String() string {
	return string(t)
}

// SortTimeLabels orders labels ascending by parsed minute order.
// Malformed labels keep their relative order and go last.
func SortTimeLabels(labels []TimeLabel) {
	sort.SliceStable(labels, func(i, j int) bool {
		mi, errI := labels[i].Minutes()
		mj, errJ := labels[j].Minutes()
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		return mi < mj
	})
}

// InsertTimeLabel inserts label into the slice keeping it sorted and
// de-duplicated. Inserting an already-present label is a no-op.
func InsertTimeLabel(labels []TimeLabel, label TimeLabel) []TimeLabel {
	for _, existing := range labels {
		if existing == label {
			return labels
		}
	}
	out := append(append([]TimeLabel{}, labels...), label)
	SortTimeLabels(out)
	return out
}

// RemoveTimeLabel removes label from the slice if present.
// The second return value reports whether anything was removed.
func RemoveTimeLabel(labels []TimeLabel, label TimeLabel) ([]TimeLabel, bool) {
	out := make([]TimeLabel, 0, len(labels))
	removed := false
	for _, existing := range labels {
		if existing == label {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	return out, removed
}
