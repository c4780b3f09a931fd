package domain

import "time"

// BookingEntry is a committed reservation of one slot. Entries are
// append-only: nothing in the engine updates or deletes a ledger entry.
//
// Uniqueness of (Date, Time) is enforced by the slot resolver before
// commit, not by the ledger itself.
type BookingEntry struct {
	ID   int64
	Date DateKey
	Time TimeLabel

	// Denormalized request data for manual follow-up
	CustomerName  string
	ContactMethod string // ContactEmail or ContactPhone
	ContactDetail string
	ServiceName   string
	TotalPrice    int

	CreatedAt time.Time
}

// OccupiesSlot reports whether the entry claims the given slot.
func (b *BookingEntry) OccupiesSlot(date DateKey, label TimeLabel) bool {
	return b.Date == date && b.Time == label
}

// BookingSummary is the read-only payload handed to the notification
// collaborator after a successful submission.
type BookingSummary struct {
	CustomerName  string        `json:"customerName"`
	ContactMethod string        `json:"contactMethod"`
	ContactDetail string        `json:"contactDetail"`
	Date          DateKey       `json:"date"`
	Time          TimeLabel     `json:"time"`
	ServiceName   string        `json:"serviceName"`
	Items         []PriceLine   `json:"items"`
	TotalPrice    int           `json:"totalPrice"`
}
