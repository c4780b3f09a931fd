package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"5", "(5"},
		{"514", "(514"},
		{"5141", "(514)-1"},
		{"514123", "(514)-123"},
		{"5141234", "(514)-123-4"},
		{"5141234567", "(514)-123-4567"},
		{"514-123-4567", "(514)-123-4567"},
		{"(514)-123-4567", "(514)-123-4567"},
		{"51412345678901", "(514)-123-4567"},
		{"abc", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPhone(tc.raw), "raw %q", tc.raw)
	}
}

func TestFormatPhone_CompleteLength(t *testing.T) {
	assert.Len(t, FormatPhone("5141234567"), domain.FormattedPhoneLength)
}
