package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

func TestCreateBookingRequest_ToUseCaseRequest_DateForms(t *testing.T) {
	req := &CreateBookingRequest{
		LengthID: "fs-m",
		Date:     "2026-03-02",
		Time:     "10:30 AM",
	}

	out := req.ToUseCaseRequest()
	assert.Equal(t, domain.DateKey("Mon Mar 02 2026"), out.Date, "ISO date is coerced to the canonical key")
	assert.Equal(t, domain.TimeLabel("10:30 AM"), out.Time)

	req.Date = "Mon Mar 02 2026"
	assert.Equal(t, domain.DateKey("Mon Mar 02 2026"), req.ToUseCaseRequest().Date, "canonical key passes through")
}
