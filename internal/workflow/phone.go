package workflow

import (
	"strings"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// FormatPhone masks free-form phone input as "(XXX)-XXX-XXXX". Non-digit
// characters are dropped and at most ten digits are kept, so the mask can
// be re-applied on every keystroke. The result is a complete number only
// at the full fourteen-character length.
func FormatPhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == domain.PhoneDigits {
				break
			}
		}
	}

	d := digits.String()
	if d == "" {
		return ""
	}

	var out strings.Builder
	out.WriteByte('(')
	if len(d) <= 3 {
		out.WriteString(d)
		return out.String()
	}
	out.WriteString(d[:3])
	out.WriteString(")-")
	if len(d) <= 6 {
		out.WriteString(d[3:])
		return out.String()
	}
	out.WriteString(d[3:6])
	out.WriteByte('-')
	out.WriteString(d[6:])
	return out.String()
}
