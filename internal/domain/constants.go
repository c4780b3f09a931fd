package domain

// Time and date format constants
const (
	DateFormat    = "2006-01-02"      // YYYY-MM-DD, external API representation
	DateKeyFormat = "Mon Jan 02 2006" // canonical calendar-date key, e.g. "Mon Jan 01 2024"
)

// Contact methods accepted on a draft order
const (
	ContactEmail = "email"
	ContactPhone = "phone"
)

// Business validation constants
const (
	MaxAddonQuantity     = 20 // counter add-ons are clamped to [0, 20]
	PhoneDigits          = 10
	FormattedPhoneLength = 14 // len("(XXX)-XXX-XXXX")
	MaxCustomerNameLen   = 200
)

// PresetTimeLabels are the studio's quick-toggle slot labels offered to the admin.
var PresetTimeLabels = []TimeLabel{
	"09:00 AM", "10:30 AM", "12:00 PM",
	"01:30 PM", "03:00 PM", "04:30 PM", "06:00 PM",
}
