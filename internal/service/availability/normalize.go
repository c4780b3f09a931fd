package availability

import (
	"fmt"
	"strings"

	"github.com/fredartois/NBF-BookingService/internal/domain"
)

// NormalizeClockInput приводит свободный числовой ввод админа к виду "H:MM"
// до добавления маркера периода (AM/PM):
//   - из ввода отбрасываются все символы, кроме цифр и двоеточия
//   - 1-2 цифры без двоеточия трактуются как час с неявным ":00" ("10" -> "10:00")
//   - больше 2 цифр без двоеточия: последние две - минуты, остальное - час
//     ("930" -> "9:30", "1015" -> "10:15")
//   - ввод с двоеточием используется как есть
//
// Диапазон часа здесь НЕ проверяется: метка с часом вне 1-12 попадает в
// календарь как есть и при сортировке уходит в конец списка
func NormalizeClockInput(raw string) (string, error) {
	var clean strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ':' {
			clean.WriteRune(r)
		}
	}

	input := clean.String()
	if input == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeInput, raw)
	}

	if strings.Contains(input, ":") {
		return input, nil
	}

	if len(input) <= 2 {
		return input + ":00", nil
	}

	hour := input[:len(input)-2]
	minutes := input[len(input)-2:]
	return hour + ":" + minutes, nil
}

// BuildCustomLabel нормализует ввод и добавляет маркер периода
func BuildCustomLabel(raw string, period string) (domain.TimeLabel, error) {
	period = strings.ToUpper(strings.TrimSpace(period))
	if period != "AM" && period != "PM" {
		return "", fmt.Errorf("%w: period must be AM or PM, got %q", ErrInvalidTimeInput, period)
	}

	normalized, err := NormalizeClockInput(raw)
	if err != nil {
		return "", err
	}

	return domain.TimeLabel(normalized + " " + period), nil
}
