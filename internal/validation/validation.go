package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	vpaPattern    = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	digitsPattern = regexp.MustCompile(`^\d{13,19}$`)
)

// ValidateLuhn reports whether cardNumber passes the Luhn checksum.
// Spaces and hyphens are stripped before checking.
func ValidateLuhn(cardNumber string) bool {
	clean := cleanCardNumber(cardNumber)
	if !digitsPattern.MatchString(clean) {
		return false
	}

	sum := 0
	double := false
	for i := len(clean) - 1; i >= 0; i-- {
		digit := int(clean[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// CardNetwork classifies a card number by its leading digits.
func CardNetwork(cardNumber string) string {
	clean := cleanCardNumber(cardNumber)
	switch {
	case strings.HasPrefix(clean, "4"):
		return "visa"
	case matchRange(clean, "51", "55"):
		return "mastercard"
	case strings.HasPrefix(clean, "34"), strings.HasPrefix(clean, "37"):
		return "amex"
	case strings.HasPrefix(clean, "60"), strings.HasPrefix(clean, "65"), matchRange(clean, "81", "89"):
		return "rupay"
	default:
		return "unknown"
	}
}

// ValidateVPA reports whether vpa has the form local-part@bank-handle.
func ValidateVPA(vpa string) bool {
	return vpaPattern.MatchString(vpa)
}

// CardExpired reports whether (month, year) is strictly before the current
// calendar month. Two-digit years are interpreted as 20xx.
func CardExpired(month, year int, now time.Time) bool {
	if year < 100 {
		year += 2000
	}
	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}

// Last4 returns the last four digits of a card number.
func Last4(cardNumber string) string {
	clean := cleanCardNumber(cardNumber)
	if len(clean) < 4 {
		return clean
	}
	return clean[len(clean)-4:]
}

func cleanCardNumber(cardNumber string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(cardNumber)
}

func matchRange(s, lo, hi string) bool {
	if len(s) < 2 {
		return false
	}
	prefix := s[:2]
	return prefix >= lo && prefix <= hi
}
