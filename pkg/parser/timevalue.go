package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	clockSecondsPattern = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	clockPattern        = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// NormalizeTime converts a raw cell value into a canonical "HH:MM" string.
// Numeric cells arrive as their decimal string form: a fraction of a day
// (0.75 -> "18:00"), or a date+time serial whose fractional part carries
// the time of day. A serial with no fractional part is date-only, so no
// time is set. Zero means "not set", not midnight.
//
// Values that fit none of the known shapes are returned verbatim so the
// validator can report them instead of silently coercing them away.
func NormalizeTime(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		switch {
		case v == 0:
			return ""
		case v > 0 && v < 1:
			return clockFromDayFraction(v)
		case v >= 1:
			frac := v - math.Floor(v)
			if frac > 0 {
				return clockFromDayFraction(frac)
			}
			return ""
		default:
			// Negative numbers are data-entry errors; surface as-is.
			return s
		}
	}

	if clockSecondsPattern.MatchString(s) {
		return s[:strings.LastIndex(s, ":")]
	}
	if clockPattern.MatchString(s) {
		h, m, _ := strings.Cut(s, ":")
		if len(h) == 1 {
			h = "0" + h
		}
		return h + ":" + m
	}

	return s
}

// clockFromDayFraction renders a fraction of a 24-hour day as "HH:MM".
// Rounding to the nearest minute can land exactly on 24:00, which wraps
// back to midnight.
func clockFromDayFraction(frac float64) string {
	total := int(math.Round(frac*24*60)) % (24 * 60)
	h := total / 60
	m := total % 60
	return fmt2(h) + ":" + fmt2(m)
}

func fmt2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
