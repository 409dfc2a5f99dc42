package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts tried, in order, for non-numeric date input. Zone-less layouts are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDateInput normalizes a caller-supplied date. A string that is entirely a
// finite number is epoch milliseconds; anything else goes through the layouts
// above. ok is false when no valid date comes out, and callers treat that as
// "not supplied".
func ParseDateInput(raw string) (t time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}, false
		}
		// Outside the range a time.Time in ms can hold.
		if math.Abs(f) > 8.64e15 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(math.Trunc(f))).UTC(), true
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
