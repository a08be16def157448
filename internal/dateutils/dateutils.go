// Package dateutils parses the transaction dates found in bank exports.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted in transaction files.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutDayFirst = "02/01/2006"
	DateLayoutDotted   = "02.01.2006"
	DateLayoutBank     = "02-Jan-2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is the order in which layouts are tried. Day-first layouts
// come before month-first ones, as Nigerian statements are day-first.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	time.RFC3339,
	DateLayoutDayFirst,
	DateLayoutDotted,
	DateLayoutBank,
	"02-01-2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006/01/02",
}

// ParseDate parses dateStr with the first matching layout and returns the
// time and the layout used.
func ParseDate(dateStr string) (time.Time, string, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, "", fmt.Errorf("empty date")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims whitespace and collapses inner runs of spaces.
func CleanDateString(dateStr string) string {
	return strings.Join(strings.Fields(dateStr), " ")
}

// ExtractYear returns the year of dateStr.
func ExtractYear(dateStr string) (int, error) {
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}

// ToISODate formats date as YYYY-MM-DD, or "" for the zero time.
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}
