package invoice

import (
	"regexp"
	"strconv"

	"github.com/araddon/dateparse"
)

var nonAmountChars = regexp.MustCompile(`[^0-9.]`)

// NormalizeDate reformats any recognizable date to ISO 8601 (YYYY-MM-DD).
// Unrecognizable input passes through unchanged; normalization never fails
// the record.
func NormalizeDate(raw string) string {
	if raw == "" {
		return raw
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

// NormalizeAmount strips everything but digits and dots and parses the rest
// as a float. Input that still doesn't parse (two dots, no digits) keeps its
// original textual form.
func NormalizeAmount(raw string) Amount {
	cleaned := nonAmountChars.ReplaceAllString(raw, "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return RawAmount(raw)
	}
	return ParsedAmount(f)
}
