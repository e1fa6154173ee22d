package parser

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order against a date label. Day-first formats
// come first: the sheets are written with Brazilian conventions.
var dateLayouts = []string{
	"02/01/2006",
	"02/01/06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"01-02-06",
}

// excelSerialEpoch is the zero date of the 1900 date system used by xlsx
// serial numbers, already offset for the historical Lotus leap-year bug.
var excelSerialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// minDateSerial rejects small numbers that show up in date cells but are
// clearly not schedule dates. 40000 lands in mid-2009.
const minDateSerial = 40000

// ParseDate interprets a date label from the date row. It tries the known
// text layouts first and falls back to xlsx serial numbers. The second
// return value is false when nothing matches.
func ParseDate(label string) (time.Time, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(label, 64); err == nil && serial > minDateSerial {
		return excelSerialEpoch.AddDate(0, 0, int(serial)), true
	}
	return time.Time{}, false
}
