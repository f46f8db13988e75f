package timeutil

import (
	"fmt"
	"time"

	"github.com/verkkoraita/toggltempo/internal/domain"
)

// ISODate is the calendar-date layout accepted everywhere a date is
// written: CLI argument, report-file name, remote requests.
const ISODate = "2006-01-02"

// PreviousWorkday returns the default target date given "today": last
// Friday when today is Monday, otherwise yesterday. Weekends and
// public holidays get no special handling beyond that.
func PreviousWorkday(today time.Time) time.Time {
	if today.Weekday() == time.Monday {
		return today.AddDate(0, 0, -3)
	}
	return today.AddDate(0, 0, -1)
}

// ParseISODate parses a strict YYYY-MM-DD date in loc. The location
// matters: day boundaries derived from the result must match the
// operator's clock, not UTC.
func ParseISODate(text string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(ISODate, text, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q does not match YYYY-MM-DD", domain.ErrFormat, text)
	}
	return d, nil
}

// DayBounds returns the half-open interval [start, end) covering the
// given calendar day in loc.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
