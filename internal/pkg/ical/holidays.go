// Package ical reads holiday calendars in iCalendar format so that public
// holiday lists can be imported from government or HR published .ics files.
package ical

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
)

// Holiday is a single all-day entry decoded from a VEVENT.
type Holiday struct {
	Date time.Time
	Name string
}

// ParseHolidays decodes every VEVENT in the stream into a Holiday. Events
// without a DTSTART are skipped, events without a SUMMARY keep an empty name.
// Multi-day events contribute only their start date.
func ParseHolidays(r io.Reader) ([]Holiday, error) {
	dec := ical.NewDecoder(r)

	var holidays []Holiday
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, event := range cal.Events() {
			start, err := event.DateTimeStart(time.UTC)
			if err != nil || start.IsZero() {
				continue
			}

			name := ""
			if prop := event.Props.Get(ical.PropSummary); prop != nil {
				name = prop.Value
			}

			holidays = append(holidays, Holiday{
				Date: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
				Name: name,
			})
		}
	}

	return holidays, nil
}
