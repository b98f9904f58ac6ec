package ical

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const holidayFeed = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//gov//public holidays//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:holiday-1\r\n" +
	"DTSTAMP:20260101T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20260101\r\n" +
	"SUMMARY:New Year's Day\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:holiday-2\r\n" +
	"DTSTAMP:20260101T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20260501\r\n" +
	"SUMMARY:Labour Day\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseHolidays(t *testing.T) {
	holidays, err := ParseHolidays(strings.NewReader(holidayFeed))
	require.NoError(t, err)
	require.Len(t, holidays, 2)

	assert.Equal(t, "New Year's Day", holidays[0].Name)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), holidays[0].Date)
	assert.Equal(t, "Labour Day", holidays[1].Name)
	assert.Equal(t, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), holidays[1].Date)
}

func TestParseHolidaysRejectsGarbage(t *testing.T) {
	_, err := ParseHolidays(strings.NewReader("not an ics file"))
	assert.Error(t, err)
}

func TestParseHolidaysEmptyCalendar(t *testing.T) {
	feed := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//gov//public holidays//EN\r\n" +
		"END:VCALENDAR\r\n"

	holidays, err := ParseHolidays(strings.NewReader(feed))
	require.NoError(t, err)
	assert.Empty(t, holidays)
}
