package services

import (
	"strings"
	"time"
)

// Event describes the single calendar entry served to guests.
// Timestamps use the compact ICS UTC form, e.g. 20251220T130000Z.
type Event struct {
	Summary     string
	Location    string
	Description string
	StartUTC    string
	EndUTC      string
}

// EventICS renders the event as an iCalendar document.
func EventICS(event Event) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//mariage//rsvp//FR",
		"BEGIN:VEVENT",
		"UID:" + event.StartUTC + "@mariage",
		"DTSTAMP:" + time.Now().UTC().Format("20060102T150405Z"),
		"DTSTART:" + event.StartUTC,
		"DTEND:" + event.EndUTC,
		"SUMMARY:" + escapeICS(event.Summary),
		"LOCATION:" + escapeICS(event.Location),
		"DESCRIPTION:" + escapeICS(event.Description),
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}
	return strings.Join(lines, "\r\n")
}

// escapeICS quotes the characters RFC 5545 reserves in text values
func escapeICS(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
