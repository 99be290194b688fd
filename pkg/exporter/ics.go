package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// moscow is the zone the service's wall-clock times are given in.
var moscow = loadMoscow()

func loadMoscow() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		// no tzdata on the host; Moscow has had no DST since 2014
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}

// Event is one dated entry of a calendar export.
type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Location    string
	Description string
	Cancelled   bool
}

// GroupEvents flattens a group timetable into exportable events.
// Events without both bounds are skipped.
func GroupEvents(events *timetable.GroupEvents) []Event {
	var out []Event
	for _, day := range events.Days {
		for i, e := range day.Events {
			if e.Start == nil || e.End == nil {
				continue
			}
			out = append(out, Event{
				UID:         fmt.Sprintf("group-%d-%s-%d", events.GroupID, e.Start.Format("20060102T1504"), i),
				Start:       inMoscow(*e.Start),
				End:         inMoscow(*e.End),
				Summary:     e.Subject,
				Location:    e.LocationsDisplayText,
				Description: describe(e.EducatorsDisplayText, e.ContingentUnitName),
				Cancelled:   e.IsCancelled,
			})
		}
	}
	return out
}

// EducatorEvents flattens an educator timetable into exportable events.
func EducatorEvents(events *timetable.EducatorEvents) []Event {
	var out []Event
	for _, day := range events.Days {
		for i, e := range day.Events {
			if e.Start == nil || e.End == nil {
				continue
			}
			out = append(out, Event{
				UID:         fmt.Sprintf("educator-%d-%s-%d", events.EducatorID, e.Start.Format("20060102T1504"), i),
				Start:       inMoscow(*e.Start),
				End:         inMoscow(*e.End),
				Summary:     e.Subject,
				Location:    e.LocationsDisplayText,
				Description: describe(e.EducatorsDisplayText, e.ContingentUnitName),
				Cancelled:   e.IsCancelled,
			})
		}
	}
	return out
}

// inMoscow keeps the wall-clock reading of t and reinterprets it in Moscow time.
func inMoscow(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, moscow)
}

func describe(educators, contingent string) string {
	var lines []string
	if educators != "" {
		lines = append(lines, "Educators: "+educators)
	}
	if contingent != "" {
		lines = append(lines, "Groups: "+contingent)
	}
	return strings.Join(lines, "\n")
}

// GenerateICS writes the events as an ICS calendar to the provided writer
func GenerateICS(events []Event, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for _, e := range events {
		event := cal.AddEvent(e.UID + "@timetable.spbu.ru")
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(e.Start)
		event.SetEndAt(e.End)
		event.SetSummary(e.Summary)
		if e.Location != "" {
			event.SetLocation(e.Location)
		}
		if e.Description != "" {
			event.SetDescription(e.Description)
		}
		if e.Cancelled {
			event.SetStatus(ics.ObjectStatusCancelled)
		}
	}

	return cal.SerializeTo(w)
}
