package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"
)

func at(hour, minute int) *time.Time {
	t := time.Date(2019, time.April, 1, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestGenerateICS_GroupEvents(t *testing.T) {
	events := &timetable.GroupEvents{
		GroupID: 18150,
		Days: []timetable.GroupEventsDay{
			{
				Events: []timetable.GroupEvent{
					{
						Start:                at(10, 0),
						End:                  at(11, 35),
						Subject:              "Calculus lecture",
						LocationsDisplayText: "Room 405",
						EducatorsDisplayText: "Ivanov I. I.",
					},
					{
						Start:       at(13, 40),
						End:         at(15, 15),
						Subject:     "Physical education",
						IsCancelled: true,
					},
					{
						Subject: "Undated",
					},
				},
			},
		},
	}

	flat := GroupEvents(events)
	if len(flat) != 2 {
		t.Fatalf("expected 2 exportable events, got %d", len(flat))
	}

	var buf bytes.Buffer
	if err := GenerateICS(flat, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Calculus lecture") {
		t.Errorf("Expected ICS to contain event summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:Room 405") {
		t.Errorf("Expected ICS to contain room location")
	}

	// 01-Apr-2019 10:00 Moscow time is 07:00 UTC.
	if !strings.Contains(output, "DTSTART:20190401T070000Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}

	if strings.Count(output, "STATUS:CANCELLED") != 1 {
		t.Errorf("Expected exactly one cancelled event, got: \n%s", output)
	}
}

func TestEducatorEvents(t *testing.T) {
	events := &timetable.EducatorEvents{
		EducatorID: 2151,
		Days: []timetable.EducatorEventsDay{
			{
				Events: []timetable.EducatorEvent{
					{Start: at(9, 30), End: at(11, 5), Subject: "Seminar", ContingentUnitName: "16.B10"},
				},
			},
		},
	}

	flat := EducatorEvents(events)
	if len(flat) != 1 {
		t.Fatalf("expected 1 event, got %d", len(flat))
	}

	e := flat[0]
	if e.Start.Location() != moscow {
		t.Errorf("expected the start to be placed in Moscow time, got %v", e.Start.Location())
	}
	if e.Start.Hour() != 9 || e.Start.Minute() != 30 {
		t.Errorf("expected the wall clock to be kept, got %v", e.Start)
	}
	if e.Description != "Groups: 16.B10" {
		t.Errorf("unexpected description %q", e.Description)
	}
	if !strings.HasPrefix(e.UID, "educator-2151-") {
		t.Errorf("unexpected uid %q", e.UID)
	}
}
