package timetable

import "time"

// ClassroomBusyness tells whether a classroom is occupied during an interval or part of it.
type ClassroomBusyness struct {
	ClassroomID string
	From        *time.Time
	To          *time.Time
	IsBusy      bool
}

func (b *ClassroomBusyness) UnmarshalJSON(data []byte) error {
	o, err := readObject("ClassroomBusyness", data)
	if err != nil {
		return err
	}
	o.require("Oid")
	*b = ClassroomBusyness{
		ClassroomID: o.str("Oid"),
		From:        o.dateTime("From"),
		To:          o.dateTime("To"),
		IsBusy:      o.boolean("IsBusy"),
	}
	return o.err
}

// ClassroomEvents is the weekly occupation plan of a classroom.
type ClassroomEvents struct {
	ClassroomID string
	From        *time.Time
	To          *time.Time
	DisplayText string
	HasEvents   bool
	Days        []ClassroomEventsDay
}

func (e *ClassroomEvents) UnmarshalJSON(data []byte) error {
	o, err := readObject("ClassroomEvents", data)
	if err != nil {
		return err
	}
	o.require("Oid")
	*e = ClassroomEvents{
		ClassroomID: o.str("Oid"),
		From:        o.dateTime("From"),
		To:          o.dateTime("To"),
		DisplayText: o.str("DisplayText"),
		HasEvents:   o.boolean("HasEvents"),
		Days:        list[ClassroomEventsDay](o, "ClassroomEventsDays"),
	}
	return o.err
}

// ClassroomEventsDay groups the recurring events of one day of the week.
type ClassroomEventsDay struct {
	// DayOfWeek is the service's day number (1 is Monday).
	DayOfWeek   int
	DayString   string
	EventsCount int
	Events      []ClassroomEvent
}

func (d *ClassroomEventsDay) UnmarshalJSON(data []byte) error {
	o, err := readObject("ClassroomEventsDay", data)
	if err != nil {
		return err
	}
	*d = ClassroomEventsDay{
		DayOfWeek:   o.integer("Day"),
		DayString:   o.str("DayString"),
		EventsCount: o.integer("DayStudyEventsCount"),
		Events:      list[ClassroomEvent](o, "DayStudyEvents"),
	}
	return o.err
}

// ClassroomEvent is a weekly recurring slot; its bounds carry no date.
type ClassroomEvent struct {
	Start                *TimeOfDay
	End                  *TimeOfDay
	Subject              string
	TimeIntervalString   string
	Dates                []string
	EducatorsDisplayText string
	IsCancelled          bool
	KindCode             int
	Educators            []EducatorRef
	ContingentUnits      []ContingentUnit
}

func (e *ClassroomEvent) UnmarshalJSON(data []byte) error {
	o, err := readObject("ClassroomEvent", data)
	if err != nil {
		return err
	}
	*e = ClassroomEvent{
		Start:                o.clock("Start"),
		End:                  o.clock("End"),
		Subject:              o.str("Subject"),
		TimeIntervalString:   o.str("TimeIntervalString"),
		Dates:                o.strings("Dates"),
		EducatorsDisplayText: o.str("EducatorsDisplayText"),
		IsCancelled:          o.boolean("IsCanceled"),
		KindCode:             o.integer("StudyEventsTimeTableKindCode"),
		Educators:            list[EducatorRef](o, "EducatorIds"),
		ContingentUnits:      list[ContingentUnit](o, "ContingentUnitNames"),
	}
	return o.err
}

// FetchClassroomBusyness checks whether a classroom is busy between start and end
func (c *Client) FetchClassroomBusyness(classroomID string, start, end time.Time) (*ClassroomBusyness, error) {
	var busyness ClassroomBusyness
	if err := c.do(classroomBusynessRequest(classroomID, start, end), &busyness); err != nil {
		return nil, err
	}
	return &busyness, nil
}

// FetchClassroomEvents retrieves the events held in a classroom between from and to
func (c *Client) FetchClassroomEvents(classroomID string, from, to time.Time) (*ClassroomEvents, error) {
	var events ClassroomEvents
	if err := c.do(classroomEventsRequest(classroomID, from, to), &events); err != nil {
		return nil, err
	}
	return &events, nil
}
