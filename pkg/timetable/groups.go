package timetable

import "time"

// GroupEvents is a student group's timetable for one week or a date range.
type GroupEvents struct {
	GroupID              int
	GroupDisplayName     string
	TimetableDisplayName string

	PreviousWeekMonday *Date
	NextWeekMonday     *Date
	WeekMonday         *Date

	IsPreviousWeekReferenceAvailable bool
	IsNextWeekReferenceAvailable     bool
	IsCurrentWeekReferenceAvailable  bool

	WeekDisplayText string
	Days            []GroupEventsDay
}

func (e *GroupEvents) UnmarshalJSON(data []byte) error {
	o, err := readObject("GroupEvents", data)
	if err != nil {
		return err
	}
	o.require("StudentGroupId")
	*e = GroupEvents{
		GroupID:                          o.integer("StudentGroupId"),
		GroupDisplayName:                 o.str("StudentGroupDisplayName"),
		TimetableDisplayName:             o.str("TimeTableDisplayName"),
		PreviousWeekMonday:               o.date("PreviousWeekMonday"),
		NextWeekMonday:                   o.date("NextWeekMonday"),
		WeekMonday:                       o.date("WeekMonday"),
		IsPreviousWeekReferenceAvailable: o.boolean("IsPreviousWeekReferenceAvailable"),
		IsNextWeekReferenceAvailable:     o.boolean("IsNextWeekReferenceAvailable"),
		IsCurrentWeekReferenceAvailable:  o.boolean("IsCurrentWeekReferenceAvailable"),
		WeekDisplayText:                  o.str("WeekDisplayText"),
		Days:                             list[GroupEventsDay](o, "Days"),
	}
	return o.err
}

// GroupEventsDay holds one calendar day of a group timetable.
type GroupEventsDay struct {
	Day       *time.Time
	DayString string
	Events    []GroupEvent
}

func (d *GroupEventsDay) UnmarshalJSON(data []byte) error {
	o, err := readObject("GroupEventsDay", data)
	if err != nil {
		return err
	}
	*d = GroupEventsDay{
		Day:       o.dateTime("Day"),
		DayString: o.str("DayString"),
		Events:    list[GroupEvent](o, "DayStudyEvents"),
	}
	return o.err
}

// GroupEvent is a single dated study event of a group.
type GroupEvent struct {
	KindCode int
	Start    *time.Time
	End      *time.Time
	Subject  string

	TimeIntervalString               string
	DateWithTimeIntervalString       string
	DisplayDateAndTimeIntervalString string
	LocationsDisplayText             string
	EducatorsDisplayText             string
	ContingentUnitName               string
	DivisionAndCourse                string
	// ContingentUnitsDisplayText is read from the misspelled upstream key ContingentUnitsDisplayTest.
	ContingentUnitsDisplayText       string

	HasEducators                 bool
	IsCancelled                  bool
	IsAssigned                   bool
	TimeWasChanged               bool
	LocationsWereChanged         bool
	EducatorsWereReassigned      bool
	IsElective                   bool
	HasTheSameTimeAsPreviousItem bool
	IsStudy                      bool
	AllDay                       bool
	WithinTheSameDay             bool

	ElectiveDisciplinesCount int

	Locations []Location
	Educators []EducatorRef
}

func (e *GroupEvent) UnmarshalJSON(data []byte) error {
	o, err := readObject("GroupEvent", data)
	if err != nil {
		return err
	}
	*e = GroupEvent{
		KindCode:                         o.integer("StudyEventsTimeTableKindCode"),
		Start:                            o.dateTime("Start"),
		End:                              o.dateTime("End"),
		Subject:                          o.str("Subject"),
		TimeIntervalString:               o.str("TimeIntervalString"),
		DateWithTimeIntervalString:       o.str("DateWithTimeIntervalString"),
		DisplayDateAndTimeIntervalString: o.str("DisplayDateAndTimeIntervalString"),
		LocationsDisplayText:             o.str("LocationsDisplayText"),
		EducatorsDisplayText:             o.str("EducatorsDisplayText"),
		ContingentUnitName:               o.str("ContingentUnitName"),
		DivisionAndCourse:                o.str("DivisionAndCourse"),
		ContingentUnitsDisplayText:       o.str("ContingentUnitsDisplayTest"),
		HasEducators:                     o.boolean("HasEducators"),
		IsCancelled:                      o.boolean("IsCancelled"),
		IsAssigned:                       o.boolean("IsAssigned"),
		TimeWasChanged:                   o.boolean("TimeWasChanged"),
		LocationsWereChanged:             o.boolean("LocationsWereChanged"),
		EducatorsWereReassigned:          o.boolean("EducatorsWereReassigned"),
		IsElective:                       o.boolean("IsElective"),
		HasTheSameTimeAsPreviousItem:     o.boolean("HasTheSameTimeAsPreviousItem"),
		IsStudy:                          o.boolean("IsStudy"),
		AllDay:                           o.boolean("AllDay"),
		WithinTheSameDay:                 o.boolean("WithinTheSameDay"),
		ElectiveDisciplinesCount:         o.integer("ElectiveDisciplinesCount"),
		Locations:                        list[Location](o, "EventLocations"),
		Educators:                        list[EducatorRef](o, "EducatorIds"),
	}
	return o.err
}

// FetchGroupEvents retrieves a group's events for the current week, the week
// starting at opts.From, or the range opts.From..opts.To
func (c *Client) FetchGroupEvents(groupID int, opts EventsOptions) (*GroupEvents, error) {
	var events GroupEvents
	if err := c.do(groupEventsRequest(groupID, opts), &events); err != nil {
		return nil, err
	}
	return &events, nil
}
