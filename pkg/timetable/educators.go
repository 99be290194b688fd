package timetable

import "time"

// Educator is a lecturer found by a last name search.
type Educator struct {
	ID          int
	DisplayName string
	FullName    string
	Employments []Employment
}

func (e *Educator) UnmarshalJSON(data []byte) error {
	o, err := readObject("Educator", data)
	if err != nil {
		return err
	}
	o.require("Id")
	*e = Educator{
		ID:          o.integer("Id"),
		DisplayName: o.str("DisplayName"),
		FullName:    o.str("FullName"),
		Employments: list[Employment](o, "Employments"),
	}
	return o.err
}

// Employment is a position an educator holds in a department.
type Employment struct {
	Position   string
	Department string
}

func (e *Employment) UnmarshalJSON(data []byte) error {
	o, err := readObject("Employment", data)
	if err != nil {
		return err
	}
	*e = Employment{
		Position:   o.str("Position"),
		Department: o.str("Department"),
	}
	return o.err
}

// EducatorSearch is the envelope the educator search resource answers with.
type EducatorSearch struct {
	Educators []Educator
}

func (s *EducatorSearch) UnmarshalJSON(data []byte) error {
	o, err := readObject("EducatorSearch", data)
	if err != nil {
		return err
	}
	*s = EducatorSearch{
		Educators: list[Educator](o, "Educators"),
	}
	return o.err
}

// EducatorTermEvents is an educator's recurring weekly schedule for a term.
type EducatorTermEvents struct {
	EducatorID              int
	Title                   string
	EducatorDisplayText     string
	EducatorLongDisplayText string
	DateRangeDisplayText    string
	IsSpringTerm            bool
	From                    *Date
	To                      *Date
	Next                    int
	SpringTermLinkAvailable bool
	AutumnTermLinkAvailable bool
	HasEvents               bool
	Days                    []EducatorTermDay
}

func (e *EducatorTermEvents) UnmarshalJSON(data []byte) error {
	o, err := readObject("EducatorTermEvents", data)
	if err != nil {
		return err
	}
	o.require("EducatorMasterId")
	*e = EducatorTermEvents{
		EducatorID:              o.integer("EducatorMasterId"),
		Title:                   o.str("Title"),
		EducatorDisplayText:     o.str("EducatorDisplayText"),
		EducatorLongDisplayText: o.str("EducatorLongDisplayText"),
		DateRangeDisplayText:    o.str("DateRangeDisplayText"),
		IsSpringTerm:            o.boolean("IsSpringTerm"),
		From:                    o.dateOfDateTime("From"),
		To:                      o.dateOfDateTime("To"),
		Next:                    o.integer("Next"),
		SpringTermLinkAvailable: o.boolean("SpringTermLinkAvailable"),
		AutumnTermLinkAvailable: o.boolean("AutumnTermLinkAvailable"),
		HasEvents:               o.boolean("HasEvents"),
		Days:                    list[EducatorTermDay](o, "EducatorEventsDays"),
	}
	return o.err
}

// EducatorTermDay groups the recurring events of one day of the week.
type EducatorTermDay struct {
	// DayOfWeek is the service's day number (1 is Monday).
	DayOfWeek   int
	DayString   string
	EventsCount int
	Events      []EducatorTermEvent
}

func (d *EducatorTermDay) UnmarshalJSON(data []byte) error {
	o, err := readObject("EducatorTermDay", data)
	if err != nil {
		return err
	}
	*d = EducatorTermDay{
		DayOfWeek:   o.integer("Day"),
		DayString:   o.str("DayString"),
		EventsCount: o.integer("DayStudyEventsCount"),
		Events:      list[EducatorTermEvent](o, "DayStudyEvents"),
	}
	return o.err
}

// EducatorTermEvent is a weekly recurring slot; Dates lists when it takes place.
type EducatorTermEvent struct {
	Start                *TimeOfDay
	End                  *TimeOfDay
	Subject              string
	TimeIntervalString   string
	Dates                []string
	EducatorsDisplayText string
	IsCancelled          bool
	KindCode             int
	Educators            []EducatorRef
	Locations            []Location
	ContingentUnits      []ContingentUnit
}

func (e *EducatorTermEvent) UnmarshalJSON(data []byte) error {
	o, err := readObject("EducatorTermEvent", data)
	if err != nil {
		return err
	}
	*e = EducatorTermEvent{
		Start:                o.clock("Start"),
		End:                  o.clock("End"),
		Subject:              o.str("Subject"),
		TimeIntervalString:   o.str("TimeIntervalString"),
		Dates:                o.strings("Dates"),
		EducatorsDisplayText: o.str("EducatorsDisplayText"),
		IsCancelled:          o.boolean("IsCanceled"),
		KindCode:             o.integer("StudyEventsTimeTableKindCode"),
		Educators:            list[EducatorRef](o, "EducatorIds"),
		Locations:            list[Location](o, "EventLocations"),
		ContingentUnits:      list[ContingentUnit](o, "ContingentUnitNames"),
	}
	return o.err
}

// EducatorEvents is an educator's timetable for a date range.
type EducatorEvents struct {
	EducatorID              int
	EducatorDisplayText     string
	EducatorLongDisplayText string

	PreviousWeekMonday *Date
	NextWeekMonday     *Date
	WeekMonday         *Date

	IsPreviousWeekReferenceAvailable bool
	IsNextWeekReferenceAvailable     bool
	IsCurrentWeekReferenceAvailable  bool

	WeekDisplayText string
	Days            []EducatorEventsDay
}

func (e *EducatorEvents) UnmarshalJSON(data []byte) error {
	o, err := readObject("EducatorEvents", data)
	if err != nil {
		return err
	}
	o.require("EducatorMasterId")
	*e = EducatorEvents{
		EducatorID:                       o.integer("EducatorMasterId"),
		EducatorDisplayText:              o.str("EducatorDisplayText"),
		EducatorLongDisplayText:          o.str("EducatorLongDisplayText"),
		PreviousWeekMonday:               o.date("PreviousWeekMonday"),
		NextWeekMonday:                   o.date("NextWeekMonday"),
		WeekMonday:                       o.date("WeekMonday"),
		IsPreviousWeekReferenceAvailable: o.boolean("IsPreviousWeekReferenceAvailable"),
		IsNextWeekReferenceAvailable:     o.boolean("IsNextWeekReferenceAvailable"),
		IsCurrentWeekReferenceAvailable:  o.boolean("IsCurrentWeekReferenceAvailable"),
		WeekDisplayText:                  o.str("WeekDisplayText"),
		Days:                             list[EducatorEventsDay](o, "EducatorEventsDays"),
	}
	return o.err
}

// EducatorEventsDay holds one calendar day of an educator timetable.
type EducatorEventsDay struct {
	// Day is sent as a full timestamp at midnight; only the date is kept.
	Day       *Date
	DayString string
	Events    []EducatorEvent
}

func (d *EducatorEventsDay) UnmarshalJSON(data []byte) error {
	o, err := readObject("EducatorEventsDay", data)
	if err != nil {
		return err
	}
	*d = EducatorEventsDay{
		Day:       o.dateOfDateTime("Day"),
		DayString: o.str("DayString"),
		Events:    list[EducatorEvent](o, "DayStudyEvents"),
	}
	return o.err
}

// EducatorEvent is a single dated event an educator teaches.
type EducatorEvent struct {
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
}

func (e *EducatorEvent) UnmarshalJSON(data []byte) error {
	o, err := readObject("EducatorEvent", data)
	if err != nil {
		return err
	}
	*e = EducatorEvent{
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
	}
	return o.err
}

// SearchEducators finds educators by (part of) their last name
func (c *Client) SearchEducators(query string) ([]Educator, error) {
	var resp EducatorSearch
	if err := c.do(educatorSearchRequest(query), &resp); err != nil {
		return nil, err
	}
	return resp.Educators, nil
}

// FetchEducatorTermEvents retrieves an educator's weekly schedule for the
// current term, or the next one when nextTerm is set
func (c *Client) FetchEducatorTermEvents(educatorID int, nextTerm bool, lessonsType LessonsType) (*EducatorTermEvents, error) {
	var events EducatorTermEvents
	if err := c.do(educatorTermEventsRequest(educatorID, nextTerm, lessonsType), &events); err != nil {
		return nil, err
	}
	return &events, nil
}

// FetchEducatorEvents retrieves an educator's events between from and to
func (c *Client) FetchEducatorEvents(educatorID int, from, to time.Time, lessonsType LessonsType) (*EducatorEvents, error) {
	var events EducatorEvents
	if err := c.do(educatorEventsRequest(educatorID, from, to, lessonsType), &events); err != nil {
		return nil, err
	}
	return &events, nil
}
