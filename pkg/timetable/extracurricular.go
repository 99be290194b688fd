package timetable

import "time"

// ExtracurDivision is a division publishing extracurricular events.
type ExtracurDivision struct {
	Alias string
	Name  string
}

func (d *ExtracurDivision) UnmarshalJSON(data []byte) error {
	o, err := readObject("ExtracurDivision", data)
	if err != nil {
		return err
	}
	o.require("Alias")
	*d = ExtracurDivision{
		Alias: o.str("Alias"),
		Name:  o.str("Name"),
	}
	return o.err
}

// ExtracurEvents is a division's extracurricular events for one month.
type ExtracurEvents struct {
	Alias                  string
	Title                  string
	ChosenMonthDisplayText string

	PreviousMonthDisplayText string
	PreviousMonthDate        *Date
	NextMonthDisplayText     string
	NextMonthDate            *Date

	HasEventsToShow                  bool
	IsCurrentMonthReferenceAvailable bool
	ShowGroupingCaptions             bool

	Groupings []ExtracurGrouping
}

func (e *ExtracurEvents) UnmarshalJSON(data []byte) error {
	o, err := readObject("ExtracurEvents", data)
	if err != nil {
		return err
	}
	o.require("Alias")
	*e = ExtracurEvents{
		Alias:                            o.str("Alias"),
		Title:                            o.str("Title"),
		ChosenMonthDisplayText:           o.str("ChosenMonthDisplayText"),
		PreviousMonthDisplayText:         o.str("PreviousMonthDisplayText"),
		PreviousMonthDate:                o.date("PreviousMonthDate"),
		NextMonthDisplayText:             o.str("NextMonthDisplayText"),
		NextMonthDate:                    o.date("NextMonthDate"),
		HasEventsToShow:                  o.boolean("HasEventsToShow"),
		IsCurrentMonthReferenceAvailable: o.boolean("IsCurrentMonthReferenceAvailable"),
		ShowGroupingCaptions:             o.boolean("ShowGroupingCaptions"),
		Groupings:                        list[ExtracurGrouping](o, "EventGroupings"),
	}
	return o.err
}

// ExtracurGrouping is a captioned block of days.
type ExtracurGrouping struct {
	Caption string
	Days    []ExtracurDay
}

func (g *ExtracurGrouping) UnmarshalJSON(data []byte) error {
	o, err := readObject("ExtracurGrouping", data)
	if err != nil {
		return err
	}
	*g = ExtracurGrouping{
		Caption: o.str("Caption"),
		Days:    list[ExtracurDay](o, "Days"),
	}
	return o.err
}

// ExtracurDay holds one calendar day of extracurricular events.
type ExtracurDay struct {
	Day       *time.Time
	DayString string
	Events    []ExtracurEvent
}

func (d *ExtracurDay) UnmarshalJSON(data []byte) error {
	o, err := readObject("ExtracurDay", data)
	if err != nil {
		return err
	}
	*d = ExtracurDay{
		Day:       o.dateTime("Day"),
		DayString: o.str("DayString"),
		Events:    list[ExtracurEvent](o, "DayEvents"),
	}
	return o.err
}

// ExtracurEvent is a single extracurricular event.
type ExtracurEvent struct {
	ID      int
	Start   *time.Time
	End     *time.Time
	Subject string

	TimeIntervalString               string
	DateWithTimeIntervalString       string
	DisplayDateAndTimeIntervalString string
	LocationsDisplayText             string
	EducatorsDisplayText             string
	ResponsiblePersonContacts        string
	ImageWebPath                     string

	HasEducators     bool
	IsCancelled      bool
	AllDay           bool
	WithinTheSameDay bool
	IsStudy          bool
	HasAgenda        bool
	IsPhotoAvailable bool

	// Location is nil when the service sends none.
	Location  *Location
	Educators []EducatorRef
}

func (e *ExtracurEvent) UnmarshalJSON(data []byte) error {
	o, err := readObject("ExtracurEvent", data)
	if err != nil {
		return err
	}
	*e = ExtracurEvent{
		ID:                               o.integer("Id"),
		Start:                            o.dateTime("Start"),
		End:                              o.dateTime("End"),
		Subject:                          o.str("Subject"),
		TimeIntervalString:               o.str("TimeIntervalString"),
		DateWithTimeIntervalString:       o.str("DateWithTimeIntervalString"),
		DisplayDateAndTimeIntervalString: o.str("DisplayDateAndTimeIntervalString"),
		LocationsDisplayText:             o.str("LocationsDisplayText"),
		EducatorsDisplayText:             o.str("EducatorsDisplayText"),
		ResponsiblePersonContacts:        o.str("ResponsiblePersonContacts"),
		ImageWebPath:                     o.str("ImageWebPath"),
		HasEducators:                     o.boolean("HasEducators"),
		IsCancelled:                      o.boolean("IsCanceled"),
		AllDay:                           o.boolean("AllDay"),
		WithinTheSameDay:                 o.boolean("WithinTheSameDay"),
		IsStudy:                          o.boolean("IsStudy"),
		HasAgenda:                        o.boolean("HasAgenda"),
		IsPhotoAvailable:                 o.boolean("IsPhotoAvailable"),
		Location:                         nested[Location](o, "Location"),
		Educators:                        list[EducatorRef](o, "EducatorIds"),
	}
	return o.err
}

// FetchExtracurDivisions retrieves the divisions that publish extracurricular events
func (c *Client) FetchExtracurDivisions() ([]ExtracurDivision, error) {
	var divisions []ExtracurDivision
	if err := c.do(newRequest(MethodExtracurDivisions, nil, nil), &divisions); err != nil {
		return nil, err
	}
	return divisions, nil
}

// FetchExtracurEvents retrieves a division's extracurricular events, starting
// from the given date when it is not zero
func (c *Client) FetchExtracurEvents(alias string, from time.Time) (*ExtracurEvents, error) {
	var events ExtracurEvents
	if err := c.do(extracurEventsRequest(alias, from), &events); err != nil {
		return nil, err
	}
	return &events, nil
}
