package timetable

// EducatorRef is an educator id/name pair, sent upstream as {"Item1": id, "Item2": name}.
type EducatorRef struct {
	ID   int
	Name string
}

func (e *EducatorRef) UnmarshalJSON(data []byte) error {
	*e = EducatorRef{}
	return readPair("EducatorRef", data, &e.ID, &e.Name)
}

// ContingentUnit names the groups and the course an event is held for,
// sent upstream as {"Item1": groups, "Item2": courses}.
type ContingentUnit struct {
	Groups  string
	Courses string
}

func (u *ContingentUnit) UnmarshalJSON(data []byte) error {
	*u = ContingentUnit{}
	return readPair("ContingentUnit", data, &u.Groups, &u.Courses)
}

// Location is a place an event is held at, with the educators teaching there.
type Location struct {
	IsEmpty                  bool
	DisplayName              string
	HasGeographicCoordinates bool
	Latitude                 float64
	Longitude                float64
	LatitudeValue            string
	LongitudeValue           string
	EducatorsDisplayText     string
	HasEducators             bool
	Educators                []EducatorRef
}

func (l *Location) UnmarshalJSON(data []byte) error {
	o, err := readObject("Location", data)
	if err != nil {
		return err
	}
	*l = Location{
		IsEmpty:                  o.boolean("IsEmpty"),
		DisplayName:              o.str("DisplayName"),
		HasGeographicCoordinates: o.boolean("HasGeographicCoordinates"),
		Latitude:                 o.float("Latitude"),
		Longitude:                o.float("Longitude"),
		LatitudeValue:            o.str("LatitudeValue"),
		LongitudeValue:           o.str("LongitudeValue"),
		EducatorsDisplayText:     o.str("EducatorsDisplayText"),
		HasEducators:             o.boolean("HasEducators"),
		Educators:                list[EducatorRef](o, "EducatorIds"),
	}
	return o.err
}

// Coordinates returns the geographic position when the service provides one.
func (l Location) Coordinates() (lat, lon float64, ok bool) {
	if !l.HasGeographicCoordinates {
		return 0, 0, false
	}
	return l.Latitude, l.Longitude, true
}
