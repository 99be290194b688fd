package timetable

// StudyDivision is a faculty or institute offering study programs.
type StudyDivision struct {
	ID    string
	Alias string
	Name  string
}

func (d *StudyDivision) UnmarshalJSON(data []byte) error {
	o, err := readObject("StudyDivision", data)
	if err != nil {
		return err
	}
	o.require("Alias")
	*d = StudyDivision{
		ID:    o.str("Oid"),
		Alias: o.str("Alias"),
		Name:  o.str("Name"),
	}
	return o.err
}

// StudyLevel groups a division's programs by degree level (bachelor, master, ...).
type StudyLevel struct {
	Name         string
	EnglishName  string
	HasSixthYear bool
	Combinations []ProgramCombination
}

func (l *StudyLevel) UnmarshalJSON(data []byte) error {
	o, err := readObject("StudyLevel", data)
	if err != nil {
		return err
	}
	*l = StudyLevel{
		Name:         o.str("StudyLevelName"),
		EnglishName:  o.str("StudyLevelNameEnglish"),
		HasSixthYear: o.boolean("HasCourse6"),
		Combinations: list[ProgramCombination](o, "StudyProgramCombinations"),
	}
	return o.err
}

// ProgramCombination is one study program with its admission years.
type ProgramCombination struct {
	Name           string
	EnglishName    string
	AdmissionYears []AdmissionYear
}

func (p *ProgramCombination) UnmarshalJSON(data []byte) error {
	o, err := readObject("ProgramCombination", data)
	if err != nil {
		return err
	}
	*p = ProgramCombination{
		Name:           o.str("Name"),
		EnglishName:    o.str("NameEnglish"),
		AdmissionYears: list[AdmissionYear](o, "AdmissionYears"),
	}
	return o.err
}

// AdmissionYear identifies the program instance whose groups can be listed.
type AdmissionYear struct {
	ProgramID     int
	YearName      string
	YearNumber    int
	IsEmpty       bool
	DivisionAlias string
}

func (y *AdmissionYear) UnmarshalJSON(data []byte) error {
	o, err := readObject("AdmissionYear", data)
	if err != nil {
		return err
	}
	o.require("StudyProgramId")
	*y = AdmissionYear{
		ProgramID:     o.integer("StudyProgramId"),
		YearName:      o.str("YearName"),
		YearNumber:    o.integer("YearNumber"),
		IsEmpty:       o.boolean("IsEmpty"),
		DivisionAlias: o.str("PublicDivisionAlias"),
	}
	return o.err
}

// FetchStudyDivisions retrieves all study divisions
func (c *Client) FetchStudyDivisions() ([]StudyDivision, error) {
	var divisions []StudyDivision
	if err := c.do(newRequest(MethodStudyDivisions, nil, nil), &divisions); err != nil {
		return nil, err
	}
	return divisions, nil
}

// FetchProgramLevels retrieves the study levels and programs of a division alias
func (c *Client) FetchProgramLevels(alias string) ([]StudyLevel, error) {
	var levels []StudyLevel
	if err := c.do(programLevelsRequest(alias), &levels); err != nil {
		return nil, err
	}
	return levels, nil
}
