package timetable

// Group is a student group of a study program.
type Group struct {
	ID        int
	Name      string
	StudyForm string
	Profiles  string
	// DivisionAlias is empty when the service omits it.
	DivisionAlias string
}

func (g *Group) UnmarshalJSON(data []byte) error {
	o, err := readObject("Group", data)
	if err != nil {
		return err
	}
	o.require("StudentGroupId")
	*g = Group{
		ID:            o.integer("StudentGroupId"),
		Name:          o.str("StudentGroupName"),
		StudyForm:     o.str("StudentGroupStudyForm"),
		Profiles:      o.str("StudentGroupProfiles"),
		DivisionAlias: o.str("PublicDivisionAlias"),
	}
	return o.err
}

// ProgramGroups is the envelope the program groups resource answers with.
type ProgramGroups struct {
	ProgramID int
	Groups    []Group
}

func (p *ProgramGroups) UnmarshalJSON(data []byte) error {
	o, err := readObject("ProgramGroups", data)
	if err != nil {
		return err
	}
	*p = ProgramGroups{
		ProgramID: o.integer("Id"),
		Groups:    list[Group](o, "Groups"),
	}
	return o.err
}

// FetchProgramGroups retrieves the current student groups of a study program
func (c *Client) FetchProgramGroups(programID int) ([]Group, error) {
	var resp ProgramGroups
	if err := c.do(programGroupsRequest(programID), &resp); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}
