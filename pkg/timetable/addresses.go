package timetable

// Address is a university building that has classrooms matching a filter.
type Address struct {
	ID          string
	DisplayName string
	// Matches is the number of classrooms at the address that fit the filter.
	Matches int
	// WantingEquipment lists requested equipment the address lacks.
	WantingEquipment string
}

func (a *Address) UnmarshalJSON(data []byte) error {
	o, err := readObject("Address", data)
	if err != nil {
		return err
	}
	o.require("Oid")
	*a = Address{
		ID:               o.str("Oid"),
		DisplayName:      o.str("DisplayName1"),
		Matches:          o.integer("matches"),
		WantingEquipment: o.str("wantingEquipment"),
	}
	return o.err
}

// Classroom is a single room at an address.
type Classroom struct {
	ID               string
	DisplayName      string
	SeatingType      SeatingType
	Capacity         int
	AdditionalInfo   string
	WantingEquipment string
}

func (c *Classroom) UnmarshalJSON(data []byte) error {
	o, err := readObject("Classroom", data)
	if err != nil {
		return err
	}
	o.require("Oid")
	*c = Classroom{
		ID:               o.str("Oid"),
		DisplayName:      o.str("DisplayName1"),
		SeatingType:      SeatingType(o.str("SeatingType")),
		Capacity:         o.integer("Capacity"),
		AdditionalInfo:   o.str("AdditionalInfo"),
		WantingEquipment: o.str("wantingEquipment"),
	}
	return o.err
}

// FetchAddresses retrieves the addresses with classrooms matching the filter
func (c *Client) FetchAddresses(filter ClassroomFilter) ([]Address, error) {
	var addresses []Address
	if err := c.do(addressesRequest(filter), &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// FetchClassrooms retrieves the classrooms of an address (a GUID) matching the filter
func (c *Client) FetchClassrooms(addressID string, filter ClassroomFilter) ([]Classroom, error) {
	var classrooms []Classroom
	if err := c.do(classroomsRequest(addressID, filter), &classrooms); err != nil {
		return nil, err
	}
	return classrooms, nil
}
