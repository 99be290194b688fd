package timetable

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
)

// Method identifies one remote operation of the timetable service.
type Method int

const (
	MethodAddresses Method = iota
	MethodClassrooms
	MethodClassroomBusyness
	MethodClassroomEvents
	MethodStudyDivisions
	MethodProgramLevels
	MethodProgramGroups
	MethodGroupEvents
	MethodGroupEventsFrom
	MethodGroupEventsRange
	MethodExtracurDivisions
	MethodExtracurEvents
	MethodEducatorSearch
	MethodEducatorTermEvents
	MethodEducatorEvents
)

type methodEntry struct {
	name string
	verb string
	path string
}

// catalog maps every method to its operation name and path template.
// The upstream service spells the program groups resource "progams".
var catalog = map[Method]methodEntry{
	MethodAddresses:          {"Get addresses", http.MethodGet, "/addresses"},
	MethodClassrooms:         {"Get classrooms", http.MethodGet, "/addresses/{addressId}/classrooms"},
	MethodClassroomBusyness:  {"Is classroom busy", http.MethodGet, "/classrooms/{classroomId}/isbusy/{startStamp}/{endStamp}"},
	MethodClassroomEvents:    {"Get classroom events", http.MethodGet, "/classrooms/{classroomId}/events/{fromStamp}/{toStamp}"},
	MethodStudyDivisions:     {"Get study divisions", http.MethodGet, "/study/divisions"},
	MethodProgramLevels:      {"Get program levels", http.MethodGet, "/study/divisions/{divisionAlias}/programs/levels"},
	MethodProgramGroups:      {"Get groups", http.MethodGet, "/progams/{programId}/groups"},
	MethodGroupEvents:        {"Get group events", http.MethodGet, "/groups/{groupId}/events"},
	MethodGroupEventsFrom:    {"Get group events", http.MethodGet, "/groups/{groupId}/events/{fromDate}"},
	MethodGroupEventsRange:   {"Get group events", http.MethodGet, "/groups/{groupId}/events/{fromDate}/{toDate}"},
	MethodExtracurDivisions:  {"Get extracur divisions", http.MethodGet, "/extracur/divisions"},
	MethodExtracurEvents:     {"Get extracur events", http.MethodGet, "/extracur/divisions/{divisionAlias}/events"},
	MethodEducatorSearch:     {"Search educator", http.MethodGet, "/educators/search/{query}"},
	MethodEducatorTermEvents: {"Get educator term events", http.MethodGet, "/educators/{educatorId}/events"},
	MethodEducatorEvents:     {"Get educator events", http.MethodGet, "/educators/{educatorId}/events/{fromDate}/{toDate}"},
}

var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// entry panics for identifiers outside the catalog.
func (m Method) entry() methodEntry {
	s, ok := catalog[m]
	if !ok {
		panic(fmt.Sprintf("timetable: unknown method %d", int(m)))
	}
	return s
}

// Name is the logical operation name reported in API errors.
func (m Method) Name() string {
	return m.entry().name
}

// Verb is the HTTP verb; every operation is a GET.
func (m Method) Verb() string {
	return m.entry().verb
}

// Path is the path template with {placeholder} slots.
func (m Method) Path() string {
	return m.entry().path
}

// Placeholders lists the slot names of the path template in order.
func (m Method) Placeholders() []string {
	matches := placeholderRe.FindAllStringSubmatch(m.Path(), -1)
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, match[1])
	}
	return names
}

func (m Method) String() string {
	return m.Name()
}

// expand substitutes every placeholder with its path-escaped value.
// A placeholder without a value panics.
func (m Method) expand(values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(m.Path(), func(slot string) string {
		name := slot[1 : len(slot)-1]
		v, ok := values[name]
		if !ok {
			panic(fmt.Sprintf("timetable: %s: no value for placeholder %q", m.Name(), name))
		}
		return url.PathEscape(v)
	})
}
