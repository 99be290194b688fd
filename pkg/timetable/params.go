package timetable

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SeatingType is the classroom seating arrangement filter.
type SeatingType string

const (
	SeatingTheater      SeatingType = "theater"
	SeatingAmphitheater SeatingType = "amphitheater"
	SeatingRoundtable   SeatingType = "roundtable"
)

// SeatingTypes lists the values the service recognises.
var SeatingTypes = []SeatingType{SeatingTheater, SeatingAmphitheater, SeatingRoundtable}

// Valid reports whether s is one of SeatingTypes.
func (s SeatingType) Valid() bool {
	for _, v := range SeatingTypes {
		if s == v {
			return true
		}
	}
	return false
}

// ParseSeatingType maps a raw string onto the closed set. ok is false for
// anything unrecognised, which callers treat as "no filter".
func ParseSeatingType(s string) (SeatingType, bool) {
	st := SeatingType(s)
	return st, st.Valid()
}

// LessonsType selects which kind of study events a timetable query returns.
type LessonsType string

const (
	LessonsAll         LessonsType = "All"
	LessonsPrimary     LessonsType = "Primary"
	LessonsAttestation LessonsType = "Attestation"
	LessonsFinal       LessonsType = "Final"
	LessonsUnknown     LessonsType = "Unknown"
)

// LessonsTypes lists the values the service recognises.
var LessonsTypes = []LessonsType{LessonsAll, LessonsPrimary, LessonsAttestation, LessonsFinal, LessonsUnknown}

// Valid reports whether l is one of LessonsTypes.
func (l LessonsType) Valid() bool {
	for _, v := range LessonsTypes {
		if l == v {
			return true
		}
	}
	return false
}

// ParseLessonsType maps a raw string onto the closed set.
func ParseLessonsType(s string) (LessonsType, bool) {
	lt := LessonsType(s)
	return lt, lt.Valid()
}

// ClassroomFilter narrows address and classroom listings. Zero fields are not sent.
type ClassroomFilter struct {
	// Seating is dropped silently when it is not a recognised SeatingType.
	Seating SeatingType
	// Capacity is the minimal number of seats.
	Capacity *int
	// Equipment is sent as a comma-separated list when non-nil.
	Equipment []string
}

func (f ClassroomFilter) query() url.Values {
	q := url.Values{}
	if f.Seating.Valid() {
		q.Set("seating", string(f.Seating))
	}
	if f.Capacity != nil {
		q.Set("capacity", strconv.Itoa(*f.Capacity))
	}
	if f.Equipment != nil {
		q.Set("equipment", strings.Join(f.Equipment, ","))
	}
	return q
}

// EventsOptions selects the window of a group timetable query.
type EventsOptions struct {
	// From and To bound the window; To is only used together with From.
	// Both zero means the current week.
	From time.Time
	To   time.Time
	// LessonsType defaults to LessonsUnknown.
	LessonsType LessonsType
}

// lessonsQuery builds the timetable filter sent with every group and educator events call.
func lessonsQuery(lt LessonsType) url.Values {
	q := url.Values{}
	if lt == "" {
		lt = LessonsUnknown
	}
	if lt.Valid() {
		q.Set("timetable", string(lt))
	}
	return q
}

func formatStamp(t time.Time) string {
	return t.Format(stampLayout)
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// request is a fully built call: method, substituted path and query.
type request struct {
	method Method
	path   string
	query  url.Values
}

func newRequest(m Method, values map[string]string, query url.Values) request {
	if query == nil {
		query = url.Values{}
	}
	return request{method: m, path: m.expand(values), query: query}
}

func addressesRequest(f ClassroomFilter) request {
	return newRequest(MethodAddresses, nil, f.query())
}

func classroomsRequest(addressID string, f ClassroomFilter) request {
	return newRequest(MethodClassrooms, map[string]string{"addressId": addressID}, f.query())
}

func classroomBusynessRequest(classroomID string, start, end time.Time) request {
	return newRequest(MethodClassroomBusyness, map[string]string{
		"classroomId": classroomID,
		"startStamp":  formatStamp(start),
		"endStamp":    formatStamp(end),
	}, nil)
}

func classroomEventsRequest(classroomID string, from, to time.Time) request {
	return newRequest(MethodClassroomEvents, map[string]string{
		"classroomId": classroomID,
		"fromStamp":   formatStamp(from),
		"toStamp":     formatStamp(to),
	}, nil)
}

func programLevelsRequest(alias string) request {
	return newRequest(MethodProgramLevels, map[string]string{"divisionAlias": alias}, nil)
}

func programGroupsRequest(programID int) request {
	return newRequest(MethodProgramGroups, map[string]string{"programId": strconv.Itoa(programID)}, nil)
}

// groupEventsRequest picks the catalog entry by which dates were given.
func groupEventsRequest(groupID int, opts EventsOptions) request {
	values := map[string]string{"groupId": strconv.Itoa(groupID)}
	method := MethodGroupEvents

	switch {
	case !opts.From.IsZero() && !opts.To.IsZero():
		method = MethodGroupEventsRange
		values["fromDate"] = formatDate(opts.From)
		values["toDate"] = formatDate(opts.To)
	case !opts.From.IsZero():
		method = MethodGroupEventsFrom
		values["fromDate"] = formatDate(opts.From)
	}

	return newRequest(method, values, lessonsQuery(opts.LessonsType))
}

func extracurEventsRequest(alias string, from time.Time) request {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("fromDate", formatDate(from))
	}
	return newRequest(MethodExtracurEvents, map[string]string{"divisionAlias": alias}, q)
}

func educatorSearchRequest(query string) request {
	return newRequest(MethodEducatorSearch, map[string]string{"query": query}, nil)
}

func educatorTermEventsRequest(educatorID int, nextTerm bool, lt LessonsType) request {
	q := lessonsQuery(lt)
	showNextTerm := "0"
	if nextTerm {
		showNextTerm = "1"
	}
	q.Set("showNextTerm", showNextTerm)
	return newRequest(MethodEducatorTermEvents, map[string]string{"educatorId": strconv.Itoa(educatorID)}, q)
}

func educatorEventsRequest(educatorID int, from, to time.Time, lt LessonsType) request {
	return newRequest(MethodEducatorEvents, map[string]string{
		"educatorId": strconv.Itoa(educatorID),
		"fromDate":   formatDate(from),
		"toDate":     formatDate(to),
	}, lessonsQuery(lt))
}
