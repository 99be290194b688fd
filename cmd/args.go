package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"

	"github.com/google/uuid"
)

const (
	dateFlagLayout  = "2006-01-02"
	stampFlagLayout = "2006-01-02 15:04"
)

// parseGUID checks that an address or classroom id is a GUID before it is sent.
func parseGUID(kind, s string) (string, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("%s id %q is not a GUID: %w", kind, s, err)
	}
	return s, nil
}

func parseID(kind, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s id must be a positive number, got %q", kind, s)
	}
	return id, nil
}

// parseDate accepts YYYY-MM-DD; an empty string yields the zero time.
func parseDate(flag, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFlagLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must look like 2019-04-01: %w", flag, err)
	}
	return t, nil
}

// parseStamp accepts "YYYY-MM-DD HH:MM" in the service's wall-clock time.
func parseStamp(flag, s string) (time.Time, error) {
	t, err := time.Parse(stampFlagLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must look like \"2019-04-01 10:00\": %w", flag, err)
	}
	return t, nil
}

func parseLessons(s string, fallback timetable.LessonsType) (timetable.LessonsType, error) {
	if s == "" {
		return fallback, nil
	}
	lt, ok := timetable.ParseLessonsType(s)
	if !ok {
		return "", fmt.Errorf("unknown lessons type %q (expected one of %s)", s, joinLessons())
	}
	return lt, nil
}

func joinLessons() string {
	names := make([]string, 0, len(timetable.LessonsTypes))
	for _, lt := range timetable.LessonsTypes {
		names = append(names, string(lt))
	}
	return strings.Join(names, ", ")
}

// classroomFilter reads the shared --seating, --capacity and --equipment flags.
// capacity is nil when --capacity was not given, so an explicit 0 is still sent.
func classroomFilter(seating string, capacity *int, equipment []string) (timetable.ClassroomFilter, error) {
	var f timetable.ClassroomFilter
	if seating != "" {
		st, ok := timetable.ParseSeatingType(seating)
		if !ok {
			return f, fmt.Errorf("unknown seating type %q (expected theater, amphitheater or roundtable)", seating)
		}
		f.Seating = st
	}
	if capacity != nil {
		if *capacity < 0 {
			return f, fmt.Errorf("--capacity must not be negative, got %d", *capacity)
		}
		f.Capacity = capacity
	}
	if len(equipment) > 0 {
		f.Equipment = equipment
	}
	return f, nil
}
