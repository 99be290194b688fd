package cmd

import (
	"testing"
	"time"

	"github.com/EeOneDown/spbuTimetableAPI/pkg/timetable"

	"github.com/spf13/cobra"
)

func TestParseGUID(t *testing.T) {
	if _, err := parseGUID("address", "0f36f2c3-b8f3-4b3c-94e0-3a8f1f35e6d1"); err != nil {
		t.Errorf("expected a valid GUID, got %v", err)
	}
	if _, err := parseGUID("address", "405"); err == nil {
		t.Errorf("expected an error for a non-GUID id")
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("group", "18150"); err != nil || id != 18150 {
		t.Errorf("expected 18150, got %d, %v", id, err)
	}
	for _, bad := range []string{"", "0", "-3", "16.Б10"} {
		if _, err := parseID("group", bad); err == nil {
			t.Errorf("expected an error for %q", bad)
		}
	}
}

func TestParseStamp(t *testing.T) {
	got, err := parseStamp("start", "2019-04-01 10:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2019, time.April, 1, 10, 5, 0, 0, time.UTC)) {
		t.Errorf("unexpected stamp %v", got)
	}
	if _, err := parseStamp("start", "01.04.2019"); err == nil {
		t.Errorf("expected an error for a wrong layout")
	}
}

func TestParseLessons(t *testing.T) {
	if lt, err := parseLessons("", timetable.LessonsPrimary); err != nil || lt != timetable.LessonsPrimary {
		t.Errorf("expected the fallback, got %s, %v", lt, err)
	}
	if lt, err := parseLessons("Final", timetable.LessonsUnknown); err != nil || lt != timetable.LessonsFinal {
		t.Errorf("expected Final, got %s, %v", lt, err)
	}
	if _, err := parseLessons("Lectures", timetable.LessonsUnknown); err == nil {
		t.Errorf("expected an error for an unknown lessons type")
	}
}

func TestClassroomFilter(t *testing.T) {
	capacity := 30
	f, err := classroomFilter("theater", &capacity, []string{"projector"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Seating != timetable.SeatingTheater || f.Capacity == nil || *f.Capacity != 30 || len(f.Equipment) != 1 {
		t.Errorf("unexpected filter %+v", f)
	}

	empty, err := classroomFilter("", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty.Capacity != nil || empty.Equipment != nil {
		t.Errorf("expected unset flags to stay unset, got %+v", empty)
	}

	if _, err := classroomFilter("sofa", nil, nil); err == nil {
		t.Errorf("expected an error for an unknown seating type")
	}

	negative := -1
	if _, err := classroomFilter("", &negative, nil); err == nil {
		t.Errorf("expected an error for a negative capacity")
	}
}

func TestFilterFromFlags_Capacity(t *testing.T) {
	tests := []struct {
		args []string
		want *int
	}{
		{nil, nil},
		{[]string{"--capacity", "0"}, intPtr(0)},
		{[]string{"--capacity=25"}, intPtr(25)},
	}

	for _, tt := range tests {
		cmd := &cobra.Command{Use: "addresses"}
		addFilterFlags(cmd)
		if err := cmd.Flags().Parse(tt.args); err != nil {
			t.Fatalf("%v: unexpected parse error: %v", tt.args, err)
		}

		f, err := filterFromFlags(cmd)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.args, err)
		}
		switch {
		case tt.want == nil && f.Capacity != nil:
			t.Errorf("%v: expected no capacity, got %d", tt.args, *f.Capacity)
		case tt.want != nil && (f.Capacity == nil || *f.Capacity != *tt.want):
			t.Errorf("%v: expected capacity %d, got %v", tt.args, *tt.want, f.Capacity)
		}
	}
}

func intPtr(n int) *int {
	return &n
}

func TestWeekRange(t *testing.T) {
	from := time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC)

	gotFrom, gotTo := weekRange(from, time.Time{})
	if !gotFrom.Equal(from) || !gotTo.Equal(from.AddDate(0, 0, 6)) {
		t.Errorf("unexpected range %v - %v", gotFrom, gotTo)
	}

	gotFrom, _ = weekRange(time.Time{}, time.Time{})
	if gotFrom.Weekday() != time.Monday {
		t.Errorf("expected the range to start on a Monday, got %v", gotFrom.Weekday())
	}
}
