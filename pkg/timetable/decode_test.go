package timetable

import (
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", name, err)
	}
	return data
}

func TestDecode_DocumentForms(t *testing.T) {
	raw := `{"Oid": "b4a0c8b2-3f7e-4c1d-9d6f-2a1b3c4d5e6f", "DisplayName1": "Университетская наб., д. 7-9", "matches": 3, "wantingEquipment": "проектор"}`
	want := Address{
		ID:               "b4a0c8b2-3f7e-4c1d-9d6f-2a1b3c4d5e6f",
		DisplayName:      "Университетская наб., д. 7-9",
		Matches:          3,
		WantingEquipment: "проектор",
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		t.Fatalf("failed to prepare parsed document: %v", err)
	}

	docs := map[string]any{
		"string":      raw,
		"bytes":       []byte(raw),
		"raw message": json.RawMessage(raw),
		"parsed map":  parsed,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			got, err := Decode[Address](doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %+v, expected %+v", got, want)
			}
		})
	}
}

func TestDecode_TopLevelList(t *testing.T) {
	raw := `[{"Oid": "a1", "Alias": "AMCP", "Name": "Прикладная математика"}, {"Oid": "a2", "Alias": "PHYS", "Name": "Физика"}]`

	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		t.Fatalf("failed to prepare parsed document: %v", err)
	}

	for _, doc := range []any{raw, parsed} {
		divisions, err := Decode[[]StudyDivision](doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(divisions) != 2 {
			t.Fatalf("expected 2 divisions, got %d", len(divisions))
		}
		if divisions[0].Alias != "AMCP" || divisions[1].Alias != "PHYS" {
			t.Errorf("divisions out of order: %+v", divisions)
		}
	}
}

func TestDecode_MalformedDocument(t *testing.T) {
	docs := []any{
		"not json at all",
		"42",
		`{"Oid": `,
		[]byte(""),
		12,
		nil,
	}

	for _, doc := range docs {
		_, err := Decode[Address](doc)
		if !errors.Is(err, ErrMalformedDocument) {
			t.Errorf("Decode(%#v): expected ErrMalformedDocument, got %v", doc, err)
		}
	}
}

func TestDecode_MissingRequiredField(t *testing.T) {
	for _, raw := range []string{`{"DisplayName1": "Здание"}`, `{"Oid": null}`} {
		_, err := Decode[Address](raw)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("Decode(%s): expected ErrMissingField, got %v", raw, err)
		}

		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("expected a *DecodeError, got %T", err)
		}
		if decodeErr.Type != "Address" || decodeErr.Field != "Oid" {
			t.Errorf("expected Address.Oid, got %s.%s", decodeErr.Type, decodeErr.Field)
		}
	}
}

func TestDecode_MissingFieldInNestedRecord(t *testing.T) {
	raw := `[{"StudyLevelName": "Магистратура", "StudyProgramCombinations": [{"Name": "Физика", "AdmissionYears": [{"YearName": "2018"}]}]}]`

	_, err := Decode[[]StudyLevel](raw)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField from nested admission year, got %v", err)
	}
}

func TestDecode_WrongFieldType(t *testing.T) {
	_, err := Decode[Address](`{"Oid": 5}`)

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected a *DecodeError, got %v", err)
	}
	if errors.Is(err, ErrMissingField) {
		t.Errorf("a wrongly typed value must not be reported as missing")
	}
	if decodeErr.Field != "Oid" {
		t.Errorf("expected field Oid, got %s", decodeErr.Field)
	}
}

func TestDecode_Defaults(t *testing.T) {
	events, err := Decode[GroupEvents](`{"StudentGroupId": 18150}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if events.GroupID != 18150 {
		t.Errorf("expected group id 18150, got %d", events.GroupID)
	}
	if events.Days == nil || len(events.Days) != 0 {
		t.Errorf("expected an empty, non-nil day list, got %#v", events.Days)
	}
	if events.WeekMonday != nil || events.PreviousWeekMonday != nil || events.NextWeekMonday != nil {
		t.Errorf("expected absent dates to stay nil")
	}
	if events.IsPreviousWeekReferenceAvailable || events.IsNextWeekReferenceAvailable || events.IsCurrentWeekReferenceAvailable {
		t.Errorf("expected absent flags to default to false")
	}
	if events.WeekDisplayText != "" {
		t.Errorf("expected empty display text, got %q", events.WeekDisplayText)
	}
}

func TestDecode_Timestamps(t *testing.T) {
	busy, err := Decode[ClassroomBusyness](`{"Oid": "r1", "From": "2019-04-01T10:00:00", "To": "", "IsBusy": true}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := time.Date(2019, time.April, 1, 10, 0, 0, 0, time.UTC)
	if busy.From == nil || !busy.From.Equal(wantFrom) {
		t.Errorf("expected From %v, got %v", wantFrom, busy.From)
	}
	if busy.To != nil {
		t.Errorf("expected an empty timestamp to decode as absent, got %v", busy.To)
	}

	_, err = Decode[ClassroomBusyness](`{"Oid": "r1", "From": "01.04.2019 10:00"}`)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) || decodeErr.Field != "From" {
		t.Errorf("expected a DecodeError on From, got %v", err)
	}
}

func TestDecode_Pairs(t *testing.T) {
	ref, err := Decode[EducatorRef](`{"Item1": 2151, "Item2": "Иванов И. И."}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ID != 2151 || ref.Name != "Иванов И. И." {
		t.Errorf("unexpected educator ref %+v", ref)
	}

	unit, err := Decode[ContingentUnit](`{"Item1": "16.Б10-пу", "Item2": "3 курс"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unit.Groups != "16.Б10-пу" || unit.Courses != "3 курс" {
		t.Errorf("unexpected contingent unit %+v", unit)
	}
}

func TestDecode_GroupEventsFixture(t *testing.T) {
	events, err := Decode[*GroupEvents](readFixture(t, "group_events.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if events.WeekMonday == nil || *events.WeekMonday != (Date{2019, time.April, 1}) {
		t.Errorf("expected week monday 2019-04-01, got %v", events.WeekMonday)
	}
	if len(events.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(events.Days))
	}
	for i, wantDay := range []int{1, 2, 3} {
		if got := events.Days[i].Day.Day(); got != wantDay {
			t.Errorf("day %d: expected April %d, got April %d", i, wantDay, got)
		}
	}

	lecture := events.Days[0].Events[0]
	if lecture.ContingentUnitsDisplayText != "16.Б10-пу" {
		t.Errorf("expected contingent units display text, got %q", lecture.ContingentUnitsDisplayText)
	}
	if lecture.Start == nil || lecture.Start.Hour() != 10 {
		t.Errorf("expected start at 10:00, got %v", lecture.Start)
	}
	if len(lecture.Educators) != 1 || lecture.Educators[0].ID != 2151 {
		t.Errorf("unexpected educators %+v", lecture.Educators)
	}
	if len(lecture.Locations) != 1 {
		t.Fatalf("expected 1 location, got %d", len(lecture.Locations))
	}
	if lat, lon, ok := lecture.Locations[0].Coordinates(); !ok || lat != 59.881 || lon != 29.829 {
		t.Errorf("unexpected coordinates %v %v %v", lat, lon, ok)
	}
	if !lecture.LocationsWereChanged || lecture.ElectiveDisciplinesCount != 1 {
		t.Errorf("flags not decoded: %+v", lecture)
	}

	if !events.Days[1].Events[0].IsCancelled {
		t.Errorf("expected the second day's event to be cancelled")
	}
	if len(events.Days[2].Events) != 0 {
		t.Errorf("expected no events on the third day")
	}
}

func TestDecode_EducatorTermEventsFixture(t *testing.T) {
	events, err := Decode[EducatorTermEvents](readFixture(t, "educator_term_events.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if events.From == nil || *events.From != (Date{2019, time.February, 1}) {
		t.Errorf("expected From 2019-02-01, got %v", events.From)
	}
	if events.To == nil || *events.To != (Date{2019, time.June, 30}) {
		t.Errorf("expected To 2019-06-30, got %v", events.To)
	}
	if events.Next != 1 || !events.IsSpringTerm {
		t.Errorf("unexpected term flags: %+v", events)
	}

	day := events.Days[0]
	if day.DayOfWeek != 1 || day.EventsCount != 1 {
		t.Errorf("unexpected day header %+v", day)
	}
	event := day.Events[0]
	if event.Start == nil || *event.Start != (TimeOfDay{10, 0, 0}) {
		t.Errorf("expected start 10:00:00, got %v", event.Start)
	}
	if event.End == nil || event.End.String() != "11:35:00" {
		t.Errorf("expected end 11:35:00, got %v", event.End)
	}
	if !reflect.DeepEqual(event.Dates, []string{"04.02", "11.02", "18.02"}) {
		t.Errorf("unexpected dates %v", event.Dates)
	}
	if len(event.ContingentUnits) != 1 || event.ContingentUnits[0].Courses != "3 курс" {
		t.Errorf("unexpected contingent units %+v", event.ContingentUnits)
	}
}

func TestDecode_Idempotent(t *testing.T) {
	data := readFixture(t, "extracur_events.json")

	first, err := Decode[ExtracurEvents](data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Decode[ExtracurEvents](data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("decoding the same document twice gave different records")
	}

	first.Groupings[0].Days[0].Events[0].Subject = "changed"
	first.Groupings[0].Days[0].Events[0].Educators[0].Name = "changed"
	*first.Groupings[0].Days[0].Events[0].Start = time.Time{}

	event := second.Groupings[0].Days[0].Events[0]
	if event.Subject != "Открытая лекция" || event.Educators[0].Name != "Сидоров С. С." {
		t.Errorf("records decoded from the same document share state: %+v", event)
	}
	if event.Start.IsZero() {
		t.Errorf("records decoded from the same document share a start time")
	}
}
