package timetable

import (
	"net/http"
	"reflect"
	"strings"
	"testing"
)

func TestCatalog(t *testing.T) {
	for m := MethodAddresses; m <= MethodEducatorEvents; m++ {
		if m.Verb() != http.MethodGet {
			t.Errorf("%s: expected GET, got %s", m, m.Verb())
		}
		if !strings.HasPrefix(m.Path(), "/") {
			t.Errorf("%s: path %q must be relative to the API root", m, m.Path())
		}
		if m.Name() == "" {
			t.Errorf("method %d has no operation name", int(m))
		}
	}
}

func TestMethod_Placeholders(t *testing.T) {
	tests := []struct {
		method Method
		want   []string
	}{
		{MethodAddresses, []string{}},
		{MethodClassroomBusyness, []string{"classroomId", "startStamp", "endStamp"}},
		{MethodProgramGroups, []string{"programId"}},
		{MethodEducatorEvents, []string{"educatorId", "fromDate", "toDate"}},
	}

	for _, tt := range tests {
		if got := tt.method.Placeholders(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.method, tt.want, got)
		}
	}
}

func TestMethod_ProgramGroupsPath(t *testing.T) {
	r := programGroupsRequest(11645)
	if r.path != "/progams/11645/groups" {
		t.Errorf("unexpected program groups path %s", r.path)
	}
}

func TestMethod_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for an unknown method")
		}
	}()
	_ = Method(99).Name()
}

func TestMethod_MissingPlaceholderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a missing placeholder value")
		}
	}()
	MethodClassrooms.expand(map[string]string{})
}
