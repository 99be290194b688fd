package timetable

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// newMockClient points baseURL at a test server answering every request with
// status and body. inspect, when set, sees each incoming request.
func newMockClient(t *testing.T, status int, body string, inspect func(r *http.Request), opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	originalBaseURL := baseURL
	baseURL = server.URL
	t.Cleanup(func() { baseURL = originalBaseURL })

	return NewClient(opts...)
}

func TestClient_APIError(t *testing.T) {
	client := newMockClient(t, http.StatusNotFound, "no such id", nil)

	classrooms, err := client.FetchClassrooms("0f36f2c3-b8f3-4b3c-94e0-3a8f1f35e6d1", ClassroomFilter{})
	if classrooms != nil {
		t.Errorf("expected no classrooms on error, got %v", classrooms)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Operation != "Get classrooms" {
		t.Errorf("expected operation Get classrooms, got %q", apiErr.Operation)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Body != "no such id" {
		t.Errorf("unexpected error fields %+v", apiErr)
	}
	if apiErr.Response == nil {
		t.Errorf("expected the raw response to be attached")
	}

	want := "A request to the SPbU Timetable API was unsuccessful. The server returned HTTP 404 Not Found. Response body:\n[no such id]"
	if err.Error() != want {
		t.Errorf("unexpected message:\n%s\nexpected:\n%s", err.Error(), want)
	}
}

func TestClient_ServerErrorKeepsBody(t *testing.T) {
	client := newMockClient(t, http.StatusInternalServerError, `{"Message":"An error has occurred."}`, nil)

	_, err := client.FetchStudyDivisions()

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Operation != "Get study divisions" || apiErr.Reason != "Internal Server Error" {
		t.Errorf("unexpected error fields %+v", apiErr)
	}
}

func TestClient_TransportErrorIsNotWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := server.URL
	server.Close()

	client := NewClient(WithBaseURL(closedURL))
	_, err := client.FetchAddresses(ClassroomFilter{})
	if err == nil {
		t.Fatalf("expected an error from a closed server")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport errors must not become APIError")
	}
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		t.Errorf("expected the net/http *url.Error, got %T", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	if _, err := client.FetchExtracurDivisions(); err == nil {
		t.Fatalf("expected a timeout error")
	}
}

func TestTimeoutFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
		warns bool
	}{
		{"12", 12 * time.Second, false},
		{" 3 ", 3 * time.Second, false},
		{"0", 5 * time.Second, true},
		{"-4", 5 * time.Second, true},
		{"soon", 5 * time.Second, true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		t.Setenv(timeoutEnv, tt.value)
		if got := timeoutFromEnv(zerolog.New(&buf)); got != tt.want {
			t.Errorf("%s=%q: expected %v, got %v", timeoutEnv, tt.value, tt.want, got)
		}
		warned := strings.Contains(buf.String(), `"level":"warn"`)
		if warned != tt.warns {
			t.Errorf("%s=%q: expected warning %v, got log %q", timeoutEnv, tt.value, tt.warns, buf.String())
		}
	}
}

func TestTimeoutFromEnv_Unset(t *testing.T) {
	t.Setenv(timeoutEnv, "")
	os.Unsetenv(timeoutEnv)

	var buf bytes.Buffer
	if got := timeoutFromEnv(zerolog.New(&buf)); got != 5*time.Second {
		t.Errorf("expected the five second default, got %v", got)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no warning for an unset variable, got %q", buf.String())
	}
}

func TestClient_WithTimeoutLeavesCallerClientAlone(t *testing.T) {
	original := http.DefaultClient.Timeout
	t.Cleanup(func() { http.DefaultClient.Timeout = original })

	for _, opts := range [][]Option{
		{WithHTTPClient(http.DefaultClient), WithTimeout(2 * time.Second)},
		{WithTimeout(2 * time.Second), WithHTTPClient(http.DefaultClient)},
	} {
		client := NewClient(opts...)
		if http.DefaultClient.Timeout != original {
			t.Fatalf("http.DefaultClient.Timeout changed from %v to %v", original, http.DefaultClient.Timeout)
		}
		if client.httpClient == http.DefaultClient {
			t.Errorf("expected the client to work on a copy of http.DefaultClient")
		}
		if client.httpClient.Timeout != 2*time.Second {
			t.Errorf("expected a 2s timeout regardless of option order, got %v", client.httpClient.Timeout)
		}
	}
}

func TestClient_WithHTTPClientKeptWithoutTimeout(t *testing.T) {
	hc := &http.Client{Timeout: 7 * time.Second}
	client := NewClient(WithHTTPClient(hc))
	if client.httpClient != hc {
		t.Errorf("expected the given HTTP client to be used as is")
	}
}

func TestClient_RequestShape(t *testing.T) {
	var gotPath, gotQuery, gotAgent string
	client := newMockClient(t, http.StatusOK, `[]`, func(r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAgent = r.Header.Get("User-Agent")
	})

	addresses, err := client.FetchAddresses(ClassroomFilter{Seating: SeatingTheater, Capacity: intPtr(30)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(addresses) != 0 {
		t.Errorf("expected no addresses, got %d", len(addresses))
	}

	if gotPath != "/addresses" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if gotQuery != "capacity=30&seating=theater" {
		t.Errorf("unexpected query %s", gotQuery)
	}
	if gotAgent != userAgent {
		t.Errorf("unexpected user agent %q", gotAgent)
	}
}

func TestClient_MalformedBody(t *testing.T) {
	client := newMockClient(t, http.StatusOK, "<html>maintenance</html>", nil)

	_, err := client.FetchStudyDivisions()
	if !errors.Is(err, ErrMalformedDocument) {
		t.Errorf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestClient_LogsRequests(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	client := newMockClient(t, http.StatusOK, `[]`, nil, WithLogger(logger))
	if _, err := client.FetchStudyDivisions(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"operation":"Get study divisions"`) || !strings.Contains(out, `"status":200`) {
		t.Errorf("expected a debug line for the request, got %s", out)
	}
}
