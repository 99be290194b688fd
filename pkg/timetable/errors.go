package timetable

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const apiErrorPrefix = "A request to the SPbU Timetable API was unsuccessful. "

// APIError is returned when the service answers with a status other than 200.
type APIError struct {
	// Operation is the logical operation name, e.g. "Get classrooms".
	Operation  string
	StatusCode int
	Reason     string
	Body       string
	// Response is the raw response; its body has already been read into Body.
	Response *http.Response
}

func newAPIError(operation string, resp *http.Response, body []byte) *APIError {
	return &APIError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Body:       string(body),
		Response:   resp,
	}
}

// reasonPhrase strips the numeric code from resp.Status ("404 Not Found" -> "Not Found").
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

func (e *APIError) Error() string {
	return apiErrorPrefix + fmt.Sprintf("The server returned HTTP %d %s. Response body:\n[%s]",
		e.StatusCode, e.Reason, e.Body)
}
