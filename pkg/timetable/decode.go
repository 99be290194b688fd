package timetable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformedDocument is returned when a payload is not a JSON object or
	// array, or a string holding one.
	ErrMalformedDocument = errors.New("malformed JSON document")

	// ErrMissingField is wrapped by a DecodeError when a required key is absent or null.
	ErrMissingField = errors.New("required field is missing")
)

// DecodeError reports a field that could not be turned into its record.
type DecodeError struct {
	Type  string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("decode %s.%s: %v", e.Type, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode converts a response document into T. The document may be raw JSON
// ([]byte, json.RawMessage or string) or a value already parsed by
// encoding/json (map[string]any or []any).
func Decode[T any](doc any) (T, error) {
	var out T
	if err := decodeInto(doc, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func decodeInto(doc any, out any) error {
	data, err := normalize(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// normalize turns any accepted document form into validated JSON bytes.
func normalize(doc any) ([]byte, error) {
	var data []byte

	switch v := doc.(type) {
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	case string:
		data = []byte(v)
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unsupported document type %T", ErrMalformedDocument, doc)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || (data[0] != '{' && data[0] != '[') {
		return nil, fmt.Errorf("%w: top level must be an object or an array", ErrMalformedDocument)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedDocument)
	}
	return data, nil
}

// object is a JSON object whose keys are read one by one with defaults.
// The first failure is kept in err and returned by the record's UnmarshalJSON.
type object struct {
	typ    string
	fields map[string]json.RawMessage
	err    error
}

func readObject(typ string, data []byte) (*object, error) {
	o := &object{typ: typ, fields: map[string]json.RawMessage{}}
	if isNull(data) {
		return o, nil
	}
	if err := json.Unmarshal(data, &o.fields); err != nil {
		return nil, &DecodeError{Type: typ, Err: err}
	}
	return o, nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// raw returns the value under key, or nil when it is absent or null.
func (o *object) raw(key string) json.RawMessage {
	v, ok := o.fields[key]
	if !ok || isNull(v) {
		return nil
	}
	return v
}

func (o *object) fail(key string, err error) {
	if o.err == nil {
		o.err = &DecodeError{Type: o.typ, Field: key, Err: err}
	}
}

func (o *object) scan(key string, dst any) {
	v := o.raw(key)
	if v == nil {
		return
	}
	if err := json.Unmarshal(v, dst); err != nil {
		o.fail(key, err)
	}
}

// require records an error when key is absent or null.
func (o *object) require(key string) {
	if o.raw(key) == nil {
		o.fail(key, ErrMissingField)
	}
}

func (o *object) str(key string) string {
	var s string
	o.scan(key, &s)
	return s
}

func (o *object) integer(key string) int {
	var n int
	o.scan(key, &n)
	return n
}

func (o *object) float(key string) float64 {
	var f float64
	o.scan(key, &f)
	return f
}

func (o *object) boolean(key string) bool {
	var b bool
	o.scan(key, &b)
	return b
}

func (o *object) strings(key string) []string {
	s := []string{}
	o.scan(key, &s)
	if s == nil {
		s = []string{}
	}
	return s
}

func (o *object) timestamp(key, layout string) (time.Time, bool) {
	s := o.str(key)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		o.fail(key, err)
		return time.Time{}, false
	}
	return t, true
}

// dateTime reads a YYYY-MM-DDTHH:MM:SS value.
func (o *object) dateTime(key string) *time.Time {
	t, ok := o.timestamp(key, DateTimeLayout)
	if !ok {
		return nil
	}
	return &t
}

// date reads a YYYY-MM-DD value.
func (o *object) date(key string) *Date {
	t, ok := o.timestamp(key, DateLayout)
	if !ok {
		return nil
	}
	d := DateOf(t)
	return &d
}

// dateOfDateTime reads a full timestamp and keeps only its calendar date.
func (o *object) dateOfDateTime(key string) *Date {
	t, ok := o.timestamp(key, DateTimeLayout)
	if !ok {
		return nil
	}
	d := DateOf(t)
	return &d
}

// clock reads an HH:MM:SS value.
func (o *object) clock(key string) *TimeOfDay {
	t, ok := o.timestamp(key, TimeOfDayLayout)
	if !ok {
		return nil
	}
	c := TimeOfDayOf(t)
	return &c
}

// list decodes the array under key. Missing or null arrays become empty slices.
func list[T any](o *object, key string) []T {
	out := []T{}
	o.scan(key, &out)
	if out == nil {
		out = []T{}
	}
	return out
}

// nested decodes the object under key, or returns nil when it is absent.
func nested[T any](o *object, key string) *T {
	if o.raw(key) == nil {
		return nil
	}
	v := new(T)
	o.scan(key, v)
	return v
}

// readPair decodes an {"Item1": ..., "Item2": ...} tuple positionally.
func readPair(typ string, data []byte, first, second any) error {
	o, err := readObject(typ, data)
	if err != nil {
		return err
	}
	o.scan("Item1", first)
	o.scan("Item2", second)
	return o.err
}
