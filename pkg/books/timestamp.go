package books

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/shelf/pkg/constants"
)

// Timestamp is the added_date of a book, persisted as local wall-clock
// time in the "2006-01-02 15:04:05" layout.
//
// Text that does not match the layout is kept as-is and written back
// unchanged; such a Timestamp reports IsZero.
type Timestamp struct {
	t   time.Time
	raw string
}

// NewTimestamp returns t in local time, truncated to the second.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.In(time.Local).Truncate(time.Second)}
}

// ParseTimestamp parses s in the added_date layout. Unparseable text is
// kept verbatim.
func ParseTimestamp(s string) Timestamp {
	t, err := time.ParseInLocation(constants.AddedDateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return Timestamp{raw: s}
	}
	return Timestamp{t: t}
}

// Time returns the parsed time, or the zero time.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// IsZero reports whether the timestamp holds no usable time.
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

// String formats the timestamp in the added_date layout.
func (ts Timestamp) String() string {
	if ts.raw != "" {
		return ts.raw
	}
	if ts.t.IsZero() {
		return ""
	}
	return ts.t.Format(constants.AddedDateLayout)
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON implements json.Unmarshaler. Non-string values are kept
// as raw text rather than failing the whole document.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*ts = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*ts = Timestamp{raw: text}
		return nil
	}
	*ts = fromText(s)
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (ts Timestamp) MarshalYAML() (any, error) {
	return ts.String(), nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (ts *Timestamp) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*ts = Timestamp{}
	case string:
		*ts = fromText(value)
	case time.Time:
		// YAML may resolve the scalar as a timestamp; keep the wall clock.
		*ts = Timestamp{t: time.Date(value.Year(), value.Month(), value.Day(),
			value.Hour(), value.Minute(), value.Second(), 0, time.Local)}
	default:
		*ts = Timestamp{raw: fmt.Sprint(value)}
	}
	return nil
}

func fromText(s string) Timestamp {
	if s == "" {
		return Timestamp{}
	}
	return ParseTimestamp(s)
}
