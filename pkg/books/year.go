package books

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Year is a publication year as persisted in the library document.
//
// Hand-edited documents sometimes hold "1965", 1965.0 or nothing at all.
// Year decodes those leniently and remembers the original value so that
// saving the document never rewrites it. Int reports whether the value
// could be read as a whole year.
type Year struct {
	value int
	valid bool
	raw   any // original value when it was not a plain integer
}

// YearOf returns the Year for n.
func YearOf(n int) Year {
	return Year{value: n, valid: true}
}

// Int returns the year and whether it could be interpreted as an integer.
func (y Year) Int() (int, bool) {
	return y.value, y.valid
}

// String returns the year as it appears in the document.
func (y Year) String() string {
	switch {
	case y.raw != nil:
		return fmt.Sprint(y.raw)
	case y.valid:
		return strconv.Itoa(y.value)
	default:
		return ""
	}
}

// MarshalJSON writes the year back in its original form.
func (y Year) MarshalJSON() ([]byte, error) {
	if y.raw == nil && y.valid {
		return strconv.AppendInt(nil, int64(y.value), 10), nil
	}
	return json.Marshal(y.raw)
}

// UnmarshalJSON decodes any JSON value into a Year.
func (y *Year) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*y = yearFromValue(v)
	return nil
}

// MarshalYAML writes the year back in its original form.
func (y Year) MarshalYAML() (any, error) {
	if y.raw == nil && y.valid {
		return y.value, nil
	}
	if n, ok := y.raw.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return n.String(), nil
		}
		return f, nil
	}
	return y.raw, nil
}

// UnmarshalYAML decodes any YAML scalar into a Year.
func (y *Year) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	*y = yearFromValue(v)
	return nil
}

func yearFromValue(v any) Year {
	switch n := v.(type) {
	case int:
		return YearOf(n)
	case int64:
		return YearOf(int(n))
	case uint64:
		if n > math.MaxInt32 {
			return Year{raw: v}
		}
		return YearOf(int(n))
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return YearOf(int(i))
		}
		if f, err := n.Float64(); err == nil {
			return truncatedYear(f, v)
		}
	case float64:
		return truncatedYear(n, v)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return Year{value: i, valid: true, raw: v}
		}
	}
	return Year{raw: v}
}

func truncatedYear(f float64, raw any) Year {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return Year{raw: raw}
	}
	return Year{value: int(f), valid: true, raw: raw}
}
