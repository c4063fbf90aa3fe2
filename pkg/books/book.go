package books

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Book is one catalog entry.
type Book struct {
	Title           string    `json:"title" yaml:"title"`
	Author          string    `json:"author" yaml:"author"`
	PublicationYear Year      `json:"publication_year" yaml:"publication_year"`
	Genre           Genre     `json:"genre" yaml:"genre"`
	ReadStatus      bool      `json:"read_status" yaml:"read_status"`
	AddedDate       Timestamp `json:"added_date" yaml:"added_date"` // set once by Library.Add
}

// Status returns "Read" or "Unread".
func (b Book) Status() string {
	if b.ReadStatus {
		return "Read"
	}
	return "Unread"
}

// Field returns the value of a searchable field.
func (b Book) Field(field SearchField) (string, error) {
	switch field {
	case FieldTitle:
		return b.Title, nil
	case FieldAuthor:
		return b.Author, nil
	case FieldGenre:
		return string(b.Genre), nil
	default:
		return "", unsupportedField(string(field))
	}
}

// document mirrors Book with loosely typed text and status fields, so a
// hand-edited record such as {"title": 1984, "read_status": "yes"} still
// loads.
type document struct {
	Title           any       `json:"title" yaml:"title"`
	Author          any       `json:"author" yaml:"author"`
	PublicationYear Year      `json:"publication_year" yaml:"publication_year"`
	Genre           any       `json:"genre" yaml:"genre"`
	ReadStatus      any       `json:"read_status" yaml:"read_status"`
	AddedDate       Timestamp `json:"added_date" yaml:"added_date"`
}

func (d document) book() Book {
	return Book{
		Title:           text(d.Title),
		Author:          text(d.Author),
		PublicationYear: d.PublicationYear,
		Genre:           Genre(text(d.Genre)),
		ReadStatus:      truthy(d.ReadStatus),
		AddedDate:       d.AddedDate,
	}
}

// UnmarshalJSON decodes a record. Non-string text fields are kept as their
// JSON text and read_status follows the usual truthiness of its value.
func (b *Book) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var d document
	if err := dec.Decode(&d); err != nil {
		return err
	}
	*b = d.book()
	return nil
}

// UnmarshalYAML decodes a record with the same leniency as UnmarshalJSON.
func (b *Book) UnmarshalYAML(unmarshal func(any) error) error {
	var d document
	if err := unmarshal(&d); err != nil {
		return err
	}
	*b = d.book()
	return nil
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any, map[string]any:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	default:
		return fmt.Sprint(t)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
