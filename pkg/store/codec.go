package store

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
)

// Encode serializes the collection in format f. An empty or nil
// collection encodes as an empty array.
func Encode(f Format, list []books.Book) ([]byte, error) {
	if list == nil {
		list = []books.Book{}
	}

	switch f {
	case FormatYAML:
		return yaml.MarshalWithOptions(list, yaml.Indent(2), yaml.IndentSequence(false))
	default:
		data, err := json.MarshalIndent(list, "", constants.JSONIndent)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// Decode parses a collection in format f. A null document decodes as an
// empty collection.
func Decode(f Format, data []byte) ([]books.Book, error) {
	var list []books.Book

	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
	}

	if list == nil {
		list = []books.Book{}
	}
	return list, nil
}
