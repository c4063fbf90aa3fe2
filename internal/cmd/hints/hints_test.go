package hints

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shelf/internal/cmd/output"
)

func TestShelfProviders(t *testing.T) {
	r := Shelf(0)

	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{"empty list", Context{Command: "list", Succeeded: true}, "shelf add"},
		{"first book", Context{Command: "add", Succeeded: true, Books: 1}, "shelf list"},
		{"search miss", Context{Command: "search", Succeeded: true, Books: 3}, "--by author"},
		{"big list", Context{Command: "list", Succeeded: true, Books: 5}, "stats --charts"},
		{"bad position", Context{Command: "remove", ErrorType: ErrorOutOfRange}, "shelf list"},
		{"validation", Context{Command: "add", ErrorType: ErrorValidation}, "Title and author are required"},
		{"corrupted", Context{Command: "list", ErrorType: ErrorCorrupted}, "reset to an empty library"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.For(tt.ctx)
			require.Len(t, got, 1)
			assert.Contains(t, got[0].String(), tt.want)
		})
	}

	assert.Empty(t, r.For(Context{Command: "add", Succeeded: true, Books: 4}))
	assert.Empty(t, r.For(Context{Command: "search", Succeeded: true, Books: 3, Matches: 1}))
}

func TestRegistryMax(t *testing.T) {
	two := func(Context) []Hint { return []Hint{{Message: "a"}, {Message: "b"}} }

	assert.Len(t, NewRegistry(1, two, two).For(Context{}), 1)
	assert.Len(t, NewRegistry(3, two, two).For(Context{}), 3)
	assert.Len(t, NewRegistry(0, two, two).For(Context{}), 4)
}

func TestDisplay(t *testing.T) {
	list := []Hint{{Message: "See your library", Command: "shelf list"}}

	var plain bytes.Buffer
	require.NoError(t, Display(&plain, output.FormatTable, list))
	assert.Equal(t, "\nHint: See your library\n   Run: shelf list\n", plain.String())

	var js bytes.Buffer
	require.NoError(t, Display(&js, output.FormatJSON, list))
	assert.JSONEq(t, `{"hints":[{"message":"See your library","command":"shelf list"}]}`, js.String())

	var y bytes.Buffer
	require.NoError(t, Display(&y, output.FormatYAML, list))
	assert.True(t, strings.HasPrefix(y.String(), "hints:"))

	var none bytes.Buffer
	require.NoError(t, Display(&none, output.FormatTable, nil))
	assert.Empty(t, none.String())
}
