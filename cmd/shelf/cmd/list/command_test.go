package list

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shelf/internal/appcontext"
	"github.com/agentstation/shelf/pkg/books"
)

func execute(t *testing.T, app *appcontext.Mock, args ...string) error {
	t.Helper()
	cmd := NewCommand(app)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func seed(t *testing.T, app *appcontext.Mock) {
	t.Helper()
	lib, err := app.Library(context.Background())
	require.NoError(t, err)
	_, err = lib.Add(context.Background(), "Dune", "Frank Herbert", 1965, books.Science, false)
	require.NoError(t, err)
	_, err = lib.Add(context.Background(), "The Dispossessed", "Ursula K. Le Guin", 1974, books.Fiction, true)
	require.NoError(t, err)
}

func TestListEmpty(t *testing.T) {
	app := &appcontext.Mock{}

	require.NoError(t, execute(t, app))
	assert.Empty(t, app.Out.String())
	assert.Contains(t, app.Err.String(), "Your library is empty.")
}

func TestListTable(t *testing.T) {
	app := &appcontext.Mock{}
	seed(t, app)

	require.NoError(t, execute(t, app))
	out := app.Out.String()
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Frank Herbert")
	assert.Contains(t, out, "The Dispossessed")
	assert.Less(t, strings.Index(out, "Dune"), strings.Index(out, "The Dispossessed"))
}

func TestListJSON(t *testing.T) {
	app := &appcontext.Mock{Format: "json"}
	seed(t, app)

	require.NoError(t, execute(t, app))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(app.Out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Dune", got[0]["title"])
	assert.Equal(t, false, got[0]["read_status"])
	assert.Equal(t, true, got[1]["read_status"])
}

func TestListEmptyJSON(t *testing.T) {
	app := &appcontext.Mock{Format: "json"}

	require.NoError(t, execute(t, app))
	assert.JSONEq(t, "[]", app.Out.String())
}

func TestListRejectsArgs(t *testing.T) {
	assert.Error(t, execute(t, &appcontext.Mock{}, "extra"))
}
