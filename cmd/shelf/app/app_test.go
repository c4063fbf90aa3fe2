package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentstation/shelf/internal/cmd/cmdutil"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/store"
)

func testConfig(path string) *Config {
	return &Config{
		LibraryPath: path,
		LogLevel:    "error",
		LogFormat:   "json",
		LogOutput:   "stderr",
		NoColor:     true,
	}
}

func newTestApp(t *testing.T, config *Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app, err := New("1.0.0", "abc123", "2025-01-01", "test", WithConfig(config), WithOutput(&stdout, &stderr))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app, &stdout, &stderr
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	isolate(t)

	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.LibraryPath() != "library.json" {
		t.Errorf("LibraryPath() = %s, want library.json", app.LibraryPath())
	}
}

// TestApp_WithConfigNil verifies a nil config is rejected.
func TestApp_WithConfigNil(t *testing.T) {
	isolate(t)

	if _, err := New("1.0.0", "", "", "", WithConfig(nil)); err == nil {
		t.Error("New(WithConfig(nil)) should fail")
	}
}

// TestApp_Library_Singleton verifies that Library() returns the same instance.
func TestApp_Library_Singleton(t *testing.T) {
	app, _, _ := newTestApp(t, testConfig(filepath.Join(t.TempDir(), "library.json")))

	lib1, err := app.Library(context.Background())
	if err != nil {
		t.Fatalf("Library() failed: %v", err)
	}
	lib2, err := app.Library(context.Background())
	if err != nil {
		t.Fatalf("Library() failed on second call: %v", err)
	}
	if lib1 != lib2 {
		t.Error("Library() returned different instances")
	}
}

// TestApp_Library_Corrupted verifies a corrupted file is reset to an empty library.
func TestApp_Library_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	writeFile(t, path, "{not json")
	app, _, _ := newTestApp(t, testConfig(path))

	lib, err := app.Library(context.Background())
	if !errors.IsCorrupted(err) {
		t.Fatalf("Library() error = %v, want corrupted", err)
	}
	if lib == nil || lib.Len() != 0 {
		t.Fatalf("Library() = %v, want an empty library", lib)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("library file = %q, want []", data)
	}
}

// TestApp_Library_DryRun verifies changes are never written in a dry run.
func TestApp_Library_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	original, err := store.Encode(store.FormatJSON, []books.Book{
		{Title: "Dune", Author: "Frank Herbert", PublicationYear: books.YearOf(1965), Genre: books.Science},
	})
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, path, string(original))

	config := testConfig(path)
	config.DryRun = true
	app, _, _ := newTestApp(t, config)

	lib, err := app.Library(context.Background())
	if err != nil {
		t.Fatalf("Library() failed: %v", err)
	}
	if _, err := lib.Remove(context.Background(), 0); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if lib.Len() != 0 {
		t.Errorf("Len() = %d, want 0", lib.Len())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, original) {
		t.Errorf("library file changed in a dry run:\n%s", data)
	}
}

// TestApp_Execute runs commands end to end against a library file.
func TestApp_Execute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")

	app, _, stderr := newTestApp(t, testConfig(path))
	err := app.Execute(context.Background(), []string{
		"add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Science", "--unread",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(stderr.String(), "Book added successfully!") {
		t.Errorf("stderr = %q, want the success alert", stderr.String())
	}

	app, stdout, _ := newTestApp(t, testConfig(path))
	if err := app.Execute(context.Background(), []string{"list", "-o", "json"}); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var list []map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &list); err != nil {
		t.Fatalf("list output is not JSON: %v\n%s", err, stdout.String())
	}
	if len(list) != 1 || list[0]["title"] != "Dune" || list[0]["read_status"] != false {
		t.Errorf("list = %v, want one unread Dune", list)
	}
	if list[0]["publication_year"] != float64(1965) {
		t.Errorf("publication_year = %v, want 1965", list[0]["publication_year"])
	}
}

// TestApp_Execute_LibraryFlag verifies --library selects the file.
func TestApp_Execute_LibraryFlag(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "other.yaml")

	app, _, _ := newTestApp(t, testConfig(filepath.Join(dir, "library.json")))
	err := app.Execute(context.Background(), []string{
		"--library", flagPath, "add", "--title", "Emma", "--author", "Jane Austen", "--year", "1815",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	data, err := os.ReadFile(flagPath)
	if err != nil {
		t.Fatalf("library flag was not used: %v", err)
	}
	if !strings.Contains(string(data), "title: Emma") {
		t.Errorf("YAML library = %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "library.json")); !os.IsNotExist(err) {
		t.Error("default library file should not be written")
	}
}

// TestApp_Execute_Failure verifies failed commands are reported once.
func TestApp_Execute_Failure(t *testing.T) {
	app, _, stderr := newTestApp(t, testConfig(filepath.Join(t.TempDir(), "library.json")))

	err := app.Execute(context.Background(), []string{"remove", "5"})
	if err == nil {
		t.Fatal("remove on an empty library should fail")
	}
	if !cmdutil.IsReported(err) {
		t.Errorf("error %v should already be reported", err)
	}
	if !strings.Contains(stderr.String(), "Book not removed") {
		t.Errorf("stderr = %q, want the error alert", stderr.String())
	}
}

// TestApp_Execute_Version verifies the --version template.
func TestApp_Execute_Version(t *testing.T) {
	app, stdout, _ := newTestApp(t, testConfig(filepath.Join(t.TempDir(), "library.json")))

	if err := app.Execute(context.Background(), []string{"--version"}); err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if stdout.String() != "shelf 1.0.0\n" {
		t.Errorf("--version = %q, want %q", stdout.String(), "shelf 1.0.0\n")
	}
}

// TestApp_Shutdown verifies shutdown honours the context.
func TestApp_Shutdown(t *testing.T) {
	app, _, _ := newTestApp(t, testConfig("library.json"))

	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Shutdown(ctx); err == nil {
		t.Error("Shutdown() with a cancelled context should fail")
	}
}

// TestApp_LogFile verifies a file log output receives entries and is closed once.
func TestApp_LogFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	config := testConfig(filepath.Join(dir, "library.json"))
	config.LogOutput = filepath.Join(dir, "shelf.log")

	app, _, _ := newTestApp(t, config)
	app.Logger().Error().Msg("written to the log file")

	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() = %v", err)
	}
	if err := app.Shutdown(context.Background()); err != nil {
		t.Errorf("second Shutdown() = %v", err)
	}

	data, err := os.ReadFile(config.LogOutput)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "written to the log file") {
		t.Errorf("log file = %q", data)
	}
}
