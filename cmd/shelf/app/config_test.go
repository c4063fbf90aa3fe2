package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/shelf/internal/cmd/globals"
)

// isolate runs the test in an empty working directory and home, with every
// variable LoadConfig reads unset.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	for _, key := range []string{
		"SHELF_LIBRARY_PATH", "SHELF_BANNER_URL", "SHELF_FORMAT", "SHELF_VERBOSE",
		"SHELF_QUIET", "SHELF_NO_COLOR", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "NO_COLOR",
	} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// TestLoadConfig verifies the defaults.
func TestLoadConfig(t *testing.T) {
	isolate(t)

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LibraryPath != "library.json" {
		t.Errorf("LibraryPath = %q, want library.json", config.LibraryPath)
	}
	// An empty level lets -v and -q decide
	if config.LogLevel != "" {
		t.Errorf("LogLevel = %q, want empty", config.LogLevel)
	}
	if config.LogFormat != "auto" {
		t.Errorf("LogFormat = %q, want auto", config.LogFormat)
	}
	if config.LogOutput != "stderr" {
		t.Errorf("LogOutput = %q, want stderr", config.LogOutput)
	}
	if config.BannerURL != "" {
		t.Errorf("BannerURL = %q, want empty", config.BannerURL)
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)
	t.Setenv("SHELF_LIBRARY_PATH", "/data/books.json")
	t.Setenv("SHELF_BANNER_URL", "https://example.com/banner.txt")
	t.Setenv("SHELF_FORMAT", "yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NO_COLOR", "1")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LibraryPath != "/data/books.json" {
		t.Errorf("LibraryPath = %q, want /data/books.json", config.LibraryPath)
	}
	if config.BannerURL != "https://example.com/banner.txt" {
		t.Errorf("BannerURL = %q", config.BannerURL)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %q, want yaml", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}
	if !config.NoColor {
		t.Error("NO_COLOR not honoured")
	}
}

// TestConfig_File verifies the config file in the working directory and
// an explicit config file.
func TestConfig_File(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".shelf.yaml"), "library_path: shelf.yaml\nlog_format: json\n")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.LibraryPath != "shelf.yaml" {
		t.Errorf("LibraryPath = %q, want shelf.yaml", config.LibraryPath)
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", config.LogFormat)
	}

	explicit := filepath.Join(dir, "custom.yaml")
	writeFile(t, explicit, "library_path: custom.json\n")

	config, err = LoadConfig(explicit)
	if err != nil {
		t.Fatalf("LoadConfig(%q) failed: %v", explicit, err)
	}
	if config.LibraryPath != "custom.json" {
		t.Errorf("LibraryPath = %q, want custom.json", config.LibraryPath)
	}
	if config.ConfigFile != explicit {
		t.Errorf("ConfigFile = %q, want %q", config.ConfigFile, explicit)
	}
}

// TestConfig_EnvOverridesFile verifies environment variables win over the config file.
func TestConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".shelf.yaml"), "library_path: file.json\n")
	t.Setenv("SHELF_LIBRARY_PATH", "env.json")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.LibraryPath != "env.json" {
		t.Errorf("LibraryPath = %q, want env.json", config.LibraryPath)
	}
}

// TestConfig_DotEnv verifies .env files are loaded.
func TestConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "SHELF_LIBRARY_PATH=dotenv.json\n")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.LibraryPath != "dotenv.json" {
		t.Errorf("LibraryPath = %q, want dotenv.json", config.LibraryPath)
	}
}

// TestConfig_Errors verifies invalid configuration is rejected.
func TestConfig_Errors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadConfig() with a missing config file should fail")
	}

	empty := filepath.Join(dir, "empty-path.yaml")
	writeFile(t, empty, "library_path: \"\"\n")
	if _, err := LoadConfig(empty); err == nil {
		t.Error("LoadConfig() with an empty library_path should fail")
	}
}

// TestConfig_UpdateFromFlags verifies flags take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags globals.Flags
		check func(*Config) bool
	}{
		{"library", globals.Flags{Library: "flag.json"}, func(c *Config) bool { return c.LibraryPath == "flag.json" }},
		{"format", globals.Flags{Format: "json"}, func(c *Config) bool { return c.Format == "json" }},
		{"log level", globals.Flags{LogLevel: "error"}, func(c *Config) bool { return c.LogLevel == "error" }},
		{"verbose", globals.Flags{Verbose: true}, func(c *Config) bool { return c.Verbose }},
		{"dry run", globals.Flags{DryRun: true}, func(c *Config) bool { return c.DryRun }},
		{"empty flags keep config", globals.Flags{}, func(c *Config) bool {
			return c.LibraryPath == "config.json" && c.Format == "yaml" && c.LogLevel == "warn"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{LibraryPath: "config.json", Format: "yaml", LogLevel: "warn"}
			config.UpdateFromFlags(&tt.flags)
			if !tt.check(config) {
				t.Errorf("UpdateFromFlags(%+v) gave %+v", tt.flags, config)
			}
		})
	}
}
