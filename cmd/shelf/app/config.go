package app

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/shelf/internal/cmd/globals"
	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string
	DryRun  bool

	// Config file
	ConfigFile string

	// Library configuration
	LibraryPath string
	BannerURL   string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables (SHELF_*, LOG_*, NO_COLOR)
//  3. .env and .env.local files
//  4. Config file (configFile, or .shelf.yaml in $HOME or the working directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// .env files must be loaded before viper reads the environment
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("library_path", constants.DefaultLibraryFile)
	v.SetDefault("banner_url", "")
	v.SetDefault("format", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "reading "+constants.ConfigFileName, err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		LibraryPath: v.GetString("library_path"),
		BannerURL:   v.GetString("banner_url"),

		// An empty level lets -v/-q decide, see determineLogLevel
		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", stringOr(v.GetString("log_format"), "auto")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", stringOr(v.GetString("log_output"), "stderr")),
	}

	if config.LibraryPath == "" {
		return nil, errors.NewConfigError("library_path", "cannot be empty", nil)
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(flags *globals.Flags) {
	c.Verbose = c.Verbose || flags.Verbose
	c.Quiet = c.Quiet || flags.Quiet
	c.NoColor = c.NoColor || flags.NoColor
	c.DryRun = flags.DryRun
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Library != "" {
		c.LibraryPath = flags.Library
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
