package appcontext

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/shelf/internal/cmd/notify"
	"github.com/agentstation/shelf/internal/cmd/output"
	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/store"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value: the
// library lives in an in-memory store and output is captured in Out and Err.
type Mock struct {
	LibraryFunc func(context.Context) (*books.Library, error)
	LoggerFunc  func() *zerolog.Logger
	Format      string
	Banner      string
	VersionFunc func() string

	Out bytes.Buffer
	Err bytes.Buffer

	once sync.Once
	lib  *books.Library
	mem  *store.Memory
}

// Library returns a library using the mock function or an in-memory library.
func (m *Mock) Library(ctx context.Context) (*books.Library, error) {
	if m.LibraryFunc != nil {
		return m.LibraryFunc(ctx)
	}

	var err error
	m.once.Do(func() {
		m.mem = store.NewMemory()
		m.lib, err = books.Open(ctx, m.mem)
	})
	return m.lib, err
}

// Store returns the in-memory store behind the default library.
func (m *Mock) Store() *store.Memory {
	return m.mem
}

// LibraryPath returns an empty path; the default library is not on disk.
func (m *Mock) LibraryPath() string {
	return ""
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns Format, defaulting to table.
func (m *Mock) OutputFormat() string {
	if m.Format == "" {
		return string(output.FormatTable)
	}
	return m.Format
}

// Notifier writes alerts to Err without hints or colors.
func (m *Mock) Notifier() *notify.Notifier {
	return notify.New(notify.Config{
		Format:     output.Format(m.OutputFormat()),
		ShowAlerts: true,
		Writer:     &m.Err,
	})
}

// Stdout returns Out.
func (m *Mock) Stdout() io.Writer {
	return &m.Out
}

// BannerURL returns Banner.
func (m *Mock) BannerURL() string {
	return m.Banner
}

// NoColor always disables colors.
func (m *Mock) NoColor() bool {
	return true
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string {
	return "unknown"
}

// Date returns "unknown".
func (m *Mock) Date() string {
	return "unknown"
}

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string {
	return "test"
}

var _ Interface = (*Mock)(nil)
