package store

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/errors"
	"github.com/agentstation/shelf/pkg/logging"
)

// Option is a function that configures a file store.
type Option func(*config) error

// WithFormat forces the document format regardless of the file extension.
func WithFormat(f Format) Option {
	return func(cfg *config) error {
		if f != FormatJSON && f != FormatYAML {
			return &errors.ValidationError{Field: "format", Value: f, Message: "must be json or yaml"}
		}
		cfg.format = f
		return nil
	}
}

// WithLogger sets the logger used for load and save events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = logger
		return nil
	}
}

type config struct {
	format Format
	logger *zerolog.Logger
}

// File stores the library in one file on disk.
type File struct {
	path   string
	format Format
	logger *zerolog.Logger
}

// NewFile returns a store for the document at path.
func NewFile(path string, opts ...Option) (*File, error) {
	if path == "" {
		return nil, &errors.ValidationError{Field: "path", Message: "is required for file store"}
	}

	cfg := &config{format: FormatForPath(path)}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.logger == nil {
		cfg.logger = logging.Default()
	}

	return &File{path: path, format: cfg.format, logger: cfg.logger}, nil
}

// Path returns the document path.
func (f *File) Path() string {
	return f.path
}

// Format returns the document format.
func (f *File) Format() Format {
	return f.format
}

// Load reads the collection.
//
// A missing, empty or whitespace-only document is an empty collection and
// nothing is written. An unparseable document is overwritten with an empty
// collection and Load returns a *errors.CorruptedError; the old content is
// not kept.
func (f *File) Load(ctx context.Context) ([]books.Book, error) {
	list, err := f.read(ctx)
	var parseErr *errors.ParseError
	if !errors.As(err, &parseErr) {
		return list, err
	}

	f.logger.Warn().
		Err(err).
		Str("path", f.path).
		Msg("Library document is corrupted, resetting to an empty library")

	if saveErr := f.Save(ctx, []books.Book{}); saveErr != nil {
		return nil, saveErr
	}
	return nil, errors.NewCorruptedError(f.path, string(f.format), err)
}

// read loads the document without side effects. Decoding failures are
// returned as *errors.ParseError.
func (f *File) read(ctx context.Context) ([]books.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			f.logger.Debug().Str("path", f.path).Msg("Library document not found, starting empty")
			return []books.Book{}, nil
		}
		return nil, errors.WrapIO("read", f.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []books.Book{}, nil
	}

	list, err := Decode(f.format, data)
	if err != nil {
		return nil, errors.WrapParse(string(f.format), f.path, err)
	}

	f.logger.Debug().Str("path", f.path).Int("books", len(list)).Msg("Library document loaded")
	return list, nil
}

// Snapshot returns a memory store seeded from the document at path. The
// document is never written, so changes made through the store are lost
// when the process exits. An unparseable document yields an empty store
// together with a *errors.CorruptedError.
func Snapshot(ctx context.Context, path string, opts ...Option) (*Memory, error) {
	f, err := NewFile(path, opts...)
	if err != nil {
		return nil, err
	}

	list, err := f.read(ctx)
	var parseErr *errors.ParseError
	switch {
	case errors.As(err, &parseErr):
		return NewMemory(), errors.NewCorruptedError(f.path, string(f.format), err)
	case err != nil:
		return nil, err
	}
	return NewMemory(list...), nil
}

// Save replaces the document with the whole collection. The content is
// written to a temporary file in the same directory and renamed over the
// target, creating the directory when needed.
func (f *File) Save(ctx context.Context, list []books.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(f.format, list)
	if err != nil {
		return errors.WrapParse(string(f.format), f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", f.path, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", f.path, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", tempPath, err)
	}

	if err := os.Rename(tempPath, f.path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("rename", f.path, err)
	}

	f.logger.Debug().Str("path", f.path).Int("books", len(list)).Msg("Library document saved")
	return nil
}
