// Package banner fetches the optional decorative banner shown above the
// interactive UI. The banner is cosmetic: every failure degrades to no
// banner at all.
package banner

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/shelf/pkg/constants"
	"github.com/agentstation/shelf/pkg/logging"
)

// MaxBytes bounds how much of the response body is read.
const MaxBytes = 4 << 10

// MaxLines bounds how many lines of the banner are kept.
const MaxLines = 12

// Fetcher downloads banner text over HTTP.
type Fetcher struct {
	http   *http.Client
	logger *zerolog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.http = c
		}
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.http = &http.Client{Timeout: d, Transport: f.http.Transport}
	}
}

// WithLogger sets the logger that records fetch failures.
func WithLogger(logger *zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// New returns a Fetcher with a constants.BannerFetchTimeout timeout.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		http:   &http.Client{Timeout: constants.BannerFetchTimeout},
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the banner text at url, or "" when url is empty or the
// banner cannot be fetched.
func (f *Fetcher) Fetch(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.skip(url, err, "invalid banner URL")
		return ""
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := f.http.Do(req)
	if err != nil {
		f.skip(url, err, "banner request failed")
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("Banner unavailable")
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBytes))
	if err != nil {
		f.skip(url, err, "reading banner failed")
		return ""
	}

	return clean(string(body))
}

func (f *Fetcher) skip(url string, err error, msg string) {
	f.logger.Debug().Err(err).Str("url", url).Msg(msg)
}

// clean normalizes line endings, drops trailing whitespace and keeps at
// most MaxLines lines.
func clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
