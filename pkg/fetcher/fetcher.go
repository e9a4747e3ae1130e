// Package fetcher retrieves the raw menu page.
// Implement the Fetcher interface to plug in other transports.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves the page at url.
	Fetch(ctx context.Context, url string) (Content, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns a string identifying the fetcher type ("static", "dynamic").
	Type() string
}

// Content is a fetched page.
type Content struct {
	URL         string
	Body        []byte
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// ErrTransport marks a failure to retrieve the page at all: network errors,
// timeouts, non-success status codes or browser failures.
// Check with errors.Is(err, fetcher.ErrTransport).
var ErrTransport = errors.New("transport error")

// Mode selects the fetcher implementation.
type Mode string

const (
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
	ModeAuto    Mode = "auto"
)

// Config holds common fetcher configuration.
type Config struct {
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int // bytes, 0 = unlimited
	Headers     map[string]string

	// Marker is a CSS class a complete page contains, used by ModeAuto.
	Marker string
}

// Chrome user agent, the menu site serves a reduced page to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}

// New creates a fetcher for the given mode.
func New(mode Mode, cfg Config) (Fetcher, error) {
	switch mode {
	case ModeStatic, "":
		return NewStatic(cfg), nil
	case ModeDynamic:
		return NewDynamic(cfg)
	case ModeAuto:
		return NewAuto(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s (use 'static', 'dynamic' or 'auto')", mode)
	}
}

func transportError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTransport, fmt.Sprintf(format, args...))
}
