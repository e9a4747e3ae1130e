// Package mensa provides the public API for reading a cafeteria weekly menu.
package mensa

import (
	"time"

	"github.com/jmylchreest/mensa/pkg/fetcher"
	"github.com/jmylchreest/mensa/pkg/menu"
)

// DefaultSourceURL is the weekly menu of the BTU Cottbus cafeteria.
const DefaultSourceURL = "https://www.swffo.de/2011/ClassPackage/swffo-2020/swffo-speiseplaene/4frame-Speiseplan.CottbusBTU.php"

// DefaultTimezone is the zone the cafeteria publishes its dates in.
const DefaultTimezone = "Europe/Berlin"

// Config holds all client configuration.
type Config struct {
	SourceURL string       `validate:"required,url"`
	FetchMode fetcher.Mode `validate:"oneof=static dynamic auto"`
	UserAgent string
	Timeout   time.Duration `validate:"gt=0"`
	// MaxBodySize caps the fetched page size in bytes, 0 = unlimited.
	MaxBodySize int `validate:"gte=0"`
	// Headers are sent with every page request.
	Headers map[string]string

	Classes menu.Classes
	Shapes  []menu.Shape `validate:"dive,oneof=simple positional"`

	Location *time.Location
	Clock    func() time.Time

	// Fetcher overrides FetchMode when set.
	Fetcher fetcher.Fetcher
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		SourceURL: DefaultSourceURL,
		FetchMode: fetcher.ModeStatic,
		Timeout:   30 * time.Second,
		Classes:   menu.DefaultClasses(),
		Shapes:    menu.DefaultShapes(),
		Location:  berlin(),
		Clock:     time.Now,
	}
}

// Option configures the client.
type Option func(*Config)

// WithSourceURL sets the menu page URL.
func WithSourceURL(url string) Option {
	return func(c *Config) {
		c.SourceURL = url
	}
}

// WithFetchMode selects the static, dynamic or auto fetcher.
func WithFetchMode(mode fetcher.Mode) Option {
	return func(c *Config) {
		c.FetchMode = mode
	}
}

// WithUserAgent sets the HTTP user agent.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithHeaders adds request headers, e.g. Accept-Language or Cookie.
func WithHeaders(headers map[string]string) Option {
	return func(c *Config) {
		c.Headers = headers
	}
}

// WithMaxBodySize caps the page size in bytes.
func WithMaxBodySize(n int) Option {
	return func(c *Config) {
		c.MaxBodySize = n
	}
}

// WithClasses sets the CSS classes of day sections, headers and dishes.
func WithClasses(classes menu.Classes) Option {
	return func(c *Config) {
		c.Classes = classes
	}
}

// WithShapes sets the dish layouts to try, in order.
func WithShapes(shapes ...menu.Shape) Option {
	return func(c *Config) {
		c.Shapes = shapes
	}
}

// WithLocation sets the timezone used to determine today's date.
func WithLocation(loc *time.Location) Option {
	return func(c *Config) {
		c.Location = loc
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Clock = now
	}
}

// WithFetcher injects a fetcher, overriding the fetch mode.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = f
	}
}
