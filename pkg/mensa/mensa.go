package mensa

import (
	"context"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // the cafeteria's zone must resolve on hosts without zoneinfo

	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/mensa/internal/logger"
	"github.com/jmylchreest/mensa/pkg/fetcher"
	"github.com/jmylchreest/mensa/pkg/menu"
	"github.com/jmylchreest/mensa/pkg/page"
)

// ErrTransport is re-exported so callers need only this package for the
// one error Build can fail with.
var ErrTransport = fetcher.ErrTransport

var validate = validator.New()

// Validate checks the configuration before anything is fetched.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Client fetches the menu page and holds the most recently built plan.
// A Client is not safe for concurrent Build calls.
type Client struct {
	fetcher fetcher.Fetcher
	builder *menu.Builder
	config  Config
	plan    *menu.Plan
	stats   menu.BuildStats
}

// New creates a client. The configuration is validated first.
func New(opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Location == nil {
		cfg.Location = berlin()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	// Use injected fetcher or create one for the mode
	f := cfg.Fetcher
	if f == nil {
		var err error
		f, err = fetcher.New(cfg.FetchMode, fetcher.Config{
			UserAgent:   cfg.UserAgent,
			Timeout:     cfg.Timeout,
			MaxBodySize: cfg.MaxBodySize,
			Headers:     cfg.Headers,
			Marker:      cfg.Classes.Day,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create fetcher: %w", err)
		}
	}

	return &Client{
		fetcher: f,
		builder: &menu.Builder{
			Classes: cfg.Classes,
			Parser:  menu.Parser{Shapes: cfg.Shapes},
		},
		config: cfg,
		plan:   menu.NewPlan(),
	}, nil
}

// Build fetches the page and replaces the held plan. Only a fetch or
// document read failure is returned; malformed days and dishes are skipped.
// On error the previous plan is kept.
func (c *Client) Build(ctx context.Context) (*menu.Plan, error) {
	fetchStart := time.Now()
	content, err := c.fetcher.Fetch(ctx, c.config.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	logger.Debug("menu page fetched",
		"url", content.URL,
		"fetcher", c.fetcher.Type(),
		"duration", time.Since(fetchStart))

	root, err := page.ParseBytes(content.Body)
	if err != nil {
		return nil, err
	}

	plan, stats := c.builder.BuildWithStats(root)
	if stats.SkippedSections > 0 || stats.SkippedDishes > 0 {
		logger.Warn("menu page contained unreadable entries",
			"skipped_days", stats.SkippedSections,
			"skipped_dishes", stats.SkippedDishes)
	}

	c.plan = plan
	c.stats = stats
	return plan, nil
}

// Plan returns the held plan, empty before the first successful Build.
func (c *Client) Plan() *menu.Plan {
	return c.plan
}

// Stats returns the counters of the last successful Build.
func (c *Client) Stats() menu.BuildStats {
	return c.stats
}

// Today returns today's menu in the configured timezone, ok=false when the
// plan has no entry for today.
func (c *Client) Today() (menu.DayMenu, bool) {
	return menu.Today(c.plan, c.Now())
}

// Now returns the current time in the configured timezone.
func (c *Client) Now() time.Time {
	return c.config.Clock().In(c.config.Location)
}

// Close releases all resources.
func (c *Client) Close() error {
	if c.fetcher != nil {
		return c.fetcher.Close()
	}
	return nil
}

// LoadLocation resolves a timezone name, falling back to the cafeteria's
// zone for an empty name.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return berlin(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

func berlin() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}
