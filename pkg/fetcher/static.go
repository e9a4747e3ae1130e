package fetcher

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gocolly/colly/v2"

	"github.com/jmylchreest/mensa/internal/logger"
)

// StaticFetcher uses Colly for plain HTTP fetching.
// It implements the Fetcher interface.
type StaticFetcher struct {
	config Config
}

// NewStatic creates a new static fetcher.
func NewStatic(cfg Config) *StaticFetcher {
	return &StaticFetcher{config: cfg.withDefaults()}
}

// Fetch retrieves the page using Colly. Any failure, including a
// non-success status, is reported as ErrTransport.
func (f *StaticFetcher) Fetch(ctx context.Context, targetURL string) (Content, error) {
	logger.Debug("static fetch starting", "url", targetURL)

	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	// Create a new collector for each request
	opts := []colly.CollectorOption{
		colly.UserAgent(f.config.UserAgent),
		colly.StdlibContext(ctx),
	}
	if f.config.MaxBodySize > 0 {
		opts = append(opts, colly.MaxBodySize(f.config.MaxBodySize))
	}
	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(f.config.Timeout)
	logger.Debug("static fetch configured",
		"user_agent", f.config.UserAgent,
		"timeout", f.config.Timeout)

	if len(f.config.Headers) > 0 {
		c.OnRequest(func(r *colly.Request) {
			for k, v := range f.config.Headers {
				r.Headers.Set(k, v)
			}
		})
	}

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.Body = r.Body
		logger.Debug("static fetch response received",
			"status", r.StatusCode,
			"content_type", result.ContentType,
			"body_size", humanize.Bytes(uint64(len(r.Body))))
	})

	c.OnError(func(r *colly.Response, err error) {
		statusCode := 0
		if r != nil {
			statusCode = r.StatusCode
			result.StatusCode = statusCode
		}
		fetchErr = transportError("status %d: %v", statusCode, err)
		logger.Debug("static fetch error", "status", statusCode, "error", err)
	})

	if err := c.Visit(targetURL); err != nil {
		logger.Debug("static fetch visit failed", "url", targetURL, "error", err)
		if fetchErr != nil {
			return result, fetchErr
		}
		return result, transportError("failed to visit %s: %v", targetURL, err)
	}

	if fetchErr != nil {
		return result, fetchErr
	}

	logger.Debug("static fetch complete", "url", targetURL)
	return result, nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return string(ModeStatic)
}
