package fetcher

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/chromedp/chromedp"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/mensa/internal/logger"
)

// DynamicFetcher renders the page in headless Chrome via chromedp.
// Use it when the menu is filled in by JavaScript.
type DynamicFetcher struct {
	config    Config
	allocCtx  context.Context
	cancelCtx context.CancelFunc
}

// NewDynamic creates a dynamic fetcher with its own browser allocator.
func NewDynamic(cfg Config) (*DynamicFetcher, error) {
	cfg = cfg.withDefaults()
	logger.Debug("creating dynamic fetcher", "user_agent", cfg.UserAgent, "timeout", cfg.Timeout)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1280, 1024),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	return &DynamicFetcher{
		config:    cfg,
		allocCtx:  allocCtx,
		cancelCtx: cancelAlloc,
	}, nil
}

// Fetch navigates to the page, waits for the body and returns the rendered
// markup. Browser failures are reported as ErrTransport.
func (f *DynamicFetcher) Fetch(ctx context.Context, targetURL string) (Content, error) {
	logger.Debug("dynamic fetch starting", "url", targetURL)

	result := Content{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	browserCtx, cancelBrowser := chromedp.NewContext(f.allocCtx)
	defer cancelBrowser()
	stop := context.AfterFunc(ctx, cancelBrowser)
	defer stop()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, f.config.Timeout)
	defer cancelTimeout()

	var html string
	actions := []chromedp.Action{
		chromedp.Navigate(targetURL),
		chromedp.WaitVisible("body"),
		chromedp.OuterHTML("html", &html),
	}

	if err := chromedp.Run(timeoutCtx, actions...); err != nil {
		logger.Debug("dynamic fetch browser automation failed", "url", targetURL, "error", err)
		return result, transportError("browser automation failed: %v", err)
	}

	result.Body = []byte(truncateUTF8(html, f.config.MaxBodySize))
	result.StatusCode = 200 // chromedp doesn't easily expose status codes
	result.ContentType = "text/html"

	logger.Debug("dynamic fetch complete",
		"url", targetURL,
		"body_size", humanize.Bytes(uint64(len(result.Body))))
	return result, nil
}

// Close releases browser resources.
func (f *DynamicFetcher) Close() error {
	if f.cancelCtx != nil {
		f.cancelCtx()
	}
	return nil
}

// Type returns the fetcher type.
func (f *DynamicFetcher) Type() string {
	return string(ModeDynamic)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
// n <= 0 means no limit.
func truncateUTF8(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
