package fetcher

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/mensa/internal/logger"
)

// AutoFetcher fetches the page statically and renders it in the browser
// only when the static markup lacks the menu and looks script-driven.
// A static transport error is returned as is, without a browser retry.
type AutoFetcher struct {
	static  Fetcher
	dynamic Fetcher
	marker  string
}

// NewAuto creates an auto fetcher. cfg.Marker names the CSS class whose
// presence proves the static page is complete.
func NewAuto(cfg Config) (*AutoFetcher, error) {
	dynamic, err := NewDynamic(cfg)
	if err != nil {
		return nil, err
	}
	return &AutoFetcher{
		static:  NewStatic(cfg),
		dynamic: dynamic,
		marker:  cfg.Marker,
	}, nil
}

// Fetch tries static first, then falls back to dynamic if needed.
func (f *AutoFetcher) Fetch(ctx context.Context, url string) (Content, error) {
	content, err := f.static.Fetch(ctx, url)
	if err != nil {
		return content, err
	}

	if !needsBrowser(content.Body, f.marker) {
		return content, nil
	}

	logger.Info("menu markup missing from static page, rendering in browser", "url", url, "marker", f.marker)
	return f.dynamic.Fetch(ctx, url)
}

var spaMarkers = []string{
	`<div id="root"></div>`,
	`<div id="app"></div>`,
	`<div id="__next"></div>`,
	`<div id="__nuxt"></div>`,
	"data-reactroot",
	"ng-app",
	"v-cloak",
}

var noscriptHints = []string{"javascript", "enable", "required", "browser", "aktivieren"}

// needsBrowser reports whether a statically fetched page has to be rendered.
// A page carrying the marker class never does.
func needsBrowser(body []byte, marker string) bool {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return false
	}

	if marker != "" && doc.Find("."+marker).Length() > 0 {
		return false
	}

	html := strings.ToLower(string(body))
	for _, m := range spaMarkers {
		if strings.Contains(html, m) {
			return true
		}
	}

	noscript := strings.ToLower(doc.Find("noscript").Text())
	for _, hint := range noscriptHints {
		if strings.Contains(noscript, hint) {
			return true
		}
	}

	// Next to no text means a loader shell.
	return len(strings.TrimSpace(doc.Find("body").Text())) < 100 && doc.Find("script").Length() > 0
}

// Close releases all fetcher resources.
func (f *AutoFetcher) Close() error {
	if f.dynamic != nil {
		return f.dynamic.Close()
	}
	return nil
}

// Type returns the fetcher type.
func (f *AutoFetcher) Type() string {
	return string(ModeAuto)
}
