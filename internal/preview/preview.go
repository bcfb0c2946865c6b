// Package preview renders README HTML to a screenshot using a headless
// browser, so users can see their profile before deploying it.
// Requires Chrome/Chromium to be installed on the system.
package preview

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single preview render.
const DefaultTimeout = 30 * time.Second

// DefaultViewportWidth matches the content column on a GitHub profile.
const DefaultViewportWidth = 980

// Options configures preview rendering. The zero value selects
// defaults.
type Options struct {
	Timeout       time.Duration
	ViewportWidth int
	Quality       int // screenshot quality, 1-100
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = DefaultViewportWidth
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 90
	}
	return o
}

// Screenshot renders the given HTML fragment in a headless browser and
// returns an image of the full page. The fragment is wrapped in a
// GitHub-like shell so the preview resembles the real profile page.
func Screenshot(ctx context.Context, renderedHTML string, opts Options) ([]byte, error) {
	if strings.TrimSpace(renderedHTML) == "" {
		return nil, fmt.Errorf("html content is empty")
	}
	opts = opts.withDefaults()

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	page := wrapHTML(renderedHTML)
	dataURL := "data:text/html;charset=utf-8," + url.PathEscape(page)

	var shot []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(opts.ViewportWidth), 800),
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		// Remote badge and icon images need a moment to arrive.
		chromedp.Sleep(2*time.Second),
		chromedp.FullScreenshot(&shot, opts.Quality),
	)
	if err != nil {
		return nil, fmt.Errorf("preview rendering failed: %w", err)
	}

	return shot, nil
}

// wrapHTML wraps a rendered README fragment in a minimal page shell
// styled after GitHub's dark profile view.
func wrapHTML(fragment string) string {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><style>
body { background: #0d1117; color: #e6edf3; margin: 0; }
.markdown-body {
  font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
  font-size: 16px; line-height: 1.5;
  max-width: 920px; margin: 0 auto; padding: 32px;
}
.markdown-body img { max-width: 100%; }
.markdown-body a { color: #4493f8; }
.markdown-body hr { border: 0; border-top: 1px solid #30363d; margin: 24px 0; }
</style></head><body><div class="markdown-body">`)
	sb.WriteString(fragment)
	sb.WriteString(`</div></body></html>`)
	return sb.String()
}
