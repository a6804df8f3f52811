package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/aself101/nba-api/internal/logging"
)

const defaultBrowserTimeout = 45 * time.Second

// Browser is the secondary fetch tier: a headless browser session that loads
// the JSON endpoint like a regular page and reads the rendered body text.
// It exists only for endpoints that actively block the primary transport, so
// it spins up a fresh browser per fetch rather than pooling sessions.
type Browser struct {
	timeout      time.Duration
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewBrowser constructs the headless-browser tier.
func NewBrowser(timeout time.Duration, maxBodyBytes int64, logger *slog.Logger) *Browser {
	if timeout <= 0 {
		timeout = defaultBrowserTimeout
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Browser{timeout: timeout, maxBodyBytes: maxBodyBytes, logger: logger}
}

// Fetch navigates to the URL in a headless browser and returns the page body
// text, which for a JSON endpoint is the raw document.
func (b *Browser) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	logging.Info(b.logger, "fetching via headless browser", "url", url)

	var text string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Text("body", &text, chromedp.ByQuery),
	)
	if err != nil {
		return nil, err
	}

	body := []byte(text)
	if int64(len(body)) > b.maxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	if !json.Valid(body) {
		return nil, ErrMalformedBody
	}
	return body, nil
}
