package tools

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
	"wowarbitrage/config"

	"github.com/chromedp/chromedp"
)

// BrowserLoader loads pages through a single headless Chrome tab.
// Used when the site answers plain HTTP clients with a challenge page.
type BrowserLoader struct {
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration

	mu sync.Mutex
}

// Constructor
func NewBrowserLoader(cfg ClientConfig) *BrowserLoader {
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), FastFlags(cfg.UserAgent)...)
	ctx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...any) {
		slog.Debug(fmt.Sprintf(format, args...))
	}))

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.RequestTimeout
	}

	return &BrowserLoader{
		ctx: ctx,
		cancel: func() {
			cancel()
			allocCancel()
		},
		timeout: timeout,
	}
}

// Load navigates to url and returns the rendered document
func (b *BrowserLoader) Load(ctx context.Context, url string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	timeoutCtx, cancel := context.WithTimeout(b.ctx, b.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	resp, err := chromedp.RunResponse(timeoutCtx, chromedp.Navigate(url))
	if err != nil {
		return "", fmt.Errorf("chrome navigation failed: %w", err)
	}
	if resp != nil {
		if resp.Status == http.StatusNotFound {
			return "", ErrPageNotFound
		}
		if resp.Status < 200 || resp.Status >= 300 {
			return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.Status)
		}
	}

	var html string
	err = chromedp.Run(timeoutCtx,
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chrome automation failed: %w", err)
	}
	return html, nil
}

// Close shuts the browser down
func (b *BrowserLoader) Close() {
	b.cancel()
}
