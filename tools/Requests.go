package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"wowarbitrage/config"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

/*
Handles HTTP requests to the auction data site.
*/

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// PageLoader retrieves the HTML of a page. A 404 is reported as ErrPageNotFound.
type PageLoader interface {
	Load(ctx context.Context, url string) (string, error)
}

// ClientConfig carries everything the page loaders need to talk to the site
type ClientConfig struct {
	BaseURL          string
	UserAgent        string
	Timeout          time.Duration
	CloudflareBypass bool
}

// DefaultClientConfig points at wowauctions.net with the default agent and timeout
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:   config.WowAuctionsBaseURL,
		UserAgent: config.UserAgent,
		Timeout:   config.RequestTimeout,
	}
}

// NewHTTPClient builds a resty client from the given config
func NewHTTPClient(cfg ClientConfig) *resty.Client {
	client := resty.New()
	if cfg.BaseURL != "" {
		client.SetBaseURL(cfg.BaseURL)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		slog.DebugContext(req.Context(), "start request", "method", req.Method, "url", req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		slog.DebugContext(
			res.Request.Context(), "request finished",
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"elapsed", res.Time(),
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		slog.ErrorContext(req.Context(), "request failed", "method", req.Method, "url", req.URL, "err", err)
	})
	return client
}

// HTTPLoader loads pages with a plain HTTP GET
type HTTPLoader struct {
	client *resty.Client
}

func NewHTTPLoader(cfg ClientConfig) *HTTPLoader {
	return &HTTPLoader{client: NewHTTPClient(cfg)}
}

//Retrieves page source of a URL
func (l *HTTPLoader) Load(ctx context.Context, url string) (string, error) {
	res, err := l.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch url: %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return "", ErrPageNotFound
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode())
	}
	return res.String(), nil
}
