package tools

import (
	"testing"
	"wowarbitrage/config"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/require"
)

func TestFastFlags(t *testing.T) {
	base := len(chromedp.DefaultExecAllocatorOptions)
	withAgent := FastFlags("agent")
	withoutAgent := FastFlags("")

	require.Greater(t, len(withoutAgent), base)
	require.Equal(t, len(withoutAgent)+1, len(withAgent))
}

// Constructing the loader must not start Chrome, that only happens on the first Load
func TestNewBrowserLoader(t *testing.T) {
	b := NewBrowserLoader(ClientConfig{UserAgent: config.UserAgent})
	defer b.Close()

	require.Equal(t, config.RequestTimeout, b.timeout)
	var _ PageLoader = b
}

func TestNewHTTPClient(t *testing.T) {
	cfg := DefaultClientConfig()
	cfg.CloudflareBypass = true

	client := NewHTTPClient(cfg)
	require.Equal(t, config.WowAuctionsBaseURL, client.BaseURL)
	require.Equal(t, config.UserAgent, client.Header.Get("User-Agent"))
	require.Equal(t, config.RequestTimeout, client.GetClient().Timeout)
	require.NotNil(t, client.GetClient().Transport)
}
