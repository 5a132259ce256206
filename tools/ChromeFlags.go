package tools

/*
Stores list of ChromeDP flags for the headless page loader
*/

import (
	"github.com/chromedp/chromedp"
)

// Flag list for fastest page load possible
func FastFlags(userAgent string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		// Core performance flags
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),

		// Network and loading optimizations
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-default-apps", true),

		// Page data is read from an inline script, media is never needed
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-plugins", true),
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
		chromedp.Flag("disable-audio-output", true),

		// Look less like automation to the site's bot checks
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("exclude-switches", "enable-automation"),

		chromedp.Flag("log-level", "3"), // Only fatal errors
	)
	if userAgent != "" {
		opts = append(opts, chromedp.UserAgent(userAgent))
	}

	return opts
}
