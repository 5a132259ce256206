package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"wowarbitrage/tools"
)

/*
Walks the item list one request at a time, pausing between requests so the site is not hammered.
*/

// Scans every item sequentially and keeps snapshots with active listings.
// A failed item is logged and skipped. Cancelling ctx stops the scan and returns what was collected.
func ScanAll(ctx context.Context, fetcher tools.Fetcher, items []tools.Item, delay time.Duration) []tools.PriceSnapshot {
	var results []tools.PriceSnapshot
	total := len(items)

	for i, item := range items {
		if ctx.Err() != nil {
			slog.Warn("scan interrupted", "scanned", i, "total", total)
			break
		}

		slog.Info(fmt.Sprintf("[%d/%d] Scanning: %s...", i+1, total, item.Name), "item_id", item.ID)
		snap, err := fetcher.FetchItem(ctx, item)
		switch {
		case err != nil:
			slog.Error("error fetching item", "item_id", item.ID, "item_name", item.Name, "err", err)
		case snap == nil:
			slog.Debug("no listing", "item_id", item.ID, "item_name", item.Name)
		case snap.Quantity <= 0:
			slog.Debug("nothing listed", "item_id", item.ID, "item_name", item.Name)
		default:
			results = append(results, *snap)
		}

		if i < total-1 && !sleep(ctx, delay) {
			slog.Warn("scan interrupted", "scanned", i+1, "total", total)
			break
		}
	}

	return results
}

// sleep waits for d, returning false if ctx ended first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
