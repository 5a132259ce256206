package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
	"wowarbitrage/config"
	"wowarbitrage/tools"

	"github.com/stretchr/testify/require"
)

func TestPrintReport(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	fresh := now.Add(-10 * time.Minute)
	stale := now.Add(-45 * time.Minute)

	opps := []tools.Opportunity{
		{ItemID: 12360, ItemName: "Arcanite Bar", Kind: tools.MarketFlip, CurrentPrice: 300000, TargetPrice: 520000, ProfitPerItem: 194000, Quantity: 3, TotalPotentialProfit: 582000, ROIPercent: 64.67, LastSeen: &fresh},
		{ItemID: 4338, ItemName: "Mageweave Cloth", Kind: tools.VendorFlip, CurrentPrice: 500, TargetPrice: 2000, ProfitPerItem: 1500, Quantity: 3, TotalPotentialProfit: 4500, ROIPercent: 300, LastSeen: &stale},
		{ItemID: 2589, ItemName: "Linen Cloth", Kind: tools.VendorFlip, CurrentPrice: 10, TargetPrice: 1100, ProfitPerItem: 1090, Quantity: 1, TotalPotentialProfit: 1090, ROIPercent: 10900},
	}

	var buf bytes.Buffer
	PrintReport(&buf, opps, now, 20)
	out := buf.String()

	require.Contains(t, out, "ARBITRAGE OPPORTUNITIES")
	require.Contains(t, out, "Arcanite Bar")
	require.Contains(t, out, "MARKET")
	require.Contains(t, out, "19g 40s")
	require.Contains(t, out, "58g 20s")
	require.Contains(t, out, "64.7%")
	require.Contains(t, out, "10m ago")
	require.NotContains(t, strings.Split(out, "Mageweave")[0], "(stale)")
	require.Contains(t, out, "45m ago (stale)")
}

func TestPrintReportLimit(t *testing.T) {
	var opps []tools.Opportunity
	for i := range 25 {
		opps = append(opps, tools.Opportunity{ItemID: i, ItemName: fmt.Sprintf("Item %02d", i), Kind: tools.VendorFlip, TotalPotentialProfit: 100000 - i})
	}

	var buf bytes.Buffer
	PrintReport(&buf, opps, time.Now(), 20)
	out := buf.String()

	require.Contains(t, out, "Item 19")
	require.NotContains(t, out, "Item 20")
	require.Contains(t, out, "... 5 more in export")
}

func TestFormatAgeStaleBoundary(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) tools.Opportunity {
		seen := now.Add(-d)
		return tools.Opportunity{LastSeen: &seen}
	}

	require.Equal(t, "-", formatAge(tools.Opportunity{}, now))
	require.Equal(t, "29m ago", formatAge(at(29*time.Minute+59*time.Second), now))
	require.Equal(t, "30m ago", formatAge(at(config.StaleThreshold), now))
	require.Equal(t, "30m ago (stale)", formatAge(at(config.StaleThreshold+time.Second), now))
}

func TestPrintReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, nil, time.Now(), 20)
	require.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	opps := []tools.Opportunity{
		{ItemID: 1, ItemName: "Runecloth", Kind: tools.MarketFlip, CurrentPrice: 1000, Quantity: 2, TotalPotentialProfit: 17000},
		{ItemID: 1, ItemName: "Runecloth", Kind: tools.VendorFlip, CurrentPrice: 1000, Quantity: 2, TotalPotentialProfit: 4000},
	}

	var buf bytes.Buffer
	PrintSummary(&buf, 10, 4, opps)
	out := buf.String()

	require.Contains(t, out, "Scanned 10 items, 4 with active listings")
	require.Contains(t, out, "Found 2 arbitrage opportunities across 1 items")
	require.Contains(t, out, "Capital required: 20s")
	require.Contains(t, out, "Potential profit: 1g 70s (850.0% ROI)")
	require.Contains(t, out, "Items: Runecloth (market)\n")

	buf.Reset()
	PrintSummary(&buf, 10, 0, nil)
	require.Contains(t, buf.String(), "Found 0 arbitrage opportunities")
	require.NotContains(t, buf.String(), "Capital required")
}
