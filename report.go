package main

import (
	"fmt"
	"io"
	"strings"
	"time"
	"wowarbitrage/config"
	"wowarbitrage/copper"
	"wowarbitrage/tools"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Formats how long ago a listing was seen, flagging anything older than the stale threshold
func formatAge(o tools.Opportunity, now time.Time) string {
	age, ok := o.Age(now)
	if !ok {
		return "-"
	}
	label := fmt.Sprintf("%dm ago", int(age.Minutes()))
	if age > config.StaleThreshold {
		label += " (stale)"
	}
	return label
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	// Rounded upper-cases footers by default, which mangles the "more in export" note
	t.Style().Format.Footer = text.FormatDefault
	return t
}

// PrintReport renders the top limit opportunities as a table
func PrintReport(w io.Writer, opps []tools.Opportunity, now time.Time, limit int) {
	if len(opps) == 0 {
		return
	}
	shown := opps
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "ARBITRAGE OPPORTUNITIES")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Item", "ID", "Type", "Current Price", "Target Price", "Profit/Item", "ROI", "Available", "Total Potential", "Last Seen"})
	for i, o := range shown {
		t.AppendRow(table.Row{
			i + 1,
			o.ItemName,
			o.ItemID,
			strings.ToUpper(string(o.Kind)),
			copper.Format(o.CurrentPrice),
			copper.Format(o.TargetPrice),
			copper.Format(o.ProfitPerItem),
			fmt.Sprintf("%.1f%%", o.ROIPercent),
			o.Quantity,
			copper.Format(o.TotalPotentialProfit),
			formatAge(o, now),
		})
	}
	if len(opps) > len(shown) {
		t.AppendFooter(table.Row{"", fmt.Sprintf("... %d more in export", len(opps)-len(shown))})
	}
	t.Render()
}

// PrintSummary reports scan totals and what acting on every item would take
func PrintSummary(w io.Writer, scanned int, listed int, opps []tools.Opportunity) {
	sim := tools.NewTradeSimulator()
	for _, o := range opps {
		sim.BuyItem(o)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Scanned %d items, %d with active listings\n", scanned, listed)
	portfolio := sim.GetPortfolio()
	fmt.Fprintf(w, "Found %d arbitrage opportunities across %d items\n", len(opps), len(portfolio))
	if len(opps) == 0 {
		return
	}
	names := make([]string, 0, len(portfolio))
	for _, o := range portfolio {
		names = append(names, fmt.Sprintf("%s (%s)", o.ItemName, o.Kind))
	}
	fmt.Fprintf(w, "Items: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "Capital required: %s\n", copper.Format(sim.CopperSpent))
	fmt.Fprintf(w, "Potential profit: %s (%.1f%% ROI)\n", copper.Format(sim.PotentialProfit), sim.ROIPercent())
}
