package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wowarbitrage/config"
	"wowarbitrage/tools"

	"github.com/spf13/cobra"
)

/*
Command-line interface: scan an auction house, detect arbitrage, report and export
*/

var configFile string

var rootCmd = &cobra.Command{
	Use:   "wowarb [--server turtle-wow] [--realm nordanaar] [--faction alliance]",
	Short: "WoW auction arbitrage scanner",
	Long: `Fetches auction data from wowauctions.net and identifies arbitrage opportunities:
  1. Vendor flips: items listed below vendor sell price
  2. Market flips: items listed significantly below their market average`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		tools.InitLogger(cmd.OutOrStdout(), settings.Verbose)

		loader, closeLoader := newPageLoader(settings)
		defer closeLoader()
		scraper := tools.NewWowAuctionsScraper(config.WowAuctionsBaseURL, settings.Server, settings.Realm, settings.Faction, loader)

		return run(cmd.Context(), cmd.OutOrStdout(), settings, scraper, time.Now)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "Config file (default: wowarb.yaml in . or ./config)")
	config.RegisterFlags(rootCmd.Flags())
}

func newPageLoader(s *config.Settings) (tools.PageLoader, func()) {
	cfg := tools.DefaultClientConfig()
	cfg.Timeout = s.Timeout
	cfg.CloudflareBypass = s.CloudflareBypass

	if s.UseBrowser {
		browser := tools.NewBrowserLoader(cfg)
		return browser, browser.Close
	}
	return tools.NewHTTPLoader(cfg), func() {}
}

// run is the whole pipeline: item list -> snapshots -> opportunities -> report/export
func run(ctx context.Context, out io.Writer, s *config.Settings, fetcher tools.Fetcher, now func() time.Time) error {
	var (
		scanned   int
		snapshots []tools.PriceSnapshot
	)
	if s.FromSnapshots != "" {
		var err error
		snapshots, err = tools.RetrieveSnapshots(s.FromSnapshots)
		if err != nil {
			return err
		}
		scanned = len(snapshots)
		fmt.Fprintf(out, "Loaded %d snapshots from %s\n", len(snapshots), s.FromSnapshots)
	} else {
		items, err := tools.LoadItems(s.ItemsFile)
		if errors.Is(err, tools.ErrItemDatabaseNotFound) {
			fmt.Fprintf(out, "Error: Item database not found at %s\n", s.ItemsFile)
			fmt.Fprintln(out, `Please create items.json with format: [[item_id, "Item Name"], ...]`)
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			fmt.Fprintln(out, `Please check items.json has the format: [[item_id, "Item Name"], ...]`)
			return nil
		}

		fmt.Fprintf(out, "Loaded %d items to scan\n", len(items))
		fmt.Fprintf(out, "Server: %s, Realm: %s, Faction: %s\n\n", s.Server, s.Realm, s.Faction)

		scanned = len(items)
		snapshots = ScanAll(ctx, fetcher, items, s.Delay)
		fmt.Fprintf(out, "\nFound %d items with active listings\n", len(snapshots))

		if s.SnapshotsFile != "" {
			if err := tools.StoreSnapshots(s.SnapshotsFile, snapshots); err != nil {
				return err
			}
			slog.Info("stored snapshots", "path", s.SnapshotsFile, "count", len(snapshots))
		}
	}

	opportunities := Analyze(snapshots, DetectorParams{
		MinProfit:         s.MinProfit,
		DiscountThreshold: s.MarketThreshold,
		AHCut:             s.AuctionHouseCut,
	})
	fmt.Fprintf(out, "Found %d arbitrage opportunities\n\n", len(opportunities))

	PrintReport(out, opportunities, now(), s.Limit)

	textPath, err := tools.ExportOpportunities(opportunities, s.OutputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nExported %d opportunities to %s and %s\n", len(opportunities), s.OutputFile, textPath)

	if s.ChartFile != "" && len(opportunities) > 0 {
		if err := tools.SaveProfitChart(s.ChartFile, opportunities, s.Limit); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved profit chart to %s\n", s.ChartFile)
	}

	PrintSummary(out, scanned, len(snapshots), opportunities)
	return nil
}

// Returns a context that will live until Ctrl+C is pressed
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func main() {
	ctx, cancel := signalContext()
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}
