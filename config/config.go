package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"wowarbitrage/copper"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings is the resolved configuration for a single scan run.
type Settings struct {
	Server  string
	Realm   string
	Faction string

	ItemsFile     string
	OutputFile    string
	SnapshotsFile string
	FromSnapshots string // replays a --snapshots CSV instead of scanning
	ChartFile     string

	MinProfit        int
	MarketThreshold  float64
	AuctionHouseCut  float64
	Delay            time.Duration
	Timeout          time.Duration
	Limit            int
	UseBrowser       bool
	CloudflareBypass bool
	Verbose          bool
}

// Flag names, shared between the cobra command and viper keys.
const (
	KeyServer           = "server"
	KeyRealm            = "realm"
	KeyFaction          = "faction"
	KeyItems            = "items"
	KeyOutput           = "output"
	KeySnapshots        = "snapshots"
	KeyFromSnapshots    = "from-snapshots"
	KeyChart            = "chart"
	KeyMinProfit        = "min-profit"
	KeyMarketThreshold  = "market-threshold"
	KeyAuctionHouseCut  = "ah-cut"
	KeyDelay            = "delay"
	KeyTimeout          = "timeout"
	KeyLimit            = "limit"
	KeyBrowser          = "browser"
	KeyCloudflareBypass = "cloudflare-bypass"
	KeyVerbose          = "verbose"
)

// RegisterFlags declares every setting on the given flag set with its default.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyServer, DefaultServer, "Server name")
	flags.String(KeyRealm, DefaultRealm, "Realm name")
	flags.String(KeyFaction, DefaultFaction, "Faction (alliance/horde)")
	flags.String(KeyItems, ItemDatabaseFile, "Item database to scan ([[id, \"name\"], ...])")
	flags.String(KeyOutput, OutputFile, "Output file path")
	flags.String(KeySnapshots, "", "Optional CSV dump of every scanned price snapshot")
	flags.String(KeyFromSnapshots, "", "Analyze a CSV written by --snapshots instead of scanning the site")
	flags.String(KeyChart, "", "Optional PNG bar chart of the top opportunities")
	flags.String(KeyMinProfit, strconv.Itoa(MinProfit), "Minimum profit in copper or as 1g 5s 20c (default: 1000 = 10s)")
	flags.Float64(KeyMarketThreshold, MarketDiscountThreshold, "Buyout must be at or below this fraction of the average price")
	flags.Float64(KeyAuctionHouseCut, AuctionHouseCut, "Auction house cut deducted on resale")
	flags.Float64(KeyDelay, RequestDelay.Seconds(), "Delay between requests in seconds")
	flags.Duration(KeyTimeout, RequestTimeout, "Per-request timeout")
	flags.Int(KeyLimit, ReportLimit, "Number of opportunities shown in the console report")
	flags.Bool(KeyBrowser, false, "Load pages through headless Chrome instead of plain HTTP")
	flags.Bool(KeyCloudflareBypass, false, "Wrap the HTTP transport with a Cloudflare bypass")
	flags.BoolP(KeyVerbose, "v", false, "Enable debug logging")
}

// Load resolves settings with priority flags > env > config file > defaults.
// configFile may be empty, in which case wowarb.yaml is looked up in . and ./config
// and its absence is not an error.
func Load(configFile string, flags *pflag.FlagSet) (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	minProfit, err := copper.ParseAmount(v.GetString(KeyMinProfit))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %s: %w", KeyMinProfit, err)
	}

	s := &Settings{
		Server:           v.GetString(KeyServer),
		Realm:            v.GetString(KeyRealm),
		Faction:          v.GetString(KeyFaction),
		ItemsFile:        v.GetString(KeyItems),
		OutputFile:       v.GetString(KeyOutput),
		SnapshotsFile:    v.GetString(KeySnapshots),
		FromSnapshots:    v.GetString(KeyFromSnapshots),
		ChartFile:        v.GetString(KeyChart),
		MinProfit:        minProfit,
		MarketThreshold:  v.GetFloat64(KeyMarketThreshold),
		AuctionHouseCut:  v.GetFloat64(KeyAuctionHouseCut),
		Delay:            time.Duration(v.GetFloat64(KeyDelay) * float64(time.Second)),
		Timeout:          v.GetDuration(KeyTimeout),
		Limit:            v.GetInt(KeyLimit),
		UseBrowser:       v.GetBool(KeyBrowser),
		CloudflareBypass: v.GetBool(KeyCloudflareBypass),
		Verbose:          v.GetBool(KeyVerbose),
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}

// Default returns the settings used when nothing is overridden.
func Default() *Settings {
	return &Settings{
		Server:          DefaultServer,
		Realm:           DefaultRealm,
		Faction:         DefaultFaction,
		ItemsFile:       ItemDatabaseFile,
		OutputFile:      OutputFile,
		MinProfit:       MinProfit,
		MarketThreshold: MarketDiscountThreshold,
		AuctionHouseCut: AuctionHouseCut,
		Delay:           RequestDelay,
		Timeout:         RequestTimeout,
		Limit:           ReportLimit,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyServer, d.Server)
	v.SetDefault(KeyRealm, d.Realm)
	v.SetDefault(KeyFaction, d.Faction)
	v.SetDefault(KeyItems, d.ItemsFile)
	v.SetDefault(KeyOutput, d.OutputFile)
	v.SetDefault(KeyMinProfit, d.MinProfit)
	v.SetDefault(KeyMarketThreshold, d.MarketThreshold)
	v.SetDefault(KeyAuctionHouseCut, d.AuctionHouseCut)
	v.SetDefault(KeyDelay, d.Delay.Seconds())
	v.SetDefault(KeyTimeout, d.Timeout)
	v.SetDefault(KeyLimit, d.Limit)
}

// Validate rejects settings the detector or fetcher cannot work with.
func (s *Settings) Validate() error {
	switch {
	case s.Server == "" || s.Realm == "" || s.Faction == "":
		return errors.New("server, realm and faction are required")
	case s.MinProfit <= 0:
		return fmt.Errorf("min-profit must be positive, got %d", s.MinProfit)
	case s.MarketThreshold <= 0 || s.MarketThreshold > 1:
		return fmt.Errorf("market-threshold must be in (0, 1], got %v", s.MarketThreshold)
	case s.AuctionHouseCut < 0 || s.AuctionHouseCut >= 1:
		return fmt.Errorf("ah-cut must be in [0, 1), got %v", s.AuctionHouseCut)
	case s.Delay < 0:
		return fmt.Errorf("delay must not be negative, got %v", s.Delay)
	case s.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %v", s.Timeout)
	case s.Limit <= 0:
		return fmt.Errorf("limit must be positive, got %d", s.Limit)
	case s.ItemsFile == "" || s.OutputFile == "":
		return errors.New("items and output paths are required")
	}
	return nil
}
