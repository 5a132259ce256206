package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("", newFlags(t))
	require.NoError(t, err)
	require.Equal(t, Default(), s)
	require.Equal(t, 500*time.Millisecond, s.Delay)
	require.Equal(t, "arbitrage_candidates.json", s.OutputFile)
	require.Equal(t, 1000, s.MinProfit)
}

func TestLoadFlags(t *testing.T) {
	s, err := Load("", newFlags(t,
		"--server", "kronos",
		"--faction", "horde",
		"--min-profit", "2500",
		"--delay", "1.5",
		"--output", "out.json",
		"--browser",
	))
	require.NoError(t, err)
	require.Equal(t, "kronos", s.Server)
	require.Equal(t, DefaultRealm, s.Realm)
	require.Equal(t, "horde", s.Faction)
	require.Equal(t, 2500, s.MinProfit)
	require.Equal(t, 1500*time.Millisecond, s.Delay)
	require.Equal(t, "out.json", s.OutputFile)
	require.True(t, s.UseBrowser)
}

func TestLoadEnvAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wowarb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("realm: ambershire\nmin-profit: 3000\nah-cut: 0.1\n"), 0644))
	t.Setenv("WOWARB_MIN_PROFIT", "4000")

	s, err := Load(path, newFlags(t))
	require.NoError(t, err)
	require.Equal(t, "ambershire", s.Realm)
	require.Equal(t, 4000, s.MinProfit, "env overrides config file")
	require.Equal(t, 0.1, s.AuctionHouseCut)

	s, err = Load(path, newFlags(t, "--min-profit", "5000"))
	require.NoError(t, err)
	require.Equal(t, 5000, s.MinProfit, "flags override env")
}

func TestLoadMinProfitNotation(t *testing.T) {
	s, err := Load("", newFlags(t, "--min-profit", "10s"))
	require.NoError(t, err)
	require.Equal(t, 1000, s.MinProfit)

	t.Setenv("WOWARB_MIN_PROFIT", "1g 5s")
	s, err = Load("", newFlags(t))
	require.NoError(t, err)
	require.Equal(t, 10500, s.MinProfit)

	_, err = Load("", newFlags(t, "--min-profit", "ten silver"))
	require.ErrorContains(t, err, "min-profit")
}

func TestLoadFromSnapshots(t *testing.T) {
	s, err := Load("", newFlags(t, "--from-snapshots", "dump.csv"))
	require.NoError(t, err)
	require.Equal(t, "dump.csv", s.FromSnapshots)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), newFlags(t))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []func(s *Settings){
		func(s *Settings) { s.MinProfit = 0 },
		func(s *Settings) { s.MarketThreshold = 1.5 },
		func(s *Settings) { s.MarketThreshold = 0 },
		func(s *Settings) { s.AuctionHouseCut = 1 },
		func(s *Settings) { s.Delay = -time.Second },
		func(s *Settings) { s.Timeout = 0 },
		func(s *Settings) { s.Limit = 0 },
		func(s *Settings) { s.Realm = "" },
		func(s *Settings) { s.OutputFile = "" },
	}

	require.NoError(t, Default().Validate())
	for i, mutate := range testCases {
		s := Default()
		mutate(s)
		require.Error(t, s.Validate(), "case %d", i)
	}
}
