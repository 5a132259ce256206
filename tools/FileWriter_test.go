package tools

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleOpportunities() []Opportunity {
	return []Opportunity{
		{
			ItemID: 12360, ItemName: "Arcanite Bar", Kind: MarketFlip,
			CurrentPrice: 300000, TargetPrice: 520000, ProfitPerItem: 194000,
			Quantity: 3, TotalPotentialProfit: 582000, ROIPercent: 64.66666666666667,
		},
		{
			ItemID: 4338, ItemName: "Mageweave Cloth", Kind: VendorFlip,
			CurrentPrice: 500, TargetPrice: 2000, ProfitPerItem: 1500,
			Quantity: 3, TotalPotentialProfit: 4500, ROIPercent: 300,
		},
	}
}

func TestTextPath(t *testing.T) {
	require.Equal(t, "arbitrage_candidates.txt", TextPath("arbitrage_candidates.json"))
	require.Equal(t, filepath.Join("out", "run.txt"), TextPath(filepath.Join("out", "run.json")))
	require.Equal(t, "candidates.txt", TextPath("candidates"))
}

func TestExportOpportunities(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "arbitrage_candidates.json")

	textPath, err := ExportOpportunities(sampleOpportunities(), jsonPath)
	require.NoError(t, err)
	require.Equal(t, TextPath(jsonPath), textPath)

	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(raw, &records))
	require.Len(t, records, 2)
	require.Equal(t, "Arcanite Bar", records[0]["name"])
	require.Equal(t, "market", records[0]["type"])
	require.EqualValues(t, 194000, records[0]["profit"])
	require.EqualValues(t, 300000, records[0]["current_price"])
	require.EqualValues(t, 520000, records[0]["target_price"])
	require.Equal(t, "vendor", records[1]["type"])
	require.EqualValues(t, 300, records[1]["roi"])

	text, err := os.ReadFile(textPath)
	require.NoError(t, err)
	require.Equal(t, "# Arbitrage Candidates - Search these in Aux\n"+
		"# Format: item_name (type: profit)\n\n"+
		"Arcanite Bar (market: 19g 40s profit)\n"+
		"Mageweave Cloth (vendor: 15s profit)\n", string(text))
}

func TestExportOpportunitiesIdempotent(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "candidates.json")
	opps := sampleOpportunities()

	_, err := ExportOpportunities(opps, jsonPath)
	require.NoError(t, err)
	firstJSON, _ := os.ReadFile(jsonPath)
	firstText, _ := os.ReadFile(TextPath(jsonPath))

	_, err = ExportOpportunities(opps, jsonPath)
	require.NoError(t, err)
	secondJSON, _ := os.ReadFile(jsonPath)
	secondText, _ := os.ReadFile(TextPath(jsonPath))

	require.Equal(t, firstJSON, secondJSON)
	require.Equal(t, firstText, secondText)
}

func TestExportOpportunitiesEmpty(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "candidates.json")

	_, err := ExportOpportunities(nil, jsonPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(raw))
}

func TestExportOpportunitiesWriteFailure(t *testing.T) {
	_, err := ExportOpportunities(sampleOpportunities(), filepath.Join(t.TempDir(), "missing", "out.json"))
	require.Error(t, err)
}
