package tools

/*
Writes the opportunity exports: a JSON list and a plain text list for the Aux addon search box
*/

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"wowarbitrage/copper"
)

type candidateRecord struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Type                 string  `json:"type"`
	CurrentPrice         int     `json:"current_price"`
	TargetPrice          int     `json:"target_price"`
	Profit               int     `json:"profit"`
	Quantity             int     `json:"quantity"`
	TotalPotentialProfit int     `json:"total_potential_profit"`
	ROI                  float64 `json:"roi"`
}

// TextPath swaps the extension of the JSON export for .txt
func TextPath(jsonPath string) string {
	return strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath)) + ".txt"
}

// ExportOpportunities writes both export files, preserving the order of opps.
// Returns the path of the text file.
func ExportOpportunities(opps []Opportunity, jsonPath string) (string, error) {
	records := make([]candidateRecord, 0, len(opps))
	for _, o := range opps {
		records = append(records, candidateRecord{
			ID:                   o.ItemID,
			Name:                 o.ItemName,
			Type:                 string(o.Kind),
			CurrentPrice:         o.CurrentPrice,
			TargetPrice:          o.TargetPrice,
			Profit:               o.ProfitPerItem,
			Quantity:             o.Quantity,
			TotalPotentialProfit: o.TotalPotentialProfit,
			ROI:                  o.ROIPercent,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}

	textPath := TextPath(jsonPath)
	if err := os.WriteFile(textPath, FormatAuxList(opps), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", textPath, err)
	}
	return textPath, nil
}

// FormatAuxList renders one "name (type: profit profit)" line per opportunity
func FormatAuxList(opps []Opportunity) []byte {
	var buf bytes.Buffer
	buf.WriteString("# Arbitrage Candidates - Search these in Aux\n")
	buf.WriteString("# Format: item_name (type: profit)\n\n")
	for _, o := range opps {
		fmt.Fprintf(&buf, "%s (%s: %s profit)\n", o.ItemName, o.Kind, copper.Format(o.ProfitPerItem))
	}
	return buf.Bytes()
}
