package main

import (
	"math"
	"slices"
	"wowarbitrage/config"
	"wowarbitrage/tools"
)

/*
Detects auction house arbitrage: items listed below what a vendor pays for them,
and items listed far enough below their market average to relist for profit.
*/

// DetectorParams are the thresholds applied by Analyze
type DetectorParams struct {
	MinProfit         int     //Copper per item
	DiscountThreshold float64 //Buyout must be <= avg * threshold
	AHCut             float64 //Fraction of the resale kept by the auction house
}

func DefaultDetectorParams() DetectorParams {
	return DetectorParams{
		MinProfit:         config.MinProfit,
		DiscountThreshold: config.MarketDiscountThreshold,
		AHCut:             config.AuctionHouseCut,
	}
}

func roiPercent(profit int, cost int) float64 {
	if cost <= 0 {
		return 0
	}
	return float64(profit) / float64(cost) * 100
}

func newOpportunity(s tools.PriceSnapshot, kind tools.OpportunityKind, target int, profit int) *tools.Opportunity {
	return &tools.Opportunity{
		ItemID:               s.ItemID,
		ItemName:             s.ItemName,
		Kind:                 kind,
		CurrentPrice:         s.MinBuyout,
		TargetPrice:          target,
		ProfitPerItem:        profit,
		Quantity:             s.Quantity,
		TotalPotentialProfit: profit * s.Quantity,
		ROIPercent:           roiPercent(profit, s.MinBuyout),
		LastSeen:             s.LastSeen,
	}
}

// Buy off the auction house, sell to a vendor
func DetectVendorFlip(s tools.PriceSnapshot, minProfit int) *tools.Opportunity {
	if s.VendorPrice <= 0 || s.MinBuyout <= 0 {
		return nil
	}

	profit := s.VendorPrice - s.MinBuyout
	if profit <= 0 || profit < minProfit {
		return nil
	}
	return newOpportunity(s, tools.VendorFlip, s.VendorPrice, profit)
}

// Buy well below the market average, relist at the average minus the AH cut
func DetectMarketFlip(s tools.PriceSnapshot, minProfit int, discountThreshold float64, ahCut float64) *tools.Opportunity {
	if s.AvgPrice == nil || *s.AvgPrice <= 0 || s.MinBuyout <= 0 {
		return nil
	}
	avg := *s.AvgPrice

	//Only consider listings discounted past the threshold
	if float64(s.MinBuyout) > float64(avg)*discountThreshold {
		return nil
	}

	netResale := float64(avg) * (1 - ahCut)
	profit := int(math.Floor(netResale - float64(s.MinBuyout)))
	if profit <= 0 || profit < minProfit {
		return nil
	}
	return newOpportunity(s, tools.MarketFlip, avg, profit)
}

// Runs both detectors over every snapshot, most total profit first.
// Ties keep the order in which they were found.
func Analyze(snapshots []tools.PriceSnapshot, params DetectorParams) []tools.Opportunity {
	var opportunities []tools.Opportunity

	for _, s := range snapshots {
		if opp := DetectVendorFlip(s, params.MinProfit); opp != nil {
			opportunities = append(opportunities, *opp)
		}
		if opp := DetectMarketFlip(s, params.MinProfit, params.DiscountThreshold, params.AHCut); opp != nil {
			opportunities = append(opportunities, *opp)
		}
	}

	slices.SortStableFunc(opportunities, func(a, b tools.Opportunity) int {
		switch {
		case a.TotalPotentialProfit > b.TotalPotentialProfit:
			return -1
		case a.TotalPotentialProfit < b.TotalPotentialProfit:
			return 1
		}
		return 0
	})
	return opportunities
}
