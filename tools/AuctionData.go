package tools

import "time"

/*
Data model shared by the scraper, detector and exporters.
All prices are in copper.
*/

// Item is one entry of the item database
type Item struct {
	ID   int
	Name string
}

// PriceSnapshot is the auction state of one item at scrape time
type PriceSnapshot struct {
	ItemID      int
	ItemName    string
	Quantity    int
	MinBuyout   int
	AvgPrice    *int //nil when the site has no market average
	VendorPrice int  //0 means the item cannot be sold to a vendor
	LastSeen    *time.Time
}

// Age returns how long ago the item was last observed, if known
func (s PriceSnapshot) Age(now time.Time) (time.Duration, bool) {
	if s.LastSeen == nil {
		return 0, false
	}
	age := now.Sub(*s.LastSeen)
	if age < 0 {
		age = 0
	}
	return age, true
}

type OpportunityKind string

const (
	VendorFlip OpportunityKind = "vendor"
	MarketFlip OpportunityKind = "market"
)

// Opportunity is a profitable buy found on the auction house
type Opportunity struct {
	ItemID               int
	ItemName             string
	Kind                 OpportunityKind
	CurrentPrice         int
	TargetPrice          int //vendor price or avg market price
	ProfitPerItem        int
	Quantity             int
	TotalPotentialProfit int
	ROIPercent           float64
	LastSeen             *time.Time
}

// Age returns how long ago the underlying listing was last observed, if known
func (o Opportunity) Age(now time.Time) (time.Duration, bool) {
	return PriceSnapshot{LastSeen: o.LastSeen}.Age(now)
}
