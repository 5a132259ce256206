package tools

/*
Tallies what it would take to act on a list of opportunities.
An item's stack can only be bought and resold once, so each item counts
with its first (most profitable) opportunity only.
*/

type TradeSimulator struct {
	CopperSpent     int
	PotentialProfit int
	Portfolio       map[int]Opportunity
	order           []int
}

// Constructor
func NewTradeSimulator() *TradeSimulator {
	return &TradeSimulator{
		Portfolio: make(map[int]Opportunity),
	}
}

// Buy the full listed stack behind an opportunity. Returns false if the item was already bought.
func (ts *TradeSimulator) BuyItem(o Opportunity) bool {
	if _, owned := ts.Portfolio[o.ItemID]; owned {
		return false
	}
	ts.Portfolio[o.ItemID] = o
	ts.order = append(ts.order, o.ItemID)
	ts.CopperSpent += o.CurrentPrice * o.Quantity
	ts.PotentialProfit += o.TotalPotentialProfit
	return true
}

// Get bought items in purchase order
func (ts *TradeSimulator) GetPortfolio() []Opportunity {
	out := make([]Opportunity, 0, len(ts.order))
	for _, id := range ts.order {
		out = append(out, ts.Portfolio[id])
	}
	return out
}

// ROI over the whole portfolio, 0 when nothing was bought
func (ts *TradeSimulator) ROIPercent() float64 {
	if ts.CopperSpent == 0 {
		return 0
	}
	return float64(ts.PotentialProfit) / float64(ts.CopperSpent) * 100
}
