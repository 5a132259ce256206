package tools

import (
	"fmt"
	"wowarbitrage/copper"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveProfitChart draws a bar chart of total potential profit (in gold) for the first limit opportunities
func SaveProfitChart(path string, opps []Opportunity, limit int) error {
	if limit > 0 && len(opps) > limit {
		opps = opps[:limit]
	}
	if len(opps) == 0 {
		return fmt.Errorf("no opportunities to chart")
	}

	values := make(plotter.Values, len(opps))
	names := make([]string, len(opps))
	for i, o := range opps {
		values[i] = float64(o.TotalPotentialProfit) / copper.PerGold
		names[i] = fmt.Sprintf("%s (%s)", o.ItemName, o.Kind)
	}

	p := plot.New()
	p.Title.Text = "Arbitrage opportunities"
	p.Y.Label.Text = "Total potential profit (gold)"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = -1

	width := vg.Length(len(opps))*vg.Points(40) + 2*vg.Inch
	if err := p.Save(width, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
