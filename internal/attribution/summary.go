package attribution

import "github.com/leadspring/attribution-go/internal/models"

// Summarize computes the global totals straight from the raw
// collections. It deliberately never sums the grouped rows: a record
// can appear under different keys in the source and ad groupings, and
// summing rows would double-count it. Summing raw collections cannot.
func Summarize(leads []models.Lead, deals []models.Deal, costs []models.Cost) models.Summary {
	var spend, revenue, directCost float64
	var dealsWon int
	for _, c := range costs {
		spend += c.Spend
	}
	for _, dl := range deals {
		if dl.Status != models.DealWon {
			continue
		}
		dealsWon++
		revenue += dl.Revenue
		directCost += dl.DirectCost
	}
	return models.Summary{
		TotalSpend:            round2(spend),
		TotalLeads:            len(leads),
		TotalDealsWon:         dealsWon,
		TotalRevenue:          round2(revenue),
		TotalDirectCost:       round2(directCost),
		AvgCostPerLead:        round2(safeDiv(spend, float64(len(leads)))),
		AvgCostPerAcquisition: round2(safeDiv(spend, float64(dealsWon))),
		TotalNetProfit:        round2(revenue - directCost - spend),
		TotalROAS:             round2(safeDiv(revenue, spend)),
	}
}
