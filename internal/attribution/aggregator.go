package attribution

import (
	"sort"

	"github.com/leadspring/attribution-go/internal/models"
)

type accumulator struct {
	spend      float64
	leads      int
	dealsWon   int
	revenue    float64
	directCost float64
}

// Aggregate produces one attribution row per distinct grouping key for
// the given dimension. All state is local to the call; nothing is
// shared between the two per-report passes or across requests.
//
// A WON deal is attributed through its originating lead when the lead
// reference resolves; only then does it fall back to the deal's own
// attribution field, and only then to the unknown bucket. Changing that
// precedence changes revenue attribution outcomes, so keep it.
func Aggregate(leads []models.Lead, deals []models.Deal, costs []models.Cost, dim Dimension) []models.AttributionRow {
	accs := make(map[string]*accumulator)
	order := make([]string, 0)
	ensure := func(key string) *accumulator {
		a, ok := accs[key]
		if !ok {
			a = &accumulator{}
			accs[key] = a
			order = append(order, key)
		}
		return a
	}

	// Lead pass doubles as the index build: lead id -> grouping key,
	// so deal attribution below is a single map lookup instead of a
	// scan over every group.
	leadIndex := make(map[string]string, len(leads))
	for _, l := range leads {
		k := leadKey(l, dim)
		ensure(k).leads++
		if l.ID != "" {
			leadIndex[l.ID] = k
		}
	}

	// Spend joins by key only; cost records never count as leads.
	for _, c := range costs {
		ensure(costKey(c, dim)).spend += c.Spend
	}

	for _, dl := range deals {
		if dl.Status != models.DealWon {
			continue
		}
		key := ""
		if dl.LeadID != "" {
			key = leadIndex[dl.LeadID]
		}
		if key == "" {
			key = dealOwnKey(dl, dim)
		}
		a := ensure(key)
		a.dealsWon++
		a.revenue += dl.Revenue
		a.directCost += dl.DirectCost
	}

	rows := make([]models.AttributionRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, buildRow(key, accs[key]))
	}
	// Stable keeps insertion order on revenue ties, so output is
	// deterministic given deterministic input order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].GrossRevenue > rows[j].GrossRevenue
	})
	return rows
}

func buildRow(key string, a *accumulator) models.AttributionRow {
	return models.AttributionRow{
		Key:                key,
		TotalSpend:         round2(a.spend),
		TotalLeads:         a.leads,
		CostPerLead:        round2(safeDiv(a.spend, float64(a.leads))),
		TotalDealsWon:      a.dealsWon,
		CostPerAcquisition: round2(safeDiv(a.spend, float64(a.dealsWon))),
		ConversionRate:     round2(safeDiv(float64(a.dealsWon), float64(a.leads)) * 100),
		GrossRevenue:       round2(a.revenue),
		DirectCost:         round2(a.directCost),
		NetProfit:          round2(a.revenue - a.directCost - a.spend),
		ReturnOnAdSpend:    round2(safeDiv(a.revenue, a.spend)),
	}
}
