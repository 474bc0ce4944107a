package models

type DealStatus string

const (
	DealOpen DealStatus = "OPEN"
	DealWon  DealStatus = "WON"
	DealLost DealStatus = "LOST"
)

// Lead is a marketing-generated contact as returned by the sales service.
type Lead struct {
	ID        string `json:"id"`
	UTMSource string `json:"utm_source,omitempty"`
	AdID      string `json:"ad_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Deal references its originating lead when the sales team linked one.
// Only WON deals contribute revenue and direct cost to any aggregate.
type Deal struct {
	ID         string     `json:"id"`
	LeadID     string     `json:"lead_id,omitempty"`
	UTMSource  string     `json:"utm_source,omitempty"`
	AdID       string     `json:"ad_id,omitempty"`
	Revenue    float64    `json:"revenue"`
	DirectCost float64    `json:"direct_cost"`
	Status     DealStatus `json:"status"`
	ClosedAt   string     `json:"closed_at,omitempty"`
}

// Cost is an ad-spend ledger entry; not tied to individual leads or deals.
type Cost struct {
	UTMSource string  `json:"utm_source,omitempty"`
	AdID      string  `json:"ad_id,omitempty"`
	Spend     float64 `json:"spend"`
	Date      string  `json:"date"`
}

// Filters is the query shape sent to both upstream services and the
// shape the report endpoint parses its query string into. StartDate and
// EndDate are always present; the router rejects requests without them.
type Filters struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	UTMSource string `json:"utmSource,omitempty"`
	AdID      string `json:"adId,omitempty"`
}

type AttributionRow struct {
	Key                string  `json:"key"`
	TotalSpend         float64 `json:"totalSpend"`
	TotalLeads         int     `json:"totalLeads"`
	CostPerLead        float64 `json:"costPerLead"`
	TotalDealsWon      int     `json:"totalDealsWon"`
	CostPerAcquisition float64 `json:"costPerAcquisition"`
	ConversionRate     float64 `json:"conversionRate"`
	GrossRevenue       float64 `json:"grossRevenue"`
	DirectCost         float64 `json:"directCost"`
	NetProfit          float64 `json:"netProfit"`
	ReturnOnAdSpend    float64 `json:"returnOnAdSpend"`
}

type Summary struct {
	TotalSpend            float64 `json:"totalSpend"`
	TotalLeads            int     `json:"totalLeads"`
	TotalDealsWon         int     `json:"totalDealsWon"`
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalDirectCost       float64 `json:"totalDirectCost"`
	AvgCostPerLead        float64 `json:"avgCostPerLead"`
	AvgCostPerAcquisition float64 `json:"avgCostPerAcquisition"`
	TotalNetProfit        float64 `json:"totalNetProfit"`
	TotalROAS             float64 `json:"totalRoas"`
}

type Report struct {
	Summary  Summary          `json:"summary"`
	BySource []AttributionRow `json:"bySource"`
	ByAd     []AttributionRow `json:"byAd"`
}
