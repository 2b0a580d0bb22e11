package response

import (
	"scratch-win/internal/usecase/queries"
)

type PrizeCountEntry struct {
	Prize string `json:"prize"`
	Count int64  `json:"count"`
}

type PlayStatsResponse struct {
	TotalPlays        int64             `json:"totalPlays"`
	PrizeDistribution []PrizeCountEntry `json:"prizeDistribution"`
}

func FromPlayStats(v *queries.PlayStatsView) *PlayStatsResponse {
	distribution := make([]PrizeCountEntry, len(v.Distribution))
	for i, d := range v.Distribution {
		distribution[i] = PrizeCountEntry{Prize: d.PrizeName, Count: d.Count}
	}
	return &PlayStatsResponse{
		TotalPlays:        v.TotalPlays,
		PrizeDistribution: distribution,
	}
}

type EligibilityEntry struct {
	IsEligible  bool    `json:"isEligible"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

type ProductSalesEntry struct {
	Name             string `json:"name"`
	TotalQuantity    int64  `json:"totalQuantity"`
	OrdersContaining int64  `json:"ordersContaining"`
}

type DailySalesEntry struct {
	Date    string  `json:"date"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type SalesStatsResponse struct {
	TotalOrders  int64               `json:"totalOrders"`
	TotalRevenue float64             `json:"totalRevenue"`
	Eligibility  []EligibilityEntry  `json:"eligibility"`
	Products     []ProductSalesEntry `json:"products"`
	Daily        []DailySalesEntry   `json:"daily"`
}

func FromSalesStats(v *queries.SalesStatsView) *SalesStatsResponse {
	eligibility := make([]EligibilityEntry, len(v.EligibilityBreakdown))
	for i, b := range v.EligibilityBreakdown {
		eligibility[i] = EligibilityEntry{IsEligible: b.IsEligible, Count: b.Count, TotalAmount: b.TotalAmount}
	}
	products := make([]ProductSalesEntry, len(v.ProductBreakdown))
	for i, p := range v.ProductBreakdown {
		products[i] = ProductSalesEntry{Name: p.ProductName, TotalQuantity: p.TotalQuantity, OrdersContaining: p.OrdersContaining}
	}
	daily := make([]DailySalesEntry, len(v.DailySales))
	for i, d := range v.DailySales {
		daily[i] = DailySalesEntry{Date: d.Date.Format("2006-01-02"), Orders: d.Orders, Revenue: d.Revenue}
	}
	return &SalesStatsResponse{
		TotalOrders:  v.TotalOrders,
		TotalRevenue: v.TotalRevenue,
		Eligibility:  eligibility,
		Products:     products,
		Daily:        daily,
	}
}
