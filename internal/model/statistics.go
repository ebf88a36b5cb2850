package model

// StatisticsResponse aggregates invoice totals across the whole history.
// Amounts are rounded to two decimals.
type StatisticsResponse struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalOrders     int64   `json:"totalOrders"`
	UniqueCustomers int64   `json:"uniqueCustomers"`
	TotalTax        float64 `json:"totalTax"`
	TotalTips       float64 `json:"totalTips"`
}
