package model

// StatusBreakdown is the share of orders in one status.
type StatusBreakdown struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MonthlyRevenue is revenue aggregated over one calendar month.
type MonthlyRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// TopProduct is a product ranked by total quantity ordered.
type TopProduct struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// AnalyticsReport is the admin dashboard summary.
type AnalyticsReport struct {
	TotalOrders       int               `json:"totalOrders"`
	TotalRevenue      float64           `json:"totalRevenue"`
	AverageOrderValue float64           `json:"averageOrderValue"`
	StatusBreakdown   []StatusBreakdown `json:"statusBreakdown"`
	MonthlyRevenue    []MonthlyRevenue  `json:"monthlyRevenue"`
	TopProducts       []TopProduct      `json:"topProducts"`
}
