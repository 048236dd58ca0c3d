package models

// AnalyticsOverview is the dashboard stat-card payload. Counts and revenue are
// computed from the live collection; growth percentages are the static figures
// the dashboard ships with until real period-over-period data exists.
type AnalyticsOverview struct {
	TotalRestaurants  int     `json:"total_restaurants"`
	TotalGrowth       float64 `json:"total_growth"`
	ActiveRestaurants int     `json:"active_restaurants"`
	ActiveGrowth      float64 `json:"active_growth"`
	TotalRevenue      string  `json:"total_revenue"`
	RevenueGrowth     float64 `json:"revenue_growth"`
	TotalOrders       int     `json:"total_orders"`
	OrdersGrowth      float64 `json:"orders_growth"`
}

// RevenuePoint is one month of the revenue trend series
type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue string `json:"revenue"`
}

// TopRestaurant is one row of the top-performing table
type TopRestaurant struct {
	Name    string `json:"name"`
	Revenue string `json:"revenue"`
	Growth  string `json:"growth"`
}

// CategoryPerformance is one cuisine row of the category performance table
type CategoryPerformance struct {
	Name        string `json:"name"`
	Restaurants int    `json:"restaurants"`
	Revenue     string `json:"revenue"`
	Growth      string `json:"growth"`
}
