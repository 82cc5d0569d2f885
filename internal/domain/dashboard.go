package domain

type DashboardStats struct {
	Revenue     string       `json:"revenue"`
	Signups     int          `json:"signups"`
	Utilization string       `json:"utilization"`
	Growth      string       `json:"growth"`
	Trend       []TrendPoint `json:"trend"`
}

type TrendPoint struct {
	Day     string  `json:"day"`
	Signups int     `json:"signups"`
	Revenue float64 `json:"revenue"`
}
