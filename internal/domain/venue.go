package domain

type Venue struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Capacity     int      `json:"capacity"`
	Facilities   []string `json:"facilities"`
	Image        string   `json:"image"`
	PricePerHour float64  `json:"price_per_hour"`
	IsAvailable  bool     `json:"is_available"`
	Address      string   `json:"address"`
}

type CreateVenueInput struct {
	Name         string
	Type         string
	Capacity     int
	PricePerHour float64
	// Facilities is the raw comma-delimited form value; the service
	// splits it into the stored sequence.
	Facilities string
	Address    string
}
