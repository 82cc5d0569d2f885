package dto

type SelectItemRequest struct {
	Type   string `json:"type" binding:"required,oneof=activity venue"`
	ItemID string `json:"item_id" binding:"required"`
}

type SubmitBookingRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Date  string `json:"date"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateActivityRequest struct {
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Theme       string  `json:"theme" binding:"required"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	AgeRange    string  `json:"age_range"`
}

type CreateVenueRequest struct {
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type"`
	Capacity     int     `json:"capacity" binding:"required,gt=0"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
	Facilities   string  `json:"facilities"`
	Address      string  `json:"address"`
}
