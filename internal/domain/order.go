package domain

type OrderStatus string

const (
	OrderStatusPendingPayment       OrderStatus = "pending_payment"
	OrderStatusPendingParticipation OrderStatus = "pending_participation"
	OrderStatusCompleted            OrderStatus = "completed"
	OrderStatusCancelled            OrderStatus = "cancelled"
)

type OrderType string

const (
	OrderTypeActivity OrderType = "activity"
	OrderTypeVenue    OrderType = "venue"
)

// Order snapshots the booked item's title and price at creation time.
// Later catalog edits or language toggles never propagate into it.
type Order struct {
	ID          string      `json:"id"`
	Type        OrderType   `json:"type"`
	ItemID      string      `json:"item_id"`
	Title       string      `json:"title"`
	Amount      float64     `json:"amount"`
	Date        string      `json:"date"`
	Status      OrderStatus `json:"status"`
	UserName    string      `json:"user_name"`
	UserPhone   string      `json:"user_phone"`
	BookingTime string      `json:"booking_time"`
}
