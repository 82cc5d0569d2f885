package dto

import (
	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/service"
)

// Organizer contact shown on every ticket.
const (
	OrganizerPhone  = "138-0000-0000"
	OrganizerWeChat = "kaiyan_admin"
)

type ActivityResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Cover          string   `json:"cover"`
	Price          float64  `json:"price"`
	AgeRange       string   `json:"age_range"`
	RemainingSlots int      `json:"remaining_slots"`
	Rating         float64  `json:"rating"`
	Theme          string   `json:"theme"`
	Duration       string   `json:"duration"`
	Itinerary      []string `json:"itinerary"`
	Description    string   `json:"description"`
}

type VenueResponse struct {
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

type OrderResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	ItemID      string  `json:"item_id"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	UserName    string  `json:"user_name"`
	UserPhone   string  `json:"user_phone"`
	BookingTime string  `json:"booking_time"`
}

// TicketResponse is the read-only formatted presentation of one order.
type TicketResponse struct {
	Order           OrderResponse `json:"order"`
	StatusLabel     string        `json:"status_label"`
	OrganizerPhone  string        `json:"organizer_phone"`
	OrganizerWeChat string        `json:"organizer_wechat"`
}

type FlowResponse struct {
	State      string        `json:"state"`
	Screen     domain.Screen `json:"screen"`
	ItemType   string        `json:"item_type,omitempty"`
	ItemID     string        `json:"item_id,omitempty"`
	ItemTitle  string        `json:"item_title,omitempty"`
	ItemAmount float64       `json:"item_amount,omitempty"`
	Date       string        `json:"date,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type LanguageResponse struct {
	Language string `json:"language"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID,
		Title:          a.Title,
		Cover:          a.Cover,
		Price:          a.Price,
		AgeRange:       a.AgeRange,
		RemainingSlots: a.RemainingSlots,
		Rating:         a.Rating,
		Theme:          string(a.Theme),
		Duration:       a.Duration,
		Itinerary:      a.Itinerary,
		Description:    a.Description,
	}
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:           v.ID,
		Name:         v.Name,
		Type:         v.Type,
		Capacity:     v.Capacity,
		Facilities:   v.Facilities,
		Image:        v.Image,
		PricePerHour: v.PricePerHour,
		IsAvailable:  v.IsAvailable,
		Address:      v.Address,
	}
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		Type:        string(o.Type),
		ItemID:      o.ItemID,
		Title:       o.Title,
		Amount:      o.Amount,
		Date:        o.Date,
		Status:      string(o.Status),
		UserName:    o.UserName,
		UserPhone:   o.UserPhone,
		BookingTime: o.BookingTime,
	}
}

func ToTicketResponse(o *domain.Order, statusLabel string) TicketResponse {
	return TicketResponse{
		Order:           ToOrderResponse(o),
		StatusLabel:     statusLabel,
		OrganizerPhone:  OrganizerPhone,
		OrganizerWeChat: OrganizerWeChat,
	}
}

func ToFlowResponse(f *service.FlowSnapshot) FlowResponse {
	return FlowResponse{
		State:      string(f.State),
		Screen:     f.Screen,
		ItemType:   string(f.ItemType),
		ItemID:     f.ItemID,
		ItemTitle:  f.ItemTitle,
		ItemAmount: f.ItemAmount,
		Date:       f.Date,
	}
}
