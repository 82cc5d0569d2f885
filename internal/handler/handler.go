package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/handler/dto"
	"github.com/1739467001-svg/kaiyan/internal/service"
	"github.com/wb-go/wbf/ginext"
)

// SessionIDHeader identifies the consumer client a booking flow
// belongs to.
const SessionIDHeader = "X-Session-ID"

type CatalogSvc interface {
	BrowseActivities(ctx context.Context, query, theme string) ([]*domain.Activity, error)
	GetActivity(ctx context.Context, id string) (*domain.Activity, error)
	ListVenues(ctx context.Context) ([]*domain.Venue, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	AddActivity(ctx context.Context, input domain.CreateActivityInput) (*domain.Activity, error)
	RemoveActivity(ctx context.Context, id string) error
	AddVenue(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	RemoveVenue(ctx context.Context, id string) error
}

type BookingSvc interface {
	Select(ctx context.Context, sessionID string, kind domain.OrderType, itemID string) (*service.FlowSnapshot, error)
	OpenForm(ctx context.Context, sessionID string) (*service.FlowSnapshot, error)
	Submit(ctx context.Context, sessionID string, input service.SubmitBookingInput) (*domain.Order, error)
	CancelForm(ctx context.Context, sessionID string) (*service.FlowSnapshot, error)
	Close(ctx context.Context, sessionID string) (*service.FlowSnapshot, error)
	State(ctx context.Context, sessionID string) (*service.FlowSnapshot, error)
	Orders(ctx context.Context) ([]*domain.Order, error)
	OrderByID(ctx context.Context, id string) (*domain.Order, error)
}

type SessionSvc interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	Exit(ctx context.Context, token string) error
}

type LocaleSvc interface {
	Language(ctx context.Context) domain.Language
	Toggle(ctx context.Context) (domain.Language, error)
	Translate(ctx context.Context, key string) string
	Translations(ctx context.Context) map[string]string
}

type DashboardSvc interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type Handler struct {
	catalogService   CatalogSvc
	bookingService   BookingSvc
	sessionService   SessionSvc
	localeService    LocaleSvc
	dashboardService DashboardSvc
}

func NewHandler(
	catalogService CatalogSvc,
	bookingService BookingSvc,
	sessionService SessionSvc,
	localeService LocaleSvc,
	dashboardService DashboardSvc,
) *Handler {
	return &Handler{
		catalogService:   catalogService,
		bookingService:   bookingService,
		sessionService:   sessionService,
		localeService:    localeService,
		dashboardService: dashboardService,
	}
}

func (h *Handler) sessionID(c *ginext.Context) (string, bool) {
	id := c.GetHeader(SessionIDHeader)
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + SessionIDHeader + " header"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrNoBookingFlow):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrFlowConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: h.localeService.Translate(c.Request.Context(), "login.error"),
		})

	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
