package handler

import (
	"net/http"
	"strings"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AdminLogin(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.sessionService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

func (h *Handler) AdminLogout(c *ginext.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if err := h.sessionService.Exit(c.Request.Context(), token); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) CreateActivity(c *ginext.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	activity, err := h.catalogService.AddActivity(c.Request.Context(), domain.CreateActivityInput{
		Title:       req.Title,
		Price:       req.Price,
		Theme:       domain.ActivityTheme(req.Theme),
		Description: req.Description,
		Duration:    req.Duration,
		AgeRange:    req.AgeRange,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

// DeleteActivity removes by id; an absent id is a no-op.
func (h *Handler) DeleteActivity(c *ginext.Context) {
	if err := h.catalogService.RemoveActivity(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.catalogService.AddVenue(c.Request.Context(), domain.CreateVenueInput{
		Name:         req.Name,
		Type:         req.Type,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		Facilities:   req.Facilities,
		Address:      req.Address,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) DeleteVenue(c *ginext.Context) {
	if err := h.catalogService.RemoveVenue(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Dashboard(c *ginext.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
