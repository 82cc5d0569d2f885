package handler

import (
	"net/http"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/handler/dto"
	"github.com/1739467001-svg/kaiyan/internal/service"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetBookingState(c *ginext.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	flow, err := h.bookingService.State(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowResponse(flow))
}

func (h *Handler) SelectItem(c *ginext.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req dto.SelectItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	flow, err := h.bookingService.Select(c.Request.Context(), sessionID, domain.OrderType(req.Type), req.ItemID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowResponse(flow))
}

func (h *Handler) OpenBookingForm(c *ginext.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	flow, err := h.bookingService.OpenForm(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowResponse(flow))
}

func (h *Handler) SubmitBooking(c *ginext.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req dto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.bookingService.Submit(c.Request.Context(), sessionID, service.SubmitBookingInput{
		Name:  req.Name,
		Phone: req.Phone,
		Date:  req.Date,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) CancelBookingForm(c *ginext.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	flow, err := h.bookingService.CancelForm(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowResponse(flow))
}

func (h *Handler) CloseBookingFlow(c *ginext.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	flow, err := h.bookingService.Close(c.Request.Context(), sessionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowResponse(flow))
}

// Orders

func (h *Handler) ListOrders(c *ginext.Context) {
	orders, err := h.bookingService.Orders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

// GetTicket renders the formatted ticket view of one order: the order
// snapshot plus a localized status label and the organizer contact.
func (h *Handler) GetTicket(c *ginext.Context) {
	order, err := h.bookingService.OrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	statusLabel := h.localeService.Translate(c.Request.Context(), "status."+string(order.Status))

	c.JSON(http.StatusOK, dto.ToTicketResponse(order, statusLabel))
}
