package handler

import (
	"net/http"

	"github.com/1739467001-svg/kaiyan/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// BrowseActivities filters by a case-insensitive title substring and
// a theme ("all" or empty matches every theme).
func (h *Handler) BrowseActivities(c *ginext.Context) {
	query := c.Query("query")
	theme := c.Query("theme")

	activities, err := h.catalogService.BrowseActivities(c.Request.Context(), query, theme)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, dto.ToActivityResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetActivity(c *ginext.Context) {
	activity, err := h.catalogService.GetActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.catalogService.ListVenues(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetVenue(c *ginext.Context) {
	venue, err := h.catalogService.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

// Language / translations

func (h *Handler) GetLanguage(c *ginext.Context) {
	lang := h.localeService.Language(c.Request.Context())
	c.JSON(http.StatusOK, dto.LanguageResponse{Language: string(lang)})
}

// ToggleLanguage flips zh<->en and reseeds the catalog with the new
// language's dataset.
func (h *Handler) ToggleLanguage(c *ginext.Context) {
	lang, err := h.localeService.Toggle(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LanguageResponse{Language: string(lang)})
}

func (h *Handler) ListTranslations(c *ginext.Context) {
	c.JSON(http.StatusOK, h.localeService.Translations(c.Request.Context()))
}
