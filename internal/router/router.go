package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	BrowseActivities(c *ginext.Context)
	GetActivity(c *ginext.Context)
	ListVenues(c *ginext.Context)
	GetVenue(c *ginext.Context)
	GetLanguage(c *ginext.Context)
	ToggleLanguage(c *ginext.Context)
	ListTranslations(c *ginext.Context)
	GetBookingState(c *ginext.Context)
	SelectItem(c *ginext.Context)
	OpenBookingForm(c *ginext.Context)
	SubmitBooking(c *ginext.Context)
	CancelBookingForm(c *ginext.Context)
	CloseBookingFlow(c *ginext.Context)
	ListOrders(c *ginext.Context)
	GetTicket(c *ginext.Context)
	AdminLogin(c *ginext.Context)
	AdminLogout(c *ginext.Context)
	CreateActivity(c *ginext.Context)
	DeleteActivity(c *ginext.Context)
	CreateVenue(c *ginext.Context)
	DeleteVenue(c *ginext.Context)
	Dashboard(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/activities", h.BrowseActivities)
		api.GET("/activities/:id", h.GetActivity)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)

		// Localization
		api.GET("/language", h.GetLanguage)
		api.POST("/language/toggle", h.ToggleLanguage)
		api.GET("/translations", h.ListTranslations)

		// Booking flow
		booking := api.Group("/booking")
		{
			booking.GET("", h.GetBookingState)
			booking.POST("/select", h.SelectItem)
			booking.POST("/form", h.OpenBookingForm)
			booking.POST("/submit", h.SubmitBooking)
			booking.POST("/cancel", h.CancelBookingForm)
			booking.POST("/close", h.CloseBookingFlow)
		}

		// Orders
		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id/ticket", h.GetTicket)

		// Back-office
		api.POST("/admin/login", h.AdminLogin)

		admin := api.Group("/admin", adminAuth)
		{
			admin.POST("/logout", h.AdminLogout)
			admin.POST("/activities", h.CreateActivity)
			admin.DELETE("/activities/:id", h.DeleteActivity)
			admin.POST("/venues", h.CreateVenue)
			admin.DELETE("/venues/:id", h.DeleteVenue)
			admin.GET("/dashboard", h.Dashboard)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
