package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yoavga19/barber/services/booking"
	"github.com/Yoavga19/barber/services/catalog"
)

// AvailabilityHandler serves the read-only calendar and catalog views.
type AvailabilityHandler struct {
	Svc     booking.BookingService
	Catalog *catalog.Catalog
}

func NewAvailabilityHandler(svc booking.BookingService, cat *catalog.Catalog) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Catalog: cat}
}

// GetAvailability handles GET /availability: date → ordered free times.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Availability())
}

// GetServices handles GET /services: the fixed price list.
func (h *AvailabilityHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.List())
}
