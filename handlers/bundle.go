package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	Index           gin.HandlerFunc
	GetAvailability gin.HandlerFunc
	GetServices     gin.HandlerFunc
	BookAppointment gin.HandlerFunc
	AskAssistant    gin.HandlerFunc
}

// IndexHandler serves the static landing page.
func IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}
