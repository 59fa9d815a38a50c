// Package http provides the HTTP handler layer for the flight price
// insight API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight price insight API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.POST("/analyze", h.AnalyzeFlights)
	flights.POST("/prices", h.FlightPrices)
	flights.GET("/airlines", h.Airlines)

	api.GET("/destinations", h.Destinations)
	api.GET("/stats/summary", h.StatsSummary)
}
