// Package http provides the HTTP handler layer for the flight price
// insight API. It handles request parsing, validation, response
// formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-deals/flight-price-insight-service/internal/adapter/http/response"
	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/usecase"
)

// FlightHandler handles HTTP requests for flight pricing endpoints.
type FlightHandler struct {
	dataSource usecase.DataSource
	stats      *usecase.StatsService
}

// NewFlightHandler creates a new FlightHandler.
func NewFlightHandler(ds usecase.DataSource, stats *usecase.StatsService) *FlightHandler {
	return &FlightHandler{
		dataSource: ds,
		stats:      stats,
	}
}

// AnalyzeFlights handles POST /api/v1/flights/analyze
//
// @Summary Analyze flight prices
// @Description Run a full price analysis for a route: season summaries, recommended travel window, shifted-date comparison and chart series
// @Tags flights
// @Accept json
// @Produce json
// @Param request body AnalyzeFlightsRequest true "Analysis criteria"
// @Success 200 {object} domain.FlightAnalysisResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/flights/analyze [post]
func (h *FlightHandler) AnalyzeFlights(c echo.Context) error {
	var req AnalyzeFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	domainReq := ToAnalysisRequest(&req)

	result, err := h.dataSource.AnalyzePrices(c.Request().Context(), domainReq)
	if err != nil {
		return h.handleError(c, err)
	}

	// Usage bookkeeping must never fail the analysis response.
	h.stats.RecordAnalysis(c.Request().Context(), domainReq, result)

	return response.AnalysisResult(c, result)
}

// FlightPrices handles POST /api/v1/flights/prices
//
// @Summary List flights for an airline
// @Description Generate the flight list for one airline on a route
// @Tags flights
// @Accept json
// @Produce json
// @Param request body FlightPricesRequest true "Flight list criteria"
// @Success 200 {array} domain.Flight
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Router /api/v1/flights/prices [post]
func (h *FlightHandler) FlightPrices(c echo.Context) error {
	var req FlightPricesRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	flights, err := h.dataSource.FlightPrices(c.Request().Context(), ToFlightListRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, flights)
}

// Airlines handles GET /api/v1/flights/airlines
//
// @Summary List known airlines
// @Tags flights
// @Produce json
// @Success 200 {array} AirlineDTO
// @Router /api/v1/flights/airlines [get]
func (h *FlightHandler) Airlines(c echo.Context) error {
	ids := domain.AllAirlineIDs()
	airlines := make([]AirlineDTO, 0, len(ids))
	for _, id := range ids {
		airlines = append(airlines, AirlineDTO{
			ID:   id,
			Name: domain.AirlineDisplayName(id),
		})
	}
	return response.OK(c, airlines)
}

// Destinations handles GET /api/v1/destinations
//
// @Summary List known destinations
// @Tags destinations
// @Produce json
// @Success 200 {array} domain.Destination
// @Router /api/v1/destinations [get]
func (h *FlightHandler) Destinations(c echo.Context) error {
	return response.OK(c, domain.Destinations())
}

// StatsSummary handles GET /api/v1/stats/summary
//
// @Summary Summarize usage statistics
// @Description Totals and most-searched fields cover the whole store; average price and trend honor the optional route filter
// @Tags stats
// @Produce json
// @Param origin query string false "Restrict average price and trend to this origin"
// @Param destination query string false "Restrict average price and trend to this destination"
// @Success 200 {object} usecase.StatsSummary
// @Failure 503 {object} response.ErrorDetail "Statistics store unavailable"
// @Router /api/v1/stats/summary [get]
func (h *FlightHandler) StatsSummary(c echo.Context) error {
	summary, err := h.stats.Summary(c.Request().Context(), c.QueryParam("origin"), c.QueryParam("destination"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, summary)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrDataSourceUnavailable) {
		return response.ServiceUnavailable(c)
	}

	if errors.Is(err, domain.ErrStatsUnavailable) {
		return response.StatsUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
