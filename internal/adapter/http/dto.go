// Package http provides the HTTP handler layer for the flight price
// insight API.
package http

import (
	"time"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
)

// ToAnalysisRequest converts a validated analysis request DTO to the
// domain request. Call only after Validate has succeeded.
func ToAnalysisRequest(r *AnalyzeFlightsRequest) domain.AnalysisRequest {
	req := domain.AnalysisRequest{
		Origin:      r.Origin,
		Destination: r.Destination,
		Duration: domain.DurationRange{
			Min: float64(r.DurationMin),
			Max: float64(r.DurationMax),
		},
		SelectedAirlines: r.SelectedAirlines,
		TripType:         domain.TripType(r.TripType),
		Passengers:       r.Passengers,
		StartDate:        parseOptionalDate(r.StartDate),
		EndDate:          parseOptionalDate(r.EndDate),
	}
	return req
}

// ToFlightListRequest converts a validated flight list request DTO to the
// domain request. Call only after Validate has succeeded.
func ToFlightListRequest(r *FlightPricesRequest) domain.FlightListRequest {
	return domain.FlightListRequest{
		AirlineID:   r.Airline,
		Origin:      r.Origin,
		Destination: r.Destination,
		StartDate:   parseOptionalDate(r.StartDate),
		EndDate:     parseOptionalDate(r.EndDate),
	}
}

// AirlineDTO is one entry of the airline catalogue response.
type AirlineDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// parseOptionalDate parses an already-validated YYYY-MM-DD value.
func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
