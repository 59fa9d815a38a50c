package domain

import (
	"fmt"
	"time"
)

// Flight is a single synthetic flight leg generated for display in the
// per-airline flight list. Legs are generated on demand and never persisted.
type Flight struct {
	// Airline is the carrier's display name
	Airline string `json:"airline"`

	// FlightNumber is a synthetic flight number (e.g. "TH101")
	FlightNumber string `json:"flightNumber"`

	// DepartureTime is the local departure time as "HH:MM"
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local arrival time as "HH:MM"
	ArrivalTime string `json:"arrivalTime"`

	// Duration is the leg duration as "1h 15m"
	Duration string `json:"duration"`

	// Price is the rounded fare in THB
	Price int `json:"price"`

	// Date is the travel date as a Thai date label
	Date string `json:"date"`
}

// FlightListRequest carries the parameters of a flight-list generation.
type FlightListRequest struct {
	// AirlineID is the carrier identifier (e.g. "thai-airways")
	AirlineID string

	// Origin is the departure place identifier
	Origin string

	// Destination is the arrival place identifier
	Destination string

	// StartDate is the travel date, if chosen
	StartDate *time.Time

	// EndDate is the return date, if chosen (unused by generation, kept
	// for interface symmetry with the analysis request)
	EndDate *time.Time
}

// Validate checks the request for caller errors.
func (r *FlightListRequest) Validate() error {
	if r.AirlineID == "" {
		return fmt.Errorf("%w: airline is required", ErrInvalidRequest)
	}
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	return nil
}
