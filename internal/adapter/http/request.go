// Package http provides the HTTP handler layer for the flight price
// insight API. It handles request parsing, validation, and response
// formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// AnalyzeFlightsRequest represents the request body for price analysis.
type AnalyzeFlightsRequest struct {
	// Origin is the departure place identifier (e.g., "bangkok")
	Origin string `json:"origin"`

	// Destination is the arrival place identifier (e.g., "chiang-mai")
	Destination string `json:"destination"`

	// DurationMin is the shortest acceptable trip length in days
	DurationMin int `json:"durationMin"`

	// DurationMax is the longest acceptable trip length in days
	DurationMax int `json:"durationMax"`

	// SelectedAirlines restricts quoting to these airline identifiers.
	// Empty means no restriction.
	SelectedAirlines []string `json:"selectedAirlines,omitempty"`

	// StartDate is the chosen travel date in YYYY-MM-DD format (optional)
	StartDate string `json:"startDate,omitempty"`

	// EndDate is the chosen return date in YYYY-MM-DD format (optional)
	EndDate string `json:"endDate,omitempty"`

	// TripType is "round-trip" or "one-way" (defaults to round-trip)
	TripType string `json:"tripType,omitempty"`

	// Passengers is the number of passengers (1-9)
	Passengers int `json:"passengers"`
}

// FlightPricesRequest represents the request body for flight list generation.
type FlightPricesRequest struct {
	// Airline is the carrier identifier (e.g., "thai-airways")
	Airline string `json:"airline"`

	// Origin is the departure place identifier
	Origin string `json:"origin"`

	// Destination is the arrival place identifier
	Destination string `json:"destination"`

	// StartDate is the travel date in YYYY-MM-DD format (optional)
	StartDate string `json:"startDate,omitempty"`

	// EndDate is the return date in YYYY-MM-DD format (optional)
	EndDate string `json:"endDate,omitempty"`
}

// Validation regex patterns.
var (
	placeIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid trip types.
var validTripTypes = map[string]bool{
	"round-trip": true,
	"one-way":    true,
	"":           true, // Empty is valid (defaults to round-trip)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the analysis request and returns any validation errors.
func (r *AnalyzeFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	validatePlace(errs, "origin", &r.Origin)
	validatePlace(errs, "destination", &r.Destination)

	if r.Origin != "" && r.Destination != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	r.validateDuration(errs)
	r.validateDates(errs)
	r.validateAirlines(errs)
	r.validateTripType(errs)
	r.validatePassengers(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *AnalyzeFlightsRequest) validateDuration(errs *ValidationErrors) {
	if r.DurationMin < 1 {
		errs.Add("durationMin", "durationMin must be at least 1 day")
	}
	if r.DurationMax < 1 {
		errs.Add("durationMax", "durationMax must be at least 1 day")
	}
	if r.DurationMin >= 1 && r.DurationMax >= 1 && r.DurationMin > r.DurationMax {
		errs.Add("durationMax", "durationMax must be greater than or equal to durationMin")
	}
}

func (r *AnalyzeFlightsRequest) validateDates(errs *ValidationErrors) {
	start, startOK := validateDate(errs, "startDate", r.StartDate)
	end, endOK := validateDate(errs, "endDate", r.EndDate)

	if r.EndDate != "" && r.StartDate == "" {
		errs.Add("startDate", "startDate is required when endDate is given")
		return
	}
	if startOK && endOK && r.StartDate != "" && r.EndDate != "" && !end.After(start) {
		errs.Add("endDate", "endDate must be after startDate")
	}
}

func (r *AnalyzeFlightsRequest) validateAirlines(errs *ValidationErrors) {
	for i, airline := range r.SelectedAirlines {
		normalized := strings.ToLower(strings.TrimSpace(airline))
		if normalized == "" {
			errs.Add(fmt.Sprintf("selectedAirlines[%d]", i), "airline identifier must not be empty")
			continue
		}
		r.SelectedAirlines[i] = normalized
	}
}

func (r *AnalyzeFlightsRequest) validateTripType(errs *ValidationErrors) {
	if !validTripTypes[strings.ToLower(r.TripType)] {
		errs.Add("tripType", "tripType must be one of: round-trip, one-way")
	}
}

func (r *AnalyzeFlightsRequest) validatePassengers(errs *ValidationErrors) {
	if r.Passengers < 1 {
		errs.Add("passengers", "passengers must be at least 1")
		return
	}
	if r.Passengers > 9 {
		errs.Add("passengers", "passengers cannot exceed 9")
	}
}

// Validate validates the flight list request and returns any validation errors.
func (r *FlightPricesRequest) Validate() error {
	errs := &ValidationErrors{}

	validatePlace(errs, "airline", &r.Airline)
	validatePlace(errs, "origin", &r.Origin)
	validatePlace(errs, "destination", &r.Destination)

	if r.Origin != "" && r.Destination != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}

	validateDate(errs, "startDate", r.StartDate)
	validateDate(errs, "endDate", r.EndDate)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validatePlace checks a required identifier field and normalizes it to
// lowercase kebab-case in place.
func validatePlace(errs *ValidationErrors, field string, value *string) {
	if *value == "" {
		errs.Add(field, field+" is required")
		return
	}

	normalized := strings.ToLower(strings.TrimSpace(*value))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	if !placeIDPattern.MatchString(normalized) {
		errs.Add(field, field+" must be a lowercase identifier (e.g., \"chiang-mai\")")
		return
	}
	*value = normalized
}

// validateDate checks an optional YYYY-MM-DD field and returns the parsed
// date when present and well formed.
func validateDate(errs *ValidationErrors, field, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return time.Time{}, false
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return time.Time{}, false
	}
	return t, true
}
