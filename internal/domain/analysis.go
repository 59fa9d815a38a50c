package domain

import (
	"fmt"
	"time"
)

// TripType distinguishes one-way from round-trip searches.
type TripType string

// Supported trip types. An empty TripType is treated as round-trip.
const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// DurationRange is the acceptable trip length in days. It is always present
// in a request; for one-way trips it only backs date-arithmetic defaults.
type DurationRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Avg returns the midpoint trip duration in days.
func (d DurationRange) Avg() float64 {
	return (d.Min + d.Max) / 2
}

// Label formats the range for statistics grouping (e.g. "5-7 วัน").
func (d DurationRange) Label() string {
	if d.Min == d.Max {
		return fmt.Sprintf("%g วัน", d.Min)
	}
	return fmt.Sprintf("%g-%g วัน", d.Min, d.Max)
}

// AnalysisRequest carries the parameters of a price analysis.
type AnalysisRequest struct {
	// Origin is the departure place identifier (e.g. "bangkok")
	Origin string

	// Destination is the arrival place identifier (e.g. "chiang-mai")
	Destination string

	// Duration is the acceptable trip length range in days
	Duration DurationRange

	// SelectedAirlines restricts recommended-price derivation to these
	// airline identifiers. Empty means no filter: the engine falls back to
	// the default carrier with an unweighted band-average price.
	SelectedAirlines []string

	// StartDate is the user's chosen departure date, if any
	StartDate *time.Time

	// EndDate is the user's chosen return date, if any
	EndDate *time.Time

	// TripType is one-way or round-trip (empty defaults to round-trip)
	TripType TripType

	// Passengers multiplies every emitted price (default 1)
	Passengers int
}

// OneWay reports whether the request is for a one-way trip.
func (r *AnalysisRequest) OneWay() bool {
	return r.TripType == TripOneWay
}

// SetDefaults applies default values to empty optional fields. A
// non-positive passenger count is clamped to 1 so a caller error can never
// zero out every price.
func (r *AnalysisRequest) SetDefaults() {
	if r.Passengers < 1 {
		r.Passengers = 1
	}
	if r.TripType == "" {
		r.TripType = TripRoundTrip
	}
}

// Validate checks the request for caller errors. Unknown routes and
// destinations are not errors (they fall back to default tables); only
// structurally invalid input is rejected.
func (r *AnalysisRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if r.Duration.Min < 0 || r.Duration.Max < 0 {
		return fmt.Errorf("%w: durationRange must not be negative", ErrInvalidRequest)
	}
	if r.Duration.Min > r.Duration.Max {
		return fmt.Errorf("%w: durationRange min %g exceeds max %g", ErrInvalidRequest, r.Duration.Min, r.Duration.Max)
	}
	if r.TripType != "" && r.TripType != TripOneWay && r.TripType != TripRoundTrip {
		return fmt.Errorf("%w: tripType must be one-way or round-trip, got %q", ErrInvalidRequest, r.TripType)
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return fmt.Errorf("%w: endDate precedes startDate", ErrInvalidRequest)
	}
	return nil
}

// PriceRange is a rounded min/max price pair in THB.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BestDeal is the minimum price found among candidate airlines for a
// season, with the airline that achieves it and the canonical date range.
type BestDeal struct {
	Dates   string `json:"dates"`
	Price   int    `json:"price"`
	Airline string `json:"airline"`
}

// SeasonSummary is one season card: the band, its months, the base-price
// range, the best deal, and a description.
type SeasonSummary struct {
	Type        SeasonBand `json:"type"`
	Months      []string   `json:"months"`
	PriceRange  PriceRange `json:"priceRange"`
	BestDeal    BestDeal   `json:"bestDeal"`
	Description string     `json:"description"`
}

// RecommendedPeriod is the engine's single best-value travel window.
type RecommendedPeriod struct {
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	ReturnDate string     `json:"returnDate"`
	Price      int        `json:"price"`
	Airline    string     `json:"airline"`
	Season     SeasonBand `json:"season"`
	Savings    int        `json:"savings"`
}

// PriceShift is one side of the before/after comparison: the shifted travel
// window, its absolute price, and the signed delta versus the recommended
// price.
type PriceShift struct {
	Date       string `json:"date"`
	Price      int    `json:"price"`
	Difference int    `json:"difference"`
	Percentage int    `json:"percentage"`
}

// PriceComparison contrasts travelling 7 days earlier or later than the
// recommended start date.
type PriceComparison struct {
	IfGoBefore PriceShift `json:"ifGoBefore"`
	IfGoAfter  PriceShift `json:"ifGoAfter"`
}

// ChartPoint is one sampled point of the price-trend series.
type ChartPoint struct {
	StartDate  string     `json:"startDate"`
	ReturnDate string     `json:"returnDate"`
	Price      int        `json:"price"`
	Season     SeasonBand `json:"season"`
	Duration   int        `json:"duration"`
}

// FlightAnalysisResult is the engine's output aggregate. It is constructed
// fresh on every analysis, never mutated, and never persisted (only a
// price/season/airline summary is appended to the statistics store).
type FlightAnalysisResult struct {
	RecommendedPeriod RecommendedPeriod `json:"recommendedPeriod"`
	Seasons           []SeasonSummary   `json:"seasons"`
	PriceComparison   PriceComparison   `json:"priceComparison"`
	PriceChartData    []ChartPoint      `json:"priceChartData"`
}
