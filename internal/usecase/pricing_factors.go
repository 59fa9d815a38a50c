// Package usecase contains the deterministic synthetic pricing engine:
// pricing-factor calculation, price analysis, chart series generation,
// flight-list generation, and statistics aggregation.
package usecase

import (
	"time"

	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
)

// Factors is the composite dynamic pricing multiplier for one
// (bookingDate, travelDate) pair. The three component factors are
// independent and combine multiplicatively; nothing here is random, so the
// same pair of dates always yields the same factors.
//
// Component ranges: LeadTime [0.85, 1.30], DayOfWeek [1.00, 1.15],
// Holiday [1.00, 1.20]. Total therefore stays within [0.85, 1.794].
type Factors struct {
	LeadTime  float64 `json:"leadTime"`
	DayOfWeek float64 `json:"dayOfWeek"`
	Holiday   float64 `json:"holiday"`
	Total     float64 `json:"totalMultiplier"`
}

// leadTimeSteps maps minimum days of advance purchase to a multiplier.
// Booking earlier is never more expensive than booking later.
var leadTimeSteps = []struct {
	minDaysAhead int
	multiplier   float64
}{
	{90, 0.85},
	{60, 0.90},
	{30, 0.95},
	{14, 1.00},
	{7, 1.10},
	{3, 1.20},
}

// lastMinuteMultiplier applies under 3 days of lead time (and to travel
// dates already in the past, which price like same-day bookings).
const lastMinuteMultiplier = 1.30

// weekendMultiplier is the surcharge for high-demand departure days.
const weekendMultiplier = 1.15

// holidayMultiplier is the surcharge for travel near a configured holiday.
const holidayMultiplier = 1.20

// holidayProximityDays is the surcharge window around each holiday.
const holidayProximityDays = 3

// thaiHolidays lists fixed-date Thai holidays and festivals that drive
// fare surcharges.
var thaiHolidays = []struct {
	month time.Month
	day   int
}{
	{time.January, 1},   // New Year's Day
	{time.April, 13},    // Songkran
	{time.May, 1},       // Labour Day
	{time.July, 28},     // King's Birthday
	{time.August, 12},   // Mother's Day
	{time.December, 5},  // Father's Day
	{time.December, 31}, // New Year's Eve
}

// PricingFactors derives the composite dynamic pricing multiplier for a
// travel date booked on a given booking date. Pure and deterministic.
func PricingFactors(bookingDate, travelDate time.Time) Factors {
	f := Factors{
		LeadTime:  leadTimeFactor(timeutil.DaysBetween(bookingDate, travelDate)),
		DayOfWeek: dayOfWeekFactor(travelDate.Weekday()),
		Holiday:   holidayFactor(travelDate),
	}
	f.Total = f.LeadTime * f.DayOfWeek * f.Holiday
	return f
}

// leadTimeFactor returns the advance-purchase multiplier for the given
// number of days between booking and travel.
func leadTimeFactor(daysAhead int) float64 {
	for _, step := range leadTimeSteps {
		if daysAhead >= step.minDaysAhead {
			return step.multiplier
		}
	}
	return lastMinuteMultiplier
}

// dayOfWeekFactor surcharges weekend departures relative to midweek.
func dayOfWeekFactor(day time.Weekday) float64 {
	switch day {
	case time.Friday, time.Saturday, time.Sunday:
		return weekendMultiplier
	default:
		return 1.0
	}
}

// holidayFactor surcharges travel dates within the proximity window of a
// configured holiday. Each holiday is checked in the travel year and the
// adjacent years to handle windows spanning New Year.
func holidayFactor(travelDate time.Time) float64 {
	travel := timeutil.DateOnly(travelDate)
	for _, h := range thaiHolidays {
		for _, year := range [3]int{travel.Year() - 1, travel.Year(), travel.Year() + 1} {
			holiday := time.Date(year, h.month, h.day, 0, 0, 0, 0, time.UTC)
			days := timeutil.DaysBetween(holiday, travel)
			if days >= -holidayProximityDays && days <= holidayProximityDays {
				return holidayMultiplier
			}
		}
	}
	return 1.0
}
