package usecase

import (
	"math"
	"time"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
)

// chartStepDays is the sampling interval for dated chart series.
const chartStepDays = 3

// chartWindowDays is the half-width of the sampling window around a start
// date when no return date is chosen.
const chartWindowDays = 30

// chartSeries generates the price-trend series for a request. With a
// concrete start date it samples every 3 days across the chosen window (or
// a ±30 day window around the start date); without one it falls back to two
// canonical samples per calendar month (the 1st and the 15th), a fixed
// 24-point series spanning the year.
//
// Season classification uses the fixed calendar table and its fixed
// representative multipliers, never the per-destination taxonomy, and
// points are emitted in ascending calendar-date order. Prices here are
// per-person; the caller applies passenger scaling.
func (e *Engine) chartSeries(basePrice float64, req domain.AnalysisRequest, today time.Time) []domain.ChartPoint {
	// The duration used for return-date math and the one derived from the
	// user's end date must be the same value, computed once.
	durationDays := req.Duration.Avg()
	if req.StartDate != nil && req.EndDate != nil {
		durationDays = float64(ceilDays(*req.StartDate, *req.EndDate))
	}
	tripDays := roundDays(durationDays)

	if req.StartDate != nil {
		return e.datedSeries(basePrice, req, today, tripDays)
	}
	return e.monthlySeries(basePrice, req, today, tripDays)
}

// datedSeries samples every chartStepDays across the user's travel window.
func (e *Engine) datedSeries(basePrice float64, req domain.AnalysisRequest, today time.Time, tripDays int) []domain.ChartPoint {
	windowStart := timeutil.DateOnly(*req.StartDate)
	windowEnd := windowStart
	if req.EndDate != nil {
		windowEnd = timeutil.DateOnly(*req.EndDate)
	} else {
		windowStart = windowStart.AddDate(0, 0, -chartWindowDays)
		windowEnd = timeutil.DateOnly(*req.StartDate).AddDate(0, 0, chartWindowDays)
	}

	var points []domain.ChartPoint
	for cur := windowStart; !cur.After(windowEnd); cur = cur.AddDate(0, 0, chartStepDays) {
		season := domain.CalendarSeason(cur.Month())

		returnLabel := ""
		duration := 0
		if req.TripType == domain.TripRoundTrip && req.EndDate != nil {
			returnLabel = timeutil.FormatThaiShortDate(cur.AddDate(0, 0, tripDays))
			duration = tripDays
		}

		points = append(points, domain.ChartPoint{
			StartDate:  timeutil.FormatThaiShortDate(cur),
			ReturnDate: returnLabel,
			Price:      e.chartPrice(basePrice, season, cur, today, req.OneWay()),
			Season:     season,
			Duration:   duration,
		})
	}
	return points
}

// monthlySeries emits the fixed 24-point year-spanning fallback series.
func (e *Engine) monthlySeries(basePrice float64, req domain.AnalysisRequest, today time.Time, tripDays int) []domain.ChartPoint {
	year := today.Year()
	points := make([]domain.ChartPoint, 0, 24)

	for month := time.January; month <= time.December; month++ {
		season := domain.CalendarSeason(month)

		for _, day := range [2]int{1, 15} {
			start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

			returnLabel := ""
			duration := 0
			if !req.OneWay() {
				returnLabel = timeutil.FormatThaiShortDate(start.AddDate(0, 0, tripDays))
				duration = tripDays
			}

			points = append(points, domain.ChartPoint{
				StartDate:  timeutil.FormatThaiShortDate(start),
				ReturnDate: returnLabel,
				Price:      e.chartPrice(basePrice, season, start, today, req.OneWay()),
				Season:     season,
				Duration:   duration,
			})
		}
	}
	return points
}

// chartPrice prices one sampled travel date with the fixed chart season
// multiplier and the dynamic pricing factors.
func (e *Engine) chartPrice(basePrice float64, season domain.SeasonBand, travelDate, today time.Time, oneWay bool) int {
	price := basePrice * domain.ChartSeasonMultiplier(season) * PricingFactors(today, travelDate).Total
	if oneWay {
		price *= 0.5
	}
	return roundTHB(price)
}

// ceilDays returns the number of days between two dates, rounded up.
func ceilDays(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
