package usecase

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
)

// comparisonShiftDays is the offset used for the "go before / go after"
// price comparison.
const comparisonShiftDays = 7

// Engine is the local deterministic price synthesis engine. It composes the
// static route/airline/season tables with the dynamic pricing factors to
// fabricate a complete analysis for any search request.
//
// All prices derive from the injected clock's "today", so two calls with
// identical arguments and a fixed clock produce identical results.
type Engine struct {
	clock timeutil.Clock
	log   zerolog.Logger
}

// NewEngine creates a price synthesis engine.
func NewEngine(clock timeutil.Clock, log zerolog.Logger) *Engine {
	return &Engine{clock: clock, log: log}
}

// quote is an internal per-person price quote for one airline.
type quote struct {
	airline string
	price   float64
}

// AnalyzePrices implements DataSource. It builds the three season
// summaries, picks the cheapest band as the recommended period, re-derives
// the recommended price from the resolved start date, computes the ±7 day
// comparison and the chart series, and scales every emitted price by the
// passenger count.
func (e *Engine) AnalyzePrices(_ context.Context, req domain.AnalysisRequest) (*domain.FlightAnalysisResult, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	today := timeutil.DateOnly(e.clock.Now())
	avgDuration := req.Duration.Avg()
	basePrice := domain.BasePrice(req.Origin, req.Destination, avgDuration)
	cfg := domain.SeasonConfigFor(req.Destination)
	pax := req.Passengers

	// Season cards are a global summary, so they always quote across all
	// carriers regardless of the caller's airline selection.
	allAirlines := domain.AllAirlineIDs()
	summaries := make([]domain.SeasonSummary, 0, len(domain.SeasonBands))
	bandQuotes := make(map[domain.SeasonBand]quote, len(domain.SeasonBands))

	for _, band := range domain.SeasonBands {
		bc := cfg.Band(band)
		dealDate := e.resolveTravelDate(req.StartDate, bc.BestDealDates, today)
		q := e.cheapestQuote(req.Origin, req.Destination, allAirlines, band, bc.PriceMultiplier, basePrice, today, dealDate)
		bandQuotes[band] = q

		months := make([]string, len(bc.Months))
		copy(months, bc.Months)

		summaries = append(summaries, domain.SeasonSummary{
			Type:   band,
			Months: months,
			PriceRange: domain.PriceRange{
				Min: roundTHB(basePrice*bc.PriceMultiplier.Min) * pax,
				Max: roundTHB(basePrice*bc.PriceMultiplier.Max) * pax,
			},
			BestDeal: domain.BestDeal{
				Dates:   bc.BestDealDates,
				Price:   roundTHB(q.price) * pax,
				Airline: q.airline,
			},
			Description: domain.SeasonDescription(band),
		})
	}

	// Recommended season: the band with the strictly lowest best-deal
	// price; ties keep the earlier band in enumeration order.
	bestBand := domain.SeasonBands[0]
	for _, band := range domain.SeasonBands[1:] {
		if bandQuotes[band].price < bandQuotes[bestBand].price {
			bestBand = band
		}
	}
	bestCfg := cfg.Band(bestBand)

	// Resolve the recommended window's concrete dates. When the user chose
	// both dates, their actual span overrides the duration-range midpoint.
	tripDays := roundDays(avgDuration)
	if req.StartDate != nil && req.EndDate != nil {
		tripDays = ceilDays(*req.StartDate, *req.EndDate)
	}
	var recStart, recEnd time.Time
	if req.StartDate != nil {
		recStart = timeutil.DateOnly(*req.StartDate)
		if req.EndDate != nil && req.TripType == domain.TripRoundTrip {
			recEnd = timeutil.DateOnly(*req.EndDate)
		} else {
			recEnd = recStart.AddDate(0, 0, tripDays)
		}
	} else {
		recStart = e.resolveTravelDate(nil, bestCfg.BestDealDates, today)
		recEnd = recStart.AddDate(0, 0, tripDays)
	}

	// Re-derive the recommended price from the actual start date's season
	// and pricing factors, restricted to the caller's airline selection.
	recSeason := domain.CalendarSeason(recStart.Month())
	recQuote := e.cheapestQuote(req.Origin, req.Destination, req.SelectedAirlines, recSeason,
		cfg.Band(recSeason).PriceMultiplier, basePrice, today, recStart)
	recPrice := recQuote.price
	if req.OneWay() {
		recPrice *= 0.5
	}
	recPerPerson := roundTHB(recPrice)

	// The shifted display ranges always span the duration-range midpoint,
	// even when the user's own dates cover a different number of days.
	compDays := roundDays(avgDuration)
	before := e.comparisonShift(req, cfg, basePrice, recStart, -comparisonShiftDays, compDays, recPrice, recPerPerson, today)
	after := e.comparisonShift(req, cfg, basePrice, recStart, comparisonShiftDays, compDays, recPrice, recPerPerson, today)

	chart := e.chartSeries(basePrice, req, today)
	for i := range chart {
		chart[i].Price *= pax
	}

	var startLabel, endLabel string
	if req.StartDate != nil {
		startLabel = timeutil.FormatThaiFullDate(recStart)
		endLabel = timeutil.FormatThaiFullDate(recEnd)
	} else {
		startLabel, endLabel = timeutil.SplitBestDealRange(bestCfg.BestDealDates)
	}

	highPerPerson := roundTHB(bandQuotes[domain.SeasonHigh].price)

	return &domain.FlightAnalysisResult{
		RecommendedPeriod: domain.RecommendedPeriod{
			StartDate:  startLabel,
			EndDate:    endLabel,
			ReturnDate: timeutil.FormatThaiFullDate(recEnd),
			Price:      recPerPerson * pax,
			Airline:    recQuote.airline,
			Season:     bestBand,
			Savings:    (highPerPerson - recPerPerson) * pax,
		},
		Seasons: summaries,
		PriceComparison: domain.PriceComparison{
			IfGoBefore: before,
			IfGoAfter:  after,
		},
		PriceChartData: chart,
	}, nil
}

// cheapestQuote computes the per-person price of each candidate airline for
// a season on a travel date and returns the cheapest. With no candidates it
// falls back to the default carrier priced at the unweighted band-average
// multiplier over the route base price.
//
// The band multiplier is asymmetric on purpose: low season quotes at the
// band's cheapest bound and high season at its steepest, so seasonal
// contrast stays visible even when base fares are close.
func (e *Engine) cheapestQuote(origin, destination string, airlines []string, band domain.SeasonBand,
	mult domain.MultiplierRange, basePrice float64, today, travelDate time.Time) quote {

	factors := PricingFactors(today, travelDate)

	if len(airlines) == 0 {
		return quote{
			airline: domain.DefaultAirlineName,
			price:   basePrice * mult.Mid() * factors.Total,
		}
	}

	best := quote{price: math.Inf(1)}
	for _, id := range airlines {
		price := domain.AirlineFare(origin, destination, id) * bandMultiplier(band, mult) * factors.Total
		if price < best.price {
			best = quote{airline: domain.AirlineDisplayName(id), price: price}
		}
	}
	return best
}

// bandMultiplier selects the representative multiplier for a band: the
// cheapest bound for low, the steepest for high, the midpoint for normal.
func bandMultiplier(band domain.SeasonBand, mult domain.MultiplierRange) float64 {
	switch band {
	case domain.SeasonLow:
		return mult.Min
	case domain.SeasonHigh:
		return mult.Max
	default:
		return mult.Mid()
	}
}

// comparisonShift prices the trip shifted by offsetDays from the
// recommended start, re-deriving season and pricing factors independently.
func (e *Engine) comparisonShift(req domain.AnalysisRequest, cfg domain.SeasonConfig, basePrice float64,
	recStart time.Time, offsetDays, tripDays int, recPrice float64, recPerPerson int, today time.Time) domain.PriceShift {

	start := recStart.AddDate(0, 0, offsetDays)
	end := start.AddDate(0, 0, tripDays)

	season := domain.CalendarSeason(start.Month())
	q := e.cheapestQuote(req.Origin, req.Destination, req.SelectedAirlines, season,
		cfg.Band(season).PriceMultiplier, basePrice, today, start)

	price := q.price
	if req.OneWay() {
		price *= 0.5
	}

	percentage := 0
	if recPrice != 0 {
		percentage = int(math.Round((price - recPrice) / recPrice * 100))
	}

	perPerson := roundTHB(price)
	return domain.PriceShift{
		Date:       timeutil.FormatThaiDateRange(start, end, req.OneWay()),
		Price:      perPerson * req.Passengers,
		Difference: (perPerson - recPerPerson) * req.Passengers,
		Percentage: percentage,
	}
}

// resolveTravelDate picks the representative travel date for a band: the
// user's start date when given, otherwise the date parsed from the band's
// canonical best-deal string. Unparseable strings indicate a season-table
// authoring error; they log a warning and degrade to today.
func (e *Engine) resolveTravelDate(userStart *time.Time, bestDealDates string, today time.Time) time.Time {
	if userStart != nil {
		return timeutil.DateOnly(*userStart)
	}
	t, ok := timeutil.ParseBestDealDate(bestDealDates, today.Year())
	if !ok {
		e.log.Warn().Str("bestDealDates", bestDealDates).Msg("unparseable best-deal date range, using current date")
		return today
	}
	return t
}

// roundTHB rounds a per-person price to the nearest baht. Emitted prices
// are this rounded value multiplied by the passenger count, which keeps
// passenger scaling exactly linear.
func roundTHB(price float64) int {
	return int(math.Round(price))
}

// roundDays rounds a fractional day count to whole days.
func roundDays(days float64) int {
	return int(math.Round(days))
}

// Ensure Engine satisfies DataSource at compile time.
var _ DataSource = (*Engine)(nil)
