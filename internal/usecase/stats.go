package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
)

// PriceTrend labels the direction of recent recommended prices.
type PriceTrend string

const (
	TrendRising  PriceTrend = "rising"
	TrendFalling PriceTrend = "falling"
	TrendStable  PriceTrend = "stable"
)

// trendWindow is the number of recent price records compared against the
// same number of preceding records when classifying the trend.
const trendWindow = 10

// trendStableBand is the rounded percentage change below which the trend
// counts as stable.
const trendStableBand = 2

// TrendInfo pairs a trend direction with the absolute percentage change
// between the two comparison windows. A stable trend reports zero.
type TrendInfo struct {
	Direction  PriceTrend `json:"direction"`
	Percentage int        `json:"percentage"`
}

// TopCount pairs a most-frequent value with its occurrence count.
type TopCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsSummary aggregates the usage statistics store for reporting. The
// pointer fields are nil when the store holds too little data to answer.
type StatsSummary struct {
	TotalSearches           int        `json:"totalSearches"`
	MostSearchedDestination *TopCount  `json:"mostSearchedDestination"`
	MostSearchedDuration    *TopCount  `json:"mostSearchedDuration"`
	TotalPriceRecords       int        `json:"totalPriceRecords"`
	AveragePrice            int        `json:"averagePrice"`
	PriceTrend              *TrendInfo `json:"priceTrend"`
}

// StatsService records usage events and aggregates them into summaries.
// Recording failures never fail the caller's request; they are logged and
// swallowed, because analysis results matter more than usage bookkeeping.
type StatsService struct {
	repo  domain.StatsRepository
	clock timeutil.Clock
	log   zerolog.Logger
}

// NewStatsService creates a usage statistics service.
func NewStatsService(repo domain.StatsRepository, clock timeutil.Clock, log zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, clock: clock, log: log}
}

// RecordAnalysis appends the search record and the recommended-price record
// produced by one completed analysis. Errors are logged, not returned.
func (s *StatsService) RecordAnalysis(ctx context.Context, req domain.AnalysisRequest, result *domain.FlightAnalysisResult) {
	now := s.clock.Now()

	search := domain.SearchStat{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DurationLabel: req.Duration.Label(),
		Timestamp:     now,
	}
	if err := s.repo.RecordSearch(ctx, search); err != nil {
		s.log.Warn().Err(err).Str("destination", req.Destination).Msg("failed to record search stat")
	}

	price := domain.PriceStat{
		Origin:           req.Origin,
		Destination:      req.Destination,
		OriginName:       domain.DestinationLabel(req.Origin),
		DestinationName:  domain.DestinationLabel(req.Destination),
		RecommendedPrice: result.RecommendedPeriod.Price,
		Season:           result.RecommendedPeriod.Season,
		Airline:          result.RecommendedPeriod.Airline,
		Timestamp:        now,
	}
	if err := s.repo.RecordPrice(ctx, price); err != nil {
		s.log.Warn().Err(err).Str("destination", req.Destination).Msg("failed to record price stat")
	}
}

// Summary aggregates the store into a reporting summary. Totals and
// most-searched fields always cover the whole store; the average price and
// trend honor the route filter when both origin and destination are given.
func (s *StatsService) Summary(ctx context.Context, origin, destination string) (*StatsSummary, error) {
	stats, err := s.repo.LoadStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStatsUnavailable, err)
	}

	filtered := filterPrices(stats.Prices, origin, destination)

	return &StatsSummary{
		TotalSearches:           len(stats.Searches),
		MostSearchedDestination: mostFrequent(stats.Searches, func(s domain.SearchStat) string { return s.Destination }),
		MostSearchedDuration:    mostFrequent(stats.Searches, func(s domain.SearchStat) string { return s.DurationLabel }),
		TotalPriceRecords:       len(stats.Prices),
		AveragePrice:            averagePrice(filtered),
		PriceTrend:              priceTrend(filtered),
	}, nil
}

// AveragePrice averages recommended prices, restricted to a route when
// both origin and destination are given.
func (s *StatsService) AveragePrice(ctx context.Context, origin, destination string) (int, error) {
	stats, err := s.repo.LoadStats(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrStatsUnavailable, err)
	}
	return averagePrice(filterPrices(stats.Prices, origin, destination)), nil
}

// PriceTrend classifies the direction of recent recommended prices,
// restricted to a route when both origin and destination are given. It
// returns nil until more than trendWindow records exist, since there is
// nothing older to compare the recent window against.
func (s *StatsService) PriceTrend(ctx context.Context, origin, destination string) (*TrendInfo, error) {
	stats, err := s.repo.LoadStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStatsUnavailable, err)
	}
	return priceTrend(filterPrices(stats.Prices, origin, destination)), nil
}

// mostFrequent returns the most common key over the records with its
// count, or nil when no record carries a key. Ties resolve to whichever
// key reached the winning count first, so the answer is stable across
// identical stores.
func mostFrequent(records []domain.SearchStat, key func(domain.SearchStat) string) *TopCount {
	counts := make(map[string]int, len(records))
	var best *TopCount
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		counts[k]++
		if best == nil || counts[k] > best.Count {
			best = &TopCount{Name: k, Count: counts[k]}
		}
	}
	return best
}

// filterPrices restricts the records to one route. A partial filter (only
// origin or only destination) matches everything.
func filterPrices(prices []domain.PriceStat, origin, destination string) []domain.PriceStat {
	if origin == "" || destination == "" {
		return prices
	}
	out := make([]domain.PriceStat, 0, len(prices))
	for _, p := range prices {
		if p.Origin == origin && p.Destination == destination {
			out = append(out, p)
		}
	}
	return out
}

func averagePrice(prices []domain.PriceStat) int {
	if len(prices) == 0 {
		return 0
	}
	sum := 0
	for _, p := range prices {
		sum += p.RecommendedPrice
	}
	return int(math.Round(float64(sum) / float64(len(prices))))
}

// priceTrend compares the average of the last trendWindow records against
// the average of the up-to-trendWindow records before them. With nothing
// older than the recent window to compare against, there is no trend yet
// and the result is nil.
func priceTrend(prices []domain.PriceStat) *TrendInfo {
	if len(prices) <= trendWindow {
		return nil
	}

	recentStart := len(prices) - trendWindow
	priorStart := recentStart - trendWindow
	if priorStart < 0 {
		priorStart = 0
	}

	recent := windowAverage(prices[recentStart:])
	prior := windowAverage(prices[priorStart:recentStart])
	if prior == 0 {
		return nil
	}

	pct := int(math.Round((recent - prior) / prior * 100))
	if pct >= trendStableBand {
		return &TrendInfo{Direction: TrendRising, Percentage: pct}
	}
	if pct <= -trendStableBand {
		return &TrendInfo{Direction: TrendFalling, Percentage: -pct}
	}
	return &TrendInfo{Direction: TrendStable, Percentage: 0}
}

func windowAverage(prices []domain.PriceStat) float64 {
	if len(prices) == 0 {
		return 0
	}
	sum := 0
	for _, p := range prices {
		sum += p.RecommendedPrice
	}
	return float64(sum) / float64(len(prices))
}
