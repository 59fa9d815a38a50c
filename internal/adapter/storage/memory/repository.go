// Package memory implements the usage statistics store in process memory.
// It backs tests and deployments that do not need persistence.
package memory

import (
	"context"
	"sync"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
)

// StatsRepository is an in-memory domain.StatsRepository. Safe for
// concurrent use.
type StatsRepository struct {
	mu              sync.Mutex
	maxPriceRecords int
	searches        []domain.SearchStat
	prices          []domain.PriceStat
}

// NewStatsRepository creates an in-memory statistics repository.
// maxPriceRecords caps retained price records; values below 1 fall back
// to the domain default.
func NewStatsRepository(maxPriceRecords int) *StatsRepository {
	if maxPriceRecords < 1 {
		maxPriceRecords = domain.MaxPriceRecords
	}
	return &StatsRepository{maxPriceRecords: maxPriceRecords}
}

// RecordSearch appends a search record.
func (r *StatsRepository) RecordSearch(_ context.Context, stat domain.SearchStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searches = append(r.searches, stat)
	return nil
}

// RecordPrice appends a price record, evicting the oldest beyond the cap.
func (r *StatsRepository) RecordPrice(_ context.Context, stat domain.PriceStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prices = append(r.prices, stat)
	if excess := len(r.prices) - r.maxPriceRecords; excess > 0 {
		r.prices = append([]domain.PriceStat(nil), r.prices[excess:]...)
	}
	return nil
}

// LoadStats returns a copy of the store contents, oldest records first.
func (r *StatsRepository) LoadStats(_ context.Context) (*domain.FlightStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &domain.FlightStats{
		Searches: append([]domain.SearchStat(nil), r.searches...),
		Prices:   append([]domain.PriceStat(nil), r.prices...),
	}, nil
}

var _ domain.StatsRepository = (*StatsRepository)(nil)
