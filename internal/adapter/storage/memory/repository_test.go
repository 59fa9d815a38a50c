package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
)

func testPrice(price int) domain.PriceStat {
	return domain.PriceStat{
		Origin:           "bangkok",
		Destination:      "chiang-mai",
		RecommendedPrice: price,
		Season:           domain.SeasonLow,
		Airline:          "Thai Airways",
		Timestamp:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestStatsRepository_RecordAndLoad(t *testing.T) {
	repo := NewStatsRepository(0)
	ctx := context.Background()

	require.NoError(t, repo.RecordSearch(ctx, domain.SearchStat{Destination: "phuket"}))
	require.NoError(t, repo.RecordPrice(ctx, testPrice(3000)))

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.Searches, 1)
	assert.Equal(t, "phuket", stats.Searches[0].Destination)
	require.Len(t, stats.Prices, 1)
	assert.Equal(t, 3000, stats.Prices[0].RecommendedPrice)
}

func TestStatsRepository_EvictsOldestBeyondCap(t *testing.T) {
	repo := NewStatsRepository(0) // falls back to domain.MaxPriceRecords
	ctx := context.Background()

	for i := 0; i < domain.MaxPriceRecords+1; i++ {
		require.NoError(t, repo.RecordPrice(ctx, testPrice(i)))
	}

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.Prices, domain.MaxPriceRecords)

	// The very first record is gone; the newest survives
	assert.Equal(t, 1, stats.Prices[0].RecommendedPrice)
	assert.Equal(t, domain.MaxPriceRecords, stats.Prices[len(stats.Prices)-1].RecommendedPrice)
}

func TestStatsRepository_CustomCap(t *testing.T) {
	repo := NewStatsRepository(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.RecordPrice(ctx, testPrice(i)))
	}

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.Prices, 3)
	assert.Equal(t, 2, stats.Prices[0].RecommendedPrice)
	assert.Equal(t, 4, stats.Prices[2].RecommendedPrice)
}

func TestStatsRepository_LoadReturnsCopy(t *testing.T) {
	repo := NewStatsRepository(0)
	ctx := context.Background()

	require.NoError(t, repo.RecordPrice(ctx, testPrice(3000)))

	first, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	first.Prices[0].RecommendedPrice = 9999

	second, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3000, second.Prices[0].RecommendedPrice)
}

func TestStatsRepository_ConcurrentWrites(t *testing.T) {
	repo := NewStatsRepository(0)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = repo.RecordPrice(ctx, testPrice(n))
			_ = repo.RecordSearch(ctx, domain.SearchStat{Destination: "phuket"})
		}(i)
	}
	wg.Wait()

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.Prices, 50)
	assert.Len(t, stats.Searches, 50)
}
