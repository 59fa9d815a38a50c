package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func storedPrice(price int) domain.PriceStat {
	return domain.PriceStat{
		Origin:           "bangkok",
		Destination:      "chiang-mai",
		OriginName:       "กรุงเทพมหานคร",
		DestinationName:  "เชียงใหม่",
		RecommendedPrice: price,
		Season:           domain.SeasonLow,
		Airline:          "Thai Airways",
		Timestamp:        time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC),
	}
}

func TestStatsRepository_RoundTrip(t *testing.T) {
	repo := NewStatsRepository(openTestDB(t), 0)
	ctx := context.Background()

	search := domain.SearchStat{
		Origin:        "bangkok",
		Destination:   "phuket",
		DurationLabel: "5-7 วัน",
		Timestamp:     time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.RecordSearch(ctx, search))
	require.NoError(t, repo.RecordPrice(ctx, storedPrice(3000)))

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.Searches, 1)
	assert.Equal(t, search.Destination, stats.Searches[0].Destination)
	assert.Equal(t, search.DurationLabel, stats.Searches[0].DurationLabel)
	assert.True(t, search.Timestamp.Equal(stats.Searches[0].Timestamp))

	require.Len(t, stats.Prices, 1)
	got := stats.Prices[0]
	assert.Equal(t, 3000, got.RecommendedPrice)
	assert.Equal(t, domain.SeasonLow, got.Season)
	assert.Equal(t, "Thai Airways", got.Airline)
	assert.Equal(t, "เชียงใหม่", got.DestinationName)
}

func TestStatsRepository_OrderedOldestFirst(t *testing.T) {
	repo := NewStatsRepository(openTestDB(t), 0)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.RecordPrice(ctx, storedPrice(1000+i)))
	}

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.Prices, 5)
	for i, p := range stats.Prices {
		assert.Equal(t, 1000+i, p.RecommendedPrice)
	}
}

func TestStatsRepository_EvictsOldestBeyondCap(t *testing.T) {
	repo := NewStatsRepository(openTestDB(t), 10)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		require.NoError(t, repo.RecordPrice(ctx, storedPrice(i)))
	}

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.Prices, 10)
	assert.Equal(t, 5, stats.Prices[0].RecommendedPrice)
	assert.Equal(t, 14, stats.Prices[9].RecommendedPrice)
}

func TestStatsRepository_EmptyStore(t *testing.T) {
	repo := NewStatsRepository(openTestDB(t), 0)

	stats, err := repo.LoadStats(context.Background())
	require.NoError(t, err)

	assert.Empty(t, stats.Searches)
	assert.Empty(t, stats.Prices)
}

func TestOpen_CreatesSchemaIdempotently(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.db")

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening the same file must not fail on existing tables
	db, err = Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
