package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-deals/flight-price-insight-service/internal/adapter/storage/memory"
	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
)

func newStatsService(repo domain.StatsRepository) *StatsService {
	clock := timeutil.NewMockClockFromString("2025-01-15T00:00:00Z")
	return NewStatsService(repo, clock, zerolog.Nop())
}

func searchStat(destination, duration string) domain.SearchStat {
	return domain.SearchStat{
		Origin:        "bangkok",
		Destination:   destination,
		DurationLabel: duration,
		Timestamp:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func priceStat(origin, destination string, price int) domain.PriceStat {
	return domain.PriceStat{
		Origin:           origin,
		Destination:      destination,
		RecommendedPrice: price,
		Season:           domain.SeasonLow,
		Airline:          "Thai Airways",
		Timestamp:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestStatsSummary_EmptyStore(t *testing.T) {
	svc := newStatsService(memory.NewStatsRepository(0))

	summary, err := svc.Summary(context.Background(), "", "")
	require.NoError(t, err)

	assert.Zero(t, summary.TotalSearches)
	assert.Zero(t, summary.TotalPriceRecords)
	assert.Zero(t, summary.AveragePrice)
	assert.Nil(t, summary.MostSearchedDestination)
	assert.Nil(t, summary.MostSearchedDuration)
	assert.Nil(t, summary.PriceTrend)
}

func TestStatsSummary_Counts(t *testing.T) {
	repo := memory.NewStatsRepository(0)
	svc := newStatsService(repo)
	ctx := context.Background()

	require.NoError(t, repo.RecordSearch(ctx, searchStat("chiang-mai", "5-7 วัน")))
	require.NoError(t, repo.RecordSearch(ctx, searchStat("phuket", "5-7 วัน")))
	require.NoError(t, repo.RecordSearch(ctx, searchStat("chiang-mai", "3-4 วัน")))
	require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "chiang-mai", 3000)))
	require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "phuket", 5000)))

	summary, err := svc.Summary(ctx, "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalSearches)
	assert.Equal(t, &TopCount{Name: "chiang-mai", Count: 2}, summary.MostSearchedDestination)
	assert.Equal(t, &TopCount{Name: "5-7 วัน", Count: 2}, summary.MostSearchedDuration)
	assert.Equal(t, 2, summary.TotalPriceRecords)
	assert.Equal(t, 4000, summary.AveragePrice)
}

func TestStatsSummary_TieBreaksByFirstToReachCount(t *testing.T) {
	repo := memory.NewStatsRepository(0)
	svc := newStatsService(repo)
	ctx := context.Background()

	// Both destinations end on two searches; phuket reaches two first.
	require.NoError(t, repo.RecordSearch(ctx, searchStat("chiang-mai", "5-7 วัน")))
	require.NoError(t, repo.RecordSearch(ctx, searchStat("phuket", "5-7 วัน")))
	require.NoError(t, repo.RecordSearch(ctx, searchStat("phuket", "5-7 วัน")))
	require.NoError(t, repo.RecordSearch(ctx, searchStat("chiang-mai", "5-7 วัน")))

	summary, err := svc.Summary(ctx, "", "")
	require.NoError(t, err)

	require.NotNil(t, summary.MostSearchedDestination)
	assert.Equal(t, "phuket", summary.MostSearchedDestination.Name)
	assert.Equal(t, 2, summary.MostSearchedDestination.Count)
}

func TestStatsSummary_PriceTrend(t *testing.T) {
	tests := []struct {
		name   string
		prices []int
		want   *TrendInfo
	}{
		{"no records", nil, nil},
		{"single record", []int{3000}, nil},
		{"too few records for a trend", repeatPrice(3000, 10), nil},
		{
			name:   "rising series",
			prices: append(repeatPrice(1000, 10), repeatPrice(2000, 10)...),
			want:   &TrendInfo{Direction: TrendRising, Percentage: 100},
		},
		{
			name:   "falling series",
			prices: append(repeatPrice(2000, 10), repeatPrice(1000, 10)...),
			want:   &TrendInfo{Direction: TrendFalling, Percentage: 50},
		},
		{
			name:   "small change stays stable",
			prices: append(repeatPrice(1000, 10), repeatPrice(1010, 10)...),
			want:   &TrendInfo{Direction: TrendStable, Percentage: 0},
		},
		{
			name:   "short prior window still counts",
			prices: append(repeatPrice(1000, 5), repeatPrice(2000, 10)...),
			want:   &TrendInfo{Direction: TrendRising, Percentage: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewStatsRepository(0)
			svc := newStatsService(repo)
			ctx := context.Background()

			for _, p := range tt.prices {
				require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "chiang-mai", p)))
			}

			summary, err := svc.Summary(ctx, "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, summary.PriceTrend)
		})
	}
}

func repeatPrice(price, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = price
	}
	return out
}

func TestAveragePrice_Filters(t *testing.T) {
	repo := memory.NewStatsRepository(0)
	svc := newStatsService(repo)
	ctx := context.Background()

	require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "chiang-mai", 3000)))
	require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "phuket", 5000)))
	require.NoError(t, repo.RecordPrice(ctx, priceStat("chiang-mai", "phuket", 7000)))

	all, err := svc.AveragePrice(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 5000, all)

	// A partial filter matches the whole store
	partial, err := svc.AveragePrice(ctx, "", "phuket")
	require.NoError(t, err)
	assert.Equal(t, 5000, partial)

	fromBangkokToPhuket, err := svc.AveragePrice(ctx, "bangkok", "phuket")
	require.NoError(t, err)
	assert.Equal(t, 5000, fromBangkokToPhuket)

	fromChiangMaiToPhuket, err := svc.AveragePrice(ctx, "chiang-mai", "phuket")
	require.NoError(t, err)
	assert.Equal(t, 7000, fromChiangMaiToPhuket)

	noMatch, err := svc.AveragePrice(ctx, "krabi", "phuket")
	require.NoError(t, err)
	assert.Zero(t, noMatch)
}

func TestSummary_RouteFilterAppliesToAverageAndTrend(t *testing.T) {
	repo := memory.NewStatsRepository(0)
	svc := newStatsService(repo)
	ctx := context.Background()

	for _, p := range repeatPrice(1000, 10) {
		require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "chiang-mai", p)))
	}
	for _, p := range repeatPrice(2000, 10) {
		require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "chiang-mai", p)))
	}
	require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "phuket", 9000)))

	summary, err := svc.Summary(ctx, "bangkok", "chiang-mai")
	require.NoError(t, err)

	// Totals stay global; average and trend follow the filter
	assert.Equal(t, 21, summary.TotalPriceRecords)
	assert.Equal(t, 1500, summary.AveragePrice)
	assert.Equal(t, &TrendInfo{Direction: TrendRising, Percentage: 100}, summary.PriceTrend)
}

func TestPriceTrend_Filtered(t *testing.T) {
	repo := memory.NewStatsRepository(0)
	svc := newStatsService(repo)
	ctx := context.Background()

	for _, p := range repeatPrice(2000, 10) {
		require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "chiang-mai", p)))
	}
	for _, p := range repeatPrice(1000, 10) {
		require.NoError(t, repo.RecordPrice(ctx, priceStat("bangkok", "chiang-mai", p)))
	}

	trend, err := svc.PriceTrend(ctx, "bangkok", "chiang-mai")
	require.NoError(t, err)
	require.NotNil(t, trend)
	assert.Equal(t, TrendFalling, trend.Direction)
	assert.Equal(t, 50, trend.Percentage)

	// No records for the filtered route means no trend
	other, err := svc.PriceTrend(ctx, "bangkok", "phuket")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSummary_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockStatsRepository(ctrl)
	repo.EXPECT().LoadStats(gomock.Any()).Return(nil, errors.New("disk on fire"))

	svc := newStatsService(repo)

	_, err := svc.Summary(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrStatsUnavailable)
}

func TestRecordAnalysis_SwallowsRepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockStatsRepository(ctrl)
	repo.EXPECT().RecordSearch(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
	repo.EXPECT().RecordPrice(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

	svc := newStatsService(repo)

	req := domain.AnalysisRequest{
		Origin:      "bangkok",
		Destination: "chiang-mai",
		Duration:    domain.DurationRange{Min: 5, Max: 7},
		Passengers:  1,
	}
	result := &domain.FlightAnalysisResult{
		RecommendedPeriod: domain.RecommendedPeriod{
			Price:   3000,
			Season:  domain.SeasonLow,
			Airline: "Thai Airways",
		},
	}

	// Must not panic or surface the errors
	svc.RecordAnalysis(context.Background(), req, result)
}

func TestRecordAnalysis_CapturesSearchAndPrice(t *testing.T) {
	repo := memory.NewStatsRepository(0)
	svc := newStatsService(repo)
	ctx := context.Background()

	req := domain.AnalysisRequest{
		Origin:      "bangkok",
		Destination: "chiang-mai",
		Duration:    domain.DurationRange{Min: 5, Max: 7},
		Passengers:  2,
	}
	result := &domain.FlightAnalysisResult{
		RecommendedPeriod: domain.RecommendedPeriod{
			Price:   6400,
			Season:  domain.SeasonLow,
			Airline: "Nok Air",
		},
	}

	svc.RecordAnalysis(ctx, req, result)

	stats, err := repo.LoadStats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.Searches, 1)
	assert.Equal(t, "chiang-mai", stats.Searches[0].Destination)
	assert.Equal(t, "5-7 วัน", stats.Searches[0].DurationLabel)

	require.Len(t, stats.Prices, 1)
	assert.Equal(t, 6400, stats.Prices[0].RecommendedPrice)
	assert.Equal(t, domain.SeasonLow, stats.Prices[0].Season)
	assert.Equal(t, "Nok Air", stats.Prices[0].Airline)
	assert.Equal(t, "เชียงใหม่", stats.Prices[0].DestinationName)
	assert.Equal(t, 2025, stats.Prices[0].Timestamp.Year())
}
