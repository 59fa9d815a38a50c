package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=stats.go -destination=mock_stats.go -package=domain

// MaxPriceRecords caps the number of retained price records. When the cap
// is exceeded the oldest records are evicted first.
const MaxPriceRecords = 1000

// SearchStat is one append-only record of a search submission.
type SearchStat struct {
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DurationLabel string    `json:"durationRange"`
	Timestamp     time.Time `json:"timestamp"`
}

// PriceStat is one append-only record of a recommended price.
type PriceStat struct {
	Origin           string     `json:"origin"`
	Destination      string     `json:"destination"`
	OriginName       string     `json:"originName"`
	DestinationName  string     `json:"destinationName"`
	RecommendedPrice int        `json:"recommendedPrice"`
	Season           SeasonBand `json:"season"`
	Airline          string     `json:"airline"`
	Timestamp        time.Time  `json:"timestamp"`
}

// FlightStats is the full contents of the usage statistics store. An absent
// store or missing record set reads as empty, never as an error.
type FlightStats struct {
	Searches []SearchStat `json:"searches"`
	Prices   []PriceStat  `json:"prices"`
}

// StatsRepository is the append-only usage statistics store. It is the only
// stateful collaborator of the service; implementations must serialize
// writes so concurrent requests cannot lose updates.
type StatsRepository interface {
	// RecordSearch appends a search record.
	RecordSearch(ctx context.Context, stat SearchStat) error

	// RecordPrice appends a price record, evicting the oldest records
	// beyond MaxPriceRecords.
	RecordPrice(ctx context.Context, stat PriceStat) error

	// LoadStats reads the full store contents, oldest records first.
	LoadStats(ctx context.Context) (*FlightStats, error)
}
