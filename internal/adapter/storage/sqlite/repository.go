package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
)

// StatsRepository persists usage statistics in SQLite. It implements
// domain.StatsRepository.
type StatsRepository struct {
	db              *DB
	maxPriceRecords int
}

// NewStatsRepository creates a SQLite-backed statistics repository.
// maxPriceRecords caps retained price records; values below 1 fall back
// to the domain default.
func NewStatsRepository(db *DB, maxPriceRecords int) *StatsRepository {
	if maxPriceRecords < 1 {
		maxPriceRecords = domain.MaxPriceRecords
	}
	return &StatsRepository{db: db, maxPriceRecords: maxPriceRecords}
}

// RecordSearch appends a search record.
func (r *StatsRepository) RecordSearch(ctx context.Context, stat domain.SearchStat) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	_, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO search_stats (origin, destination, duration_label, recorded_at)
		 VALUES (?, ?, ?, ?)`,
		stat.Origin, stat.Destination, stat.DurationLabel, stat.Timestamp.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert search stat: %w", err)
	}
	return nil
}

// RecordPrice appends a price record and evicts the oldest rows beyond
// the configured cap, in one transaction.
func (r *StatsRepository) RecordPrice(ctx context.Context, stat domain.PriceStat) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO price_stats
		 (origin, destination, origin_name, destination_name, recommended_price, season, airline, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stat.Origin, stat.Destination, stat.OriginName, stat.DestinationName,
		stat.RecommendedPrice, string(stat.Season), stat.Airline,
		stat.Timestamp.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert price stat: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM price_stats
		 WHERE id NOT IN (SELECT id FROM price_stats ORDER BY id DESC LIMIT ?)`,
		r.maxPriceRecords)
	if err != nil {
		return fmt.Errorf("evict price stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// LoadStats reads the full store contents, oldest records first.
func (r *StatsRepository) LoadStats(ctx context.Context) (*domain.FlightStats, error) {
	stats := &domain.FlightStats{}

	rows, err := r.db.conn.QueryContext(ctx,
		`SELECT origin, destination, duration_label, recorded_at
		 FROM search_stats ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query search stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.SearchStat
		var recordedAt string
		if err := rows.Scan(&s.Origin, &s.Destination, &s.DurationLabel, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan search stat: %w", err)
		}
		s.Timestamp = parseRecordedAt(recordedAt)
		stats.Searches = append(stats.Searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search stats: %w", err)
	}

	priceRows, err := r.db.conn.QueryContext(ctx,
		`SELECT origin, destination, origin_name, destination_name, recommended_price, season, airline, recorded_at
		 FROM price_stats ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query price stats: %w", err)
	}
	defer priceRows.Close()

	for priceRows.Next() {
		var p domain.PriceStat
		var season, recordedAt string
		if err := priceRows.Scan(&p.Origin, &p.Destination, &p.OriginName, &p.DestinationName,
			&p.RecommendedPrice, &season, &p.Airline, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan price stat: %w", err)
		}
		p.Season = domain.SeasonBand(season)
		p.Timestamp = parseRecordedAt(recordedAt)
		stats.Prices = append(stats.Prices, p)
	}
	if err := priceRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price stats: %w", err)
	}

	return stats, nil
}

// parseRecordedAt tolerates malformed timestamps; ordering comes from the
// rowid, not the timestamp, so a zero time is acceptable.
func parseRecordedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

var _ domain.StatsRepository = (*StatsRepository)(nil)
