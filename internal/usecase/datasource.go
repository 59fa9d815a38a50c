package usecase

import (
	"context"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
)

//go:generate mockgen -source=datasource.go -destination=mock_datasource.go -package=usecase

// DataSource provides flight price analysis and flight lists. The local
// synthetic Engine is the default implementation; a remote pricing backend
// can be dropped in behind the same interface.
type DataSource interface {
	// AnalyzePrices runs a full price analysis for a search request.
	AnalyzePrices(ctx context.Context, req domain.AnalysisRequest) (*domain.FlightAnalysisResult, error)

	// FlightPrices generates the flight list for one airline on a route.
	FlightPrices(ctx context.Context, req domain.FlightListRequest) ([]domain.Flight, error)
}
