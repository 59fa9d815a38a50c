// Package remote implements the data source against an external pricing
// backend over HTTP. It is selected when mock data is disabled.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/retry"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
	"github.com/flight-deals/flight-price-insight-service/internal/usecase"
)

// Client calls the remote pricing backend. It implements
// usecase.DataSource and maps every transport or decode failure to
// domain.ErrDataSourceUnavailable so callers can degrade uniformly.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
	log        zerolog.Logger
}

// New creates a remote pricing client.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.RemoteConfig.WithRetryIf(retry.SkipPermanent),
		log:        log,
	}
}

type analyzePayload struct {
	Origin           string   `json:"origin"`
	Destination      string   `json:"destination"`
	DurationMin      float64  `json:"durationMin"`
	DurationMax      float64  `json:"durationMax"`
	SelectedAirlines []string `json:"selectedAirlines,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	EndDate          string   `json:"endDate,omitempty"`
	TripType         string   `json:"tripType"`
	Passengers       int      `json:"passengers"`
}

type flightsPayload struct {
	Airline     string `json:"airline"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// AnalyzePrices implements usecase.DataSource.
func (c *Client) AnalyzePrices(ctx context.Context, req domain.AnalysisRequest) (*domain.FlightAnalysisResult, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := analyzePayload{
		Origin:           req.Origin,
		Destination:      req.Destination,
		DurationMin:      req.Duration.Min,
		DurationMax:      req.Duration.Max,
		SelectedAirlines: req.SelectedAirlines,
		StartDate:        isoDate(req.StartDate),
		EndDate:          isoDate(req.EndDate),
		TripType:         string(req.TripType),
		Passengers:       req.Passengers,
	}

	var result domain.FlightAnalysisResult
	if err := c.post(ctx, "/flights/analyze", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FlightPrices implements usecase.DataSource.
func (c *Client) FlightPrices(ctx context.Context, req domain.FlightListRequest) ([]domain.Flight, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := flightsPayload{
		Airline:     req.AirlineID,
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   isoDate(req.StartDate),
		EndDate:     isoDate(req.EndDate),
	}

	var flights []domain.Flight
	if err := c.post(ctx, "/flights/prices", payload, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// post sends a JSON request with retries and decodes the JSON response
// into out. 4xx responses are permanent; 5xx and transport errors retry.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", domain.ErrDataSourceUnavailable, err)
	}

	raw, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.doOnce(ctx, path, body)
	}, c.retryCfg)
	if err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("remote pricing request failed")
		return fmt.Errorf("%w: %v", domain.ErrDataSourceUnavailable, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrDataSourceUnavailable, err)
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return raw, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, retry.NewPermanent(fmt.Errorf("remote returned status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("remote returned status %d", resp.StatusCode)
	}
}

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return timeutil.DateOnly(*t).Format("2006-01-02")
}

var _ usecase.DataSource = (*Client)(nil)
