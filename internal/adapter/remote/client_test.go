package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/retry"
)

func fastClient(baseURL string) *Client {
	c := New(baseURL, 2*time.Second, zerolog.Nop())
	c.retryCfg = retry.Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		RetryIf:      retry.SkipPermanent,
	}
	return c
}

func analysisRequest() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		Origin:      "bangkok",
		Destination: "chiang-mai",
		Duration:    domain.DurationRange{Min: 5, Max: 7},
		Passengers:  1,
	}
}

func TestAnalyzePrices_Success(t *testing.T) {
	want := domain.FlightAnalysisResult{
		RecommendedPeriod: domain.RecommendedPeriod{
			StartDate: "15 พฤษภาคม 2025",
			Price:     2480,
			Airline:   "Thai Airways",
			Season:    domain.SeasonLow,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/flights/analyze", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "bangkok", payload["origin"])
		assert.Equal(t, 5.0, payload["durationMin"])
		assert.Equal(t, 7.0, payload["durationMax"])

		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := fastClient(srv.URL).AnalyzePrices(context.Background(), analysisRequest())
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestAnalyzePrices_ServerErrorsAreRetriedThenMapped(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).AnalyzePrices(context.Background(), analysisRequest())

	assert.ErrorIs(t, err, domain.ErrDataSourceUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestAnalyzePrices_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).AnalyzePrices(context.Background(), analysisRequest())

	assert.ErrorIs(t, err, domain.ErrDataSourceUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAnalyzePrices_InvalidRequestNeverHitsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))
	defer srv.Close()

	req := analysisRequest()
	req.Origin = ""

	_, err := fastClient(srv.URL).AnalyzePrices(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestAnalyzePrices_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).AnalyzePrices(context.Background(), analysisRequest())
	assert.ErrorIs(t, err, domain.ErrDataSourceUnavailable)
}

func TestFlightPrices_Success(t *testing.T) {
	want := []domain.Flight{
		{Airline: "Thai Airways", FlightNumber: "TH101", Price: 3400},
		{Airline: "Thai Airways", FlightNumber: "TH104", Price: 3600},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights/prices", r.URL.Path)
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := fastClient(srv.URL).FlightPrices(context.Background(), domain.FlightListRequest{
		AirlineID:   "thai-airways",
		Origin:      "bangkok",
		Destination: "chiang-mai",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFlightPrices_InvalidRequest(t *testing.T) {
	_, err := fastClient("http://localhost:0").FlightPrices(context.Background(), domain.FlightListRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
