// Package main is the entry point for the flight price insight service.
//
//	@title						Flight Price Insight API
//	@version					1.0.0
//	@description				A deterministic flight price analysis service: seasonal fare taxonomy, recommended travel windows, shifted-date comparisons and price-trend charts for Thai domestic and regional routes.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-deals/flight-price-insight-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-deals/flight-price-insight-service/docs"

	flighthttp "github.com/flight-deals/flight-price-insight-service/internal/adapter/http"
	"github.com/flight-deals/flight-price-insight-service/internal/adapter/http/middleware"
	"github.com/flight-deals/flight-price-insight-service/internal/adapter/remote"
	"github.com/flight-deals/flight-price-insight-service/internal/adapter/storage/memory"
	"github.com/flight-deals/flight-price-insight-service/internal/adapter/storage/sqlite"
	"github.com/flight-deals/flight-price-insight-service/internal/config"
	"github.com/flight-deals/flight-price-insight-service/internal/domain"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/logger"
	"github.com/flight-deals/flight-price-insight-service/internal/infrastructure/timeutil"
	"github.com/flight-deals/flight-price-insight-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-price-insight",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("mock_data", cfg.App.UseMockData).
		Msg("Configuration loaded")

	clock := timeutil.NewRealClock()

	// Statistics store backend per STATS_STORE.
	var statsRepo domain.StatsRepository
	if cfg.Stats.UseMemoryStore() {
		statsRepo = memory.NewStatsRepository(cfg.Stats.MaxPriceRecords)
	} else {
		db, err := sqlite.Open(context.Background(), cfg.Stats.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Stats.DBPath).Msg("Failed to open stats database")
		}
		defer db.Close()
		statsRepo = sqlite.NewStatsRepository(db, cfg.Stats.MaxPriceRecords)
	}
	statsService := usecase.NewStatsService(statsRepo, clock, log.Logger)

	// Data source: the local synthetic engine by default, the remote
	// pricing backend when mock data is disabled.
	var dataSource usecase.DataSource
	if cfg.App.UseMockData {
		dataSource = usecase.NewEngine(clock, log.Logger)
	} else {
		dataSource = remote.New(cfg.Remote.BaseURL, cfg.Remote.Timeout, log.Logger)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	handler := flighthttp.NewFlightHandler(dataSource, statsService)
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
