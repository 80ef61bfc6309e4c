package main

//
//  @title           tickerboard API
//  @version         1.0
//  @description     Single-page stock dashboard: recent hourly prices, summary metrics and a line chart.
//  @termsOfService  https://github.com/guttosm/tickerboard
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tickerboard
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8050
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        dashboard
//  @tag.description Dashboard page, update callback and live stream
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/tickerboard/config"
	_ "github.com/guttosm/tickerboard/docs" // swagger docs
	"github.com/guttosm/tickerboard/internal/app"
	"github.com/guttosm/tickerboard/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
//
// WriteTimeout is left unset: a dashboard update waits on the upstream fetch,
// which is bounded by the market data client timeout instead.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (idle upstream connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the tickerboard application.
//
// It serves the dashboard page and its API until SIGINT or SIGTERM.
//
// Flags:
//   - --port: Port for the HTTP server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the HTTP server")
	flag.Parse()

	logger.L().Info().
		Strs("tickers", config.Tickers).
		Str("default", config.DefaultTicker()).
		Dur("refresh", config.RefreshInterval).
		Msg("starting dashboard server")

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *port)
	gracefulShutdown(ctx, server, cleanup)
}
