package main

//
//  @title           goldpulse API
//  @version         1.0
//  @description     Gold closing-price prediction service backed by a pre-trained SVR model.
//  @termsOfService  https://github.com/Ahmed-26/goldpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/Ahmed-26/goldpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        predict
//  @tag.description Endpoints for running the trained model
//
//  @tag.name        prices
//  @tag.description Endpoints for querying historical prices
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

	"github.com/Ahmed-26/goldpulse/config"
	_ "github.com/Ahmed-26/goldpulse/docs" // swagger docs
	"github.com/Ahmed-26/goldpulse/internal/app"
	"github.com/Ahmed-26/goldpulse/internal/dataset"
	"github.com/Ahmed-26/goldpulse/internal/logger"
	"github.com/Ahmed-26/goldpulse/internal/predictor"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
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
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

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

// verify is a preflight check: it loads the dataset and model artifact the
// same way the server would and reports what it found, without serving.
func verify(ctx context.Context, dataFile, modelFile string) error {
	data, err := dataset.Load(ctx, dataFile)
	if err != nil {
		return err
	}
	logger.L().Info().Str("file", dataFile).Int("records", data.Len()).Msg("dataset ok")

	if _, err := predictor.LoadArtifact(modelFile); err != nil {
		return err
	}
	logger.L().Info().Str("file", modelFile).Msg("model artifact ok")
	return nil
}

// main is the entry point of the goldpulse application.
//
// Modes (selected via --mode flag):
//   - serve:  Starts the REST API and form UI (default).
//   - verify: Loads the dataset and model artifact, reports, and exits.
//
// Flags:
//   - --mode:  Execution mode ("serve" or "verify"). Default: "serve".
//   - --data:  Path to the historical price CSV. Defaults to config (DATA_FILE).
//   - --model: Path to the model artifact. Defaults to config (MODEL_FILE).
//   - --port:  Port for the API server. Defaults to config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "serve", "Mode: serve or verify")
	dataFile := flag.String("data", config.AppConfig.Data.File, "Path to historical price CSV")
	modelFile := flag.String("model", config.AppConfig.Model.File, "Path to model artifact")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()

	// Flags win over env/defaults
	config.AppConfig.Data.File = *dataFile
	config.AppConfig.Model.File = *modelFile

	switch *mode {
	case "verify":
		if err := verify(ctx, *dataFile, *modelFile); err != nil {
			logger.L().Fatal().Err(err).Msg("verification failed")
		}
		logger.L().Info().Msg("verification completed successfully")

	case "serve":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
