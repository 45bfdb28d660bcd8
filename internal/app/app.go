package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Ahmed-26/goldpulse/config"
	"github.com/Ahmed-26/goldpulse/internal/api"
	"github.com/Ahmed-26/goldpulse/internal/dataset"
	"github.com/Ahmed-26/goldpulse/internal/logger"
	"github.com/Ahmed-26/goldpulse/internal/predictor"
	"github.com/Ahmed-26/goldpulse/internal/service"
)

// Indirections for unit testing.
var (
	datasetLoader  = dataset.Load
	artifactLoader = predictor.LoadArtifact
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Loads the historical dataset and the model artifact (concurrently;
//     both are read-only after this point).
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function for shutdown symmetry.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// The dataset and the artifact are independent files; load both at once.
	var (
		data  *dataset.Dataset
		model *predictor.SVR
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if data, err = datasetLoader(gctx, cfg.Data.File); err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}
		logger.L().Info().Str("file", cfg.Data.File).Int("records", data.Len()).Msg("dataset loaded")
		return nil
	})
	g.Go(func() error {
		var err error
		if model, err = artifactLoader(cfg.Model.File); err != nil {
			return fmt.Errorf("failed to load model artifact: %w", err)
		}
		logger.L().Info().Str("file", cfg.Model.File).Msg("model artifact loaded")
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Initialize service layer (business logic)
	svc := service.NewPredictionService(model, data)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, cfg.Data.RecentRows)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(readiness(data, model))
	healthHandler.Register(router)

	// Nothing holds external connections; cleanup only logs the exit.
	cleanup := func() {
		logger.L().Info().Msg("resources released")
	}

	return router, cleanup, nil
}

// readiness reports whether the loaded state can answer requests.
func readiness(data *dataset.Dataset, model *predictor.SVR) func() error {
	return func() error {
		if data == nil || model == nil {
			return errors.New("dataset or model not loaded")
		}
		if data.Len() == 0 {
			return errors.New("dataset is empty")
		}
		return nil
	}
}
