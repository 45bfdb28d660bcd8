package service

import (
	"context"

	"github.com/Ahmed-26/goldpulse/internal/dataset"
	"github.com/Ahmed-26/goldpulse/internal/domain/models"
	"github.com/Ahmed-26/goldpulse/internal/predictor"
)

// PredictionService defines the business operations exposed over HTTP.
// This decouples handlers from the dataset and model packages.
type PredictionService interface {
	Predict(ctx context.Context, open, high, low float64) (*models.Prediction, error)
	RecentPrices(ctx context.Context, n int) ([]models.PriceRecord, error)
}

type predictionService struct {
	model *predictor.SVR
	data  *dataset.Dataset
}

func NewPredictionService(model *predictor.SVR, data *dataset.Dataset) PredictionService {
	return &predictionService{model: model, data: data}
}

func (s *predictionService) Predict(_ context.Context, open, high, low float64) (*models.Prediction, error) {
	// Input validation (positive, finite) lives in the model handle so every
	// caller shares the same rules.
	value, err := s.model.Predict(open, high, low)
	if err != nil {
		return nil, err
	}
	return &models.Prediction{ClosingPrice: value}, nil
}

func (s *predictionService) RecentPrices(_ context.Context, n int) ([]models.PriceRecord, error) {
	return s.data.Recent(n)
}
