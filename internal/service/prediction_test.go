package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ahmed-26/goldpulse/internal/dataset"
	"github.com/Ahmed-26/goldpulse/internal/predictor"
)

func newTestService(t *testing.T) PredictionService {
	t.Helper()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "prices.csv")
	csv := "Date,Open,High,Low,Close\n" +
		"2024-09-01,1900.0,1920.0,1890.0,1910.5\n" +
		"2024-09-02,1910.5,1925.0,1905.0,1918.0\n"
	if err := os.WriteFile(csvPath, []byte(csv), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	data, err := dataset.Load(context.Background(), csvPath)
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}

	modelPath := filepath.Join(dir, "model.gob")
	art := predictor.Artifact{
		Format:         "goldpulse/svr/v1",
		Kernel:         predictor.KernelLinear,
		Intercept:      10,
		DualCoefs:      []float64{1},
		SupportVectors: [][]float64{{1, 0, 0}},
	}
	if err := predictor.WriteArtifact(modelPath, art); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	model, err := predictor.LoadArtifact(modelPath)
	if err != nil {
		t.Fatalf("load artifact: %v", err)
	}

	return NewPredictionService(model, data)
}

func TestPredictionService_Predict(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.Predict(context.Background(), 1900.0, 1920.0, 1890.0)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if p.ClosingPrice != 1910.0 {
		t.Fatalf("want 1910.0, got %v", p.ClosingPrice)
	}
}

func TestPredictionService_Predict_InvalidInput(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Predict(context.Background(), -1, 1920, 1890); !errors.Is(err, predictor.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestPredictionService_RecentPrices(t *testing.T) {
	svc := newTestService(t)

	recs, err := svc.RecentPrices(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 || recs[1].Date != "2024-09-02" {
		t.Fatalf("unexpected records: %+v", recs)
	}

	if _, err := svc.RecentPrices(context.Background(), 5); !errors.Is(err, dataset.ErrInsufficientData) {
		t.Fatalf("want ErrInsufficientData, got %v", err)
	}
}
