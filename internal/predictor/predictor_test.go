package predictor

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// linearFixture is a minimal artifact with an analytic decision function:
// f(open, high, low) = open + 10.
func linearFixture() Artifact {
	return Artifact{
		Format:         artifactFormat,
		Kernel:         KernelLinear,
		Intercept:      10,
		DualCoefs:      []float64{1},
		SupportVectors: [][]float64{{1, 0, 0}},
	}
}

func writeFixture(t *testing.T, art Artifact) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.gob")
	if err := WriteArtifact(path, art); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadArtifact_AndPredict_Deterministic(t *testing.T) {
	m, err := LoadArtifact(writeFixture(t, linearFixture()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got, err := m.Predict(1900.0, 1920.0, 1890.0)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got != 1910.0 {
		t.Fatalf("pinned prediction: want 1910.0, got %v", got)
	}
}

func TestPredict_RBFFiniteOutput(t *testing.T) {
	art := Artifact{
		Format:         artifactFormat,
		Kernel:         KernelRBF,
		Gamma:          0.5,
		Intercept:      1850,
		DualCoefs:      []float64{25.0, -12.5},
		SupportVectors: [][]float64{{0.1, 0.2, 0.3}, {-0.4, 0.1, -0.2}},
		FeatureMeans:   []float64{1900, 1915, 1885},
		FeatureScales:  []float64{50, 50, 50},
	}
	m, err := LoadArtifact(writeFixture(t, art))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct{ open, high, low float64 }{
		{1900, 1920, 1890},
		{1.0, 2.0, 0.5},
		{2500, 2600, 2450},
	}
	for _, tc := range cases {
		got, err := m.Predict(tc.open, tc.high, tc.low)
		if err != nil {
			t.Fatalf("predict(%v,%v,%v): %v", tc.open, tc.high, tc.low, err)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("predict(%v,%v,%v): non-finite %v", tc.open, tc.high, tc.low, got)
		}
	}
}

func TestPredict_InvalidInput(t *testing.T) {
	m, err := LoadArtifact(writeFixture(t, linearFixture()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		name            string
		open, high, low float64
	}{
		{"zero open", 0, 1920, 1890},
		{"negative high", 1900, -1, 1890},
		{"zero low", 1900, 1920, 0},
		{"nan open", math.NaN(), 1920, 1890},
		{"inf high", 1900, math.Inf(1), 1890},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.Predict(tc.open, tc.high, tc.low); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestLoadArtifact_Failures(t *testing.T) {
	broken := func(mutate func(*Artifact)) Artifact {
		art := linearFixture()
		mutate(&art)
		return art
	}

	cases := []struct {
		name string
		art  Artifact
	}{
		{"wrong format tag", broken(func(a *Artifact) { a.Format = "something/else" })},
		{"unknown kernel", broken(func(a *Artifact) { a.Kernel = "poly" })},
		{"no support vectors", broken(func(a *Artifact) { a.SupportVectors = nil; a.DualCoefs = nil })},
		{"coef count mismatch", broken(func(a *Artifact) { a.DualCoefs = []float64{1, 2} })},
		{"wrong feature width", broken(func(a *Artifact) { a.SupportVectors = [][]float64{{1, 0}} })},
		{"zero scale", broken(func(a *Artifact) { a.FeatureScales = []float64{1, 0, 1} })},
		{"rbf without gamma", broken(func(a *Artifact) { a.Kernel = KernelRBF; a.Gamma = 0 })},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadArtifact(writeFixture(t, tc.art)); !errors.Is(err, ErrModelLoad) {
				t.Fatalf("want ErrModelLoad, got %v", err)
			}
		})
	}
}

func TestLoadArtifact_MissingFile(t *testing.T) {
	_, err := LoadArtifact(filepath.Join(t.TempDir(), "nope.gob"))
	if !errors.Is(err, ErrModelLoad) {
		t.Fatalf("want ErrModelLoad, got %v", err)
	}
}

func TestLoadArtifact_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	if err := os.WriteFile(path, []byte("not a gob stream"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadArtifact(path); !errors.Is(err, ErrModelLoad) {
		t.Fatalf("want ErrModelLoad, got %v", err)
	}
}
