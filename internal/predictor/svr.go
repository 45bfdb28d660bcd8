package predictor

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput means a submitted feature was not a positive finite number.
var ErrInvalidInput = errors.New("invalid input")

// SVR is a loaded support vector regression model.
//
// It is stateless after LoadArtifact and safe for concurrent Predict calls:
// inference only reads the decoded parameters.
type SVR struct {
	art Artifact
}

// Predict evaluates the SVR decision function for one (open, high, low)
// feature vector and returns the predicted closing price.
//
// It fails with ErrInvalidInput if any input is non-positive or non-finite,
// and with a plain error if the model produces a non-finite value.
func (m *SVR) Predict(open, high, low float64) (float64, error) {
	features := [featureCount]float64{open, high, low}
	names := [featureCount]string{"open", "high", "low"}

	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s price is not a finite number", ErrInvalidInput, names[i])
		}
		if v <= 0 {
			return 0, fmt.Errorf("%w: %s price must be positive, got %v", ErrInvalidInput, names[i], v)
		}
	}

	x := m.scale(features)

	out := m.art.Intercept
	for i, sv := range m.art.SupportVectors {
		out += m.art.DualCoefs[i] * m.kernel(sv, x)
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, fmt.Errorf("model produced non-finite prediction %v", out)
	}
	return out, nil
}

// scale applies the training-time feature scaler. An artifact without
// scaler parameters means the model was trained on raw features.
func (m *SVR) scale(features [featureCount]float64) []float64 {
	x := make([]float64, featureCount)
	for i, v := range features {
		x[i] = v
		if len(m.art.FeatureMeans) == featureCount {
			x[i] -= m.art.FeatureMeans[i]
		}
		if len(m.art.FeatureScales) == featureCount {
			x[i] /= m.art.FeatureScales[i]
		}
	}
	return x
}

// kernel evaluates the configured kernel between a support vector and the
// scaled input.
func (m *SVR) kernel(sv, x []float64) float64 {
	switch m.art.Kernel {
	case KernelRBF:
		var d2 float64
		for i := range sv {
			diff := sv[i] - x[i]
			d2 += diff * diff
		}
		return math.Exp(-m.art.Gamma * d2)
	default: // KernelLinear, enforced by Artifact.validate
		var dot float64
		for i := range sv {
			dot += sv[i] * x[i]
		}
		return dot
	}
}
