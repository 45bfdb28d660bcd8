package predictor

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrModelLoad means the model artifact is missing, undecodable, or
// internally inconsistent. The wrapped detail says which.
var ErrModelLoad = errors.New("model load failed")

// artifactFormat tags the on-disk encoding this package understands.
const artifactFormat = "goldpulse/svr/v1"

// Supported kernel identifiers.
const (
	KernelLinear = "linear"
	KernelRBF    = "rbf"
)

// featureCount is fixed by the model contract: (Open, High, Low).
const featureCount = 3

// Artifact is the serialized parameter set of a trained SVR model.
//
// It is produced offline by the training pipeline and consumed here at
// startup; this package is the only decoder of the format. Everything needed
// for inference travels in the file: kernel parameters, support vectors with
// their dual coefficients, the intercept, and the feature scaler fitted
// during training.
type Artifact struct {
	Format         string      // Must equal artifactFormat
	Kernel         string      // KernelLinear or KernelRBF
	Gamma          float64     // RBF kernel coefficient (ignored for linear)
	Intercept      float64     // Decision function bias
	DualCoefs      []float64   // One coefficient per support vector
	SupportVectors [][]float64 // Each of length featureCount, in scaled space
	FeatureMeans   []float64   // Scaler means, length featureCount (empty = identity)
	FeatureScales  []float64   // Scaler scales, length featureCount (empty = identity)
}

// LoadArtifact reads and validates the gob-encoded SVR artifact at path and
// returns a ready-to-use model handle.
//
// Every failure mode wraps ErrModelLoad: missing file, gob decode failure,
// unknown format/kernel, or dimensionally inconsistent parameters.
func LoadArtifact(path string) (*SVR, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: artifact not found: %s", ErrModelLoad, path)
		}
		return nil, fmt.Errorf("%w: open artifact: %v", ErrModelLoad, err)
	}
	defer func() { _ = f.Close() }()

	var art Artifact
	if err := gob.NewDecoder(f).Decode(&art); err != nil {
		return nil, fmt.Errorf("%w: decode artifact: %v", ErrModelLoad, err)
	}

	if err := art.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelLoad, err)
	}

	return &SVR{art: art}, nil
}

// WriteArtifact gob-encodes an artifact to path. Used by the offline
// export tooling and by test fixtures; the serving path never writes.
func WriteArtifact(path string, art Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	if err := gob.NewEncoder(f).Encode(art); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode artifact: %w", err)
	}
	return f.Close()
}

// validate checks structural consistency of a decoded artifact.
func (a Artifact) validate() error {
	if a.Format != artifactFormat {
		return fmt.Errorf("unsupported artifact format %q", a.Format)
	}
	switch a.Kernel {
	case KernelLinear:
	case KernelRBF:
		if a.Gamma <= 0 {
			return fmt.Errorf("rbf kernel requires positive gamma, got %v", a.Gamma)
		}
	default:
		return fmt.Errorf("unknown kernel %q", a.Kernel)
	}
	if len(a.SupportVectors) == 0 {
		return errors.New("artifact has no support vectors")
	}
	if len(a.DualCoefs) != len(a.SupportVectors) {
		return fmt.Errorf("dual coef count %d does not match support vector count %d",
			len(a.DualCoefs), len(a.SupportVectors))
	}
	for i, sv := range a.SupportVectors {
		if len(sv) != featureCount {
			return fmt.Errorf("support vector %d has %d features, want %d", i, len(sv), featureCount)
		}
	}
	if len(a.FeatureMeans) != 0 && len(a.FeatureMeans) != featureCount {
		return fmt.Errorf("feature means length %d, want %d", len(a.FeatureMeans), featureCount)
	}
	if len(a.FeatureScales) != 0 && len(a.FeatureScales) != featureCount {
		return fmt.Errorf("feature scales length %d, want %d", len(a.FeatureScales), featureCount)
	}
	for i, s := range a.FeatureScales {
		if s == 0 {
			return fmt.Errorf("feature scale %d is zero", i)
		}
	}
	return nil
}
