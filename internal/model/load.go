package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpsleep/sleepcheck/internal/features"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the artifact format major version this build reads.
const SupportedMajor = "v1"

// Options locates the artifacts to load.
type Options struct {
	ScalerPath     string
	ClassifierPath string
	// ONNXLibrary is the ONNX Runtime shared library, used only for
	// .onnx classifiers.
	ONNXLibrary string
}

// Bundle is the loaded, read-only scaler and classifier pair.
type Bundle struct {
	Scaler     Scaler
	Classifier Classifier
}

// Load reads both artifacts. Any failure is fatal for the caller.
func Load(opts Options) (*Bundle, error) {
	scaler, err := LoadScaler(opts.ScalerPath)
	if err != nil {
		return nil, err
	}
	clf, err := LoadClassifier(opts.ClassifierPath, opts.ONNXLibrary)
	if err != nil {
		return nil, err
	}
	return &Bundle{Scaler: scaler, Classifier: clf}, nil
}

// Close releases classifier resources, if any.
func (b *Bundle) Close() error {
	if c, ok := b.Classifier.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type envelope struct {
	FormatVersion string `json:"format_version"`
	Kind          string `json:"kind"`
}

type scalerArtifact struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Min          []float64 `json:"min"`
	Scale        []float64 `json:"scale"`
}

type logisticArtifact struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Threshold float64   `json:"threshold"`
}

// LoadScaler reads a JSON scaler artifact.
func LoadScaler(path string) (Scaler, error) {
	raw, env, err := readArtifact(path)
	if err != nil {
		return nil, err
	}

	switch env.Kind {
	case KindStandardScaler, KindMinMaxScaler:
	default:
		return nil, &ConfigurationError{Path: path, Kind: env.Kind, Reason: "artifact does not expose a transform"}
	}

	if err := validateRaw(env.Kind, raw); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var a scalerArtifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if err := checkFeatureNames(a.FeatureNames); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	scale, err := toVector(a.Scale)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("scale: %w", err)}
	}

	if env.Kind == KindStandardScaler {
		for i, s := range scale {
			if s == 0 {
				return nil, &LoadError{Path: path, Err: fmt.Errorf("scale for %s is zero", features.FeatureNames[i])}
			}
		}
		mean, err := toVector(a.Mean)
		if err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("mean: %w", err)}
		}
		return &StandardScaler{Mean: mean, Scale: scale}, nil
	}

	minv, err := toVector(a.Min)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("min: %w", err)}
	}
	return &MinMaxScaler{Min: minv, Scale: scale}, nil
}

// LoadClassifier reads a classifier artifact. Paths ending in .onnx go
// through ONNX Runtime; anything else is read as a JSON artifact.
func LoadClassifier(path, onnxLibrary string) (Classifier, error) {
	if strings.EqualFold(filepath.Ext(path), ".onnx") {
		if _, err := os.Stat(path); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		return LoadONNXClassifier(path, onnxLibrary)
	}

	raw, env, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	if env.Kind != KindLogisticRegression {
		return nil, &ConfigurationError{Path: path, Kind: env.Kind, Reason: "artifact is not a classifier"}
	}
	if err := validateRaw(env.Kind, raw); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var a logisticArtifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	coef, err := toVector(a.Coef)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("coef: %w", err)}
	}
	threshold := a.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &LogisticClassifier{Coef: coef, Intercept: a.Intercept, Threshold: threshold}, nil
}

// readArtifact reads the file and checks the common envelope and version.
func readArtifact(path string) ([]byte, envelope, error) {
	var env envelope
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, env, &LoadError{Path: path, Err: err}
	}
	if err := validateRaw("envelope", raw); err != nil {
		return nil, env, &LoadError{Path: path, Err: err}
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, env, &LoadError{Path: path, Err: err}
	}
	if err := checkVersion(env.FormatVersion); err != nil {
		return nil, env, &LoadError{Path: path, Err: err}
	}
	return raw, env, nil
}

// ErrUnsupportedVersion is returned for artifacts from another format major.
var ErrUnsupportedVersion = errors.New("unsupported artifact format version")

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x.y)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

// checkFeatureNames verifies the artifact was fitted on the same feature
// order. Absent names are accepted.
func checkFeatureNames(names []string) error {
	if len(names) == 0 {
		return nil
	}
	if len(names) != features.VectorLen {
		return fmt.Errorf("expected %d feature names, got %d", features.VectorLen, len(names))
	}
	for i, n := range names {
		if n != features.FeatureNames[i] {
			return fmt.Errorf("feature %d is %q, want %q", i, n, features.FeatureNames[i])
		}
	}
	return nil
}
