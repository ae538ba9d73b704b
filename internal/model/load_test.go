package model

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/jpsleep/sleepcheck/internal/features"
)

func fixture(name string) string { return filepath.Join("testdata", name) }

func TestLoadScaler_Standard(t *testing.T) {
	s, err := LoadScaler(fixture("standard_scaler.json"))
	if err != nil {
		t.Fatalf("LoadScaler: %v", err)
	}
	in := features.Vector{14, 1, 2, 6, 7, 60, 8, 3, 90, 7000, 140, 90}
	got, err := s.Transform(in)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	want := features.Vector{2, 1, 2, 2, 2, 1, 3, 2, 2, 2, 2, 1}
	if got != want {
		t.Errorf("Transform = %v, want %v", got, want)
	}
}

func TestLoadScaler_MinMax(t *testing.T) {
	s, err := LoadScaler(fixture("minmax_scaler.json"))
	if err != nil {
		t.Fatalf("LoadScaler: %v", err)
	}
	got, err := s.Transform(features.Vector{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	want := features.Vector{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	if got != want {
		t.Errorf("Transform = %v, want %v", got, want)
	}
}

func TestLoadScaler_NoTransformIsConfigurationError(t *testing.T) {
	_, err := LoadScaler(fixture("normalizer.json"))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Kind != "normalizer" {
		t.Errorf("Kind = %q, want normalizer", cfgErr.Kind)
	}
}

func TestLoadScaler_ClassifierArtifactIsConfigurationError(t *testing.T) {
	_, err := LoadScaler(fixture("stress_logistic.json"))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T: %v", err, err)
	}
}

func TestLoadScaler_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"missing file", "does_not_exist.json"},
		{"not json", "garbage.json"},
		{"wrong major version", "scaler_v2.json"},
		{"short vectors", "scaler_short.json"},
		{"zero scale", "scaler_zero_scale.json"},
		{"feature order mismatch", "scaler_wrong_names.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScaler(fixture(tt.file))
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %T: %v", err, err)
			}
			if loadErr.Path != fixture(tt.file) {
				t.Errorf("Path = %q", loadErr.Path)
			}
		})
	}
}

func TestLoadScaler_VersionErrorIsSentinel(t *testing.T) {
	_, err := LoadScaler(fixture("scaler_v2.json"))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion in chain, got %v", err)
	}
}

func TestLoadClassifier_Logistic(t *testing.T) {
	c, err := LoadClassifier(fixture("stress_logistic.json"), "")
	if err != nil {
		t.Fatalf("LoadClassifier: %v", err)
	}
	lc, ok := c.(*LogisticClassifier)
	if !ok {
		t.Fatalf("got %T, want *LogisticClassifier", c)
	}
	if lc.Threshold != DefaultThreshold {
		t.Errorf("Threshold = %v, want default %v", lc.Threshold, DefaultThreshold)
	}

	tests := []struct {
		stress float64
		want   Prediction
	}{
		{4, LowRisk},
		{5, LowRisk}, // p == 0.5 is not above the threshold
		{6, HighRisk},
	}
	for _, tt := range tests {
		var v features.Vector
		v[6] = tt.stress
		got, err := c.Predict(v)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if got != tt.want {
			t.Errorf("stress %v: got %v, want %v", tt.stress, got, tt.want)
		}
	}
}

func TestLoadClassifier_Errors(t *testing.T) {
	_, err := LoadClassifier(fixture("bad_threshold.json"), "")
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("bad threshold: expected *LoadError, got %T", err)
	}

	_, err = LoadClassifier(fixture("standard_scaler.json"), "")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("scaler as classifier: expected *ConfigurationError, got %T", err)
	}

	_, err = LoadClassifier(fixture("missing.onnx"), "")
	if !errors.As(err, &loadErr) {
		t.Errorf("missing onnx: expected *LoadError, got %T", err)
	}
}

func TestLoad_Bundle(t *testing.T) {
	b, err := Load(Options{
		ScalerPath:     fixture("standard_scaler.json"),
		ClassifierPath: fixture("stress_logistic.json"),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer b.Close()
	if b.Scaler == nil || b.Classifier == nil {
		t.Fatal("bundle is incomplete")
	}
}

func TestLoad_ShippedArtifacts(t *testing.T) {
	b, err := Load(Options{
		ScalerPath:     filepath.Join("..", "..", "models", "scaler.json"),
		ClassifierPath: filepath.Join("..", "..", "models", "model.json"),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	vec, _, err := features.Build(features.DefaultInputs())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	scaled, err := b.Scaler.Transform(vec)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if _, err := b.Classifier.Predict(scaled); err != nil {
		t.Fatalf("Predict: %v", err)
	}
}

func TestTransform_NonFiniteIsPredictionError(t *testing.T) {
	s := &StandardScaler{Scale: features.Vector{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}}
	_, err := s.Transform(features.Vector{math.Inf(1)})
	var predErr *PredictionError
	if !errors.As(err, &predErr) {
		t.Fatalf("expected *PredictionError, got %T", err)
	}
	if predErr.Stage != "transform" {
		t.Errorf("Stage = %q", predErr.Stage)
	}
	if !errors.Is(err, ErrNonFinite) {
		t.Error("expected ErrNonFinite in chain")
	}
}

func TestPredict_NonFiniteIsPredictionError(t *testing.T) {
	c := &LogisticClassifier{Threshold: DefaultThreshold}
	_, err := c.Predict(features.Vector{math.NaN()})
	var predErr *PredictionError
	if !errors.As(err, &predErr) || predErr.Stage != "predict" {
		t.Fatalf("expected predict-stage *PredictionError, got %v", err)
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		v  string
		ok bool
	}{
		{"v1.0.0", true},
		{"v1.4.2", true},
		{"v1", true},
		{"1.0.0", false},
		{"v0.9.0", false},
		{"v2.0.0", false},
		{"", false},
	}
	for _, tt := range tests {
		err := checkVersion(tt.v)
		if (err == nil) != tt.ok {
			t.Errorf("checkVersion(%q) = %v, want ok=%v", tt.v, err, tt.ok)
		}
	}
}

func TestPrediction_Positive(t *testing.T) {
	if LowRisk.Positive() || !HighRisk.Positive() {
		t.Error("Positive mismatch")
	}
	if HighRisk.String() != "high risk" {
		t.Errorf("String = %q", HighRisk.String())
	}
}
