package model

import "fmt"

// LoadError indicates an artifact is missing, unreadable or malformed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load model artifact %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ConfigurationError indicates an artifact loaded fine but cannot play the
// role it was configured for, e.g. a scaler file with no transform.
type ConfigurationError struct {
	Path   string
	Kind   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("artifact %s (kind %q): %s", e.Path, e.Kind, e.Reason)
}

// PredictionError wraps a failure inside Transform or Predict.
type PredictionError struct {
	Stage string // "transform" or "predict"
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }
