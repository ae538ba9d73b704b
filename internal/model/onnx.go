package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jpsleep/sleepcheck/internal/features"
	ort "github.com/yalue/onnxruntime_go"
)

// onnxLabelOutput is the output tensor converted classifiers expose for the
// predicted class.
const onnxLabelOutput = "label"

// ortEnv is the process-wide ONNX Runtime environment.
var ortEnv struct {
	once sync.Once
	err  error
}

func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// ONNXClassifier runs an ONNX-exported binary classifier.
type ONNXClassifier struct {
	mu        sync.Mutex
	session   *ort.DynamicAdvancedSession
	inputName string
}

// LoadONNXClassifier opens the model at path. libPath points at the ONNX
// Runtime shared library; empty uses the runtime's default lookup.
func LoadONNXClassifier(path, libPath string) (*ONNXClassifier, error) {
	if err := initORT(libPath); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("initialize onnx runtime: %w", err)}
	}

	inputs, outputs, err := ort.GetInputOutputInfo(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read model info: %w", err)}
	}
	if len(inputs) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("model has no inputs")}
	}
	hasLabel := false
	for _, o := range outputs {
		if o.Name == onnxLabelOutput {
			hasLabel = true
			break
		}
	}
	if !hasLabel {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("model has no %q output", onnxLabelOutput)}
	}

	session, err := ort.NewDynamicAdvancedSession(path,
		[]string{inputs[0].Name}, []string{onnxLabelOutput}, nil)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("create session: %w", err)}
	}

	return &ONNXClassifier{session: session, inputName: inputs[0].Name}, nil
}

// Predict implements Classifier.
func (c *ONNXClassifier) Predict(v features.Vector) (Prediction, error) {
	if err := checkFinite(v); err != nil {
		return LowRisk, &PredictionError{Stage: "predict", Err: err}
	}

	data := make([]float32, features.VectorLen)
	for i, x := range v {
		data[i] = float32(x)
	}

	in, err := ort.NewTensor(ort.NewShape(1, features.VectorLen), data)
	if err != nil {
		return LowRisk, &PredictionError{Stage: "predict", Err: err}
	}
	defer in.Destroy()

	out, err := ort.NewEmptyTensor[int64](ort.NewShape(1))
	if err != nil {
		return LowRisk, &PredictionError{Stage: "predict", Err: err}
	}
	defer out.Destroy()

	c.mu.Lock()
	err = c.session.Run([]ort.Value{in}, []ort.Value{out})
	c.mu.Unlock()
	if err != nil {
		return LowRisk, &PredictionError{Stage: "predict", Err: err}
	}

	switch label := out.GetData()[0]; label {
	case 0:
		return LowRisk, nil
	case 1:
		return HighRisk, nil
	default:
		return LowRisk, &PredictionError{Stage: "predict", Err: fmt.Errorf("unexpected class label %d", label)}
	}
}

// Close releases the session.
func (c *ONNXClassifier) Close() error {
	return c.session.Destroy()
}
