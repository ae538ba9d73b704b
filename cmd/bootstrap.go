package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/config"
	"github.com/jpsleep/sleepcheck/internal/llm"
	"github.com/jpsleep/sleepcheck/internal/logging"
	"github.com/jpsleep/sleepcheck/internal/metrics"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/store"
)

// appDeps is everything a command needs to evaluate inputs.
type appDeps struct {
	cfg      *config.Config
	log      zerolog.Logger
	store    *store.Store
	bundle   *model.Bundle
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	service  *assess.Service
	advisor  *advisor.Advisor // nil when no provider is configured

	closers []io.Closer
}

type bootOptions struct {
	// logToFile sends logs to log.file, or next to the database, instead of
	// stderr. The terminal UI needs this.
	logToFile bool
	// withAdvisor builds the LLM provider.
	withAdvisor bool
}

// bootstrap loads config, opens the store and loads the model artifacts.
// Artifact failures abort startup.
func bootstrap(cmd *cobra.Command, opts bootOptions) (*appDeps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	rt := &appDeps{cfg: cfg}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	var out io.Writer = os.Stderr
	if opts.logToFile {
		logPath := cfg.Log.File
		if logPath == "" {
			logPath = filepath.Join(filepath.Dir(dbPath), "sleepcheck.log")
		}
		f, err := logging.OpenFile(logPath)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, f)
		out = f
	} else if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, f)
		out = f
	}
	rt.log, err = logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Out: out})
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.store, err = store.Open(dbPath)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.closers = append(rt.closers, rt.store)

	rt.bundle, err = model.Load(model.Options{
		ScalerPath:     cfg.Model.ScalerPath,
		ClassifierPath: cfg.Model.ClassifierPath,
		ONNXLibrary:    cfg.Model.ONNXLibrary,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.closers = append(rt.closers, rt.bundle)
	rt.log.Info().
		Str("scaler", cfg.Model.ScalerPath).
		Str("classifier", cfg.Model.ClassifierPath).
		Str("db", dbPath).
		Msg("model loaded")

	rt.registry = prometheus.NewRegistry()
	rt.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	rt.metrics = metrics.MustNewMetrics(rt.registry)

	rt.service, err = assess.New(assess.Options{
		Scaler:     rt.bundle.Scaler,
		Classifier: rt.bundle.Classifier,
		Events:     rt.store.EventRepo(),
		Metrics:    rt.metrics,
		Logger:     rt.log,
	})
	if err != nil {
		rt.Close()
		return nil, err
	}

	if opts.withAdvisor {
		rt.advisor = buildAdvisor(cmd.Context(), cfg, rt.store.EventRepo(), rt.log)
	}
	return rt, nil
}

// buildAdvisor returns nil when no provider is configured or it fails to
// initialise; advice is optional.
func buildAdvisor(ctx context.Context, cfg *config.Config, rec llm.EventRecorder, log zerolog.Logger) *advisor.Advisor {
	pcfg, ok := cfg.LLM.ProviderConfig()
	if !ok {
		log.Info().Msg("no LLM provider configured, advice disabled")
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	provider, err := llm.NewProvider(ctx, pcfg, rec, log)
	if err != nil {
		log.Warn().Err(err).Str("provider", pcfg.Provider).Msg("LLM provider unavailable, advice disabled")
		return nil
	}
	return advisor.New(provider, advisor.DefaultConfig(), log)
}

// Close releases resources in reverse order of acquisition.
func (rt *appDeps) Close() {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintln(os.Stderr, "shutdown:", err)
	}
}

// modelInfo names the loaded classifier for display.
func modelInfo(b *model.Bundle) string {
	switch b.Classifier.(type) {
	case *model.ONNXClassifier:
		return "onnx model"
	case *model.LogisticClassifier:
		return "logistic model"
	default:
		return "model loaded"
	}
}
