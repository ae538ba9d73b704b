package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jpsleep/sleepcheck/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the test away from real config files and API keys.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("models", "scaler.json"), cfg.Model.ScalerPath)
	assert.Equal(t, filepath.Join("models", "model.json"), cfg.Model.ClassifierPath)
	assert.Equal(t, "Sleep_Disorder_Report.pdf", cfg.Report.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SLEEPCHECK_MODEL_SCALER_PATH", "/opt/models/scaler.json")
	t.Setenv("SLEEPCHECK_LOG_LEVEL", "debug")
	t.Setenv("SLEEPCHECK_LLM_TIMEOUT", "5s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/opt/models/scaler.json", cfg.Model.ScalerPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model:
  classifier_path: models/model.onnx
  onnx_library: /usr/lib/libonnxruntime.so
server:
  addr: 127.0.0.1:9000
llm:
  provider: openai
  openai:
    api_key: sk-file
    model: gpt-4.1-mini
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "models/model.onnx", cfg.Model.ClassifierPath)
	assert.Equal(t, "/usr/lib/libonnxruntime.so", cfg.Model.ONNXLibrary)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "sk-file", cfg.LLM.OpenAI.APIKey)
}

func TestLoad_DiscoveredFileInWorkingDir(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("sleepcheck.yaml", []byte("report:\n  path: out.pdf\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out.pdf", cfg.Report.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("SLEEPCHECK_MODEL_SCALER_PATH", "")
	t.Setenv("SLEEPCHECK_REPORT_PATH", "")
	// Empty env values fall back to defaults, so validation still passes.
	_, err := Load("")
	require.NoError(t, err)

	cfg := Config{Model: ModelConfig{ScalerPath: "s"}, Report: ReportConfig{Path: "r"}}
	assert.Error(t, cfg.Validate(), "missing classifier path")
}

func TestProviderConfig(t *testing.T) {
	isolate(t)

	_, ok := LLMConfig{}.ProviderConfig()
	assert.False(t, ok, "no keys means no provider")

	_, ok = LLMConfig{Provider: "none"}.ProviderConfig()
	assert.False(t, ok)

	t.Setenv("OPENAI_API_KEY", "sk-env")
	cfg, ok := LLMConfig{}.ProviderConfig()
	require.True(t, ok)
	assert.Equal(t, llm.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-env", cfg.OpenAI.APIKey)

	cfg, ok = LLMConfig{
		Provider:  "Anthropic",
		Timeout:   3 * time.Second,
		Anthropic: ProviderKeys{APIKey: "sk-ant", Model: "claude-sonnet"},
	}.ProviderConfig()
	require.True(t, ok)
	assert.Equal(t, llm.ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "sk-ant", cfg.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet", cfg.Anthropic.Model)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}
