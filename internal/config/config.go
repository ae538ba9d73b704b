// Package config loads sleepcheck settings from an optional file,
// SLEEPCHECK_* environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g.
// SLEEPCHECK_MODEL_SCALER_PATH.
const EnvPrefix = "SLEEPCHECK"

// Config is the full application configuration.
type Config struct {
	Model  ModelConfig  `mapstructure:"model"`
	Store  StoreConfig  `mapstructure:"store"`
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ModelConfig locates the scaler and classifier artifacts.
type ModelConfig struct {
	ScalerPath     string `mapstructure:"scaler_path"`
	ClassifierPath string `mapstructure:"classifier_path"`
	ONNXLibrary    string `mapstructure:"onnx_library"`
}

type StoreConfig struct {
	// Path is the SQLite event log. Empty resolves to the XDG data dir.
	Path string `mapstructure:"path"`
}

type ReportConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives logs; the terminal UI always logs to a file.
	File string `mapstructure:"file"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LLMConfig selects the optional advice provider. An empty provider means
// discover one from the standard API key variables; "none" disables it.
type LLMConfig struct {
	Provider   string        `mapstructure:"provider"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Anthropic  ProviderKeys  `mapstructure:"anthropic"`
	OpenAI     ProviderKeys  `mapstructure:"openai"`
	Gemini     ProviderKeys  `mapstructure:"gemini"`
	OpenRouter ProviderKeys  `mapstructure:"openrouter"`
}

type ProviderKeys struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

var defaults = map[string]any{
	"model.scaler_path":       filepath.Join("models", "scaler.json"),
	"model.classifier_path":   filepath.Join("models", "model.json"),
	"model.onnx_library":      "",
	"store.path":              "",
	"report.path":             "Sleep_Disorder_Report.pdf",
	"log.level":               "info",
	"log.format":              "console",
	"log.file":                "",
	"server.addr":             ":8080",
	"llm.provider":            "",
	"llm.timeout":             30 * time.Second,
	"llm.anthropic.api_key":   "",
	"llm.anthropic.model":     "",
	"llm.anthropic.base_url":  "",
	"llm.openai.api_key":      "",
	"llm.openai.model":        "",
	"llm.openai.base_url":     "",
	"llm.gemini.api_key":      "",
	"llm.gemini.model":        "",
	"llm.gemini.base_url":     "",
	"llm.openrouter.api_key":  "",
	"llm.openrouter.model":    "",
	"llm.openrouter.base_url": "",
}

// Load reads configuration. When file is empty, sleepcheck.yaml is looked
// up in the working directory and the user config dir; a missing file is
// not an error. An explicitly named file must exist.
func Load(file string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("sleepcheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := userConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if c.Model.ScalerPath == "" {
		return errors.New("model.scaler_path is required")
	}
	if c.Model.ClassifierPath == "" {
		return errors.New("model.classifier_path is required")
	}
	if c.Report.Path == "" {
		return errors.New("report.path is required")
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative, got %s", c.LLM.Timeout)
	}
	return nil
}

func userConfigDir() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "sleepcheck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sleepcheck"), nil
}
