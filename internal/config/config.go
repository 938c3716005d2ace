// Package config resolves file paths and model settings from an optional
// YAML config file plus environment overrides. Stores receive their
// paths explicitly; nothing reads ambient globals at use time.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/senseflow/internal/llm"
	"gopkg.in/yaml.v3"
)

// StorageConfig holds the locations of the persisted documents.
type StorageConfig struct {
	PlanPath     string `yaml:"plan_path"`
	HabitLogPath string `yaml:"habit_log_path"`
	CalendarPath string `yaml:"calendar_path"`
}

// LLMConfig carries the file-configurable subset of the LLM settings.
// Pointer fields distinguish "unset" from an explicit false.
type LLMConfig struct {
	Enabled   *bool  `yaml:"enabled"`
	LogCalls  *bool  `yaml:"log_calls"`
	Endpoint  string `yaml:"endpoint"`
	Model     string `yaml:"model"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Config is the root of the senseflow configuration file.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	LLM     LLMConfig     `yaml:"llm"`
}

// Default returns the configuration rooted at the given data directory
// (normally ~/.senseflow).
func Default(dataDir string) Config {
	return Config{
		Storage: StorageConfig{
			PlanPath:     filepath.Join(dataDir, "current_plan.json"),
			HabitLogPath: filepath.Join(dataDir, "habit_log.json"),
			CalendarPath: filepath.Join(dataDir, "calendar.json"),
		},
	}
}

// Load resolves the effective configuration: defaults under dataDir,
// merged with the YAML file at path (if it exists), then per-path
// environment overrides. A missing config file is not an error.
func Load(dataDir, path string) (Config, error) {
	cfg := Default(dataDir)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			var file Config
			if err := yaml.Unmarshal(data, &file); err != nil {
				return Config{}, fmt.Errorf("parsing config: %w", err)
			}
			cfg = merge(cfg, file)
		}
	}

	if v := os.Getenv("SENSEFLOW_PLAN_PATH"); v != "" {
		cfg.Storage.PlanPath = v
	}
	if v := os.Getenv("SENSEFLOW_HABIT_LOG_PATH"); v != "" {
		cfg.Storage.HabitLogPath = v
	}
	if v := os.Getenv("SENSEFLOW_CALENDAR_PATH"); v != "" {
		cfg.Storage.CalendarPath = v
	}

	return cfg, nil
}

// ApplyLLM layers the file-level LLM settings over cfg. Environment
// variables read by llm.LoadConfig still win, matching the precedence
// env > file > default.
func (c Config) ApplyLLM(cfg llm.Config) llm.Config {
	if c.LLM.Enabled != nil && os.Getenv("SENSEFLOW_LLM_ENABLED") == "" {
		cfg.Enabled = *c.LLM.Enabled
	}
	if c.LLM.LogCalls != nil && os.Getenv("SENSEFLOW_LLM_LOG_CALLS") == "" {
		cfg.LogCalls = *c.LLM.LogCalls
	}
	if c.LLM.Endpoint != "" && os.Getenv("SENSEFLOW_LLM_ENDPOINT") == "" {
		cfg.Endpoint = c.LLM.Endpoint
	}
	if c.LLM.Model != "" && os.Getenv("SENSEFLOW_LLM_MODEL") == "" {
		cfg.Model = c.LLM.Model
	}
	if c.LLM.TimeoutMs > 0 && os.Getenv("SENSEFLOW_LLM_TIMEOUT_MS") == "" {
		cfg.TimeoutMs = c.LLM.TimeoutMs
	}
	return cfg
}

func merge(base, file Config) Config {
	if file.Storage.PlanPath != "" {
		base.Storage.PlanPath = file.Storage.PlanPath
	}
	if file.Storage.HabitLogPath != "" {
		base.Storage.HabitLogPath = file.Storage.HabitLogPath
	}
	if file.Storage.CalendarPath != "" {
		base.Storage.CalendarPath = file.Storage.CalendarPath
	}
	base.LLM = file.LLM
	return base
}
