package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/senseflow/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("/home/user/.senseflow")

	assert.Equal(t, filepath.Join("/home/user/.senseflow", "current_plan.json"), cfg.Storage.PlanPath)
	assert.Equal(t, filepath.Join("/home/user/.senseflow", "habit_log.json"), cfg.Storage.HabitLogPath)
	assert.Equal(t, filepath.Join("/home/user/.senseflow", "calendar.json"), cfg.Storage.CalendarPath)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir, filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(dir), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  plan_path: /data/plan.json
llm:
  enabled: true
  model: mistral
`), 0o644))

	cfg, err := Load(dir, path)
	require.NoError(t, err)

	assert.Equal(t, "/data/plan.json", cfg.Storage.PlanPath)
	// Unset keys keep their defaults.
	assert.Equal(t, filepath.Join(dir, "habit_log.json"), cfg.Storage.HabitLogPath)
	require.NotNil(t, cfg.LLM.Enabled)
	assert.True(t, *cfg.LLM.Enabled)
	assert.Equal(t, "mistral", cfg.LLM.Model)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  plan_path: /data/plan.json
`), 0o644))
	t.Setenv("SENSEFLOW_PLAN_PATH", "/env/plan.json")
	t.Setenv("SENSEFLOW_CALENDAR_PATH", "/env/calendar.json")

	cfg, err := Load(dir, path)
	require.NoError(t, err)
	assert.Equal(t, "/env/plan.json", cfg.Storage.PlanPath)
	assert.Equal(t, "/env/calendar.json", cfg.Storage.CalendarPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [not a map"), 0o644))

	_, err := Load(dir, path)
	assert.Error(t, err)
}

func TestApplyLLM_Precedence(t *testing.T) {
	enabled := true
	fileCfg := Config{LLM: LLMConfig{
		Enabled:   &enabled,
		Endpoint:  "http://file:11434",
		Model:     "file-model",
		TimeoutMs: 9000,
	}}

	base := fileCfg.ApplyLLM(llm.LoadConfig())
	assert.True(t, base.Enabled)
	assert.Equal(t, "http://file:11434", base.Endpoint)
	assert.Equal(t, "file-model", base.Model)
	assert.Equal(t, 9000, base.TimeoutMs)

	// Environment settings win over the file.
	t.Setenv("SENSEFLOW_LLM_MODEL", "env-model")
	envWins := fileCfg.ApplyLLM(llm.LoadConfig())
	assert.Equal(t, "env-model", envWins.Model, "file value must not mask the env-resolved one")
	assert.Equal(t, "http://file:11434", envWins.Endpoint)
}
