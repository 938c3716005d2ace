package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/senseflow/internal/cli"
	"github.com/alexanderramin/senseflow/internal/cli/formatter"
	"github.com/alexanderramin/senseflow/internal/coach"
	"github.com/alexanderramin/senseflow/internal/config"
	"github.com/alexanderramin/senseflow/internal/llm"
	"github.com/alexanderramin/senseflow/internal/repository"
	"github.com/alexanderramin/senseflow/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine data dir: env var or default ~/.senseflow
	dataDir := os.Getenv("SENSEFLOW_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".senseflow")
	}

	cfgPath := os.Getenv("SENSEFLOW_CONFIG")
	if cfgPath == "" {
		cfgPath = filepath.Join(dataDir, "config.yaml")
	}

	cfg, err := config.Load(dataDir, cfgPath)
	if err != nil {
		return err
	}

	// Strip styling when output is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.NoColor()
	}

	// Wire document stores
	planRepo := repository.NewJSONPlanRepo(cfg.Storage.PlanPath)
	habitRepo := repository.NewJSONHabitLogRepo(cfg.Storage.HabitLogPath)
	calendarRepo := repository.NewJSONCalendarRepo(cfg.Storage.CalendarPath)

	// Wire the generative-model boundary (only when enabled)
	llmCfg := cfg.ApplyLLM(llm.LoadConfig())
	var client llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewOllamaClient(llmCfg, observer)
	}
	studyCoach := coach.New(client)

	app := &cli.App{
		Plans:    service.NewPlanService(planRepo, studyCoach),
		Habits:   service.NewHabitService(habitRepo),
		Calendar: service.NewCalendarService(calendarRepo, planRepo),
		Coach:    studyCoach,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
