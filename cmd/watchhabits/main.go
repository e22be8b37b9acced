// Command watchhabits cleans a Netflix viewing-activity export and charts
// the cleaned file.
//
// It loads .env defaults, parses flags, validates configuration and paths,
// optionally prompts for missing settings, and runs the clean or report
// command.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"

	"github.com/backmassage/watchhabits/internal/config"
	"github.com/backmassage/watchhabits/internal/display"
	"github.com/backmassage/watchhabits/internal/logging"
	"github.com/backmassage/watchhabits/internal/pipeline"
	"github.com/backmassage/watchhabits/internal/prompt"
	"github.com/backmassage/watchhabits/internal/report"
	"github.com/backmassage/watchhabits/internal/term"
	"github.com/backmassage/watchhabits/internal/viewing"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "watchhabits: %v\n", err)
		return 1
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "watchhabits: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		if errors.Is(err, config.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "watchhabits: %v\n", err)
		return 1
	}

	// No input on a terminal: ask for it instead of failing.
	if cfg.InputPath == "" && term.IsTerminal(os.Stdin) {
		cfg.Interactive = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "watchhabits: %v\n", err)
		return 1
	}

	profile := term.Profile(cfg.ColorMode)
	log, err := logging.NewLogger(&cfg, profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "watchhabits: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on;
	// stdout is reserved for charts.
	display.PrintBanner(os.Stderr, profile)
	log.Info("=== watchhabits v%s ===", config.Version)

	if cfg.Interactive && cfg.InputPath == "" {
		if err := prompt.InputPath(cfg.Command, &cfg.InputPath); err != nil {
			log.Error("%v", err)
			return 1
		}
	}

	inputAbs, err := absPath(cfg.InputPath)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputPath)
		return 1
	}

	// Phase 3: Run the command.
	switch cfg.Command {
	case config.CommandClean:
		err = runClean(&cfg, log, inputAbs)
	case config.CommandReport:
		err = runReport(&cfg, log, profile)
	}
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

func runClean(cfg *config.Config, log *logging.Logger, inputAbs string) error {
	var records []viewing.ViewRecord
	if cfg.Interactive {
		var err error
		if records, err = viewing.ReadFile(cfg.InputPath); err != nil {
			return err
		}
		if err := prompt.CleanSettings(cfg, viewing.Profiles(records)); err != nil {
			return err
		}
	}

	outputAbs, err := absPath(cfg.OutputPath)
	if errors.Is(err, os.ErrNotExist) {
		outputAbs, err = filepath.Abs(cfg.OutputPath)
	}
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		return err
	}

	log.Info("In:  %s", cfg.InputPath)
	log.Info("Out: %s", cfg.OutputPath)

	if records != nil {
		_, err = pipeline.RunRecords(cfg, log, records)
	} else {
		_, err = pipeline.Run(cfg, log)
	}
	return err
}

func runReport(cfg *config.Config, log *logging.Logger, profile termenv.Profile) error {
	if !cfg.Interactive {
		return report.Run(cfg, log, os.Stdout, profile)
	}

	t, err := report.Load(cfg.InputPath)
	if err != nil {
		return err
	}
	if t.Len() == 0 {
		return report.ErrEmptyTable
	}
	bounds := prompt.Bounds{
		MinYear: t.MinYear(),
		Shows:   len(t.UniqueTitles()),
		Binges:  len(t.UniqueBinges()),
	}
	if err := prompt.ReportSettings(cfg, bounds); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return report.Execute(t, cfg, log, os.Stdout, profile)
}

// absPath returns the absolute, symlink-resolved path so the output can be
// compared against the input.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
