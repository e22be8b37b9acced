package pipeline

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/renameio/v2"

	"github.com/backmassage/watchhabits/internal/config"
	"github.com/backmassage/watchhabits/internal/display"
	"github.com/backmassage/watchhabits/internal/logging"
	"github.com/backmassage/watchhabits/internal/viewing"
)

// Run is the clean entry point. It reads cfg.InputPath, cleans it, writes
// cfg.OutputPath and logs a summary. Nothing is written on error.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	log.Info("Reading %s", cfg.InputPath)
	records, err := viewing.ReadFile(cfg.InputPath)
	if err != nil {
		return RunStats{}, err
	}
	return RunRecords(cfg, log, records)
}

// RunRecords is [Run] for records that were already loaded.
func RunRecords(cfg *config.Config, log *logging.Logger, records []viewing.ViewRecord) (RunStats, error) {
	start := time.Now()
	stats := RunStats{OutputPath: cfg.OutputPath}

	loc, err := cfg.Location()
	if err != nil {
		return stats, err
	}

	logBatchHeader(cfg, log, len(records))

	out, cs, err := Clean(records, Options{Profiles: cfg.Profiles, Location: loc})
	stats.Stats = cs
	if err != nil {
		return stats, err
	}
	for _, name := range cs.UnknownProfiles {
		log.Warn("No records for profile %q", name)
	}
	logRules(log, cs.Rules)

	if err := WriteCSV(cfg.OutputPath, out); err != nil {
		return stats, err
	}
	stats.Elapsed = time.Since(start)

	logSummary(log, &stats)
	return stats, nil
}

// WriteCSV replaces path with the cleaned records. The file is written to a
// temporary sibling and renamed into place, so a failed write leaves any
// previous file untouched.
func WriteCSV(path string, records []viewing.CleanRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending output file: %w", err)
	}
	defer pending.Cleanup()

	if err := viewing.EncodeClean(pending, records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, n int) {
	profiles := "all"
	if len(cfg.Profiles) > 0 {
		profiles = strings.Join(cfg.Profiles, ", ")
	}
	log.Info("Cleaning %s (profiles: %s, timezone: %s)",
		display.Plural(n, "record"), profiles, cfg.Timezone)
}

// logRules logs how many titles each parser rule handled.
func logRules(log *logging.Logger, rules map[string]int) {
	for _, name := range slices.Sorted(maps.Keys(rules)) {
		log.Debug("  Title rule %-20s %d", name, rules[name])
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d kept, %d dropped", stats.Output, stats.Dropped())
	log.Info("Summary report:")
	log.Info("  Records read:          %d", stats.Input)
	if stats.Kept != stats.Input {
		log.Info("  After profile filter:  %d", stats.Kept)
	}
	log.Info("  Supplemental dropped:  %d", stats.Supplemental)
	log.Info("  Short (<=30s) dropped: %d", stats.Short)
	log.Info("  Series episodes:       %d", stats.Episodes)
	log.Info("  Profiles:              %s", strings.Join(stats.Profiles, ", "))
	if stats.Binges > 0 {
		log.Info("  Binges:                %d (longest %s)", stats.Binges, display.FormatMinutes(stats.LongestBinge))
	}
	log.Success("Wrote %s to %s in %s",
		display.Plural(stats.Output, "record"), stats.OutputPath, stats.Elapsed.Round(time.Millisecond))
}
