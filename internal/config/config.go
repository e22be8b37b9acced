// Package config holds runtime configuration: defaults, .env overrides,
// per-subcommand CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // reference timezone must resolve on hosts without zoneinfo
)

// --- Enum types for validated string fields ---

// Command selects the subcommand.
type Command string

const (
	CommandClean  Command = "clean"  // Clean a raw export into the flat output file.
	CommandReport Command = "report" // Chart a cleaned file.
)

// Analysis selects the report to draw.
type Analysis string

const (
	AnalysisTotal   Analysis = "total"   // Minutes watched per time unit (default).
	AnalysisAverage Analysis = "average" // Mean minutes per session per time unit.
	AnalysisShow    Analysis = "show"    // Top N shows by minutes watched.
	AnalysisBinge   Analysis = "binge"   // Top N binges.
	AnalysisTop     Analysis = "top"     // Top show or binge for every time unit value.
)

// Analyses lists every analysis in menu order.
var Analyses = []Analysis{AnalysisTotal, AnalysisAverage, AnalysisShow, AnalysisBinge, AnalysisTop}

// TimeUnit is the calendar unit a report is sliced on.
type TimeUnit string

const (
	UnitYear       TimeUnit = "year"
	UnitMonth      TimeUnit = "month"
	UnitDayOfMonth TimeUnit = "day-of-month"
	UnitDayOfWeek  TimeUnit = "day-of-week"
	UnitHour       TimeUnit = "hour"
)

// TimeUnits lists every time unit in menu order.
var TimeUnits = []TimeUnit{UnitYear, UnitMonth, UnitDayOfMonth, UnitDayOfWeek, UnitHour}

// Label is the human form used in chart titles ("day of week").
func (u TimeUnit) Label() string {
	if u == UnitHour {
		return "hour of day"
	}
	return strings.ReplaceAll(string(u), "-", " ")
}

// Ranking selects what the top analysis ranks.
type Ranking string

const (
	RankShow  Ranking = "show"  // Most minutes of one show.
	RankBinge Ranking = "binge" // Longest single binge.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultTimezone is the civil timezone calendar fields are derived in.
const DefaultTimezone = "America/Chicago"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [ApplyEnv], then [ParseFlags], and passed by pointer to the packages
// that need it.
type Config struct {
	Command   Command
	InputPath string // Positional argument.

	// clean
	OutputPath string   // Default: "output.csv".
	Profiles   []string // Empty means every profile.
	Timezone   string   // Default: "America/Chicago".

	// report
	Analysis   Analysis // Default: total.
	TimeUnit   TimeUnit // Default: year.
	StartYear  int      // 0 means the earliest year in the data.
	TopN       int      // Default: 10.
	RankBy     Ranking  // Default: show.
	ChartWidth int      // Default: 50 cells.

	// Display and logging.
	Interactive bool
	Verbose     bool
	ColorMode   ColorMode // Default: "auto".
	LogFile     string    // Optional log file path.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// env and CLI overrides.
func DefaultConfig() Config {
	return Config{
		OutputPath: "output.csv",
		Timezone:   DefaultTimezone,
		Analysis:   AnalysisTotal,
		TimeUnit:   UnitYear,
		TopN:       10,
		RankBy:     RankShow,
		ChartWidth: 50,
		ColorMode:  ColorAuto,
	}
}

// minChartWidth keeps bars distinguishable.
const minChartWidth = 10

// Validate checks enum fields and numeric ranges, and that an input path is
// given unless the run is interactive.
func (c *Config) Validate() error {
	switch c.Command {
	case CommandClean, CommandReport:
		// valid
	default:
		return fmt.Errorf("unknown command %q (use 'clean' or 'report')", c.Command)
	}

	if !isAnalysis(c.Analysis) {
		return fmt.Errorf("invalid analysis %q", c.Analysis)
	}
	if !isTimeUnit(c.TimeUnit) {
		return fmt.Errorf("invalid time unit %q", c.TimeUnit)
	}
	switch c.RankBy {
	case RankShow, RankBinge:
		// valid
	default:
		return errors.New("invalid ranking (use 'show' or 'binge')")
	}
	if c.TopN < 1 {
		return fmt.Errorf("top must be at least 1 (got %d)", c.TopN)
	}
	if c.StartYear < 0 {
		return fmt.Errorf("start year must not be negative (got %d)", c.StartYear)
	}
	if c.ChartWidth < minChartWidth {
		return fmt.Errorf("chart width must be at least %d (got %d)", minChartWidth, c.ChartWidth)
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	if c.Command == CommandClean && strings.TrimSpace(c.OutputPath) == "" {
		return errors.New("output path must not be empty")
	}
	if c.InputPath == "" && !c.Interactive {
		return errors.New("need exactly one input file")
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ValidatePaths ensures the cleaned output does not overwrite the export it
// was read from. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	if inputAbs == outputAbs {
		return errors.New("output file must not be the input file")
	}
	return nil
}

// ParseProfiles splits a comma-separated profile list. A lone "None" or "all"
// (any case) selects every profile, as does an empty string.
func ParseProfiles(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "none") || strings.EqualFold(trimmed, "all") {
		return nil
	}
	var out []string
	for _, p := range strings.Split(trimmed, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isAnalysis(a Analysis) bool {
	for _, v := range Analyses {
		if v == a {
			return true
		}
	}
	return false
}

func isTimeUnit(u TimeUnit) bool {
	for _, v := range TimeUnits {
		if v == u {
			return true
		}
	}
	return false
}
