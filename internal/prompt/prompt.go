// Package prompt asks for settings interactively with huh forms.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/backmassage/watchhabits/internal/config"
)

// ErrCancelled is returned when the user aborts a form.
var ErrCancelled = errors.New("prompt cancelled")

func run(form *huh.Form) error {
	err := form.
		WithTheme(huh.ThemeCharm()).
		WithAccessible(os.Getenv("ACCESSIBLE") != "").
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

// InputPath asks for the file a command reads.
func InputPath(cmd config.Command, path *string) error {
	title := "What Netflix viewing activity file should we clean?"
	if cmd == config.CommandReport {
		title = "What cleaned up file should we make a graph from?"
	}
	answer := *path
	if err := run(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("ViewingActivity.csv").
				Value(&answer).
				Validate(ValidateFile),
		),
	)); err != nil {
		return err
	}
	p, err := filePath(answer)
	if err != nil {
		return err
	}
	*path = p
	return nil
}

// CleanSettings asks which profiles to keep and where to write the result.
// Selecting no profile keeps all of them.
func CleanSettings(cfg *config.Config, profiles []string) error {
	selected := cfg.Profiles
	output := cfg.OutputPath

	var fields []huh.Field
	if len(profiles) > 1 {
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Which profiles should we keep?").
			Description("Select none to keep every profile").
			Options(huh.NewOptions(profiles...)...).
			Value(&selected))
	}
	fields = append(fields, huh.NewInput().
		Title("Where should the cleaned file go?").
		Value(&output).
		Validate(ValidateNotEmpty))

	if err := run(huh.NewForm(huh.NewGroup(fields...))); err != nil {
		return err
	}
	cfg.Profiles = selected
	cfg.OutputPath = strings.TrimSpace(output)
	return nil
}

// Bounds are the limits a report prompt enforces, taken from the loaded
// table.
type Bounds struct {
	MinYear int
	Shows   int // Distinct titles.
	Binges  int // Distinct binges.
}

// ReportSettings asks for the analysis and then the settings it uses.
func ReportSettings(cfg *config.Config, b Bounds) error {
	analysis := cfg.Analysis
	if err := run(huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[config.Analysis]().
				Title("What analysis should we focus on?").
				Description("Total time watched, average time watched, watch time by show, max binges, or top show or binge per unit of time").
				Options(analysisOptions()...).
				Value(&analysis),
		),
	)); err != nil {
		return err
	}
	cfg.Analysis = analysis

	year := strconv.Itoa(max(cfg.StartYear, b.MinYear))
	unit := cfg.TimeUnit
	rank := cfg.RankBy
	limit := b.Shows
	if analysis == config.AnalysisBinge {
		limit = b.Binges
	}
	top := strconv.Itoa(min(cfg.TopN, max(limit, 1)))

	fields := []huh.Field{
		huh.NewInput().
			Title(fmt.Sprintf("Start year (%d or later)", b.MinYear)).
			Value(&year).
			Validate(ValidateYear(b.MinYear)),
	}
	switch analysis {
	case config.AnalysisTotal, config.AnalysisAverage, config.AnalysisTop:
		fields = append(fields, huh.NewSelect[config.TimeUnit]().
			Title("Time unit").
			Options(unitOptions()...).
			Value(&unit))
	}
	switch analysis {
	case config.AnalysisShow, config.AnalysisBinge:
		noun := "top-watched shows"
		if analysis == config.AnalysisBinge {
			noun = "longest binges"
		}
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Number of %s (1 to %d)", noun, limit)).
			Value(&top).
			Validate(ValidateCount(limit)))
	case config.AnalysisTop:
		fields = append(fields, huh.NewSelect[config.Ranking]().
			Title("Most watched show or longest binge?").
			Options(
				huh.NewOption("show", config.RankShow),
				huh.NewOption("binge", config.RankBinge),
			).
			Value(&rank))
	}

	if err := run(huh.NewForm(huh.NewGroup(fields...))); err != nil {
		return err
	}

	return applyReport(cfg, year, top, unit, rank)
}

// applyReport stores the report answers in cfg. cfg is left unchanged when
// a number does not parse.
func applyReport(cfg *config.Config, year, top string, unit config.TimeUnit, rank config.Ranking) error {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return fmt.Errorf("start year %q: %w", year, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(top))
	if err != nil {
		return fmt.Errorf("count %q: %w", top, err)
	}
	cfg.StartYear = y
	cfg.TopN = n
	cfg.TimeUnit = unit
	cfg.RankBy = rank
	return nil
}

func analysisOptions() []huh.Option[config.Analysis] {
	labels := map[config.Analysis]string{
		config.AnalysisTotal:   "total time watched",
		config.AnalysisAverage: "average time per session",
		config.AnalysisShow:    "watch time by show",
		config.AnalysisBinge:   "longest binges",
		config.AnalysisTop:     "top show or binge per time unit",
	}
	opts := make([]huh.Option[config.Analysis], len(config.Analyses))
	for i, a := range config.Analyses {
		opts[i] = huh.NewOption(labels[a], a)
	}
	return opts
}

func unitOptions() []huh.Option[config.TimeUnit] {
	opts := make([]huh.Option[config.TimeUnit], len(config.TimeUnits))
	for i, u := range config.TimeUnits {
		opts[i] = huh.NewOption(u.Label(), u)
	}
	return opts
}
