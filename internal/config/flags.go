package config

// This file implements subcommand dispatch, CLI flag parsing and help text.
// Each subcommand gets its own FlagSet; display and utility flags are shared.
// Negated flags (e.g. --no-color) are applied after Parse so env and default
// values hold unless the flag is passed.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Version is shown by --version and in the help header. Overridden at build
// time with -ldflags "-X .../internal/config.Version=...".
var Version = "1.0.0-dev"

var (
	// ErrHelp is returned after help text was printed.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned after the version was printed.
	ErrVersion = errors.New("version requested")
)

// Output receives help and version text.
var Output io.Writer = os.Stderr

// ParseFlags parses args (without the program name) into cfg. The first
// argument selects the subcommand. On --help or --version it prints and
// returns ErrHelp or ErrVersion.
func ParseFlags(cfg *Config, args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("missing command (use 'clean' or 'report')")
	}

	switch args[0] {
	case "help", "-h", "-help", "--help":
		printUsage()
		return ErrHelp
	case "version", "-V", "-version", "--version":
		fmt.Fprintln(Output, "watchhabits v"+Version)
		return ErrVersion
	}

	cfg.Command = Command(args[0])
	fs := flag.NewFlagSet("watchhabits "+args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var negated negatedFlags
	var profiles string

	switch cfg.Command {
	case CommandClean:
		defineCleanFlags(fs, cfg, &profiles)
	case CommandReport:
		defineReportFlags(fs, cfg)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q (use 'clean' or 'report')", args[0])
	}
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)
	if negated.showHelp {
		printUsage()
		return ErrHelp
	}
	if negated.showVersion {
		fmt.Fprintln(Output, "watchhabits v"+Version)
		return ErrVersion
	}
	if isSet(fs, "profile", "p") {
		cfg.Profiles = ParseProfiles(profiles)
	}
	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineCleanFlags registers -o/--output, -p/--profile, --tz.
func defineCleanFlags(fs *flag.FlagSet, cfg *Config, profiles *string) {
	fs.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Cleaned CSV path")
	fs.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "Same as --output")
	fs.StringVar(profiles, "profile", "", "Comma-separated profile names")
	fs.StringVar(profiles, "p", "", "Same as --profile")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "Civil timezone for calendar fields")
}

// defineReportFlags registers -a/--analysis, -u/--unit, -y/--start-year, -n/--top, --by, --width.
func defineReportFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&analysisValue{&cfg.Analysis}, "analysis", "total | average | show | binge | top")
	fs.Var(&analysisValue{&cfg.Analysis}, "a", "Same as --analysis")
	fs.Var(&timeUnitValue{&cfg.TimeUnit}, "unit", "year | month | day-of-month | day-of-week | hour")
	fs.Var(&timeUnitValue{&cfg.TimeUnit}, "u", "Same as --unit")
	fs.IntVar(&cfg.StartYear, "start-year", cfg.StartYear, "First year included")
	fs.IntVar(&cfg.StartYear, "y", cfg.StartYear, "Same as --start-year")
	fs.IntVar(&cfg.TopN, "top", cfg.TopN, "Number of bars for show/binge")
	fs.IntVar(&cfg.TopN, "n", cfg.TopN, "Same as --top")
	fs.Var(&rankingValue{&cfg.RankBy}, "by", "show | binge (top analysis)")
	fs.IntVar(&cfg.ChartWidth, "width", cfg.ChartWidth, "Bar width in cells")
}

// defineDisplayFlags registers --interactive, --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.Interactive, "interactive", false, "Prompt for missing settings")
	fs.BoolVar(&cfg.Interactive, "i", false, "Same as --interactive")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// isSet reports whether any of the named flags was passed explicitly.
func isSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, n := range names {
			if f.Name == n {
				found = true
			}
		}
	})
	return found
}

// parsePositionalArgs sets InputPath from the single positional argument.
// Interactive runs may omit it.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch {
	case len(args) == 1:
		cfg.InputPath = args[0]
		return nil
	case len(args) == 0 && cfg.Interactive:
		return nil
	case len(args) == 0:
		// main decides whether to fall back to prompts.
		return nil
	}
	return fmt.Errorf("need exactly one input file (got %d arguments)", len(args))
}

// printUsage writes the help text to Output. Column-aligned for readability.
func printUsage() {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "watchhabits v" + Version + " - Netflix viewing history cleaner and charts"},
		{"", ""},
		{"  watchhabits clean  [OPTIONS] <ViewingActivity.csv>", ""},
		{"  watchhabits report [OPTIONS] <cleaned.csv>", ""},
		{"", ""},
		{"Clean", ""},
		{"  -o, --output <path>", "Cleaned CSV path (default: output.csv)"},
		{"  -p, --profile <names>", "Comma-separated profiles (default: all)"},
		{"  --tz <zone>", "Timezone for calendar fields (default: " + DefaultTimezone + ")"},
		{"", ""},
		{"Report", ""},
		{"  -a, --analysis <name>", "total | average | show | binge | top (default: total)"},
		{"  -u, --unit <unit>", "year | month | day-of-month | day-of-week | hour"},
		{"  -y, --start-year <year>", "First year included (default: earliest)"},
		{"  -n, --top <n>", "Bars for show/binge (default: 10)"},
		{"  --by <show|binge>", "Ranking for the top analysis (default: show)"},
		{"  --width <n>", "Bar width in cells (default: 50)"},
		{"", ""},
		{"Display", ""},
		{"  -i, --interactive", "Prompt for settings"},
		{"  --color", "Force colored output"},
		{"  --no-color", "Disable colored output"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Environment (flags win): " + strings.Join([]string{EnvOutput, EnvProfiles, EnvTimezone, EnvChartWidth}, ", "), ""},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(Output)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(Output, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(Output, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(Output, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so enum types (Analysis, TimeUnit, Ranking) work with flag.Var.

type analysisValue struct{ p *Analysis }

func (a *analysisValue) String() string {
	if a.p == nil {
		return ""
	}
	return string(*a.p)
}

func (a *analysisValue) Set(s string) error {
	v, err := ParseAnalysis(s)
	if err != nil {
		return err
	}
	*a.p = v
	return nil
}

// ParseAnalysis accepts an analysis name; "top shows" is an alias for top.
func ParseAnalysis(s string) (Analysis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "total":
		return AnalysisTotal, nil
	case "average", "avg":
		return AnalysisAverage, nil
	case "show", "shows":
		return AnalysisShow, nil
	case "binge", "binges":
		return AnalysisBinge, nil
	case "top", "top shows", "top-shows":
		return AnalysisTop, nil
	}
	return "", fmt.Errorf("invalid analysis %q (use total, average, show, binge or top)", s)
}

type timeUnitValue struct{ p *TimeUnit }

func (u *timeUnitValue) String() string {
	if u.p == nil {
		return ""
	}
	return string(*u.p)
}

func (u *timeUnitValue) Set(s string) error {
	v, err := ParseTimeUnit(s)
	if err != nil {
		return err
	}
	*u.p = v
	return nil
}

// ParseTimeUnit accepts a time unit with dashes, spaces or underscores
// ("day of week", "day_of_week") and the short forms weekday, day and hour
// of day.
func ParseTimeUnit(s string) (TimeUnit, error) {
	norm := strings.NewReplacer(" ", "-", "_", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "year":
		return UnitYear, nil
	case "month":
		return UnitMonth, nil
	case "day-of-month", "day":
		return UnitDayOfMonth, nil
	case "day-of-week", "weekday":
		return UnitDayOfWeek, nil
	case "hour", "hour-of-day":
		return UnitHour, nil
	}
	return "", fmt.Errorf("invalid time unit %q (use year, month, day-of-month, day-of-week or hour)", s)
}

type rankingValue struct{ p *Ranking }

func (r *rankingValue) String() string {
	if r.p == nil {
		return ""
	}
	return string(*r.p)
}

func (r *rankingValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "show":
		*r.p = RankShow
	case "binge":
		*r.p = RankBinge
	default:
		return fmt.Errorf("invalid ranking %q (use 'show' or 'binge')", s)
	}
	return nil
}
