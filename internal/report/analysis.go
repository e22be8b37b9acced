package report

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/backmassage/watchhabits/internal/config"
	"github.com/backmassage/watchhabits/internal/viewing"
)

var (
	// ErrEmptyTable is returned when there are no records to chart.
	ErrEmptyTable = errors.New("no records to chart")
	// ErrStartYear is returned for a start year before the earliest record.
	ErrStartYear = errors.New("start year before first record")
	// ErrTopN is returned when fewer than one bar is requested.
	ErrTopN = errors.New("top count must be at least 1")
)

// YLabel is the value axis label of every analysis.
const YLabel = "Minutes watched"

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Options selects the analysis and its parameters.
type Options struct {
	Analysis  config.Analysis
	Unit      config.TimeUnit
	StartYear int // 0 means the earliest year in the table.
	TopN      int
	RankBy    config.Ranking
}

// OptionsFromConfig copies the report settings out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Analysis:  cfg.Analysis,
		Unit:      cfg.TimeUnit,
		StartYear: cfg.StartYear,
		TopN:      cfg.TopN,
		RankBy:    cfg.RankBy,
	}
}

// Result is a chart ready to render.
type Result struct {
	Title  string
	XLabel string // Category axis label; empty for most analyses.
	YLabel string
	Labels []string
	Values []float64
}

// Analyze runs one analysis over t.
func Analyze(t *Table, opts Options) (Result, error) {
	if t.Len() == 0 {
		return Result{}, ErrEmptyTable
	}
	minYear := t.MinYear()
	year := opts.StartYear
	if year == 0 {
		year = minYear
	}
	if year < minYear {
		return Result{}, fmt.Errorf("%w: %d (first record is from %d)", ErrStartYear, year, minYear)
	}
	t = t.SinceYear(year)
	if t.Len() == 0 {
		return Result{}, fmt.Errorf("%w: nothing watched since %d", ErrEmptyTable, year)
	}

	res := Result{YLabel: YLabel}
	switch opts.Analysis {
	case config.AnalysisTotal:
		bars := GroupSum(t, unitKey(opts.Unit), durationMin)
		res.Labels, res.Values = unitBars(bars, opts.Unit)
		res.Title = fmt.Sprintf("Netflix watch time by %s since %d", opts.Unit.Label(), year)

	case config.AnalysisAverage:
		bars := GroupMean(t, unitKey(opts.Unit), durationMin)
		res.Labels, res.Values = unitBars(bars, opts.Unit)
		res.Title = fmt.Sprintf("Average Netflix watch time per session by %s since %d", opts.Unit.Label(), year)

	case config.AnalysisShow:
		if opts.TopN < 1 {
			return Result{}, ErrTopN
		}
		bars := GroupSum(t, showTitle, durationMin)
		SortByValue(bars)
		res.Labels, res.Values = Split(Top(bars, opts.TopN))
		res.Title = fmt.Sprintf("Top %d Netflix shows watched by time since %d", opts.TopN, year)

	case config.AnalysisBinge:
		if opts.TopN < 1 {
			return Result{}, ErrTopN
		}
		res.Labels, res.Values = topBinges(t, opts.TopN)
		res.Title = fmt.Sprintf("Top %d Netflix binges by time since %d", opts.TopN, year)
		res.XLabel = "Binge date and show"

	case config.AnalysisTop:
		res.Labels, res.Values = topPerUnit(t, opts.Unit, opts.RankBy)
		res.Title = fmt.Sprintf("Top %s by %s since %d", opts.RankBy, opts.Unit.Label(), year)

	default:
		return Result{}, fmt.Errorf("unknown analysis %q", opts.Analysis)
	}
	return res, nil
}

func durationMin(r viewing.CleanRecord) float64 { return r.DurationMin }

func showTitle(r viewing.CleanRecord) string { return r.Title }

// unitKey returns the numeric calendar field for u.
func unitKey(u config.TimeUnit) func(viewing.CleanRecord) int {
	switch u {
	case config.UnitMonth:
		return func(r viewing.CleanRecord) int { return r.Month }
	case config.UnitDayOfMonth:
		return func(r viewing.CleanRecord) int { return r.Day }
	case config.UnitDayOfWeek:
		return func(r viewing.CleanRecord) int { return r.Weekday }
	case config.UnitHour:
		return func(r viewing.CleanRecord) int { return r.Hour }
	default:
		return func(r viewing.CleanRecord) int { return r.Year }
	}
}

// UnitLabel names value v of unit u: months and weekdays by short name,
// everything else as a number.
func UnitLabel(u config.TimeUnit, v int) string {
	switch {
	case u == config.UnitMonth && v >= 1 && v <= 12:
		return monthNames[v-1]
	case u == config.UnitDayOfWeek && v >= 0 && v <= 6:
		return dayNames[v]
	}
	return strconv.Itoa(v)
}

func unitBars(bars []Bar[int], u config.TimeUnit) ([]string, []float64) {
	SortByKey(bars)
	for i := range bars {
		bars[i].Label = UnitLabel(u, bars[i].Key)
	}
	return Split(bars)
}

// topBinges returns the n longest binges labelled "<show> (YYYY-MM-DD)".
func topBinges(t *Table, n int) ([]string, []float64) {
	binges := t.UniqueBinges()
	slices.SortStableFunc(binges, func(a, b Binge) int { return cmp.Compare(b.Minutes, a.Minutes) })
	binges = binges[:min(n, len(binges))]

	labels := make([]string, len(binges))
	values := make([]float64, len(binges))
	for i, b := range binges {
		labels[i] = fmt.Sprintf("%s (%s)", b.Title, b.Date)
		values[i] = b.Minutes
	}
	return labels, values
}

// topRow is the minutes of one show within one calendar value.
type topRow struct {
	unit    int
	title   string
	minutes float64
}

// topPerUnit finds, for every value of u, the show with the most minutes
// (RankShow) or the longest binge (RankBinge). Ties keep every maximal
// show.
func topPerUnit(t *Table, u config.TimeUnit, by config.Ranking) ([]string, []float64) {
	unit := unitKey(u)
	type key struct {
		unit  int
		title string
	}

	index := make(map[key]int)
	var rows []topRow
	for _, r := range t.rows {
		k := key{unit(r), r.Title}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, topRow{unit: k.unit, title: k.title})
		}
		if by == config.RankBinge {
			rows[i].minutes = max(rows[i].minutes, r.BingeMin)
		} else {
			rows[i].minutes += r.DurationMin
		}
	}

	best := make(map[int]float64)
	for _, row := range rows {
		best[row.unit] = max(best[row.unit], row.minutes)
	}
	rows = slices.DeleteFunc(rows, func(row topRow) bool { return row.minutes < best[row.unit] })
	slices.SortStableFunc(rows, func(a, b topRow) int {
		return cmp.Or(cmp.Compare(a.unit, b.unit), cmp.Compare(a.title, b.title))
	})

	labels := make([]string, len(rows))
	values := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = UnitLabel(u, row.unit) + " " + row.title
		values[i] = row.minutes
	}
	return labels, values
}
