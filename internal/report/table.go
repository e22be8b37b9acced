package report

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/backmassage/watchhabits/internal/binge"
	"github.com/backmassage/watchhabits/internal/viewing"
)

// Table is an immutable set of cleaned records. Filter methods return new
// tables.
type Table struct {
	rows []viewing.CleanRecord
}

// NewTable wraps records. The slice is not copied.
func NewTable(records []viewing.CleanRecord) *Table {
	return &Table{rows: records}
}

// Load reads a cleaned file written by the clean command.
func Load(path string) (*Table, error) {
	recs, err := viewing.ReadCleanFile(path)
	if err != nil {
		return nil, err
	}
	return NewTable(recs), nil
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.rows) }

// Records returns the underlying records.
func (t *Table) Records() []viewing.CleanRecord { return t.rows }

// Filter returns the records for which keep is true.
func (t *Table) Filter(keep func(viewing.CleanRecord) bool) *Table {
	var out []viewing.CleanRecord
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return NewTable(out)
}

// SinceYear keeps records that started in year or later.
func (t *Table) SinceYear(year int) *Table {
	return t.Filter(func(r viewing.CleanRecord) bool { return r.Year >= year })
}

// MinYear returns the earliest start year, or 0 for an empty table.
func (t *Table) MinYear() int {
	if len(t.rows) == 0 {
		return 0
	}
	m := t.rows[0].Year
	for _, r := range t.rows[1:] {
		m = min(m, r.Year)
	}
	return m
}

// UniqueTitles returns the distinct show titles in first-seen order.
func (t *Table) UniqueTitles() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.rows {
		if !seen[r.Title] {
			seen[r.Title] = true
			out = append(out, r.Title)
		}
	}
	return out
}

// Binge is one binge recovered from a cleaned file.
type Binge struct {
	Profile string
	Title   string // Show of the first session.
	Date    string // Start date of the first session.
	Minutes float64
}

// UniqueBinges collapses the sessions of each binge into one entry. Within
// a profile, a record continues the previous binge when both carry the same
// binge minutes and it starts within binge.Tolerance of the previous one
// ending. Entries are in chronological order per profile.
func (t *Table) UniqueBinges() []Binge {
	rows := slices.Clone(t.rows)
	slices.SortStableFunc(rows, func(a, b viewing.CleanRecord) int {
		return cmp.Or(cmp.Compare(a.Profile, b.Profile), startOf(a).Compare(startOf(b)))
	})

	var out []Binge
	for i, r := range rows {
		if i > 0 && sameBinge(rows[i-1], r) {
			continue
		}
		out = append(out, Binge{Profile: r.Profile, Title: r.Title, Date: r.Date(), Minutes: r.BingeMin})
	}
	return out
}

// startSlack covers start times stored to the minute in the cleaned file.
const startSlack = time.Minute

func sameBinge(prev, cur viewing.CleanRecord) bool {
	if prev.Profile != cur.Profile || prev.BingeMin != cur.BingeMin {
		return false
	}
	prevLen := time.Duration(prev.DurationMin * float64(time.Minute))
	return !startOf(cur).After(startOf(prev).Add(prevLen + binge.Tolerance + startSlack))
}

func startOf(r viewing.CleanRecord) time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, r.Hour, r.Minute, 0, 0, time.UTC)
}

// Bar is one bar of a chart: the group key, its display label and value.
type Bar[K cmp.Ordered] struct {
	Key   K
	Label string
	Value float64
}

// GroupSum sums value per key. Bars are in first-seen key order and
// labelled with the key.
func GroupSum[K cmp.Ordered](t *Table, key func(viewing.CleanRecord) K, value func(viewing.CleanRecord) float64) []Bar[K] {
	bars, _ := group(t, key, value)
	return bars
}

// GroupMean averages value per key.
func GroupMean[K cmp.Ordered](t *Table, key func(viewing.CleanRecord) K, value func(viewing.CleanRecord) float64) []Bar[K] {
	bars, counts := group(t, key, value)
	for i := range bars {
		bars[i].Value /= float64(counts[i])
	}
	return bars
}

func group[K cmp.Ordered](t *Table, key func(viewing.CleanRecord) K, value func(viewing.CleanRecord) float64) ([]Bar[K], []int) {
	index := make(map[K]int)
	var bars []Bar[K]
	var counts []int
	for _, r := range t.rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(bars)
			index[k] = i
			bars = append(bars, Bar[K]{Key: k, Label: fmt.Sprint(k)})
			counts = append(counts, 0)
		}
		bars[i].Value += value(r)
		counts[i]++
	}
	return bars, counts
}

// SortByKey orders bars by ascending key.
func SortByKey[K cmp.Ordered](bars []Bar[K]) {
	slices.SortStableFunc(bars, func(a, b Bar[K]) int { return cmp.Compare(a.Key, b.Key) })
}

// SortByValue orders bars by descending value; equal values keep key order.
func SortByValue[K cmp.Ordered](bars []Bar[K]) {
	slices.SortStableFunc(bars, func(a, b Bar[K]) int {
		return cmp.Or(cmp.Compare(b.Value, a.Value), cmp.Compare(a.Key, b.Key))
	})
}

// Top returns the first n bars, or all of them when there are fewer.
func Top[K cmp.Ordered](bars []Bar[K], n int) []Bar[K] {
	return bars[:max(0, min(n, len(bars)))]
}

// Split returns parallel label and value slices for [Chart.Render].
func Split[K cmp.Ordered](bars []Bar[K]) ([]string, []float64) {
	labels := make([]string, len(bars))
	values := make([]float64, len(bars))
	for i, b := range bars {
		labels[i], values[i] = b.Label, b.Value
	}
	return labels, values
}
