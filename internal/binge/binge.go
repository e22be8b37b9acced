// Package binge groups consecutive viewing sessions into binges.
//
// A binge is a maximal run of sessions where each session starts no more
// than [Tolerance] after the previous one ended. Groups are found with a
// single reverse walk over the chronologically sorted sessions, carrying a
// running total; every member of a group is then annotated with the group's
// full total.
package binge

import (
	"math"
	"slices"
	"time"
)

// Tolerance is the largest gap between the end of one session and the start
// of the next that still counts as the same binge. Overlapping sessions
// (negative gaps) are always contiguous.
const Tolerance = time.Minute

// Session is one viewing session. Sessions passed to [Groups] and
// [Annotate] must be sorted ascending by Start.
type Session struct {
	Start    time.Time
	Duration time.Duration
}

// End returns the instant the session stopped playing.
func (s Session) End() time.Time {
	return s.Start.Add(s.Duration)
}

// Group is one binge: sessions First..Last inclusive, and their combined
// minutes.
type Group struct {
	First   int
	Last    int
	Minutes float64
}

// Len returns the number of sessions in the group.
func (g Group) Len() int {
	return g.Last - g.First + 1
}

// Minutes converts d to minutes rounded to two decimal places.
func Minutes(d time.Duration) float64 {
	return round2(d.Seconds() / 60)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Contiguous reports whether later starts within [Tolerance] of the end of
// earlier.
func Contiguous(earlier, later Session) bool {
	return later.Start.Sub(earlier.End()) <= Tolerance
}

// Groups partitions sessions into binges, in chronological order.
//
// The walk starts from the most recent session with its own minutes as the
// running total. Each earlier session either joins the current group (its
// minutes are added and the sum replaces the total) or opens a new one.
func Groups(sessions []Session) []Group {
	var groups []Group
	for i := len(sessions) - 1; i >= 0; i-- {
		m := Minutes(sessions[i].Duration)
		if len(groups) > 0 && Contiguous(sessions[i], sessions[i+1]) {
			head := &groups[len(groups)-1]
			head.First = i
			head.Minutes = round2(head.Minutes + m)
			continue
		}
		groups = append(groups, Group{First: i, Last: i, Minutes: m})
	}
	slices.Reverse(groups)
	return groups
}

// Annotate returns, for every session, the total minutes of the binge it
// belongs to. The result is parallel to sessions.
func Annotate(sessions []Session) []float64 {
	out := make([]float64, len(sessions))
	for _, g := range Groups(sessions) {
		for i := g.First; i <= g.Last; i++ {
			out[i] = g.Minutes
		}
	}
	return out
}
