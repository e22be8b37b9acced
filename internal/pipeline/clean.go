package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/backmassage/watchhabits/internal/binge"
	"github.com/backmassage/watchhabits/internal/config"
	"github.com/backmassage/watchhabits/internal/naming"
	"github.com/backmassage/watchhabits/internal/viewing"
)

// MinDuration is the shortest session that is kept. A session must be
// strictly longer to survive.
const MinDuration = 30 * time.Second

// ErrInvalidProfile is matched by [ProfileError].
var ErrInvalidProfile = errors.New("invalid profile")

// ProfileError is returned when none of the requested profiles exist.
type ProfileError struct {
	Requested []string
	Available []string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("no records for profile %s (available: %s)",
		strings.Join(e.Requested, ", "), strings.Join(e.Available, ", "))
}

func (e *ProfileError) Is(target error) bool { return target == ErrInvalidProfile }

// Options controls [Clean].
type Options struct {
	Profiles []string       // Empty keeps every profile.
	Location *time.Location // Nil means config.DefaultTimezone.
}

// Clean converts raw records into cleaned records in input order.
//
// Binge minutes are computed per profile over all non-supplemental sessions
// sorted by start, before sessions of [MinDuration] or less are dropped, so
// a short trailer between two episodes still bridges the gap.
func Clean(records []viewing.ViewRecord, opts Options) ([]viewing.CleanRecord, Stats, error) {
	stats := Stats{Input: len(records), Rules: make(map[string]int)}

	loc := opts.Location
	if loc == nil {
		var err error
		if loc, err = time.LoadLocation(config.DefaultTimezone); err != nil {
			return nil, stats, fmt.Errorf("load timezone: %w", err)
		}
	}

	selected, unknown, err := selectProfiles(records, opts.Profiles)
	if err != nil {
		return nil, stats, err
	}
	stats.Kept = len(selected)
	stats.UnknownProfiles = unknown

	views := make([]viewing.ViewRecord, 0, len(selected))
	for _, r := range selected {
		if r.IsSupplemental() {
			stats.Supplemental++
			continue
		}
		views = append(views, r)
	}

	bingeMin := annotate(views, &stats)

	out := make([]viewing.CleanRecord, 0, len(views))
	seen := make(map[string]bool)
	for i, v := range views {
		if v.Duration <= MinDuration {
			stats.Short++
			continue
		}
		c, rule := naming.ParseNamed(v.Title)
		stats.Rules[rule]++
		if c.IsEpisode() {
			stats.Episodes++
		}
		out = append(out, newCleanRecord(v, loc, bingeMin[i], c))
		if !seen[v.Profile] {
			seen[v.Profile] = true
			stats.Profiles = append(stats.Profiles, v.Profile)
		}
	}
	stats.Output = len(out)
	return out, stats, nil
}

// selectProfiles keeps records of the requested profiles. Requested names
// with no records are returned as unknown; if every name is unknown the
// result is a *ProfileError.
func selectProfiles(records []viewing.ViewRecord, requested []string) ([]viewing.ViewRecord, []string, error) {
	if len(requested) == 0 {
		return records, nil, nil
	}

	available := viewing.Profiles(records)
	var known, unknown []string
	for _, name := range requested {
		if slices.Contains(available, name) {
			known = append(known, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	if len(known) == 0 {
		return nil, unknown, &ProfileError{Requested: requested, Available: available}
	}

	var out []viewing.ViewRecord
	for _, r := range records {
		if slices.Contains(known, r.Profile) {
			out = append(out, r)
		}
	}
	return out, unknown, nil
}

// annotate returns the binge minutes of every view, parallel to views.
// Groups never cross profiles.
func annotate(views []viewing.ViewRecord, stats *Stats) []float64 {
	byProfile := make(map[string][]int)
	var order []string
	for i, v := range views {
		if _, ok := byProfile[v.Profile]; !ok {
			order = append(order, v.Profile)
		}
		byProfile[v.Profile] = append(byProfile[v.Profile], i)
	}

	out := make([]float64, len(views))
	for _, p := range order {
		idx := byProfile[p]
		slices.SortStableFunc(idx, func(a, b int) int {
			return views[a].Start.Compare(views[b].Start)
		})

		sessions := make([]binge.Session, len(idx))
		for k, i := range idx {
			sessions[k] = binge.Session{Start: views[i].Start, Duration: views[i].Duration}
		}
		for _, g := range binge.Groups(sessions) {
			if g.Len() > 1 {
				stats.Binges++
			}
			stats.LongestBinge = max(stats.LongestBinge, g.Minutes)
		}
		for k, m := range binge.Annotate(sessions) {
			out[idx[k]] = m
		}
	}
	return out
}

func newCleanRecord(v viewing.ViewRecord, loc *time.Location, bingeMin float64, c naming.TitleComponents) viewing.CleanRecord {
	t := v.Start.In(loc)
	return viewing.CleanRecord{
		Profile:     v.Profile,
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Weekday:     viewing.MondayWeekday(t.Weekday()),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		DurationMin: binge.Minutes(v.Duration),
		BingeMin:    bingeMin,
		Title:       c.Show,
		Subtitle:    c.Subtitle,
		Season:      c.Season,
		Episode:     c.Episode,
		DeviceType:  v.DeviceType,
	}
}
