package pipeline

import "time"

// Stats counts what [Clean] kept and dropped.
type Stats struct {
	Input           int      // Records read.
	Kept            int      // Records left after the profile filter.
	Supplemental    int      // Trailers, hooks and recaps dropped.
	Short           int      // Sessions of MinDuration or less dropped.
	Output          int      // Records written.
	Episodes        int      // Written records that parsed to a series episode.
	Binges          int      // Groups of two or more sessions.
	LongestBinge    float64  // Minutes of the longest group.
	Profiles        []string // Profiles present in the output, first-seen order.
	UnknownProfiles []string // Requested names with no records.
	Rules           map[string]int
}

// Dropped returns the number of kept records that did not reach the output.
func (s *Stats) Dropped() int {
	return s.Supplemental + s.Short
}

// RunStats is [Stats] plus what the runner did with the result.
type RunStats struct {
	Stats
	OutputPath string
	Elapsed    time.Duration
}
