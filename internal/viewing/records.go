package viewing

import (
	"time"
)

// Input columns of a Netflix ViewingActivity.csv export.
const (
	ColProfile        = "Profile Name"
	ColStartTime      = "Start Time"
	ColDuration       = "Duration"
	ColAttributes     = "Attributes"
	ColTitle          = "Title"
	ColSupplemental   = "Supplemental Video Type"
	ColDeviceType     = "Device Type"
	ColBookmark       = "Bookmark"
	ColLatestBookmark = "Latest Bookmark"
	ColCountry        = "Country"
)

// Output columns of the cleaned file, in write order.
const (
	ColStartYear    = "Start Year"
	ColStartMonth   = "Start Month"
	ColStartDay     = "Start Day"
	ColStartWeekday = "Start Day of Week"
	ColStartHour    = "Start Hour"
	ColStartMinute  = "Start Minute"
	ColDurationMin  = "Duration (min)"
	ColBingeMin     = "Binge (min)"
	ColSubtitle     = "Subtitle"
	ColSeason       = "Season"
	ColEpisode      = "Episode"
)

// CleanHeader is the header row of the cleaned file.
var CleanHeader = []string{
	ColProfile, ColStartYear, ColStartMonth, ColStartDay, ColStartWeekday,
	ColStartHour, ColStartMinute, ColDurationMin, ColBingeMin,
	ColTitle, ColSubtitle, ColSeason, ColEpisode, ColDeviceType,
}

// ViewRecord is one row of the raw export.
type ViewRecord struct {
	Line                  int // 1-based CSV line, for error messages.
	Profile               string
	Start                 time.Time
	Duration              time.Duration
	Title                 string
	DeviceType            string
	SupplementalVideoType string // Empty for regular views; "TRAILER", "HOOK", ... otherwise.

	// Carried through but not used for cleaning.
	Attributes     string
	Bookmark       string
	LatestBookmark string
	Country        string
}

// IsSupplemental reports whether the row is a preview, recap, hook or
// similar extra rather than a real view.
func (r ViewRecord) IsSupplemental() bool {
	return r.SupplementalVideoType != ""
}

// CleanRecord is one row of the cleaned file. Calendar fields are in the
// pipeline's reference timezone.
type CleanRecord struct {
	Profile     string
	Year        int
	Month       int
	Day         int
	Weekday     int // 0=Monday .. 6=Sunday
	Hour        int
	Minute      int
	DurationMin float64
	BingeMin    float64
	Title       string
	Subtitle    string
	Season      string
	Episode     string
	DeviceType  string
}

// Date returns the civil start date as YYYY-MM-DD.
func (r CleanRecord) Date() string {
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// MondayWeekday maps time.Weekday (Sunday=0) to Monday=0 .. Sunday=6.
func MondayWeekday(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Profiles returns the distinct profile names in first-seen order.
func Profiles(records []ViewRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if seen[r.Profile] {
			continue
		}
		seen[r.Profile] = true
		out = append(out, r.Profile)
	}
	return out
}
