package viewing

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// startTimeLayouts are tried in order. Layouts without a zone are read as
// UTC, which is what Netflix exports.
var startTimeLayouts = []string{
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	time.DateOnly,
}

// ParseStartTime parses an export start time into an absolute instant.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrMalformedTimestamp
}

// maxHours is the largest hour count whose H:59:59 still fits a time.Duration.
const maxHours = (math.MaxInt64 - int64(59*time.Minute+59*time.Second)) / int64(time.Hour)

// ParseDuration parses an export duration of the form H:MM:SS. Minutes and
// seconds must be below 60 and the total must fit a time.Duration.
func ParseDuration(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, ErrMalformedDuration
	}
	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || p == "" || p[0] == '+' {
			return 0, ErrMalformedDuration
		}
		fields[i] = n
	}
	h, m, sec := fields[0], fields[1], fields[2]
	if m > 59 || sec > 59 || int64(h) > maxHours {
		return 0, ErrMalformedDuration
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}
