package naming

import (
	"strings"
)

// Rule pairs a predicate over the colon segments with an extraction
// function. Rules are evaluated in order by [Parse]; first match wins. Match
// is only called with three or more segments and must reject shapes that
// Extract cannot index. Extract leaves Show empty; Parse fills it in.
type Rule struct {
	Name    string
	Match   func(segs []string) bool
	Extract func(segs []string) TitleComponents
}

const comediansInCars = "Comedians in Cars Getting Coffee"

// Rules is the ordered rule table. Franchise special cases come first, the
// general season/part/volume and segment-count rules last.
var Rules = []Rule{
	{"Book", matchBook, extractBook},
	{"Bleach", matchBleach, extractSeasonEpisode},
	{"Comedians-in-Cars", matchComedians, extractComedians},
	{"Black-and-White", matchBlackAndWhite, extractBlackAndWhite},
	{"Season-Part-Volume", matchSeasonKeyword, extractSeasonEpisode},
	{"Three-segments", matchCount(3), extractSubtitleEpisode},
	{"Four-segments", matchCount(4), extractSubtitleSeasonEpisode},
}

// --- Match predicates ---

// matchBook handles "Show: Book One: Chapter: Episode". Avatar titles carry
// the episode right after the book; everything else needs a fourth segment.
func matchBook(segs []string) bool {
	if !strings.Contains(segs[1], "Book") {
		return false
	}
	return isAvatar(segs) || len(segs) >= 4
}

func isAvatar(segs []string) bool {
	return strings.Contains(segs[0], "Avatar")
}

func matchBleach(segs []string) bool {
	return strings.Contains(segs[0], "Bleach")
}

func matchComedians(segs []string) bool {
	return segs[0] == comediansInCars
}

func matchBlackAndWhite(segs []string) bool {
	return segs[1] == "Black & White" && len(segs) >= 5
}

var seasonKeywords = []string{"Season", "Part", "Volume"}

func matchSeasonKeyword(segs []string) bool {
	for _, kw := range seasonKeywords {
		if strings.Contains(segs[1], kw) {
			return true
		}
	}
	return false
}

func matchCount(n int) func([]string) bool {
	return func(segs []string) bool { return len(segs) == n }
}

// --- Extract functions ---

func extractBook(segs []string) TitleComponents {
	if isAvatar(segs) {
		return TitleComponents{Season: segs[1], Episode: segs[2]}
	}
	return TitleComponents{
		Season:  strings.Join(segs[1:3], ": "),
		Episode: segs[3],
	}
}

func extractSeasonEpisode(segs []string) TitleComponents {
	return TitleComponents{Season: segs[1], Episode: segs[2]}
}

// extractComedians folds the "New 2018" special season with the segment
// that follows it; the episode is whatever remains.
func extractComedians(segs []string) TitleComponents {
	season := segs[1]
	rest := segs[2:]
	if season == "New 2018" {
		season += ": " + segs[2]
		rest = segs[3:]
	}
	return TitleComponents{
		Season:  season,
		Episode: strings.Join(rest, ": "),
	}
}

// extractBlackAndWhite takes the episode from the fifth segment. The fourth
// is dropped; the catalog shape for these titles has not been confirmed.
func extractBlackAndWhite(segs []string) TitleComponents {
	return TitleComponents{
		Subtitle: segs[1],
		Season:   segs[2],
		Episode:  segs[4],
	}
}

func extractSubtitleEpisode(segs []string) TitleComponents {
	return TitleComponents{Subtitle: segs[1], Episode: segs[2]}
}

func extractSubtitleSeasonEpisode(segs []string) TitleComponents {
	return TitleComponents{
		Subtitle: segs[1],
		Season:   segs[2],
		Episode:  segs[3],
	}
}
