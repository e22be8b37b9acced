package naming

import (
	"strings"
)

// TitleComponents holds the structured result of title parsing. Fields that
// the title does not carry are empty.
type TitleComponents struct {
	Show     string
	Subtitle string
	Season   string
	Episode  string
}

// IsEpisode reports whether the title parsed to a series episode.
func (c TitleComponents) IsEpisode() bool {
	return c.Episode != ""
}

// Rule names reported by [ParseNamed] for titles not handled by [Rules].
const (
	RuleStandalone = "standalone"
	RuleSubtitled  = "subtitled"
	RuleFallback   = "fallback"
)

// Parse splits a raw Netflix title into its components. It never fails:
// shapes no rule understands keep the show and leave the rest empty.
func Parse(raw string) TitleComponents {
	c, _ := ParseNamed(raw)
	return c
}

// ParseNamed is [Parse] that also returns the name of the rule that produced
// the result.
func ParseNamed(raw string) (TitleComponents, string) {
	segs := splitSegments(raw)
	show := segs[0]

	switch len(segs) {
	case 1:
		return TitleComponents{Show: show}, RuleStandalone
	case 2:
		return TitleComponents{Show: show, Subtitle: segs[1]}, RuleSubtitled
	}

	segs = mergeTrailingPart(segs)

	for _, rule := range Rules {
		if !rule.Match(segs) {
			continue
		}
		c := rule.Extract(segs)
		c.Show = show
		return c, rule.Name
	}
	return TitleComponents{Show: show}, RuleFallback
}

// splitSegments splits on every colon and trims each segment. The result
// always has at least one element.
func splitSegments(raw string) []string {
	parts := strings.Split(raw, ":")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// mergeTrailingPart rejoins "Episode: Part I" style endings that the colon
// split tore apart. Only applies to titles with more than three segments.
func mergeTrailingPart(segs []string) []string {
	n := len(segs)
	if n <= 3 || !strings.HasPrefix(segs[n-1], "Part ") {
		return segs
	}
	merged := make([]string, 0, n-1)
	merged = append(merged, segs[:n-2]...)
	return append(merged, segs[n-2]+": "+segs[n-1])
}
