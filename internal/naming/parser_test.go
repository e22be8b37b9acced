package naming

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		want     TitleComponents
		wantRule string
	}{
		// One and two segments
		{
			name: "movie", raw: "The Crown",
			want:     TitleComponents{Show: "The Crown"},
			wantRule: RuleStandalone,
		},
		{
			name: "empty title", raw: "",
			want:     TitleComponents{},
			wantRule: RuleStandalone,
		},
		{
			name: "limited series episode", raw: "Maid: Dash",
			want:     TitleComponents{Show: "Maid", Subtitle: "Dash"},
			wantRule: RuleSubtitled,
		},
		{
			name: "single colon with padding", raw: "  Dark :  Secrets ",
			want:     TitleComponents{Show: "Dark", Subtitle: "Secrets"},
			wantRule: RuleSubtitled,
		},

		// General season rules
		{
			name: "season episode", raw: "Stranger Things: Season 1: Chapter One",
			want:     TitleComponents{Show: "Stranger Things", Season: "Season 1", Episode: "Chapter One"},
			wantRule: "Season-Part-Volume",
		},
		{
			name: "part as season", raw: "Money Heist: Part 3: We Have Lost",
			want:     TitleComponents{Show: "Money Heist", Season: "Part 3", Episode: "We Have Lost"},
			wantRule: "Season-Part-Volume",
		},
		{
			name: "volume as season", raw: "Love, Death & Robots: Volume 2: Snow in the Desert",
			want:     TitleComponents{Show: "Love, Death & Robots", Season: "Volume 2", Episode: "Snow in the Desert"},
			wantRule: "Season-Part-Volume",
		},
		{
			name: "three segments without season", raw: "Our Planet: Collection: One Planet",
			want:     TitleComponents{Show: "Our Planet", Subtitle: "Collection", Episode: "One Planet"},
			wantRule: "Three-segments",
		},
		{
			name: "four segments", raw: "Pokemon: Indigo League: Kanto: Pokemon I Choose You",
			want:     TitleComponents{Show: "Pokemon", Subtitle: "Indigo League", Season: "Kanto", Episode: "Pokemon I Choose You"},
			wantRule: "Four-segments",
		},

		// Trailing "Part" merge
		{
			name: "trailing part merged", raw: "Sherlock: Series 1: A Study: Part I",
			want:     TitleComponents{Show: "Sherlock", Subtitle: "Series 1", Episode: "A Study: Part I"},
			wantRule: "Three-segments",
		},
		{
			name: "trailing part not merged at three segments", raw: "Show: Finale: Part Two",
			want:     TitleComponents{Show: "Show", Subtitle: "Finale", Episode: "Part Two"},
			wantRule: "Three-segments",
		},
		{
			name: "trailing part merged with season", raw: "The Office (U.S.): Season 3: The Job: Part 1",
			want:     TitleComponents{Show: "The Office (U.S.)", Season: "Season 3", Episode: "The Job: Part 1"},
			wantRule: "Season-Part-Volume",
		},

		// Franchise special cases
		{
			name: "avatar book", raw: "Avatar The Last Airbender: Book One: Water: The Boy in the Iceberg",
			want:     TitleComponents{Show: "Avatar The Last Airbender", Season: "Book One", Episode: "Water"},
			wantRule: "Book",
		},
		{
			name: "avatar book three segments", raw: "Avatar: Book 2: The Avatar State",
			want:     TitleComponents{Show: "Avatar", Season: "Book 2", Episode: "The Avatar State"},
			wantRule: "Book",
		},
		{
			name: "non-avatar book", raw: "The Dragon Prince: Book 1: Moon: Echoes",
			want:     TitleComponents{Show: "The Dragon Prince", Season: "Book 1: Moon", Episode: "Echoes"},
			wantRule: "Book",
		},
		{
			name: "non-avatar book too short", raw: "Legend: Book 1: Air",
			want:     TitleComponents{Show: "Legend", Subtitle: "Book 1", Episode: "Air"},
			wantRule: "Three-segments",
		},
		{
			name: "bleach", raw: "Bleach: Arrancar: Ulquiorra",
			want:     TitleComponents{Show: "Bleach", Season: "Arrancar", Episode: "Ulquiorra"},
			wantRule: "Bleach",
		},
		{
			name: "comedians regular season", raw: "Comedians in Cars Getting Coffee: 2019: Eddie Murphy: I Just Said Hello",
			want:     TitleComponents{Show: comediansInCars, Season: "2019", Episode: "Eddie Murphy: I Just Said Hello"},
			wantRule: "Comedians-in-Cars",
		},
		{
			name: "comedians new 2018", raw: "Comedians in Cars Getting Coffee: New 2018: Jerry Before Seinfeld: Episode 1",
			want:     TitleComponents{Show: comediansInCars, Season: "New 2018: Jerry Before Seinfeld", Episode: "Episode 1"},
			wantRule: "Comedians-in-Cars",
		},
		{
			name: "black and white skips fourth segment", raw: "Show: Black & White: Season 1: Extra: Finale",
			want:     TitleComponents{Show: "Show", Subtitle: "Black & White", Season: "Season 1", Episode: "Finale"},
			wantRule: "Black-and-White",
		},

		// Fallback
		{
			name: "five segments unmatched", raw: "Avatar: The Last Airbender: Book 1: Water: The Boy in the Iceberg",
			want:     TitleComponents{Show: "Avatar"},
			wantRule: RuleFallback,
		},
		{
			name: "only colons", raw: ":::::",
			want:     TitleComponents{},
			wantRule: RuleFallback,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, rule := ParseNamed(tc.raw)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseNamed(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
			if rule != tc.wantRule {
				t.Errorf("rule: got %q, want %q", rule, tc.wantRule)
			}
		})
	}
}

func TestParse_Total(t *testing.T) {
	inputs := []string{
		"", ":", "::", "a:b:c:d:e:f:g", "Book:Book:Book",
		"x: Black & White: y", "x: Black & White: y: z",
		"Comedians in Cars Getting Coffee: New 2018: only",
		"Part 1: Part 2: Part 3: Part 4",
		strings.Repeat("seg: ", 40),
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Parse(%q) panicked: %v", in, r)
				}
			}()
			got := Parse(in)
			if want := strings.TrimSpace(strings.Split(in, ":")[0]); got.Show != want {
				t.Errorf("show: got %q, want %q", got.Show, want)
			}
		})
	}
}

func TestMergeTrailingPart(t *testing.T) {
	got := mergeTrailingPart([]string{"A", "B", "C", "Part II"})
	want := []string{"A", "B", "C: Part II"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	in := []string{"A", "B", "Part II"}
	if diff := cmp.Diff(in, mergeTrailingPart(in)); diff != "" {
		t.Errorf("three segments must not merge (-want +got):\n%s", diff)
	}
}

func TestTitleComponents_IsEpisode(t *testing.T) {
	if Parse("The Crown").IsEpisode() {
		t.Error("movie reported as episode")
	}
	if !Parse("Stranger Things: Season 1: Chapter One").IsEpisode() {
		t.Error("episode not reported as episode")
	}
}
