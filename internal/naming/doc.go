// Package naming splits the free-text Netflix title field into structured
// show, subtitle, season and episode components.
//
// Netflix joins the parts of a title with colons ("Show: Season 1: Pilot"),
// but the catalog is not consistent about which part sits where. Parsing is
// an ordered rule table: the title is split into trimmed colon segments and
// the first rule in [Rules] whose Match accepts the segments extracts the
// components. Titles that no rule accepts keep only the show name.
//
// Files:
//   - parser.go: TitleComponents, Parse, segment splitting
//   - rules.go: the rule table, franchise special cases first
package naming
