// Package report loads a cleaned viewing file and draws the watch-time
// analyses as horizontal bar charts.
//
// [Table] is a small in-memory table over cleaned records with filter,
// group, sort and top-N helpers. [Analyze] turns a table into a [Result]
// for one analysis, and [Chart] renders it. Chart colors, width and glyph
// come from the [Style] passed to [NewChart].
package report
