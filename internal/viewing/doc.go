// Package viewing defines the viewing-history data model: the raw rows of a
// Netflix ViewingActivity.csv export ([ViewRecord]) and the cleaned rows
// written by the pipeline ([CleanRecord]), with CSV codecs for both.
package viewing
