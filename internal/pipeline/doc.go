// Package pipeline turns a raw viewing-activity export into cleaned records
// and writes them out.
//
// [Clean] is the pure step: profile selection, supplemental drop, timezone
// conversion, per-profile binge annotation, the short-session filter and
// title parsing. [Run] and [RunRecords] wrap it with input reading, the
// atomic output write and the summary log.
package pipeline
