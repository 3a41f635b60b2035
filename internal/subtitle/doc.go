// Package subtitle provides the timed-cue data model shared across the
// pipeline: millisecond timestamps, the temporal overlap predicate, the
// per-track overlap merger, and the SRT codec.
//
// Cues are plain values. Every transformation (merging, replacement)
// produces new cues; nothing in this package mutates a cue in place.
package subtitle
