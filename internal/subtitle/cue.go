package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// Cue is one timed caption entry. Start and End are milliseconds from the
// beginning of the stream. Text may contain inline markup (<i>, {\an8});
// the interval logic treats it as opaque.
//
// Index is a transient display label. It is reassigned sequentially when a
// track is serialized and carries no meaning inside the pipeline.
type Cue struct {
	Index int
	Start int64
	End   int64
	Text  string
}

// Duration returns the cue length in milliseconds. Malformed cues with
// End < Start yield a negative duration; callers degrade rather than abort.
func (c Cue) Duration() int64 {
	return c.End - c.Start
}

// ParseTimestamp converts an SRT timestamp ("HH:MM:SS,mmm") to milliseconds.
// Any non-numeric field degrades the whole timestamp to 0 rather than
// failing; subtitle files in the wild carry enough junk that a hard error
// here would abort otherwise usable tracks.
func ParseTimestamp(value string) int64 {
	value = strings.TrimSpace(value)
	clock, millis, ok := strings.Cut(value, ",")
	if !ok {
		return 0
	}
	fields := strings.Split(clock, ":")
	if len(fields) != 3 {
		return 0
	}
	hours, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return 0
	}
	ms, err := strconv.Atoi(strings.TrimSpace(millis))
	if err != nil {
		return 0
	}
	if hours < 0 || minutes < 0 || seconds < 0 || ms < 0 {
		return 0
	}
	return int64(hours)*3_600_000 + int64(minutes)*60_000 + int64(seconds)*1_000 + int64(ms)
}

// FormatTimestamp renders milliseconds as an SRT timestamp.
// Negative values clamp to zero.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3_600_000
	ms %= 3_600_000
	minutes := ms / 60_000
	ms %= 60_000
	seconds := ms / 1_000
	ms %= 1_000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms)
}
