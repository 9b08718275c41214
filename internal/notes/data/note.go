package data

import (
	"fmt"
	"time"
)

// TimeLayout is the fixed minute-precision timestamp format used for user
// input, queries, and the persisted file.
const TimeLayout = "2006-01-02 15:04"

// Separator delimits the timestamp and content fields of a persisted line.
// Content containing a separator will corrupt the line split on reload.
const Separator = ";"

// Note is a single timestamped text record. Immutable after construction.
type Note struct {
	when    time.Time
	content string
}

// NewNote creates a note for the given timestamp and content.
func NewNote(when time.Time, content string) Note {
	return Note{when: when, content: content}
}

// When returns the note's timestamp.
func (n Note) When() time.Time {
	return n.when
}

// Content returns the note's text.
func (n Note) Content() string {
	return n.content
}

// String renders the canonical display form: "2024-09-24 19:00: Meeting".
func (n Note) String() string {
	return n.when.Format(TimeLayout) + ": " + n.content
}

// Line renders the persisted file form: "2024-09-24 19:00;Meeting".
func (n Note) Line() string {
	return n.when.Format(TimeLayout) + Separator + n.content
}

// ParseTime parses a timestamp in TimeLayout, interpreted in local time.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

// BadTimestampError reports a persisted line whose timestamp field does not
// parse. It aborts the whole load rather than skipping the line.
type BadTimestampError struct {
	LineNum int
	Value   string
}

func (e *BadTimestampError) Error() string {
	return fmt.Sprintf("line %d: malformed timestamp %q", e.LineNum, e.Value)
}
