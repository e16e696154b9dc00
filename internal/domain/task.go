// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// TimestampLayout is the text layout used to persist task creation times.
const TimestampLayout = "2006-01-02 15:04:05"

// InvalidTimestampText is rendered in place of a timestamp that could not be parsed.
const InvalidTimestampText = "<invalid>"

// Task represents a unit of tracked work.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     Timestamp `json:"created"`     // Creation time
	Description string    `json:"description"` // Description (required)
	ID          int64     `json:"id"`          // Assigned by the store
	Done        bool      `json:"done"`        // Completion flag (false -> true only)
}

// Timestamp is a creation time read back from the store.
// A stored value that fails to parse is kept in Raw with Valid set to false.
// Fields are ordered to minimize memory padding.
type Timestamp struct {
	Time  time.Time
	Raw   string
	Valid bool
}

// NewTimestamp returns a valid Timestamp for t, truncated to the stored precision.
func NewTimestamp(t time.Time) Timestamp {
	t = t.Truncate(time.Second)
	return Timestamp{
		Time:  t,
		Raw:   FormatTimestamp(t),
		Valid: true,
	}
}

// FormatTimestamp formats t using TimestampLayout in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// ParseTimestamp parses a stored timestamp.
// It never fails; malformed input produces an invalid Timestamp.
func ParseTimestamp(raw string) Timestamp {
	t, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return Timestamp{Raw: raw}
	}
	return Timestamp{Time: t, Raw: raw, Valid: true}
}

// String returns the formatted timestamp or InvalidTimestampText.
func (ts Timestamp) String() string {
	if !ts.Valid {
		return InvalidTimestampText
	}
	return FormatTimestamp(ts.Time)
}

// MarshalText encodes the timestamp as stored text, or the placeholder when invalid.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// ValidateDescription trims desc and checks that something remains.
func ValidateDescription(desc string) (string, error) {
	trimmed := strings.TrimSpace(desc)
	if trimmed == "" {
		return "", &ValidationError{Field: "description", Value: desc, Err: ErrEmptyDescription}
	}
	return trimmed, nil
}

// ValidateTaskID checks that id is a usable task ID.
func ValidateTaskID(id int64) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Value: formatInt(id), Err: ErrInvalidTaskID}
	}
	return nil
}
