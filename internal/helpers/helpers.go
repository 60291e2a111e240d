package helpers

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ValidCapacity accepts venue capacities between 1 and 1000 inclusive.
func ValidCapacity(capacity int) bool {
	return capacity >= 1 && capacity <= 1000
}

// ValidDate accepts well-formed calendar dates in YYYY-MM-DD form. No
// business rules beyond calendar validity; 2025-02-30 fails, any real date
// passes.
func ValidDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// NormalizeClock parses an HH:MM wall-clock value and returns it zero-padded
// so that string comparison orders times chronologically.
func NormalizeClock(clock string) (string, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	return t.Format(clockLayout), nil
}

// NormalizeTimeRange validates and normalizes a start/end pair, requiring
// start strictly before end.
func NormalizeTimeRange(start, end string) (string, string, error) {
	s, err := NormalizeClock(start)
	if err != nil {
		return "", "", err
	}
	e, err := NormalizeClock(end)
	if err != nil {
		return "", "", err
	}
	if s >= e {
		return "", "", fmt.Errorf("time range start %q must be before end %q", s, e)
	}
	return s, e, nil
}
