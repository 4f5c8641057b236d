package cmd

import (
	"fmt"
	"time"
)

var now = time.Now

// parseTime accepts an RFC 3339 timestamp, a date, or a duration meaning
// that long ago. An empty string is the zero time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now().Add(-d).UTC().Truncate(time.Second), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: want RFC 3339, YYYY-MM-DD or a duration", s)
}

// parseTimes parses several time flags, naming the first bad one.
func parseTimes(flags map[string]string) (map[string]time.Time, error) {
	out := make(map[string]time.Time, len(flags))
	for name, v := range flags {
		t, err := parseTime(v)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}
