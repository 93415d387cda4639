package domain

import (
	"fmt"
	"strings"
)

// Band is a named amateur frequency allocation. Only the bands the bot
// serves are modeled; bounds follow the US band plan.
type Band int

const (
	Band20m Band = iota
	Band40m
)

// ParseBand matches a band name, ignoring case.
func ParseBand(s string) (Band, error) {
	switch strings.ToLower(s) {
	case "20m":
		return Band20m, nil
	case "40m":
		return Band40m, nil
	default:
		return 0, fmt.Errorf("unknown band %q", s)
	}
}

// Range returns the band's frequency bounds, both inclusive.
func (b Band) Range() (lo, hi Frequency) {
	switch b {
	case Band20m:
		return 14_000_000, 14_350_000
	case Band40m:
		return 7_000_000, 7_300_000
	}
	return 0, 0
}

// Contains reports whether f lies within the band, bounds included.
func (b Band) Contains(f Frequency) bool {
	lo, hi := b.Range()
	return f >= lo && f <= hi
}

func (b Band) String() string {
	switch b {
	case Band20m:
		return "20m"
	case Band40m:
		return "40m"
	}
	return ""
}
