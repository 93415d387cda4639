package domain

import (
	"fmt"
	"strconv"
)

// Frequency is a radio frequency as a whole number of hertz. Integer hertz
// keeps equality and range checks exact; floating point appears only
// transiently while parsing feed text.
type Frequency int

// ParseFrequency converts decimal-kilohertz text, the form the spot feed
// uses, into a Frequency. Sub-hertz residue is truncated, not rounded:
// "7123.5" -> 7123500, "14074.9999" -> 14074999.
func ParseFrequency(s string) (Frequency, error) {
	khz, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse frequency %q: %w", s, err)
	}
	return Frequency(khz * 1_000), nil
}

// Hertz returns the raw hertz count.
func (f Frequency) Hertz() int {
	return int(f)
}

// MHz returns the whole-megahertz part, truncating.
func (f Frequency) MHz() int {
	return int(f) / 1_000_000
}

// String renders "<MHz>.<kHz>" with the kilohertz part zero-padded to three
// digits, plus a ".5" suffix when the spot sits on a half kilohertz. Half-kHz
// offsets are the only sub-kHz precision the feed carries.
//
//	14074000 -> "14.074"
//	7123500  -> "7.123.5"
//	7100000  -> "7.100"
func (f Frequency) String() string {
	khz := (int(f) % 1_000_000) / 1_000
	s := fmt.Sprintf("%d.%03d", f.MHz(), khz)
	if int(f)%1_000 == 500 {
		s += ".5"
	}
	return s
}
