package domain

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// spotTimeLayout matches the feed's timestamp text, which carries no
	// zone and is UTC by definition.
	spotTimeLayout = "2006-01-02T15:04:05"

	// replyTimeLayout is the spot-time form used in chat replies. Spot
	// times are always UTC, so MST renders as "UTC".
	replyTimeLayout = "2006-01-02 15:04:05 MST"
)

// RawSpot is one activation record as the POTA API serves it. Only the
// fields the bot consumes are mapped.
type RawSpot struct {
	Activator    string `json:"activator"`
	Name         string `json:"name"`         // park name, e.g. "Staunton State Park"
	LocationDesc string `json:"locationDesc"` // e.g. "US-CO"
	Mode         string `json:"mode"`
	Frequency    string `json:"frequency"` // decimal kHz, e.g. "14286"
	SpotTime     string `json:"spotTime"`
}

// Activation is a validated spot with its frequency, mode, and time parsed.
type Activation struct {
	Activator    string
	Name         string
	LocationDesc string
	Mode         Mode
	Frequency    Frequency
	SpotTime     time.Time
}

// ActivationFromSpot validates one raw spot. Every parsed field must
// succeed; a spot with any bad field is rejected whole, never surfaced
// partially filled. An empty mode field becomes ModeUnknown.
func ActivationFromSpot(raw RawSpot) (Activation, error) {
	frequency, err := ParseFrequency(raw.Frequency)
	if err != nil {
		return Activation{}, err
	}

	mode := ModeUnknown
	if raw.Mode != "" {
		mode, err = ParseMode(raw.Mode)
		if err != nil {
			return Activation{}, err
		}
	}

	spotTime, err := time.ParseInLocation(spotTimeLayout, raw.SpotTime, time.UTC)
	if err != nil {
		return Activation{}, fmt.Errorf("parse spot time %q: %w", raw.SpotTime, err)
	}

	return Activation{
		Activator:    raw.Activator,
		Name:         raw.Name,
		LocationDesc: raw.LocationDesc,
		Mode:         mode,
		Frequency:    frequency,
		SpotTime:     spotTime,
	}, nil
}

// ConvertSpots validates a whole feed. One bad record fails the conversion;
// a partial list is never returned.
func ConvertSpots(raws []RawSpot) ([]Activation, error) {
	activations := make([]Activation, 0, len(raws))
	for i, raw := range raws {
		a, err := ActivationFromSpot(raw)
		if err != nil {
			return nil, fmt.Errorf("spot %d: %w", i, err)
		}
		activations = append(activations, a)
	}
	return activations, nil
}

// FindMostRecentMatch returns the first activation in feed order whose
// frequency lies on the given band and whose mode matches exactly, or nil.
// The feed is ordered newest-first, so the first match is the most recent;
// timestamps are never compared.
func FindMostRecentMatch(activations []Activation, band Band, mode Mode) *Activation {
	for i := range activations {
		if band.Contains(activations[i].Frequency) && activations[i].Mode == mode {
			return &activations[i]
		}
	}
	return nil
}

// Age is the signed duration from now to the spot time, negative for spots
// in the past (the common case for a feed of recent activity).
func (a Activation) Age() time.Duration {
	return a.SpotTime.Sub(clock.Now())
}

// Summary renders the reply line for a matched activation:
//
//	[time:2026-08-22 18:31:04 UTC,age:2m5s] 14.286MHz SSB, US-CO - Staunton State Park (N0CALL)
func (a Activation) Summary() string {
	return fmt.Sprintf("[time:%s,age:%s] %sMHz %s, %s - %s (%s)",
		a.SpotTime.Format(replyTimeLayout),
		FormatAge(a.Age()),
		a.Frequency,
		a.Mode,
		a.LocationDesc,
		a.Name,
		a.Activator,
	)
}

// FormatAge renders an age for replies: a bare second count up to a minute,
// "<m>m<s>s" beyond it. The sign is dropped.
//
//	45s  -> "45"
//	125s -> "2m5s"
func FormatAge(age time.Duration) string {
	seconds := int64(age / time.Second)
	if seconds < 0 {
		seconds = -seconds
	}
	if seconds > 60 {
		return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
	}
	return strconv.FormatInt(seconds, 10)
}
