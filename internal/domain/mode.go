package domain

import (
	"fmt"
	"strings"
)

// Mode is a modulation mode from the closed set the bot understands.
// Matching activations by mode is exact variant equality, never fuzzy.
type Mode int

const (
	// ModeUnknown marks a spot whose mode field arrived empty. It is never
	// produced by ParseMode.
	ModeUnknown Mode = iota
	ModeFT4
	ModeFT8
	ModeSSB
	ModeUSB
	ModeLSB
	ModeCW
	ModeFM
	ModeRTTY
	ModeC4FM
	ModePSK31
	ModeDSTAR
)

// ParseMode matches text against the eleven named modes, ignoring case.
// Unrecognized text is an error; the empty string is unrecognized too, so
// ModeUnknown stays reachable only through spot deserialization.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(s) {
	case "FT4":
		return ModeFT4, nil
	case "FT8":
		return ModeFT8, nil
	case "LSB":
		return ModeLSB, nil
	case "USB":
		return ModeUSB, nil
	case "SSB":
		return ModeSSB, nil
	case "CW":
		return ModeCW, nil
	case "FM":
		return ModeFM, nil
	case "RTTY":
		return ModeRTTY, nil
	case "C4FM":
		return ModeC4FM, nil
	case "PSK31":
		return ModePSK31, nil
	case "DSTAR":
		return ModeDSTAR, nil
	default:
		return ModeUnknown, fmt.Errorf("unknown mode %q", s)
	}
}

// String returns the canonical uppercase name. ModeUnknown renders as a
// lowercase sentinel distinct from every real mode name.
func (m Mode) String() string {
	switch m {
	case ModeFT4:
		return "FT4"
	case ModeFT8:
		return "FT8"
	case ModeLSB:
		return "LSB"
	case ModeUSB:
		return "USB"
	case ModeSSB:
		return "SSB"
	case ModeCW:
		return "CW"
	case ModeFM:
		return "FM"
	case ModeRTTY:
		return "RTTY"
	case ModeC4FM:
		return "C4FM"
	case ModePSK31:
		return "PSK31"
	case ModeDSTAR:
		return "DSTAR"
	default:
		return "unknown"
	}
}
