package domain

import (
	"errors"
	"fmt"
	"sort"
)

// BandConditionEntry is one raw reading from the solar report: a band name,
// a period tag, and the condition text for that period.
type BandConditionEntry struct {
	BandName  string
	Period    string // "day" or "night"
	Condition string
}

// BandCondition pairs the complete day and night readings for one band.
type BandCondition struct {
	Day   string
	Night string
}

// ConditionReport is a validated solar report: every band carries both a day
// and a night reading.
type ConditionReport struct {
	Updated string
	Bands   map[string]BandCondition
}

// partialCondition accumulates a band's readings before validation. The
// pointer slots distinguish "not seen yet" from an empty condition string.
type partialCondition struct {
	day   *string
	night *string
}

// BuildConditionReport groups raw entries by band name and validates the
// result. Each band must receive exactly one day and one night entry, in any
// order; a duplicate slot, an unrecognized period tag, or a missing slot
// fails the whole report. No partial report is ever returned.
func BuildConditionReport(updated string, entries []BandConditionEntry) (*ConditionReport, error) {
	partials := make(map[string]*partialCondition)
	for _, e := range entries {
		p := partials[e.BandName]
		if p == nil {
			p = &partialCondition{}
			partials[e.BandName] = p
		}

		condition := e.Condition
		switch e.Period {
		case "day":
			if p.day != nil {
				return nil, fmt.Errorf("day conditions for band %s already set", e.BandName)
			}
			p.day = &condition
		case "night":
			if p.night != nil {
				return nil, fmt.Errorf("night conditions for band %s already set", e.BandName)
			}
			p.night = &condition
		default:
			return nil, fmt.Errorf("unknown time %s for band %s", e.Period, e.BandName)
		}
	}

	bands := make(map[string]BandCondition, len(partials))
	for name, p := range partials {
		if p.day == nil {
			return nil, errors.New("missing day value")
		}
		if p.night == nil {
			return nil, errors.New("missing night value")
		}
		bands[name] = BandCondition{Day: *p.day, Night: *p.night}
	}

	return &ConditionReport{Updated: updated, Bands: bands}, nil
}

// Lines renders the report for the chat reply: an "updated" header followed
// by one line per band in lexicographic band-name order.
func (r *ConditionReport) Lines() []string {
	names := make([]string, 0, len(r.Bands))
	for name := range r.Bands {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names)+1)
	lines = append(lines, "updated "+r.Updated)
	for _, name := range names {
		c := r.Bands[name]
		lines = append(lines, fmt.Sprintf("%s - day: %s, night: %s", name, c.Day, c.Night))
	}
	return lines
}
