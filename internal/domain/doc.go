// Package domain models amateur-radio band conditions and Parks on the Air
// (POTA) activation spots.
//
// # Data Sources
//
// Band conditions come from the hamqsl.com solar XML feed, published at
// https://www.hamqsl.com/solarxml.php. Each <band> element carries a band
// name attribute (e.g. "80m-40m"), a time attribute ("day" or "night"), and
// the condition text as character data ("Good", "Fair", "Poor"). A complete
// report supplies exactly one day and one night reading per band name, in
// arbitrary order. [BuildConditionReport] enforces that shape: duplicate
// slots, unrecognized period tags, and incomplete bands all reject the
// whole report.
//
// Activation spots come from the POTA API at https://api.pota.app/v1/spots,
// a JSON array ordered newest-first. That ordering is load-bearing:
// [FindMostRecentMatch] returns the first match in feed order rather than
// comparing timestamps.
//
// # Units and Formats
//
// Frequencies are integer hertz internally. The feed's frequency field is
// decimal-kilohertz text ("14286", "7123.5"); the display form is
// megahertz-style ("14.286", "7.123.5") with a ".5" suffix only for
// half-kHz spots. Parsing truncates rather than rounds, so equality and
// band-range membership stay exact integer comparisons.
//
// Spot timestamps arrive as "2006-01-02T15:04:05" text with no zone marker
// and are UTC by definition. No timezone conversion happens anywhere.
//
// Modes are a closed set: FT4, FT8, SSB, USB, LSB, CW, FM, RTTY, C4FM,
// PSK31, DSTAR. [ParseMode] is case-insensitive over those eleven names and
// fails on anything else. ModeUnknown exists only for spots whose mode
// field arrived empty; no text parses to it.
//
// # Strictness
//
// Normalization is all-or-nothing at every level. A spot with one bad field
// is rejected whole, and a feed with one bad spot fails conversion of the
// entire feed ([ConvertSpots]). Band reports behave the same way. Nothing
// in this package skips bad records silently.
package domain
