// Package helpers provides the shared heuristics used by source adapters and
// target serializers: coordinate conversion, name splitting and description
// paragraph assembly.
package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// DMS glyph delimiters as they appear in CSIRO spatial parameter strings.
const (
	degreeGlyph = "°"
	minuteGlyph = "′"
	secondGlyph = "″"
)

// DMSToDecimal converts a degrees-minutes-seconds string such as "12°30′0″"
// to decimal degrees (deg + min/60 + sec/3600).
func DMSToDecimal(dms string) (float64, error) {
	deg, rest, found := strings.Cut(dms, degreeGlyph)
	if !found {
		return 0, fmt.Errorf("no degree glyph in %q", dms)
	}
	mins, rest, found := strings.Cut(rest, minuteGlyph)
	if !found {
		return 0, fmt.Errorf("no minute glyph in %q", dms)
	}
	secs, _, found := strings.Cut(rest, secondGlyph)
	if !found {
		return 0, fmt.Errorf("no second glyph in %q", dms)
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(deg), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing degrees of %q: %w", dms, err)
	}
	m, err := strconv.ParseFloat(strings.TrimSpace(mins), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing minutes of %q: %w", dms, err)
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(secs), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing seconds of %q: %w", dms, err)
	}

	return d + m/60 + s/3600, nil
}

// NegatesHemisphere reports whether a spatial parameter key names a
// hemisphere whose value is sign-flipped. The convention is fixed by the
// source data: south* and east* keys negate.
func NegatesHemisphere(key string) bool {
	return strings.HasPrefix(key, "south") || strings.HasPrefix(key, "east")
}
