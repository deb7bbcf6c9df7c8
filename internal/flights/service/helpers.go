package service

import (
	"math"
	"strings"
)

// ResolveIATA extracts a 3-letter location code from free-form user text.
// "Sydney (SYD)" yields "SYD" via the parenthesized code; anything else
// falls back to the first 3 characters, uppercased.
//
// The fallback can produce a syntactically valid but semantically wrong
// code for inputs not using the "(CODE)" convention ("Sydney" -> "SYD"
// only by coincidence); no registry validation is performed. Kept as-is
// to match the established behavior.
func ResolveIATA(text string) string {
	trimmed := strings.TrimSpace(text)

	openIdx := strings.LastIndex(trimmed, "(")
	closeIdx := strings.LastIndex(trimmed, ")")
	if openIdx >= 0 && closeIdx > openIdx {
		inner := strings.TrimSpace(trimmed[openIdx+1 : closeIdx])
		if len(inner) == 3 {
			return strings.ToUpper(inner)
		}
	}

	upper := []rune(strings.ToUpper(trimmed))
	if len(upper) > 3 {
		upper = upper[:3]
	}
	return string(upper)
}

// ParseDurationHours converts a compact "PT{h}H{m}M" duration token to
// fractional hours rounded to 2 decimals. The second return value is
// false when the input is empty or lacks the "PT" prefix.
//
// The parser is deliberately narrow: no seconds, no fractional
// components, no negative durations. A digit run followed by an
// unrecognized marker is discarded without effect.
func ParseDurationHours(duration string) (float64, bool) {
	if duration == "" || !strings.HasPrefix(duration, "PT") {
		return 0, false
	}

	var hours, minutes int
	num := 0
	hasNum := false
	for _, ch := range duration[2:] {
		switch {
		case ch >= '0' && ch <= '9':
			num = num*10 + int(ch-'0')
			hasNum = true
		case ch == 'H' && hasNum:
			hours = num
			num, hasNum = 0, false
		case ch == 'M' && hasNum:
			minutes = num
			num, hasNum = 0, false
		default:
			num, hasNum = 0, false
		}
	}

	return math.Round((float64(hours)+float64(minutes)/60.0)*100) / 100, true
}
