package service

import "testing"

func TestResolveIATA_ParenthesizedCode(t *testing.T) {
	cases := map[string]string{
		"Sydney (SYD)":        "SYD",
		"Seoul (icn)":         "ICN",
		"Sydney ( SYD )":      "SYD",
		"City (Area) (MEL)":   "MEL",
		"Somewhere (TooLong)": "SOM", // inner not 3 chars, falls back
	}

	for input, want := range cases {
		if got := ResolveIATA(input); got != want {
			t.Fatalf("ResolveIATA(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestResolveIATA_Fallback(t *testing.T) {
	cases := map[string]string{
		"syd":     "SYD",
		"SYD":     "SYD",
		"Sydney":  "SYD",
		"  lhr  ": "LHR",
	}

	for input, want := range cases {
		if got := ResolveIATA(input); got != want {
			t.Fatalf("ResolveIATA(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestResolveIATA_ShortInput(t *testing.T) {
	// Fewer than 3 characters is a known degenerate case, not rejected.
	if got := ResolveIATA("sy"); got != "SY" {
		t.Fatalf("ResolveIATA(\"sy\") = %q, want \"SY\"", got)
	}
	if got := ResolveIATA(""); got != "" {
		t.Fatalf("ResolveIATA(\"\") = %q, want \"\"", got)
	}
}

func TestParseDurationHours_WellFormed(t *testing.T) {
	cases := map[string]float64{
		"PT10H30M": 10.5,
		"PT45M":    0.75,
		"PT3H":     3.0,
		"PT0H0M":   0.0,
		"PT1H1M":   1.02, // 1 + 1/60 rounded to 2 decimals
		"PT12H30M": 12.5,
	}

	for input, want := range cases {
		got, ok := ParseDurationHours(input)
		if !ok {
			t.Fatalf("ParseDurationHours(%q) reported unparseable", input)
		}
		if got != want {
			t.Fatalf("ParseDurationHours(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseDurationHours_Unparseable(t *testing.T) {
	for _, input := range []string{"", "bogus", "10H30M", "pt10h"} {
		if _, ok := ParseDurationHours(input); ok {
			t.Fatalf("ParseDurationHours(%q) = parseable, want absent", input)
		}
	}
}

func TestParseDurationHours_UnknownMarkerResetsAccumulator(t *testing.T) {
	// The seconds marker is not supported; its digit run is discarded.
	got, ok := ParseDurationHours("PT10H30S")
	if !ok {
		t.Fatalf("ParseDurationHours(\"PT10H30S\") reported unparseable")
	}
	if got != 10.0 {
		t.Fatalf("ParseDurationHours(\"PT10H30S\") = %v, want 10.0", got)
	}

	// "PT" alone parses to zero hours, it is not absent.
	got, ok = ParseDurationHours("PT")
	if !ok || got != 0 {
		t.Fatalf("ParseDurationHours(\"PT\") = (%v, %v), want (0, true)", got, ok)
	}
}
