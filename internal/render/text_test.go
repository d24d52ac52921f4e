package render

import (
	"strings"
	"testing"
)

func TestTextContainsAllSections(t *testing.T) {
	out := Text(sampleSnapshot())

	for _, want := range []string{
		"ASSOCIATION OF ENGINEERS",
		"Ordinary Session",
		"DATE:",
		"2025-03-14",
		"VENUE:",
		"12 Oak St",
		"TITULAR DELEGATES:",
		"Dr. JULIO C. MORENO",
		"Dist. IV",
		"ORDER OF BUSINESS",
		"1.- Budget review",
		"2.- Staff elections",
		"Respectfully yours.",
		"Secretary General",
		"Chair",
		"Dr. JULIO D. DUNOGENT",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestTextOmitsSuppressedFields(t *testing.T) {
	s := sampleSnapshot()
	s.Venue = ""
	s.Platform = "Zoom"
	out := Text(s)

	if strings.Contains(out, "VENUE:") {
		t.Error("preview shows VENUE for a blank venue")
	}
	if strings.Contains(out, "PLATFORM:") {
		t.Error("preview shows PLATFORM for an in-person meeting")
	}
}

func TestTextAgendaOrder(t *testing.T) {
	out := Text(sampleSnapshot())

	first := strings.Index(out, "1.- Budget review")
	second := strings.Index(out, "2.- Staff elections")
	if first == -1 || second == -1 || second < first {
		t.Errorf("agenda lines out of order:\n%s", out)
	}
}
