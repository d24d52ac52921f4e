package config

import (
	"testing"

	"github.com/example/quorum/internal/core/agenda"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.HeaderText != "ORDER OF BUSINESS" {
		t.Errorf("expected default header, got %q", s.HeaderText)
	}
	if s.TitleFontSize != 12 || !s.TitleBold {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := DefaultSettings()
	s.HeaderText = "EXTRAORDINARY SESSION"
	s.TitleFontFamily = "Times New Roman"
	s.TitleBold = false

	if err := SaveSettings(dir, s); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	loaded, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if loaded != s {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, s)
	}
}

func TestDraftRoundTripAndClear(t *testing.T) {
	dir := t.TempDir()

	d := Draft{
		Date:  "2025-03-14",
		Time:  "18:00",
		Place: "Main Hall",
		Type:  "virtual",
		Entries: []agenda.Entry{
			{TopicID: 3, Position: 1, Description: "Budget review"},
		},
	}
	if err := SaveDraft(dir, d); err != nil {
		t.Fatalf("SaveDraft failed: %v", err)
	}

	loaded, err := LoadDraft(dir)
	if err != nil {
		t.Fatalf("LoadDraft failed: %v", err)
	}
	if loaded.Place != "Main Hall" || len(loaded.Entries) != 1 {
		t.Errorf("unexpected draft: %+v", loaded)
	}

	if err := ClearDraft(dir); err != nil {
		t.Fatalf("ClearDraft failed: %v", err)
	}
	empty, err := LoadDraft(dir)
	if err != nil {
		t.Fatalf("LoadDraft after clear failed: %v", err)
	}
	if len(empty.Entries) != 0 || empty.Date != "" {
		t.Errorf("expected empty draft after clear, got %+v", empty)
	}

	// Clearing twice is fine.
	if err := ClearDraft(dir); err != nil {
		t.Errorf("second ClearDraft failed: %v", err)
	}
}
