// Package config persists user-editable state under the data directory:
// document settings and the in-progress agenda draft. Both are plain JSON
// files so they can be inspected and repaired by hand.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/example/quorum/internal/core/agenda"
)

// Env holds environment overrides. All fields are optional.
type Env struct {
	DataDir   string `envconfig:"DATA_DIR"`
	OutputDir string `envconfig:"OUTPUT_DIR"`
}

// LoadEnv reads QUORUM_* environment overrides.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("quorum", &env); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return env, nil
}

// DataDir resolves the directory holding the database, settings and draft.
// QUORUM_DATA_DIR wins over the default ~/.quorum.
func DataDir() (string, error) {
	env, err := LoadEnv()
	if err != nil {
		return "", err
	}
	if env.DataDir != "" {
		return env.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".quorum"), nil
}

// Settings are the document-generation preferences collected by the
// settings command and consumed when building a render snapshot.
type Settings struct {
	HeaderText      string  `json:"header_text"`
	SubheaderText   string  `json:"subheader_text,omitempty"`
	TitleFontFamily string  `json:"title_font_family"`
	TitleFontSize   int     `json:"title_font_size"`
	TitleBold       bool    `json:"title_bold"`
	SubtitleBold    bool    `json:"subtitle_bold"`
	LogoPath        string  `json:"logo_path,omitempty"`
	LogoWidthCm     float64 `json:"logo_width_cm"`
	LogoHeightCm    float64 `json:"logo_height_cm"`
	OutputDir       string  `json:"output_dir"`
}

// DefaultSettings returns the factory settings.
func DefaultSettings() Settings {
	return Settings{
		HeaderText:      "ORDER OF BUSINESS",
		TitleFontFamily: "Helvetica",
		TitleFontSize:   12,
		TitleBold:       true,
		SubtitleBold:    true,
		LogoWidthCm:     3.5,
		LogoHeightCm:    2.0,
		OutputDir:       "outputs",
	}
}

// LoadSettings reads settings.json from dir, falling back to defaults when
// the file does not exist yet.
func LoadSettings(dir string) (Settings, error) {
	path := filepath.Join(dir, "settings.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// SaveSettings writes settings.json to dir, creating it if needed.
func SaveSettings(dir string, s Settings) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "settings.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// ResolveOutputDir applies the QUORUM_OUTPUT_DIR override to the settings
// value.
func (s Settings) ResolveOutputDir() (string, error) {
	env, err := LoadEnv()
	if err != nil {
		return "", err
	}
	if env.OutputDir != "" {
		return env.OutputDir, nil
	}
	return s.OutputDir, nil
}

// Draft is the persisted in-progress meeting: metadata plus the working
// agenda. It exists only between `agenda` commands and is discarded on
// commit or clear.
type Draft struct {
	Date        string         `json:"date,omitempty"`
	Time        string         `json:"time,omitempty"`
	Place       string         `json:"place,omitempty"`
	Venue       string         `json:"venue,omitempty"`
	Type        string         `json:"type,omitempty"`
	Platform    string         `json:"platform,omitempty"`
	ChairID     int64          `json:"chair_id,omitempty"`
	SecretaryID int64          `json:"secretary_id,omitempty"`
	Entries     []agenda.Entry `json:"entries,omitempty"`
}

// LoadDraft reads draft.json from dir. A missing file is an empty draft.
func LoadDraft(dir string) (Draft, error) {
	path := filepath.Join(dir, "draft.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Draft{}, nil
	}
	if err != nil {
		return Draft{}, fmt.Errorf("failed to read draft: %w", err)
	}

	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("failed to parse draft: %w", err)
	}
	return d, nil
}

// SaveDraft writes draft.json to dir.
func SaveDraft(dir string, d Draft) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "draft.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}

// ClearDraft removes draft.json. Missing file is not an error.
func ClearDraft(dir string) error {
	err := os.Remove(filepath.Join(dir, "draft.json"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
