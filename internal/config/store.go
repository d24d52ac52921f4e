package config

// FileDraftStore persists the draft as draft.json under dir.
type FileDraftStore struct {
	dir string
}

// NewFileDraftStore creates a draft store rooted at dir.
func NewFileDraftStore(dir string) *FileDraftStore {
	return &FileDraftStore{dir: dir}
}

// Load reads the draft. A missing file is an empty draft.
func (s *FileDraftStore) Load() (Draft, error) { return LoadDraft(s.dir) }

// Save writes the draft.
func (s *FileDraftStore) Save(d Draft) error { return SaveDraft(s.dir, d) }

// Clear removes the draft file. Missing file is not an error.
func (s *FileDraftStore) Clear() error { return ClearDraft(s.dir) }

// FileSettingsStore reads settings.json under dir.
type FileSettingsStore struct {
	dir string
}

// NewFileSettingsStore creates a settings store rooted at dir.
func NewFileSettingsStore(dir string) *FileSettingsStore {
	return &FileSettingsStore{dir: dir}
}

// Load reads the settings, falling back to defaults when absent.
func (s *FileSettingsStore) Load() (Settings, error) { return LoadSettings(s.dir) }

// Save writes the settings.
func (s *FileSettingsStore) Save(settings Settings) error { return SaveSettings(s.dir, settings) }
