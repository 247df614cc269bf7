// Package config holds the user settings document stored beside the app
// state. Settings always live in the file backend so that the storage
// backend choice itself can be read before any database is opened.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tmessner/fieldlog/internal/storage"
)

// Key is the persistence-adapter key of the settings document.
const Key = "settings"

// Settings are presentation and scheduling preferences. They sit outside
// the core record model: nothing here affects derived totals.
type Settings struct {
	PerformanceMode  bool   `json:"performanceMode"`
	RemindersEnabled bool   `json:"remindersEnabled"`
	ReminderTime     string `json:"reminderTime"`
	StorageBackend   string `json:"storageBackend,omitempty"`
}

// Default returns the settings of a fresh install.
func Default() Settings {
	return Settings{
		ReminderTime:   "18:00",
		StorageBackend: storage.BackendFile,
	}
}

// Load reads the settings document, backfilling defaults for missing
// fields so callers always get a usable value. Unreadable documents
// degrade to defaults.
func Load(st storage.Store) Settings {
	raw, found, err := st.Load(Key)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to default settings")
		return Default()
	}
	if !found {
		return Default()
	}
	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable settings document")
		return Default()
	}
	if s.ReminderTime == "" {
		s.ReminderTime = Default().ReminderTime
	}
	if s.StorageBackend == "" {
		s.StorageBackend = storage.BackendFile
	}
	return s
}

// Save persists the settings document.
func Save(st storage.Store, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return st.Save(Key, string(data))
}
