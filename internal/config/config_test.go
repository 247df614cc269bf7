package config_test

import (
	"testing"

	"github.com/tmessner/fieldlog/internal/config"
	"github.com/tmessner/fieldlog/internal/storage"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	st := storage.NewFileStore(t.TempDir())

	s := config.Load(st)
	if s.ReminderTime != "18:00" {
		t.Errorf("ReminderTime = %q, want %q", s.ReminderTime, "18:00")
	}
	if s.StorageBackend != storage.BackendFile {
		t.Errorf("StorageBackend = %q, want %q", s.StorageBackend, storage.BackendFile)
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := storage.NewFileStore(t.TempDir())

	in := config.Settings{
		PerformanceMode:  true,
		RemindersEnabled: true,
		ReminderTime:     "07:30",
		StorageBackend:   storage.BackendBadger,
	}
	if err := config.Save(st, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := config.Load(st)
	if got != in {
		t.Errorf("Load = %+v, want %+v", got, in)
	}
}

func TestLoadBackfillsPartialDocument(t *testing.T) {
	st := storage.NewFileStore(t.TempDir())
	if err := st.Save(config.Key, `{"remindersEnabled": true}`); err != nil {
		t.Fatal(err)
	}

	got := config.Load(st)
	if !got.RemindersEnabled {
		t.Error("expected RemindersEnabled to survive")
	}
	if got.ReminderTime != "18:00" {
		t.Errorf("ReminderTime = %q, want default", got.ReminderTime)
	}
}
