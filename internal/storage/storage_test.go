package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tmessner/fieldlog/internal/storage"
)

func TestFileStoreLoadMissing(t *testing.T) {
	st := storage.NewFileStore(t.TempDir())

	_, found, err := st.Load("app-state")
	if err != nil {
		t.Fatalf("Load on missing document: %v", err)
	}
	if found {
		t.Error("expected missing document to report found=false")
	}
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	st := storage.NewFileStore(t.TempDir())

	doc := `{"schemaVersion": 1}`
	if err := st.Save("app-state", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := st.Load("app-state")
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if !found {
		t.Fatal("expected document to be found after save")
	}
	if got != doc {
		t.Errorf("Load = %q, want %q", got, doc)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	st := storage.NewFileStore(t.TempDir())

	if err := st.Save("settings", `{"a": 1}`); err != nil {
		t.Fatal(err)
	}
	if err := st.Save("settings", `{"a": 2}`); err != nil {
		t.Fatal(err)
	}

	got, _, err := st.Load("settings")
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"a": 2}` {
		t.Errorf("Load = %q, want the second save", got)
	}
}

func TestFileStoreCorruptDocumentIsBackedUpAndAbsent(t *testing.T) {
	dir := t.TempDir()
	st := storage.NewFileStore(dir)

	path := filepath.Join(dir, "app-state.json")
	if err := os.WriteFile(path, []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, found, err := st.Load("app-state")
	if err != nil {
		t.Fatalf("Load on corrupt document: %v", err)
	}
	if found {
		t.Error("expected corrupt document to report found=false")
	}
	if _, err := os.Stat(path + ".corrupt"); os.IsNotExist(err) {
		t.Error("expected backup file to exist after corrupt document")
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	st, err := storage.Open(dir, "")
	if err != nil {
		t.Fatalf("Open default backend: %v", err)
	}
	if _, ok := st.(*storage.FileStore); !ok {
		t.Errorf("Open(\"\") = %T, want *FileStore", st)
	}

	if _, err := storage.Open(dir, "carrier-pigeon"); err == nil {
		t.Error("expected error for unknown backend")
	}
}
