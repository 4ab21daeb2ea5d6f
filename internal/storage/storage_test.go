package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"dayboard/internal/storage"
)

func TestReadNotExist(t *testing.T) {
	blob := storage.New(t.TempDir())

	data, ok, err := blob.Read()
	if err != nil {
		t.Fatalf("Read on missing file: %v", err)
	}
	if ok {
		t.Error("Read ok = true, want false for missing file")
	}
	if data != nil {
		t.Errorf("Read data = %q, want nil", data)
	}
}

func TestWriteAndRead(t *testing.T) {
	blob := storage.New(t.TempDir())

	want := []byte(`{"tasks":[]}`)
	if err := blob.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, ok, err := blob.Read()
	if err != nil {
		t.Fatalf("Read after write: %v", err)
	}
	if !ok {
		t.Fatal("Read ok = false after write")
	}
	if string(got) != string(want) {
		t.Errorf("Read = %q, want %q", got, want)
	}
}

func TestWriteLeavesNoTempFile(t *testing.T) {
	base := t.TempDir()
	blob := storage.New(base)

	if err := blob.Write([]byte("{}")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if _, err := os.Stat(blob.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be gone after write")
	}
}

func TestQuarantine(t *testing.T) {
	base := t.TempDir()
	blob := storage.New(base)

	if err := os.WriteFile(filepath.Join(base, "dayboard.json"), []byte("{bad json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := blob.Quarantine(); err != nil {
		t.Fatalf("Quarantine: %v", err)
	}

	if _, err := os.Stat(blob.Path()); !os.IsNotExist(err) {
		t.Error("expected original file to be gone after quarantine")
	}
	if _, err := os.Stat(blob.Path() + ".corrupt"); os.IsNotExist(err) {
		t.Error("expected .corrupt backup to exist after quarantine")
	}
}
