package archive

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	payload := []byte{0x41, 0x52, 0x42, 0x31, 2, 0, 0, 0, 0, 0}
	id, err := store.Save(payload, "boot snapshot")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("payload did not round-trip")
	}
}

func TestLoadUnknownID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Load("no-such-id"); err == nil {
		t.Fatal("expected error for unknown snapshot id")
	}
}

func TestLatestAndList(t *testing.T) {
	store := openTestStore(t)

	if _, _, err := store.Latest(); err == nil {
		t.Fatal("expected error for empty archive")
	}

	var lastID string
	for i := 0; i < 3; i++ {
		id, err := store.Save([]byte{byte(i)}, "")
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		lastID = id
	}

	entry, data, err := store.Latest()
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if entry.SnapshotID != lastID {
		t.Fatalf("expected latest id %s, got %s", lastID, entry.SnapshotID)
	}
	if len(data) != 1 || data[0] != 2 {
		t.Fatalf("expected newest payload, got %v", data)
	}

	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].SnapshotID != lastID {
		t.Fatal("list must be newest first")
	}
}

func TestPrune(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		if _, err := store.Save([]byte{byte(i)}, ""); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	removed, err := store.Prune(2)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after prune, got %d", len(entries))
	}
}
