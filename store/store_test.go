package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/JashanBansal182304/MessMate/store"
)

type roster struct {
	Names []string `json:"names"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	s, err := store.NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	if err := s.Set(store.KeyStaffRoster, roster{Names: []string{"Asha"}}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got roster
	at, err := s.Get(store.KeyStaffRoster, &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Names) != 1 || got.Names[0] != "Asha" {
		t.Fatalf("unexpected roster: %+v", got)
	}
	if at.IsZero() {
		t.Fatal("lastUpdated not set")
	}
}

func TestGetMissingKeyReturnsErrNotFound(t *testing.T) {
	t.Parallel()
	s := store.NewMemStore()

	var got roster
	if _, err := s.Get("never-written", &got); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateIsReadModifyWrite(t *testing.T) {
	t.Parallel()
	s := store.NewMemStore()
	if err := s.Set(store.KeyStaffRoster, roster{Names: []string{"Asha"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var snap roster
	err := s.Update(store.KeyStaffRoster, &snap, func() error {
		snap.Names = append(snap.Names, "Ravi")
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var got roster
	first, err := s.Get(store.KeyStaffRoster, &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Names) != 2 {
		t.Fatalf("expected merged record, got %+v", got)
	}

	// A second update bumps lastUpdated.
	time.Sleep(time.Millisecond)
	if err := s.Set(store.KeyStaffRoster, got); err != nil {
		t.Fatalf("set: %v", err)
	}
	second, _ := s.Get(store.KeyStaffRoster, &got)
	if !second.After(first) {
		t.Fatalf("lastUpdated not bumped: %v -> %v", first, second)
	}
}

func TestUpdateMissingKeyStartsFromZeroValue(t *testing.T) {
	t.Parallel()
	s := store.NewMemStore()

	var snap roster
	err := s.Update(store.KeyInventory, &snap, func() error {
		snap.Names = append(snap.Names, "Rice")
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var got roster
	if _, err := s.Get(store.KeyInventory, &got); err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if len(got.Names) != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestSubscribeDeliversChangeEvents(t *testing.T) {
	t.Parallel()
	s := store.NewMemStore()
	ch := s.Subscribe(store.KeyInventory)

	if err := s.Set(store.KeyInventory, roster{Names: []string{"Dal"}}); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case ev := <-ch:
		if ev.Key != store.KeyInventory {
			t.Fatalf("event for wrong key: %q", ev.Key)
		}
		if ev.LastUpdated.IsZero() {
			t.Fatal("event missing lastUpdated")
		}
	case <-time.After(time.Second):
		t.Fatal("no change event delivered")
	}

	// Writes to other keys do not notify this subscriber.
	if err := s.Set(store.KeyStaffRoster, roster{}); err != nil {
		t.Fatalf("set other key: %v", err)
	}
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
