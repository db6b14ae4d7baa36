// Package store is the bounded local-only snapshot store: the server-side
// counterpart of the browser localStorage the dashboards used for state
// that has no backend table (staff roster, inventory, complaints, the
// meal-distribution log, and the admin aggregate snapshot).
//
// Each key holds one JSON document plus a lastUpdated timestamp. Writes
// are whole-record swaps with no versioning and no conflict detection;
// the last writer wins. Subscribers are notified after every write, which
// is the analog of the platform storage event that drove cross-tab
// reloads.
package store

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	KeyAdminSnapshot   = "admin-aggregate-snapshot"
	KeyStaffRoster     = "staff-roster"
	KeyInventory       = "inventory-snapshot"
	KeyDistributionLog = "meal-distribution-log"
)

var ErrNotFound = errors.New("store: key not found")

// ChangeEvent is delivered to subscribers after a write commits.
type ChangeEvent struct {
	Key         string    `json:"key"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Store interface {
	// Get unmarshals the record under key into `into` and returns its
	// lastUpdated timestamp. Returns ErrNotFound when the key was never
	// written.
	Get(key string, into any) (time.Time, error)

	// Set replaces the record under key and bumps lastUpdated.
	Set(key string, value any) error

	// Update performs an atomic read-modify-write: the current record is
	// unmarshaled into `into` (left at its zero value when the key is
	// missing), mutate edits it, and the result is written back under the
	// same lock. No reader observes a partial write.
	Update(key string, into any, mutate func() error) error

	// Subscribe returns a channel receiving a ChangeEvent after every
	// write to key. Slow consumers miss events rather than block writers.
	Subscribe(key string) <-chan ChangeEvent
}

// record is the on-disk/in-memory envelope for one key.
type record struct {
	Data        json.RawMessage `json:"data"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
