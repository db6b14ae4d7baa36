package store

import (
	"encoding/json"
	"sync"
	"time"
)

// MemStore is the in-memory Store used by tests and as a scratch store
// when no data directory is configured.
type MemStore struct {
	mu   sync.Mutex
	recs map[string]record
	subs map[string][]chan ChangeEvent
}

func NewMemStore() *MemStore {
	return &MemStore{
		recs: make(map[string]record),
		subs: make(map[string][]chan ChangeEvent),
	}
}

func (s *MemStore) Get(key string, into any) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(key, into)
}

func (s *MemStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(key, value)
}

func (s *MemStore) Update(key string, into any, mutate func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.readLocked(key, into); err != nil && err != ErrNotFound {
		return err
	}
	if err := mutate(); err != nil {
		return err
	}
	return s.writeLocked(key, into)
}

func (s *MemStore) Subscribe(key string) <-chan ChangeEvent {
	ch := make(chan ChangeEvent, 8)
	s.mu.Lock()
	s.subs[key] = append(s.subs[key], ch)
	s.mu.Unlock()
	return ch
}

func (s *MemStore) readLocked(key string, into any) (time.Time, error) {
	rec, ok := s.recs[key]
	if !ok {
		return time.Time{}, ErrNotFound
	}
	if err := json.Unmarshal(rec.Data, into); err != nil {
		return time.Time{}, err
	}
	return rec.LastUpdated, nil
}

func (s *MemStore) writeLocked(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := record{Data: data, LastUpdated: time.Now()}
	s.recs[key] = rec

	ev := ChangeEvent{Key: key, LastUpdated: rec.LastUpdated}
	for _, ch := range s.subs[key] {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}
