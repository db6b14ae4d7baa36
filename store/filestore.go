package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// FileStore keeps one JSON file per key under a data directory. A single
// mutex serializes all access, which gives Update its read-modify-write
// atomicity; there is deliberately no finer-grained locking because the
// contract is last-write-wins.
type FileStore struct {
	dir string

	mu   sync.Mutex
	subs map[string][]chan ChangeEvent
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir, subs: make(map[string][]chan ChangeEvent)}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, into any) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(key, into)
}

func (s *FileStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(key, value)
}

func (s *FileStore) Update(key string, into any, mutate func() error) error {
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

func (s *FileStore) Subscribe(key string) <-chan ChangeEvent {
	ch := make(chan ChangeEvent, 8)
	s.mu.Lock()
	s.subs[key] = append(s.subs[key], ch)
	s.mu.Unlock()
	return ch
}

func (s *FileStore) readLocked(key string, into any) (time.Time, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read %s: %w", key, err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return time.Time{}, fmt.Errorf("decode %s: %w", key, err)
	}
	if err := json.Unmarshal(rec.Data, into); err != nil {
		return time.Time{}, fmt.Errorf("decode %s data: %w", key, err)
	}
	return rec.LastUpdated, nil
}

func (s *FileStore) writeLocked(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	rec := record{Data: data, LastUpdated: time.Now()}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", key, err)
	}

	// Temp-file + rename so a concurrent reader never sees a torn file.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("commit %s: %w", key, err)
	}

	s.notifyLocked(key, rec.LastUpdated)
	return nil
}

func (s *FileStore) notifyLocked(key string, at time.Time) {
	ev := ChangeEvent{Key: key, LastUpdated: at}
	for _, ch := range s.subs[key] {
		select {
		case ch <- ev:
		default:
			logrus.WithField("key", key).Warn("store subscriber lagging, event dropped")
		}
	}
}
