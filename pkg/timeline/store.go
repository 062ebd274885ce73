package timeline

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Store errors.
var (
	ErrNotFound = errors.New("timeline: recording not found")
)

// Info summarizes a stored recording.
type Info struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	RecordedAt time.Time `json:"recordedAt"`
	Frames     int       `json:"frames"`
}

// Store persists recordings.
type Store interface {
	Save(ctx context.Context, t *Timeline) (string, error)
	Load(ctx context.Context, id string) (*Timeline, error)
	List(ctx context.Context) ([]Info, error)
	Delete(ctx context.Context, id string) error
}

// DiskStore persists recordings as JSON files in one directory, one file
// per recording, named by a random ID.
type DiskStore struct {
	dir string

	mu    sync.RWMutex
	index map[string]Info
}

// NewDiskStore creates a DiskStore rooted at dir, creating the directory
// if needed and indexing any recordings already present.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	s := &DiskStore{dir: dir, index: make(map[string]Info)}
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s, nil
}

// scan rebuilds the index from the files on disk.
func (s *DiskStore) scan() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		t, err := s.read(id)
		if err != nil {
			continue // skip unreadable files rather than failing startup
		}
		s.index[id] = Info{ID: id, Name: t.Name, RecordedAt: t.RecordedAt, Frames: len(t.Frames)}
	}
	return nil
}

// Save implements Store.
func (s *DiskStore) Save(_ context.Context, t *Timeline) (string, error) {
	id := newRecordingID()
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path(id), data, 0644); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.index[id] = Info{ID: id, Name: t.Name, RecordedAt: t.RecordedAt, Frames: len(t.Frames)}
	s.mu.Unlock()
	return id, nil
}

// Load implements Store.
func (s *DiskStore) Load(_ context.Context, id string) (*Timeline, error) {
	s.mu.RLock()
	_, ok := s.index[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s.read(id)
}

func (s *DiskStore) read(id string) (*Timeline, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var t Timeline
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// List implements Store. Recordings are returned newest first.
func (s *DiskStore) List(_ context.Context) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Info, 0, len(s.index))
	for _, info := range s.index {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out, nil
}

// Delete implements Store.
func (s *DiskStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.index[id]
	delete(s.index, id)
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return os.Remove(s.path(id))
}

func (s *DiskStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// newRecordingID returns a random hex ID.
func newRecordingID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
