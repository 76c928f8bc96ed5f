package boardclient

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// StateStore persists the selected room across sessions, the way the
// browser client kept it in localStorage.
type StateStore interface {
	LoadRoom() (string, error)
	SaveRoom(name string) error
}

// FileStateStore keeps the state in a small JSON file.
type FileStateStore struct {
	path string
}

func NewFileStateStore(path string) *FileStateStore {
	return &FileStateStore{path: path}
}

type persistedState struct {
	CurrentRoom string `json:"currentRoom"`
}

func (s *FileStateStore) LoadRoom() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var st persistedState
	if err := json.Unmarshal(data, &st); err != nil {
		// A corrupt state file means starting fresh, not failing to open.
		return "", nil
	}
	return st.CurrentRoom, nil
}

func (s *FileStateStore) SaveRoom(name string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(persistedState{CurrentRoom: name})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// MemoryStateStore holds the state in memory only; used in tests and by
// callers that do not want persistence.
type MemoryStateStore struct {
	room string
}

func (s *MemoryStateStore) LoadRoom() (string, error) { return s.room, nil }

func (s *MemoryStateStore) SaveRoom(name string) error {
	s.room = name
	return nil
}
