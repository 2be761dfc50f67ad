package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/frame/internal/models"
)

type jsonFile struct {
	Version int              `json:"version"`
	State   models.UserState `json:"state"`
}

// JSONStore persists the whole state as a single versioned JSON file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple frame processes against the same storage path is
//     not supported and may lead to data loss.
type JSONStore struct {
	path  string
	store *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &jsonFile{
		Version: 1,
		State:   models.NewUserState(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'frame init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &jsonFile{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.store.State.CheckIns == nil {
		s.store.State.CheckIns = []models.CheckIn{}
	}
	if s.store.State.Habits == nil {
		s.store.State.Habits = []models.Habit{}
	}
	if s.store.State.HabitLogs == nil {
		s.store.State.HabitLogs = []models.HabitLog{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) State() (models.UserState, error) {
	if s.store == nil {
		return models.UserState{}, fmt.Errorf("storage not loaded")
	}
	return s.store.State, nil
}

func (s *JSONStore) Save(state models.UserState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.State = state
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
