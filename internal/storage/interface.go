package storage

import "github.com/julianstephens/frame/internal/models"

// Provider persists the full UserState. Mutations go through Save with a
// complete state snapshot; there is no incremental persistence.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// State
	State() (models.UserState, error)
	Save(models.UserState) error

	// Utils
	GetConfigPath() string
}
