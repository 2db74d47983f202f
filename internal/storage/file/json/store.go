package json

import (
	"github.com/drakos74/calib/internal/storage"
)

// Storage is a json file backed Persistence implementation.
// Each key maps to its own file under the storage directory.
type Storage struct {
	dir string
}

// NewStorage creates a new storage under the given directory.
func NewStorage(dir string) *Storage {
	return &Storage{
		dir: dir,
	}
}

func (s Storage) Store(k storage.Key, value interface{}) error {
	return Save(s.dir, k.Path(), value)
}

func (s Storage) Load(k storage.Key, value interface{}) error {
	return Load(s.dir, k.Path(), value)
}
