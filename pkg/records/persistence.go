package records

import (
	"errors"
	"io/fs"
	"os"
)

// Persistence is the single storage slot the record store writes to. The
// store serializes the whole document on every mutation, so Save receives the
// full blob each time.
type Persistence interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

type filePersistence struct{ path string }

func NewFilePersistence(path string) Persistence { return &filePersistence{path: path} }

func (f *filePersistence) Load() ([]byte, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return b, err
}

func (f *filePersistence) Save(data []byte) error {
	return os.WriteFile(f.path, data, 0o644)
}

type memoryPersistence struct{ blob []byte }

// NewMemoryPersistence keeps the blob in memory; tests run against isolated
// instances without touching disk.
func NewMemoryPersistence(initial []byte) Persistence {
	return &memoryPersistence{blob: initial}
}

func (m *memoryPersistence) Load() ([]byte, error) { return m.blob, nil }

func (m *memoryPersistence) Save(data []byte) error {
	m.blob = append([]byte(nil), data...)
	return nil
}
