package session

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/liftquest/internal/models"
)

// SnapshotFile keeps the in-progress session on disk so a crashed prompt can be resumed.
type SnapshotFile struct {
	Path string
}

func NewSnapshotFile(dir string) *SnapshotFile {
	return &SnapshotFile{Path: filepath.Join(dir, "current_session.toml")}
}

func (f *SnapshotFile) Save(state models.SessionState) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return err
	}

	tmp := f.Path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(file).Encode(state); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, f.Path)
}

func (f *SnapshotFile) Load() (*models.SessionState, error) {
	var state models.SessionState
	if _, err := toml.DecodeFile(f.Path, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Clear removes the snapshot. A missing file is not an error.
func (f *SnapshotFile) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (f *SnapshotFile) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}
