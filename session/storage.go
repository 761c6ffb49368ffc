package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// StorageFile is the fixed name the session is serialized under.
const StorageFile = "session.json"

// Storage persists the session across process restarts.
type Storage interface {
	// Load reads the persisted session. found is false when nothing was
	// ever persisted or the session was cleared.
	Load() (s Session, found bool, err error)

	// Save rewrites the persisted session.
	Save(s Session) error

	// Clear removes the persisted session.
	Clear() error
}

// FileStorage keeps the session as a JSON file in a directory, typically
// under the user's config dir.
type FileStorage struct {
	path string
}

// NewFileStorage creates a storage rooted at dir. The directory is created
// on first save.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{path: filepath.Join(dir, StorageFile)}
}

var _ Storage = (*FileStorage)(nil)

func (fs *FileStorage) Load() (Session, bool, error) {
	raw, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, errors.Wrap(err, "reading session file")
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		// A corrupt session file is treated as absent rather than fatal;
		// the user simply logs in again.
		return Session{}, false, nil
	}
	return s, true, nil
}

func (fs *FileStorage) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	// The file carries a bearer token, keep it owner-only.
	if err := os.WriteFile(fs.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "writing session file")
	}
	return nil
}

func (fs *FileStorage) Clear() error {
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}
