package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/toryoto/Dapps-Auth/internal/user"
)

// Store persiste l'utilisateur de la session sous une clé unique,
// l'équivalent du localStorage du navigateur.
type Store interface {
	// Load renvoie (nil, nil) si aucune session n'est persistée
	Load() (*user.User, error)
	Save(u *user.User) error
	Clear() error
}

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*user.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var u user.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *FileStore) Save(u *user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore sert aux tests
type MemoryStore struct {
	user *user.User
}

func NewMemoryStore(u *user.User) *MemoryStore {
	return &MemoryStore{user: u}
}

func (s *MemoryStore) Load() (*user.User, error) {
	return s.user, nil
}

func (s *MemoryStore) Save(u *user.User) error {
	s.user = u
	return nil
}

func (s *MemoryStore) Clear() error {
	s.user = nil
	return nil
}
