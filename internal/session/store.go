// Package session persists who is signed in and which repository they last
// picked. The navigation tree only reads it; the sign-in and picker screens
// write it.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrNoCredential is returned when an operation needs a signed-in user.
var ErrNoCredential = errors.New("not signed in")

type record struct {
	Token      string `yaml:"token,omitempty"`
	Login      string `yaml:"login,omitempty"`
	Repository string `yaml:"repository,omitempty"`
}

// Store is a small key/value file. With an empty path it only lives in memory.
type Store struct {
	mu   sync.RWMutex
	path string
	data record
}

// NewMemory returns a store that is never written to disk.
func NewMemory() *Store {
	return &Store{}
}

// Open loads the store at path. A missing file is an empty session.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parsing session %s: %w", path, err)
	}
	return s, nil
}

// Path returns the backing file, empty for memory stores.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) HasCredential() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token != ""
}

func (s *Store) HasSelectedTarget() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Repository != ""
}

// SelectedTarget returns the repository as "owner/name".
func (s *Store) SelectedTarget() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Repository
}

// Credential returns the stored API token.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// Login returns the account name stored with the credential.
func (s *Store) Login() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Login
}

// SetCredential stores a verified token for login.
func (s *Store) SetCredential(token, login string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return s.update(func(r *record) {
		r.Token = token
		r.Login = login
	})
}

// ClearCredential forgets the token. The selected repository is kept so the
// next sign-in can offer it again.
func (s *Store) ClearCredential() error {
	return s.update(func(r *record) {
		r.Token = ""
		r.Login = ""
	})
}

// SelectTarget stores the repository to open in the main flow.
func (s *Store) SelectTarget(repo string) error {
	if repo == "" {
		return errors.New("empty repository")
	}
	return s.update(func(r *record) {
		r.Repository = repo
	})
}

func (s *Store) update(fn func(*record)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.data
	fn(&next)
	if err := s.write(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

func (s *Store) write(r record) error {
	if s.path == "" {
		return nil
	}
	raw, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("writing session %s: %w", s.path, err)
	}
	return nil
}
