package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rakhadjo/bookshelf-be/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStoreProvider defines the interface for credential management.
type CredentialStoreProvider interface {
	Register(username, password string) error
	Verify(username, password string) bool
}

// CredentialStore holds the username -> bcrypt hash mapping. The mapping is
// loaded from the users file at construction and the whole file is rewritten
// after every successful registration.
type CredentialStore struct {
	mu    sync.Mutex
	path  string
	users map[string]models.User
}

// NewCredentialStore loads the mapping from path. A missing file is treated
// as an empty store; a file that exists but cannot be parsed is an error.
func NewCredentialStore(path string) (*CredentialStore, error) {
	s := &CredentialStore{
		path:  path,
		users: make(map[string]models.User),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	// The file holds a flat username -> hash mapping
	var hashes map[string]string
	if err := json.Unmarshal(data, &hashes); err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", path, err)
	}
	for username, hash := range hashes {
		s.users[username] = models.User{Username: username, PasswordHash: hash}
	}

	log.Info().Int("users", len(s.users)).Str("path", path).Msg("Loaded credential store")
	return s, nil
}

// Register creates a new user, hashing their password. The updated mapping is
// persisted before Register returns; if the write fails the registration is
// rolled back so memory and disk never disagree.
func (s *CredentialStore) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.users[username] = models.User{Username: username, PasswordHash: string(hash)}
	if err := s.persistLocked(); err != nil {
		delete(s.users, username)
		return fmt.Errorf("failed to persist users file: %w", err)
	}
	return nil
}

// Verify reports whether the username exists and the password matches its
// stored hash. Unknown user and wrong password are indistinguishable to the
// caller. The bcrypt comparison is constant-time over the derived key.
func (s *CredentialStore) Verify(username, password string) bool {
	s.mu.Lock()
	user, exists := s.users[username]
	s.mu.Unlock()

	if !exists {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// persistLocked rewrites the users file. Callers must hold s.mu. The write
// goes through a temp file and a rename so a crash mid-write leaves the
// previous file intact.
func (s *CredentialStore) persistLocked() error {
	hashes := make(map[string]string, len(s.users))
	for username, user := range s.users {
		hashes[username] = user.PasswordHash
	}
	data, err := json.MarshalIndent(hashes, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".users-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
