// Package session holds the admin authentication context.
//
// The token is read once from a Store when the tool starts and is handed to
// every mutating API call through Session.Token.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Store persists the bearer token in a single file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) (store *Store) {
	store = &Store{path: path}
	return store
}

// Path returns the token file location.
func (s *Store) Path() (path string) {
	path = s.path
	return path
}

// Load reads the stored token. A missing file yields an empty token.
func (s *Store) Load() (token string, err error) {
	var data []byte
	data, err = os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
			return token, err
		}
		err = errors.Wrapf(err, "failed to read token file: %s", s.path)
		return token, err
	}

	token = strings.TrimSpace(string(data))
	return token, err
}

// Save writes token to the store, creating the parent directory if needed.
func (s *Store) Save(token string) (err error) {
	dir := filepath.Dir(s.path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create token directory: %s", dir)
		return err
	}

	err = os.WriteFile(s.path, []byte(token), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write token file: %s", s.path)
		return err
	}

	return err
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *Store) Clear() (err error) {
	err = os.Remove(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			err = nil
			return err
		}
		err = errors.Wrapf(err, "failed to remove token file: %s", s.path)
		return err
	}

	return err
}

// Session is the explicit auth context shared by all views.
type Session struct {
	mu    sync.RWMutex
	store *Store
	token string
}

// Acquire loads the token from store and returns a session bound to it.
func Acquire(store *Store) (sess *Session, err error) {
	var token string
	token, err = store.Load()
	if err != nil {
		return sess, err
	}

	sess = &Session{store: store, token: token}
	return sess, err
}

// Token returns the current token, which may be empty.
func (s *Session) Token() (token string) {
	s.mu.RLock()
	token = s.token
	s.mu.RUnlock()
	return token
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() (ok bool) {
	ok = s.Token() != ""
	return ok
}

// Set persists token and makes it current.
func (s *Session) Set(token string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.store.Save(token)
	if err != nil {
		return err
	}

	s.token = token
	return err
}

// Clear forgets the token both in memory and on disk.
func (s *Session) Clear() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.store.Clear()
	if err != nil {
		return err
	}

	s.token = ""
	return err
}
