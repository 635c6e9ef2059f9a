package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go-bank-client/logger"
)

// ErrNoSession is returned when no token has been persisted, which
// routes the user to the login flow.
var ErrNoSession = errors.New("no session token stored")

// Store reads and writes the bearer credential in a local key-value
// fashion: one token, one file. It is written exactly once at login and
// cleared at logout; every outgoing request reads it immutably.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save persists the token, creating the parent directory on first login.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		logger.Log.WithError(err).Error("Failed to create session directory")
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		logger.Log.WithError(err).Error("Failed to persist session token")
		return err
	}
	logger.Log.WithField("path", s.path).Debug("Session token persisted")
	return nil
}

// Load returns the persisted token, or ErrNoSession when none exists.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		logger.Log.WithError(err).Error("Failed to read session token")
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Clear removes the persisted token. Clearing an absent token is not an
// error; logout must be idempotent.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		logger.Log.WithError(err).Error("Failed to clear session token")
		return err
	}
	return nil
}
