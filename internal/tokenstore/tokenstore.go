package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Tokens is the access/refresh pair issued by the users API.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Store persists the token pair in a JSON file, the CLI's counterpart
// of the web client's local storage. The file is created with owner-only
// permissions.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted tokens. A missing file is not an error; it
// returns nil tokens, meaning no one is signed in.
func (s *Store) Load() (*Tokens, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading token file")
	}
	var t Tokens
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "parsing token file")
	}
	return &t, nil
}

func (s *Store) Save(t *Tokens) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating token directory")
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "writing token file")
	}
	return nil
}

// Clear removes the persisted tokens, signing the user out locally.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
