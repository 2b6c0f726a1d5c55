package papertrade

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
)

// The user store is a single JSON file mapping each username to its
// snapshot:
//
//	{ "<username>": { "credential_hash": "...", "portfolio": { "<symbol>": { "quantity": N } } } }
//
// Semantics are read-modify-write of the whole map; no partial-write
// atomicity is required, but snapshots are stable under repeated
// round-trips.

// DecodeUsers reads the full username → snapshot map from r.
func DecodeUsers(r io.Reader) (map[string]UserSnapshot, error) {
	var users map[string]UserSnapshot
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if users == nil {
		users = make(map[string]UserSnapshot)
	}
	return users, nil
}

// EncodeUsers writes the full username → snapshot map to w, indented to
// stay human-readable and diff-friendly.
func EncodeUsers(w io.Writer, users map[string]UserSnapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(users)
}

// UserStore loads and saves all user snapshots at once.
type UserStore interface {
	LoadAll() (map[string]UserSnapshot, error)
	SaveAll(users map[string]UserSnapshot) error
}

// FileUserStore is a UserStore over a single JSON file.
//
// Loading fails closed: a missing or structurally invalid file reads as
// an empty store rather than an error, so a damaged file never locks the
// user out of the application.
type FileUserStore struct {
	Path string
}

// NewFileUserStore creates a store over the given file path.
func NewFileUserStore(path string) *FileUserStore {
	return &FileUserStore{Path: path}
}

func (s *FileUserStore) LoadAll() (map[string]UserSnapshot, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]UserSnapshot), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening user store %q: %w", s.Path, err)
	}
	defer f.Close()

	users, err := DecodeUsers(f)
	if err != nil {
		log.Printf("warning, user store %q is malformed, treating as empty: %v", s.Path, err)
		return make(map[string]UserSnapshot), nil
	}
	return users, nil
}

func (s *FileUserStore) SaveAll(users map[string]UserSnapshot) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("writing user store %q: %w", s.Path, err)
	}
	defer f.Close()
	return EncodeUsers(f, users)
}
