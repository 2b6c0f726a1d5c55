package papertrade

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileUserStore_RoundTrip(t *testing.T) {
	store := NewFileUserStore(filepath.Join(t.TempDir(), "users.json"))

	users := map[string]UserSnapshot{
		"alice": {
			CredentialHash: "$2a$10$abcdefghijklmnopqrstuv",
			Portfolio:      PortfolioSnapshot{"RELIANCE.NS": {Quantity: 10}},
		},
		"bob": {
			CredentialHash: "$2a$10$vutsrqponmlkjihgfedcba",
			Portfolio:      PortfolioSnapshot{},
		},
	}
	require.NoError(t, store.SaveAll(users))

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, users["alice"].CredentialHash, loaded["alice"].CredentialHash)
	assert.Equal(t, int64(10), loaded["alice"].Portfolio["RELIANCE.NS"].Quantity)
	assert.Contains(t, loaded, "bob")

	// saving again and reloading is stable
	require.NoError(t, store.SaveAll(loaded))
	reloaded, err := store.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, loaded, reloaded)
}

func TestFileUserStore_MissingFile(t *testing.T) {
	store := NewFileUserStore(filepath.Join(t.TempDir(), "users.json"))
	users, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFileUserStore_MalformedFileFailsClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewFileUserStore(path)
	users, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}
