package papertrade

import "fmt"

// User binds a credential to one portfolio. The username is the unique
// identity; the credential hash is set once at creation and round-trips
// through snapshots without ever being re-hashed.
type User struct {
	Username       string
	CredentialHash string
	Portfolio      *Portfolio
}

// NewUser creates a user with an empty portfolio, delegating the hashing
// of the raw secret to the credential collaborator.
func NewUser(username, secret string, h Hasher) (*User, error) {
	hash, err := h.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("hashing credential for %q: %w", username, err)
	}
	return &User{
		Username:       username,
		CredentialHash: hash,
		Portfolio:      NewPortfolio(),
	}, nil
}

// UserSnapshot is the persisted form of a user record.
type UserSnapshot struct {
	CredentialHash string            `json:"credential_hash"`
	Portfolio      PortfolioSnapshot `json:"portfolio"`
}

// Snapshot returns the persisted form of the user.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		CredentialHash: u.CredentialHash,
		Portfolio:      u.Portfolio.Snapshot(),
	}
}

// UserFromSnapshot restores a user from its persisted form. The
// credential hash is carried verbatim, so loading is idempotent.
func UserFromSnapshot(username string, s UserSnapshot) (*User, error) {
	p, err := PortfolioFromSnapshot(s.Portfolio)
	if err != nil {
		return nil, fmt.Errorf("restoring portfolio for %q: %w", username, err)
	}
	return &User{
		Username:       username,
		CredentialHash: s.CredentialHash,
		Portfolio:      p,
	}, nil
}
