// Package users implements the credential store: registration of accounts
// identified by their RGM and password verification at login.
package users

import "time"

// User is a registered account.
//
// ID is the caller-supplied RGM used as the login identifier; the store does
// not generate it. Digest and Salt are the persisted verification material;
// the password itself is never stored.
type User struct {
	ID        int64
	Name      string
	Digest    []byte
	Salt      []byte
	CreatedAt time.Time
}
