package domain

import "time"

// User is the domain entity for a user account. PasswordHash is the bcrypt
// derivation of the password; the plaintext is never stored.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
