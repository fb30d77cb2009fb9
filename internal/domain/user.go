package domain

import "time"

// User is an account record. PasswordHash holds the bcrypt hash,
// never the plaintext.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	JoinedOn     time.Time
}
