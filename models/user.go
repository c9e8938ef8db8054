package models

import "time"

// User is an account entity holding the credentials and identity used to
// scope clipboard state, history, and sessions to a single owner.
type User struct {
	// UserID is the server-assigned, surrogate identifier. Never reused.
	UserID int64 `json:"-"`

	// Username uniquely identifies the account. Case-sensitive, trimmed,
	// non-empty.
	Username string `json:"username"`

	// PasswordHash is the self-describing Argon2id-encoded hash of the
	// account password. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt records when the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing User.
func (u User) TableName() string {
	return "users"
}
