package domain

import "time"

// UserID uniquely identifies a user. It wraps the database-generated serial
// to provide type safety at the domain layer.
type UserID int64

// User represents a registered account. The password hash is never serialized
// in API responses.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Username is the display name chosen at signup.
	Username string `json:"username"`
	// Email is the unique contact address used for login.
	Email string `json:"email"`
	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`
	// CreatedAt is the time the account was created.
	CreatedAt time.Time `json:"created_at"`
}
