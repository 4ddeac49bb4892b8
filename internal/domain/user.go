package domain

import "time"

// User represents a registered author.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupInput holds the fields required to register a user.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthResult is returned after a successful signup or login.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}
