package domain

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes; everything else is treated as an internal error.
var (
	// ErrNotFound is returned by read paths when no matching article exists.
	ErrNotFound = errors.New("article not found")

	// ErrForbidden is returned when an article exists but the requester
	// does not own it. Only the owned-read path distinguishes this case.
	ErrForbidden = errors.New("not authorized to access this article")

	// ErrNotFoundOrUnauthorized is returned by mutation paths when the
	// target does not exist for the requesting owner. Missing and foreign
	// articles are deliberately indistinguishable so that non-owners
	// cannot probe for existence.
	ErrNotFoundOrUnauthorized = errors.New("article not found or unauthorized")

	// ErrEmailTaken is returned on signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with a bad email or password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user lookup finds nothing.
	ErrUserNotFound = errors.New("user not found")
)
