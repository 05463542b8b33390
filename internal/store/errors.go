package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists. The unique
	// index on the users collection is the authoritative source of this
	// condition; the pre-registration count check merely anticipates it.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")
)
