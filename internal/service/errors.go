package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every request validation failure.
	// The transport layer maps it to 400 Bad Request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored hash for an existing account.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the single failure result of ParseToken.
	// Signature mismatch, expiry, wrong issuer, and malformed tokens all
	// collapse into this error.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
