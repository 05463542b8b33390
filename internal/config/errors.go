package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when a required application setting
	// (the token sign key or token duration) is missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidStorageConfigs is returned when the MongoDB connection
	// parameters are incomplete.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidServerConfigs is returned when no HTTP listen address is
	// configured.
	ErrInvalidServerConfigs = errors.New("invalid server configs")
)
