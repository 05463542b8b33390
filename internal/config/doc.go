// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged through a builder with mergo; earlier sources win for
// non-zero fields, and hard defaults are applied last. The final config is
// validated before the application starts.
package config
