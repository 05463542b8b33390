// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnvVars sets every variable from the given map for the duration of the
// test. t.Setenv restores the previous values automatically.
func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}

func TestParseEnv_AllValues(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":            "env-sign-key",
		"APP_TOKEN_ISSUER":              "env-issuer",
		"APP_TOKEN_DURATION":            "12h",
		"APP_VERSION":                   "1.2.3",
		"STORAGE_MONGODB_SCHEME":        "mongodb",
		"STORAGE_MONGODB_HOST":          "mongo.internal",
		"STORAGE_MONGODB_PORT":          "27018",
		"STORAGE_MONGODB_MAX_POOL_SIZE": "50",
		"SERVER_ADDRESS":                "0.0.0.0:9090",
		"SERVER_REQUEST_TIMEOUT":        "15s",
		"CONFIG":                        "/etc/prelaunch/config.json",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "mongodb", cfg.Storage.Mongo.Scheme)
	assert.Equal(t, "mongo.internal", cfg.Storage.Mongo.Host)
	assert.Equal(t, "27018", cfg.Storage.Mongo.Port)
	assert.Equal(t, uint64(50), cfg.Storage.Mongo.MaxPoolSize)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/etc/prelaunch/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":     "",
		"SERVER_ADDRESS":         "",
		"STORAGE_MONGODB_SCHEME": "",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.App.TokenDuration)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_DURATION": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestParseEnv_InvalidPoolSize(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_MONGODB_MAX_POOL_SIZE": "many",
	})

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
