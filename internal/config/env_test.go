package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	t.Setenv("BASE_URL", "http://localhost:8090")

	require.NoError(t, Init())

	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, "http://localhost:8090", GetBaseURL())
	assert.Empty(t, GetServerPublicKeyPath())
	assert.Equal(t, 15*time.Second, GetRequestTimeout())
	assert.Equal(t, "mainnet", GetNetwork())
	assert.Equal(t, "info", Get().LogLevel)
}

func TestInit_Overrides(t *testing.T) {
	t.Setenv("BASE_URL", "https://wallet.example.com")
	t.Setenv("PORT", "9000")
	t.Setenv("SERVER_PUBLIC_KEY_PATH", "/etc/wallet/server.pem")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("NETWORK", "preprod")

	require.NoError(t, Init())

	assert.Equal(t, "9000", GetPort())
	assert.Equal(t, "/etc/wallet/server.pem", GetServerPublicKeyPath())
	assert.Equal(t, 3*time.Second, GetRequestTimeout())
	assert.Equal(t, "preprod", GetNetwork())
}

func TestInit_MissingBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "")
	require.NoError(t, os.Unsetenv("BASE_URL"))

	err := Init()
	assert.ErrorContains(t, err, "failed to process config")
}

func TestInit_EmptyBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "")

	assert.EqualError(t, Init(), "BASE_URL cannot be empty")
}

func TestInit_InvalidTimeout(t *testing.T) {
	t.Setenv("BASE_URL", "http://localhost:8090")
	t.Setenv("REQUEST_TIMEOUT", "0s")

	assert.EqualError(t, Init(), "REQUEST_TIMEOUT must be positive")
}
