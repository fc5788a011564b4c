package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "restaurants.db"))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AUTH_ENABLED", "false")
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRegisteredCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "seed", "create-client"} {
		assert.True(t, names[want], want)
	}
}

func TestSeedCommand(t *testing.T) {
	setTestEnv(t)

	out := run(t, "seed", "--restaurants", "3", "--pizzas", "4", "--associations", "6", "--seed", "1")
	assert.Contains(t, out, "Seeded 3 restaurants, 4 pizzas and 6 restaurant pizzas")
}

func TestCreateClientCommand(t *testing.T) {
	setTestEnv(t)

	out := run(t, "create-client", "--role", "user", "--id", "ci-client", "--secret", "ci-secret")
	assert.Contains(t, out, "OAuth client created for role 'user'")
	assert.Contains(t, out, "Client ID: ci-client")
	assert.Contains(t, out, "Client Secret: ci-secret")
}
