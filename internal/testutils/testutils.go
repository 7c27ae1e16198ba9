// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/flashcode/flashweb/internal/config"
)

// TestSessionSecret satisfies the session secret rules.
const TestSessionSecret = "0123456789abcdef"

// ConfigForTests returns a validated configuration built from the defaults,
// the project's .env.test file when one exists and the tune functions, in that
// order. The process environment is never consulted.
func ConfigForTests(t *testing.T, tune ...func(cfg *config.Config)) *config.Config {
	t.Helper()

	env := map[string]string{}
	if root, ok := projectRoot(); ok {
		path := filepath.Join(root, ".env.test")
		if _, err := os.Stat(path); err == nil {
			env, err = godotenv.Read(path)
			require.NoError(t, err, "failed to read .env.test")
		}
	}

	cfg, err := config.ReadEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	require.NoError(t, err)

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = TestSessionSecret
	}
	// Tests hammer the UI endpoints far faster than a person would.
	cfg.UIRateLimit = 10000

	for _, fn := range tune {
		if fn != nil {
			fn(cfg)
		}
	}
	require.NoError(t, config.Validate(cfg))
	return cfg
}

// projectRoot walks up from the working directory to the directory holding go.mod.
func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
