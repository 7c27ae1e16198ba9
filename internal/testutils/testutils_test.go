package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/flashcode/flashweb/internal/config"
)

func TestConfigForTests(t *testing.T) {
	cfg := ConfigForTests(t)
	assert.GreaterOrEqual(t, len(cfg.GetSessionSecret()), 16)
	assert.Equal(t, float64(10000), cfg.GetUIRateLimit())

	cfg = ConfigForTests(t, func(cfg *config.Config) {
		cfg.GlitchPeriod = time.Second
	}, nil)
	assert.Equal(t, time.Second, cfg.GetGlitchPeriod())
}

func TestProjectRoot(t *testing.T) {
	root, ok := projectRoot()
	assert.True(t, ok)
	assert.FileExists(t, root+"/go.mod")
}
