package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fetchstate/pkg/config"
)

type testConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
	Count   int           `env:"CONFIG_TEST_COUNT" envDefault:"5"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"15s"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load[testConfig]()
	require.NoError(t, err)

	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 5, cfg.Count)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_NAME", "from-env")
	t.Setenv("CONFIG_TEST_COUNT", "9")
	t.Setenv("CONFIG_TEST_TIMEOUT", "250ms")

	cfg, err := config.Load[testConfig]()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 9, cfg.Count)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoad_ParseFailure(t *testing.T) {
	t.Setenv("CONFIG_TEST_COUNT", "not-a-number")

	_, err := config.Load[testConfig]()
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestLoad_RequiredMissing(t *testing.T) {
	_, err := config.Load[requiredConfig]()
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestMustLoad(t *testing.T) {
	t.Run("returns the parsed config", func(t *testing.T) {
		cfg := config.MustLoad[testConfig]()
		assert.Equal(t, "fallback", cfg.Name)
	})

	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_COUNT", "boom")
		assert.Panics(t, func() {
			config.MustLoad[testConfig]()
		})
	})
}
