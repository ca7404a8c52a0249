package options

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	name  string
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		Apply(cfg,
			New(func(c *testConfig) { c.value = 1 }),
			New(func(c *testConfig) { c.name = "a" }),
			New(func(c *testConfig) { c.value = 2 }),
		)
		require.Equal(t, 2, cfg.value)
		require.Equal(t, "a", cfg.name)
	})

	t.Run("no-op with zero options", func(t *testing.T) {
		cfg := &testConfig{value: 7}
		Apply[*testConfig](cfg)
		require.Equal(t, 7, cfg.value)
	})
}
