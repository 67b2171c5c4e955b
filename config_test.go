package glove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 100.0, cfg.MaxCount)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, 0.75, cfg.Alpha)
	assert.Equal(t, 30, cfg.NumComponents)
	assert.Equal(t, 5, cfg.Epochs)
	assert.Equal(t, 4, cfg.Threads)
	assert.False(t, cfg.Deterministic)

	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero threads", func(c *Config) { c.Threads = 0 }, "threads"},
		{"negative threads", func(c *Config) { c.Threads = -2 }, "threads"},
		{"zero components", func(c *Config) { c.NumComponents = 0 }, "num_components"},
		{"negative epochs", func(c *Config) { c.Epochs = -1 }, "epochs"},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }, "learning_rate"},
		{"alpha at one", func(c *Config) { c.Alpha = 1 }, "alpha"},
		{"alpha at zero", func(c *Config) { c.Alpha = 0 }, "alpha"},
		{"zero max count", func(c *Config) { c.MaxCount = 0 }, "max_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

func TestConfigWorkers(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 4, cfg.workers())

	cfg.Deterministic = true
	assert.Equal(t, 1, cfg.workers())
}
