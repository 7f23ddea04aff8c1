package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, int64(100_000), cfg.StartingCash)
	assert.Equal(t, int64(1_000), cfg.InitialPriceMin)
	assert.Equal(t, int64(50_000), cfg.InitialPriceMax)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, 100, cfg.TradeLogLimit)
	assert.True(t, cfg.SuppressFlatAssetHistory)
	assert.Equal(t, 5*time.Second, time.Duration(cfg.RefreshInterval))
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
starting_cash: 250000
history_limit: 50
refresh_interval: 1.5s
companies:
  - Alpha
  - Beta
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(250_000), cfg.StartingCash)
	assert.Equal(t, 50, cfg.HistoryLimit)
	assert.Equal(t, 1500*time.Millisecond, time.Duration(cfg.RefreshInterval))
	assert.Equal(t, []string{"Alpha", "Beta"}, cfg.Companies)

	// Untouched fields keep their defaults.
	assert.Equal(t, int64(1_000), cfg.InitialPriceMin)
	assert.Equal(t, 100, cfg.TradeLogLimit)
	assert.True(t, cfg.SuppressFlatAssetHistory)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative cash", "starting_cash: -1"},
		{"inverted price range", "initial_price_min: 5000\ninitial_price_max: 1000"},
		{"price below floor", "initial_price_min: 10"},
		{"bad duration", "refresh_interval: soon"},
		{"not yaml", ":\n  - ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNewBackfillsZeroValues(t *testing.T) {
	s := New(Config{})

	assert.Equal(t, int64(100_000), s.Config().StartingCash)
	assert.Equal(t, 100, s.Config().HistoryLimit)
	assert.Equal(t, 100, s.Config().TradeLogLimit)
	assert.Len(t, s.Listing(), 10)
}
