package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zappabad/stockgame/internal/market"
)

// Duration wraps time.Duration so yaml scalars like "1.5s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds configuration for a game session.
type Config struct {
	// StartingCash is the player's opening cash balance in won.
	StartingCash int64 `yaml:"starting_cash"`
	// InitialPriceMin is the lowest possible seed price.
	InitialPriceMin int64 `yaml:"initial_price_min"`
	// InitialPriceMax is the highest possible seed price.
	InitialPriceMax int64 `yaml:"initial_price_max"`
	// HistoryLimit caps the per-company price history and the asset history.
	HistoryLimit int `yaml:"history_limit"`
	// TradeLogLimit caps the trade log. 0 backfills the default; a
	// negative value keeps the log unbounded.
	TradeLogLimit int `yaml:"trade_log_limit"`
	// SuppressFlatAssetHistory skips an asset-history append when the
	// total is unchanged from the last recorded point.
	SuppressFlatAssetHistory bool `yaml:"suppress_flat_asset_history"`
	// RefreshInterval is how often a host should call Tick. The session
	// itself is correct for any cadence; only the hosts read this.
	RefreshInterval Duration `yaml:"refresh_interval"`
	// Companies optionally overrides the listed roster.
	Companies []string `yaml:"companies"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		StartingCash:             100_000,
		InitialPriceMin:          1_000,
		InitialPriceMax:          50_000,
		HistoryLimit:             100,
		TradeLogLimit:            100,
		SuppressFlatAssetHistory: true,
		RefreshInterval:          Duration(5 * time.Second),
	}
}

// LoadConfig reads a yaml config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.StartingCash < 0 {
		return fmt.Errorf("starting_cash must not be negative, got %d", c.StartingCash)
	}
	if c.InitialPriceMin > c.InitialPriceMax {
		return fmt.Errorf("initial_price_min %d exceeds initial_price_max %d", c.InitialPriceMin, c.InitialPriceMax)
	}
	if c.InitialPriceMin < int64(market.MinPrice) || c.InitialPriceMax > int64(market.MaxPrice) {
		return fmt.Errorf("initial price range [%d, %d] outside [%d, %d]",
			c.InitialPriceMin, c.InitialPriceMax, market.MinPrice, market.MaxPrice)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh_interval must not be negative")
	}
	return nil
}

// listing resolves the configured roster.
func (c Config) listing() []market.Company {
	if len(c.Companies) > 0 {
		return market.ListingFromNames(c.Companies)
	}
	return market.DefaultListing()
}
