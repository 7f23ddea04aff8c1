package engine

import "github.com/zappabad/stockgame/internal/market"

// Config holds configuration for the price engine.
type Config struct {
	// HistoryLimit is the capacity of each company's price history.
	HistoryLimit int
	// InitialPriceMin is the lowest possible seed price.
	InitialPriceMin market.Price
	// InitialPriceMax is the highest possible seed price.
	InitialPriceMax market.Price
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		HistoryLimit:    100,
		InitialPriceMin: 1_000,
		InitialPriceMax: 50_000,
	}
}
