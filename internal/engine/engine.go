package engine

import (
	"math/rand"

	"github.com/zappabad/stockgame/internal/history"
	"github.com/zappabad/stockgame/internal/market"
)

// Engine is the price core: every Tick moves each company's price by a
// bounded random step and records it in that company's history.
// It has no goroutines, mutexes, channels, or time calls.
type Engine struct {
	cfg     Config
	listing []market.Company

	current  map[market.CompanyID]market.Price
	previous map[market.CompanyID]market.Price
	hist     map[market.CompanyID]*history.Buffer[market.Price]

	rng *rand.Rand
}

// New creates an Engine and seeds every company an independent uniform
// price in [cfg.InitialPriceMin, cfg.InitialPriceMax]. The seed price is
// the first point of each company's history.
func New(listing []market.Company, cfg Config, rng *rand.Rand) *Engine {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultConfig().HistoryLimit
	}
	if cfg.InitialPriceMin <= 0 {
		cfg.InitialPriceMin = DefaultConfig().InitialPriceMin
	}
	if cfg.InitialPriceMax < cfg.InitialPriceMin {
		cfg.InitialPriceMax = cfg.InitialPriceMin
	}

	e := &Engine{
		cfg:      cfg,
		listing:  append([]market.Company(nil), listing...),
		current:  make(map[market.CompanyID]market.Price, len(listing)),
		previous: make(map[market.CompanyID]market.Price, len(listing)),
		hist:     make(map[market.CompanyID]*history.Buffer[market.Price], len(listing)),
		rng:      rng,
	}

	span := int64(cfg.InitialPriceMax - cfg.InitialPriceMin)
	for _, c := range listing {
		cid := c.CompanyID()
		p := cfg.InitialPriceMin
		if span > 0 {
			p += market.Price(rng.Int63n(span + 1))
		}
		e.current[cid] = p
		e.previous[cid] = p
		e.hist[cid] = history.New[market.Price](cfg.HistoryLimit)
		e.hist[cid].Append(p)
	}

	return e
}

// Tick advances every company's price one random-walk step. The step is
// uniform in [-maxChange, +maxChange] where maxChange = price/10, and the
// result is clamped to [market.MinPrice, market.MaxPrice]. The pre-tick
// prices become the previous-price map. Tick never fails.
func (e *Engine) Tick() {
	prev := make(map[market.CompanyID]market.Price, len(e.current))
	for cid, p := range e.current {
		prev[cid] = p
	}
	e.previous = prev

	for _, c := range e.listing {
		cid := c.CompanyID()
		price := e.current[cid]

		maxChange := int64(price) / 10
		var change int64
		if maxChange > 0 {
			// uniform in [-maxChange, +maxChange]; never sample an empty range
			change = e.rng.Int63n(2*maxChange+1) - maxChange
		}

		next := market.Clamp(price + market.Price(change))
		e.current[cid] = next
		e.hist[cid].Append(next)
	}
}

// Listing returns the companies in listing order.
// Returns a copy (not internal references).
func (e *Engine) Listing() []market.Company {
	return append([]market.Company(nil), e.listing...)
}

// Price returns the current price for a company.
func (e *Engine) Price(cid market.CompanyID) (market.Price, bool) {
	p, ok := e.current[cid]
	return p, ok
}

// PrevPrice returns the company's price as of the previous tick.
func (e *Engine) PrevPrice(cid market.CompanyID) (market.Price, bool) {
	p, ok := e.previous[cid]
	return p, ok
}

// Prices returns the current price map.
// Returns a copy (not internal references).
func (e *Engine) Prices() map[market.CompanyID]market.Price {
	out := make(map[market.CompanyID]market.Price, len(e.current))
	for cid, p := range e.current {
		out[cid] = p
	}
	return out
}

// PrevPrices returns the previous-tick price map.
// Returns a copy (not internal references).
func (e *Engine) PrevPrices() map[market.CompanyID]market.Price {
	out := make(map[market.CompanyID]market.Price, len(e.previous))
	for cid, p := range e.previous {
		out[cid] = p
	}
	return out
}

// History returns a company's recorded prices, oldest first.
// Returns a copy (not internal references).
func (e *Engine) History(cid market.CompanyID) []market.Price {
	h, ok := e.hist[cid]
	if !ok {
		return nil
	}
	return h.Snapshot()
}
