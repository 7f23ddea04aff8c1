package view

import "github.com/zappabad/stockgame/internal/market"

// CompanyQuote is one market-table row: the current price, its change
// since the previous tick, and the recorded price series (oldest first).
type CompanyQuote struct {
	ID      market.CompanyID
	Name    string
	Price   market.Price
	Delta   int64
	History []market.Price
}

// Holding is one portfolio row; only companies with shares > 0 appear.
type Holding struct {
	ID     market.CompanyID
	Name   string
	Shares int64
	Price  market.Price
	Value  int64
}

// Snapshot is the full read model a host polls after each tick.
// Everything in it is a copy; mutating it never affects the session.
type Snapshot struct {
	Cash           int64
	PortfolioValue int64
	TotalAssets    int64

	Companies    []CompanyQuote // listing order
	Holdings     []Holding      // listing order, shares > 0 only
	AssetHistory []int64        // oldest first
	TradeLog     []string       // most recent first
}

// TradeReceipt summarizes an executed trade for host status lines.
type TradeReceipt struct {
	Kind     string
	Company  string
	Quantity int64
	Amount   int64
	Cash     int64
}
