package ledger

import (
	"errors"
	"fmt"
	"math"

	"github.com/zappabad/stockgame/internal/market"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrUnknownCompany     = errors.New("unknown company")
)

// Kind represents the trade direction: buy or sell.
type Kind uint8

const (
	KindBuy Kind = iota
	KindSell
)

func (k Kind) String() string {
	switch k {
	case KindBuy:
		return "BUY"
	case KindSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// Trade is an executed-trade record. Amount is the total cost (buy) or
// revenue (sell) in won, not the per-share price.
type Trade struct {
	Kind     Kind
	Company  string
	Quantity int64
	Amount   int64
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %d @ %d", t.Kind, t.Company, t.Quantity, t.Amount)
}

// Ledger owns the player's cash and share holdings. Commands validate
// fully before mutating: a failed trade leaves the ledger unchanged.
// It has no goroutines, mutexes, channels, or time calls.
type Ledger struct {
	cash     int64
	holdings map[market.CompanyID]int64
	names    map[market.CompanyID]string
}

// New creates a Ledger with the given starting cash and a zero holding
// for every listed company.
func New(listing []market.Company, startingCash int64) *Ledger {
	l := &Ledger{
		cash:     startingCash,
		holdings: make(map[market.CompanyID]int64, len(listing)),
		names:    make(map[market.CompanyID]string, len(listing)),
	}
	for _, c := range listing {
		l.holdings[c.CompanyID()] = 0
		l.names[c.CompanyID()] = c.Name
	}
	return l
}

// Buy purchases quantity shares at the given per-share price.
func (l *Ledger) Buy(cid market.CompanyID, quantity int64, price market.Price) (Trade, error) {
	if quantity < 1 {
		return Trade{}, ErrInvalidQuantity
	}
	shares, ok := l.holdings[cid]
	if !ok {
		return Trade{}, ErrUnknownCompany
	}

	// quantity*price must not wrap; a cost beyond int64 exceeds any cash
	if overflows(quantity, price) {
		return Trade{}, ErrInsufficientFunds
	}
	cost := quantity * int64(price)
	if l.cash < cost {
		return Trade{}, ErrInsufficientFunds
	}

	l.cash -= cost
	l.holdings[cid] = shares + quantity

	return Trade{
		Kind:     KindBuy,
		Company:  l.names[cid],
		Quantity: quantity,
		Amount:   cost,
	}, nil
}

// Sell liquidates quantity shares at the given per-share price.
func (l *Ledger) Sell(cid market.CompanyID, quantity int64, price market.Price) (Trade, error) {
	if quantity < 1 {
		return Trade{}, ErrInvalidQuantity
	}
	shares, ok := l.holdings[cid]
	if !ok {
		return Trade{}, ErrUnknownCompany
	}
	if shares < quantity {
		return Trade{}, ErrInsufficientShares
	}
	if overflows(quantity, price) {
		return Trade{}, ErrInvalidQuantity
	}

	revenue := quantity * int64(price)
	if revenue > math.MaxInt64-l.cash {
		return Trade{}, ErrInvalidQuantity
	}
	l.cash += revenue
	l.holdings[cid] = shares - quantity

	return Trade{
		Kind:     KindSell,
		Company:  l.names[cid],
		Quantity: quantity,
		Amount:   revenue,
	}, nil
}

// overflows reports whether quantity*price wraps int64.
func overflows(quantity int64, price market.Price) bool {
	return price > 0 && quantity > math.MaxInt64/int64(price)
}

// Cash returns the current cash balance.
func (l *Ledger) Cash() int64 {
	return l.cash
}

// Shares returns the share count held for a company.
func (l *Ledger) Shares(cid market.CompanyID) (int64, bool) {
	n, ok := l.holdings[cid]
	return n, ok
}

// Holdings returns the full holdings map.
// Returns a copy (not internal references).
func (l *Ledger) Holdings() map[market.CompanyID]int64 {
	out := make(map[market.CompanyID]int64, len(l.holdings))
	for cid, n := range l.holdings {
		out[cid] = n
	}
	return out
}

// PortfolioValue returns the holdings valued at the given prices.
func (l *Ledger) PortfolioValue(prices map[market.CompanyID]market.Price) int64 {
	var total int64
	for cid, n := range l.holdings {
		total += n * int64(prices[cid])
	}
	return total
}
