package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/zappabad/stockgame/internal/engine"
	"github.com/zappabad/stockgame/internal/game/view"
	"github.com/zappabad/stockgame/internal/history"
	"github.com/zappabad/stockgame/internal/ledger"
	"github.com/zappabad/stockgame/internal/market"
	"github.com/zappabad/stockgame/internal/tradelog"
)

var (
	// ErrNotCreated is returned when a command runs before Create.
	ErrNotCreated = errors.New("session not created")
	// ErrUnknownTradeKind is returned for a trade that is neither buy nor sell.
	ErrUnknownTradeKind = errors.New("unknown trade kind")
)

// Session owns the game subsystems and manages their lifecycle. It is
// the single writer: every command and snapshot runs under one mutex, so
// a trade always sees a fully formed post-tick market and always
// executes at the engine's price in effect at that moment.
//
// A Session starts uninitialized; Create moves it to active for the
// rest of the process's life. There is no shutdown state.
type Session struct {
	cfg     Config
	listing []market.Company

	mu      sync.Mutex
	created bool
	engine  *engine.Engine
	ledger  *ledger.Ledger
	assets  *history.Buffer[int64]
	log     *tradelog.Log
}

// New creates an uninitialized Session with the given configuration.
func New(cfg Config) *Session {
	if cfg.StartingCash <= 0 {
		cfg.StartingCash = DefaultConfig().StartingCash
	}
	if cfg.InitialPriceMin <= 0 {
		cfg.InitialPriceMin = DefaultConfig().InitialPriceMin
	}
	if cfg.InitialPriceMax <= 0 {
		cfg.InitialPriceMax = DefaultConfig().InitialPriceMax
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultConfig().HistoryLimit
	}
	if cfg.TradeLogLimit == 0 {
		cfg.TradeLogLimit = DefaultConfig().TradeLogLimit
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultConfig().RefreshInterval
	}

	return &Session{
		cfg:     cfg,
		listing: cfg.listing(),
	}
}

// Create transitions the session to active: it seeds market prices,
// zeroes the portfolio, sets the starting cash, and opens the asset
// history and trade log. Calling Create on an active session is a no-op;
// in particular it never re-randomizes prices.
func (s *Session) Create() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.created {
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s.engine = engine.New(s.listing, engine.Config{
		HistoryLimit:    s.cfg.HistoryLimit,
		InitialPriceMin: market.Price(s.cfg.InitialPriceMin),
		InitialPriceMax: market.Price(s.cfg.InitialPriceMax),
	}, rng)

	s.ledger = ledger.New(s.listing, s.cfg.StartingCash)

	s.assets = history.New[int64](s.cfg.HistoryLimit)
	s.assets.Append(s.cfg.StartingCash)

	logCap := s.cfg.TradeLogLimit
	if logCap < 0 {
		logCap = 0 // unbounded
	}
	s.log = tradelog.New(logCap)
	s.log.Append(tradelog.Entry{Text: "game started"})

	s.created = true
}

// Created reports whether Create has run.
func (s *Session) Created() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Listing returns the companies in listing order.
// Returns a copy (not internal references).
func (s *Session) Listing() []market.Company {
	return append([]market.Company(nil), s.listing...)
}

// Tick advances the market one step and records the new total assets.
// It cannot fail on an active session.
func (s *Session) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.created {
		return ErrNotCreated
	}

	s.engine.Tick()

	total := s.ledger.Cash() + s.ledger.PortfolioValue(s.engine.Prices())
	if s.cfg.SuppressFlatAssetHistory {
		if last := s.assets.Last(1); len(last) == 1 && last[0] == total {
			return nil
		}
	}
	s.assets.Append(total)
	return nil
}

// Trade executes a buy or sell for the player at the engine's current
// price. Ledger errors pass through unchanged; a failed trade leaves all
// state untouched.
func (s *Session) Trade(kind ledger.Kind, cid market.CompanyID, quantity int64) (view.TradeReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.created {
		return view.TradeReceipt{}, ErrNotCreated
	}

	price, ok := s.engine.Price(cid)
	if !ok {
		return view.TradeReceipt{}, ledger.ErrUnknownCompany
	}

	var (
		trade ledger.Trade
		err   error
	)
	switch kind {
	case ledger.KindBuy:
		trade, err = s.ledger.Buy(cid, quantity, price)
	case ledger.KindSell:
		trade, err = s.ledger.Sell(cid, quantity, price)
	default:
		err = ErrUnknownTradeKind
	}
	if err != nil {
		return view.TradeReceipt{}, err
	}

	s.log.Append(tradelog.Entry{Text: trade.String()})

	return view.TradeReceipt{
		Kind:     trade.Kind.String(),
		Company:  trade.Company,
		Quantity: trade.Quantity,
		Amount:   trade.Amount,
		Cash:     s.ledger.Cash(),
	}, nil
}

// Snapshot builds the full read model. Rendering is a projection of a
// snapshot; it never advances the simulation.
func (s *Session) Snapshot() (view.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.created {
		return view.Snapshot{}, ErrNotCreated
	}

	prices := s.engine.Prices()
	prevPrices := s.engine.PrevPrices()

	snap := view.Snapshot{
		Cash:           s.ledger.Cash(),
		PortfolioValue: s.ledger.PortfolioValue(prices),
		Companies:      make([]view.CompanyQuote, 0, len(s.listing)),
		AssetHistory:   s.assets.Snapshot(),
	}
	snap.TotalAssets = snap.Cash + snap.PortfolioValue

	for _, c := range s.listing {
		cid := c.CompanyID()
		price := prices[cid]
		prev := prevPrices[cid]

		snap.Companies = append(snap.Companies, view.CompanyQuote{
			ID:      cid,
			Name:    c.Name,
			Price:   price,
			Delta:   int64(price - prev),
			History: s.engine.History(cid),
		})

		if shares, _ := s.ledger.Shares(cid); shares > 0 {
			snap.Holdings = append(snap.Holdings, view.Holding{
				ID:     cid,
				Name:   c.Name,
				Shares: shares,
				Price:  price,
				Value:  shares * int64(price),
			})
		}
	}

	entries := s.log.Snapshot()
	snap.TradeLog = make([]string, 0, len(entries))
	for _, e := range entries {
		snap.TradeLog = append(snap.TradeLog, e.Text)
	}

	return snap, nil
}
