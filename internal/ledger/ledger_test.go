package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/stockgame/internal/market"
)

func testListing() []market.Company {
	return market.DefaultListing()
}

func TestBuy(t *testing.T) {
	l := New(testListing(), 100_000)
	cid := testListing()[0].CompanyID()

	trade, err := l.Buy(cid, 10, 5_000)
	require.NoError(t, err)

	assert.Equal(t, int64(50_000), l.Cash())
	shares, ok := l.Shares(cid)
	require.True(t, ok)
	assert.Equal(t, int64(10), shares)

	assert.Equal(t, KindBuy, trade.Kind)
	assert.Equal(t, "Gemini AI", trade.Company)
	assert.Equal(t, int64(50_000), trade.Amount)
	assert.Equal(t, "BUY Gemini AI 10 @ 50000", trade.String())

	// Other companies are untouched.
	for _, c := range testListing()[1:] {
		n, _ := l.Shares(c.CompanyID())
		assert.Zero(t, n, c.Name)
	}
}

func TestSell(t *testing.T) {
	l := New(testListing(), 100_000)
	cid := testListing()[2].CompanyID()

	_, err := l.Buy(cid, 10, 5_000)
	require.NoError(t, err)

	trade, err := l.Sell(cid, 4, 6_000)
	require.NoError(t, err)

	assert.Equal(t, int64(74_000), l.Cash())
	shares, _ := l.Shares(cid)
	assert.Equal(t, int64(6), shares)
	assert.Equal(t, "SELL Data World 4 @ 24000", trade.String())
}

func TestBuyInsufficientFunds(t *testing.T) {
	l := New(testListing(), 100_000)
	cid := testListing()[0].CompanyID()

	before := l.Holdings()

	_, err := l.Buy(cid, 21, 5_000) // cost 105_000
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.Equal(t, int64(100_000), l.Cash())
	assert.Equal(t, before, l.Holdings())
}

func TestSellInsufficientShares(t *testing.T) {
	l := New(testListing(), 100_000)
	cid := testListing()[0].CompanyID()

	_, err := l.Buy(cid, 10, 5_000)
	require.NoError(t, err)

	_, err = l.Sell(cid, 15, 5_000)
	assert.ErrorIs(t, err, ErrInsufficientShares)

	assert.Equal(t, int64(50_000), l.Cash())
	shares, _ := l.Shares(cid)
	assert.Equal(t, int64(10), shares)
}

func TestInvalidQuantity(t *testing.T) {
	l := New(testListing(), 100_000)
	cid := testListing()[0].CompanyID()

	for _, qty := range []int64{0, -1, -100} {
		_, err := l.Buy(cid, qty, 5_000)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "buy qty %d", qty)

		_, err = l.Sell(cid, qty, 5_000)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "sell qty %d", qty)
	}

	assert.Equal(t, int64(100_000), l.Cash())
}

func TestUnknownCompany(t *testing.T) {
	l := New(testListing(), 100_000)

	_, err := l.Buy(999, 1, 5_000)
	assert.ErrorIs(t, err, ErrUnknownCompany)

	_, err = l.Sell(999, 1, 5_000)
	assert.ErrorIs(t, err, ErrUnknownCompany)

	assert.Equal(t, int64(100_000), l.Cash())
}

func TestCashAndSharesNeverNegative(t *testing.T) {
	l := New(testListing(), 10_000)
	cid := testListing()[0].CompanyID()

	// Exhaust cash, then try to overdraw and oversell repeatedly.
	_, err := l.Buy(cid, 2, 5_000)
	require.NoError(t, err)
	assert.Zero(t, l.Cash())

	_, err = l.Buy(cid, 1, 5_000)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = l.Sell(cid, 3, 5_000)
	assert.ErrorIs(t, err, ErrInsufficientShares)

	assert.GreaterOrEqual(t, l.Cash(), int64(0))
	for cid, n := range l.Holdings() {
		assert.GreaterOrEqual(t, n, int64(0), "company %d", cid)
	}
}

func TestBuyCostOverflowRejected(t *testing.T) {
	l := New(testListing(), 100_000)
	cid := testListing()[0].CompanyID()

	// quantity*price wraps int64; the wrapped cost would pass the cash
	// check and mint shares for free.
	_, err := l.Buy(cid, 1<<62, 1_000_000)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.Equal(t, int64(100_000), l.Cash())
	shares, _ := l.Shares(cid)
	assert.Zero(t, shares)
}

func TestSellRevenueOverflowRejected(t *testing.T) {
	l := New(testListing(), math.MaxInt64)
	cid := testListing()[0].CompanyID()

	// Legally acquire a huge position at the floor price.
	qty := int64(math.MaxInt64 / 100)
	_, err := l.Buy(cid, qty, 100)
	require.NoError(t, err)
	cash := l.Cash()

	// quantity*price wraps int64 on the revenue side.
	_, err = l.Sell(cid, qty, 1_000_000)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.Equal(t, cash, l.Cash())
	shares, _ := l.Shares(cid)
	assert.Equal(t, qty, shares)
}

func TestSellCashOverflowRejected(t *testing.T) {
	l := New(testListing(), math.MaxInt64)
	cid := testListing()[0].CompanyID()

	_, err := l.Buy(cid, 1_000_000_000_000_000, 100)
	require.NoError(t, err)
	cash := l.Cash()

	// revenue itself fits int64 but cash+revenue would wrap.
	_, err = l.Sell(cid, 1_000_000_000_000_000, 9_000)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	assert.Equal(t, cash, l.Cash())
	shares, _ := l.Shares(cid)
	assert.Equal(t, int64(1_000_000_000_000_000), shares)
}

func TestPortfolioValue(t *testing.T) {
	listing := testListing()
	l := New(listing, 1_000_000)

	_, err := l.Buy(listing[0].CompanyID(), 10, 5_000)
	require.NoError(t, err)
	_, err = l.Buy(listing[1].CompanyID(), 3, 2_000)
	require.NoError(t, err)

	prices := map[market.CompanyID]market.Price{
		listing[0].CompanyID(): 6_000,
		listing[1].CompanyID(): 1_000,
	}

	assert.Equal(t, int64(10*6_000+3*1_000), l.PortfolioValue(prices))
}
