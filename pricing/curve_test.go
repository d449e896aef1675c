// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"curvevm/safemath"
)

const (
	testBaseDecimals  = 9
	testQuoteDecimals = 9
)

func newTestCurve(t *testing.T, baseReserve uint64, quoteReserve uint64) *Curve {
	t.Helper()
	curve, err := NewCurve(uint256.NewInt(baseReserve), testBaseDecimals, uint256.NewInt(quoteReserve), testQuoteDecimals)
	require.NoError(t, err)
	return curve
}

func TestNewCurve(t *testing.T) {
	require := require.New(t)

	curve := newTestCurve(t, 1_000_000, 1_000)
	require.Equal(uint256.NewInt(1_000_000_000), curve.K)
	require.Equal(uint256.NewInt(1_000_000), curve.BaseReserve)
	require.Equal(uint256.NewInt(1_000), curve.QuoteReserve)
}

func TestBuy(t *testing.T) {
	require := require.New(t)

	curve := newTestCurve(t, 1_000_000, 1_000)

	out, err := curve.Buy(uint256.NewInt(100), nil)
	require.NoError(err)
	require.Equal(uint256.NewInt(90_910), out)
	require.Equal(uint256.NewInt(909_090), curve.BaseReserve)
	require.Equal(uint256.NewInt(1_100), curve.QuoteReserve)

	// Truncating the new base reserve leaves the product at or below k,
	// short by less than one quote reserve's worth
	product := new(uint256.Int).Mul(curve.BaseReserve, curve.QuoteReserve)
	require.True(product.Cmp(curve.K) <= 0)
	gap := new(uint256.Int).Sub(curve.K, product)
	require.True(gap.Lt(curve.QuoteReserve))
}

func TestSellMirrorsBuy(t *testing.T) {
	require := require.New(t)

	curve := newTestCurve(t, 1_000_000, 1_000)

	bought, err := curve.Buy(uint256.NewInt(100), nil)
	require.NoError(err)

	out, err := curve.Sell(bought, nil)
	require.NoError(err)
	require.Equal(uint256.NewInt(100), out)
	require.Equal(uint256.NewInt(1_000_000), curve.BaseReserve)
	require.Equal(uint256.NewInt(1_000), curve.QuoteReserve)
}

func TestBuySlippage(t *testing.T) {
	require := require.New(t)

	curve := newTestCurve(t, 1_000_000, 1_000)

	_, err := curve.Buy(uint256.NewInt(100), uint256.NewInt(90_911))
	require.ErrorIs(err, ErrTooMuchSlippage)

	// The reserves were already updated; the caller must discard them
	require.Equal(uint256.NewInt(909_090), curve.BaseReserve)
	require.Equal(uint256.NewInt(1_100), curve.QuoteReserve)
}

func TestSellSlippage(t *testing.T) {
	require := require.New(t)

	curve := newTestCurve(t, 1_000_000, 1_000)

	_, err := curve.Sell(uint256.NewInt(1_000_000), uint256.NewInt(501))
	require.ErrorIs(err, ErrTooMuchSlippage)
}

func TestBuyOverflow(t *testing.T) {
	require := require.New(t)

	max128 := new(uint256.Int).Sub(
		new(uint256.Int).Lsh(uint256.NewInt(1), safemath.MaxUint128BitLen),
		uint256.NewInt(1),
	)
	curve, err := NewCurve(uint256.NewInt(1), testBaseDecimals, max128, testQuoteDecimals)
	require.NoError(err)

	_, err = curve.Buy(uint256.NewInt(1), nil)
	require.ErrorIs(err, safemath.ErrOverflow)
}

func TestQuotePrice(t *testing.T) {
	require := require.New(t)

	curve := newTestCurve(t, 1_000_000, 1_000)

	// 1,000 * 10^9 / 1,000,000
	price, err := curve.QuotePrice()
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000_000), price)
}

func TestQuotePriceZeroReserve(t *testing.T) {
	require := require.New(t)

	curve := &Curve{
		K:             new(uint256.Int),
		BaseReserve:   new(uint256.Int),
		QuoteReserve:  uint256.NewInt(1_000),
		BaseDecimals:  testBaseDecimals,
		QuoteDecimals: testQuoteDecimals,
	}
	_, err := curve.QuotePrice()
	require.ErrorIs(err, ErrReservesZero)
}

func TestConversions(t *testing.T) {
	require := require.New(t)

	curve := newTestCurve(t, 1_000_000, 1_000)

	// base price = 1,000,000 * 10^9 / 1,000 = 10^12
	base, err := curve.ToBaseAmount(uint256.NewInt(5_000))
	require.NoError(err)
	require.Equal(uint256.NewInt(5), base)

	quote, err := curve.ToQuoteAmount(uint256.NewInt(5))
	require.NoError(err)
	require.Equal(uint256.NewInt(5_000), quote)
}
