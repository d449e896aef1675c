// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pricing implements the constant-product bonding curve. The curve
// holds a 256-bit constant k and two 128-bit reserves; buys and sells move
// amounts between the reserves so that their product stays at k, with
// integer truncation always in the pool's favor.
package pricing

import (
	"github.com/holiman/uint256"

	"curvevm/safemath"
)

type Curve struct {
	K             *uint256.Int
	BaseReserve   *uint256.Int
	BaseDecimals  uint8
	QuoteReserve  *uint256.Int
	QuoteDecimals uint8
}

// NewCurve seeds a curve with k = baseReserve * quoteReserve. The quote
// reserve is expected to include the virtual offset.
func NewCurve(baseReserve *uint256.Int, baseDecimals uint8, quoteReserve *uint256.Int, quoteDecimals uint8) (*Curve, error) {
	k, err := safemath.Mul256(baseReserve, quoteReserve)
	if err != nil {
		return nil, err
	}
	return &Curve{
		K:             k,
		BaseReserve:   baseReserve,
		BaseDecimals:  baseDecimals,
		QuoteReserve:  quoteReserve,
		QuoteDecimals: quoteDecimals,
	}, nil
}

// Buy trades inAmount of quote into the curve and returns the base amount
// out. Reserves are updated before the slippage bound is checked, so a
// slippage failure must discard the whole surrounding operation. A nil
// minAmountOut disables the bound.
func (c *Curve) Buy(inAmount *uint256.Int, minAmountOut *uint256.Int) (*uint256.Int, error) {
	newQuoteReserve, err := safemath.Add(c.QuoteReserve, inAmount)
	if err != nil {
		return nil, err
	}
	newBaseReserve, err := safemath.Div(c.K, newQuoteReserve)
	if err != nil {
		return nil, err
	}
	outAmount, err := safemath.Sub(c.BaseReserve, newBaseReserve)
	if err != nil {
		return nil, err
	}

	c.BaseReserve = newBaseReserve
	c.QuoteReserve = newQuoteReserve

	if minAmountOut != nil && outAmount.Lt(minAmountOut) {
		return nil, ErrTooMuchSlippage
	}
	return outAmount, nil
}

// Sell is the mirror of Buy: inAmount of base in, quote amount out.
func (c *Curve) Sell(inAmount *uint256.Int, minAmountOut *uint256.Int) (*uint256.Int, error) {
	newBaseReserve, err := safemath.Add(c.BaseReserve, inAmount)
	if err != nil {
		return nil, err
	}
	newQuoteReserve, err := safemath.Div(c.K, newBaseReserve)
	if err != nil {
		return nil, err
	}
	outAmount, err := safemath.Sub(c.QuoteReserve, newQuoteReserve)
	if err != nil {
		return nil, err
	}

	c.BaseReserve = newBaseReserve
	c.QuoteReserve = newQuoteReserve

	if minAmountOut != nil && outAmount.Lt(minAmountOut) {
		return nil, ErrTooMuchSlippage
	}
	return outAmount, nil
}

// QuotePrice returns the price of BASE expressed in QUOTE.
func (c *Curve) QuotePrice() (*uint256.Int, error) {
	if c.BaseReserve.IsZero() {
		return nil, ErrReservesZero
	}
	return safemath.MulRatio(c.QuoteReserve, safemath.Pow10(c.QuoteDecimals), c.BaseReserve)
}

// BasePrice returns the price of QUOTE expressed in BASE.
func (c *Curve) BasePrice() (*uint256.Int, error) {
	if c.QuoteReserve.IsZero() {
		return nil, ErrReservesZero
	}
	return safemath.MulRatio(c.BaseReserve, safemath.Pow10(c.QuoteDecimals), c.QuoteReserve)
}

// ToBaseAmount converts a quote amount to base units at the current price.
func (c *Curve) ToBaseAmount(quoteAmount *uint256.Int) (*uint256.Int, error) {
	basePrice, err := c.BasePrice()
	if err != nil {
		return nil, err
	}
	return safemath.MulRatio(quoteAmount, safemath.Pow10(c.QuoteDecimals), basePrice)
}

// ToQuoteAmount converts a base amount to quote units at the current price.
func (c *Curve) ToQuoteAmount(baseAmount *uint256.Int) (*uint256.Int, error) {
	quotePrice, err := c.QuotePrice()
	if err != nil {
		return nil, err
	}
	return safemath.MulRatio(baseAmount, safemath.Pow10(c.BaseDecimals), quotePrice)
}
