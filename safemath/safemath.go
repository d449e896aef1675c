// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package safemath provides checked arithmetic over 128-bit amounts and
// 256-bit products. Amounts are represented as uint256.Int values capped at
// 2^128; any operation whose result would not fit returns an error rather
// than wrapping.
package safemath

import "github.com/holiman/uint256"

// MaxUint128BitLen bounds every amount handled by the curve and the
// bookkeeping state. Only k, a full product of two amounts, may exceed it.
const MaxUint128BitLen = 128

// FeeScale is the denominator of parts-per-million fee fractions.
const FeeScale = 1_000_000

func fitsUint128(v *uint256.Int) bool {
	return v.BitLen() <= MaxUint128BitLen
}

// Add returns a + b, failing if the sum exceeds 128 bits.
func Add(a *uint256.Int, b *uint256.Int) (*uint256.Int, error) {
	sum, carry := new(uint256.Int).AddOverflow(a, b)
	if carry || !fitsUint128(sum) {
		return nil, ErrOverflow
	}
	return sum, nil
}

// Sub returns a - b, failing if b > a.
func Sub(a *uint256.Int, b *uint256.Int) (*uint256.Int, error) {
	diff, borrow := new(uint256.Int).SubOverflow(a, b)
	if borrow {
		return nil, ErrUnderflow
	}
	return diff, nil
}

// Mul256 returns the full-width product of two 128-bit amounts. The result
// may use all 256 bits and is only valid as a k value or division operand.
func Mul256(a *uint256.Int, b *uint256.Int) (*uint256.Int, error) {
	if !fitsUint128(a) || !fitsUint128(b) {
		return nil, ErrOverflow
	}
	return new(uint256.Int).Mul(a, b), nil
}

// Div returns num / denom truncated toward zero, failing if denom is zero
// or the quotient exceeds 128 bits.
func Div(num *uint256.Int, denom *uint256.Int) (*uint256.Int, error) {
	if denom.IsZero() {
		return nil, ErrDivisionByZero
	}
	q := new(uint256.Int).Div(num, denom)
	if !fitsUint128(q) {
		return nil, ErrOverflow
	}
	return q, nil
}

// MulRatio returns a * num / denom with a 256-bit intermediate product, the
// building block for price and cost-basis conversions.
func MulRatio(a *uint256.Int, num *uint256.Int, denom *uint256.Int) (*uint256.Int, error) {
	product, err := Mul256(a, num)
	if err != nil {
		return nil, err
	}
	return Div(product, denom)
}

// MulPPM returns floor(amount * ppm / FeeScale), the fee taken from an
// amount at a parts-per-million fraction.
func MulPPM(amount *uint256.Int, ppm uint64) (*uint256.Int, error) {
	return MulRatio(amount, uint256.NewInt(ppm), uint256.NewInt(FeeScale))
}

// Pow10 returns 10^d. Decimal counts are at most 38 for 128-bit amounts,
// well inside 256 bits.
func Pow10(d uint8) *uint256.Int {
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(d)))
}

// ToUint64 narrows an amount for wire encoding, failing if it no longer
// fits the transport representation.
func ToUint64(v *uint256.Int) (uint64, error) {
	u, overflow := v.Uint64WithOverflow()
	if overflow {
		return 0, ErrOverflow
	}
	return u, nil
}
