// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package safemath

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func maxUint128() *uint256.Int {
	return new(uint256.Int).Sub(
		new(uint256.Int).Lsh(uint256.NewInt(1), MaxUint128BitLen),
		uint256.NewInt(1),
	)
}

func TestAdd(t *testing.T) {
	require := require.New(t)

	sum, err := Add(uint256.NewInt(1), uint256.NewInt(2))
	require.NoError(err)
	require.Equal(uint256.NewInt(3), sum)

	_, err = Add(maxUint128(), uint256.NewInt(1))
	require.ErrorIs(err, ErrOverflow)
}

func TestSub(t *testing.T) {
	require := require.New(t)

	diff, err := Sub(uint256.NewInt(3), uint256.NewInt(2))
	require.NoError(err)
	require.Equal(uint256.NewInt(1), diff)

	_, err = Sub(uint256.NewInt(2), uint256.NewInt(3))
	require.ErrorIs(err, ErrUnderflow)
}

func TestMul256(t *testing.T) {
	require := require.New(t)

	// The full product of two maximal amounts uses all 256 bits
	product, err := Mul256(maxUint128(), maxUint128())
	require.NoError(err)
	require.Equal(256, product.BitLen())

	over := new(uint256.Int).Add(maxUint128(), uint256.NewInt(1))
	_, err = Mul256(over, uint256.NewInt(1))
	require.ErrorIs(err, ErrOverflow)
}

func TestDiv(t *testing.T) {
	require := require.New(t)

	// Truncates toward zero
	q, err := Div(uint256.NewInt(7), uint256.NewInt(2))
	require.NoError(err)
	require.Equal(uint256.NewInt(3), q)

	_, err = Div(uint256.NewInt(1), new(uint256.Int))
	require.ErrorIs(err, ErrDivisionByZero)

	// A 256-bit numerator over a tiny denominator does not fit an amount
	big, err := Mul256(maxUint128(), maxUint128())
	require.NoError(err)
	_, err = Div(big, uint256.NewInt(1))
	require.ErrorIs(err, ErrOverflow)
}

func TestMulRatio(t *testing.T) {
	require := require.New(t)

	// The intermediate product exceeds 128 bits without overflowing
	v, err := MulRatio(maxUint128(), uint256.NewInt(1_000), uint256.NewInt(2_000))
	require.NoError(err)
	require.Equal(new(uint256.Int).Rsh(maxUint128(), 1), v)
}

func TestMulPPM(t *testing.T) {
	require := require.New(t)

	fee, err := MulPPM(uint256.NewInt(1_000), 100_000)
	require.NoError(err)
	require.Equal(uint256.NewInt(100), fee)

	// Floors the scaled product
	fee, err = MulPPM(uint256.NewInt(9), 100_000)
	require.NoError(err)
	require.True(fee.IsZero())

	// 100% fee consumes the whole amount
	fee, err = MulPPM(uint256.NewInt(1_000), FeeScale)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), fee)
}

func TestPow10(t *testing.T) {
	require := require.New(t)

	require.Equal(uint256.NewInt(1), Pow10(0))
	require.Equal(uint256.NewInt(1_000_000_000), Pow10(9))
}

func TestToUint64(t *testing.T) {
	require := require.New(t)

	v, err := ToUint64(uint256.NewInt(42))
	require.NoError(err)
	require.Equal(uint64(42), v)

	_, err = ToUint64(maxUint128())
	require.ErrorIs(err, ErrOverflow)
}
