// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
)

const testQuoteDecimals = 9

func TestDebitCostBasisProportional(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	addr := codectest.NewRandomAddress()

	stats := NewAccountStats()
	stats.TotalCost = uint256.NewInt(1_000)
	require.NoError(SetAccountStats(ctx, store, addr, stats))

	// Sending a quarter of the balance removes a quarter of the cost
	require.NoError(DebitCostBasis(ctx, store, addr, uint256.NewInt(25), uint256.NewInt(100), testQuoteDecimals))

	stats, err := GetAccountStatsNoController(ctx, store, addr)
	require.NoError(err)
	require.Equal(uint256.NewInt(750), stats.TotalCost)
}

func TestDebitCostBasisFullWithdrawalZeroes(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	addr := codectest.NewRandomAddress()

	// A cost that does not divide evenly would leave rounding dust
	stats := NewAccountStats()
	stats.TotalCost = uint256.NewInt(1_001)
	require.NoError(SetAccountStats(ctx, store, addr, stats))

	require.NoError(DebitCostBasis(ctx, store, addr, uint256.NewInt(3), uint256.NewInt(3), testQuoteDecimals))

	stats, err := GetAccountStatsNoController(ctx, store, addr)
	require.NoError(err)
	require.True(stats.TotalCost.IsZero())
}

func TestDebitCostBasisZeroDeltaIsNoop(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	addr := codectest.NewRandomAddress()

	require.NoError(DebitCostBasis(ctx, store, addr, new(uint256.Int), uint256.NewInt(100), testQuoteDecimals))

	stats, err := GetAccountStatsNoController(ctx, store, addr)
	require.NoError(err)
	require.True(stats.TotalCost.IsZero())
}

func TestCreditCostBasis(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	addr := codectest.NewRandomAddress()

	require.NoError(CreditCostBasis(ctx, store, addr, uint256.NewInt(40)))
	require.NoError(CreditCostBasis(ctx, store, addr, uint256.NewInt(2)))

	stats, err := GetAccountStatsNoController(ctx, store, addr)
	require.NoError(err)
	require.Equal(uint256.NewInt(42), stats.TotalCost)
}
