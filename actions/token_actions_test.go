// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/storage"
)

func TestTransferToken(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	addr := codectest.NewRandomAddress()
	other := codectest.NewRandomAddress()
	feeRecipient := codectest.NewRandomAddress()

	parentState := newPoolState(t, addr, feeRecipient, codec.EmptyAddress, 0, 0, InitialFunding)

	// Give the sender base tokens with an established cost basis
	_, err := (&Buy{Value: InitialSwapValue, FeeRecipient: feeRecipient}).Execute(ctx, nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name:            "Transfer value cannot be zero",
			Action:          &TransferToken{To: other, Value: 0},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputValueZero,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name:            "Token must exist",
			Action:          &TransferToken{To: other, Value: 1},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenDoesNotExist,
			State:           chaintest.NewInMemoryStore(),
			Actor:           addr,
		},
		{
			Name:            "Transfer requires sufficient balance",
			Action:          &TransferToken{To: addr, Value: 1},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInsufficientTokenBalance,
			State:           parentState,
			Actor:           other,
		},
		{
			Name:   "Partial transfer moves cost proportionally",
			Action: &TransferToken{To: other, Value: 45_455},
			ExpectedOutputs: &TransferTokenResult{
				SenderBalance:   45_455,
				ReceiverBalance: 45_455,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				senderStats, err := storage.GetAccountStatsNoController(ctx, m, addr)
				require.NoError(err)
				require.Equal(uint256.NewInt(45_455), senderStats.TotalCost)
				receiverStats, err := storage.GetAccountStatsNoController(ctx, m, other)
				require.NoError(err)
				require.Equal(uint256.NewInt(45_455), receiverStats.TotalCost)
			},
		},
		{
			Name:   "Full transfer zeroes the cost basis exactly",
			Action: &TransferToken{To: other, Value: 45_455},
			ExpectedOutputs: &TransferTokenResult{
				SenderBalance:   0,
				ReceiverBalance: 90_910,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				senderStats, err := storage.GetAccountStatsNoController(ctx, m, addr)
				require.NoError(err)
				require.True(senderStats.TotalCost.IsZero())
				receiverStats, err := storage.GetAccountStatsNoController(ctx, m, other)
				require.NoError(err)
				require.Equal(uint256.NewInt(90_910), receiverStats.TotalCost)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestMintToken(t *testing.T) {
	owner := codectest.NewRandomAddress()
	other := codectest.NewRandomAddress()
	feeRecipient := codectest.NewRandomAddress()

	parentState := newPoolState(t, owner, feeRecipient, codec.EmptyAddress, 0, 0, InitialFunding)

	tests := []chaintest.ActionTest{
		{
			Name:            "Mint value cannot be zero",
			Action:          &MintToken{To: other, Value: 0},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputValueZero,
			State:           parentState,
			Actor:           owner,
		},
		{
			Name:            "Only the token owner may mint",
			Action:          &MintToken{To: other, Value: 1},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenNotOwner,
			State:           parentState,
			Actor:           other,
		},
		{
			Name:   "Correct mint should work",
			Action: &MintToken{To: other, Value: 1_000},
			ExpectedOutputs: &MintTokenResult{
				Balance:     1_000,
				TotalSupply: InitialBaseReserve + 1_000,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       owner,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				stats, err := storage.GetAccountStatsNoController(ctx, m, other)
				require.NoError(err)
				require.Equal(uint256.NewInt(1_000), stats.TotalCost)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestBurnToken(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	addr := codectest.NewRandomAddress()
	feeRecipient := codectest.NewRandomAddress()

	parentState := newPoolState(t, addr, feeRecipient, codec.EmptyAddress, 0, 0, InitialFunding)

	_, err := (&Buy{Value: InitialSwapValue, FeeRecipient: feeRecipient}).Execute(ctx, nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name:            "Burn value cannot be zero",
			Action:          &BurnToken{Value: 0},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputValueZero,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name:            "Burn requires sufficient balance",
			Action:          &BurnToken{Value: 90_911},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputInsufficientTokenBalance,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name:   "Correct burn should work",
			Action: &BurnToken{Value: 90_910},
			ExpectedOutputs: &BurnTokenResult{
				Balance:     0,
				TotalSupply: InitialBaseReserve - 90_910,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				stats, err := storage.GetAccountStatsNoController(ctx, m, addr)
				require.NoError(err)
				require.True(stats.TotalCost.IsZero())
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
