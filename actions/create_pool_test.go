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

	"curvevm/consts"
	"curvevm/storage"
)

func TestCreatePool(t *testing.T) {
	addr := codectest.NewRandomAddress()
	feeRecipient := codectest.NewRandomAddress()

	parentState := chaintest.NewInMemoryStore()

	tests := []chaintest.ActionTest{
		{
			Name: "Token name cannot be empty",
			Action: &CreatePool{
				Name:                []byte{},
				Symbol:              []byte(TokenSymbol),
				Metadata:            []byte(TokenMetadata),
				BaseReserve:         InitialBaseReserve,
				VirtualQuoteReserve: InitialVirtualQuoteReserve,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenNameEmpty,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Token name cannot be too large",
			Action: &CreatePool{
				Name:                []byte(TooLargeTokenName),
				Symbol:              []byte(TokenSymbol),
				Metadata:            []byte(TokenMetadata),
				BaseReserve:         InitialBaseReserve,
				VirtualQuoteReserve: InitialVirtualQuoteReserve,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenNameTooLarge,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Token symbol cannot be too large",
			Action: &CreatePool{
				Name:                []byte(TokenName),
				Symbol:              []byte(TooLargeTokenSymbol),
				Metadata:            []byte(TokenMetadata),
				BaseReserve:         InitialBaseReserve,
				VirtualQuoteReserve: InitialVirtualQuoteReserve,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenSymbolTooLarge,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Token metadata cannot be too large",
			Action: &CreatePool{
				Name:                []byte(TokenName),
				Symbol:              []byte(TokenSymbol),
				Metadata:            []byte(TooLargeTokenMetadata),
				BaseReserve:         InitialBaseReserve,
				VirtualQuoteReserve: InitialVirtualQuoteReserve,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenMetadataTooLarge,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Reserves cannot be zero",
			Action: &CreatePool{
				Name:                []byte(TokenName),
				Symbol:              []byte(TokenSymbol),
				Metadata:            []byte(TokenMetadata),
				Decimals:            TokenDecimals,
				BaseReserve:         0,
				VirtualQuoteReserve: InitialVirtualQuoteReserve,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputValueZero,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name:   "Correct pool creation should work",
			Action: defaultCreatePool(feeRecipient, codec.EmptyAddress, 0, 0),
			ExpectedOutputs: &CreatePoolResult{
				PoolAddress:      consts.PoolAddress,
				BaseTokenAddress: consts.BaseTokenAddress,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				curve, err := storage.GetCurveNoController(ctx, m)
				require.NoError(err)
				require.Equal(uint256.NewInt(InitialBaseReserve), curve.BaseReserve)
				require.Equal(uint256.NewInt(InitialVirtualQuoteReserve), curve.QuoteReserve)
				require.Equal(uint256.NewInt(InitialBaseReserve*InitialVirtualQuoteReserve), curve.K)
				poolBalance, err := storage.GetTokenBalanceNoController(ctx, m, consts.PoolAddress)
				require.NoError(err)
				require.Equal(uint256.NewInt(InitialBaseReserve), poolBalance)
				_, _, _, _, totalSupply, owner, err := storage.GetTokenInfoNoController(ctx, m)
				require.NoError(err)
				require.Equal(uint256.NewInt(InitialBaseReserve), totalSupply)
				require.Equal(addr, owner)
				_, hasOperator, err := storage.GetOperator(ctx, m)
				require.NoError(err)
				require.False(hasOperator)
			},
		},
		{
			Name:            "Pool cannot be created twice",
			Action:          defaultCreatePool(feeRecipient, codec.EmptyAddress, 0, 0),
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputPoolAlreadyExists,
			State:           parentState,
			Actor:           addr,
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestCreatePoolClampsFees(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	addr := codectest.NewRandomAddress()
	feeRecipient := codectest.NewRandomAddress()
	parentState := chaintest.NewInMemoryStore()

	action := defaultCreatePool(feeRecipient, codec.EmptyAddress, 2_000_000, 1_500_000)
	_, err := action.Execute(ctx, nil, parentState, 0, addr, ids.Empty)
	req.NoError(err)

	buyFeePPM, sellFeePPM, recipient, err := storage.GetFeeConfigNoController(ctx, parentState)
	req.NoError(err)
	req.Equal(uint64(1_000_000), buyFeePPM)
	req.Equal(uint64(1_000_000), sellFeePPM)
	req.Equal(feeRecipient, recipient)
}
