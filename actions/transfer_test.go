// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/storage"
)

func TestTransfer(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	addr := codectest.NewRandomAddress()
	other := codectest.NewRandomAddress()

	parentState := chaintest.NewInMemoryStore()
	req.NoError(storage.SetBalance(ctx, parentState, addr, 1_000))

	tests := []chaintest.ActionTest{
		{
			Name:            "Transfer value cannot be zero",
			Action:          &Transfer{To: other, Value: 0},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputValueZero,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name: "Memo cannot be too large",
			Action: &Transfer{
				To:    other,
				Value: 1,
				Memo:  make([]byte, MaxMemoSize+1),
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputMemoTooLarge,
			State:           parentState,
			Actor:           addr,
		},
		{
			Name:            "Transfer requires sufficient balance",
			Action:          &Transfer{To: addr, Value: 1},
			ExpectedOutputs: nil,
			ExpectedErr:     storage.ErrInvalidAddress,
			State:           parentState,
			Actor:           other,
		},
		{
			Name:   "Correct transfer should work",
			Action: &Transfer{To: other, Value: 400},
			ExpectedOutputs: &TransferResult{
				SenderBalance:   600,
				ReceiverBalance: 400,
			},
			ExpectedErr: nil,
			State:       parentState,
			Actor:       addr,
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				balance, err := storage.GetBalance(ctx, m, other)
				require.NoError(err)
				require.Equal(uint64(400), balance)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
