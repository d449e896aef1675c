// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/consts"
	"curvevm/storage"
)

const MaxMemoSize = 256

var (
	_ codec.Typed  = (*TransferResult)(nil)
	_ chain.Action = (*Transfer)(nil)
)

type TransferResult struct {
	SenderBalance   uint64 `serialize:"true" json:"senderBalance"`
	ReceiverBalance uint64 `serialize:"true" json:"receiverBalance"`
}

func (*TransferResult) GetTypeID() uint8 {
	return consts.TransferID
}

// Transfer moves the native quote coin between accounts. The base-asset
// cost basis is untouched: basis tracks the base token only.
type Transfer struct {
	To    codec.Address `serialize:"true" json:"to"`
	Value uint64        `serialize:"true" json:"value"`
	Memo  []byte        `serialize:"true" json:"memo"`
}

// ComputeUnits implements chain.Action.
func (*Transfer) ComputeUnits(chain.Rules) uint64 {
	return TransferComputeUnits
}

// Execute implements chain.Action.
func (t *Transfer) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if t.Value == 0 {
		return nil, ErrOutputValueZero
	}
	if len(t.Memo) > MaxMemoSize {
		return nil, ErrOutputMemoTooLarge
	}
	if err := storage.SubBalance(ctx, mu, actor, t.Value); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, t.To, t.Value, true); err != nil {
		return nil, err
	}

	senderBalance, err := storage.GetBalance(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	receiverBalance, err := storage.GetBalance(ctx, mu, t.To)
	if err != nil {
		return nil, err
	}
	return &TransferResult{
		SenderBalance:   senderBalance,
		ReceiverBalance: receiverBalance,
	}, nil
}

// GetTypeID implements chain.Action.
func (*Transfer) GetTypeID() uint8 {
	return consts.TransferID
}

// StateKeys implements chain.Action.
func (t *Transfer) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.BalanceKey(actor)): state.Read | state.Write,
		string(storage.BalanceKey(t.To)):  state.All,
	}
}

// ValidRange implements chain.Action.
func (*Transfer) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
