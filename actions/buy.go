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

var (
	_ codec.Typed  = (*BuyResult)(nil)
	_ chain.Action = (*Buy)(nil)
)

type BuyResult struct {
	InAmount  uint64 `serialize:"true" json:"inAmount"`
	OutAmount uint64 `serialize:"true" json:"outAmount"`
}

func (*BuyResult) GetTypeID() uint8 {
	return consts.BuyID
}

// Buy trades [Value] of the native quote coin into the curve for base
// tokens credited to the resolved initiator.
type Buy struct {
	// First two fields are required for `StateKeys()`; Execute verifies
	// them against the stored fee config and the block timestamp.
	FeeRecipient codec.Address `serialize:"true" json:"feeRecipient"`
	BucketStart  int64         `serialize:"true" json:"bucketStart"`

	Value uint64 `serialize:"true" json:"value"`

	// Initiator is optional (codec.EmptyAddress when unset); it may only
	// be supplied by a configured operator.
	Initiator codec.Address `serialize:"true" json:"initiator"`

	// MinAmountOut of 0 disables the slippage bound.
	MinAmountOut uint64 `serialize:"true" json:"minAmountOut"`
}

// ComputeUnits implements chain.Action.
func (*Buy) ComputeUnits(chain.Rules) uint64 {
	return BuyComputeUnits
}

// Execute implements chain.Action.
func (b *Buy) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, timestamp int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	in, out, err := executeSwap(ctx, mu, actor, timestamp, true, b.Value, b.Initiator, b.MinAmountOut, b.FeeRecipient, b.BucketStart)
	if err != nil {
		return nil, err
	}
	return &BuyResult{
		InAmount:  in,
		OutAmount: out,
	}, nil
}

// GetTypeID implements chain.Action.
func (*Buy) GetTypeID() uint8 {
	return consts.BuyID
}

// StateKeys implements chain.Action.
func (b *Buy) StateKeys(actor codec.Address) state.Keys {
	return swapStateKeys(actor, b.Initiator, b.FeeRecipient, b.BucketStart, storage.Taker)
}

// ValidRange implements chain.Action.
func (*Buy) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
