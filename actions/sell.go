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
	_ codec.Typed  = (*SellResult)(nil)
	_ chain.Action = (*Sell)(nil)
)

type SellResult struct {
	InAmount  uint64 `serialize:"true" json:"inAmount"`
	OutAmount uint64 `serialize:"true" json:"outAmount"`
}

func (*SellResult) GetTypeID() uint8 {
	return consts.SellID
}

// Sell trades [Value] base tokens from the resolved initiator into the
// curve for the native quote coin, net of the sell-side fee.
type Sell struct {
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
func (*Sell) ComputeUnits(chain.Rules) uint64 {
	return SellComputeUnits
}

// Execute implements chain.Action.
func (s *Sell) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, timestamp int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	in, out, err := executeSwap(ctx, mu, actor, timestamp, false, s.Value, s.Initiator, s.MinAmountOut, s.FeeRecipient, s.BucketStart)
	if err != nil {
		return nil, err
	}
	return &SellResult{
		InAmount:  in,
		OutAmount: out,
	}, nil
}

// GetTypeID implements chain.Action.
func (*Sell) GetTypeID() uint8 {
	return consts.SellID
}

// StateKeys implements chain.Action.
func (s *Sell) StateKeys(actor codec.Address) state.Keys {
	return swapStateKeys(actor, s.Initiator, s.FeeRecipient, s.BucketStart, storage.Maker)
}

// ValidRange implements chain.Action.
func (*Sell) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
