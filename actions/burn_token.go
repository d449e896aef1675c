// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/holiman/uint256"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/consts"
	"curvevm/safemath"
	"curvevm/storage"
)

var (
	_ codec.Typed  = (*BurnTokenResult)(nil)
	_ chain.Action = (*BurnToken)(nil)
)

type BurnTokenResult struct {
	Balance     uint64 `serialize:"true" json:"balance"`
	TotalSupply uint64 `serialize:"true" json:"totalSupply"`
}

func (*BurnTokenResult) GetTypeID() uint8 {
	return consts.BurnTokenID
}

// BurnToken destroys base tokens held by the actor. The burned amount's
// share of the actor's cost basis is removed with it.
type BurnToken struct {
	Value uint64 `serialize:"true" json:"value"`
}

// ComputeUnits implements chain.Action.
func (*BurnToken) ComputeUnits(chain.Rules) uint64 {
	return BurnTokenComputeUnits
}

// Execute implements chain.Action.
func (b *BurnToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	// Check invariants
	if b.Value == 0 {
		return nil, ErrOutputValueZero
	}
	// Check that token exists
	exists, err := storage.TokenExists(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputTokenDoesNotExist
	}
	// Check that balance is sufficient
	value := uint256.NewInt(b.Value)
	balance, err := storage.GetTokenBalanceNoController(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	if balance.Lt(value) {
		return nil, ErrOutputInsufficientTokenBalance
	}
	curve, err := storage.GetCurveNoController(ctx, mu)
	if err != nil {
		return nil, err
	}

	fromBefore, err := storage.BurnToken(ctx, mu, actor, value)
	if err != nil {
		return nil, err
	}
	if err := storage.DebitCostBasis(ctx, mu, actor, value, fromBefore, curve.QuoteDecimals); err != nil {
		return nil, err
	}

	remaining, err := storage.GetTokenBalanceNoController(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	_, _, _, _, totalSupply, _, err := storage.GetTokenInfoNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	remaining64, err := safemath.ToUint64(remaining)
	if err != nil {
		return nil, err
	}
	supply64, err := safemath.ToUint64(totalSupply)
	if err != nil {
		return nil, err
	}
	return &BurnTokenResult{
		Balance:     remaining64,
		TotalSupply: supply64,
	}, nil
}

// GetTypeID implements chain.Action.
func (*BurnToken) GetTypeID() uint8 {
	return consts.BurnTokenID
}

// StateKeys implements chain.Action.
func (*BurnToken) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey()):         state.Read | state.Write,
		string(storage.CurveKey()):             state.Read,
		string(storage.TokenBalanceKey(actor)): state.All,
		string(storage.AccountStatsKey(actor)): state.All,
	}
}

// ValidRange implements chain.Action.
func (*BurnToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
