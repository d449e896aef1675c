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
	_ codec.Typed  = (*MintTokenResult)(nil)
	_ chain.Action = (*MintToken)(nil)
)

type MintTokenResult struct {
	Balance     uint64 `serialize:"true" json:"balance"`
	TotalSupply uint64 `serialize:"true" json:"totalSupply"`
}

func (*MintTokenResult) GetTypeID() uint8 {
	return consts.MintTokenID
}

// MintToken creates new base tokens for [To]. Restricted to the token
// owner (the pool creator). Minted tokens adjust the recipient's cost
// basis like any other incoming balance change.
type MintToken struct {
	To    codec.Address `serialize:"true" json:"to"`
	Value uint64        `serialize:"true" json:"value"`
}

// ComputeUnits implements chain.Action.
func (*MintToken) ComputeUnits(chain.Rules) uint64 {
	return MintTokenComputeUnits
}

// Execute implements chain.Action.
func (m *MintToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	// Check invariants
	if m.Value == 0 {
		return nil, ErrOutputValueZero
	}
	// Check that token exists and actor owns it
	_, _, _, _, _, owner, err := storage.GetTokenInfoNoController(ctx, mu)
	if err != nil {
		return nil, ErrOutputTokenDoesNotExist
	}
	if owner != actor {
		return nil, ErrOutputTokenNotOwner
	}

	value := uint256.NewInt(m.Value)
	if _, err := storage.MintToken(ctx, mu, m.To, value); err != nil {
		return nil, err
	}
	if err := storage.CreditCostBasis(ctx, mu, m.To, value); err != nil {
		return nil, err
	}

	balance, err := storage.GetTokenBalanceNoController(ctx, mu, m.To)
	if err != nil {
		return nil, err
	}
	_, _, _, _, totalSupply, _, err := storage.GetTokenInfoNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	balance64, err := safemath.ToUint64(balance)
	if err != nil {
		return nil, err
	}
	supply64, err := safemath.ToUint64(totalSupply)
	if err != nil {
		return nil, err
	}
	return &MintTokenResult{
		Balance:     balance64,
		TotalSupply: supply64,
	}, nil
}

// GetTypeID implements chain.Action.
func (*MintToken) GetTypeID() uint8 {
	return consts.MintTokenID
}

// StateKeys implements chain.Action.
func (m *MintToken) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey()):        state.Read | state.Write,
		string(storage.TokenBalanceKey(m.To)): state.All,
		string(storage.AccountStatsKey(m.To)): state.All,
	}
}

// ValidRange implements chain.Action.
func (*MintToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
