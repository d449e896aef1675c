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
	_ codec.Typed  = (*TransferTokenResult)(nil)
	_ chain.Action = (*TransferToken)(nil)
)

type TransferTokenResult struct {
	SenderBalance   uint64 `serialize:"true" json:"senderBalance"`
	ReceiverBalance uint64 `serialize:"true" json:"receiverBalance"`
}

func (*TransferTokenResult) GetTypeID() uint8 {
	return consts.TransferTokenID
}

// TransferToken moves base tokens between accounts. The sender's cost
// basis follows the tokens out proportionally; the receiver's is adjusted
// by the transferred amount.
type TransferToken struct {
	To    codec.Address `serialize:"true" json:"to"`
	Value uint64        `serialize:"true" json:"value"`
}

// ComputeUnits implements chain.Action.
func (*TransferToken) ComputeUnits(chain.Rules) uint64 {
	return TransferTokenComputeUnits
}

// Execute implements chain.Action.
func (t *TransferToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	// Check invariants
	if t.Value == 0 {
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
	value := uint256.NewInt(t.Value)
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

	fromBefore, _, err := storage.TransferToken(ctx, mu, actor, t.To, value)
	if err != nil {
		return nil, err
	}
	if err := storage.DebitCostBasis(ctx, mu, actor, value, fromBefore, curve.QuoteDecimals); err != nil {
		return nil, err
	}
	if err := storage.CreditCostBasis(ctx, mu, t.To, value); err != nil {
		return nil, err
	}

	senderBalance, err := storage.GetTokenBalanceNoController(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	receiverBalance, err := storage.GetTokenBalanceNoController(ctx, mu, t.To)
	if err != nil {
		return nil, err
	}
	sender64, err := safemath.ToUint64(senderBalance)
	if err != nil {
		return nil, err
	}
	receiver64, err := safemath.ToUint64(receiverBalance)
	if err != nil {
		return nil, err
	}
	return &TransferTokenResult{
		SenderBalance:   sender64,
		ReceiverBalance: receiver64,
	}, nil
}

// GetTypeID implements chain.Action.
func (*TransferToken) GetTypeID() uint8 {
	return consts.TransferTokenID
}

// StateKeys implements chain.Action.
func (t *TransferToken) StateKeys(actor codec.Address) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey()):         state.Read,
		string(storage.CurveKey()):             state.Read,
		string(storage.TokenBalanceKey(actor)): state.All,
		string(storage.TokenBalanceKey(t.To)):  state.All,
		string(storage.AccountStatsKey(actor)): state.All,
		string(storage.AccountStatsKey(t.To)):  state.All,
	}
}

// ValidRange implements chain.Action.
func (*TransferToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
