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
	"curvevm/pricing"
	"curvevm/storage"
)

var (
	_ codec.Typed  = (*CreatePoolResult)(nil)
	_ chain.Action = (*CreatePool)(nil)
)

type CreatePoolResult struct {
	PoolAddress      codec.Address `serialize:"true" json:"poolAddress"`
	BaseTokenAddress codec.Address `serialize:"true" json:"baseTokenAddress"`
}

func (*CreatePoolResult) GetTypeID() uint8 {
	return consts.CreatePoolID
}

// CreatePool is the one-time market initialization: it creates the base
// token, mints the initial base reserve to the pool, seeds the curve with
// a virtual quote reserve, and records the fee and authorization
// configuration. All of these are immutable afterwards.
type CreatePool struct {
	Name     []byte `serialize:"true" json:"name"`
	Symbol   []byte `serialize:"true" json:"symbol"`
	Metadata []byte `serialize:"true" json:"metadata"`
	Decimals uint8  `serialize:"true" json:"decimals"`

	BaseReserve         uint64 `serialize:"true" json:"baseReserve"`
	VirtualQuoteReserve uint64 `serialize:"true" json:"virtualQuoteReserve"`

	BuyFeePPM    uint64        `serialize:"true" json:"buyFeePPM"`
	SellFeePPM   uint64        `serialize:"true" json:"sellFeePPM"`
	FeeRecipient codec.Address `serialize:"true" json:"feeRecipient"`

	// Operator is optional; codec.EmptyAddress leaves the market in
	// direct mode (see resolveInitiator).
	Operator codec.Address `serialize:"true" json:"operator"`
}

// ComputeUnits implements chain.Action.
func (*CreatePool) ComputeUnits(chain.Rules) uint64 {
	return CreatePoolComputeUnits
}

// Execute implements chain.Action.
func (c *CreatePool) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	// Check invariants
	if len(c.Name) == 0 {
		return nil, ErrOutputTokenNameEmpty
	}
	if len(c.Name) > storage.MaxTokenNameSize {
		return nil, ErrOutputTokenNameTooLarge
	}
	if len(c.Symbol) == 0 {
		return nil, ErrOutputTokenSymbolEmpty
	}
	if len(c.Symbol) > storage.MaxTokenSymbolSize {
		return nil, ErrOutputTokenSymbolTooLarge
	}
	if len(c.Metadata) == 0 {
		return nil, ErrOutputTokenMetadataEmpty
	}
	if len(c.Metadata) > storage.MaxTokenMetadataSize {
		return nil, ErrOutputTokenMetadataTooLarge
	}
	if c.Decimals > storage.MaxTokenDecimals {
		return nil, ErrOutputTokenDecimalsTooLarge
	}
	if c.BaseReserve == 0 || c.VirtualQuoteReserve == 0 {
		return nil, ErrOutputValueZero
	}
	// Check that pool does not exist
	exists, err := storage.TokenExists(ctx, mu)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOutputPoolAlreadyExists
	}

	baseReserve := uint256.NewInt(c.BaseReserve)
	virtualQuoteReserve := uint256.NewInt(c.VirtualQuoteReserve)

	// Create the base token and mint the full supply to the pool
	if err := storage.SetTokenInfo(ctx, mu, c.Name, c.Symbol, c.Decimals, c.Metadata, baseReserve, actor); err != nil {
		return nil, err
	}
	if err := storage.SetTokenBalance(ctx, mu, consts.PoolAddress, baseReserve); err != nil {
		return nil, err
	}

	// Seed the curve; the quote reserve starts entirely virtual
	curve, err := pricing.NewCurve(baseReserve, c.Decimals, virtualQuoteReserve, consts.Decimals)
	if err != nil {
		return nil, err
	}
	if err := storage.SetCurve(ctx, mu, curve); err != nil {
		return nil, err
	}
	if err := storage.SetVirtualQuoteReserve(ctx, mu, virtualQuoteReserve); err != nil {
		return nil, err
	}

	if err := storage.SetFeeConfig(ctx, mu, c.BuyFeePPM, c.SellFeePPM, c.FeeRecipient); err != nil {
		return nil, err
	}
	if c.Operator != codec.EmptyAddress {
		if err := storage.SetOperator(ctx, mu, c.Operator); err != nil {
			return nil, err
		}
	}

	return &CreatePoolResult{
		PoolAddress:      consts.PoolAddress,
		BaseTokenAddress: consts.BaseTokenAddress,
	}, nil
}

// GetTypeID implements chain.Action.
func (*CreatePool) GetTypeID() uint8 {
	return consts.CreatePoolID
}

// StateKeys implements chain.Action.
func (*CreatePool) StateKeys(codec.Address) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey()):                       state.All,
		string(storage.TokenBalanceKey(consts.PoolAddress)):  state.All,
		string(storage.CurveKey()):                           state.All,
		string(storage.VirtualQuoteReserveKey()):             state.All,
		string(storage.FeeConfigKey()):                       state.All,
		string(storage.OperatorKey()):                        state.All,
	}
}

// ValidRange implements chain.Action.
func (*CreatePool) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}
