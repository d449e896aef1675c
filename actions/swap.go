// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/consts"
	"curvevm/safemath"
	"curvevm/storage"
)

// executeSwap runs the full swap pipeline shared by Buy and Sell: fee
// extraction, curve invocation, settlement of both legs, and the stats,
// fee-accumulator, and candlestick updates. [value] is the gross input
// (quote for buys, base for sells); the returned amounts are the gross
// input and the net output credited to the initiator. [feeRecipient] and
// [bucketStart] are declared on the action so StateKeys can cover their
// keys; they must match the stored config and the block timestamp. Any
// error aborts the transaction and discards every mutation made here.
func executeSwap(
	ctx context.Context,
	mu state.Mutable,
	actor codec.Address,
	timestampMs int64,
	isBuy bool,
	value uint64,
	initiator codec.Address,
	minAmountOut uint64,
	feeRecipient codec.Address,
	bucketStart int64,
) (uint64, uint64, error) {
	if value == 0 {
		if isBuy {
			return 0, 0, ErrOutputMissingFunds
		}
		return 0, 0, ErrOutputValueZero
	}
	if storage.OHLCBucket(timestampMs) != bucketStart {
		return 0, 0, ErrOutputWrongTimeBucket
	}
	beneficiary, err := resolveInitiator(ctx, mu, actor, initiator)
	if err != nil {
		return 0, 0, err
	}
	curve, err := storage.GetCurveNoController(ctx, mu)
	if err != nil {
		return 0, 0, ErrOutputPoolDoesNotExist
	}
	buyFeePPM, sellFeePPM, recipient, err := storage.GetFeeConfigNoController(ctx, mu)
	if err != nil {
		return 0, 0, err
	}
	if recipient != feeRecipient {
		return 0, 0, ErrOutputWrongFeeRecipient
	}

	amount := uint256.NewInt(value)
	var minOut *uint256.Int
	if minAmountOut > 0 {
		minOut = uint256.NewInt(minAmountOut)
	}

	var (
		side        storage.Side
		fee         *uint256.Int
		netOut      *uint256.Int
		volumeBase  *uint256.Int
		volumeQuote *uint256.Int
	)
	if isBuy {
		side = storage.Taker
		bal, err := storage.GetBalance(ctx, mu, actor)
		if err != nil {
			return 0, 0, err
		}
		if bal < value {
			return 0, 0, ErrOutputInsufficientFunds
		}
		// Buy-side fee comes off the gross input before it reaches the curve
		if fee, err = safemath.MulPPM(amount, buyFeePPM); err != nil {
			return 0, 0, err
		}
		netIn, err := safemath.Sub(amount, fee)
		if err != nil {
			return 0, 0, err
		}
		if netOut, err = curve.Buy(netIn, minOut); err != nil {
			return 0, 0, err
		}

		// Settle the quote leg: actor pays gross, the pool keeps the net
		// input and the recipient collects the fee
		if err := storage.SubBalance(ctx, mu, actor, value); err != nil {
			return 0, 0, err
		}
		netIn64, err := safemath.ToUint64(netIn)
		if err != nil {
			return 0, 0, err
		}
		if err := storage.AddBalance(ctx, mu, consts.PoolAddress, netIn64, true); err != nil {
			return 0, 0, err
		}
		fee64, err := safemath.ToUint64(fee)
		if err != nil {
			return 0, 0, err
		}
		if fee64 > 0 {
			if err := storage.AddBalance(ctx, mu, feeRecipient, fee64, true); err != nil {
				return 0, 0, err
			}
		}

		// Settle the base leg pool -> beneficiary
		poolBefore, _, err := storage.TransferToken(ctx, mu, consts.PoolAddress, beneficiary, netOut)
		if err != nil {
			return 0, 0, err
		}
		if err := storage.DebitCostBasis(ctx, mu, consts.PoolAddress, netOut, poolBefore, curve.QuoteDecimals); err != nil {
			return 0, 0, err
		}
		if err := storage.CreditCostBasis(ctx, mu, beneficiary, netOut); err != nil {
			return 0, 0, err
		}

		// Bar volume records what crossed the curve, net of the fee
		volumeBase = netOut
		volumeQuote = netIn
	} else {
		side = storage.Maker
		balance, err := storage.GetTokenBalanceNoController(ctx, mu, beneficiary)
		if err != nil {
			return 0, 0, err
		}
		if balance.Lt(amount) {
			return 0, 0, ErrOutputInsufficientTokenBalance
		}
		// The slippage bound applies to the curve output; the sell-side
		// fee comes off afterwards
		grossOut, err := curve.Sell(amount, minOut)
		if err != nil {
			return 0, 0, err
		}
		if fee, err = safemath.MulPPM(grossOut, sellFeePPM); err != nil {
			return 0, 0, err
		}
		if netOut, err = safemath.Sub(grossOut, fee); err != nil {
			return 0, 0, err
		}

		// Settle the base leg beneficiary -> pool
		fromBefore, _, err := storage.TransferToken(ctx, mu, beneficiary, consts.PoolAddress, amount)
		if err != nil {
			return 0, 0, err
		}
		if err := storage.DebitCostBasis(ctx, mu, beneficiary, amount, fromBefore, curve.QuoteDecimals); err != nil {
			return 0, 0, err
		}
		if err := storage.CreditCostBasis(ctx, mu, consts.PoolAddress, amount); err != nil {
			return 0, 0, err
		}

		// Settle the quote leg: the pool pays the full curve output, split
		// between the beneficiary and the fee recipient
		grossOut64, err := safemath.ToUint64(grossOut)
		if err != nil {
			return 0, 0, err
		}
		if err := storage.SubBalance(ctx, mu, consts.PoolAddress, grossOut64); err != nil {
			return 0, 0, err
		}
		netOut64, err := safemath.ToUint64(netOut)
		if err != nil {
			return 0, 0, err
		}
		if err := storage.AddBalance(ctx, mu, beneficiary, netOut64, true); err != nil {
			return 0, 0, err
		}
		fee64, err := safemath.ToUint64(fee)
		if err != nil {
			return 0, 0, err
		}
		if fee64 > 0 {
			if err := storage.AddBalance(ctx, mu, feeRecipient, fee64, true); err != nil {
				return 0, 0, err
			}
		}

		volumeBase = amount
		volumeQuote = grossOut
	}

	if err := storage.SetCurve(ctx, mu, curve); err != nil {
		return 0, 0, err
	}
	if err := storage.ApplySwapToAccount(ctx, mu, beneficiary, isBuy, amount, netOut); err != nil {
		return 0, 0, err
	}
	if err := storage.RecordSwap(ctx, mu, side, amount, beneficiary, timestampMs); err != nil {
		return 0, 0, err
	}
	if err := storage.AddNetFee(ctx, mu, side, fee); err != nil {
		return 0, 0, err
	}
	price, err := curve.QuotePrice()
	if err != nil {
		return 0, 0, err
	}
	if err := storage.UpsertOHLCBar(ctx, mu, timestampMs, price, volumeBase, volumeQuote); err != nil {
		return 0, 0, err
	}

	out64, err := safemath.ToUint64(netOut)
	if err != nil {
		return 0, 0, err
	}
	return value, out64, nil
}

// swapStateKeys covers every key a swap touches. The fee recipient and
// time bucket are action fields so their keys are derivable here; Execute
// rejects swaps whose declarations do not match state.
func swapStateKeys(
	actor codec.Address,
	initiator codec.Address,
	feeRecipient codec.Address,
	bucketStart int64,
	side storage.Side,
) state.Keys {
	keys := state.Keys{
		string(storage.CurveKey()):                          state.Read | state.Write,
		string(storage.FeeConfigKey()):                      state.Read,
		string(storage.OperatorKey()):                       state.Read,
		string(storage.SwapStatsKey(side)):                  state.All,
		string(storage.NetFeeKey(side)):                     state.All,
		string(storage.OHLCKey(bucketStart)):                state.All,
		string(storage.BalanceKey(actor)):                   state.All,
		string(storage.BalanceKey(feeRecipient)):            state.All,
		string(storage.BalanceKey(consts.PoolAddress)):      state.All,
		string(storage.TokenBalanceKey(actor)):              state.All,
		string(storage.TokenBalanceKey(consts.PoolAddress)): state.All,
		string(storage.AccountStatsKey(actor)):              state.All,
		string(storage.AccountStatsKey(consts.PoolAddress)): state.All,
	}
	if initiator != codec.EmptyAddress {
		keys.Add(string(storage.BalanceKey(initiator)), state.All)
		keys.Add(string(storage.TokenBalanceKey(initiator)), state.All)
		keys.Add(string(storage.AccountStatsKey(initiator)), state.All)
	}
	return keys
}
