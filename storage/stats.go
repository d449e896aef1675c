// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/holiman/uint256"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/safemath"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// AccountStats is the per-account trading record. Accounts are created
// lazily: a missing entry reads as the zero record and is never deleted.
type AccountStats struct {
	NBuys       uint64
	NSells      uint64
	NetQuoteIn  *uint256.Int
	NetQuoteOut *uint256.Int
	NetBaseIn   *uint256.Int
	NetBaseOut  *uint256.Int
	TotalCost   *uint256.Int
}

func NewAccountStats() *AccountStats {
	return &AccountStats{
		NetQuoteIn:  new(uint256.Int),
		NetQuoteOut: new(uint256.Int),
		NetBaseIn:   new(uint256.Int),
		NetBaseOut:  new(uint256.Int),
		TotalCost:   new(uint256.Int),
	}
}

// SwapStats is a per-side global counter plus the single largest swap seen.
// The max record is replaced only on a strictly greater amount, so ties
// keep the earlier swap.
type SwapStats struct {
	N            uint64
	HasMax       bool
	MaxAmount    *uint256.Int
	MaxInitiator codec.Address
	MaxTimestamp int64
}

func NewSwapStats() *SwapStats {
	return &SwapStats{MaxAmount: new(uint256.Int)}
}

func AccountStatsKey(account codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = accountStatsPrefix
	copy(k[1:], account[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], AccountStatsChunks)
	return k
}

func SwapStatsKey(side Side) []byte {
	k := make([]byte, 1+hconsts.ByteLen+hconsts.Uint16Len)
	k[0] = swapStatsPrefix
	k[1] = byte(side)
	binary.BigEndian.PutUint16(k[2:], SwapStatsChunks)
	return k
}

const accountStatsValueLen = hconsts.Uint64Len + hconsts.Uint64Len + 5*Uint128Len

func SetAccountStats(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	stats *AccountStats,
) error {
	v := make([]byte, accountStatsValueLen)
	binary.BigEndian.PutUint64(v, stats.NBuys)
	binary.BigEndian.PutUint64(v[hconsts.Uint64Len:], stats.NSells)
	offset := 2 * hconsts.Uint64Len
	putUint128(v[offset:], stats.NetQuoteIn)
	putUint128(v[offset+Uint128Len:], stats.NetQuoteOut)
	putUint128(v[offset+2*Uint128Len:], stats.NetBaseIn)
	putUint128(v[offset+3*Uint128Len:], stats.NetBaseOut)
	putUint128(v[offset+4*Uint128Len:], stats.TotalCost)
	return mu.Insert(ctx, AccountStatsKey(account), v)
}

func GetAccountStatsNoController(
	ctx context.Context,
	im state.Immutable,
	account codec.Address,
) (*AccountStats, error) {
	v, err := im.GetValue(ctx, AccountStatsKey(account))
	if errors.Is(err, database.ErrNotFound) {
		return NewAccountStats(), nil
	}
	if err != nil {
		return nil, err
	}
	return innerGetAccountStats(v)
}

// Used to serve RPC queries
func GetAccountStatsFromState(
	ctx context.Context,
	f ReadState,
	account codec.Address,
) (*AccountStats, error) {
	values, errs := f(ctx, [][]byte{AccountStatsKey(account)})
	if errors.Is(errs[0], database.ErrNotFound) {
		return NewAccountStats(), nil
	}
	if errs[0] != nil {
		return nil, errs[0]
	}
	return innerGetAccountStats(values[0])
}

func innerGetAccountStats(v []byte) (*AccountStats, error) {
	offset := 2 * hconsts.Uint64Len
	return &AccountStats{
		NBuys:       binary.BigEndian.Uint64(v),
		NSells:      binary.BigEndian.Uint64(v[hconsts.Uint64Len:]),
		NetQuoteIn:  readUint128(v[offset:]),
		NetQuoteOut: readUint128(v[offset+Uint128Len:]),
		NetBaseIn:   readUint128(v[offset+2*Uint128Len:]),
		NetBaseOut:  readUint128(v[offset+3*Uint128Len:]),
		TotalCost:   readUint128(v[offset+4*Uint128Len:]),
	}, nil
}

const swapStatsValueLen = hconsts.Uint64Len + hconsts.ByteLen + Uint128Len + codec.AddressLen + hconsts.Uint64Len

func SetSwapStats(
	ctx context.Context,
	mu state.Mutable,
	side Side,
	stats *SwapStats,
) error {
	v := make([]byte, swapStatsValueLen)
	binary.BigEndian.PutUint64(v, stats.N)
	if stats.HasMax {
		v[hconsts.Uint64Len] = 1
	}
	offset := hconsts.Uint64Len + hconsts.ByteLen
	putUint128(v[offset:], stats.MaxAmount)
	copy(v[offset+Uint128Len:], stats.MaxInitiator[:])
	binary.BigEndian.PutUint64(v[offset+Uint128Len+codec.AddressLen:], uint64(stats.MaxTimestamp))
	return mu.Insert(ctx, SwapStatsKey(side), v)
}

func GetSwapStatsNoController(
	ctx context.Context,
	im state.Immutable,
	side Side,
) (*SwapStats, error) {
	v, err := im.GetValue(ctx, SwapStatsKey(side))
	if errors.Is(err, database.ErrNotFound) {
		return NewSwapStats(), nil
	}
	if err != nil {
		return nil, err
	}
	return innerGetSwapStats(v)
}

// Used to serve RPC queries
func GetSwapStatsFromState(
	ctx context.Context,
	f ReadState,
	side Side,
) (*SwapStats, error) {
	values, errs := f(ctx, [][]byte{SwapStatsKey(side)})
	if errors.Is(errs[0], database.ErrNotFound) {
		return NewSwapStats(), nil
	}
	if errs[0] != nil {
		return nil, errs[0]
	}
	return innerGetSwapStats(values[0])
}

func innerGetSwapStats(v []byte) (*SwapStats, error) {
	offset := hconsts.Uint64Len + hconsts.ByteLen
	return &SwapStats{
		N:            binary.BigEndian.Uint64(v),
		HasMax:       v[hconsts.Uint64Len] == 1,
		MaxAmount:    readUint128(v[offset:]),
		MaxInitiator: codec.Address(v[offset+Uint128Len : offset+Uint128Len+codec.AddressLen]),
		MaxTimestamp: int64(binary.BigEndian.Uint64(v[offset+Uint128Len+codec.AddressLen:])),
	}, nil
}

// RecordSwap folds one swap into a side's global stats.
func RecordSwap(
	ctx context.Context,
	mu state.Mutable,
	side Side,
	amount *uint256.Int,
	initiator codec.Address,
	timestamp int64,
) error {
	stats, err := GetSwapStatsNoController(ctx, mu, side)
	if err != nil {
		return err
	}
	stats.N++
	if !stats.HasMax || amount.Gt(stats.MaxAmount) {
		stats.HasMax = true
		stats.MaxAmount = amount
		stats.MaxInitiator = initiator
		stats.MaxTimestamp = timestamp
	}
	return SetSwapStats(ctx, mu, side, stats)
}

// ApplySwapToAccount folds one swap into the initiator's account record.
// For buys, in is gross quote paid and out is base received; for sells,
// in is base paid and out is net quote received.
func ApplySwapToAccount(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	isBuy bool,
	in *uint256.Int,
	out *uint256.Int,
) error {
	stats, err := GetAccountStatsNoController(ctx, mu, account)
	if err != nil {
		return err
	}
	if isBuy {
		stats.NBuys++
		if stats.NetQuoteIn, err = safemath.Add(stats.NetQuoteIn, in); err != nil {
			return err
		}
		if stats.NetBaseOut, err = safemath.Add(stats.NetBaseOut, out); err != nil {
			return err
		}
	} else {
		stats.NSells++
		if stats.NetBaseIn, err = safemath.Add(stats.NetBaseIn, in); err != nil {
			return err
		}
		if stats.NetQuoteOut, err = safemath.Add(stats.NetQuoteOut, out); err != nil {
			return err
		}
	}
	return SetAccountStats(ctx, mu, account, stats)
}
