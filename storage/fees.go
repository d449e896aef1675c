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

func FeeConfigKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = feeConfigPrefix
	binary.BigEndian.PutUint16(k[1:], FeeConfigChunks)
	return k
}

func NetFeeKey(side Side) []byte {
	k := make([]byte, 1+hconsts.ByteLen+hconsts.Uint16Len)
	k[0] = netFeePrefix
	k[1] = byte(side)
	binary.BigEndian.PutUint16(k[2:], NetFeeChunks)
	return k
}

func OperatorKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = operatorPrefix
	binary.BigEndian.PutUint16(k[1:], OperatorChunks)
	return k
}

// ClampPPM bounds a fee fraction at 100%.
func ClampPPM(ppm uint64) uint64 {
	if ppm > safemath.FeeScale {
		return safemath.FeeScale
	}
	return ppm
}

// [buyFeePPM] + [sellFeePPM] + [recipient]
func SetFeeConfig(
	ctx context.Context,
	mu state.Mutable,
	buyFeePPM uint64,
	sellFeePPM uint64,
	recipient codec.Address,
) error {
	v := make([]byte, hconsts.Uint64Len+hconsts.Uint64Len+codec.AddressLen)
	binary.BigEndian.PutUint64(v, ClampPPM(buyFeePPM))
	binary.BigEndian.PutUint64(v[hconsts.Uint64Len:], ClampPPM(sellFeePPM))
	copy(v[hconsts.Uint64Len+hconsts.Uint64Len:], recipient[:])
	return mu.Insert(ctx, FeeConfigKey(), v)
}

func GetFeeConfigNoController(
	ctx context.Context,
	im state.Immutable,
) (uint64, uint64, codec.Address, error) {
	v, err := im.GetValue(ctx, FeeConfigKey())
	if err != nil {
		return 0, 0, codec.EmptyAddress, err
	}
	return innerGetFeeConfig(v)
}

// Used to serve RPC queries
func GetFeeConfigFromState(
	ctx context.Context,
	f ReadState,
) (uint64, uint64, codec.Address, error) {
	values, errs := f(ctx, [][]byte{FeeConfigKey()})
	if errs[0] != nil {
		return 0, 0, codec.EmptyAddress, errs[0]
	}
	return innerGetFeeConfig(values[0])
}

func innerGetFeeConfig(v []byte) (uint64, uint64, codec.Address, error) {
	buyFeePPM := binary.BigEndian.Uint64(v)
	sellFeePPM := binary.BigEndian.Uint64(v[hconsts.Uint64Len:])
	recipient := codec.Address(v[hconsts.Uint64Len+hconsts.Uint64Len:])
	return buyFeePPM, sellFeePPM, recipient, nil
}

// SetOperator gates swaps into delegated mode (see actions.ResolveInitiator).
func SetOperator(
	ctx context.Context,
	mu state.Mutable,
	operator codec.Address,
) error {
	return mu.Insert(ctx, OperatorKey(), operator[:])
}

// GetOperator returns the configured operator, if any.
func GetOperator(
	ctx context.Context,
	im state.Immutable,
) (codec.Address, bool, error) {
	v, err := im.GetValue(ctx, OperatorKey())
	if errors.Is(err, database.ErrNotFound) {
		return codec.EmptyAddress, false, nil
	}
	if err != nil {
		return codec.EmptyAddress, false, err
	}
	return codec.Address(v), true, nil
}

// GetNetFee returns the lifetime fee total collected on a side. Missing
// entries read as zero so accumulation needs no separate initialization.
func GetNetFee(
	ctx context.Context,
	im state.Immutable,
	side Side,
) (*uint256.Int, error) {
	v, err := im.GetValue(ctx, NetFeeKey(side))
	if errors.Is(err, database.ErrNotFound) {
		return new(uint256.Int), nil
	}
	if err != nil {
		return nil, err
	}
	return readUint128(v), nil
}

// Used to serve RPC queries
func GetNetFeeFromState(
	ctx context.Context,
	f ReadState,
	side Side,
) (*uint256.Int, error) {
	values, errs := f(ctx, [][]byte{NetFeeKey(side)})
	if errors.Is(errs[0], database.ErrNotFound) {
		return new(uint256.Int), nil
	}
	if errs[0] != nil {
		return nil, errs[0]
	}
	return readUint128(values[0]), nil
}

// AddNetFee accumulates a fee into the side's lifetime total. Zero fees
// still pass through so the entry exists after the first swap.
func AddNetFee(
	ctx context.Context,
	mu state.Mutable,
	side Side,
	fee *uint256.Int,
) error {
	total, err := GetNetFee(ctx, mu, side)
	if err != nil {
		return err
	}
	ntotal, err := safemath.Add(total, fee)
	if err != nil {
		return err
	}
	v := make([]byte, Uint128Len)
	putUint128(v, ntotal)
	return mu.Insert(ctx, NetFeeKey(side), v)
}
