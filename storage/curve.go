// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/ava-labs/hypersdk/state"

	"curvevm/pricing"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

func CurveKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = curvePrefix
	binary.BigEndian.PutUint16(k[1:], CurveChunks)
	return k
}

func VirtualQuoteReserveKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = virtualQuoteReservePrefix
	binary.BigEndian.PutUint16(k[1:], VirtualQuoteReserveChunks)
	return k
}

// [k] + [baseReserve] + [baseDecimals] + [quoteReserve] + [quoteDecimals]
const curveValueLen = Uint256Len + Uint128Len + hconsts.ByteLen + Uint128Len + hconsts.ByteLen

func SetCurve(
	ctx context.Context,
	mu state.Mutable,
	curve *pricing.Curve,
) error {
	k := CurveKey()
	v := make([]byte, curveValueLen)
	putUint256(v, curve.K)
	putUint128(v[Uint256Len:], curve.BaseReserve)
	v[Uint256Len+Uint128Len] = curve.BaseDecimals
	putUint128(v[Uint256Len+Uint128Len+hconsts.ByteLen:], curve.QuoteReserve)
	v[Uint256Len+Uint128Len+hconsts.ByteLen+Uint128Len] = curve.QuoteDecimals
	return mu.Insert(ctx, k, v)
}

func GetCurveNoController(
	ctx context.Context,
	im state.Immutable,
) (*pricing.Curve, error) {
	v, err := im.GetValue(ctx, CurveKey())
	if err != nil {
		return nil, err
	}
	return innerGetCurve(v)
}

// Used to serve RPC queries
func GetCurveFromState(
	ctx context.Context,
	f ReadState,
) (*pricing.Curve, error) {
	values, errs := f(ctx, [][]byte{CurveKey()})
	if errs[0] != nil {
		return nil, errs[0]
	}
	return innerGetCurve(values[0])
}

func innerGetCurve(v []byte) (*pricing.Curve, error) {
	return &pricing.Curve{
		K:             readUint256(v),
		BaseReserve:   readUint128(v[Uint256Len:]),
		BaseDecimals:  v[Uint256Len+Uint128Len],
		QuoteReserve:  readUint128(v[Uint256Len+Uint128Len+hconsts.ByteLen:]),
		QuoteDecimals: v[Uint256Len+Uint128Len+hconsts.ByteLen+Uint128Len],
	}, nil
}

func SetVirtualQuoteReserve(
	ctx context.Context,
	mu state.Mutable,
	amount *uint256.Int,
) error {
	v := make([]byte, Uint128Len)
	putUint128(v, amount)
	return mu.Insert(ctx, VirtualQuoteReserveKey(), v)
}

func GetVirtualQuoteReserveNoController(
	ctx context.Context,
	im state.Immutable,
) (*uint256.Int, error) {
	v, err := im.GetValue(ctx, VirtualQuoteReserveKey())
	if err != nil {
		return nil, err
	}
	return readUint128(v), nil
}

// Used to serve RPC queries
func GetVirtualQuoteReserveFromState(
	ctx context.Context,
	f ReadState,
) (*uint256.Int, error) {
	values, errs := f(ctx, [][]byte{VirtualQuoteReserveKey()})
	if errs[0] != nil {
		return nil, errs[0]
	}
	return readUint128(values[0]), nil
}
