// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/holiman/uint256"
)

// ReadState is the batched read interface served by the VM for RPC queries.
type ReadState func(context.Context, [][]byte) ([][]byte, []error)

// Uint128Len is the stored width of every 128-bit amount.
const Uint128Len = 16

// Uint256Len is the stored width of k.
const Uint256Len = 32

func putUint128(dst []byte, v *uint256.Int) {
	b := v.Bytes32()
	copy(dst, b[Uint256Len-Uint128Len:])
}

func readUint128(src []byte) *uint256.Int {
	return new(uint256.Int).SetBytes(src[:Uint128Len])
}

func putUint256(dst []byte, v *uint256.Int) {
	b := v.Bytes32()
	copy(dst, b[:])
}

func readUint256(src []byte) *uint256.Int {
	return new(uint256.Int).SetBytes(src[:Uint256Len])
}
