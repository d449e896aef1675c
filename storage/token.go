// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/safemath"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// The base token is a singleton: one tracked asset trades against the
// native coin, so the record and balances need no token-address component.

func TokenInfoKey() []byte {
	k := make([]byte, 1+hconsts.Uint16Len)
	k[0] = tokenInfoPrefix
	binary.BigEndian.PutUint16(k[1:], TokenInfoChunks)
	return k
}

func TokenBalanceKey(account codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = tokenBalancePrefix
	copy(k[1:], account[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], TokenBalanceChunks)
	return k
}

// [nameLen] + [name] + [symbolLen] + [symbol] + [decimals] + [metadataLen] + [metadata] + [totalSupply] + [owner]
func SetTokenInfo(
	ctx context.Context,
	mu state.Mutable,
	name []byte,
	symbol []byte,
	decimals uint8,
	metadata []byte,
	totalSupply *uint256.Int,
	owner codec.Address,
) error {
	nameLen := len(name)
	symbolLen := len(symbol)
	metadataLen := len(metadata)
	v := make([]byte, hconsts.Uint16Len+nameLen+hconsts.Uint16Len+symbolLen+hconsts.ByteLen+hconsts.Uint16Len+metadataLen+Uint128Len+codec.AddressLen)
	offset := 0
	binary.BigEndian.PutUint16(v[offset:], uint16(nameLen))
	offset += hconsts.Uint16Len
	copy(v[offset:], name)
	offset += nameLen
	binary.BigEndian.PutUint16(v[offset:], uint16(symbolLen))
	offset += hconsts.Uint16Len
	copy(v[offset:], symbol)
	offset += symbolLen
	v[offset] = decimals
	offset += hconsts.ByteLen
	binary.BigEndian.PutUint16(v[offset:], uint16(metadataLen))
	offset += hconsts.Uint16Len
	copy(v[offset:], metadata)
	offset += metadataLen
	putUint128(v[offset:], totalSupply)
	offset += Uint128Len
	copy(v[offset:], owner[:])
	return mu.Insert(ctx, TokenInfoKey(), v)
}

func GetTokenInfoNoController(
	ctx context.Context,
	im state.Immutable,
) ([]byte, []byte, uint8, []byte, *uint256.Int, codec.Address, error) {
	v, err := im.GetValue(ctx, TokenInfoKey())
	if err != nil {
		return nil, nil, 0, nil, nil, codec.EmptyAddress, err
	}
	return innerGetTokenInfo(v)
}

// Used to serve RPC queries
func GetTokenInfoFromState(
	ctx context.Context,
	f ReadState,
) ([]byte, []byte, uint8, []byte, *uint256.Int, codec.Address, error) {
	values, errs := f(ctx, [][]byte{TokenInfoKey()})
	if errs[0] != nil {
		return nil, nil, 0, nil, nil, codec.EmptyAddress, errs[0]
	}
	return innerGetTokenInfo(values[0])
}

func innerGetTokenInfo(v []byte) ([]byte, []byte, uint8, []byte, *uint256.Int, codec.Address, error) {
	offset := 0
	nameLen := binary.BigEndian.Uint16(v[offset:])
	offset += hconsts.Uint16Len
	name := v[offset : offset+int(nameLen)]
	offset += int(nameLen)
	symbolLen := binary.BigEndian.Uint16(v[offset:])
	offset += hconsts.Uint16Len
	symbol := v[offset : offset+int(symbolLen)]
	offset += int(symbolLen)
	decimals := v[offset]
	offset += hconsts.ByteLen
	metadataLen := binary.BigEndian.Uint16(v[offset:])
	offset += hconsts.Uint16Len
	metadata := v[offset : offset+int(metadataLen)]
	offset += int(metadataLen)
	totalSupply := readUint128(v[offset:])
	offset += Uint128Len
	owner := codec.Address(v[offset : offset+codec.AddressLen])
	return name, symbol, decimals, metadata, totalSupply, owner, nil
}

func TokenExists(
	ctx context.Context,
	im state.Immutable,
) (bool, error) {
	_, err := im.GetValue(ctx, TokenInfoKey())
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func GetTokenBalanceNoController(
	ctx context.Context,
	im state.Immutable,
	account codec.Address,
) (*uint256.Int, error) {
	v, err := im.GetValue(ctx, TokenBalanceKey(account))
	if errors.Is(err, database.ErrNotFound) {
		return new(uint256.Int), nil
	}
	if err != nil {
		return nil, err
	}
	return readUint128(v), nil
}

// Used to serve RPC queries
func GetTokenBalanceFromState(
	ctx context.Context,
	f ReadState,
	account codec.Address,
) (*uint256.Int, error) {
	values, errs := f(ctx, [][]byte{TokenBalanceKey(account)})
	if errors.Is(errs[0], database.ErrNotFound) {
		return new(uint256.Int), nil
	}
	if errs[0] != nil {
		return nil, errs[0]
	}
	return readUint128(values[0]), nil
}

func SetTokenBalance(
	ctx context.Context,
	mu state.Mutable,
	account codec.Address,
	balance *uint256.Int,
) error {
	v := make([]byte, Uint128Len)
	putUint128(v, balance)
	return mu.Insert(ctx, TokenBalanceKey(account), v)
}

// MintToken credits [to] and grows the total supply, returning the
// recipient's balance before the credit.
func MintToken(
	ctx context.Context,
	mu state.Mutable,
	to codec.Address,
	value *uint256.Int,
) (*uint256.Int, error) {
	name, symbol, decimals, metadata, totalSupply, owner, err := GetTokenInfoNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	toBefore, err := GetTokenBalanceNoController(ctx, mu, to)
	if err != nil {
		return nil, err
	}
	nSupply, err := safemath.Add(totalSupply, value)
	if err != nil {
		return nil, err
	}
	nBalance, err := safemath.Add(toBefore, value)
	if err != nil {
		return nil, err
	}
	if err := SetTokenInfo(ctx, mu, name, symbol, decimals, metadata, nSupply, owner); err != nil {
		return nil, err
	}
	if err := SetTokenBalance(ctx, mu, to, nBalance); err != nil {
		return nil, err
	}
	return toBefore, nil
}

// BurnToken debits [from] and shrinks the total supply, returning the
// holder's balance before the debit.
func BurnToken(
	ctx context.Context,
	mu state.Mutable,
	from codec.Address,
	value *uint256.Int,
) (*uint256.Int, error) {
	name, symbol, decimals, metadata, totalSupply, owner, err := GetTokenInfoNoController(ctx, mu)
	if err != nil {
		return nil, err
	}
	fromBefore, err := GetTokenBalanceNoController(ctx, mu, from)
	if err != nil {
		return nil, err
	}
	nBalance, err := safemath.Sub(fromBefore, value)
	if err != nil {
		return nil, fmt.Errorf("%w: could not subtract token balance", ErrInvalidBalance)
	}
	nSupply, err := safemath.Sub(totalSupply, value)
	if err != nil {
		return nil, err
	}
	if err := SetTokenInfo(ctx, mu, name, symbol, decimals, metadata, nSupply, owner); err != nil {
		return nil, err
	}
	if err := SetTokenBalance(ctx, mu, from, nBalance); err != nil {
		return nil, err
	}
	return fromBefore, nil
}

// TransferToken moves base tokens between accounts, returning both sides'
// balances before the move.
func TransferToken(
	ctx context.Context,
	mu state.Mutable,
	from codec.Address,
	to codec.Address,
	value *uint256.Int,
) (*uint256.Int, *uint256.Int, error) {
	fromBefore, err := GetTokenBalanceNoController(ctx, mu, from)
	if err != nil {
		return nil, nil, err
	}
	if to == from {
		if value.Gt(fromBefore) {
			return nil, nil, fmt.Errorf("%w: could not subtract token balance", ErrInvalidBalance)
		}
		return fromBefore, fromBefore, nil
	}
	toBefore, err := GetTokenBalanceNoController(ctx, mu, to)
	if err != nil {
		return nil, nil, err
	}
	nFrom, err := safemath.Sub(fromBefore, value)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not subtract token balance", ErrInvalidBalance)
	}
	nTo, err := safemath.Add(toBefore, value)
	if err != nil {
		return nil, nil, err
	}
	if err := SetTokenBalance(ctx, mu, from, nFrom); err != nil {
		return nil, nil, err
	}
	if err := SetTokenBalance(ctx, mu, to, nTo); err != nil {
		return nil, nil, err
	}
	return fromBefore, toBefore, nil
}
