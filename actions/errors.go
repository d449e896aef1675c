// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Swap-related errors
	ErrOutputValueZero         = errors.New("value is zero")
	ErrOutputMissingFunds      = errors.New("no quote funds supplied")
	ErrOutputInsufficientFunds = errors.New("insufficient quote funds")
	ErrOutputOnlyOperator      = errors.New("only the operator may execute swaps")
	ErrOutputNoOperator        = errors.New("only an operator can act on behalf of another account, but none is configured")
	ErrOutputWrongFeeRecipient = errors.New("declared fee recipient does not match the pool configuration")
	ErrOutputWrongTimeBucket   = errors.New("declared time bucket does not match the block timestamp")

	// Transfer-related errors
	ErrOutputMemoTooLarge = errors.New("memo is too large")

	// Pool-related errors
	ErrOutputPoolAlreadyExists = errors.New("pool already exists")
	ErrOutputPoolDoesNotExist  = errors.New("pool does not exist")

	// Token-related errors
	ErrOutputTokenNameEmpty           = errors.New("token name is empty")
	ErrOutputTokenNameTooLarge        = errors.New("token name is too large")
	ErrOutputTokenSymbolEmpty         = errors.New("token symbol is empty")
	ErrOutputTokenSymbolTooLarge      = errors.New("token symbol is too large")
	ErrOutputTokenMetadataEmpty       = errors.New("token metadata is empty")
	ErrOutputTokenMetadataTooLarge    = errors.New("token metadata is too large")
	ErrOutputTokenDecimalsTooLarge    = errors.New("token decimals are too large")
	ErrOutputTokenDoesNotExist        = errors.New("token does not exist")
	ErrOutputTokenNotOwner            = errors.New("actor is not token owner")
	ErrOutputInsufficientTokenBalance = errors.New("insufficient token balance")
)
