// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Native quote coin
	balancePrefix

	// Base token
	tokenInfoPrefix
	tokenBalancePrefix

	// Market state
	curvePrefix
	virtualQuoteReservePrefix
	feeConfigPrefix
	operatorPrefix
	accountStatsPrefix
	swapStatsPrefix
	netFeePrefix
	ohlcPrefix
)

// Chunks
const (
	BalanceChunks             uint16 = 1
	TokenInfoChunks           uint16 = 2
	TokenBalanceChunks        uint16 = 1
	CurveChunks               uint16 = 1
	VirtualQuoteReserveChunks uint16 = 1
	FeeConfigChunks           uint16 = 1
	OperatorChunks            uint16 = 1
	AccountStatsChunks        uint16 = 1
	SwapStatsChunks           uint16 = 1
	NetFeeChunks              uint16 = 1
	OHLCChunks                uint16 = 1
)

// Swap sides for the per-side stat and fee singletons. Taker is the
// buy side, maker the sell side.
type Side byte

const (
	Taker Side = iota
	Maker
)

// Related to action invariants
const (
	MaxTokenNameSize     = 64
	MaxTokenSymbolSize   = 8
	MaxTokenMetadataSize = 256
	MaxTokenDecimals     = 18
)

// OHLCBucketSeconds is the fixed candlestick interval.
const OHLCBucketSeconds = 60
