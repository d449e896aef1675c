// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/utils"
)

// TypeIDs for actions
const (
	TransferID uint8 = iota
	CreatePoolID
	BuyID
	SellID
	TransferTokenID
	MintTokenID
	BurnTokenID
)

// TypeIDs for auth
const (
	// Required
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Relating to CurveVM address generation
	BASETOKENID
	POOLID
)

const (
	Name = "CurveVM"
	HRP  = "curve"

	// Native quote coin
	Symbol   = "CRV"
	Decimals = 9
	Metadata = "A bonding-curve market-maker VM implementation"
)

var (
	ID ids.ID

	// PoolAddress holds the market's reserves: the native quote leg as a
	// regular balance and the base-token leg as a token account.
	PoolAddress codec.Address

	// BaseTokenAddress identifies the tracked base asset.
	BaseTokenAddress codec.Address
)

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID

	PoolAddress = codec.CreateAddress(POOLID, utils.ToID([]byte(Name+"-pool")))
	BaseTokenAddress = codec.CreateAddress(BASETOKENID, utils.ToID([]byte(Name+"-base-token")))
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
