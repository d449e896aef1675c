// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	TransferComputeUnits      = 1
	CreatePoolComputeUnits    = 1
	BuyComputeUnits           = 1
	SellComputeUnits          = 1
	TransferTokenComputeUnits = 1
	MintTokenComputeUnits     = 1
	BurnTokenComputeUnits     = 1
)
