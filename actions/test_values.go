// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/hypersdk/codec"
)

const (
	TokenName     = "CurveCoin"
	TokenSymbol   = "CC"
	TokenDecimals = 9
	TokenMetadata = "The base asset of the bonding curve" // #nosec G101

	TooLargeTokenName     = "Lorem ipsum dolor sit amet, consectetur adipiscing elit pharetra." // #nosec G101
	TooLargeTokenSymbol   = "AAAAAAAAA"
	TooLargeTokenMetadata = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Etiam gravida mauris vitae tortor vehicula dictum. Maecenas rhoncus magna sed justo euismod, eu cursus nunc dapibus. Nunc vestibulum metus sit amet eros pellentesque blandit non at lacus. Ut at donec." // #nosec G101

	// InitialBaseReserve and InitialVirtualQuoteReserve give k = 10^9.
	InitialBaseReserve         = 1_000_000
	InitialVirtualQuoteReserve = 1_000

	InitialSwapValue = 100
	InitialFunding   = 1_000_000
)

func defaultCreatePool(feeRecipient codec.Address, operator codec.Address, buyFeePPM uint64, sellFeePPM uint64) *CreatePool {
	return &CreatePool{
		Name:                []byte(TokenName),
		Symbol:              []byte(TokenSymbol),
		Metadata:            []byte(TokenMetadata),
		Decimals:            TokenDecimals,
		BaseReserve:         InitialBaseReserve,
		VirtualQuoteReserve: InitialVirtualQuoteReserve,
		BuyFeePPM:           buyFeePPM,
		SellFeePPM:          sellFeePPM,
		FeeRecipient:        feeRecipient,
		Operator:            operator,
	}
}
