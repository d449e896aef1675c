// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "errors"

var (
	ErrTooMuchSlippage = errors.New("exceeded slippage tolerance")
	ErrReservesZero    = errors.New("reserves are zero")
)
