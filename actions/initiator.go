// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/storage"
)

// resolveInitiator decides whose account a swap is credited to. With an
// operator configured, only the operator may swap and it may name any
// initiator (defaulting to itself); without one, the actor swaps for
// itself and naming another account is rejected. [initiator] is optional,
// with codec.EmptyAddress meaning unset.
func resolveInitiator(
	ctx context.Context,
	im state.Immutable,
	actor codec.Address,
	initiator codec.Address,
) (codec.Address, error) {
	operator, ok, err := storage.GetOperator(ctx, im)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if ok {
		if actor != operator {
			return codec.EmptyAddress, ErrOutputOnlyOperator
		}
		if initiator != codec.EmptyAddress {
			return initiator, nil
		}
		return operator, nil
	}
	if initiator != codec.EmptyAddress && initiator != actor {
		return codec.EmptyAddress, ErrOutputNoOperator
	}
	return actor, nil
}
