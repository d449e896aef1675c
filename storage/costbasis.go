// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"curvevm/safemath"
)

// Cost basis tracks, per account, the total quote-denominated cost of the
// base tokens it holds. Transfers move cost proportionally to the amount
// moved so the sender's average cost per unit is preserved.

// DebitCostBasis removes the price-weighted share of the sender's total
// cost for [delta] base tokens leaving a balance of [balanceBefore].
// Sending the entire balance removes the entire cost exactly, so rounding
// dust cannot strand residual cost on an emptied account.
func DebitCostBasis(
	ctx context.Context,
	mu state.Mutable,
	sender codec.Address,
	delta *uint256.Int,
	balanceBefore *uint256.Int,
	quoteDecimals uint8,
) error {
	if delta.IsZero() || balanceBefore.IsZero() {
		return nil
	}
	stats, err := GetAccountStatsNoController(ctx, mu, sender)
	if err != nil {
		return err
	}
	if delta.Eq(balanceBefore) {
		// Emptied accounts reset exactly, never to a rounding residue
		stats.TotalCost = new(uint256.Int)
		return SetAccountStats(ctx, mu, sender, stats)
	}
	scale := safemath.Pow10(quoteDecimals)
	costPerUnit, err := safemath.MulRatio(stats.TotalCost, scale, balanceBefore)
	if err != nil {
		return err
	}
	removed, err := safemath.MulRatio(delta, costPerUnit, scale)
	if err != nil {
		return err
	}
	if stats.TotalCost, err = safemath.Sub(stats.TotalCost, removed); err != nil {
		return err
	}
	return SetAccountStats(ctx, mu, sender, stats)
}

// CreditCostBasis adds [cost] quote units to the recipient's total cost.
func CreditCostBasis(
	ctx context.Context,
	mu state.Mutable,
	recipient codec.Address,
	cost *uint256.Int,
) error {
	if cost.IsZero() {
		return nil
	}
	stats, err := GetAccountStatsNoController(ctx, mu, recipient)
	if err != nil {
		return err
	}
	if stats.TotalCost, err = safemath.Add(stats.TotalCost, cost); err != nil {
		return err
	}
	return SetAccountStats(ctx, mu, recipient, stats)
}
