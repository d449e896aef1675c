// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/holiman/uint256"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/hypersdk/state"

	"curvevm/safemath"

	hconsts "github.com/ava-labs/hypersdk/consts"
)

// OHLCBar is one fixed-interval candlestick. Prices are quote-per-base
// scaled by the quote token's decimals; volumes are raw amounts.
type OHLCBar struct {
	Start       int64
	Open        *uint256.Int
	High        *uint256.Int
	Low         *uint256.Int
	Close       *uint256.Int
	VolumeBase  *uint256.Int
	VolumeQuote *uint256.Int
	N           uint64
}

// OHLCBucket maps a block timestamp (milliseconds) to the start of its
// bucket in seconds.
func OHLCBucket(timestampMs int64) int64 {
	secs := timestampMs / 1000
	return secs - secs%OHLCBucketSeconds
}

func OHLCKey(bucketStart int64) []byte {
	k := make([]byte, 1+hconsts.Uint64Len+hconsts.Uint16Len)
	k[0] = ohlcPrefix
	binary.BigEndian.PutUint64(k[1:], uint64(bucketStart))
	binary.BigEndian.PutUint16(k[1+hconsts.Uint64Len:], OHLCChunks)
	return k
}

// [open] + [high] + [low] + [close] + [volumeBase] + [volumeQuote] + [n]
const ohlcValueLen = 6*Uint128Len + hconsts.Uint64Len

func SetOHLCBar(
	ctx context.Context,
	mu state.Mutable,
	bar *OHLCBar,
) error {
	v := make([]byte, ohlcValueLen)
	putUint128(v, bar.Open)
	putUint128(v[Uint128Len:], bar.High)
	putUint128(v[2*Uint128Len:], bar.Low)
	putUint128(v[3*Uint128Len:], bar.Close)
	putUint128(v[4*Uint128Len:], bar.VolumeBase)
	putUint128(v[5*Uint128Len:], bar.VolumeQuote)
	binary.BigEndian.PutUint64(v[6*Uint128Len:], bar.N)
	return mu.Insert(ctx, OHLCKey(bar.Start), v)
}

func GetOHLCBarNoController(
	ctx context.Context,
	im state.Immutable,
	bucketStart int64,
) (*OHLCBar, bool, error) {
	v, err := im.GetValue(ctx, OHLCKey(bucketStart))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return innerGetOHLCBar(bucketStart, v), true, nil
}

// MaxOHLCRangeBuckets caps a single range query at one day of bars.
const MaxOHLCRangeBuckets = 1440

// GetOHLCRangeFromState batch-reads the bars whose buckets fall in
// [start, end), skipping empty buckets. Ranges wider than
// MaxOHLCRangeBuckets are truncated. Used to serve RPC queries.
func GetOHLCRangeFromState(
	ctx context.Context,
	f ReadState,
	start int64,
	end int64,
) ([]*OHLCBar, error) {
	start = start - start%OHLCBucketSeconds
	if limit := start + MaxOHLCRangeBuckets*OHLCBucketSeconds; end > limit {
		end = limit
	}
	keys := [][]byte{}
	buckets := []int64{}
	for b := start; b < end; b += OHLCBucketSeconds {
		keys = append(keys, OHLCKey(b))
		buckets = append(buckets, b)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	values, errs := f(ctx, keys)
	bars := []*OHLCBar{}
	for i, v := range values {
		if errors.Is(errs[i], database.ErrNotFound) {
			continue
		}
		if errs[i] != nil {
			return nil, errs[i]
		}
		bars = append(bars, innerGetOHLCBar(buckets[i], v))
	}
	return bars, nil
}

func innerGetOHLCBar(bucketStart int64, v []byte) *OHLCBar {
	return &OHLCBar{
		Start:       bucketStart,
		Open:        readUint128(v),
		High:        readUint128(v[Uint128Len:]),
		Low:         readUint128(v[2*Uint128Len:]),
		Close:       readUint128(v[3*Uint128Len:]),
		VolumeBase:  readUint128(v[4*Uint128Len:]),
		VolumeQuote: readUint128(v[5*Uint128Len:]),
		N:           binary.BigEndian.Uint64(v[6*Uint128Len:]),
	}
}

// UpsertOHLCBar folds one swap into the bucket covering [timestampMs].
// The first swap in a bucket seeds all four prices; later swaps extend
// the high/low, overwrite the close, and accumulate volume.
func UpsertOHLCBar(
	ctx context.Context,
	mu state.Mutable,
	timestampMs int64,
	price *uint256.Int,
	volumeBase *uint256.Int,
	volumeQuote *uint256.Int,
) error {
	bucket := OHLCBucket(timestampMs)
	bar, ok, err := GetOHLCBarNoController(ctx, mu, bucket)
	if err != nil {
		return err
	}
	if !ok {
		return SetOHLCBar(ctx, mu, &OHLCBar{
			Start:       bucket,
			Open:        price,
			High:        price,
			Low:         price,
			Close:       price,
			VolumeBase:  volumeBase,
			VolumeQuote: volumeQuote,
			N:           1,
		})
	}
	if price.Gt(bar.High) {
		bar.High = price
	}
	if price.Lt(bar.Low) {
		bar.Low = price
	}
	bar.Close = price
	if bar.VolumeBase, err = safemath.Add(bar.VolumeBase, volumeBase); err != nil {
		return err
	}
	if bar.VolumeQuote, err = safemath.Add(bar.VolumeQuote, volumeQuote); err != nil {
		return err
	}
	bar.N++
	return SetOHLCBar(ctx, mu, bar)
}
