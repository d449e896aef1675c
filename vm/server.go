// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"

	"curvevm/consts"
	"curvevm/safemath"
	"curvevm/storage"
)

const JSONRPCEndpoint = "/curveapi"

var _ api.HandlerFactory[api.VM] = (*jsonRPCServerFactory)(nil)

type jsonRPCServerFactory struct{}

func (jsonRPCServerFactory) New(vm api.VM) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(consts.Name, NewJSONRPCServer(vm))
	return api.Handler{
		Path:    JSONRPCEndpoint,
		Handler: handler,
	}, err
}

type JSONRPCServer struct {
	vm api.VM
}

func NewJSONRPCServer(vm api.VM) *JSONRPCServer {
	return &JSONRPCServer{vm: vm}
}

type GenesisReply struct {
	Genesis *genesis.DefaultGenesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.vm.Genesis().(*genesis.DefaultGenesis)
	return nil
}

type GetBalanceArgs struct {
	Address codec.Address `json:"address"`
}

type GetBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetBalance(req *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetBalance")
	defer span.End()

	balance, err := storage.GetBalanceFromState(ctx, j.vm.ReadState, args.Address)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type GetTokenBalanceArgs struct {
	Address codec.Address `json:"address"`
}

type GetTokenBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetTokenBalance(req *http.Request, args *GetTokenBalanceArgs, reply *GetTokenBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenBalance")
	defer span.End()

	balance, err := storage.GetTokenBalanceFromState(ctx, j.vm.ReadState, args.Address)
	if err != nil {
		return err
	}
	reply.Balance, err = safemath.ToUint64(balance)
	return err
}

type GetAccountStatsArgs struct {
	Address codec.Address `json:"address"`
}

type GetAccountStatsReply struct {
	NBuys       uint64 `json:"nBuys"`
	NSells      uint64 `json:"nSells"`
	NetQuoteIn  uint64 `json:"netQuoteIn"`
	NetQuoteOut uint64 `json:"netQuoteOut"`
	NetBaseIn   uint64 `json:"netBaseIn"`
	NetBaseOut  uint64 `json:"netBaseOut"`
	TotalCost   uint64 `json:"totalCost"`
}

func (j *JSONRPCServer) GetAccountStats(req *http.Request, args *GetAccountStatsArgs, reply *GetAccountStatsReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetAccountStats")
	defer span.End()

	stats, err := storage.GetAccountStatsFromState(ctx, j.vm.ReadState, args.Address)
	if err != nil {
		return err
	}
	reply.NBuys = stats.NBuys
	reply.NSells = stats.NSells
	if reply.NetQuoteIn, err = safemath.ToUint64(stats.NetQuoteIn); err != nil {
		return err
	}
	if reply.NetQuoteOut, err = safemath.ToUint64(stats.NetQuoteOut); err != nil {
		return err
	}
	if reply.NetBaseIn, err = safemath.ToUint64(stats.NetBaseIn); err != nil {
		return err
	}
	if reply.NetBaseOut, err = safemath.ToUint64(stats.NetBaseOut); err != nil {
		return err
	}
	reply.TotalCost, err = safemath.ToUint64(stats.TotalCost)
	return err
}

type SwapStatsReply struct {
	N            uint64        `json:"n"`
	HasMax       bool          `json:"hasMax"`
	MaxAmount    uint64        `json:"maxAmount"`
	MaxInitiator codec.Address `json:"maxInitiator"`
	MaxTimestamp int64         `json:"maxTimestamp"`
}

type GetOverviewReply struct {
	PoolAddress      codec.Address `json:"poolAddress"`
	BaseTokenAddress codec.Address `json:"baseTokenAddress"`

	TokenName     string        `json:"tokenName"`
	TokenSymbol   string        `json:"tokenSymbol"`
	TokenDecimals uint8         `json:"tokenDecimals"`
	TokenMetadata string        `json:"tokenMetadata"`
	TotalSupply   uint64        `json:"totalSupply"`
	TokenOwner    codec.Address `json:"tokenOwner"`

	BaseReserve         uint64 `json:"baseReserve"`
	QuoteReserve        uint64 `json:"quoteReserve"`
	VirtualQuoteReserve uint64 `json:"virtualQuoteReserve"`
	QuoteDecimals       uint8  `json:"quoteDecimals"`
	K                   string `json:"k"`

	BuyFeePPM    uint64        `json:"buyFeePPM"`
	SellFeePPM   uint64        `json:"sellFeePPM"`
	FeeRecipient codec.Address `json:"feeRecipient"`
	NetTakerFee  uint64        `json:"netTakerFee"`
	NetMakerFee  uint64        `json:"netMakerFee"`

	TakerStats SwapStatsReply `json:"takerStats"`
	MakerStats SwapStatsReply `json:"makerStats"`
}

func (j *JSONRPCServer) GetOverview(req *http.Request, _ *struct{}, reply *GetOverviewReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetOverview")
	defer span.End()

	name, symbol, decimals, metadata, totalSupply, owner, err := storage.GetTokenInfoFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	curve, err := storage.GetCurveFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	virtualQuoteReserve, err := storage.GetVirtualQuoteReserveFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	buyFeePPM, sellFeePPM, feeRecipient, err := storage.GetFeeConfigFromState(ctx, j.vm.ReadState)
	if err != nil {
		return err
	}
	netTakerFee, err := storage.GetNetFeeFromState(ctx, j.vm.ReadState, storage.Taker)
	if err != nil {
		return err
	}
	netMakerFee, err := storage.GetNetFeeFromState(ctx, j.vm.ReadState, storage.Maker)
	if err != nil {
		return err
	}
	takerStats, err := storage.GetSwapStatsFromState(ctx, j.vm.ReadState, storage.Taker)
	if err != nil {
		return err
	}
	makerStats, err := storage.GetSwapStatsFromState(ctx, j.vm.ReadState, storage.Maker)
	if err != nil {
		return err
	}

	reply.PoolAddress = consts.PoolAddress
	reply.BaseTokenAddress = consts.BaseTokenAddress
	reply.TokenName = string(name)
	reply.TokenSymbol = string(symbol)
	reply.TokenDecimals = decimals
	reply.TokenMetadata = string(metadata)
	if reply.TotalSupply, err = safemath.ToUint64(totalSupply); err != nil {
		return err
	}
	reply.TokenOwner = owner
	if reply.BaseReserve, err = safemath.ToUint64(curve.BaseReserve); err != nil {
		return err
	}
	if reply.QuoteReserve, err = safemath.ToUint64(curve.QuoteReserve); err != nil {
		return err
	}
	if reply.VirtualQuoteReserve, err = safemath.ToUint64(virtualQuoteReserve); err != nil {
		return err
	}
	reply.QuoteDecimals = curve.QuoteDecimals
	// k is a full 256-bit product and does not fit the uint64 wire fields
	reply.K = curve.K.String()
	reply.BuyFeePPM = buyFeePPM
	reply.SellFeePPM = sellFeePPM
	reply.FeeRecipient = feeRecipient
	if reply.NetTakerFee, err = safemath.ToUint64(netTakerFee); err != nil {
		return err
	}
	if reply.NetMakerFee, err = safemath.ToUint64(netMakerFee); err != nil {
		return err
	}
	if reply.TakerStats, err = newSwapStatsReply(takerStats); err != nil {
		return err
	}
	reply.MakerStats, err = newSwapStatsReply(makerStats)
	return err
}

func newSwapStatsReply(stats *storage.SwapStats) (SwapStatsReply, error) {
	maxAmount, err := safemath.ToUint64(stats.MaxAmount)
	if err != nil {
		return SwapStatsReply{}, err
	}
	return SwapStatsReply{
		N:            stats.N,
		HasMax:       stats.HasMax,
		MaxAmount:    maxAmount,
		MaxInitiator: stats.MaxInitiator,
		MaxTimestamp: stats.MaxTimestamp,
	}, nil
}

type GetOHLCArgs struct {
	// Start and End bound the requested buckets in unix seconds,
	// [Start, End).
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type OHLCBarReply struct {
	Start       int64  `json:"start"`
	Open        uint64 `json:"open"`
	High        uint64 `json:"high"`
	Low         uint64 `json:"low"`
	Close       uint64 `json:"close"`
	VolumeBase  uint64 `json:"volumeBase"`
	VolumeQuote uint64 `json:"volumeQuote"`
	N           uint64 `json:"n"`
}

type GetOHLCReply struct {
	Bars []OHLCBarReply `json:"bars"`
}

func (j *JSONRPCServer) GetOHLC(req *http.Request, args *GetOHLCArgs, reply *GetOHLCReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetOHLC")
	defer span.End()

	bars, err := storage.GetOHLCRangeFromState(ctx, j.vm.ReadState, args.Start, args.End)
	if err != nil {
		return err
	}
	reply.Bars = make([]OHLCBarReply, 0, len(bars))
	for _, bar := range bars {
		r := OHLCBarReply{
			Start: bar.Start,
			N:     bar.N,
		}
		if r.Open, err = safemath.ToUint64(bar.Open); err != nil {
			return err
		}
		if r.High, err = safemath.ToUint64(bar.High); err != nil {
			return err
		}
		if r.Low, err = safemath.ToUint64(bar.Low); err != nil {
			return err
		}
		if r.Close, err = safemath.ToUint64(bar.Close); err != nil {
			return err
		}
		if r.VolumeBase, err = safemath.ToUint64(bar.VolumeBase); err != nil {
			return err
		}
		if r.VolumeQuote, err = safemath.ToUint64(bar.VolumeQuote); err != nil {
			return err
		}
		reply.Bars = append(reply.Bars, r)
	}
	return nil
}
