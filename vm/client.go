// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"strings"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/requester"

	"curvevm/consts"
)

type JSONRPCClient struct {
	requester *requester.EndpointRequester
	g         *genesis.DefaultGenesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	req := requester.New(uri, consts.Name)
	return &JSONRPCClient{req, nil}
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.DefaultGenesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}

	resp := new(GenesisReply)
	err := cli.requester.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	if err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) GetBalance(ctx context.Context, address codec.Address) (uint64, error) {
	resp := new(GetBalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getBalance",
		&GetBalanceArgs{
			Address: address,
		},
		resp,
	)
	return resp.Balance, err
}

func (cli *JSONRPCClient) GetTokenBalance(ctx context.Context, address codec.Address) (uint64, error) {
	resp := new(GetTokenBalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		"getTokenBalance",
		&GetTokenBalanceArgs{
			Address: address,
		},
		resp,
	)
	return resp.Balance, err
}

func (cli *JSONRPCClient) GetAccountStats(ctx context.Context, address codec.Address) (*GetAccountStatsReply, error) {
	resp := new(GetAccountStatsReply)
	err := cli.requester.SendRequest(
		ctx,
		"getAccountStats",
		&GetAccountStatsArgs{
			Address: address,
		},
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetOverview(ctx context.Context) (*GetOverviewReply, error) {
	resp := new(GetOverviewReply)
	err := cli.requester.SendRequest(
		ctx,
		"getOverview",
		nil,
		resp,
	)
	return resp, err
}

func (cli *JSONRPCClient) GetOHLC(ctx context.Context, start int64, end int64) (*GetOHLCReply, error) {
	resp := new(GetOHLCReply)
	err := cli.requester.SendRequest(
		ctx,
		"getOHLC",
		&GetOHLCArgs{
			Start: start,
			End:   end,
		},
		resp,
	)
	return resp, err
}
