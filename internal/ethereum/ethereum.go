// Copyright © 2025 TradeChain Project
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ethereum

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/internal/restclient"
	"github.com/tradechain-io/tradechain/internal/wsclient"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// Ethereum routes wallet interactions to a host wallet JSON-RPC endpoint,
// and contract reads/writes to a gateway that performs the ABI encoding and
// transaction tracking. No key material ever enters this process.
type Ethereum struct {
	ctx          context.Context
	topic        string
	capabilities *blockchain.Capabilities
	wallet       *resty.Client
	gateway      *resty.Client
	gatewayWS    *wsclient.WSConfig
}

var addressVerify = regexp.MustCompile("^[0-9a-f]{40}$")

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage      `json:"result"`
	Error  *blockchain.RPCError `json:"error,omitempty"`
}

type gatewayHeaders struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type gatewayRequest struct {
	Headers gatewayHeaders       `json:"headers"`
	From    string               `json:"from,omitempty"`
	To      string               `json:"to"`
	Method  *blockchain.ABIEntry `json:"method"`
	Params  []interface{}        `json:"params"`
	Value   string               `json:"value,omitempty"`
}

func (e *Ethereum) Name() string {
	return "ethereum"
}

func (e *Ethereum) Init(ctx context.Context, prefix config.Prefix) error {
	e.ctx = log.WithLogField(ctx, "proto", "ethereum")
	walletPrefix := prefix.SubPrefix(WalletConfigKey)
	gatewayPrefix := prefix.SubPrefix(GatewayConfigKey)

	if walletPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgWalletNotAvailable)
	}

	e.wallet = restclient.New(e.ctx, walletPrefix)
	e.gateway = restclient.New(e.ctx, gatewayPrefix)
	e.gatewayWS = wsclient.GenerateConfigFromPrefix(gatewayPrefix)
	e.topic = gatewayPrefix.GetString(GatewayConfigTopic)
	e.capabilities = &blockchain.Capabilities{
		EventStreams: e.gateway != nil,
	}
	return nil
}

func (e *Ethereum) Capabilities() *blockchain.Capabilities {
	return e.capabilities
}

// Topic is the event stream topic the gateway delivers events on
func (e *Ethereum) Topic() string {
	return e.topic
}

// EventStreamConfig is the websocket configuration for the gateway event stream
func (e *Ethereum) EventStreamConfig() *wsclient.WSConfig {
	return e.gatewayWS
}

// GatewayClient gives access to the gateway REST API, for subscription management
func (e *Ethereum) GatewayClient() *resty.Client {
	return e.gateway
}

func validateEthAddress(ctx context.Context, address string) (string, error) {
	stripped := strings.ToLower(strings.TrimPrefix(address, "0x"))
	if !addressVerify.MatchString(stripped) {
		return "", i18n.NewError(ctx, i18n.MsgInvalidEthAddress)
	}
	return "0x" + stripped, nil
}

// Request performs a raw JSON-RPC 2.0 request against the host wallet.
// RPC error objects are returned unwrapped, so callers can classify the code.
func (e *Ethereum) Request(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	var rpcRes rpcResponse
	res, err := e.wallet.R().
		SetContext(ctx).
		SetBody(&rpcRequest{
			JSONRPC: "2.0",
			ID:      uuid.New().String(),
			Method:  method,
			Params:  params,
		}).
		SetResult(&rpcRes).
		Post("/")
	if err != nil || !res.IsSuccess() {
		return nil, restclient.WrapRestErr(ctx, res, err, i18n.MsgRESTRequestFailed)
	}
	if rpcRes.Error != nil && rpcRes.Error.Code != 0 {
		log.L(ctx).Errorf("JSON-RPC '%s' returned error %d: %s", method, rpcRes.Error.Code, rpcRes.Error.Message)
		return nil, rpcRes.Error
	}
	return rpcRes.Result, nil
}

// Query performs a read-only contract call via the gateway
func (e *Ethereum) Query(ctx context.Context, to string, method *blockchain.ABIEntry, params []interface{}) (tctypes.JSONObject, error) {
	if to == "" {
		return nil, i18n.NewError(ctx, i18n.MsgContractNotConfigured, method.Name)
	}
	to, err := validateEthAddress(ctx, to)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = []interface{}{}
	}
	res, err := e.gateway.R().
		SetContext(ctx).
		SetBody(&gatewayRequest{
			Headers: gatewayHeaders{
				ID:   uuid.New().String(),
				Type: "Query",
			},
			To:     to,
			Method: method,
			Params: params,
		}).
		Post("/")
	if err != nil || !res.IsSuccess() {
		restErr := restclient.WrapRestErr(ctx, res, err, i18n.MsgRESTRequestFailed)
		return nil, i18n.NewError(ctx, i18n.MsgReadFailed, method.Name, restErr)
	}
	var output interface{}
	if err := json.Unmarshal(res.Body(), &output); err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgReadFailed, method.Name, err)
	}
	switch vt := output.(type) {
	case map[string]interface{}:
		return tctypes.JSONObject(vt), nil
	default:
		// Single unnamed return values come back as a bare scalar
		return tctypes.JSONObject{"output": output}, nil
	}
}

// Signer returns a transaction-submission handle bound to the given account
func (e *Ethereum) Signer(address string) blockchain.Signer {
	return &ethSigner{e: e, address: address}
}

type ethSigner struct {
	e       *Ethereum
	address string
}

func (s *ethSigner) Address() string {
	return s.address
}

func (s *ethSigner) Invoke(ctx context.Context, to string, method *blockchain.ABIEntry, params []interface{}, value *tctypes.BigInt) (*blockchain.Receipt, error) {
	if to == "" {
		return nil, i18n.NewError(ctx, i18n.MsgContractNotConfigured, method.Name)
	}
	to, err := validateEthAddress(ctx, to)
	if err != nil {
		return nil, err
	}
	from, err := validateEthAddress(ctx, s.address)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = []interface{}{}
	}
	body := &gatewayRequest{
		Headers: gatewayHeaders{
			ID:   uuid.New().String(),
			Type: "SendTransaction",
		},
		From:   from,
		To:     to,
		Method: method,
		Params: params,
	}
	if value != nil {
		body.Value = value.String()
	}
	log.L(ctx).Debugf("Invoking %s on %s from %s (value=%s)", method.Name, to, from, body.Value)
	res, err := s.e.gateway.R().
		SetContext(ctx).
		SetBody(body).
		Post("/")
	if err != nil || !res.IsSuccess() {
		restErr := restclient.WrapRestErr(ctx, res, err, i18n.MsgRESTRequestFailed)
		return nil, i18n.NewError(ctx, i18n.MsgWriteFailed, method.Name, restErr)
	}
	var receipt blockchain.Receipt
	if err := json.Unmarshal(res.Body(), &receipt); err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgBadReceiptResponse, err)
	}
	if !receiptSucceeded(&receipt) {
		return nil, i18n.NewError(ctx, i18n.MsgWriteFailed, method.Name, "transaction reverted")
	}
	log.L(ctx).Infof("Transaction %s mined in block %s", receipt.TransactionHash, receipt.BlockNumber)
	return &receipt, nil
}

func receiptSucceeded(receipt *blockchain.Receipt) bool {
	switch receipt.Status {
	case "1", "0x1", "success":
		return true
	default:
		return false
	}
}
