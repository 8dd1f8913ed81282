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

package blockchain

import (
	"context"
	"encoding/json"

	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// Provider is the interface to a host wallet endpoint. It carries raw
// JSON-RPC requests for account and network management, and routes contract
// reads through the connector so no ABI encoding happens in this process.
type Provider interface {

	// InitPrefix initializes the set of configuration options that are valid,
	// with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Name returns the name of the plugin, for logging
	Name() string

	// Capabilities returns the provider's static capabilities
	Capabilities() *Capabilities

	// Request performs a raw JSON-RPC 2.0 request against the wallet endpoint.
	// RPC-level failures are returned as *RPCError so callers can classify
	// well-known codes (user rejection, pending prompt, unknown chain).
	Request(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)

	// Query performs a read-only contract call via the connector, returning
	// the decoded output values
	Query(ctx context.Context, to string, method *ABIEntry, params []interface{}) (tctypes.JSONObject, error)

	// Signer returns a transaction-submission handle bound to the given
	// authorized account address
	Signer(address string) Signer
}

// Signer submits state-changing transactions from one authorized account
type Signer interface {

	// Address is the checksummed account the transactions are sent from
	Address() string

	// Invoke submits a contract transaction and blocks until it is mined,
	// returning the receipt with any decoded event logs. A nil value means
	// no native currency is attached.
	Invoke(ctx context.Context, to string, method *ABIEntry, params []interface{}, value *tctypes.BigInt) (*Receipt, error)
}

// Capabilities the supported featureset of the provider
type Capabilities struct {
	// EventStreams if the provider can deliver decoded event logs over a websocket
	EventStreams bool
}

// ABIEntry is a single method or event from a contract interface definition,
// passed through verbatim to the connector for encoding
type ABIEntry struct {
	Type            string     `json:"type,omitempty"`
	Name            string     `json:"name"`
	Inputs          []ABIParam `json:"inputs"`
	Outputs         []ABIParam `json:"outputs,omitempty"`
	StateMutability string     `json:"stateMutability,omitempty"`
}

// ABIParam is a parameter of an ABI method or event
type ABIParam struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed,omitempty"`
}

// Receipt is the outcome of a mined transaction
type Receipt struct {
	TransactionHash string             `json:"transactionHash"`
	BlockNumber     *tctypes.BigInt    `json:"blockNumber"`
	Status          string             `json:"status"`
	Events          []*DecodedLog      `json:"events,omitempty"`
	Extra           tctypes.JSONObject `json:"-"`
}

// DecodedLog is one event log from a receipt, decoded by the connector
// against the contract interface
type DecodedLog struct {
	Event string             `json:"event"`
	Args  tctypes.JSONObject `json:"args"`
}
