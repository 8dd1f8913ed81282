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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

func TestExtractEventID(t *testing.T) {
	receipt := &Receipt{
		Status: "1",
		Events: []*DecodedLog{
			{Event: "Transfer", Args: tctypes.JSONObject{"value": "100"}},
			{Event: "OrderPlaced", Args: tctypes.JSONObject{"orderId": "7", "buyer": "0x1234"}},
		},
	}

	id, ok := ExtractEventID(receipt, "OrderPlaced", "orderId")
	assert.True(t, ok)
	assert.Equal(t, "7", id.String())
}

func TestExtractEventIDHexValue(t *testing.T) {
	receipt := &Receipt{
		Events: []*DecodedLog{
			{Event: "ProductListed", Args: tctypes.JSONObject{"productId": "0x0a"}},
		},
	}
	id, ok := ExtractEventID(receipt, "ProductListed", "productId")
	assert.True(t, ok)
	assert.Equal(t, "10", id.String())
}

func TestExtractEventIDNotFound(t *testing.T) {
	_, ok := ExtractEventID(nil, "OrderPlaced", "orderId")
	assert.False(t, ok)

	_, ok = ExtractEventID(&Receipt{}, "OrderPlaced", "orderId")
	assert.False(t, ok)

	// Event present but the argument is missing
	receipt := &Receipt{
		Events: []*DecodedLog{
			{Event: "OrderPlaced", Args: tctypes.JSONObject{"buyer": "0x1234"}},
		},
	}
	_, ok = ExtractEventID(receipt, "OrderPlaced", "orderId")
	assert.False(t, ok)

	// Argument present but not numeric
	receipt = &Receipt{
		Events: []*DecodedLog{
			{Event: "OrderPlaced", Args: tctypes.JSONObject{"orderId": "not-a-number"}},
		},
	}
	_, ok = ExtractEventID(receipt, "OrderPlaced", "orderId")
	assert.False(t, ok)

	// Nil log entries are skipped
	receipt = &Receipt{Events: []*DecodedLog{nil, {Event: "OrderPlaced", Args: tctypes.JSONObject{"orderId": float64(3)}}}}
	id, ok := ExtractEventID(receipt, "OrderPlaced", "orderId")
	assert.True(t, ok)
	assert.Equal(t, "3", id.String())
}

func TestRPCErrorCode(t *testing.T) {
	rpcErr := &RPCError{Code: CodeUserRejected, Message: "User rejected the request"}
	assert.Equal(t, "JSON-RPC error 4001: User rejected the request", rpcErr.Error())
	assert.Equal(t, CodeUserRejected, ErrorCode(rpcErr))
	assert.Equal(t, int64(0), ErrorCode(nil))
	assert.Equal(t, int64(0), ErrorCode(assert.AnError))
}
