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

package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradechain-io/tradechain/mocks/blockchainmocks"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
)

func testChain() *Chain {
	return &Chain{
		ID:   "0xaa36a7",
		Name: "Sepolia Testnet",
		Currency: ChainCurrency{
			Name:     "Sepolia ETH",
			Symbol:   "ETH",
			Decimals: 18,
		},
		RPCUrls: []string{"https://sepolia.example.com"},
	}
}

func TestEnsureChainAlreadyThere(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0xaa36a7"`), nil)

	err := EnsureChain(context.Background(), mp, testChain())
	assert.NoError(t, err)
	mp.AssertNotCalled(t, "Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything)
}

func TestEnsureChainSwitchOK(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil)
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).Return(json.RawMessage(`null`), nil)

	err := EnsureChain(context.Background(), mp, testChain())
	assert.NoError(t, err)
	mp.AssertExpectations(t)
}

func TestEnsureChainSwitchRejected(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil)
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeUserRejected, Message: "User rejected the request"})

	err := EnsureChain(context.Background(), mp, testChain())
	assert.Regexp(t, "TC10121", err)
}

func TestEnsureChainAddThenSwitch(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil)
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeChainNotAdded, Message: "Unrecognized chain ID"}).Once()
	mp.On("Request", mock.Anything, "wallet_addEthereumChain", mock.Anything).Return(json.RawMessage(`null`), nil).Once()
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).Return(json.RawMessage(`null`), nil).Once()

	err := EnsureChain(context.Background(), mp, testChain())
	assert.NoError(t, err)
	mp.AssertExpectations(t)
}

func TestEnsureChainAddRejected(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil)
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeChainNotAdded, Message: "Unrecognized chain ID"})
	mp.On("Request", mock.Anything, "wallet_addEthereumChain", mock.Anything).
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeUserRejected, Message: "User rejected the request"})

	err := EnsureChain(context.Background(), mp, testChain())
	assert.Regexp(t, "TC10121", err)
}

func TestEnsureChainAddFailed(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil)
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeChainNotAdded, Message: "Unrecognized chain ID"})
	mp.On("Request", mock.Anything, "wallet_addEthereumChain", mock.Anything).
		Return(nil, fmt.Errorf("pop"))

	err := EnsureChain(context.Background(), mp, testChain())
	assert.Regexp(t, "TC10124", err)
}

func TestEnsureChainSwitchAfterAddFailed(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil)
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeChainNotAdded, Message: "Unrecognized chain ID"}).Once()
	mp.On("Request", mock.Anything, "wallet_addEthereumChain", mock.Anything).Return(json.RawMessage(`null`), nil).Once()
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(nil, fmt.Errorf("pop")).Once()

	err := EnsureChain(context.Background(), mp, testChain())
	assert.Regexp(t, "TC10123", err)
	// Exactly one registration attempt
	mp.AssertNumberOfCalls(t, "Request", 4)
}

func TestEnsureChainSwitchGenericFailure(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil)
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(nil, fmt.Errorf("pop"))

	err := EnsureChain(context.Background(), mp, testChain())
	assert.Regexp(t, "TC10123", err)
}

func TestEnsureChainIDCheckFailed(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(nil, fmt.Errorf("pop"))

	err := EnsureChain(context.Background(), mp, testChain())
	assert.Regexp(t, "TC10123", err)
}

func TestEnsureChainIDBadJSON(t *testing.T) {
	mp := &blockchainmocks.Provider{}
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`{}`), nil)

	err := EnsureChain(context.Background(), mp, testChain())
	assert.Regexp(t, "TC10123", err)
}
