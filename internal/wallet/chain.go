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
	"strings"

	"github.com/tradechain-io/tradechain/internal/config"
)

// Chain describes the network the dashboard operates on, as registered
// with the host wallet when it does not already know the chain
type Chain struct {
	ID        string
	Name      string
	RPCUrls   []string
	Currency  ChainCurrency
	Explorers []string
}

type ChainCurrency struct {
	Name     string
	Symbol   string
	Decimals int
}

// ChainFromConfig builds the target chain from the root configuration
func ChainFromConfig() *Chain {
	chain := &Chain{
		ID:   config.GetString(config.ChainID),
		Name: config.GetString(config.ChainName),
		Currency: ChainCurrency{
			Name:     config.GetString(config.ChainCurrencyName),
			Symbol:   config.GetString(config.ChainCurrencySymbol),
			Decimals: config.GetInt(config.ChainCurrencyDecimals),
		},
	}
	if rpcURL := config.GetString(config.ChainRPCUrl); rpcURL != "" {
		chain.RPCUrls = []string{rpcURL}
	}
	if explorerURL := config.GetString(config.ChainExplorerURL); explorerURL != "" {
		chain.Explorers = []string{explorerURL}
	}
	return chain
}

// Matches compares chain IDs as hex quantities, tolerating 0x prefix and case
func (c *Chain) Matches(chainID string) bool {
	return normalizeChainID(chainID) == normalizeChainID(c.ID)
}

func normalizeChainID(chainID string) string {
	normalized := strings.ToLower(strings.TrimPrefix(strings.ToLower(chainID), "0x"))
	return strings.TrimLeft(normalized, "0")
}

// switchParams is the wallet_switchEthereumChain parameter object
func (c *Chain) switchParams() interface{} {
	return map[string]interface{}{
		"chainId": c.ID,
	}
}

// addParams is the wallet_addEthereumChain parameter object
func (c *Chain) addParams() interface{} {
	return map[string]interface{}{
		"chainId":   c.ID,
		"chainName": c.Name,
		"nativeCurrency": map[string]interface{}{
			"name":     c.Currency.Name,
			"symbol":   c.Currency.Symbol,
			"decimals": c.Currency.Decimals,
		},
		"rpcUrls":           c.RPCUrls,
		"blockExplorerUrls": c.Explorers,
	}
}
