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
	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/internal/restclient"
	"github.com/tradechain-io/tradechain/internal/wsclient"
)

const (
	defaultTopic = "tradechain"
)

const (
	// WalletConfigKey is the sub-section holding the host wallet JSON-RPC endpoint
	WalletConfigKey = "wallet"
	// GatewayConfigKey is the sub-section holding the contract gateway endpoint
	GatewayConfigKey = "gateway"

	// GatewayConfigTopic is the event stream topic to subscribe to
	GatewayConfigTopic = "topic"
)

func (e *Ethereum) InitPrefix(prefix config.Prefix) {
	walletPrefix := prefix.SubPrefix(WalletConfigKey)
	restclient.InitPrefix(walletPrefix)
	gatewayPrefix := prefix.SubPrefix(GatewayConfigKey)
	wsclient.InitPrefix(gatewayPrefix)
	gatewayPrefix.AddKnownKey(GatewayConfigTopic, defaultTopic)
}
