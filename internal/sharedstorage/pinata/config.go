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

package pinata

import (
	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/internal/restclient"
)

const (
	// PinataConfAPISubconf is the http configuration to connect to the Pinata
	// pinning API. The JWT goes in auth.token - never in source.
	PinataConfAPISubconf = "api"
	// PinataConfGatewaySubconf is the http configuration to connect to the
	// IPFS gateway used for retrieval
	PinataConfGatewaySubconf = "gateway"
)

func (p *Pinata) InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix.SubPrefix(PinataConfAPISubconf))
	restclient.InitPrefix(prefix.SubPrefix(PinataConfGatewaySubconf))
}
