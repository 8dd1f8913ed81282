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

	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
)

// EnsureChain verifies the wallet is on the target chain, asking it to switch
// when it is not. A chain the wallet does not know is registered first, with
// at most one registration attempt per call.
func EnsureChain(ctx context.Context, provider blockchain.Provider, chain *Chain) error {
	l := log.L(ctx)

	res, err := provider.Request(ctx, "eth_chainId")
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgNetworkSwitchFailed, chain.ID)
	}
	var currentID string
	if err := json.Unmarshal(res, &currentID); err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgNetworkSwitchFailed, chain.ID)
	}
	if chain.Matches(currentID) {
		l.Debugf("Wallet already on chain %s", chain.ID)
		return nil
	}

	l.Infof("Wallet on chain %s, switching to %s", currentID, chain.ID)
	_, err = provider.Request(ctx, "wallet_switchEthereumChain", chain.switchParams())
	if err == nil {
		return nil
	}

	switch blockchain.ErrorCode(err) {
	case blockchain.CodeUserRejected:
		return i18n.NewError(ctx, i18n.MsgUserRejected)
	case blockchain.CodeChainNotAdded:
		// The wallet has never seen this chain. Register it, then switch again.
		l.Infof("Chain %s not known to the wallet, registering it", chain.ID)
		if _, err = provider.Request(ctx, "wallet_addEthereumChain", chain.addParams()); err != nil {
			if blockchain.ErrorCode(err) == blockchain.CodeUserRejected {
				return i18n.NewError(ctx, i18n.MsgUserRejected)
			}
			return i18n.WrapError(ctx, err, i18n.MsgNetworkAddFailed, chain.ID)
		}
		if _, err = provider.Request(ctx, "wallet_switchEthereumChain", chain.switchParams()); err != nil {
			if blockchain.ErrorCode(err) == blockchain.CodeUserRejected {
				return i18n.NewError(ctx, i18n.MsgUserRejected)
			}
			return i18n.WrapError(ctx, err, i18n.MsgNetworkSwitchFailed, chain.ID)
		}
		return nil
	default:
		return i18n.WrapError(ctx, err, i18n.MsgNetworkSwitchFailed, chain.ID)
	}
}
