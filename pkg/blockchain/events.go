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
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// ExtractEventID scans the decoded logs of a receipt for the named event,
// and returns the value of the given argument as an integer ID. The second
// return is false when no matching event carries a usable value, which
// callers treat as "transaction succeeded, ID unknown" rather than a failure.
func ExtractEventID(receipt *Receipt, eventName, argName string) (*tctypes.BigInt, bool) {
	if receipt == nil {
		return nil, false
	}
	for _, l := range receipt.Events {
		if l == nil || l.Event != eventName {
			continue
		}
		if id, ok := l.Args.GetBigInt(argName); ok {
			return id, true
		}
	}
	return nil, false
}
