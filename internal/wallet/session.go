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
	"time"
)

// State is the lifecycle of the wallet connection
type State string

const (
	// StateUninitialized before any probe or connect has been attempted
	StateUninitialized State = "uninitialized"
	// StateProbing while a non-prompting session check is in flight
	StateProbing State = "probing"
	// StateConnected when an authorized account is held
	StateConnected State = "connected"
	// StateDisconnected after a probe/connect found no authorized account,
	// or the session was explicitly dropped
	StateDisconnected State = "disconnected"
)

// Session is an authorized wallet connection. Sessions are immutable values;
// the connector replaces the current session rather than mutating it.
type Session struct {
	Account     string    `json:"account"`
	ChainID     string    `json:"chainId"`
	ConnectedAt time.Time `json:"connectedAt"`
}
