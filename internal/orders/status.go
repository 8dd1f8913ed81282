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

package orders

import (
	"context"

	"github.com/tradechain-io/tradechain/internal/i18n"
)

// OrderStatus is the lifecycle state of an order, matching the on-chain enum
type OrderStatus uint8

const (
	StatusPending      OrderStatus = 0
	StatusConfirmed    OrderStatus = 1
	StatusInProduction OrderStatus = 2
	StatusShipped      OrderStatus = 3
	StatusDelivered    OrderStatus = 4
	StatusCancelled    OrderStatus = 5
	StatusDisputed     OrderStatus = 6
)

var statusLabels = map[OrderStatus]string{
	StatusPending:      "Pending",
	StatusConfirmed:    "Confirmed",
	StatusInProduction: "In Production",
	StatusShipped:      "Shipped",
	StatusDelivered:    "Delivered",
	StatusCancelled:    "Cancelled",
	StatusDisputed:     "Disputed",
}

// statusTransitions is the set of moves the dashboard offers. The contract
// is the final authority, this just keeps the UI from offering a transaction
// that is certain to revert.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed:    {StatusInProduction, StatusShipped, StatusCancelled},
	StatusInProduction: {StatusShipped},
	StatusShipped:      {StatusDelivered, StatusDisputed},
}

// Label returns the display name of a status
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// CanTransitionTo checks whether a move to the target status is offered
// from the current one. Terminal states allow no moves.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ClassifyStatus maps a raw on-chain value to a status, failing closed on
// anything outside the known range
func ClassifyStatus(ctx context.Context, value int64) (OrderStatus, error) {
	if value < 0 || value > int64(StatusDisputed) {
		return StatusPending, i18n.NewError(ctx, i18n.MsgUnknownOrderStatus, value)
	}
	return OrderStatus(value), nil
}
