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

package collab

import (
	"context"

	"github.com/tradechain-io/tradechain/internal/i18n"
)

// RequestStatus is the lifecycle state of a collaboration request, matching
// the on-chain enum
type RequestStatus uint8

const (
	StatusPending         RequestStatus = 0
	StatusSampleSent      RequestStatus = 1
	StatusQualityApproved RequestStatus = 2
	StatusQualityRejected RequestStatus = 3
	StatusOrderPlaced     RequestStatus = 4
	StatusCompleted       RequestStatus = 5
	StatusCancelled       RequestStatus = 6
)

var statusLabels = map[RequestStatus]string{
	StatusPending:         "Pending",
	StatusSampleSent:      "Sample Sent",
	StatusQualityApproved: "Quality Approved",
	StatusQualityRejected: "Quality Rejected",
	StatusOrderPlaced:     "Order Placed",
	StatusCompleted:       "Completed",
	StatusCancelled:       "Cancelled",
}

// Label returns the display name of a status
func (s RequestStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// ClassifyStatus maps a raw on-chain value to a status, failing closed on
// anything outside the known range
func ClassifyStatus(ctx context.Context, value int64) (RequestStatus, error) {
	if value < 0 || value > int64(StatusCancelled) {
		return StatusPending, i18n.NewError(ctx, i18n.MsgUnknownRequestStatus, value)
	}
	return RequestStatus(value), nil
}
