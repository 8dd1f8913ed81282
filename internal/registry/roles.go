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

package registry

import (
	"context"

	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// Role is the on-chain role of an account, matching the contract enum
type Role uint8

const (
	RoleNone              Role = 0
	RoleImporter          Role = 1
	RoleExporter          Role = 2
	RoleMicroManufacturer Role = 3
)

var roleLabels = map[Role]string{
	RoleNone:              "user",
	RoleImporter:          "importer",
	RoleExporter:          "exporter",
	RoleMicroManufacturer: "micro-manufacturer",
}

// Activation stakes, in native base units
var roleStakes = map[Role]*tctypes.BigInt{
	RoleImporter:          tctypes.MustParseBaseUnits("0.01"),
	RoleExporter:          tctypes.MustParseBaseUnits("0.05"),
	RoleMicroManufacturer: tctypes.MustParseBaseUnits("0"),
}

func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return "user"
}

// StakeAmount is the deposit required to activate the role
func (r Role) StakeAmount() *tctypes.BigInt {
	if stake, ok := roleStakes[r]; ok {
		return stake
	}
	return tctypes.NewBigInt(0)
}

// ParseRole resolves a UI role string, failing closed: anything that is not
// a known activatable role is an error, never a silent default
func ParseRole(ctx context.Context, label string) (Role, error) {
	switch label {
	case "importer":
		return RoleImporter, nil
	case "exporter":
		return RoleExporter, nil
	case "micro-manufacturer", "manufacturer":
		// Large manufacturers share the on-chain micro-manufacturer role
		return RoleMicroManufacturer, nil
	case "user":
		return RoleNone, nil
	default:
		return RoleNone, i18n.NewError(ctx, i18n.MsgUnknownRole, label)
	}
}

// ClassifyRole converts an on-chain numeric role. Total over all inputs -
// anything outside the contract enum classifies as no role, because this
// feeds UI gating and must never block rendering.
func ClassifyRole(value int64) Role {
	if value < 0 || value > int64(RoleMicroManufacturer) {
		return RoleNone
	}
	return Role(value)
}
