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
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// Registry is the façade onto the role registry contract, which gates the
// trade operations by staked role
type Registry struct {
	provider blockchain.Provider
	address  string
}

func NewRegistry(provider blockchain.Provider, address string) *Registry {
	return &Registry{
		provider: provider,
		address:  address,
	}
}

// ActivateRole stakes the signing account into the given role. The stake
// amount is fixed per role and attached as the transaction value.
func (r *Registry) ActivateRole(ctx context.Context, signer blockchain.Signer, role Role) (*blockchain.Receipt, error) {
	var method *blockchain.ABIEntry
	var value *tctypes.BigInt
	switch role {
	case RoleImporter:
		method = abiActivateImporter
		value = role.StakeAmount()
	case RoleExporter:
		method = abiActivateExporter
		value = role.StakeAmount()
	case RoleMicroManufacturer:
		method = abiActivateMicroManufacturer
	default:
		return nil, i18n.NewError(ctx, i18n.MsgUnknownRole, role.Label())
	}
	log.L(ctx).Infof("Activating role %s for %s (stake=%s)", role.Label(), signer.Address(), tctypes.FormatBaseUnits(value))
	return signer.Invoke(ctx, r.address, method, nil, value)
}

// GetRole reads the current on-chain role of an account
func (r *Registry) GetRole(ctx context.Context, address string) (Role, error) {
	output, err := r.provider.Query(ctx, r.address, abiGetRole, []interface{}{address})
	if err != nil {
		return RoleNone, err
	}
	return ClassifyRole(output.GetInt64("output")), nil
}

// HasRole checks whether an account holds a specific role
func (r *Registry) HasRole(ctx context.Context, address string, role Role) (bool, error) {
	output, err := r.provider.Query(ctx, r.address, abiHasRole, []interface{}{address, uint8(role)})
	if err != nil {
		return false, err
	}
	return output.GetBool("output"), nil
}

// IsBlacklisted checks the contract blacklist for an account
func (r *Registry) IsBlacklisted(ctx context.Context, address string) (bool, error) {
	output, err := r.provider.Query(ctx, r.address, abiBlacklisted, []interface{}{address})
	if err != nil {
		return false, err
	}
	return output.GetBool("output"), nil
}

// GetContractBalance reads the total staked balance held by the contract
func (r *Registry) GetContractBalance(ctx context.Context) (*tctypes.BigInt, error) {
	output, err := r.provider.Query(ctx, r.address, abiGetContractBalance, nil)
	if err != nil {
		return nil, err
	}
	balance, ok := output.GetBigInt("output")
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgBigIntParseFailed, output.GetString("output"))
	}
	return balance, nil
}
