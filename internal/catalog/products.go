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

package catalog

import (
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// Product is a catalog entry as stored on chain. Rich media and long-form
// detail live in the pinned content behind ContentRef.
type Product struct {
	ID                *tctypes.BigInt    `json:"id"`
	Exporter          string             `json:"exporter"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Category          string             `json:"category"`
	PricePerUnit      *tctypes.BigInt    `json:"pricePerUnit"`
	AvailableQuantity *tctypes.BigInt    `json:"availableQuantity"`
	ContentRef        string             `json:"ipfsHash,omitempty"`
	Active            bool               `json:"active"`
	CreatedAt         *tctypes.BigInt    `json:"createdAt"`
	Metadata          tctypes.JSONObject `json:"metadata,omitempty"`
}

// ProductInput is the user-supplied listing data. The price is a decimal
// currency string, converted exactly to base units at the boundary.
type ProductInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	PricePerUnit string `json:"pricePerUnit"`
	Quantity     uint64 `json:"quantity"`
	ContentRef   string `json:"ipfsHash,omitempty"`
}

func productFromOutput(output tctypes.JSONObject) *Product {
	product := &Product{
		Exporter:    output.GetString("exporter"),
		Name:        output.GetString("name"),
		Description: output.GetString("description"),
		Category:    output.GetString("category"),
		ContentRef:  output.GetString("ipfsHash"),
		Active:      output.GetBool("active"),
	}
	product.ID, _ = output.GetBigInt("id")
	product.PricePerUnit, _ = output.GetBigInt("pricePerUnit")
	product.AvailableQuantity, _ = output.GetBigInt("availableQuantity")
	product.CreatedAt, _ = output.GetBigInt("createdAt")
	return product
}
