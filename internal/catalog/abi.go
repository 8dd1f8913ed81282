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

import "github.com/tradechain-io/tradechain/pkg/blockchain"

var abiListProduct = &blockchain.ABIEntry{
	Name:            "listProduct",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "name", Type: "string"},
		{Name: "description", Type: "string"},
		{Name: "category", Type: "string"},
		{Name: "pricePerUnit", Type: "uint256"},
		{Name: "quantity", Type: "uint256"},
		{Name: "ipfsHash", Type: "string"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256"},
	},
}

var abiUpdateProduct = &blockchain.ABIEntry{
	Name:            "updateProduct",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "productId", Type: "uint256"},
		{Name: "pricePerUnit", Type: "uint256"},
		{Name: "quantity", Type: "uint256"},
	},
}

var abiDeactivateProduct = &blockchain.ABIEntry{
	Name:            "deactivateProduct",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "productId", Type: "uint256"},
	},
}

var abiReduceQuantity = &blockchain.ABIEntry{
	Name:            "reduceQuantity",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "productId", Type: "uint256"},
		{Name: "quantity", Type: "uint256"},
	},
}

var abiGetProduct = &blockchain.ABIEntry{
	Name:            "getProduct",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "productId", Type: "uint256"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "tuple"},
	},
}

var abiGetExporterProducts = &blockchain.ABIEntry{
	Name:            "getExporterProducts",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "exporter", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetAllActiveProducts = &blockchain.ABIEntry{
	Name:            "getAllActiveProducts",
	Type:            "function",
	StateMutability: "view",
	Inputs:          []blockchain.ABIParam{},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetProductsByCategory = &blockchain.ABIEntry{
	Name:            "getProductsByCategory",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "category", Type: "string"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetTotalProducts = &blockchain.ABIEntry{
	Name:            "getTotalProducts",
	Type:            "function",
	StateMutability: "view",
	Inputs:          []blockchain.ABIParam{},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256"},
	},
}
