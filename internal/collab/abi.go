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

import "github.com/tradechain-io/tradechain/pkg/blockchain"

var abiCreateRequest = &blockchain.ABIEntry{
	Name:            "createRequest",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "manufacturer", Type: "address"},
		{Name: "productId", Type: "uint256"},
		{Name: "productName", Type: "string"},
		{Name: "quantity", Type: "uint256"},
		{Name: "pricePerUnit", Type: "uint256"},
		{Name: "specifications", Type: "string"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256"},
	},
}

var abiSubmitSample = &blockchain.ABIEntry{
	Name:            "submitSample",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "requestId", Type: "uint256"},
		{Name: "sampleIpfsHash", Type: "string"},
	},
}

var abiCheckQuality = &blockchain.ABIEntry{
	Name:            "checkQuality",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "requestId", Type: "uint256"},
		{Name: "approved", Type: "bool"},
		{Name: "notes", Type: "string"},
	},
}

var abiPlaceOrder = &blockchain.ABIEntry{
	Name:            "placeOrder",
	Type:            "function",
	StateMutability: "payable",
	Inputs: []blockchain.ABIParam{
		{Name: "requestId", Type: "uint256"},
		{Name: "quantity", Type: "uint256"},
	},
}

var abiCompleteOrder = &blockchain.ABIEntry{
	Name:            "completeOrder",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "requestId", Type: "uint256"},
	},
}

var abiCancelRequest = &blockchain.ABIEntry{
	Name:            "cancelRequest",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "requestId", Type: "uint256"},
	},
}

var abiGetRequest = &blockchain.ABIEntry{
	Name:            "getRequest",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "requestId", Type: "uint256"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "id", Type: "uint256"},
		{Name: "exporter", Type: "address"},
		{Name: "microManufacturer", Type: "address"},
		{Name: "productId", Type: "uint256"},
		{Name: "productName", Type: "string"},
		{Name: "requestedQuantity", Type: "uint256"},
		{Name: "pricePerUnit", Type: "uint256"},
		{Name: "specifications", Type: "string"},
		{Name: "status", Type: "uint8"},
		{Name: "sampleIpfsHash", Type: "string"},
		{Name: "qualityNotes", Type: "string"},
		{Name: "createdAt", Type: "uint256"},
		{Name: "updatedAt", Type: "uint256"},
	},
}

var abiGetExporterRequests = &blockchain.ABIEntry{
	Name:            "getExporterRequests",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "exporter", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetManufacturerRequests = &blockchain.ABIEntry{
	Name:            "getManufacturerRequests",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "manufacturer", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetPendingRequests = &blockchain.ABIEntry{
	Name:            "getPendingRequests",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "manufacturer", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetTotalRequests = &blockchain.ABIEntry{
	Name:            "getTotalRequests",
	Type:            "function",
	StateMutability: "view",
	Inputs:          []blockchain.ABIParam{},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256"},
	},
}
