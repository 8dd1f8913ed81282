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

import "github.com/tradechain-io/tradechain/pkg/blockchain"

var abiPlaceOrder = &blockchain.ABIEntry{
	Name:            "placeOrder",
	Type:            "function",
	StateMutability: "payable",
	Inputs: []blockchain.ABIParam{
		{Name: "exporter", Type: "address"},
		{Name: "productId", Type: "uint256"},
		{Name: "productName", Type: "string"},
		{Name: "quantity", Type: "uint256"},
		{Name: "pricePerUnit", Type: "uint256"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256"},
	},
}

var abiConfirmOrder = &blockchain.ABIEntry{
	Name:            "confirmOrder",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "orderId", Type: "uint256"},
	},
}

var abiUpdateOrderStatus = &blockchain.ABIEntry{
	Name:            "updateOrderStatus",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "orderId", Type: "uint256"},
		{Name: "status", Type: "uint8"},
	},
}

var abiAddShippingDetails = &blockchain.ABIEntry{
	Name:            "addShippingDetails",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "orderId", Type: "uint256"},
		{Name: "shippingIpfsHash", Type: "string"},
	},
}

var abiConfirmDelivery = &blockchain.ABIEntry{
	Name:            "confirmDelivery",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "orderId", Type: "uint256"},
	},
}

var abiCancelOrder = &blockchain.ABIEntry{
	Name:            "cancelOrder",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs: []blockchain.ABIParam{
		{Name: "orderId", Type: "uint256"},
	},
}

var abiGetOrder = &blockchain.ABIEntry{
	Name:            "getOrder",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "orderId", Type: "uint256"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "id", Type: "uint256"},
		{Name: "importer", Type: "address"},
		{Name: "exporter", Type: "address"},
		{Name: "productId", Type: "uint256"},
		{Name: "productName", Type: "string"},
		{Name: "quantity", Type: "uint256"},
		{Name: "pricePerUnit", Type: "uint256"},
		{Name: "totalPrice", Type: "uint256"},
		{Name: "status", Type: "uint8"},
		{Name: "shippingDetails", Type: "string"},
		{Name: "createdAt", Type: "uint256"},
		{Name: "updatedAt", Type: "uint256"},
	},
}

var abiGetImporterOrders = &blockchain.ABIEntry{
	Name:            "getImporterOrders",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "importer", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetExporterOrders = &blockchain.ABIEntry{
	Name:            "getExporterOrders",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "exporter", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetPendingOrders = &blockchain.ABIEntry{
	Name:            "getPendingOrders",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "exporter", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256[]"},
	},
}

var abiGetEscrowAmount = &blockchain.ABIEntry{
	Name:            "getEscrowAmount",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "orderId", Type: "uint256"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256"},
	},
}

var abiGetTotalOrders = &blockchain.ABIEntry{
	Name:            "getTotalOrders",
	Type:            "function",
	StateMutability: "view",
	Inputs:          []blockchain.ABIParam{},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256"},
	},
}
