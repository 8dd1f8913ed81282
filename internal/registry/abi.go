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

import "github.com/tradechain-io/tradechain/pkg/blockchain"

var abiActivateImporter = &blockchain.ABIEntry{
	Name:            "activateImporter",
	Type:            "function",
	StateMutability: "payable",
	Inputs:          []blockchain.ABIParam{},
}

var abiActivateExporter = &blockchain.ABIEntry{
	Name:            "activateExporter",
	Type:            "function",
	StateMutability: "payable",
	Inputs:          []blockchain.ABIParam{},
}

var abiActivateMicroManufacturer = &blockchain.ABIEntry{
	Name:            "activateMicroManufacturer",
	Type:            "function",
	StateMutability: "nonpayable",
	Inputs:          []blockchain.ABIParam{},
}

var abiGetRole = &blockchain.ABIEntry{
	Name:            "getRole",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "user", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint8"},
	},
}

var abiHasRole = &blockchain.ABIEntry{
	Name:            "hasRole",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "user", Type: "address"},
		{Name: "role", Type: "uint8"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "bool"},
	},
}

var abiBlacklisted = &blockchain.ABIEntry{
	Name:            "blacklisted",
	Type:            "function",
	StateMutability: "view",
	Inputs: []blockchain.ABIParam{
		{Name: "user", Type: "address"},
	},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "bool"},
	},
}

var abiGetContractBalance = &blockchain.ABIEntry{
	Name:            "getContractBalance",
	Type:            "function",
	StateMutability: "view",
	Inputs:          []blockchain.ABIParam{},
	Outputs: []blockchain.ABIParam{
		{Name: "", Type: "uint256"},
	},
}
