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

package i18n

var (
	MsgConfigFailed          = ffm("TC10101", "Failed to read config: %s")
	MsgInvalidOutputOption   = ffm("TC10102", "Invalid output option '%s'")
	MsgContextCanceled       = ffm("TC10110", "Context cancelled")
	MsgRESTRequestFailed     = ffm("TC10111", "REST request failed: %s")
	MsgWSSendTimedOut        = ffm("TC10112", "Websocket send timed out")
	MsgWSClosing             = ffm("TC10113", "Websocket closing")
	MsgWSConnectFailed       = ffm("TC10114", "Websocket connect failed")
	MsgInvalidEthAddress     = ffm("TC10115", "Supplied Ethereum address is invalid")
	MsgJSONRPCRequestFailed  = ffm("TC10116", "JSON-RPC request '%s' failed: %s")
	MsgWalletNotAvailable    = ffm("TC10120", "No wallet endpoint is available")
	MsgUserRejected          = ffm("TC10121", "The request was rejected in the wallet")
	MsgRequestAlreadyPending = ffm("TC10122", "A wallet request is already pending - check the wallet to approve or reject it")
	MsgNetworkSwitchFailed   = ffm("TC10123", "Failed to switch the wallet to chain '%s'")
	MsgNetworkAddFailed      = ffm("TC10124", "Failed to register chain '%s' with the wallet")
	MsgConnectionFailed      = ffm("TC10125", "Wallet connection failed")
	MsgSessionNotConnected   = ffm("TC10126", "No wallet session is connected")
	MsgNoAccountAuthorized   = ffm("TC10127", "The wallet returned no authorized accounts")
	MsgReadFailed            = ffm("TC10130", "Contract read '%s' failed: %s")
	MsgWriteFailed           = ffm("TC10131", "Contract transaction '%s' failed: %s")
	MsgInvalidAmount         = ffm("TC10132", "Invalid amount string '%s'")
	MsgContractNotConfigured = ffm("TC10133", "No contract address configured for '%s'")
	MsgUnknownRole           = ffm("TC10134", "Unknown role '%v'")
	MsgBadReceiptResponse    = ffm("TC10135", "Transaction receipt could not be parsed: %s")
	MsgStorageUnavailable    = ffm("TC10140", "Pinning service unavailable: %s")
	MsgStorageInvalidRef     = ffm("TC10141", "Invalid content reference '%s'")
	MsgMissingPluginConfig   = ffm("TC10142", "Missing configuration '%s' for %s")
	MsgAPIServerStartFailed  = ffm("TC10150", "Unable to start listener on %s: %s")
	MsgJSONDecodeFailed      = ffm("TC10151", "Failed to decode input JSON")
	Msg404NotFound           = ffm("TC10152", "Not found")
	MsgUnknownOrderStatus    = ffm("TC10153", "Unknown order status '%v'")
	MsgBigIntParseFailed     = ffm("TC10154", "Failed to parse JSON value '%s' as a number")
	MsgEventStreamSubFailed  = ffm("TC10155", "Failed to resolve event stream subscription '%s'")
	MsgUnknownRequestStatus  = ffm("TC10156", "Unknown collaboration request status '%v'")
)
