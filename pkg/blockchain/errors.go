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

package blockchain

import "fmt"

// Well-known provider error codes (EIP-1193 / EIP-1474)
const (
	CodeUserRejected   int64 = 4001
	CodeChainNotAdded  int64 = 4902
	CodeRequestPending int64 = -32002
)

// RPCError is a JSON-RPC 2.0 error object returned by the wallet endpoint.
// The code is preserved so callers can branch on the well-known values.
type RPCError struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// ErrorCode extracts the RPC error code from an error chain, returning
// 0 when the error did not originate from the wallet endpoint
func ErrorCode(err error) int64 {
	for err != nil {
		if rpcErr, ok := err.(*RPCError); ok {
			return rpcErr.Code
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = unwrapper.Unwrap()
	}
	return 0
}
