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

package tctypes

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/tradechain-io/tradechain/internal/i18n"
)

// BigInt is a wrapper on a Go big.Int that standardizes JSON serialization,
// used for all on-chain integers (identifiers, base-unit amounts, timestamps)
type BigInt big.Int

func NewBigInt(x int64) *BigInt {
	return (*BigInt)(big.NewInt(x))
}

func (i BigInt) MarshalText() ([]byte, error) {
	// Represent as base 10 string in marshalled JSON
	return []byte((*big.Int)(&i).Text(10)), nil
}

func (i *BigInt) UnmarshalJSON(b []byte) error {
	var val interface{}
	if err := json.Unmarshal(b, &val); err != nil {
		return i18n.WrapError(context.Background(), err, i18n.MsgBigIntParseFailed, b)
	}
	switch val := val.(type) {
	case string:
		if _, ok := i.Int().SetString(val, 0); !ok {
			return i18n.NewError(context.Background(), i18n.MsgBigIntParseFailed, b)
		}
		return nil
	case float64:
		i.Int().SetInt64(int64(val))
		return nil
	default:
		return i18n.NewError(context.Background(), i18n.MsgBigIntParseFailed, b)
	}
}

func (i *BigInt) Int() *big.Int {
	return (*big.Int)(i)
}

func (i *BigInt) Uint64() uint64 {
	if i == nil {
		return 0
	}
	return (*big.Int)(i).Uint64()
}

func (i *BigInt) String() string {
	if i == nil {
		return "0"
	}
	return (*big.Int)(i).Text(10)
}

func (i *BigInt) Equals(i2 *BigInt) bool {
	switch {
	case i == nil && i2 == nil:
		return true
	case i == nil || i2 == nil:
		return false
	default:
		return (*big.Int)(i).Cmp((*big.Int)(i2)) == 0
	}
}

// ToBigInt converts the loosely typed values that come back from JSON
// decoding of chain data (base-10 strings, 0x hex strings, JSON numbers)
func ToBigInt(v interface{}) (*BigInt, bool) {
	switch vt := v.(type) {
	case string:
		i := new(big.Int)
		if _, ok := i.SetString(vt, 0); !ok {
			return nil, false
		}
		return (*BigInt)(i), true
	case float64:
		return NewBigInt(int64(vt)), true
	case int64:
		return NewBigInt(vt), true
	case int:
		return NewBigInt(int64(vt)), true
	case json.Number:
		i := new(big.Int)
		if _, ok := i.SetString(vt.String(), 10); !ok {
			return nil, false
		}
		return (*BigInt)(i), true
	case *BigInt:
		return vt, vt != nil
	default:
		return nil, false
	}
}
