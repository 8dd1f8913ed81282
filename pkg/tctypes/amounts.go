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
	"math/big"
	"regexp"
	"strings"

	"github.com/tradechain-io/tradechain/internal/i18n"
)

// EtherDecimals is the fixed-point scale of the native currency base unit (wei)
const EtherDecimals = 18

var decimalAmount = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ParseBaseUnits converts a non-negative decimal string, as entered at the UI
// boundary, to an exact base-unit (wei) integer. At most EtherDecimals
// fractional digits are allowed. No floating point is involved at any stage.
func ParseBaseUnits(ctx context.Context, amount string) (*BigInt, error) {
	if !decimalAmount.MatchString(amount) {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAmount, amount)
	}
	whole := amount
	frac := ""
	if dot := strings.IndexByte(amount, '.'); dot >= 0 {
		whole = amount[0:dot]
		frac = amount[dot+1:]
	}
	if len(frac) > EtherDecimals {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAmount, amount)
	}
	frac += strings.Repeat("0", EtherDecimals-len(frac))
	i := new(big.Int)
	if _, ok := i.SetString(whole+frac, 10); !ok {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidAmount, amount)
	}
	return (*BigInt)(i), nil
}

// MustParseBaseUnits is for compile-time constant amounts only
func MustParseBaseUnits(amount string) *BigInt {
	i, err := ParseBaseUnits(context.Background(), amount)
	if err != nil {
		panic(err)
	}
	return i
}

// FormatBaseUnits renders a base-unit integer back to the normalized decimal
// string form, with trailing fractional zeros trimmed
func FormatBaseUnits(amount *BigInt) string {
	if amount == nil {
		return "0"
	}
	s := amount.Int().Text(10)
	if len(s) <= EtherDecimals {
		s = strings.Repeat("0", EtherDecimals-len(s)+1) + s
	}
	whole := s[0 : len(s)-EtherDecimals]
	frac := strings.TrimRight(s[len(s)-EtherDecimals:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// MulQuantity computes an exact total of quantity units at the given base-unit price
func MulQuantity(unitPrice *BigInt, quantity uint64) *BigInt {
	total := new(big.Int).Mul(unitPrice.Int(), new(big.Int).SetUint64(quantity))
	return (*BigInt)(total)
}
