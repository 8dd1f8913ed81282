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

package retry

import (
	"context"
	"time"

	"github.com/tradechain-io/tradechain/internal/i18n"
)

const (
	DefaultInitial = 100 * time.Millisecond
	DefaultMaximum = 1 * time.Second
)

// Backoff paces repeated connection attempts. Each WaitNext sleeps for the
// next delay in a doubling sequence, capped at Maximum. A zero value uses the
// package defaults. Not safe for concurrent use - each reconnect loop owns
// its own Backoff.
type Backoff struct {
	Initial time.Duration
	Maximum time.Duration

	attempts int
	next     time.Duration
}

// Attempts returns the number of completed waits since the last Reset
func (b *Backoff) Attempts() int {
	return b.attempts
}

// Reset restarts the delay sequence, after a successful connect
func (b *Backoff) Reset() {
	b.attempts = 0
	b.next = 0
}

// WaitNext sleeps for the next delay in the sequence. It returns early with a
// context-canceled error when ctx ends first, which is how a reconnect loop
// learns it should give up.
func (b *Backoff) WaitNext(ctx context.Context) error {
	delay := b.next
	if delay <= 0 {
		delay = b.Initial
		if delay <= 0 {
			delay = DefaultInitial
		}
	}
	maximum := b.Maximum
	if maximum <= 0 {
		maximum = DefaultMaximum
	}
	if delay > maximum {
		delay = maximum
	}
	b.next = delay * 2
	b.attempts++

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return i18n.NewError(ctx, i18n.MsgContextCanceled)
	}
}
