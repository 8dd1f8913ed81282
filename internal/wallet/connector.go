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

package wallet

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
)

// Connector manages the wallet session against the host wallet endpoint.
//
// Connect is single-flight: while a connection attempt (which prompts the
// wallet user) is in progress, concurrent callers wait for that same attempt
// and share its outcome, so the user is never prompted twice.
type Connector struct {
	provider blockchain.Provider
	chain    *Chain

	mux      sync.Mutex
	inflight *connectAttempt
	current  *Session
	state    State
}

type connectAttempt struct {
	done    chan struct{}
	session *Session
	err     error
}

func NewConnector(provider blockchain.Provider, chain *Chain) *Connector {
	return &Connector{
		provider: provider,
		chain:    chain,
		state:    StateUninitialized,
	}
}

// State returns the current lifecycle state
func (c *Connector) State() State {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.state
}

// Session returns the current session, nil when not connected
func (c *Connector) Session() *Session {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.current
}

// Signer returns a transaction handle for the connected account
func (c *Connector) Signer(ctx context.Context) (blockchain.Signer, error) {
	c.mux.Lock()
	session := c.current
	c.mux.Unlock()
	if session == nil {
		return nil, i18n.NewError(ctx, i18n.MsgSessionNotConnected)
	}
	return c.provider.Signer(session.Account), nil
}

// Connect establishes an authorized session, prompting the wallet user if
// needed. Concurrent calls share one attempt and one outcome, and the guard
// releases as soon as the attempt settles. Every call runs the full flow -
// an earlier session is replaced, not returned, so an account or chain
// switched in the wallet is picked up on the next explicit connect.
func (c *Connector) Connect(ctx context.Context) (*Session, error) {
	c.mux.Lock()
	if attempt := c.inflight; attempt != nil {
		c.mux.Unlock()
		log.L(ctx).Debugf("Connect already in flight, waiting for its outcome")
		select {
		case <-attempt.done:
			return attempt.session, attempt.err
		case <-ctx.Done():
			return nil, i18n.NewError(ctx, i18n.MsgContextCanceled)
		}
	}
	attempt := &connectAttempt{done: make(chan struct{})}
	c.inflight = attempt
	c.mux.Unlock()

	session, err := c.connect(ctx)

	c.mux.Lock()
	c.inflight = nil
	attempt.session = session
	attempt.err = err
	if err == nil {
		c.current = session
		c.state = StateConnected
	} else {
		c.state = StateDisconnected
	}
	c.mux.Unlock()
	close(attempt.done)

	return session, err
}

func (c *Connector) connect(ctx context.Context) (*Session, error) {
	l := log.L(ctx)

	if err := EnsureChain(ctx, c.provider, c.chain); err != nil {
		return nil, err
	}

	res, err := c.provider.Request(ctx, "eth_requestAccounts")
	if err != nil {
		switch blockchain.ErrorCode(err) {
		case blockchain.CodeUserRejected:
			return nil, i18n.NewError(ctx, i18n.MsgUserRejected)
		case blockchain.CodeRequestPending:
			return nil, i18n.NewError(ctx, i18n.MsgRequestAlreadyPending)
		default:
			return nil, i18n.WrapError(ctx, err, i18n.MsgConnectionFailed)
		}
	}
	accounts, err := parseAccounts(ctx, res)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, i18n.NewError(ctx, i18n.MsgNoAccountAuthorized)
	}

	session := &Session{
		Account:     accounts[0],
		ChainID:     c.chain.ID,
		ConnectedAt: time.Now(),
	}
	l.Infof("Wallet connected: %s on chain %s", session.Account, session.ChainID)
	return session, nil
}

// Probe checks for an existing authorization without prompting the wallet
// user. No authorized account is not an error: the caller gets (nil, nil)
// and treats the session as disconnected. Transport failures are returned
// so callers can distinguish "no session" from "wallet unreachable".
func (c *Connector) Probe(ctx context.Context) (*Session, error) {
	c.mux.Lock()
	if c.state == StateUninitialized {
		c.state = StateProbing
	}
	c.mux.Unlock()

	res, err := c.provider.Request(ctx, "eth_accounts")
	if err != nil {
		c.setDisconnected()
		return nil, i18n.WrapError(ctx, err, i18n.MsgConnectionFailed)
	}
	accounts, err := parseAccounts(ctx, res)
	if err != nil {
		c.setDisconnected()
		return nil, err
	}
	if len(accounts) == 0 {
		log.L(ctx).Debugf("No existing wallet authorization")
		c.setDisconnected()
		return nil, nil
	}

	session := &Session{
		Account:     accounts[0],
		ChainID:     c.chain.ID,
		ConnectedAt: time.Now(),
	}
	c.mux.Lock()
	c.current = session
	c.state = StateConnected
	c.mux.Unlock()
	log.L(ctx).Infof("Existing wallet session found: %s", session.Account)
	return session, nil
}

// Disconnect drops the local session. Host wallets keep their own
// authorization state, so this only affects this process.
func (c *Connector) Disconnect(ctx context.Context) {
	c.mux.Lock()
	hadSession := c.current != nil
	c.current = nil
	c.state = StateDisconnected
	c.mux.Unlock()
	if hadSession {
		log.L(ctx).Infof("Wallet session dropped")
	}
}

func (c *Connector) setDisconnected() {
	c.mux.Lock()
	c.current = nil
	c.state = StateDisconnected
	c.mux.Unlock()
}

func parseAccounts(ctx context.Context, res json.RawMessage) ([]string, error) {
	var accounts []string
	if err := json.Unmarshal(res, &accounts); err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgConnectionFailed)
	}
	return accounts, nil
}
