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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradechain-io/tradechain/mocks/blockchainmocks"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
)

const testAccount = "0xf25186b5081ff5ce73482ad761db0eb0d25abfbf"

func newTestConnector() (*Connector, *blockchainmocks.Provider) {
	mp := &blockchainmocks.Provider{}
	return NewConnector(mp, testChain()), mp
}

func mockChainOK(mp *blockchainmocks.Provider) {
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0xaa36a7"`), nil)
}

func TestConnectOK(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil)

	assert.Equal(t, StateUninitialized, c.State())

	session, err := c.Connect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, testAccount, session.Account)
	assert.Equal(t, "0xaa36a7", session.ChainID)
	assert.False(t, session.ConnectedAt.IsZero())
	assert.Equal(t, StateConnected, c.State())
	assert.Equal(t, session, c.Session())
}

func TestReconnectPicksUpSwitchedAccount(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil).Once()

	session1, err := c.Connect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, testAccount, session1.Account)

	// The user switches accounts in the wallet, then clicks connect again.
	// The full flow re-runs and the new account replaces the old session.
	otherAccount := "0x1111111111111111111111111111111111111111"
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, otherAccount)), nil).Once()

	session2, err := c.Connect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, otherAccount, session2.Account)
	assert.Equal(t, session2, c.Session())
	mp.AssertExpectations(t)
}

func TestReconnectRestoresTargetChain(t *testing.T) {
	c, mp := newTestConnector()
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0xaa36a7"`), nil).Once()
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil).Twice()

	_, err := c.Connect(context.Background())
	assert.NoError(t, err)

	// The wallet has wandered off to another chain - the next connect
	// switches it back before re-authorizing
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil).Once()
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(json.RawMessage(`null`), nil).Once()

	session, err := c.Connect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, testAccount, session.Account)
	mp.AssertExpectations(t)
}

func TestConnectSingleFlight(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)

	prompted := make(chan struct{})
	release := make(chan struct{})
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Run(func(args mock.Arguments) {
			close(prompted)
			<-release
		}).
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil).
		Once()

	var sessions [2]*Session
	var errs [2]error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sessions[0], errs[0] = c.Connect(context.Background())
	}()

	// Wait until the first caller is holding the wallet prompt open,
	// then pile on a second caller
	<-prompted
	wg.Add(1)
	go func() {
		defer wg.Done()
		sessions[1], errs[1] = c.Connect(context.Background())
	}()

	close(release)
	wg.Wait()

	for i := 0; i < 2; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, testAccount, sessions[i].Account)
	}
	// The Once() expectation proves there was a single prompt
	mp.AssertExpectations(t)
}

func TestConnectRejectionShared(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)

	prompted := make(chan struct{})
	release := make(chan struct{})
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Run(func(args mock.Arguments) {
			close(prompted)
			<-release
		}).
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeUserRejected, Message: "User rejected the request"}).
		Once()

	var errs [2]error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[0] = c.Connect(context.Background())
	}()
	<-prompted
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[1] = c.Connect(context.Background())
	}()
	close(release)
	wg.Wait()

	// Both callers see the same rejection
	assert.Regexp(t, "TC10121", errs[0])
	assert.Regexp(t, "TC10121", errs[1])
	assert.Equal(t, StateDisconnected, c.State())

	// The guard is released, so a fresh attempt can prompt again
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil).Once()
	session, err := c.Connect(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, testAccount, session.Account)
	mp.AssertExpectations(t)
}

func TestConnectWaiterContextCancelled(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)

	prompted := make(chan struct{})
	release := make(chan struct{})
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Run(func(args mock.Arguments) {
			close(prompted)
			<-release
		}).
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil).
		Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Connect(context.Background())
	}()
	<-prompted

	// A waiter whose own context is cancelled gives up, without
	// disturbing the in-flight attempt
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Connect(cancelled)
	assert.Regexp(t, "TC10110", err)

	close(release)
	wg.Wait()
	assert.Equal(t, StateConnected, c.State())
}

func TestConnectRequestPending(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeRequestPending, Message: "Request of type 'wallet_requestPermissions' already pending"})

	_, err := c.Connect(context.Background())
	assert.Regexp(t, "TC10122", err)
}

func TestConnectTransportFailure(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)
	mp.On("Request", mock.Anything, "eth_requestAccounts").Return(nil, fmt.Errorf("pop"))

	_, err := c.Connect(context.Background())
	assert.Regexp(t, "TC10125", err)
}

func TestConnectNoAccounts(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)
	mp.On("Request", mock.Anything, "eth_requestAccounts").Return(json.RawMessage(`[]`), nil)

	_, err := c.Connect(context.Background())
	assert.Regexp(t, "TC10127", err)
	assert.Equal(t, StateDisconnected, c.State())
}

func TestConnectBadAccountsJSON(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)
	mp.On("Request", mock.Anything, "eth_requestAccounts").Return(json.RawMessage(`{}`), nil)

	_, err := c.Connect(context.Background())
	assert.Regexp(t, "TC10125", err)
}

func TestConnectChainSwitchFails(t *testing.T) {
	c, mp := newTestConnector()
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0x1"`), nil)
	mp.On("Request", mock.Anything, "wallet_switchEthereumChain", mock.Anything).
		Return(nil, &blockchain.RPCError{Code: blockchain.CodeUserRejected, Message: "User rejected the request"})

	_, err := c.Connect(context.Background())
	assert.Regexp(t, "TC10121", err)
	mp.AssertNotCalled(t, "Request", mock.Anything, "eth_requestAccounts")
}

func TestProbeExistingSession(t *testing.T) {
	c, mp := newTestConnector()
	mp.On("Request", mock.Anything, "eth_accounts").
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil)

	session, err := c.Probe(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, testAccount, session.Account)
	assert.Equal(t, StateConnected, c.State())
}

func TestProbeNoSession(t *testing.T) {
	c, mp := newTestConnector()
	mp.On("Request", mock.Anything, "eth_accounts").Return(json.RawMessage(`[]`), nil)

	session, err := c.Probe(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, session)
	assert.Equal(t, StateDisconnected, c.State())
}

func TestProbeTransportFailure(t *testing.T) {
	c, mp := newTestConnector()
	mp.On("Request", mock.Anything, "eth_accounts").Return(nil, fmt.Errorf("pop"))

	_, err := c.Probe(context.Background())
	assert.Regexp(t, "TC10125", err)
	assert.Equal(t, StateDisconnected, c.State())
}

func TestProbeBadJSON(t *testing.T) {
	c, mp := newTestConnector()
	mp.On("Request", mock.Anything, "eth_accounts").Return(json.RawMessage(`"one"`), nil)

	_, err := c.Probe(context.Background())
	assert.Regexp(t, "TC10125", err)
}

func TestDisconnect(t *testing.T) {
	c, mp := newTestConnector()
	mockChainOK(mp)
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil)

	_, err := c.Connect(context.Background())
	assert.NoError(t, err)

	c.Disconnect(context.Background())
	assert.Nil(t, c.Session())
	assert.Equal(t, StateDisconnected, c.State())

	// Idempotent
	c.Disconnect(context.Background())
	assert.Equal(t, StateDisconnected, c.State())
}

func TestSignerRequiresSession(t *testing.T) {
	c, mp := newTestConnector()

	_, err := c.Signer(context.Background())
	assert.Regexp(t, "TC10126", err)

	mockChainOK(mp)
	mp.On("Request", mock.Anything, "eth_requestAccounts").
		Return(json.RawMessage(fmt.Sprintf(`["%s"]`, testAccount)), nil)
	mp.On("Signer", testAccount).Return(&blockchainmocks.Signer{})

	_, err = c.Connect(context.Background())
	assert.NoError(t, err)

	signer, err := c.Signer(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, signer)
}
