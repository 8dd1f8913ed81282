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

package trade

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradechain-io/tradechain/internal/catalog"
	"github.com/tradechain-io/tradechain/internal/collab"
	"github.com/tradechain-io/tradechain/internal/orders"
	"github.com/tradechain-io/tradechain/internal/registry"
	"github.com/tradechain-io/tradechain/internal/wallet"
	"github.com/tradechain-io/tradechain/mocks/blockchainmocks"
	"github.com/tradechain-io/tradechain/mocks/sharedstoragemocks"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

const (
	testAccount          = "0xf25186b5081ff5ce73482ad761db0eb0d25abfbf"
	testRegistryAddr     = "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"
	testCatalogAddr      = "0x2546bcd3c84621e976d8185a91a922ae77ecec30"
	testOrdersAddr       = "0xdc25ef3f5b8a186998338a2ada83795fba2d695e"
	testCollabAddr       = "0xbda5747bfd65f08deb54cb465eb87d40e51b197e"
)

func testChain() *wallet.Chain {
	return &wallet.Chain{
		ID:      "0xaa36a7",
		Name:    "Sepolia",
		RPCUrls: []string{"https://rpc.sepolia.org"},
		Currency: wallet.ChainCurrency{
			Name:     "Sepolia Ether",
			Symbol:   "ETH",
			Decimals: 18,
		},
	}
}

func newTestManager() (*Manager, *blockchainmocks.Provider, *sharedstoragemocks.Plugin) {
	mp := &blockchainmocks.Provider{}
	mss := &sharedstoragemocks.Plugin{}
	connector := wallet.NewConnector(mp, testChain())
	m := NewManager(
		connector,
		registry.NewRegistry(mp, testRegistryAddr),
		catalog.NewCatalog(mp, mss, testCatalogAddr),
		orders.NewOrders(mp, testOrdersAddr),
		collab.NewCollaborations(mp, testCollabAddr),
		mss,
	)
	return m, mp, mss
}

// connectSession probes an existing authorization, so later operations have
// a signer without a wallet prompt
func connectSession(t *testing.T, m *Manager, mp *blockchainmocks.Provider) {
	accounts, _ := json.Marshal([]string{testAccount})
	mp.On("Request", mock.Anything, "eth_accounts").Return(json.RawMessage(accounts), nil).Once()
	session, err := m.ProbeSession(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, testAccount, session.Account)
}

func TestProbeNoSession(t *testing.T) {
	m, mp, _ := newTestManager()
	mp.On("Request", mock.Anything, "eth_accounts").Return(json.RawMessage(`[]`), nil)

	session, err := m.ProbeSession(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, session)

	info, err := m.GetSessionInfo(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, info.Session)
	assert.Equal(t, wallet.StateDisconnected, info.State)
	assert.Equal(t, "user", info.RoleLabel)
}

func TestConnectWalletAlreadyOnChain(t *testing.T) {
	m, mp, _ := newTestManager()
	mp.On("Request", mock.Anything, "eth_chainId").Return(json.RawMessage(`"0xaa36a7"`), nil)
	accounts, _ := json.Marshal([]string{testAccount})
	mp.On("Request", mock.Anything, "eth_requestAccounts").Return(json.RawMessage(accounts), nil)

	session, err := m.ConnectWallet(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, testAccount, session.Account)
	assert.Equal(t, "0xaa36a7", session.ChainID)
}

func TestDisconnect(t *testing.T) {
	m, mp, _ := newTestManager()
	connectSession(t, m, mp)
	m.Disconnect(context.Background())
	_, err := m.ActivateRole(context.Background(), registry.RoleImporter)
	assert.Regexp(t, "TC10126", err)
}

func TestGetSessionInfoWithRole(t *testing.T) {
	m, mp, _ := newTestManager()
	connectSession(t, m, mp)

	mp.On("Query", mock.Anything, testRegistryAddr, mock.Anything, []interface{}{testAccount}).
		Return(tctypes.JSONObject{"output": "2"}, nil)

	info, err := m.GetSessionInfo(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, wallet.StateConnected, info.State)
	assert.Equal(t, registry.RoleExporter, info.Role)
	assert.Equal(t, "exporter", info.RoleLabel)
}

func TestActivateRoleRequiresSession(t *testing.T) {
	m, _, _ := newTestManager()
	_, err := m.ActivateRole(context.Background(), registry.RoleImporter)
	assert.Regexp(t, "TC10126", err)
}

func TestActivateRoleSendsStake(t *testing.T) {
	m, mp, _ := newTestManager()
	connectSession(t, m, mp)

	stake := tctypes.MustParseBaseUnits("0.01")
	ms := &blockchainmocks.Signer{}
	mp.On("Signer", testAccount).Return(ms)
	ms.On("Invoke", mock.Anything, testRegistryAddr, mock.Anything, mock.Anything, stake).
		Return(&blockchain.Receipt{Status: "1"}, nil)

	_, err := m.ActivateRole(context.Background(), registry.RoleImporter)
	assert.NoError(t, err)
	ms.AssertExpectations(t)
}

func TestPublishProductPinsMetadataFirst(t *testing.T) {
	m, mp, mss := newTestManager()
	connectSession(t, m, mp)

	ms := &blockchainmocks.Signer{}
	mp.On("Signer", testAccount).Return(ms)
	mss.On("PublishJSON", mock.Anything, mock.Anything).Return("QmMetadataHash", nil)
	ms.On("Invoke", mock.Anything, testCatalogAddr, mock.Anything, mock.MatchedBy(func(params []interface{}) bool {
		// The pinned content ref is passed through to the listing
		return params[5] == "QmMetadataHash"
	}), (*tctypes.BigInt)(nil)).
		Return(&blockchain.Receipt{
			Status: "1",
			Events: []*blockchain.DecodedLog{
				{Event: "ProductListed", Args: tctypes.JSONObject{"productId": "5"}},
			},
		}, nil)

	productID, ok, err := m.PublishProduct(context.Background(), &catalog.ProductInput{
		Name:         "Coffee",
		Category:     "agriculture",
		PricePerUnit: "0.01",
		Quantity:     100,
	}, map[string]interface{}{"origin": "ET"})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5", productID.String())
	mss.AssertExpectations(t)
}

func TestPublishProductPinFails(t *testing.T) {
	m, mp, mss := newTestManager()
	connectSession(t, m, mp)

	mss.On("PublishJSON", mock.Anything, mock.Anything).Return("", fmt.Errorf("pop"))

	_, _, err := m.PublishProduct(context.Background(), &catalog.ProductInput{
		Name:         "Coffee",
		PricePerUnit: "0.01",
	}, map[string]interface{}{"origin": "ET"})
	assert.EqualError(t, err, "pop")
}

func TestPlaceOrder(t *testing.T) {
	m, mp, _ := newTestManager()
	connectSession(t, m, mp)

	ms := &blockchainmocks.Signer{}
	mp.On("Signer", testAccount).Return(ms)
	ms.On("Invoke", mock.Anything, testOrdersAddr, mock.Anything, mock.Anything, mock.MatchedBy(func(value *tctypes.BigInt) bool {
		return value.String() == "30000000000000000"
	})).Return(&blockchain.Receipt{
		Status: "1",
		Events: []*blockchain.DecodedLog{
			{Event: "OrderPlaced", Args: tctypes.JSONObject{"orderId": "12"}},
		},
	}, nil)

	orderID, ok, err := m.PlaceOrder(context.Background(), &orders.OrderInput{
		Exporter:     testRegistryAddr,
		ProductID:    tctypes.NewBigInt(5),
		ProductName:  "Coffee",
		Quantity:     3,
		PricePerUnit: "0.01",
	})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", orderID.String())
}

func TestShipOrderPinsDocsFirst(t *testing.T) {
	m, mp, mss := newTestManager()
	connectSession(t, m, mp)

	ms := &blockchainmocks.Signer{}
	mp.On("Signer", testAccount).Return(ms)
	mss.On("PublishData", mock.Anything, mock.Anything).Return("QmShippingDoc", nil)
	ms.On("Invoke", mock.Anything, testOrdersAddr, mock.Anything, []interface{}{"12", "QmShippingDoc"}, (*tctypes.BigInt)(nil)).
		Return(&blockchain.Receipt{Status: "1"}, nil)

	_, err := m.ShipOrder(context.Background(), tctypes.NewBigInt(12), strings.NewReader("bill of lading"))
	assert.NoError(t, err)
	ms.AssertExpectations(t)
}

func TestShipOrderPinFails(t *testing.T) {
	m, mp, mss := newTestManager()
	connectSession(t, m, mp)

	mss.On("PublishData", mock.Anything, mock.Anything).Return("", fmt.Errorf("pop"))

	_, err := m.ShipOrder(context.Background(), tctypes.NewBigInt(12), strings.NewReader("bill of lading"))
	assert.EqualError(t, err, "pop")
}

func TestApproveDelivery(t *testing.T) {
	m, mp, _ := newTestManager()
	connectSession(t, m, mp)

	ms := &blockchainmocks.Signer{}
	mp.On("Signer", testAccount).Return(ms)
	ms.On("Invoke", mock.Anything, testOrdersAddr, mock.Anything, []interface{}{"12"}, (*tctypes.BigInt)(nil)).
		Return(&blockchain.Receipt{Status: "1"}, nil)

	_, err := m.ApproveDelivery(context.Background(), tctypes.NewBigInt(12))
	assert.NoError(t, err)
}

func TestStartCollaboration(t *testing.T) {
	m, mp, _ := newTestManager()
	connectSession(t, m, mp)

	ms := &blockchainmocks.Signer{}
	mp.On("Signer", testAccount).Return(ms)
	ms.On("Invoke", mock.Anything, testCollabAddr, mock.Anything, mock.Anything, (*tctypes.BigInt)(nil)).
		Return(&blockchain.Receipt{
			Status: "1",
			Events: []*blockchain.DecodedLog{
				{Event: "RequestCreated", Args: tctypes.JSONObject{"requestId": "7"}},
			},
		}, nil)

	requestID, ok, err := m.StartCollaboration(context.Background(), &collab.RequestInput{
		Manufacturer: testAccount,
		ProductID:    tctypes.NewBigInt(5),
		ProductName:  "Basket",
		Quantity:     200,
		PricePerUnit: "0.005",
	})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", requestID.String())
}

func TestSubmitSamplePinsDocsFirst(t *testing.T) {
	m, mp, mss := newTestManager()
	connectSession(t, m, mp)

	ms := &blockchainmocks.Signer{}
	mp.On("Signer", testAccount).Return(ms)
	mss.On("PublishData", mock.Anything, mock.Anything).Return("QmSampleDoc", nil)
	ms.On("Invoke", mock.Anything, testCollabAddr, mock.Anything, []interface{}{"7", "QmSampleDoc"}, (*tctypes.BigInt)(nil)).
		Return(&blockchain.Receipt{Status: "1"}, nil)

	_, err := m.SubmitSample(context.Background(), tctypes.NewBigInt(7), strings.NewReader("sample photos"))
	assert.NoError(t, err)
	ms.AssertExpectations(t)
}

func TestFundCollaborationPaysExactly(t *testing.T) {
	m, mp, _ := newTestManager()
	connectSession(t, m, mp)

	mp.On("Query", mock.Anything, testCollabAddr, mock.Anything, []interface{}{"7"}).
		Return(tctypes.JSONObject{"id": "7", "pricePerUnit": "5000000000000000", "status": "2"}, nil)
	ms := &blockchainmocks.Signer{}
	mp.On("Signer", testAccount).Return(ms)
	ms.On("Invoke", mock.Anything, testCollabAddr, mock.Anything, []interface{}{"7", "150"}, mock.MatchedBy(func(value *tctypes.BigInt) bool {
		return value.String() == "750000000000000000"
	})).Return(&blockchain.Receipt{Status: "1"}, nil)

	_, err := m.FundCollaboration(context.Background(), tctypes.NewBigInt(7), 150)
	assert.NoError(t, err)
	ms.AssertExpectations(t)
}

func TestOperationsRequireSession(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()
	id := tctypes.NewBigInt(1)

	_, _, err := m.PublishProduct(ctx, &catalog.ProductInput{}, nil)
	assert.Regexp(t, "TC10126", err)
	_, _, err = m.PlaceOrder(ctx, &orders.OrderInput{})
	assert.Regexp(t, "TC10126", err)
	_, err = m.ConfirmOrder(ctx, id)
	assert.Regexp(t, "TC10126", err)
	_, err = m.UpdateOrderStatus(ctx, id, orders.StatusShipped)
	assert.Regexp(t, "TC10126", err)
	_, err = m.ShipOrder(ctx, id, strings.NewReader(""))
	assert.Regexp(t, "TC10126", err)
	_, err = m.ApproveDelivery(ctx, id)
	assert.Regexp(t, "TC10126", err)
	_, err = m.CancelOrder(ctx, id)
	assert.Regexp(t, "TC10126", err)
	_, _, err = m.StartCollaboration(ctx, &collab.RequestInput{})
	assert.Regexp(t, "TC10126", err)
	_, err = m.SubmitSample(ctx, id, strings.NewReader(""))
	assert.Regexp(t, "TC10126", err)
	_, err = m.CheckQuality(ctx, id, true, "")
	assert.Regexp(t, "TC10126", err)
	_, err = m.FundCollaboration(ctx, id, 1)
	assert.Regexp(t, "TC10126", err)
	_, err = m.CompleteCollaboration(ctx, id)
	assert.Regexp(t, "TC10126", err)
	_, err = m.CancelCollaboration(ctx, id)
	assert.Regexp(t, "TC10126", err)
}

func TestAccessors(t *testing.T) {
	m, _, _ := newTestManager()
	assert.NotNil(t, m.Registry())
	assert.NotNil(t, m.Catalog())
	assert.NotNil(t, m.Orders())
	assert.NotNil(t, m.Collaborations())
	assert.NotNil(t, m.Storage())
}
