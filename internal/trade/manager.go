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
	"io"

	"github.com/tradechain-io/tradechain/internal/catalog"
	"github.com/tradechain-io/tradechain/internal/collab"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/internal/orders"
	"github.com/tradechain-io/tradechain/internal/registry"
	"github.com/tradechain-io/tradechain/internal/wallet"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
	"github.com/tradechain-io/tradechain/pkg/sharedstorage"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// Manager composes the wallet session, the contract façades and the pinning
// service into the operations the dashboard exposes. It owns no business
// rules beyond composition - escrow and lifecycle enforcement stay in the
// contracts.
type Manager struct {
	connector *wallet.Connector
	registry  *registry.Registry
	catalog   *catalog.Catalog
	orders    *orders.Orders
	collab    *collab.Collaborations
	storage   sharedstorage.Plugin
}

func NewManager(connector *wallet.Connector, reg *registry.Registry, cat *catalog.Catalog, ord *orders.Orders, col *collab.Collaborations, storage sharedstorage.Plugin) *Manager {
	return &Manager{
		connector: connector,
		registry:  reg,
		catalog:   cat,
		orders:    ord,
		collab:    col,
		storage:   storage,
	}
}

// ConnectWallet prompts the wallet for authorization, switching it to the
// configured chain first. Safe to call concurrently - a single wallet prompt
// is shared by all callers.
func (m *Manager) ConnectWallet(ctx context.Context) (*wallet.Session, error) {
	return m.connector.Connect(ctx)
}

// ProbeSession checks for an already-authorized account without prompting
func (m *Manager) ProbeSession(ctx context.Context) (*wallet.Session, error) {
	return m.connector.Probe(ctx)
}

// Disconnect forgets the local session. The wallet-side authorization is
// not revocable from here.
func (m *Manager) Disconnect(ctx context.Context) {
	m.connector.Disconnect(ctx)
}

// SessionInfo describes the connected session and its on-chain role
type SessionInfo struct {
	Session   *wallet.Session `json:"session,omitempty"`
	State     wallet.State    `json:"state"`
	Role      registry.Role   `json:"role"`
	RoleLabel string          `json:"roleLabel"`
}

// GetSessionInfo reports the current session, enriched with the account's
// registered role when connected
func (m *Manager) GetSessionInfo(ctx context.Context) (*SessionInfo, error) {
	info := &SessionInfo{
		State:     m.connector.State(),
		RoleLabel: registry.RoleNone.Label(),
	}
	session := m.connector.Session()
	if session == nil {
		return info, nil
	}
	info.Session = session
	role, err := m.registry.GetRole(ctx, session.Account)
	if err != nil {
		return nil, err
	}
	info.Role = role
	info.RoleLabel = role.Label()
	return info, nil
}

// ActivateRole registers the connected account in the given role, sending
// the role's stake with the transaction
func (m *Manager) ActivateRole(ctx context.Context, role registry.Role) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.registry.ActivateRole(ctx, signer, role)
}

// PublishProduct pins the rich metadata first, then lists the product with
// the returned content reference. A pin failure aborts the listing.
func (m *Manager) PublishProduct(ctx context.Context, input *catalog.ProductInput, metadata interface{}) (*tctypes.BigInt, bool, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, false, err
	}
	if metadata != nil {
		ref, err := m.storage.PublishJSON(ctx, metadata)
		if err != nil {
			return nil, false, err
		}
		input.ContentRef = ref
		log.L(ctx).Infof("Product metadata pinned at %s", ref)
	}
	return m.catalog.ListProduct(ctx, signer, input)
}

// UpdateProduct changes the price and quantity of one of the connected
// exporter's listings
func (m *Manager) UpdateProduct(ctx context.Context, productID *tctypes.BigInt, pricePerUnit string, quantity uint64) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.catalog.UpdateProduct(ctx, signer, productID, pricePerUnit, quantity)
}

// DeactivateProduct hides one of the connected exporter's listings
func (m *Manager) DeactivateProduct(ctx context.Context, productID *tctypes.BigInt) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.catalog.DeactivateProduct(ctx, signer, productID)
}

// PlaceOrder escrows the exact total and records the order
func (m *Manager) PlaceOrder(ctx context.Context, input *orders.OrderInput) (*tctypes.BigInt, bool, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, false, err
	}
	return m.orders.PlaceOrder(ctx, signer, input)
}

// ConfirmOrder accepts a pending order
func (m *Manager) ConfirmOrder(ctx context.Context, orderID *tctypes.BigInt) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.orders.ConfirmOrder(ctx, signer, orderID)
}

// UpdateOrderStatus moves an order to a new lifecycle state
func (m *Manager) UpdateOrderStatus(ctx context.Context, orderID *tctypes.BigInt, status orders.OrderStatus) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.orders.UpdateOrderStatus(ctx, signer, orderID, status)
}

// ShipOrder pins the shipping documentation, then attaches its reference to
// the order, marking it shipped
func (m *Manager) ShipOrder(ctx context.Context, orderID *tctypes.BigInt, shippingDoc io.Reader) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	ref, err := m.storage.PublishData(ctx, shippingDoc)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Shipping documents pinned at %s", ref)
	return m.orders.AddShippingDetails(ctx, signer, orderID, ref)
}

// ApproveDelivery confirms receipt, releasing the escrowed payment
func (m *Manager) ApproveDelivery(ctx context.Context, orderID *tctypes.BigInt) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.orders.ConfirmDelivery(ctx, signer, orderID)
}

// CancelOrder cancels a pending order, refunding the escrow
func (m *Manager) CancelOrder(ctx context.Context, orderID *tctypes.BigInt) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.orders.CancelOrder(ctx, signer, orderID)
}

// StartCollaboration opens a collaboration request with a micro-manufacturer
func (m *Manager) StartCollaboration(ctx context.Context, input *collab.RequestInput) (*tctypes.BigInt, bool, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, false, err
	}
	return m.collab.CreateRequest(ctx, signer, input)
}

// SubmitSample pins the sample documentation, then records it on the request
func (m *Manager) SubmitSample(ctx context.Context, requestID *tctypes.BigInt, sampleDoc io.Reader) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	ref, err := m.storage.PublishData(ctx, sampleDoc)
	if err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Sample documents pinned at %s", ref)
	return m.collab.SubmitSample(ctx, signer, requestID, ref)
}

// CheckQuality records the verdict on a submitted sample
func (m *Manager) CheckQuality(ctx context.Context, requestID *tctypes.BigInt, approved bool, notes string) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.collab.CheckQuality(ctx, signer, requestID, approved, notes)
}

// FundCollaboration pays for a quality-approved request
func (m *Manager) FundCollaboration(ctx context.Context, requestID *tctypes.BigInt, quantity uint64) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.collab.PlaceOrder(ctx, signer, requestID, quantity)
}

// CompleteCollaboration closes out a funded request
func (m *Manager) CompleteCollaboration(ctx context.Context, requestID *tctypes.BigInt) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.collab.CompleteOrder(ctx, signer, requestID)
}

// CancelCollaboration withdraws an unfunded request
func (m *Manager) CancelCollaboration(ctx context.Context, requestID *tctypes.BigInt) (*blockchain.Receipt, error) {
	signer, err := m.connector.Signer(ctx)
	if err != nil {
		return nil, err
	}
	return m.collab.CancelRequest(ctx, signer, requestID)
}

// Registry gives read access to the role registry façade
func (m *Manager) Registry() *registry.Registry {
	return m.registry
}

// Catalog gives read access to the product catalog façade
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

// Orders gives read access to the order façade
func (m *Manager) Orders() *orders.Orders {
	return m.orders
}

// Collaborations gives read access to the collaboration façade
func (m *Manager) Collaborations() *collab.Collaborations {
	return m.collab
}

// Storage gives access to the pinning service
func (m *Manager) Storage() sharedstorage.Plugin {
	return m.storage
}
