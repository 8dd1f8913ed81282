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

package orders

import (
	"context"
	"fmt"

	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// Order is a purchase as stored on chain. The escrowed total is held by the
// contract until delivery is confirmed.
type Order struct {
	ID              *tctypes.BigInt `json:"id"`
	Importer        string          `json:"importer"`
	Exporter        string          `json:"exporter"`
	ProductID       *tctypes.BigInt `json:"productId"`
	ProductName     string          `json:"productName"`
	Quantity        *tctypes.BigInt `json:"quantity"`
	PricePerUnit    *tctypes.BigInt `json:"pricePerUnit"`
	TotalPrice      *tctypes.BigInt `json:"totalPrice"`
	Status          OrderStatus     `json:"status"`
	StatusLabel     string          `json:"statusLabel"`
	ShippingDetails string          `json:"shippingDetails,omitempty"`
	CreatedAt       *tctypes.BigInt `json:"createdAt"`
	UpdatedAt       *tctypes.BigInt `json:"updatedAt"`
}

// OrderInput is the user-supplied purchase data. The unit price is a decimal
// currency string. The escrow value sent with the transaction is computed
// exactly from it, never via floating point.
type OrderInput struct {
	Exporter     string          `json:"exporter"`
	ProductID    *tctypes.BigInt `json:"productId"`
	ProductName  string          `json:"productName"`
	Quantity     uint64          `json:"quantity"`
	PricePerUnit string          `json:"pricePerUnit"`
}

// Orders is the façade onto the order contract
type Orders struct {
	provider blockchain.Provider
	address  string
}

func NewOrders(provider blockchain.Provider, address string) *Orders {
	return &Orders{
		provider: provider,
		address:  address,
	}
}

// PlaceOrder escrows quantity×pricePerUnit and records the order, returning
// the new on-chain ID from the OrderPlaced event. A missing event is not a
// failure: the order is placed, and the second return is false.
func (o *Orders) PlaceOrder(ctx context.Context, signer blockchain.Signer, input *OrderInput) (*tctypes.BigInt, bool, error) {
	unitPrice, err := tctypes.ParseBaseUnits(ctx, input.PricePerUnit)
	if err != nil {
		return nil, false, err
	}
	escrow := tctypes.MulQuantity(unitPrice, input.Quantity)
	receipt, err := signer.Invoke(ctx, o.address, abiPlaceOrder, []interface{}{
		input.Exporter,
		input.ProductID.String(),
		input.ProductName,
		fmt.Sprintf("%d", input.Quantity),
		unitPrice.String(),
	}, escrow)
	if err != nil {
		return nil, false, err
	}
	orderID, ok := blockchain.ExtractEventID(receipt, "OrderPlaced", "orderId")
	if !ok {
		log.L(ctx).Warnf("Order mined in %s but no OrderPlaced event found", receipt.TransactionHash)
		return nil, false, nil
	}
	return orderID, true, nil
}

// ConfirmOrder accepts a pending order (exporter)
func (o *Orders) ConfirmOrder(ctx context.Context, signer blockchain.Signer, orderID *tctypes.BigInt) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, o.address, abiConfirmOrder, []interface{}{orderID.String()}, nil)
}

// UpdateOrderStatus moves an order to a new lifecycle state
func (o *Orders) UpdateOrderStatus(ctx context.Context, signer blockchain.Signer, orderID *tctypes.BigInt, status OrderStatus) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, o.address, abiUpdateOrderStatus, []interface{}{
		orderID.String(),
		fmt.Sprintf("%d", status),
	}, nil)
}

// AddShippingDetails attaches the pinned shipping document reference and
// marks the order shipped
func (o *Orders) AddShippingDetails(ctx context.Context, signer blockchain.Signer, orderID *tctypes.BigInt, shippingRef string) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, o.address, abiAddShippingDetails, []interface{}{
		orderID.String(),
		shippingRef,
	}, nil)
}

// ConfirmDelivery acknowledges receipt (importer), releasing the escrowed
// payment to the exporter
func (o *Orders) ConfirmDelivery(ctx context.Context, signer blockchain.Signer, orderID *tctypes.BigInt) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, o.address, abiConfirmDelivery, []interface{}{orderID.String()}, nil)
}

// CancelOrder cancels a pending order, refunding the escrow
func (o *Orders) CancelOrder(ctx context.Context, signer blockchain.Signer, orderID *tctypes.BigInt) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, o.address, abiCancelOrder, []interface{}{orderID.String()}, nil)
}

// GetOrder reads a single order
func (o *Orders) GetOrder(ctx context.Context, orderID *tctypes.BigInt) (*Order, error) {
	output, err := o.provider.Query(ctx, o.address, abiGetOrder, []interface{}{orderID.String()})
	if err != nil {
		return nil, err
	}
	return orderFromOutput(ctx, output)
}

// GetImporterOrders lists the order IDs placed by one importer
func (o *Orders) GetImporterOrders(ctx context.Context, importer string) ([]*tctypes.BigInt, error) {
	output, err := o.provider.Query(ctx, o.address, abiGetImporterOrders, []interface{}{importer})
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetExporterOrders lists the order IDs received by one exporter
func (o *Orders) GetExporterOrders(ctx context.Context, exporter string) ([]*tctypes.BigInt, error) {
	output, err := o.provider.Query(ctx, o.address, abiGetExporterOrders, []interface{}{exporter})
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetPendingOrders lists an exporter's orders still awaiting confirmation
func (o *Orders) GetPendingOrders(ctx context.Context, exporter string) ([]*tctypes.BigInt, error) {
	output, err := o.provider.Query(ctx, o.address, abiGetPendingOrders, []interface{}{exporter})
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetEscrowAmount reads the funds currently held for an order
func (o *Orders) GetEscrowAmount(ctx context.Context, orderID *tctypes.BigInt) (*tctypes.BigInt, error) {
	output, err := o.provider.Query(ctx, o.address, abiGetEscrowAmount, []interface{}{orderID.String()})
	if err != nil {
		return nil, err
	}
	escrow, ok := output.GetBigInt("output")
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgBigIntParseFailed, output.GetString("output"))
	}
	return escrow, nil
}

// GetTotalOrders returns the all-time order count
func (o *Orders) GetTotalOrders(ctx context.Context) (*tctypes.BigInt, error) {
	output, err := o.provider.Query(ctx, o.address, abiGetTotalOrders, nil)
	if err != nil {
		return nil, err
	}
	total, ok := output.GetBigInt("output")
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgBigIntParseFailed, output.GetString("output"))
	}
	return total, nil
}

func orderFromOutput(ctx context.Context, output tctypes.JSONObject) (*Order, error) {
	status, err := ClassifyStatus(ctx, output.GetInt64("status"))
	if err != nil {
		return nil, err
	}
	order := &Order{
		Importer:        output.GetString("importer"),
		Exporter:        output.GetString("exporter"),
		ProductName:     output.GetString("productName"),
		Status:          status,
		StatusLabel:     status.Label(),
		ShippingDetails: output.GetString("shippingDetails"),
	}
	order.ID, _ = output.GetBigInt("id")
	order.ProductID, _ = output.GetBigInt("productId")
	order.Quantity, _ = output.GetBigInt("quantity")
	order.PricePerUnit, _ = output.GetBigInt("pricePerUnit")
	order.TotalPrice, _ = output.GetBigInt("totalPrice")
	order.CreatedAt, _ = output.GetBigInt("createdAt")
	order.UpdatedAt, _ = output.GetBigInt("updatedAt")
	return order, nil
}
