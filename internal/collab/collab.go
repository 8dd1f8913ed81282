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

package collab

import (
	"context"
	"fmt"

	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// Request is an exporter-to-manufacturer collaboration as stored on chain.
// It walks a sample/quality-check handshake before any funds move.
type Request struct {
	ID                *tctypes.BigInt `json:"id"`
	Exporter          string          `json:"exporter"`
	MicroManufacturer string          `json:"microManufacturer"`
	ProductID         *tctypes.BigInt `json:"productId"`
	ProductName       string          `json:"productName"`
	RequestedQuantity *tctypes.BigInt `json:"requestedQuantity"`
	PricePerUnit      *tctypes.BigInt `json:"pricePerUnit"`
	Specifications    string          `json:"specifications"`
	Status            RequestStatus   `json:"status"`
	StatusLabel       string          `json:"statusLabel"`
	SampleRef         string          `json:"sampleIpfsHash,omitempty"`
	QualityNotes      string          `json:"qualityNotes,omitempty"`
	CreatedAt         *tctypes.BigInt `json:"createdAt"`
	UpdatedAt         *tctypes.BigInt `json:"updatedAt"`
}

// RequestInput is the user-supplied collaboration request. The unit price is
// a decimal currency string, converted exactly to base units at the boundary.
type RequestInput struct {
	Manufacturer   string          `json:"manufacturer"`
	ProductID      *tctypes.BigInt `json:"productId"`
	ProductName    string          `json:"productName"`
	Quantity       uint64          `json:"quantity"`
	PricePerUnit   string          `json:"pricePerUnit"`
	Specifications string          `json:"specifications"`
}

// Collaborations is the façade onto the collaboration contract
type Collaborations struct {
	provider blockchain.Provider
	address  string
}

func NewCollaborations(provider blockchain.Provider, address string) *Collaborations {
	return &Collaborations{
		provider: provider,
		address:  address,
	}
}

// CreateRequest opens a collaboration with a micro-manufacturer, returning
// the new on-chain ID from the RequestCreated event. A missing event is not
// a failure: the request exists, and the second return is false.
func (c *Collaborations) CreateRequest(ctx context.Context, signer blockchain.Signer, input *RequestInput) (*tctypes.BigInt, bool, error) {
	unitPrice, err := tctypes.ParseBaseUnits(ctx, input.PricePerUnit)
	if err != nil {
		return nil, false, err
	}
	receipt, err := signer.Invoke(ctx, c.address, abiCreateRequest, []interface{}{
		input.Manufacturer,
		input.ProductID.String(),
		input.ProductName,
		fmt.Sprintf("%d", input.Quantity),
		unitPrice.String(),
		input.Specifications,
	}, nil)
	if err != nil {
		return nil, false, err
	}
	requestID, ok := blockchain.ExtractEventID(receipt, "RequestCreated", "requestId")
	if !ok {
		log.L(ctx).Warnf("Request mined in %s but no RequestCreated event found", receipt.TransactionHash)
		return nil, false, nil
	}
	return requestID, true, nil
}

// SubmitSample attaches the pinned sample documentation (manufacturer)
func (c *Collaborations) SubmitSample(ctx context.Context, signer blockchain.Signer, requestID *tctypes.BigInt, sampleRef string) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, c.address, abiSubmitSample, []interface{}{
		requestID.String(),
		sampleRef,
	}, nil)
}

// CheckQuality records the exporter's verdict on the submitted sample
func (c *Collaborations) CheckQuality(ctx context.Context, signer blockchain.Signer, requestID *tctypes.BigInt, approved bool, notes string) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, c.address, abiCheckQuality, []interface{}{
		requestID.String(),
		approved,
		notes,
	}, nil)
}

// PlaceOrder funds a quality-approved request. The payment is computed
// exactly from the request's recorded unit price and the ordered quantity.
func (c *Collaborations) PlaceOrder(ctx context.Context, signer blockchain.Signer, requestID *tctypes.BigInt, quantity uint64) (*blockchain.Receipt, error) {
	request, err := c.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	payment := tctypes.MulQuantity(request.PricePerUnit, quantity)
	return signer.Invoke(ctx, c.address, abiPlaceOrder, []interface{}{
		requestID.String(),
		fmt.Sprintf("%d", quantity),
	}, payment)
}

// CompleteOrder closes out a funded request, releasing payment to the
// manufacturer
func (c *Collaborations) CompleteOrder(ctx context.Context, signer blockchain.Signer, requestID *tctypes.BigInt) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, c.address, abiCompleteOrder, []interface{}{requestID.String()}, nil)
}

// CancelRequest withdraws a request that has not been funded
func (c *Collaborations) CancelRequest(ctx context.Context, signer blockchain.Signer, requestID *tctypes.BigInt) (*blockchain.Receipt, error) {
	return signer.Invoke(ctx, c.address, abiCancelRequest, []interface{}{requestID.String()}, nil)
}

// GetRequest reads a single request
func (c *Collaborations) GetRequest(ctx context.Context, requestID *tctypes.BigInt) (*Request, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetRequest, []interface{}{requestID.String()})
	if err != nil {
		return nil, err
	}
	return requestFromOutput(ctx, output)
}

// GetExporterRequests lists the request IDs opened by one exporter
func (c *Collaborations) GetExporterRequests(ctx context.Context, exporter string) ([]*tctypes.BigInt, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetExporterRequests, []interface{}{exporter})
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetManufacturerRequests lists the request IDs addressed to one manufacturer
func (c *Collaborations) GetManufacturerRequests(ctx context.Context, manufacturer string) ([]*tctypes.BigInt, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetManufacturerRequests, []interface{}{manufacturer})
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetPendingRequests lists a manufacturer's requests still awaiting a sample
func (c *Collaborations) GetPendingRequests(ctx context.Context, manufacturer string) ([]*tctypes.BigInt, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetPendingRequests, []interface{}{manufacturer})
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetTotalRequests returns the all-time request count
func (c *Collaborations) GetTotalRequests(ctx context.Context) (*tctypes.BigInt, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetTotalRequests, nil)
	if err != nil {
		return nil, err
	}
	total, ok := output.GetBigInt("output")
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgBigIntParseFailed, output.GetString("output"))
	}
	return total, nil
}

func requestFromOutput(ctx context.Context, output tctypes.JSONObject) (*Request, error) {
	status, err := ClassifyStatus(ctx, output.GetInt64("status"))
	if err != nil {
		return nil, err
	}
	request := &Request{
		Exporter:          output.GetString("exporter"),
		MicroManufacturer: output.GetString("microManufacturer"),
		ProductName:       output.GetString("productName"),
		Specifications:    output.GetString("specifications"),
		Status:            status,
		StatusLabel:       status.Label(),
		SampleRef:         output.GetString("sampleIpfsHash"),
		QualityNotes:      output.GetString("qualityNotes"),
	}
	request.ID, _ = output.GetBigInt("id")
	request.ProductID, _ = output.GetBigInt("productId")
	request.RequestedQuantity, _ = output.GetBigInt("requestedQuantity")
	request.PricePerUnit, _ = output.GetBigInt("pricePerUnit")
	request.CreatedAt, _ = output.GetBigInt("createdAt")
	request.UpdatedAt, _ = output.GetBigInt("updatedAt")
	return request, nil
}
