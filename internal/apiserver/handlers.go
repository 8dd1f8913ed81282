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

package apiserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tradechain-io/tradechain/internal/catalog"
	"github.com/tradechain-io/tradechain/internal/collab"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/orders"
	"github.com/tradechain-io/tradechain/internal/registry"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

func (as *apiServer) decodeJSON(ctx context.Context, req *http.Request, target interface{}) error {
	if err := json.NewDecoder(req.Body).Decode(target); err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgJSONDecodeFailed)
	}
	return nil
}

func parsePathID(ctx context.Context, req *http.Request) (*tctypes.BigInt, error) {
	idStr := mux.Vars(req)["id"]
	id, ok := tctypes.ToBigInt(idStr)
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgBigIntParseFailed, idStr)
	}
	return id, nil
}

// idResult is the response to a write that creates an on-chain entity. When
// the creating event was missing from the receipt the id is null and
// confirmed is false - the entity exists but its id must be read back.
type idResult struct {
	ID        *tctypes.BigInt `json:"id"`
	Confirmed bool            `json:"confirmed"`
}

// --- session ---

func (as *apiServer) postSession(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	session, err := as.manager.ConnectWallet(ctx)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusCreated, session)
}

func (as *apiServer) getSession(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	info, err := as.manager.GetSessionInfo(ctx)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, info)
}

func (as *apiServer) deleteSession(res http.ResponseWriter, req *http.Request) {
	as.manager.Disconnect(req.Context())
	res.WriteHeader(http.StatusNoContent)
}

func (as *apiServer) postSessionProbe(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	session, err := as.manager.ProbeSession(ctx)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, session)
}

// --- roles ---

func (as *apiServer) postRoleActivate(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	role, err := registry.ParseRole(ctx, mux.Vars(req)["role"])
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	receipt, err := as.manager.ActivateRole(ctx, role)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

func (as *apiServer) getRole(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	address := mux.Vars(req)["address"]
	role, err := as.manager.Registry().GetRole(ctx, address)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	blacklisted, err := as.manager.Registry().IsBlacklisted(ctx, address)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, map[string]interface{}{
		"address":     address,
		"role":        role,
		"label":       role.Label(),
		"blacklisted": blacklisted,
	})
}

// --- products ---

type productBody struct {
	catalog.ProductInput
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (as *apiServer) postProduct(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	var body productBody
	if err := as.decodeJSON(ctx, req, &body); err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	var metadata interface{}
	if body.Metadata != nil {
		metadata = body.Metadata
	}
	productID, confirmed, err := as.manager.PublishProduct(ctx, &body.ProductInput, metadata)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusCreated, &idResult{ID: productID, Confirmed: confirmed})
}

func (as *apiServer) getProducts(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	cat := as.manager.Catalog()

	var ids []*tctypes.BigInt
	var err error
	switch {
	case req.URL.Query().Get("exporter") != "":
		ids, err = cat.GetExporterProducts(ctx, req.URL.Query().Get("exporter"))
	case req.URL.Query().Get("category") != "":
		ids, err = cat.GetProductsByCategory(ctx, req.URL.Query().Get("category"))
	default:
		ids, err = cat.GetAllActiveProducts(ctx)
	}
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}

	products := make([]*catalog.Product, 0, len(ids))
	for _, id := range ids {
		product, err := cat.GetProduct(ctx, id)
		if err != nil {
			as.writeError(ctx, res, statusForError(err), err)
			return
		}
		products = append(products, product)
	}
	as.writeJSON(res, http.StatusOK, products)
}

func (as *apiServer) getProduct(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	var product *catalog.Product
	if req.URL.Query().Get("metadata") == "true" {
		product, err = as.manager.Catalog().GetProductWithMetadata(ctx, id)
	} else {
		product, err = as.manager.Catalog().GetProduct(ctx, id)
	}
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, product)
}

func (as *apiServer) patchProduct(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	var body struct {
		PricePerUnit string `json:"pricePerUnit"`
		Quantity     uint64 `json:"quantity"`
	}
	if err := as.decodeJSON(ctx, req, &body); err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	receipt, err := as.manager.UpdateProduct(ctx, id, body.PricePerUnit, body.Quantity)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

func (as *apiServer) deleteProduct(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	receipt, err := as.manager.DeactivateProduct(ctx, id)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

// --- orders ---

func (as *apiServer) postOrder(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	var input orders.OrderInput
	if err := as.decodeJSON(ctx, req, &input); err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	orderID, confirmed, err := as.manager.PlaceOrder(ctx, &input)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusCreated, &idResult{ID: orderID, Confirmed: confirmed})
}

func (as *apiServer) getOrders(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	ord := as.manager.Orders()

	var ids []*tctypes.BigInt
	var err error
	switch {
	case req.URL.Query().Get("importer") != "":
		ids, err = ord.GetImporterOrders(ctx, req.URL.Query().Get("importer"))
	case req.URL.Query().Get("pending") != "":
		ids, err = ord.GetPendingOrders(ctx, req.URL.Query().Get("pending"))
	case req.URL.Query().Get("exporter") != "":
		ids, err = ord.GetExporterOrders(ctx, req.URL.Query().Get("exporter"))
	default:
		as.writeError(ctx, res, http.StatusBadRequest, i18n.NewError(ctx, i18n.MsgJSONDecodeFailed))
		return
	}
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}

	result := make([]*orders.Order, 0, len(ids))
	for _, id := range ids {
		order, err := ord.GetOrder(ctx, id)
		if err != nil {
			as.writeError(ctx, res, statusForError(err), err)
			return
		}
		result = append(result, order)
	}
	as.writeJSON(res, http.StatusOK, result)
}

func (as *apiServer) getOrder(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	order, err := as.manager.Orders().GetOrder(ctx, id)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, order)
}

func (as *apiServer) getOrderEscrow(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	escrow, err := as.manager.Orders().GetEscrowAmount(ctx, id)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, map[string]interface{}{
		"escrow":    escrow,
		"formatted": tctypes.FormatBaseUnits(escrow),
	})
}

func (as *apiServer) postOrderConfirm(res http.ResponseWriter, req *http.Request) {
	as.orderAction(res, req, as.manager.ConfirmOrder)
}

func (as *apiServer) postOrderDelivery(res http.ResponseWriter, req *http.Request) {
	as.orderAction(res, req, as.manager.ApproveDelivery)
}

func (as *apiServer) postOrderCancel(res http.ResponseWriter, req *http.Request) {
	as.orderAction(res, req, as.manager.CancelOrder)
}

func (as *apiServer) orderAction(res http.ResponseWriter, req *http.Request, action func(context.Context, *tctypes.BigInt) (*blockchain.Receipt, error)) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	receipt, err := action(ctx, id)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

func (as *apiServer) postOrderStatus(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	var body struct {
		Status int64 `json:"status"`
	}
	if err := as.decodeJSON(ctx, req, &body); err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	status, err := orders.ClassifyStatus(ctx, body.Status)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	receipt, err := as.manager.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

func (as *apiServer) postOrderShip(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	defer req.Body.Close()
	receipt, err := as.manager.ShipOrder(ctx, id, req.Body)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

// --- collaborations ---

func (as *apiServer) postCollaboration(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	var input collab.RequestInput
	if err := as.decodeJSON(ctx, req, &input); err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	requestID, confirmed, err := as.manager.StartCollaboration(ctx, &input)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusCreated, &idResult{ID: requestID, Confirmed: confirmed})
}

func (as *apiServer) getCollaborations(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	col := as.manager.Collaborations()

	var ids []*tctypes.BigInt
	var err error
	switch {
	case req.URL.Query().Get("exporter") != "":
		ids, err = col.GetExporterRequests(ctx, req.URL.Query().Get("exporter"))
	case req.URL.Query().Get("pending") != "":
		ids, err = col.GetPendingRequests(ctx, req.URL.Query().Get("pending"))
	case req.URL.Query().Get("manufacturer") != "":
		ids, err = col.GetManufacturerRequests(ctx, req.URL.Query().Get("manufacturer"))
	default:
		as.writeError(ctx, res, http.StatusBadRequest, i18n.NewError(ctx, i18n.MsgJSONDecodeFailed))
		return
	}
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}

	result := make([]*collab.Request, 0, len(ids))
	for _, id := range ids {
		request, err := col.GetRequest(ctx, id)
		if err != nil {
			as.writeError(ctx, res, statusForError(err), err)
			return
		}
		result = append(result, request)
	}
	as.writeJSON(res, http.StatusOK, result)
}

func (as *apiServer) getCollaboration(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	request, err := as.manager.Collaborations().GetRequest(ctx, id)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, request)
}

func (as *apiServer) postCollaborationSample(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	defer req.Body.Close()
	receipt, err := as.manager.SubmitSample(ctx, id, req.Body)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

func (as *apiServer) postCollaborationQuality(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	var body struct {
		Approved bool   `json:"approved"`
		Notes    string `json:"notes"`
	}
	if err := as.decodeJSON(ctx, req, &body); err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	receipt, err := as.manager.CheckQuality(ctx, id, body.Approved, body.Notes)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

func (as *apiServer) postCollaborationOrder(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := parsePathID(ctx, req)
	if err != nil {
		as.writeError(ctx, res, http.StatusBadRequest, err)
		return
	}
	var body struct {
		Quantity uint64 `json:"quantity"`
	}
	if err := as.decodeJSON(ctx, req, &body); err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	receipt, err := as.manager.FundCollaboration(ctx, id, body.Quantity)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusOK, receipt)
}

func (as *apiServer) postCollaborationComplete(res http.ResponseWriter, req *http.Request) {
	as.orderAction(res, req, as.manager.CompleteCollaboration)
}

func (as *apiServer) postCollaborationCancel(res http.ResponseWriter, req *http.Request) {
	as.orderAction(res, req, as.manager.CancelCollaboration)
}

// --- storage ---

func (as *apiServer) postStorageData(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	defer req.Body.Close()
	ref, err := as.manager.Storage().PublishData(ctx, req.Body)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusCreated, map[string]string{"ref": ref})
}

func (as *apiServer) postStorageJSON(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	var obj interface{}
	if err := as.decodeJSON(ctx, req, &obj); err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	ref, err := as.manager.Storage().PublishJSON(ctx, obj)
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	as.writeJSON(res, http.StatusCreated, map[string]string{"ref": ref})
}

func (as *apiServer) getStorage(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	reader, err := as.manager.Storage().RetrieveData(ctx, mux.Vars(req)["ref"])
	if err != nil {
		as.writeError(ctx, res, statusForError(err), err)
		return
	}
	defer reader.Close()
	res.Header().Set("Content-Type", "application/octet-stream")
	res.WriteHeader(http.StatusOK)
	_, _ = io.Copy(res, reader)
}
