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
	"fmt"
	"net"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/internal/events"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/internal/trade"
)

var tcCodeExtractor = regexp.MustCompile(`^(TC\d+):`)

// Server is the external interface for the API server
type Server interface {
	Serve(ctx context.Context) error
}

type apiServer struct {
	manager      *trade.Manager
	listener     *events.Listener
	apiTimeout   time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
	hubOnce      sync.Once
	wsHub        *wsHub
}

// NewAPIServer builds a server over the trade manager. The event listener is
// optional - without it the /ws feed serves no events but still accepts
// connections.
func NewAPIServer(manager *trade.Manager, listener *events.Listener) Server {
	return &apiServer{
		manager:      manager,
		listener:     listener,
		apiTimeout:   config.GetDuration(config.APIRequestTimeout),
		readTimeout:  config.GetDuration(config.HTTPReadTimeout),
		writeTimeout: config.GetDuration(config.HTTPWriteTimeout),
	}
}

// Serve runs the HTTP listener until the context is cancelled
func (as *apiServer) Serve(ctx context.Context) error {
	listenAddr := fmt.Sprintf("%s:%d", config.GetString(config.HTTPAddress), config.GetUint(config.HTTPPort))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return i18n.NewError(ctx, i18n.MsgAPIServerStartFailed, listenAddr, err)
	}

	handler := as.handlerFromConfig(ctx)
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  as.readTimeout,
		WriteTimeout: as.writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		log.L(ctx).Infof("API server listening on %s", listener.Addr())
		errChan <- srv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errChan:
		return err
	}
}

func (as *apiServer) handlerFromConfig(ctx context.Context) http.Handler {
	router := as.createMuxRouter(ctx)
	if !config.GetBool(config.CorsEnabled) {
		return router
	}
	return cors.New(cors.Options{
		AllowedOrigins:   config.GetStringSlice(config.CorsAllowedOrigins),
		AllowedMethods:   config.GetStringSlice(config.CorsAllowedMethods),
		AllowedHeaders:   config.GetStringSlice(config.CorsAllowedHeaders),
		AllowCredentials: config.GetBool(config.CorsAllowCredentials),
		MaxAge:           config.GetInt(config.CorsMaxAge),
	}).Handler(router)
}

func (as *apiServer) createMuxRouter(ctx context.Context) *mux.Router {
	r := mux.NewRouter()
	v1 := r.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/session", as.postSession).Methods(http.MethodPost)
	v1.HandleFunc("/session", as.getSession).Methods(http.MethodGet)
	v1.HandleFunc("/session", as.deleteSession).Methods(http.MethodDelete)
	v1.HandleFunc("/session/probe", as.postSessionProbe).Methods(http.MethodPost)

	v1.HandleFunc("/roles/{role}/activate", as.postRoleActivate).Methods(http.MethodPost)
	v1.HandleFunc("/roles/{address}", as.getRole).Methods(http.MethodGet)

	v1.HandleFunc("/products", as.postProduct).Methods(http.MethodPost)
	v1.HandleFunc("/products", as.getProducts).Methods(http.MethodGet)
	v1.HandleFunc("/products/{id}", as.getProduct).Methods(http.MethodGet)
	v1.HandleFunc("/products/{id}", as.patchProduct).Methods(http.MethodPatch)
	v1.HandleFunc("/products/{id}", as.deleteProduct).Methods(http.MethodDelete)

	v1.HandleFunc("/orders", as.postOrder).Methods(http.MethodPost)
	v1.HandleFunc("/orders", as.getOrders).Methods(http.MethodGet)
	v1.HandleFunc("/orders/{id}", as.getOrder).Methods(http.MethodGet)
	v1.HandleFunc("/orders/{id}/escrow", as.getOrderEscrow).Methods(http.MethodGet)
	v1.HandleFunc("/orders/{id}/confirm", as.postOrderConfirm).Methods(http.MethodPost)
	v1.HandleFunc("/orders/{id}/status", as.postOrderStatus).Methods(http.MethodPost)
	v1.HandleFunc("/orders/{id}/ship", as.postOrderShip).Methods(http.MethodPost)
	v1.HandleFunc("/orders/{id}/delivery", as.postOrderDelivery).Methods(http.MethodPost)
	v1.HandleFunc("/orders/{id}/cancel", as.postOrderCancel).Methods(http.MethodPost)

	v1.HandleFunc("/collaborations", as.postCollaboration).Methods(http.MethodPost)
	v1.HandleFunc("/collaborations", as.getCollaborations).Methods(http.MethodGet)
	v1.HandleFunc("/collaborations/{id}", as.getCollaboration).Methods(http.MethodGet)
	v1.HandleFunc("/collaborations/{id}/sample", as.postCollaborationSample).Methods(http.MethodPost)
	v1.HandleFunc("/collaborations/{id}/quality", as.postCollaborationQuality).Methods(http.MethodPost)
	v1.HandleFunc("/collaborations/{id}/order", as.postCollaborationOrder).Methods(http.MethodPost)
	v1.HandleFunc("/collaborations/{id}/complete", as.postCollaborationComplete).Methods(http.MethodPost)
	v1.HandleFunc("/collaborations/{id}/cancel", as.postCollaborationCancel).Methods(http.MethodPost)

	v1.HandleFunc("/storage/data", as.postStorageData).Methods(http.MethodPost)
	v1.HandleFunc("/storage/json", as.postStorageJSON).Methods(http.MethodPost)
	v1.HandleFunc("/storage/{ref}", as.getStorage).Methods(http.MethodGet)

	r.HandleFunc("/ws", as.wsHandler)
	r.NotFoundHandler = http.HandlerFunc(as.notFoundHandler)
	return r
}

func (as *apiServer) notFoundHandler(res http.ResponseWriter, req *http.Request) {
	as.writeError(req.Context(), res, http.StatusNotFound, i18n.NewError(req.Context(), i18n.Msg404NotFound))
}

func (as *apiServer) writeJSON(res http.ResponseWriter, status int, output interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(output)
}

// writeError emits the standard {error, code} JSON body. The code is the
// leading TC identifier of the message, when there is one.
func (as *apiServer) writeError(ctx context.Context, res http.ResponseWriter, status int, err error) {
	log.L(ctx).Errorf("<-- %d: %s", status, err)
	code := ""
	if match := tcCodeExtractor.FindStringSubmatch(err.Error()); match != nil {
		code = match[1]
	}
	as.writeJSON(res, status, map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}

// statusForError maps the TC code of an error to an HTTP status
func statusForError(err error) int {
	match := tcCodeExtractor.FindStringSubmatch(err.Error())
	if match == nil {
		return http.StatusInternalServerError
	}
	switch match[1] {
	case "TC10115", "TC10132", "TC10134", "TC10151", "TC10153", "TC10156":
		return http.StatusBadRequest
	case "TC10121":
		return http.StatusForbidden
	case "TC10126":
		return http.StatusUnauthorized
	case "TC10122":
		return http.StatusConflict
	case "TC10141", "TC10152":
		return http.StatusNotFound
	case "TC10111", "TC10120", "TC10125", "TC10140":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
