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
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tradechain-io/tradechain/internal/events"
	"github.com/tradechain-io/tradechain/internal/log"
)

const wsWriteTimeout = 10 * time.Second

var wsUpgrader = websocket.Upgrader{
	// CORS policy is enforced by the surrounding middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsHub fans contract events out to every connected dashboard
type wsHub struct {
	mux   sync.Mutex
	conns map[*websocket.Conn]bool
}

func (as *apiServer) hub() *wsHub {
	as.hubOnce.Do(func() {
		as.wsHub = &wsHub{conns: make(map[*websocket.Conn]bool)}
		if as.listener != nil {
			as.listener.Subscribe("", as.wsHub.broadcast)
		}
	})
	return as.wsHub
}

func (h *wsHub) add(conn *websocket.Conn) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.conns[conn] = true
}

func (h *wsHub) remove(conn *websocket.Conn) {
	h.mux.Lock()
	defer h.mux.Unlock()
	delete(h.conns, conn)
	conn.Close()
}

// broadcast sends the event to every connection, dropping any that fail
func (h *wsHub) broadcast(ctx context.Context, event *events.Event) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":            "contract_event",
		"event":           event.Name,
		"signature":       event.Signature,
		"address":         event.Address,
		"transactionHash": event.TransactionHash,
		"blockNumber":     event.BlockNumber,
		"data":            event.Data,
	})
	if err != nil {
		log.L(ctx).Errorf("Failed to serialize event for fan-out: %s", err)
		return
	}

	h.mux.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mux.Unlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.L(ctx).Warnf("Dropping websocket client: %s", err)
			h.remove(conn)
		}
	}
}

func (as *apiServer) wsHandler(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	conn, err := wsUpgrader.Upgrade(res, req, nil)
	if err != nil {
		log.L(ctx).Errorf("Websocket upgrade failed: %s", err)
		return
	}
	hub := as.hub()
	hub.add(conn)
	log.L(ctx).Debugf("Websocket client connected: %s", conn.RemoteAddr())

	// Consume (and ignore) client frames until the connection drops
	go func() {
		defer hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
