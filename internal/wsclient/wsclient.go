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

package wsclient

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/internal/retry"
)

const (
	defaultInitialConnectAttempts = 5
	defaultBufferSizeKB           = 1024
)

type WSConfig struct {
	URL                    string            `json:"url"`
	Headers                map[string]string `json:"headers,omitempty"`
	Auth                   *WSAuthConfig     `json:"auth,omitempty"`
	WriteBufferSizeKB      *uint             `json:"writeBufferSizeKB"`
	ReadBufferSizeKB       *uint             `json:"readBufferSizeKB"`
	InitialConnectAttempts *uint             `json:"initialConnectAttempts,omitempty"`
}

type WSAuthConfig struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// WSClient maintains a websocket connection to the gateway event stream,
// reconnecting whenever the underlying connection drops. The event listener
// on top of it only sees one receive channel and one send call.
type WSClient struct {
	ctx             context.Context
	headers         http.Header
	url             string
	connectAttempts int
	wsdialer        *websocket.Dialer
	wsconn          *websocket.Conn
	closed          bool
	receive         chan []byte
	send            chan []byte
	writerDone      chan []byte
	closing         chan struct{}
	sendOnConnect   [][]byte
}

// NewWSClient dials the endpoint and keeps the connection alive until Close
// or context cancel. Messages in sendOnConnect are written after every
// successful connect, because the stream drops topic subscriptions whenever
// the socket goes away.
func NewWSClient(ctx context.Context, conf *WSConfig, sendOnConnect ...[]byte) (*WSClient, error) {

	w := &WSClient{
		ctx: ctx,
		url: conf.URL,
		wsdialer: &websocket.Dialer{
			ReadBufferSize:  int(config.UintWithDefault(conf.ReadBufferSizeKB, defaultBufferSizeKB) * 1024),
			WriteBufferSize: int(config.UintWithDefault(conf.WriteBufferSizeKB, defaultBufferSizeKB) * 1024),
		},
		connectAttempts: int(config.UintWithDefault(conf.InitialConnectAttempts, defaultInitialConnectAttempts)),
		headers:         make(http.Header),
		receive:         make(chan []byte),
		send:            make(chan []byte),
		closing:         make(chan struct{}),
		sendOnConnect:   sendOnConnect,
	}
	for k, v := range conf.Headers {
		w.headers.Set(k, v)
	}
	if conf.Auth != nil && conf.Auth.Username != "" && conf.Auth.Password != "" {
		w.headers.Set("Authorization", fmt.Sprintf("Basic %s", base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", conf.Auth.Username, conf.Auth.Password)))))
	}

	if err := w.connect(true); err != nil {
		return nil, err
	}

	go w.connectionLoop()

	return w, nil
}

func (w *WSClient) Close() {
	if !w.closed {
		w.closed = true
		close(w.closing)
		c := w.wsconn
		if c != nil {
			_ = c.Close()
		}
	}
}

// Receive returns the channel inbound messages are delivered on
func (w *WSClient) Receive() <-chan []byte {
	return w.receive
}

func (w *WSClient) Send(ctx context.Context, message []byte) error {
	select {
	case w.send <- message:
		return nil
	case <-ctx.Done():
		return i18n.NewError(ctx, i18n.MsgWSSendTimedOut)
	case <-w.closing:
		return i18n.NewError(ctx, i18n.MsgWSClosing)
	}
}

// connect dials until it succeeds. The initial connect gives up after the
// configured number of attempts so a bad URL fails startup, while reconnects
// keep trying until the client is closed or the context ends.
func (w *WSClient) connect(initial bool) error {
	l := log.L(w.ctx)
	backoff := &retry.Backoff{}
	for {
		if w.closed {
			return i18n.NewError(w.ctx, i18n.MsgWSClosing)
		}

		conn, res, err := w.wsdialer.Dial(w.url, w.headers)
		if err == nil {
			w.wsconn = conn
			for i := 0; err == nil && i < len(w.sendOnConnect); i++ {
				err = w.wsconn.WriteMessage(websocket.TextMessage, w.sendOnConnect[i])
			}
		}
		if err == nil {
			l.Infof("WS %s connected", w.url)
			return nil
		}

		if conn != nil {
			_ = conn.Close()
		}
		status := -1
		var body []byte
		if res != nil {
			body, _ = io.ReadAll(res.Body)
			status = res.StatusCode
		}
		l.Warnf("WS %s connect attempt %d failed [%d]: %s", w.url, backoff.Attempts()+1, status, string(body))
		if initial && backoff.Attempts()+1 >= w.connectAttempts {
			return i18n.WrapError(w.ctx, err, i18n.MsgWSConnectFailed)
		}
		if waitErr := backoff.WaitNext(w.ctx); waitErr != nil {
			return waitErr
		}
	}
}

// readFrames delivers inbound messages until the connection errors. Its
// return value is a message the writer failed to send, if there is one, so
// the reconnect can replay it on the next connection.
func (w *WSClient) readFrames() []byte {
	l := log.L(w.ctx)
	for {
		mt, message, err := w.wsconn.ReadMessage()

		// A writer failure surfaces here as a read error too. Drain the
		// writer's pending message first so it isn't lost (never block).
		select {
		case pendingMsg := <-w.writerDone:
			l.Debugf("WS %s closing reader after send error", w.url)
			return pendingMsg
		default:
		}

		if err != nil {
			l.Errorf("WS %s closed: %s", w.url, err)
			return nil
		}

		l.Tracef("WS %s read (mt=%d): %s", w.url, mt, message)
		w.receive <- message
	}
}

// writeFrames writes queued messages to the connection. On a write failure
// the unsent message is handed back through writerDone for the next
// connection to replay.
func (w *WSClient) writeFrames(message []byte) {
	l := log.L(w.ctx)
	defer close(w.writerDone)
	for {
		if message != nil {
			if err := w.wsconn.WriteMessage(websocket.TextMessage, message); err != nil {
				l.Errorf("WS %s send failed: %s", w.url, err)
				w.writerDone <- message
				return
			}
		}

		var ok bool
		message, ok = <-w.send
		if !ok {
			l.Debugf("WS %s send loop exiting", w.url)
			return
		}
	}
}

// connectionLoop runs reader and writer against the current connection,
// and reconnects when either side fails, until Close or context cancel
func (w *WSClient) connectionLoop() {
	l := log.L(w.ctx)
	defer close(w.receive)
	var pendingSend []byte
	for !w.closed {
		w.writerDone = make(chan []byte, 1)
		go w.writeFrames(pendingSend)

		// Run the reader synchronously - a connection failure has to be
		// acted on straight away
		pendingSend = w.readFrames()

		if err := w.wsconn.Close(); err != nil {
			l.Warnf("WS %s close failed: %s", w.url, err)
		}
		<-w.writerDone
		w.writerDone = nil
		w.wsconn = nil

		if !w.closed {
			if err := w.connect(false); err != nil {
				l.Debugf("WS %s exiting: %s", w.url, err)
				return
			}
		}
	}
}
