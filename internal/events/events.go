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

package events

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/karlseguin/ccache"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/internal/wsclient"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

const (
	subCacheSize = 100
	subCacheTTL  = time.Hour
)

// Event is a decoded contract event from the gateway stream, as handed to
// registered handlers
type Event struct {
	Name             string
	Signature        string
	SubscriptionName string
	Address          string
	TransactionHash  string
	BlockNumber      *tctypes.BigInt
	Data             tctypes.JSONObject
}

// Handler receives dispatched events. Handlers must not block: the stream is
// acked batch-by-batch and a stuck handler stalls delivery.
type Handler func(ctx context.Context, event *Event)

type wsCommand struct {
	Type  string `json:"type"`
	Topic string `json:"topic,omitempty"`
}

// Listener consumes the gateway event stream over a reconnecting websocket,
// re-subscribing to the topic after every connect, and dispatching decoded
// events to handlers by event name.
type Listener struct {
	ctx      context.Context
	cancel   context.CancelFunc
	topic    string
	wsconn   *wsclient.WSClient
	gateway  *resty.Client
	subCache *ccache.Cache
	mux      sync.Mutex
	handlers map[string][]Handler
	closed   chan struct{}
}

// NewListener connects the websocket and starts the event loop. The gateway
// REST client is used to resolve subscription IDs to names for handlers.
func NewListener(ctx context.Context, topic string, wsConf *wsclient.WSConfig, gateway *resty.Client) (*Listener, error) {
	lCtx, cancel := context.WithCancel(ctx)
	listenCmd, _ := json.Marshal(&wsCommand{Type: "listen", Topic: topic})
	wsconn, err := wsclient.NewWSClient(lCtx, wsConf, listenCmd)
	if err != nil {
		cancel()
		return nil, err
	}
	l := &Listener{
		ctx:      log.WithLogField(lCtx, "role", "event-listener"),
		cancel:   cancel,
		topic:    topic,
		wsconn:   wsconn,
		gateway:  gateway,
		subCache: ccache.New(ccache.Configure().MaxSize(subCacheSize)),
		handlers: make(map[string][]Handler),
		closed:   make(chan struct{}),
	}
	go l.eventLoop()
	return l, nil
}

// Subscribe registers a handler for one event name. An empty name receives
// every event.
func (l *Listener) Subscribe(eventName string, handler Handler) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.handlers[eventName] = append(l.handlers[eventName], handler)
}

// Close shuts down the websocket and waits for the event loop to exit
func (l *Listener) Close() {
	l.cancel()
	l.wsconn.Close()
	<-l.closed
}

func (l *Listener) eventLoop() {
	defer close(l.closed)
	ctx := l.ctx
	ack, _ := json.Marshal(&wsCommand{Type: "ack", Topic: l.topic})
	for {
		select {
		case <-ctx.Done():
			log.L(ctx).Debugf("Event loop exiting (context cancelled)")
			return
		case msgBytes, ok := <-l.wsconn.Receive():
			if !ok {
				log.L(ctx).Debugf("Event loop exiting (receive channel closed)")
				return
			}
			var msgParsed interface{}
			if err := json.Unmarshal(msgBytes, &msgParsed); err != nil {
				log.L(ctx).Errorf("Message cannot be parsed as JSON: %s\n%s", err, string(msgBytes))
				continue // Swallow this and move on
			}
			switch msgTyped := msgParsed.(type) {
			case []interface{}:
				l.handleMessageBatch(ctx, msgTyped)
				if err := l.wsconn.Send(ctx, ack); err != nil {
					log.L(ctx).Errorf("Event loop exiting: %s", err)
					return
				}
			default:
				// Replies to individual commands - nothing to process
				log.L(ctx).Tracef("Non-batch message: %+v", msgTyped)
			}
		}
	}
}

func (l *Listener) handleMessageBatch(ctx context.Context, messages []interface{}) {
	for i, msgI := range messages {
		msgMap, ok := msgI.(map[string]interface{})
		if !ok {
			log.L(ctx).Errorf("Message cannot be parsed as JSON: %+v", msgI)
			continue
		}
		msgJSON := tctypes.JSONObject(msgMap)
		signature := msgJSON.GetString("signature")
		name := strings.SplitN(signature, "(", 2)[0]
		l1 := log.L(ctx).WithField("evmsgidx", i)
		l1.Infof("Received '%s' message", signature)

		event := &Event{
			Name:            name,
			Signature:       signature,
			Address:         msgJSON.GetString("address"),
			TransactionHash: msgJSON.GetString("transactionHash"),
			Data:            msgJSON.GetObject("data"),
		}
		event.BlockNumber, _ = msgJSON.GetBigInt("blockNumber")
		if subID := msgJSON.GetString("subId"); subID != "" {
			event.SubscriptionName = l.resolveSubscriptionName(ctx, subID)
		}
		l.dispatch(ctx, event)
	}
}

func (l *Listener) dispatch(ctx context.Context, event *Event) {
	l.mux.Lock()
	handlers := make([]Handler, 0, len(l.handlers[event.Name])+len(l.handlers[""]))
	handlers = append(handlers, l.handlers[event.Name]...)
	handlers = append(handlers, l.handlers[""]...)
	l.mux.Unlock()
	for _, handler := range handlers {
		handler(ctx, event)
	}
}

// resolveSubscriptionName looks up the friendly name of a gateway
// subscription, caching the result. Resolution failures are not fatal to
// delivery - the event goes out with an empty subscription name.
func (l *Listener) resolveSubscriptionName(ctx context.Context, subID string) string {
	if cached := l.subCache.Get(subID); cached != nil && !cached.Expired() {
		return cached.Value().(string)
	}
	var sub struct {
		Name string `json:"name"`
	}
	res, err := l.gateway.R().
		SetContext(ctx).
		SetResult(&sub).
		Get("/subscriptions/" + subID)
	if err != nil || !res.IsSuccess() {
		log.L(ctx).Warnf("%s", i18n.NewError(ctx, i18n.MsgEventStreamSubFailed, subID))
		return ""
	}
	l.subCache.Set(subID, sub.Name, subCacheTTL)
	return sub.Name
}
