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
	"net/url"
	"strings"

	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/internal/restclient"
)

const (
	WSConfigKeyWriteBufferSizeKB      = "ws.writeBufferSizeKB"
	WSConfigKeyReadBufferSizeKB       = "ws.readBufferSizeKB"
	WSConfigKeyInitialConnectAttempts = "ws.initialConnectAttempts"
	WSConfigKeyPath                   = "ws.path"
)

// InitPrefix ensures the prefix is initialized for HTTP too, as WS and HTTP
// can share the same tree of configuration (and all the HTTP options apply to the initial upgrade)
func InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix)
	prefix.AddKnownKey(WSConfigKeyWriteBufferSizeKB, defaultBufferSizeKB)
	prefix.AddKnownKey(WSConfigKeyReadBufferSizeKB, defaultBufferSizeKB)
	prefix.AddKnownKey(WSConfigKeyInitialConnectAttempts, defaultInitialConnectAttempts)
	prefix.AddKnownKey(WSConfigKeyPath)
}

// GenerateConfigFromPrefix builds a WSConfig from the configured prefix, deriving
// the ws:// URL from the http:// URL when no explicit path override is set
func GenerateConfigFromPrefix(prefix config.Prefix) *WSConfig {
	conf := &WSConfig{
		URL:     deriveWSURL(prefix.GetString(restclient.HTTPConfigURL), prefix.GetString(WSConfigKeyPath)),
		Headers: make(map[string]string),
	}
	for k, v := range prefix.GetObject(restclient.HTTPConfigHeaders) {
		if vs, ok := v.(string); ok {
			conf.Headers[k] = vs
		}
	}
	authUsername := prefix.GetString(restclient.HTTPConfigAuthUsername)
	authPassword := prefix.GetString(restclient.HTTPConfigAuthPassword)
	if authUsername != "" && authPassword != "" {
		conf.Auth = &WSAuthConfig{Username: authUsername, Password: authPassword}
	}
	writeBufferSize := prefix.GetUint(WSConfigKeyWriteBufferSizeKB)
	readBufferSize := prefix.GetUint(WSConfigKeyReadBufferSizeKB)
	connectAttempts := prefix.GetUint(WSConfigKeyInitialConnectAttempts)
	conf.WriteBufferSizeKB = &writeBufferSize
	conf.ReadBufferSizeKB = &readBufferSize
	conf.InitialConnectAttempts = &connectAttempts
	return conf
}

func deriveWSURL(httpURL, wsPath string) string {
	u, err := url.Parse(httpURL)
	if err != nil || u.Scheme == "" {
		return httpURL
	}
	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	if wsPath != "" {
		u.Path = "/" + strings.TrimPrefix(wsPath, "/")
	}
	return u.String()
}
