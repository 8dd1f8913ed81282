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

package sharedstorage

import (
	"context"
	"io"

	"github.com/tradechain-io/tradechain/internal/config"
)

// Plugin is the interface to a content pinning service, holding the rich
// product/shipping content that is too large to store on chain. The chain
// holds only the content reference.
type Plugin interface {

	// InitPrefix initializes the set of configuration options that are valid,
	// with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Name returns the name of the plugin, for logging
	Name() string

	// Capabilities returns the plugin's static capabilities
	Capabilities() *Capabilities

	// PublishData pins a stream of raw content, returning its reference
	PublishData(ctx context.Context, data io.Reader) (ref string, err error)

	// PublishJSON pins a JSON document, returning its reference
	PublishJSON(ctx context.Context, obj interface{}) (ref string, err error)

	// RetrieveData fetches pinned content by reference. The reference may
	// carry an ipfs:// prefix, which is normalized away.
	RetrieveData(ctx context.Context, ref string) (content io.ReadCloser, err error)

	// CheckAuth verifies the configured credentials against the service
	CheckAuth(ctx context.Context) error
}

// Capabilities is the supported featureset of the plugin
type Capabilities struct {
}
