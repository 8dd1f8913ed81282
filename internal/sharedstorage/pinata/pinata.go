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

package pinata

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/internal/restclient"
	"github.com/tradechain-io/tradechain/pkg/sharedstorage"
)

// Pinata pins content via the Pinata REST API, and retrieves it through a
// configured IPFS gateway. Credentials come from the config file or
// environment only.
type Pinata struct {
	ctx          context.Context
	capabilities *sharedstorage.Capabilities
	apiClient    *resty.Client
	gwClient     *resty.Client
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

type pinJSONRequest struct {
	PinataContent interface{} `json:"pinataContent"`
}

// refCheck permits bare CIDv0/CIDv1 style references after the optional
// ipfs:// prefix is stripped. Anything with a path separator is rejected.
var refCheck = regexp.MustCompile(`^[a-zA-Z0-9]{40,128}$`)

func (p *Pinata) Name() string {
	return "pinata"
}

func (p *Pinata) Init(ctx context.Context, prefix config.Prefix) error {

	p.ctx = log.WithLogField(ctx, "sharedstorage", "pinata")

	apiPrefix := prefix.SubPrefix(PinataConfAPISubconf)
	if apiPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, apiPrefix.Resolve(restclient.HTTPConfigURL), "pinata")
	}
	p.apiClient = restclient.New(p.ctx, apiPrefix)
	gwPrefix := prefix.SubPrefix(PinataConfGatewaySubconf)
	if gwPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, gwPrefix.Resolve(restclient.HTTPConfigURL), "pinata")
	}
	p.gwClient = restclient.New(p.ctx, gwPrefix)
	p.capabilities = &sharedstorage.Capabilities{}
	return nil
}

func (p *Pinata) Capabilities() *sharedstorage.Capabilities {
	return p.capabilities
}

// NormalizeRef strips the optional ipfs:// scheme and validates the hash
func NormalizeRef(ctx context.Context, ref string) (string, error) {
	normalized := strings.TrimPrefix(ref, "ipfs://")
	if !refCheck.MatchString(normalized) {
		return "", i18n.NewError(ctx, i18n.MsgStorageInvalidRef, ref)
	}
	return normalized, nil
}

func (p *Pinata) PublishData(ctx context.Context, data io.Reader) (string, error) {
	var pinned pinResponse
	res, err := p.apiClient.R().
		SetContext(ctx).
		SetFileReader("file", "file.bin", data).
		SetResult(&pinned).
		Post("/pinning/pinFileToIPFS")
	if err != nil || !res.IsSuccess() {
		return "", restclient.WrapRestErr(p.ctx, res, err, i18n.MsgStorageUnavailable)
	}
	log.L(ctx).Infof("Pinata pinned %s PinSize=%d", pinned.IpfsHash, pinned.PinSize)
	return pinned.IpfsHash, nil
}

func (p *Pinata) PublishJSON(ctx context.Context, obj interface{}) (string, error) {
	var pinned pinResponse
	res, err := p.apiClient.R().
		SetContext(ctx).
		SetBody(&pinJSONRequest{PinataContent: obj}).
		SetResult(&pinned).
		Post("/pinning/pinJSONToIPFS")
	if err != nil || !res.IsSuccess() {
		return "", restclient.WrapRestErr(p.ctx, res, err, i18n.MsgStorageUnavailable)
	}
	log.L(ctx).Infof("Pinata pinned %s PinSize=%d", pinned.IpfsHash, pinned.PinSize)
	return pinned.IpfsHash, nil
}

func (p *Pinata) RetrieveData(ctx context.Context, ref string) (io.ReadCloser, error) {
	hash, err := NormalizeRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	res, err := p.gwClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(fmt.Sprintf("/ipfs/%s", hash))
	restclient.OnAfterResponse(p.gwClient, res) // required using SetDoNotParseResponse
	if err != nil || !res.IsSuccess() {
		if res != nil && res.RawBody() != nil {
			_ = res.RawBody().Close()
		}
		return nil, restclient.WrapRestErr(p.ctx, res, err, i18n.MsgStorageUnavailable)
	}
	log.L(ctx).Infof("Pinata retrieved %s", hash)
	return res.RawBody(), nil
}

// CheckAuth verifies the configured JWT against the Pinata API
func (p *Pinata) CheckAuth(ctx context.Context) error {
	res, err := p.apiClient.R().
		SetContext(ctx).
		Get("/data/testAuthentication")
	if err != nil || !res.IsSuccess() {
		return restclient.WrapRestErr(p.ctx, res, err, i18n.MsgStorageUnavailable)
	}
	return nil
}
