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

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/karlseguin/ccache"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/pkg/blockchain"
	"github.com/tradechain-io/tradechain/pkg/sharedstorage"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

const (
	productCacheSize = 250
	productCacheTTL  = 30 * time.Second
)

// Catalog is the façade onto the product listing contract. Reads of
// individual products are cached briefly, and invalidated on any local write.
type Catalog struct {
	provider blockchain.Provider
	storage  sharedstorage.Plugin
	address  string
	cache    *ccache.Cache
}

func NewCatalog(provider blockchain.Provider, storage sharedstorage.Plugin, address string) *Catalog {
	return &Catalog{
		provider: provider,
		storage:  storage,
		address:  address,
		cache:    ccache.New(ccache.Configure().MaxSize(productCacheSize)),
	}
}

// ListProduct publishes a new product, returning the new on-chain ID from
// the ProductListed event. A missing event is not a failure: the listing is
// confirmed, and the second return is false.
func (c *Catalog) ListProduct(ctx context.Context, signer blockchain.Signer, input *ProductInput) (*tctypes.BigInt, bool, error) {
	price, err := tctypes.ParseBaseUnits(ctx, input.PricePerUnit)
	if err != nil {
		return nil, false, err
	}
	receipt, err := signer.Invoke(ctx, c.address, abiListProduct, []interface{}{
		input.Name,
		input.Description,
		input.Category,
		price.String(),
		fmt.Sprintf("%d", input.Quantity),
		input.ContentRef,
	}, nil)
	if err != nil {
		return nil, false, err
	}
	productID, ok := blockchain.ExtractEventID(receipt, "ProductListed", "productId")
	if !ok {
		log.L(ctx).Warnf("Listing mined in %s but no ProductListed event found", receipt.TransactionHash)
		return nil, false, nil
	}
	return productID, true, nil
}

// UpdateProduct changes the price and quantity of an existing listing
func (c *Catalog) UpdateProduct(ctx context.Context, signer blockchain.Signer, productID *tctypes.BigInt, pricePerUnit string, quantity uint64) (*blockchain.Receipt, error) {
	price, err := tctypes.ParseBaseUnits(ctx, pricePerUnit)
	if err != nil {
		return nil, err
	}
	receipt, err := signer.Invoke(ctx, c.address, abiUpdateProduct, []interface{}{
		productID.String(),
		price.String(),
		fmt.Sprintf("%d", quantity),
	}, nil)
	if err == nil {
		c.cache.Delete(productID.String())
	}
	return receipt, err
}

// DeactivateProduct hides a listing from the active catalog
func (c *Catalog) DeactivateProduct(ctx context.Context, signer blockchain.Signer, productID *tctypes.BigInt) (*blockchain.Receipt, error) {
	receipt, err := signer.Invoke(ctx, c.address, abiDeactivateProduct, []interface{}{productID.String()}, nil)
	if err == nil {
		c.cache.Delete(productID.String())
	}
	return receipt, err
}

// ReduceQuantity decrements available stock after an order is placed
func (c *Catalog) ReduceQuantity(ctx context.Context, signer blockchain.Signer, productID *tctypes.BigInt, quantity uint64) (*blockchain.Receipt, error) {
	receipt, err := signer.Invoke(ctx, c.address, abiReduceQuantity, []interface{}{
		productID.String(),
		fmt.Sprintf("%d", quantity),
	}, nil)
	if err == nil {
		c.cache.Delete(productID.String())
	}
	return receipt, err
}

// GetProduct reads a single listing, from cache when fresh
func (c *Catalog) GetProduct(ctx context.Context, productID *tctypes.BigInt) (*Product, error) {
	if cached := c.cache.Get(productID.String()); cached != nil && !cached.Expired() {
		return cached.Value().(*Product), nil
	}
	output, err := c.provider.Query(ctx, c.address, abiGetProduct, []interface{}{productID.String()})
	if err != nil {
		return nil, err
	}
	product := productFromOutput(output)
	c.cache.Set(productID.String(), product, productCacheTTL)
	return product, nil
}

// GetProductWithMetadata reads a listing and enriches it with its pinned
// content. A metadata fetch failure degrades to the bare on-chain listing,
// with a warning, rather than failing the read.
func (c *Catalog) GetProductWithMetadata(ctx context.Context, productID *tctypes.BigInt) (*Product, error) {
	product, err := c.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.ContentRef == "" || c.storage == nil {
		return product, nil
	}
	reader, err := c.storage.RetrieveData(ctx, product.ContentRef)
	if err != nil {
		log.L(ctx).Warnf("Could not retrieve metadata %s for product %s: %s", product.ContentRef, productID, err)
		return product, nil
	}
	defer reader.Close()
	var metadata tctypes.JSONObject
	if err := json.NewDecoder(reader).Decode(&metadata); err != nil {
		log.L(ctx).Warnf("Invalid metadata %s for product %s: %s", product.ContentRef, productID, err)
		return product, nil
	}
	enriched := *product
	enriched.Metadata = metadata
	return &enriched, nil
}

// GetExporterProducts lists the product IDs of one exporter
func (c *Catalog) GetExporterProducts(ctx context.Context, exporter string) ([]*tctypes.BigInt, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetExporterProducts, []interface{}{exporter})
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetAllActiveProducts lists the IDs of every active listing
func (c *Catalog) GetAllActiveProducts(ctx context.Context) ([]*tctypes.BigInt, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetAllActiveProducts, nil)
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetProductsByCategory lists the IDs of active listings in a category
func (c *Catalog) GetProductsByCategory(ctx context.Context, category string) ([]*tctypes.BigInt, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetProductsByCategory, []interface{}{category})
	if err != nil {
		return nil, err
	}
	return output.GetBigIntArray("output"), nil
}

// GetTotalProducts returns the all-time listing count
func (c *Catalog) GetTotalProducts(ctx context.Context) (*tctypes.BigInt, error) {
	output, err := c.provider.Query(ctx, c.address, abiGetTotalProducts, nil)
	if err != nil {
		return nil, err
	}
	total, ok := output.GetBigInt("output")
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgBigIntParseFailed, output.GetString("output"))
	}
	return total, nil
}
