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

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/pkg/tctypes"
)

// The following keys can be accessed from the root configuration.
// Components are responsible for defining their own keys using the Prefix interface
var (
	Lang                  RootKey = ark("lang")
	LogLevel              RootKey = ark("log.level")
	LogColor              RootKey = ark("log.color")
	DebugPort             RootKey = ark("debug.port")
	HTTPAddress           RootKey = ark("http.address")
	HTTPPort              RootKey = ark("http.port")
	HTTPReadTimeout       RootKey = ark("http.readTimeout")
	HTTPWriteTimeout      RootKey = ark("http.writeTimeout")
	APIRequestTimeout     RootKey = ark("api.requestTimeout")
	CorsEnabled           RootKey = ark("cors.enabled")
	CorsAllowedOrigins    RootKey = ark("cors.origins")
	CorsAllowedMethods    RootKey = ark("cors.methods")
	CorsAllowedHeaders    RootKey = ark("cors.headers")
	CorsAllowCredentials  RootKey = ark("cors.credentials")
	CorsMaxAge            RootKey = ark("cors.maxAge")
	ChainID               RootKey = ark("chain.id")
	ChainName             RootKey = ark("chain.name")
	ChainRPCUrl           RootKey = ark("chain.rpcUrl")
	ChainCurrencyName     RootKey = ark("chain.currency.name")
	ChainCurrencySymbol   RootKey = ark("chain.currency.symbol")
	ChainCurrencyDecimals RootKey = ark("chain.currency.decimals")
	ChainExplorerURL      RootKey = ark("chain.explorerUrl")
	ContractsRegistry     RootKey = ark("contracts.roleRegistry")
	ContractsProducts     RootKey = ark("contracts.productListing")
	ContractsOrders       RootKey = ark("contracts.order")
	ContractsCollab       RootKey = ark("contracts.collaboration")
	EventstreamEnabled    RootKey = ark("eventstream.enabled")
	EventstreamTopic      RootKey = ark("eventstream.topic")
)

// Prefix represents the global configuration, at a nested point in the config
// hierarchy. This allows components to define their own keys.
//
// Note that all values are GLOBAL so this cannot be used for per-instance
// customization. Rather for global initialization of components.
type Prefix interface {
	AddKnownKey(key string, defValue ...interface{})
	SubPrefix(suffix string) Prefix
	Set(key string, value interface{})
	Resolve(key string) string

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetUint(key string) uint
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	GetObject(key string) tctypes.JSONObject
	Get(key string) interface{}
	UnmarshalKey(ctx context.Context, key string, rawVal interface{}) error
}

// RootKey are the known configuration keys
type RootKey string

func Reset() {
	viper.Reset()

	// Set defaults
	viper.SetDefault(string(Lang), "en")
	viper.SetDefault(string(LogLevel), "info")
	viper.SetDefault(string(LogColor), true)
	viper.SetDefault(string(DebugPort), -1)
	viper.SetDefault(string(HTTPAddress), "127.0.0.1")
	viper.SetDefault(string(HTTPPort), 5100)
	viper.SetDefault(string(HTTPReadTimeout), "15s")
	viper.SetDefault(string(HTTPWriteTimeout), "15s")
	viper.SetDefault(string(APIRequestTimeout), "2m")
	viper.SetDefault(string(CorsEnabled), true)
	viper.SetDefault(string(CorsAllowedOrigins), []string{"*"})
	viper.SetDefault(string(CorsAllowedMethods), []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete})
	viper.SetDefault(string(CorsAllowedHeaders), []string{"*"})
	viper.SetDefault(string(CorsAllowCredentials), true)
	viper.SetDefault(string(CorsMaxAge), 600)
	viper.SetDefault(string(ChainID), "0xaa36a7") // Sepolia
	viper.SetDefault(string(ChainName), "Sepolia Testnet")
	viper.SetDefault(string(ChainRPCUrl), "https://sepolia.infura.io/v3/")
	viper.SetDefault(string(ChainCurrencyName), "Sepolia ETH")
	viper.SetDefault(string(ChainCurrencySymbol), "ETH")
	viper.SetDefault(string(ChainCurrencyDecimals), 18)
	viper.SetDefault(string(ChainExplorerURL), "https://sepolia.etherscan.io")
	viper.SetDefault(string(EventstreamEnabled), false)
	viper.SetDefault(string(EventstreamTopic), "tradechain")

	i18n.SetLang(GetString(Lang))
}

// ReadConfig initializes the config, from an explicit file or the search path
func ReadConfig(cfgFile string) error {
	Reset()

	// Set precedence order for reading config location
	viper.SetEnvPrefix("tradechain")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		f, err := os.Open(cfgFile)
		if err == nil {
			defer f.Close()
			err = viper.ReadConfig(f)
		}
		return err
	}
	viper.SetConfigName("tradechain.core")
	viper.AddConfigPath("/etc/tradechain/")
	viper.AddConfigPath("$HOME/.tradechain")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
		// Running on defaults plus environment is supported
		return nil
	}
	return err
}

var root = &configPrefix{
	keys: map[string]bool{}, // All keys go here, including those defined in sub prefixes
}

// ark adds a root key, used to define the keys that are used within the core
func ark(k string) RootKey {
	root.AddKnownKey(k)
	return RootKey(k)
}

// configPrefix is the main config structure passed to components, and used for root to wrap viper
type configPrefix struct {
	prefix string
	keys   map[string]bool
}

// NewPluginConfig creates a new configuration object for a component, at the specified prefix
func NewPluginConfig(prefix string) Prefix {
	if !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}
	return &configPrefix{
		prefix: prefix,
		keys:   root.keys,
	}
}

func (c *configPrefix) prefixKey(k string) string {
	key := c.prefix + k
	if !c.keys[key] {
		panic(fmt.Sprintf("Undefined configuration key '%s'", key))
	}
	return key
}

func (c *configPrefix) SubPrefix(suffix string) Prefix {
	return &configPrefix{
		prefix: c.prefix + suffix + ".",
		keys:   root.keys,
	}
}

func (c *configPrefix) AddKnownKey(k string, defValue ...interface{}) {
	key := c.prefix + k
	if len(defValue) == 1 {
		viper.SetDefault(key, defValue[0])
	} else if len(defValue) > 0 {
		viper.SetDefault(key, defValue)
	}
	c.keys[key] = true
}

// Resolve gives the fully qualified path of a key, for error messages
func (c *configPrefix) Resolve(key string) string {
	return c.prefix + key
}

// GetString gets a configuration string
func GetString(key RootKey) string {
	return root.GetString(string(key))
}
func (c *configPrefix) GetString(key string) string {
	return viper.GetString(c.prefixKey(key))
}

// GetStringSlice gets a configuration string array
func GetStringSlice(key RootKey) []string {
	return root.GetStringSlice(string(key))
}
func (c *configPrefix) GetStringSlice(key string) []string {
	return viper.GetStringSlice(c.prefixKey(key))
}

// GetBool gets a configuration bool
func GetBool(key RootKey) bool {
	return root.GetBool(string(key))
}
func (c *configPrefix) GetBool(key string) bool {
	return viper.GetBool(c.prefixKey(key))
}

// GetUint gets a configuration uint
func GetUint(key RootKey) uint {
	return root.GetUint(string(key))
}
func (c *configPrefix) GetUint(key string) uint {
	return viper.GetUint(c.prefixKey(key))
}

// GetInt gets a configuration int
func GetInt(key RootKey) int {
	return root.GetInt(string(key))
}
func (c *configPrefix) GetInt(key string) int {
	return viper.GetInt(c.prefixKey(key))
}

// GetDuration gets a configuration duration, parsed from strings like "250ms" or "15s"
func GetDuration(key RootKey) time.Duration {
	return root.GetDuration(string(key))
}
func (c *configPrefix) GetDuration(key string) time.Duration {
	return viper.GetDuration(c.prefixKey(key))
}

// GetObject gets a configuration map
func GetObject(key RootKey) tctypes.JSONObject {
	return root.GetObject(string(key))
}
func (c *configPrefix) GetObject(key string) tctypes.JSONObject {
	return tctypes.JSONObject(viper.GetStringMap(c.prefixKey(key)))
}

// Get gets a configuration in raw form
func Get(key RootKey) interface{} {
	return root.Get(string(key))
}
func (c *configPrefix) Get(key string) interface{} {
	return viper.Get(c.prefixKey(key))
}

// Set allows runtime setting of config (used in unit tests)
func Set(key RootKey, value interface{}) {
	root.Set(string(key), value)
}
func (c *configPrefix) Set(key string, value interface{}) {
	viper.Set(c.prefixKey(key), value)
}

// UnmarshalKey gets a configuration section into a struct
func UnmarshalKey(ctx context.Context, key RootKey, rawVal interface{}) error {
	return root.UnmarshalKey(ctx, string(key), rawVal)
}
func (c *configPrefix) UnmarshalKey(ctx context.Context, key string, rawVal interface{}) error {
	// Viper's unmarshal does not work with our json annotated config
	// structures, so we have to go from map to JSON, then to unmarshal
	var intermediate map[string]interface{}
	err := viper.UnmarshalKey(c.prefixKey(key), &intermediate)
	if err == nil {
		b, _ := json.Marshal(intermediate)
		err = json.Unmarshal(b, rawVal)
	}
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, key)
	}
	return nil
}

// UintWithDefault dereferences an optional uint config field
func UintWithDefault(val *uint, def uint) uint {
	if val == nil {
		return def
	}
	return *val
}
