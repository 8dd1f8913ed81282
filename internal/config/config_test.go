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
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	Reset()
	assert.Equal(t, "en", GetString(Lang))
	assert.Equal(t, "info", GetString(LogLevel))
	assert.True(t, GetBool(LogColor))
	assert.Equal(t, uint(5100), GetUint(HTTPPort))
	assert.Equal(t, "0xaa36a7", GetString(ChainID))
	assert.Equal(t, 15*time.Second, GetDuration(HTTPReadTimeout))
	assert.Empty(t, GetString(ContractsRegistry))
	assert.NotNil(t, Get(CorsAllowedOrigins))
}

func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := path.Join(dir, "test.yaml")
	err := os.WriteFile(cfgFile, []byte(`
log:
  level: debug
contracts:
  roleRegistry: "0xfceb98B891246844a5d8D3d5da05e21c3749a860"
`), 0664)
	assert.NoError(t, err)

	err = ReadConfig(cfgFile)
	assert.NoError(t, err)
	assert.Equal(t, "debug", GetString(LogLevel))
	assert.Equal(t, "0xfceb98B891246844a5d8D3d5da05e21c3749a860", GetString(ContractsRegistry))
}

func TestReadConfigFileMissing(t *testing.T) {
	err := ReadConfig("missing.yaml")
	assert.Error(t, err)
}

func TestReadConfigDefaultSearchPath(t *testing.T) {
	err := ReadConfig("")
	assert.NoError(t, err) // no file found is not an error
}

func TestPluginConfig(t *testing.T) {
	Reset()
	prefix := NewPluginConfig("unit.test")
	prefix.AddKnownKey("widget", "defval")
	assert.Equal(t, "defval", prefix.GetString("widget"))
	prefix.Set("widget", "override")
	assert.Equal(t, "override", prefix.GetString("widget"))
	assert.Equal(t, "unit.test.widget", prefix.Resolve("widget"))
}

func TestPluginConfigSubPrefix(t *testing.T) {
	Reset()
	prefix := NewPluginConfig("unit2")
	sub := prefix.SubPrefix("child")
	sub.AddKnownKey("val", 12345)
	assert.Equal(t, 12345, sub.GetInt("val"))
	assert.Equal(t, uint(12345), sub.GetUint("val"))
}

func TestGetUnknownKeyPanics(t *testing.T) {
	Reset()
	prefix := NewPluginConfig("unit3")
	assert.Panics(t, func() {
		prefix.GetString("never.registered")
	})
}

func TestUnmarshalKey(t *testing.T) {
	Reset()
	prefix := NewPluginConfig("unit4")
	prefix.AddKnownKey("nested")
	prefix.Set("nested", map[string]interface{}{"name": "thing1"})
	var out struct {
		Name string `json:"name"`
	}
	err := prefix.UnmarshalKey(context.Background(), "nested", &out)
	assert.NoError(t, err)
	assert.Equal(t, "thing1", out.Name)
}

func TestUintWithDefault(t *testing.T) {
	v := uint(10)
	assert.Equal(t, uint(10), UintWithDefault(&v, 99))
	assert.Equal(t, uint(99), UintWithDefault(nil, 99))
}
