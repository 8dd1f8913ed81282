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

package tctypes

import (
	"encoding/json"
	"strconv"
)

// JSONObject is a holder of a hash, that can be used for unstructured data
// that passes through the system, such as decoded chain outputs and storage
// metadata. Get* accessors are tolerant of missing keys and wrong types,
// returning the zero value rather than erroring.
type JSONObject map[string]interface{}

func (jd JSONObject) GetString(key string) string {
	s, _ := jd.GetStringOk(key)
	return s
}

func (jd JSONObject) GetStringOk(key string) (string, bool) {
	vInterface, ok := jd[key]
	if ok && vInterface != nil {
		switch vt := vInterface.(type) {
		case string:
			return vt, true
		case bool:
			return strconv.FormatBool(vt), true
		case float64:
			return strconv.FormatFloat(vt, 'f', -1, 64), true
		case json.Number:
			return vt.String(), true
		}
	}
	return "", false
}

func (jd JSONObject) GetBool(key string) bool {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case bool:
		return vt
	case string:
		return vt == "true"
	default:
		return false
	}
}

func (jd JSONObject) GetInt64(key string) int64 {
	i, _ := jd.GetBigInt(key)
	if i == nil {
		return 0
	}
	return i.Int().Int64()
}

// GetBigInt handles the variety of numeric encodings that JSON decoding of
// chain data produces
func (jd JSONObject) GetBigInt(key string) (*BigInt, bool) {
	vInterface, ok := jd[key]
	if !ok || vInterface == nil {
		return nil, false
	}
	return ToBigInt(vInterface)
}

// GetBigIntArray decodes a uint256[] output, skipping unparseable entries
func (jd JSONObject) GetBigIntArray(key string) []*BigInt {
	vInterface, ok := jd[key]
	if !ok || vInterface == nil {
		return []*BigInt{}
	}
	vArray, ok := vInterface.([]interface{})
	if !ok {
		return []*BigInt{}
	}
	intArray := make([]*BigInt, 0, len(vArray))
	for _, v := range vArray {
		if i, ok := ToBigInt(v); ok {
			intArray = append(intArray, i)
		}
	}
	return intArray
}

func (jd JSONObject) GetObject(key string) JSONObject {
	ob, _ := jd.GetObjectOk(key)
	return ob
}

func (jd JSONObject) GetObjectOk(key string) (JSONObject, bool) {
	vInterface, ok := jd[key]
	if ok && vInterface != nil {
		switch vt := vInterface.(type) {
		case map[string]interface{}:
			return JSONObject(vt), true
		case JSONObject:
			return vt, true
		}
	}
	return JSONObject{}, false
}

func (jd JSONObject) GetStringArray(key string) []string {
	vInterface, ok := jd[key]
	if !ok || vInterface == nil {
		return []string{}
	}
	vArray, ok := vInterface.([]interface{})
	if !ok {
		return []string{}
	}
	strArray := make([]string, 0, len(vArray))
	for _, v := range vArray {
		if vs, ok := v.(string); ok {
			strArray = append(strArray, vs)
		}
	}
	return strArray
}

func (jd JSONObject) GetObjectArray(key string) []JSONObject {
	vInterface, ok := jd[key]
	if !ok || vInterface == nil {
		return []JSONObject{}
	}
	return ToJSONObjectArray(vInterface)
}

func ToJSONObjectArray(vInterface interface{}) []JSONObject {
	vArray, ok := vInterface.([]interface{})
	if !ok {
		if typed, ok := vInterface.([]JSONObject); ok {
			return typed
		}
		return []JSONObject{}
	}
	obArray := make([]JSONObject, 0, len(vArray))
	for _, v := range vArray {
		if vMap, ok := v.(map[string]interface{}); ok {
			obArray = append(obArray, JSONObject(vMap))
		}
	}
	return obArray
}

func (jd JSONObject) String() string {
	b, _ := json.Marshal(&jd)
	return string(b)
}
