// Copyright (c) 2017-2018 THL A29 Limited, a Tencent company. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// unreservedRFC3986 matches RFC 3986's unreserved character set: letters,
// digits, and -._~. Anything else is percent-encoded, exactly once.
func unreservedRFC3986(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// EncodeRFC3986 percent-encodes s so that only the unreserved character set
// is left untouched. Callers must never encode an already-encoded value;
// this function performs a single pass over raw bytes.
func EncodeRFC3986(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedRFC3986(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// GetUrlQueriesEncoded renders params as a canonical query string: items
// sorted by name then by value, each percent-encoded exactly once per
// EncodeRFC3986, joined with "&".
func GetUrlQueriesEncoded(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == keys[j] {
			return params[keys[i]] < params[keys[j]]
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, EncodeRFC3986(k)+"="+EncodeRFC3986(params[k]))
	}
	return strings.Join(parts, "&")
}

// CompleteCommonParams fills in the parameters every Tencent Cloud API call
// requires regardless of service: Action, Version, Region, Timestamp, Nonce.
// now is injected so callers (and tests) control the timestamp deterministically.
func CompleteCommonParams(request Request, region string, now time.Time) {
	params := request.GetParams()
	params["Action"] = request.GetAction()
	params["Version"] = request.GetVersion()
	params["Timestamp"] = strconv.FormatInt(now.Unix(), 10)
	params["Nonce"] = strconv.Itoa(rand.Int())
	if region != "" {
		params["Region"] = region
	}
}

// ConstructParams flattens request's exported fields (ignoring the embedded
// BaseRequest) into its GetParams() map, using each field's `name` struct
// tag as the parameter key. Nested struct pointers and slices follow the
// Tencent Cloud "Key.N.SubKey" list convention. This mirrors the reflection
// performed by a code-generated client's ConstructParams call, but lives
// here so any service package can reuse it for GET/V1 encoding.
func ConstructParams(request Request) error {
	params := request.GetParams()
	v := reflect.ValueOf(request)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return flattenStruct(v, "", params)
}

func flattenStruct(v reflect.Value, prefix string, params map[string]string) error {
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			// Skip the embedded BaseRequest; it carries no "name" tag.
			continue
		}
		name, ok := field.Tag.Lookup("name")
		if !ok {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if err := flattenValue(v.Field(i), key, params); err != nil {
			return err
		}
	}
	return nil
}

func flattenValue(v reflect.Value, key string, params map[string]string) error {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		return flattenValue(v.Elem(), key, params)
	case reflect.Struct:
		return flattenStruct(v, key, params)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := flattenValue(v.Index(i), fmt.Sprintf("%s.%d", key, i), params); err != nil {
				return err
			}
		}
		return nil
	case reflect.String:
		params[key] = v.String()
	case reflect.Bool:
		params[key] = strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		params[key] = strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		params[key] = strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		params[key] = strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return nil
}
