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

package common

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// clientTokenFieldName is the convention generated request types use to
// expose a settable idempotency token, mirroring the teacher's
// safeInjectClientToken (referenced in the retrieved client.go but left
// unimplemented there).
const clientTokenFieldName = "ClientToken"

var clientTokenFieldCache sync.Map // reflect.Type -> bool (has a *string ClientToken field)

// safeInjectClientToken sets request's ClientToken field, if it has one and
// it's currently unset, to a freshly generated UUIDv4. It never panics on a
// request type that doesn't expose the field. The same token is reused
// across retries of one logical call so the server can de-duplicate.
func safeInjectClientToken(request interface{}, token string) {
	v := reflect.ValueOf(request)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return
	}

	t := elem.Type()
	hasField, known := clientTokenFieldCache.Load(t)
	if !known {
		field, ok := t.FieldByName(clientTokenFieldName)
		hasField = ok && field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.String
		clientTokenFieldCache.Store(t, hasField)
	}
	if !hasField.(bool) {
		return
	}

	field := elem.FieldByName(clientTokenFieldName)
	if !field.CanSet() || !field.IsNil() {
		return
	}
	field.Set(reflect.ValueOf(&token))
}

// newClientToken generates a fresh idempotency token.
func newClientToken() string {
	return uuid.NewString()
}
