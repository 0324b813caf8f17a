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

// StringPtr, IntPtr, Int64Ptr, Uint64Ptr, Float64Ptr and BoolPtr take the
// address of a literal, for building generated request/response structs
// whose optional fields are all pointer-typed.

func StringPtr(v string) *string { return &v }
func IntPtr(v int) *int          { return &v }
func Int64Ptr(v int64) *int64    { return &v }
func Uint64Ptr(v uint64) *uint64 { return &v }
func Float64Ptr(v float64) *float64 { return &v }
func BoolPtr(v bool) *bool       { return &v }
