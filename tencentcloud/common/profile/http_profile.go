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

package profile

// HttpProfile carries the HTTP-transport-facing knobs of a service call:
// scheme, endpoint override, method preference and per-call timeout.
type HttpProfile struct {
	// ReqMethod is "GET" or "POST". Defaults to "POST".
	ReqMethod string
	// ReqTimeout is the request timeout in seconds. Defaults to 20.
	ReqTimeout int
	// Endpoint, if set, overrides the computed endpoint entirely
	// (ServiceConfig's endpointPreference = custom(url)).
	Endpoint string
	// Scheme is "https" or "http". Defaults to "https".
	Scheme string
	// RootDomain, if set, overrides "tencentcloudapi.com".
	RootDomain string
	// KeepAlive defaults to true. common.Client does not read it;
	// connection reuse follows the configured HTTP transport.
	KeepAlive bool
}

const (
	defaultReqMethod   = "POST"
	defaultReqTimeout  = 20
	defaultScheme      = "https"
	defaultRootDomain  = "tencentcloudapi.com"
)

// NewHttpProfile returns an HttpProfile populated with documented defaults.
func NewHttpProfile() *HttpProfile {
	return &HttpProfile{
		ReqMethod:  defaultReqMethod,
		ReqTimeout: defaultReqTimeout,
		Scheme:     defaultScheme,
		RootDomain: defaultRootDomain,
		KeepAlive:  true,
	}
}
