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

// Package http carries the request/response envelope types, parameter
// flattening and wire decoding shared by every generated service client.
package http

import (
	"bytes"
	"io"
)

// Protocol identifies how a generated request type wants its body encoded.
type Protocol string

const (
	ProtocolJSON      Protocol = "json"
	ProtocolQuery     Protocol = "query"
	ProtocolMultipart Protocol = "multipart"
)

// Request is the capability a generated request type must provide. Every
// field is mutable so the pipeline can finish assembling the envelope
// (domain, scheme, common params) before dispatch.
type Request interface {
	GetAction() string
	GetVersion() string
	GetService() string
	GetProtocol() Protocol

	GetHttpMethod() string
	SetHttpMethod(method string)

	GetScheme() string
	SetScheme(scheme string)

	GetRootDomain() string
	SetRootDomain(domain string)

	GetDomain() string
	SetDomain(domain string)

	// GetServiceDomain computes the default domain for service when no
	// explicit domain/endpoint override has been set.
	GetServiceDomain(service string) string

	GetPath() string

	// GetParams returns the flattened "Name" -> "value" map used for GET
	// query construction and V1 signing. Lazily built by ConstructParams.
	GetParams() map[string]string

	// GetBody returns the already-serialized request payload, or nil before
	// serialization has run.
	GetBody() []byte
	SetBody(body []byte)

	GetUrl() string
}

// BaseRequest is embedded by every generated request type. Its fields are
// excluded from JSON encoding of the request body.
type BaseRequest struct {
	httpMethod string
	scheme     string
	rootDomain string
	domain     string
	path       string
	params     map[string]string
	body       []byte

	service string
	version string
	action  string
}

// Init resets the request to a fresh, unconfigured state. Mirrors the
// teacher's builder-style Init().
func (r *BaseRequest) Init() *BaseRequest {
	r.params = make(map[string]string)
	r.path = "/"
	return r
}

// WithApiInfo stamps the service/version/action triple a generated
// constructor knows statically.
func (r *BaseRequest) WithApiInfo(service, version, action string) *BaseRequest {
	r.service = service
	r.version = version
	r.action = action
	return r
}

func (r *BaseRequest) GetAction() string  { return r.action }
func (r *BaseRequest) GetVersion() string { return r.version }
func (r *BaseRequest) GetService() string { return r.service }

// GetProtocol defaults to JSON; generated types that need form or multipart
// encoding override this method.
func (r *BaseRequest) GetProtocol() Protocol { return ProtocolJSON }

func (r *BaseRequest) GetHttpMethod() string     { return r.httpMethod }
func (r *BaseRequest) SetHttpMethod(m string)    { r.httpMethod = m }
func (r *BaseRequest) GetScheme() string         { return r.scheme }
func (r *BaseRequest) SetScheme(s string)        { r.scheme = s }
func (r *BaseRequest) GetRootDomain() string     { return r.rootDomain }
func (r *BaseRequest) SetRootDomain(d string)    { r.rootDomain = d }
func (r *BaseRequest) GetDomain() string         { return r.domain }
func (r *BaseRequest) SetDomain(d string)        { r.domain = d }
func (r *BaseRequest) GetPath() string {
	if r.path == "" {
		return "/"
	}
	return r.path
}

func (r *BaseRequest) GetServiceDomain(service string) string {
	root := r.rootDomain
	if root == "" {
		root = "tencentcloudapi.com"
	}
	return service + "." + root
}

func (r *BaseRequest) GetParams() map[string]string {
	if r.params == nil {
		r.params = make(map[string]string)
	}
	return r.params
}

func (r *BaseRequest) GetBody() []byte   { return r.body }
func (r *BaseRequest) SetBody(b []byte)  { r.body = b }

func (r *BaseRequest) GetUrl() string {
	return r.scheme + "://" + r.domain + r.path
}

// GetBodyReader returns an io.Reader over the serialized body, or an empty
// reader when there is none.
func (r *BaseRequest) GetBodyReader() io.Reader {
	if r.body == nil {
		return bytes.NewReader(nil)
	}
	return bytes.NewReader(r.body)
}
