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
	"time"

	"github.com/teco-project/teco-core-go/tencentcloud/common/regions"
)

// EndpointPreference selects how ServiceConfig.ResolveEndpoint computes the
// request host.
type EndpointPreference int

const (
	// EndpointGlobal prefers the service-global host, except for isolated
	// regions which always resolve regionally.
	EndpointGlobal EndpointPreference = iota
	// EndpointRegional always scopes the host to ServiceConfig.Region.
	EndpointRegional
	// EndpointCustom ignores region/service entirely and resolves to
	// ServiceConfig.CustomEndpoint.
	EndpointCustom
)

const defaultRequestTimeout = 20 * time.Second

// ServiceConfig is the immutable record a generated service client builds
// once and reuses across calls: which region/service/API version to talk
// to, how to resolve the endpoint, and the per-call timeout.
type ServiceConfig struct {
	Region             regions.Region
	Service            string
	APIVersion         string
	Language           string
	EndpointPreference EndpointPreference
	CustomEndpoint     string
	RequestTimeout     time.Duration
}

// NewServiceConfig returns a ServiceConfig with documented defaults: global
// endpoint preference, 20s timeout.
func NewServiceConfig(region regions.Region, service, apiVersion string) ServiceConfig {
	return ServiceConfig{
		Region:             region,
		Service:            service,
		APIVersion:         apiVersion,
		EndpointPreference: EndpointGlobal,
		RequestTimeout:     defaultRequestTimeout,
	}
}

// ServiceConfigPatch mutates a copy of a ServiceConfig; see With.
type ServiceConfigPatch func(*ServiceConfig)

// WithRegion overrides Region. If the preference wasn't itself overridden by
// the same patch set, the endpoint is recomputed from the existing
// preference against the new region — which With already guarantees since
// ResolveEndpoint always reads the patched struct's fields.
func WithRegion(region regions.Region) ServiceConfigPatch {
	return func(c *ServiceConfig) { c.Region = region }
}

func WithLanguage(language string) ServiceConfigPatch {
	return func(c *ServiceConfig) { c.Language = language }
}

func WithEndpointPreference(pref EndpointPreference) ServiceConfigPatch {
	return func(c *ServiceConfig) { c.EndpointPreference = pref }
}

func WithCustomEndpoint(url string) ServiceConfigPatch {
	return func(c *ServiceConfig) {
		c.EndpointPreference = EndpointCustom
		c.CustomEndpoint = url
	}
}

func WithRequestTimeout(d time.Duration) ServiceConfigPatch {
	return func(c *ServiceConfig) { c.RequestTimeout = d }
}

// With returns a copy of c with every patch applied in order.
func (c ServiceConfig) With(patches ...ServiceConfigPatch) ServiceConfig {
	clone := c
	for _, patch := range patches {
		patch(&clone)
	}
	return clone
}

// ResolveEndpoint implements the invariant from spec.md §3: custom always
// wins; otherwise the host is regional when EndpointRegional was requested
// or the region is isolated (suffix "-fsi"), and global otherwise.
func (c ServiceConfig) ResolveEndpoint() string {
	if c.EndpointPreference == EndpointCustom {
		return c.CustomEndpoint
	}
	preferRegional := c.EndpointPreference == EndpointRegional || c.Region.IsIsolated()
	return "https://" + c.Region.Hostname(c.Service, preferRegional)
}
