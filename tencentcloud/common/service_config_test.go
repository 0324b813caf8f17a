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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teco-project/teco-core-go/tencentcloud/common/regions"
)

func TestServiceConfig_IsolatedOverridesGlobal(t *testing.T) {
	cfg := NewServiceConfig(regions.ShanghaiFSI, "cvm", "2017-03-12")
	assert.Equal(t, "https://cvm.ap-shanghai-fsi.tencentcloudapi.com", cfg.ResolveEndpoint())
}

func TestServiceConfig_GlobalPreference(t *testing.T) {
	cfg := NewServiceConfig(regions.Guangzhou, "cvm", "2017-03-12")
	assert.Equal(t, "https://cvm.tencentcloudapi.com", cfg.ResolveEndpoint())
}

func TestServiceConfig_CustomEndpointIgnoresRegion(t *testing.T) {
	cfg := NewServiceConfig(regions.Guangzhou, "cvm", "2017-03-12").With(WithCustomEndpoint("https://x"))
	assert.Equal(t, "https://x", cfg.ResolveEndpoint())
}

func TestServiceConfig_RegionalPreferenceForcesRegionalHost(t *testing.T) {
	cfg := NewServiceConfig(regions.Guangzhou, "cvm", "2017-03-12").With(WithEndpointPreference(EndpointRegional))
	assert.Equal(t, "https://cvm.ap-guangzhou.tencentcloudapi.com", cfg.ResolveEndpoint())
}

func TestServiceConfig_WithIsIndependentOfOriginal(t *testing.T) {
	base := NewServiceConfig(regions.Guangzhou, "cvm", "2017-03-12")
	patched := base.With(WithRegion(regions.Shanghai))
	assert.Equal(t, regions.Guangzhou, base.Region)
	assert.Equal(t, regions.Shanghai, patched.Region)
}
