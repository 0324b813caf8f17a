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

// Package regions carries well-known Tencent Cloud region identifiers and the
// isolated-region predicate used by endpoint resolution.
package regions

import "strings"

// Region is an opaque, string-valued region tag.
type Region string

// Well-known regions. Not exhaustive; callers may use any string value.
const (
	Beijing        Region = "ap-beijing"
	Chengdu        Region = "ap-chengdu"
	Chongqing      Region = "ap-chongqing"
	Guangzhou      Region = "ap-guangzhou"
	GuangzhouOpen  Region = "ap-guangzhou-open"
	Hongkong       Region = "ap-hongkong"
	Shanghai       Region = "ap-shanghai"
	ShanghaiFSI    Region = "ap-shanghai-fsi"
	ShenzhenFSI    Region = "ap-shenzhen-fsi"
	Nanjing        Region = "ap-nanjing"
	Singapore      Region = "ap-singapore"
	Bangkok        Region = "ap-bangkok"
	Mumbai         Region = "ap-mumbai"
	Seoul          Region = "ap-seoul"
	Tokyo          Region = "ap-tokyo"
	Frankfurt      Region = "eu-frankfurt"
	Moscow         Region = "eu-moscow"
	Toronto        Region = "na-toronto"
	SiliconValley  Region = "na-siliconvalley"
	Ashburn        Region = "na-ashburn"
	SaoPaulo       Region = "sa-saopaulo"
	isolatedSuffix        = "-fsi"
)

// IsIsolated reports whether the region is an isolated (FSI) region, which is
// not reachable via the global endpoint and always resolves through its
// regional host.
func (r Region) IsIsolated() bool {
	return strings.HasSuffix(string(r), isolatedSuffix)
}

// String returns the region's raw string value.
func (r Region) String() string {
	return string(r)
}

// Hostname returns the endpoint host for service within this region. When
// preferRegional is true, or the region is isolated, the host is scoped to
// the region; otherwise the global host is used.
func (r Region) Hostname(service string, preferRegional bool) string {
	const globalHost = "tencentcloudapi.com"
	if preferRegional || r.IsIsolated() {
		return service + "." + string(r) + "." + globalHost
	}
	return service + "." + globalHost
}
