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

import "sync"

var (
	globalClientOnce sync.Once
	globalClient     *Client
)

// GlobalClient returns a process-wide singleton Client resolving its
// credential through DefaultProviderChain() for region, built once on first
// call. It is never shut down by the runtime; callers who need deterministic
// teardown should build their own Client instead.
//
// Like any Client built through Init, GlobalClient gets its own *http.Client
// with no Transport set, so its requests go through http.DefaultTransport
// and share that connection pool with the rest of the process.
func GlobalClient(region string) (*Client, error) {
	var err error
	globalClientOnce.Do(func() {
		globalClient, err = NewClientWithProviders(region)
	})
	if err != nil {
		return nil, err
	}
	return globalClient, nil
}
