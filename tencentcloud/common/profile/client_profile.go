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

// ClientProfile bundles the knobs a generated service client passes down
// into common.Client: the signing method, language, debug toggle, retry
// knobs and the embedded HttpProfile.
type ClientProfile struct {
	HttpProfile *HttpProfile
	// SignMethod selects the signing algorithm: "TC3-HMAC-SHA256" (default),
	// "HmacSHA1" or "HmacSHA256".
	SignMethod string
	// UnsignedPayload, when true, makes common.Client sign with
	// SigningMinimal. The request body is still hashed into the signature;
	// the literal string "UNSIGNED-PAYLOAD" is never signed.
	UnsignedPayload bool
	// Language is "zh-CN" or "en-US"; sent as X-TC-Language when set.
	Language string
	Debug    bool
	// NetworkFailureMaxRetries, when greater than zero, makes common.Client
	// inject an idempotency ClientToken into requests that have that field.
	// It does not set how often a call is retried: that is decided by the
	// client's RetryPolicy (see Client.WithRetryPolicy).
	NetworkFailureMaxRetries int
	// RateLimitExceededMaxRetries has the same effect as
	// NetworkFailureMaxRetries; common.Client does not use it as a separate
	// retry budget for HTTP 429.
	RateLimitExceededMaxRetries int
}

const defaultSignMethod = "TC3-HMAC-SHA256"

// NewClientProfile returns a ClientProfile populated with documented
// defaults: TC3 signing, a fresh HttpProfile, both retry knobs zero.
func NewClientProfile() *ClientProfile {
	return &ClientProfile{
		HttpProfile: NewHttpProfile(),
		SignMethod:  defaultSignMethod,
	}
}

// WithRetries returns a copy of the profile with the retry knobs set. It
// mirrors the teacher's builder-style `With*` methods on Client.
func (p *ClientProfile) WithRetries(networkFailureMaxRetries, rateLimitExceededMaxRetries int) *ClientProfile {
	clone := *p
	clone.NetworkFailureMaxRetries = networkFailureMaxRetries
	clone.RateLimitExceededMaxRetries = rateLimitExceededMaxRetries
	return &clone
}
