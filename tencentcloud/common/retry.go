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
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"
	tcerr "github.com/teco-project/teco-core-go/tencentcloud/common/errors"
)

// RetryDecisionKind is the verdict a RetryPolicy hands back after a failed
// attempt.
type RetryDecisionKind int

const (
	// DecisionRetry means: sleep for the returned duration, then resubmit
	// with a fresh credential acquisition and signing.
	DecisionRetry RetryDecisionKind = iota
	// DecisionDontRetry means: surface the error to the caller.
	DecisionDontRetry
	// DecisionRetryIfIdempotent means: retry only if the request method is
	// idempotent (GET-style).
	DecisionRetryIfIdempotent
)

// RetryDecision is what a RetryPolicy returns for a single failed attempt.
type RetryDecision struct {
	Kind  RetryDecisionKind
	After time.Duration
}

// RetryPolicy is consulted by the pipeline after every failed attempt.
type RetryPolicy interface {
	Decide(attempt int, elapsed time.Duration, err error, httpStatus *int) RetryDecision
}

var retryableStatuses = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// DefaultRetryPolicy retries transport failures and HTTP 429/500/502/503/504
// with exponential backoff (base 100ms, cap 20s, full jitter), up to
// MaxRetries additional attempts.
type DefaultRetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// NewDefaultRetryPolicy returns the documented default: 4 retries, 100ms
// base, 20s cap.
func NewDefaultRetryPolicy() *DefaultRetryPolicy {
	return &DefaultRetryPolicy{MaxRetries: 4, BaseDelay: 100 * time.Millisecond, MaxDelay: 20 * time.Second}
}

func (p *DefaultRetryPolicy) Decide(attempt int, elapsed time.Duration, err error, httpStatus *int) RetryDecision {
	if attempt > p.MaxRetries {
		return RetryDecision{Kind: DecisionDontRetry}
	}
	if !isRetryableFailure(err, httpStatus) {
		return RetryDecision{Kind: DecisionDontRetry}
	}
	cap := p.backoffCap(attempt)
	// Full jitter: sleep a uniformly random duration in [0, cap]. The cap
	// itself never decreases as attempt grows, and never exceeds MaxDelay.
	jittered := time.Duration(rand.Int63n(int64(cap) + 1))
	return RetryDecision{Kind: DecisionRetry, After: jittered}
}

// backoffCap computes the un-jittered exponential backoff ceiling for the
// given attempt using cenkalti/backoff's growth curve with randomization
// disabled, then applies this policy's own cap.
func (p *DefaultRetryPolicy) backoffCap(attempt int) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = p.MaxDelay
	b.MaxElapsedTime = 0
	// NewExponentialBackOff already reset the current interval to the
	// library's default; reset again so it starts at BaseDelay.
	b.Reset()

	var d time.Duration
	for i := 0; i < attempt; i++ {
		d = b.NextBackOff()
	}
	if d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

func isRetryableFailure(err error, httpStatus *int) bool {
	if httpStatus != nil && retryableStatuses[*httpStatus] {
		return true
	}
	if err != nil {
		if sdkErr, ok := err.(*tcerr.TencentCloudSDKError); ok {
			return sdkErr.Kind == tcerr.KindTransport
		}
		return true
	}
	return false
}

// NoRetryPolicy never retries. Useful for callers that want to own their own
// retry loop, or for idempotency-sensitive calls.
type NoRetryPolicy struct{}

func (NoRetryPolicy) Decide(int, time.Duration, error, *int) RetryDecision {
	return RetryDecision{Kind: DecisionDontRetry}
}
