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
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tcerr "github.com/teco-project/teco-core-go/tencentcloud/common/errors"
	"github.com/teco-project/teco-core-go/tencentcloud/common/log"
)

// countingProvider counts calls and returns a fixed credential after an
// optional artificial delay, to exercise singleflight coalescing.
type countingProvider struct {
	calls int32
	delay time.Duration
	cred  CredentialIface
	err   error
}

func (p *countingProvider) GetCredentialWithContext(ctx context.Context, logger log.Logger) (CredentialIface, error) {
	atomic.AddInt32(&p.calls, 1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.cred, nil
}
func (p *countingProvider) GetCredential() (CredentialIface, error) {
	return p.GetCredentialWithContext(context.Background(), log.NewNopLogger())
}
func (p *countingProvider) Shutdown() {}

func TestTemporaryCredentialProvider_ColdStartCoalesces(t *testing.T) {
	cred := NewCredential("id", "key")
	underlying := &countingProvider{delay: 20 * time.Millisecond, cred: cred}
	provider := NewTemporaryCredentialProvider(underlying)

	var wg sync.WaitGroup
	results := make([]CredentialIface, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			c, err := provider.GetCredentialWithContext(context.Background(), log.NewNopLogger())
			require.NoError(t, err)
			results[idx] = c
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&underlying.calls))
	for _, r := range results {
		assert.Equal(t, cred, r)
	}
}

func TestTemporaryCredentialProvider_CachesUntilExpiringBoundary(t *testing.T) {
	now := time.Now()
	expiring := NewExpiringCredential("id", "key", "", now.Add(200*time.Millisecond))
	underlying := &countingProvider{cred: expiring}
	provider := NewTemporaryCredentialProviderWithReservedLifetime(underlying, 50*time.Millisecond)

	c1, err := provider.GetCredentialWithContext(context.Background(), log.NewNopLogger())
	require.NoError(t, err)
	assert.Same(t, expiring, c1)
	assert.EqualValues(t, 1, atomic.LoadInt32(&underlying.calls))

	// Still well inside the reserved window: cached value, no second call.
	c2, err := provider.GetCredentialWithContext(context.Background(), log.NewNopLogger())
	require.NoError(t, err)
	assert.Same(t, expiring, c2)
	assert.EqualValues(t, 1, atomic.LoadInt32(&underlying.calls))

	// Past now+reservedLifetimeForUse >= expiration: must refresh.
	time.Sleep(170 * time.Millisecond)
	_, err = provider.GetCredentialWithContext(context.Background(), log.NewNopLogger())
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&underlying.calls))
}

func TestDeferredProvider_StopsAtFirstSuccess(t *testing.T) {
	first := &countingProvider{err: tcerr.NewNoProviderError("no creds here")}
	second := &countingProvider{cred: NewCredential("id", "key")}
	third := &countingProvider{cred: NewCredential("unused", "unused")}

	chain := NewDeferredProvider([]Provider{first, second, third})
	cred, err := chain.GetCredentialWithContext(context.Background(), log.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, second.cred, cred)
	assert.EqualValues(t, 1, atomic.LoadInt32(&first.calls))
	assert.EqualValues(t, 1, atomic.LoadInt32(&second.calls))
	assert.EqualValues(t, 0, atomic.LoadInt32(&third.calls))
}

func TestDeferredProvider_InvalidCredentialsSurfacesImmediately(t *testing.T) {
	first := &countingProvider{err: tcerr.NewInvalidCredentialsError("malformed profile")}
	second := &countingProvider{cred: NewCredential("id", "key")}

	chain := NewDeferredProvider([]Provider{first, second})
	_, err := chain.GetCredentialWithContext(context.Background(), log.NewNopLogger())
	require.Error(t, err)

	sdkErr, ok := err.(*tcerr.TencentCloudSDKError)
	require.True(t, ok)
	assert.Equal(t, tcerr.CodeInvalidCredentials, sdkErr.Code)
	assert.EqualValues(t, 0, atomic.LoadInt32(&second.calls))
}

func TestDeferredProvider_ResolvedProviderIsReused(t *testing.T) {
	first := &countingProvider{cred: NewCredential("id", "key")}
	chain := NewDeferredProvider([]Provider{first})

	_, err := chain.GetCredentialWithContext(context.Background(), log.NewNopLogger())
	require.NoError(t, err)
	_, err = chain.GetCredentialWithContext(context.Background(), log.NewNopLogger())
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&first.calls))
}

func TestDeferredProvider_ShutdownThenCallFails(t *testing.T) {
	first := &countingProvider{cred: NewCredential("id", "key")}
	chain := NewDeferredProvider([]Provider{first})
	chain.Shutdown()

	_, err := chain.GetCredentialWithContext(context.Background(), log.NewNopLogger())
	require.Error(t, err)
	sdkErr, ok := err.(*tcerr.TencentCloudSDKError)
	require.True(t, ok)
	assert.Equal(t, tcerr.CodeAlreadyShutdown, sdkErr.Code)
}

func TestEnvironmentCredentialProvider(t *testing.T) {
	t.Setenv("TENCENTCLOUD_SECRET_ID", "id")
	t.Setenv("TENCENTCLOUD_SECRET_KEY", "key")
	t.Setenv("TENCENTCLOUD_TOKEN", "")

	p := NewEnvironmentCredentialProvider()
	cred, err := p.GetCredential()
	require.NoError(t, err)
	assert.Equal(t, "id", cred.GetSecretId())
	assert.Equal(t, "key", cred.GetSecretKey())
}

func TestEnvironmentCredentialProvider_MissingVars(t *testing.T) {
	t.Setenv("TENCENTCLOUD_SECRET_ID", "")
	t.Setenv("TENCENTCLOUD_SECRET_KEY", "")

	p := NewEnvironmentCredentialProvider()
	_, err := p.GetCredential()
	require.Error(t, err)
}

func TestNullCredentialProvider(t *testing.T) {
	_, err := NewNullCredentialProvider().GetCredential()
	require.Error(t, err)
}
