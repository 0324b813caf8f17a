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
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	tcerr "github.com/teco-project/teco-core-go/tencentcloud/common/errors"
	"github.com/teco-project/teco-core-go/tencentcloud/common/log"
	"golang.org/x/sync/singleflight"
	ini "gopkg.in/ini.v1"
)

// Provider is a pluggable credential source. GetCredentialWithContext is the
// primary entry point; GetCredential is kept for callers (and the teacher's
// own builder API) that predate context support.
type Provider interface {
	GetCredentialWithContext(ctx context.Context, logger log.Logger) (CredentialIface, error)
	GetCredential() (CredentialIface, error)
	// Shutdown releases any resources held by the provider. It is
	// idempotent. A shut-down DeferredProvider or TemporaryCredentialProvider
	// fails subsequent calls with CodeAlreadyShutdown; for the static,
	// environment, profile-file and null providers Shutdown is a no-op and
	// later calls behave as before.
	Shutdown()
}

// --- Static ---------------------------------------------------------------

// StaticCredentialProvider always returns the same, fixed credential.
type StaticCredentialProvider struct {
	credential CredentialIface
}

// NewStaticCredentialProvider wraps a fixed credential as a Provider.
func NewStaticCredentialProvider(credential CredentialIface) *StaticCredentialProvider {
	return &StaticCredentialProvider{credential: credential}
}

func (p *StaticCredentialProvider) GetCredentialWithContext(context.Context, log.Logger) (CredentialIface, error) {
	return p.credential, nil
}
func (p *StaticCredentialProvider) GetCredential() (CredentialIface, error) {
	return p.credential, nil
}
func (p *StaticCredentialProvider) Shutdown() {}

// --- Environment ------------------------------------------------------------

// EnvironmentCredentialProvider reads TENCENTCLOUD_SECRET_ID,
// TENCENTCLOUD_SECRET_KEY and optionally TENCENTCLOUD_TOKEN.
type EnvironmentCredentialProvider struct{}

func NewEnvironmentCredentialProvider() *EnvironmentCredentialProvider {
	return &EnvironmentCredentialProvider{}
}

func (p *EnvironmentCredentialProvider) GetCredentialWithContext(ctx context.Context, logger log.Logger) (CredentialIface, error) {
	return p.GetCredential()
}

func (p *EnvironmentCredentialProvider) GetCredential() (CredentialIface, error) {
	secretId := os.Getenv("TENCENTCLOUD_SECRET_ID")
	secretKey := os.Getenv("TENCENTCLOUD_SECRET_KEY")
	if secretId == "" || secretKey == "" {
		return nil, tcerr.NewNoProviderError("environment variables TENCENTCLOUD_SECRET_ID/TENCENTCLOUD_SECRET_KEY are not both set")
	}
	token := os.Getenv("TENCENTCLOUD_TOKEN")
	return NewTokenCredential(secretId, secretKey, token), nil
}

func (p *EnvironmentCredentialProvider) Shutdown() {}

// --- Profile file -----------------------------------------------------------

const defaultCredentialsPath = "~/.tencentcloud/credentials"
const defaultProfileSection = "default"

// ProfileCredentialProvider reads an INI file (default
// ~/.tencentcloud/credentials) and pulls secret_id/secret_key/token from a
// named section.
type ProfileCredentialProvider struct {
	Path    string
	Section string
}

// NewProfileCredentialProvider returns a provider reading the default path
// and "default" section.
func NewProfileCredentialProvider() *ProfileCredentialProvider {
	return &ProfileCredentialProvider{Path: defaultCredentialsPath, Section: defaultProfileSection}
}

// NewProfileCredentialProviderWithPath overrides the file path and section.
func NewProfileCredentialProviderWithPath(path, section string) *ProfileCredentialProvider {
	if section == "" {
		section = defaultProfileSection
	}
	return &ProfileCredentialProvider{Path: path, Section: section}
}

func (p *ProfileCredentialProvider) GetCredentialWithContext(ctx context.Context, logger log.Logger) (CredentialIface, error) {
	return p.GetCredential()
}

func (p *ProfileCredentialProvider) GetCredential() (CredentialIface, error) {
	path, err := expandTilde(p.Path)
	if err != nil {
		return nil, tcerr.NewNoProviderError("cannot resolve credentials file path: " + err.Error())
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, tcerr.NewNoProviderError("cannot read credentials file " + path + ": " + err.Error())
	}
	section, err := cfg.GetSection(p.Section)
	if err != nil {
		return nil, tcerr.NewNoProviderError("credentials file has no section [" + p.Section + "]")
	}
	secretId := section.Key("secret_id").String()
	secretKey := section.Key("secret_key").String()
	if secretId == "" || secretKey == "" {
		return nil, tcerr.NewInvalidCredentialsError("section [" + p.Section + "] is missing secret_id or secret_key")
	}
	token := section.Key("token").String()
	return NewTokenCredential(secretId, secretKey, token), nil
}

func (p *ProfileCredentialProvider) Shutdown() {}

func expandTilde(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// --- Null -------------------------------------------------------------------

// NullCredentialProvider always fails with NoProvider. Used as a chain
// terminator or as an explicit "no credentials configured" sentinel.
type NullCredentialProvider struct{}

func NewNullCredentialProvider() *NullCredentialProvider { return &NullCredentialProvider{} }

func (p *NullCredentialProvider) GetCredentialWithContext(context.Context, log.Logger) (CredentialIface, error) {
	return nil, tcerr.NewNoProviderError("null credential provider never succeeds")
}
func (p *NullCredentialProvider) GetCredential() (CredentialIface, error) {
	return nil, tcerr.NewNoProviderError("null credential provider never succeeds")
}
func (p *NullCredentialProvider) Shutdown() {}

// --- Deferred (chain) ---------------------------------------------------------

// DeferredProvider tries each factory in order on its first call, remembers
// the first one that succeeds, and reuses it for the provider's lifetime.
// Concurrent first calls share one resolution via singleflight. Errors other
// than NoProvider abort the walk immediately.
//
// This is also exposed under the teacher's legacy name via NewProviderChain.
type DeferredProvider struct {
	providers []Provider

	mu       sync.Mutex
	resolved Provider // set once the walk succeeds

	group     singleflight.Group
	shutdown  int32
}

// NewDeferredProvider builds a chain that tries providers in order.
func NewDeferredProvider(providers []Provider) *DeferredProvider {
	return &DeferredProvider{providers: providers}
}

// NewProviderChain is the teacher's legacy constructor name for the same
// deferred-resolution behavior.
func NewProviderChain(providers []Provider) *DeferredProvider {
	return NewDeferredProvider(providers)
}

func (p *DeferredProvider) GetCredential() (CredentialIface, error) {
	return p.GetCredentialWithContext(context.Background(), log.NewNopLogger())
}

func (p *DeferredProvider) GetCredentialWithContext(ctx context.Context, logger log.Logger) (CredentialIface, error) {
	if atomic.LoadInt32(&p.shutdown) != 0 {
		return nil, tcerr.NewAlreadyShutdownError()
	}

	p.mu.Lock()
	if p.resolved != nil {
		resolved := p.resolved
		p.mu.Unlock()
		return resolved.GetCredentialWithContext(ctx, logger)
	}
	p.mu.Unlock()

	v, err, _ := p.group.Do("resolve", func() (interface{}, error) {
		for _, provider := range p.providers {
			cred, err := provider.GetCredentialWithContext(ctx, logger)
			if err == nil {
				p.mu.Lock()
				p.resolved = provider
				p.mu.Unlock()
				return cred, nil
			}
			if sdkErr, ok := err.(*tcerr.TencentCloudSDKError); ok && sdkErr.Code == tcerr.CodeNoProvider {
				continue
			}
			return nil, err
		}
		return nil, tcerr.NewNoProviderError("no provider in the chain produced a credential")
	})
	if err != nil {
		return nil, err
	}
	return v.(CredentialIface), nil
}

func (p *DeferredProvider) Shutdown() {
	if !atomic.CompareAndSwapInt32(&p.shutdown, 0, 1) {
		return
	}
	p.mu.Lock()
	providers := append([]Provider(nil), p.providers...)
	p.mu.Unlock()
	for _, provider := range providers {
		provider.Shutdown()
	}
}

// --- Temporary (expiry-caching wrapper) --------------------------------------

const defaultReservedLifetimeForUse = 180 * time.Second

// TemporaryCredentialProvider wraps any provider with an expiry-aware cache.
// At most one cached credential and at most one in-flight refresh are held
// at a time; concurrent refreshes are coalesced via singleflight. A failed
// refresh does not evict the previously cached credential.
type TemporaryCredentialProvider struct {
	wrapped                Provider
	reservedLifetimeForUse time.Duration

	mu     sync.RWMutex
	cached CredentialIface

	group    singleflight.Group
	shutdown int32
}

// NewTemporaryCredentialProvider wraps provider with the default 180s
// reserved lifetime.
func NewTemporaryCredentialProvider(wrapped Provider) *TemporaryCredentialProvider {
	return NewTemporaryCredentialProviderWithReservedLifetime(wrapped, defaultReservedLifetimeForUse)
}

// NewTemporaryCredentialProviderWithReservedLifetime lets the caller
// override the default 180s reserved refresh window.
func NewTemporaryCredentialProviderWithReservedLifetime(wrapped Provider, reservedLifetimeForUse time.Duration) *TemporaryCredentialProvider {
	return &TemporaryCredentialProvider{wrapped: wrapped, reservedLifetimeForUse: reservedLifetimeForUse}
}

func (p *TemporaryCredentialProvider) GetCredential() (CredentialIface, error) {
	return p.GetCredentialWithContext(context.Background(), log.NewNopLogger())
}

func (p *TemporaryCredentialProvider) GetCredentialWithContext(ctx context.Context, logger log.Logger) (CredentialIface, error) {
	if atomic.LoadInt32(&p.shutdown) != 0 {
		return nil, tcerr.NewAlreadyShutdownError()
	}

	p.mu.RLock()
	cached := p.cached
	p.mu.RUnlock()

	if cached != nil {
		expiring, ok := cached.(*ExpiringCredential)
		if !ok {
			return cached, nil
		}
		if !expiring.IsExpiring(time.Now(), p.reservedLifetimeForUse) {
			return cached, nil
		}
	}

	v, err, _ := p.group.Do("refresh", func() (interface{}, error) {
		cred, err := p.wrapped.GetCredentialWithContext(context.Background(), logger)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.cached = cred
		p.mu.Unlock()
		return cred, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(CredentialIface), nil
}

// Prewarm eagerly populates the cache, e.g. right after construction so the
// first real call never pays for a cold refresh.
func (p *TemporaryCredentialProvider) Prewarm(ctx context.Context, logger log.Logger) error {
	_, err := p.GetCredentialWithContext(ctx, logger)
	return err
}

func (p *TemporaryCredentialProvider) Shutdown() {
	if !atomic.CompareAndSwapInt32(&p.shutdown, 0, 1) {
		return
	}
	p.wrapped.Shutdown()
}

// --- Default chain ------------------------------------------------------------

// DefaultProviderChain returns deferred(environment, profile-file), wrapped
// in a TemporaryCredentialProvider so expiring credentials (e.g. from a
// future STS-backed provider) get cached and refreshed automatically.
func DefaultProviderChain() Provider {
	deferred := NewDeferredProvider([]Provider{
		NewEnvironmentCredentialProvider(),
		NewProfileCredentialProvider(),
	})
	return NewTemporaryCredentialProvider(deferred)
}
