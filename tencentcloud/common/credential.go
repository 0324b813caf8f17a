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

// Package common is the SDK core: signing, credentials, the request
// pipeline, retry and pagination shared by every generated service client.
package common

import "time"

// CredentialIface is the capability the signer and pipeline require of a
// credential: a secret id/key pair and an optional session token.
// Credentials are value-typed and never mutated in place.
type CredentialIface interface {
	GetSecretId() string
	GetSecretKey() string
	GetToken() string
}

// Credential is a plain, non-expiring secret id/key pair.
type Credential struct {
	SecretId  string
	SecretKey string
	Token     string
}

// NewCredential builds a Credential with no session token.
func NewCredential(secretId, secretKey string) *Credential {
	return &Credential{SecretId: secretId, SecretKey: secretKey}
}

// NewTokenCredential builds a Credential carrying a session token, as
// returned by an STS-style AssumeRole call.
func NewTokenCredential(secretId, secretKey, token string) *Credential {
	return &Credential{SecretId: secretId, SecretKey: secretKey, Token: token}
}

func (c *Credential) GetSecretId() string  { return c.SecretId }
func (c *Credential) GetSecretKey() string { return c.SecretKey }
func (c *Credential) GetToken() string     { return c.Token }

// ExpiringCredential additionally carries an expiration instant, and knows
// how to report whether it's close enough to expiry to need a refresh.
type ExpiringCredential struct {
	Credential
	Expiration time.Time
}

// NewExpiringCredential builds an ExpiringCredential.
func NewExpiringCredential(secretId, secretKey, token string, expiration time.Time) *ExpiringCredential {
	return &ExpiringCredential{
		Credential: Credential{SecretId: secretId, SecretKey: secretKey, Token: token},
		Expiration: expiration,
	}
}

// IsExpiring reports whether now + within has reached or passed Expiration.
func (c *ExpiringCredential) IsExpiring(now time.Time, within time.Duration) bool {
	return !now.Add(within).Before(c.Expiration)
}
