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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"sync/atomic"
	"time"

	tcerr "github.com/teco-project/teco-core-go/tencentcloud/common/errors"
	tchttp "github.com/teco-project/teco-core-go/tencentcloud/common/http"
	"github.com/teco-project/teco-core-go/tencentcloud/common/log"
	"github.com/teco-project/teco-core-go/tencentcloud/common/profile"
)

// Transport is the capability the pipeline requires of its HTTP layer.
// *http.Client satisfies it; tests can inject a fake.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// MultipartSource is implemented by generated request types whose
// GetProtocol() returns tchttp.ProtocolMultipart.
type MultipartSource interface {
	MultipartFields() (fields map[string]string, files map[string]io.Reader)
}

type paginationSeqKey struct{}

// WithPaginationSequence attaches the paginator's current page number to ctx
// so it shows up in the pipeline's log records as tc-client-pagination-seq.
func WithPaginationSequence(ctx context.Context, seq int) context.Context {
	return context.WithValue(ctx, paginationSeqKey{}, seq)
}

// Client is the SDK core's request pipeline: credential acquisition,
// signing, dispatch, decoding, retry and typed-error mapping, embedded by
// every generated service client.
type Client struct {
	region             string
	httpClient         Transport
	ownsHTTPClient     bool
	httpProfile        *profile.HttpProfile
	profile            *profile.ClientProfile
	credentialProvider Provider
	signMethod         string
	unsignedPayload    bool
	debug              bool
	logger             log.Logger
	retryPolicy        RetryPolicy
	serviceConfig      *ServiceConfig

	requestSeq uint64
	shutdown   int32
}

// Send performs a single request/response exchange against
// context.Background(), bounded only by ServiceConfig/HttpProfile's request
// timeout.
func (c *Client) Send(request tchttp.Request, response tchttp.Response) error {
	return c.SendWithContext(context.Background(), request, response)
}

// SendWithContext drives the full pipeline described by the runtime's
// request-execution design: it fills in request defaults, optionally injects
// an idempotency token, then loops acquiring a credential, signing,
// dispatching and decoding, consulting c.retryPolicy after every failure
// until it returns DontRetry, the retry budget is exhausted, or ctx's
// deadline is reached.
func (c *Client) SendWithContext(ctx context.Context, request tchttp.Request, response tchttp.Response) error {
	if atomic.LoadInt32(&c.shutdown) != 0 {
		return tcerr.NewAlreadyShutdownError()
	}

	seq := atomic.AddUint64(&c.requestSeq, 1)
	logger := c.logger.WithFields(log.Fields{
		"tc-service":    request.GetService(),
		"tc-action":     request.GetAction(),
		"tc-request-id": seq,
	})
	if paginationSeq, ok := ctx.Value(paginationSeqKey{}).(int); ok {
		logger = logger.WithFields(log.Fields{"tc-client-pagination-seq": paginationSeq})
	}

	c.fillRequestDefaults(request)

	if c.profile.NetworkFailureMaxRetries > 0 || c.profile.RateLimitExceededMaxRetries > 0 {
		safeInjectClientToken(request, newClientToken())
	}

	timeout := defaultRequestTimeout
	if c.serviceConfig != nil && c.serviceConfig.RequestTimeout > 0 {
		timeout = c.serviceConfig.RequestTimeout
	} else if c.httpProfile.ReqTimeout > 0 {
		timeout = time.Duration(c.httpProfile.ReqTimeout) * time.Second
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	policy := c.retryPolicy
	if policy == nil {
		policy = NewDefaultRetryPolicy()
	}

	start := time.Now()
	var lastErr error
	for attempt := 1; ; attempt++ {
		if deadlineErr := ctx.Err(); deadlineErr != nil {
			return tcerr.NewTimeoutError(deadlineErr)
		}

		credential, err := c.credentialProvider.GetCredentialWithContext(ctx, logger)
		if err != nil {
			logger.Errorf("credential acquisition failed: %s", err)
			return err
		}
		logger = logger.WithFields(log.Fields{"tc-credential-provider": fmt.Sprintf("%T", c.credentialProvider)})

		httpStatus, err := c.attempt(ctx, request, response, credential, logger)
		if err == nil {
			logger.Infof("request succeeded on attempt %d", attempt)
			return nil
		}
		lastErr = err
		logger.WithFields(log.Fields{"tc-error": err.Error()}).Warnf("attempt %d failed", attempt)

		decision := policy.Decide(attempt, time.Since(start), err, httpStatus)
		switch decision.Kind {
		case DecisionDontRetry:
			return err
		case DecisionRetryIfIdempotent:
			if request.GetHttpMethod() != http.MethodGet {
				return err
			}
		case DecisionRetry:
			// fall through to sleep below
		}

		if remain, ok := remainingUntilDeadline(ctx); ok && remain <= decision.After {
			return lastErr
		}
		if sleepErr := sleepContext(ctx, decision.After); sleepErr != nil {
			return tcerr.NewTimeoutError(sleepErr)
		}
	}
}

func remainingUntilDeadline(ctx context.Context) (time.Duration, bool) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return 0, false
	}
	return time.Until(deadline), true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// attempt performs exactly one sign-dispatch-decode cycle, returning the
// HTTP status code observed (nil if the transport never produced a
// response) so the retry policy can classify transport failures uniformly
// with status-coded ones.
func (c *Client) attempt(ctx context.Context, request tchttp.Request, response tchttp.Response, credential CredentialIface, logger log.Logger) (*int, error) {
	now := time.Now()
	tchttp.CompleteCommonParams(request, c.region, now)

	method, url, body, contentType, err := c.buildEnvelope(request)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Content-Type": contentType,
		"X-TC-Action":  request.GetAction(),
		"X-TC-Version": request.GetVersion(),
	}
	if c.region != "" {
		headers["X-TC-Region"] = c.region
	}
	if c.profile.Language != "" {
		headers["X-TC-Language"] = c.profile.Language
	}

	switch c.signMethod {
	case "HmacSHA1", "HmacSHA256":
		if err := c.signV1(request, credential); err != nil {
			return nil, err
		}
		url = request.GetScheme() + "://" + request.GetDomain() + request.GetPath() + "?" + tchttp.GetUrlQueriesEncoded(request.GetParams())
		body = nil
	default:
		mode := SigningDefault
		if c.unsignedPayload {
			mode = SigningMinimal
		}
		signed, err := SignHeaders(SignRequest{
			Method:     method,
			URL:        url,
			Headers:    headers,
			Body:       body,
			Timestamp:  now,
			Credential: credential,
			Service:    request.GetService(),
			Mode:       mode,
		})
		if err != nil {
			return nil, err
		}
		for k, v := range signed {
			headers[k] = v
		}
	}

	httpRequest, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, tcerr.NewTransportError(err)
	}
	for k, v := range headers {
		httpRequest.Header.Set(k, v)
	}

	if c.debug {
		if dump, dumpErr := httputil.DumpRequestOut(httpRequest, true); dumpErr == nil {
			logger.Debugf("http request = %s", dump)
		}
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, tcerr.NewTransportError(err)
	}

	status := httpResponse.StatusCode
	if c.debug {
		if dump, dumpErr := httputil.DumpResponse(httpResponse, true); dumpErr == nil {
			logger.Debugf("http response = %s", dump)
		}
	}

	if parseErr := tchttp.ParseFromHttpResponse(httpResponse, response); parseErr != nil {
		return &status, parseErr
	}
	return &status, nil
}

// fillRequestDefaults completes the fields the caller left unset: scheme,
// root domain, domain and HTTP method. When a ServiceConfig is attached (see
// WithServiceConfig), it takes priority over HttpProfile for scheme/domain,
// implementing the custom > regional > global-unless-isolated endpoint
// resolution invariant.
func (c *Client) fillRequestDefaults(request tchttp.Request) {
	if c.serviceConfig != nil && request.GetDomain() == "" {
		if resolved, err := url.Parse(c.serviceConfig.ResolveEndpoint()); err == nil && resolved.Host != "" {
			request.SetScheme(resolved.Scheme)
			request.SetDomain(resolved.Host)
		}
	}

	if request.GetScheme() == "" {
		request.SetScheme(c.httpProfile.Scheme)
	}
	if request.GetRootDomain() == "" {
		request.SetRootDomain(c.httpProfile.RootDomain)
	}
	if request.GetDomain() == "" {
		domain := c.httpProfile.Endpoint
		if domain == "" {
			domain = request.GetServiceDomain(request.GetService())
		}
		request.SetDomain(domain)
	}
	if request.GetHttpMethod() == "" {
		method := c.httpProfile.ReqMethod
		if method == "" {
			method = http.MethodPost
		}
		request.SetHttpMethod(method)
	}
}

// buildEnvelope serializes request per its declared protocol, returning the
// HTTP method, full URL (including any query string), body bytes and
// Content-Type.
func (c *Client) buildEnvelope(request tchttp.Request) (method, url string, body []byte, contentType string, err error) {
	method = request.GetHttpMethod()
	protocol := request.GetProtocol()

	if method == http.MethodGet || protocol == tchttp.ProtocolQuery {
		if err := tchttp.ConstructParams(request); err != nil {
			return "", "", nil, "", err
		}
		query := tchttp.GetUrlQueriesEncoded(request.GetParams())
		contentType = "application/x-www-form-urlencoded"
		if method == http.MethodGet {
			url = request.GetUrl()
			if query != "" {
				url = url + "?" + query
			}
			return method, url, nil, contentType, nil
		}
		return method, request.GetUrl(), []byte(query), contentType, nil
	}

	if protocol == tchttp.ProtocolMultipart {
		source, ok := request.(MultipartSource)
		if !ok {
			return "", "", nil, "", fmt.Errorf("request declares multipart protocol but does not implement MultipartSource")
		}
		fields, files := source.MultipartFields()
		b, ct, buildErr := tchttp.BuildMultipartBody(fields, files)
		if buildErr != nil {
			return "", "", nil, "", buildErr
		}
		return method, request.GetUrl(), b, ct, nil
	}

	b, err := json.Marshal(request)
	if err != nil {
		return "", "", nil, "", err
	}
	return method, request.GetUrl(), b, "application/json; charset=utf-8", nil
}

// signV1 implements the co-resident legacy signer path: flatten request
// params, compute the flat Signature parameter, and store it back into the
// request's params for buildEnvelope's caller to re-serialize as a query
// string.
func (c *Client) signV1(request tchttp.Request, credential CredentialIface) error {
	if err := tchttp.ConstructParams(request); err != nil {
		return err
	}
	params := request.GetParams()
	params["SecretId"] = credential.GetSecretId()
	params["SignatureMethod"] = c.signMethod
	if credential.GetToken() != "" {
		params["Token"] = credential.GetToken()
	}
	signature, err := SignV1Query(request.GetHttpMethod(), request.GetDomain(), request.GetPath(), params, credential.GetSecretKey(), c.signMethod)
	if err != nil {
		return err
	}
	params["Signature"] = signature
	return nil
}

// GetRegion returns the region the client was initialized with.
func (c *Client) GetRegion() string { return c.region }

const defaultSignMethodName = "TC3-HMAC-SHA256"

// Init resets the client to a fresh, unconfigured state for region.
func (c *Client) Init(region string) *Client {
	c.httpClient = &http.Client{}
	c.ownsHTTPClient = true
	c.region = region
	c.signMethod = defaultSignMethodName
	c.httpProfile = profile.NewHttpProfile()
	c.profile = profile.NewClientProfile()
	c.logger = log.NewNopLogger()
	c.retryPolicy = NewDefaultRetryPolicy()
	return c
}

func (c *Client) WithSecretId(secretId, secretKey string) *Client {
	c.credentialProvider = NewStaticCredentialProvider(NewCredential(secretId, secretKey))
	return c
}

func (c *Client) WithCredential(credential CredentialIface) *Client {
	c.credentialProvider = NewStaticCredentialProvider(credential)
	return c
}

// WithProvider configures the client to resolve its credential through
// provider, eagerly resolving once so construction fails fast.
func (c *Client) WithProvider(provider Provider) (*Client, error) {
	if _, err := provider.GetCredential(); err != nil {
		return nil, err
	}
	c.credentialProvider = provider
	return c, nil
}

// WithServiceConfig attaches the generated service client's ServiceConfig,
// taking endpoint resolution away from HttpProfile.Endpoint and the legacy
// scheme/rootDomain fields.
func (c *Client) WithServiceConfig(cfg ServiceConfig) *Client {
	c.serviceConfig = &cfg
	c.region = cfg.Region.String()
	if cfg.Language != "" {
		c.profile.Language = cfg.Language
	}
	return c
}

func (c *Client) WithProfile(clientProfile *profile.ClientProfile) *Client {
	c.profile = clientProfile
	c.signMethod = clientProfile.SignMethod
	c.unsignedPayload = clientProfile.UnsignedPayload
	c.httpProfile = clientProfile.HttpProfile
	c.debug = clientProfile.Debug
	if httpClient, ok := c.httpClient.(*http.Client); ok {
		httpClient.Timeout = time.Duration(c.httpProfile.ReqTimeout) * time.Second
	}
	return c
}

func (c *Client) WithSignatureMethod(method string) *Client {
	c.signMethod = method
	return c
}

func (c *Client) WithHttpTransport(transport http.RoundTripper) *Client {
	if httpClient, ok := c.httpClient.(*http.Client); ok {
		httpClient.Transport = transport
		return c
	}
	c.httpClient = &http.Client{Transport: transport}
	return c
}

// WithCustomTransport overrides the Transport outright, e.g. with a fake in
// tests.
func (c *Client) WithCustomTransport(transport Transport) *Client {
	c.httpClient = transport
	c.ownsHTTPClient = false
	return c
}

func (c *Client) WithDebug(flag bool) *Client {
	c.debug = flag
	return c
}

func (c *Client) WithLogger(logger log.Logger) *Client {
	c.logger = logger
	return c
}

func (c *Client) WithRetryPolicy(policy RetryPolicy) *Client {
	c.retryPolicy = policy
	return c
}

// Shutdown releases the provider chain and, if this Client created its own
// HTTP client, its idle connections. It is idempotent; subsequent Send calls
// fail with AlreadyShutdown.
func (c *Client) Shutdown() {
	if !atomic.CompareAndSwapInt32(&c.shutdown, 0, 1) {
		return
	}
	if c.credentialProvider != nil {
		c.credentialProvider.Shutdown()
	}
	if c.ownsHTTPClient {
		if httpClient, ok := c.httpClient.(*http.Client); ok {
			httpClient.CloseIdleConnections()
		}
	}
}

// NewClientWithSecretId is the SDK's simplest constructor: a fixed secret id
// and key, no provider chain.
func NewClientWithSecretId(secretId, secretKey, region string) (*Client, error) {
	client := &Client{}
	client.Init(region).WithSecretId(secretId, secretKey)
	return client, nil
}

// NewClientWithProviders builds a client resolving credentials through
// providers in order, or DefaultProviderChain() if none are given.
func NewClientWithProviders(region string, providers ...Provider) (*Client, error) {
	client := (&Client{}).Init(region)
	var pc Provider
	if len(providers) == 0 {
		pc = DefaultProviderChain()
	} else {
		pc = NewProviderChain(providers)
	}
	return client.WithProvider(pc)
}
