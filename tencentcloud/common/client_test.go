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
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tcerr "github.com/teco-project/teco-core-go/tencentcloud/common/errors"
	tchttp "github.com/teco-project/teco-core-go/tencentcloud/common/http"
	"github.com/teco-project/teco-core-go/tencentcloud/common/log"
)

// testRequest/testResponse stand in for a generated service package's
// request/response types, exercising only what the pipeline needs.
type testRequest struct {
	*tchttp.BaseRequest
	ClientToken *string `json:"ClientToken,omitempty" name:"ClientToken"`
}

func newTestRequest() *testRequest {
	r := &testRequest{BaseRequest: &tchttp.BaseRequest{}}
	r.Init().WithApiInfo("test", "2020-01-01", "TestAction")
	return r
}

type testResponseParams struct {
	RequestId *string `json:"RequestId,omitempty"`
}

type testResponse struct {
	*tchttp.BaseResponse
	Response *testResponseParams `json:"Response"`
}

func newTestResponse() *testResponse {
	return &testResponse{BaseResponse: &tchttp.BaseResponse{}}
}

// scriptedTransport replays a fixed sequence of (status, body) pairs and
// counts how many times Do was called; the last entry repeats once the
// script is exhausted.
type scriptedTransport struct {
	calls   int32
	script  []scriptedResponse
	onCall  func(n int)
}

type scriptedResponse struct {
	status int
	body   string
}

func (t *scriptedTransport) Do(req *http.Request) (*http.Response, error) {
	n := int(atomic.AddInt32(&t.calls, 1))
	if t.onCall != nil {
		t.onCall(n)
	}
	idx := n - 1
	if idx >= len(t.script) {
		idx = len(t.script) - 1
	}
	resp := t.script[idx]
	return &http.Response{
		StatusCode: resp.status,
		Body:       io.NopCloser(bytes.NewReader([]byte(resp.body))),
		Header:     make(http.Header),
	}, nil
}

func newTestClient(transport Transport) *Client {
	c := (&Client{}).Init("ap-guangzhou")
	c.WithCredential(NewCredential("id", "key"))
	c.WithCustomTransport(transport)
	c.WithLogger(log.NewNopLogger())
	return c
}

func TestSendWithContext_RetriesFiveTimesOn500(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedResponse{
		{status: 500, body: `{"Response":{"RequestId":"r","Error":{"Code":"InternalError","Message":"x"}}}`},
	}}
	c := newTestClient(transport)
	c.WithRetryPolicy(&DefaultRetryPolicy{MaxRetries: 4, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond})

	err := c.SendWithContext(context.Background(), newTestRequest(), newTestResponse())
	require.Error(t, err)
	assert.EqualValues(t, 5, atomic.LoadInt32(&transport.calls))
}

func TestSendWithContext_AuthFailureOn200DoesNotRetry(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedResponse{
		{status: 200, body: `{"Response":{"RequestId":"r","Error":{"Code":"AuthFailure","Message":"x"}}}`},
	}}
	c := newTestClient(transport)
	c.WithRetryPolicy(&DefaultRetryPolicy{MaxRetries: 4, BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond})

	err := c.SendWithContext(context.Background(), newTestRequest(), newTestResponse())
	require.Error(t, err)
	sdkErr, ok := err.(*tcerr.TencentCloudSDKError)
	require.True(t, ok)
	assert.Equal(t, "AuthFailure", sdkErr.Code)
	assert.Equal(t, "r", sdkErr.RequestId)
	assert.EqualValues(t, 1, atomic.LoadInt32(&transport.calls))
}

func TestSendWithContext_DeadlineSmallerThanBackoffAbortsEarly(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedResponse{
		{status: 500, body: `{"Response":{"RequestId":"r","Error":{"Code":"InternalError","Message":"x"}}}`},
	}}
	c := newTestClient(transport)
	c.WithRetryPolicy(&DefaultRetryPolicy{MaxRetries: 4, BaseDelay: time.Hour, MaxDelay: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := c.SendWithContext(ctx, newTestRequest(), newTestResponse())
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&transport.calls))
}

func TestSendWithContext_SucceedsAndDecodes(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedResponse{
		{status: 200, body: `{"Response":{"RequestId":"r"}}`},
	}}
	c := newTestClient(transport)

	response := newTestResponse()
	err := c.SendWithContext(context.Background(), newTestRequest(), response)
	require.NoError(t, err)
	require.NotNil(t, response.Response)
	assert.Equal(t, "r", *response.Response.RequestId)
}

func TestSendWithContext_AlreadyShutdown(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedResponse{{status: 200, body: `{"Response":{}}`}}}
	c := newTestClient(transport)
	c.Shutdown()

	err := c.SendWithContext(context.Background(), newTestRequest(), newTestResponse())
	require.Error(t, err)
	sdkErr, ok := err.(*tcerr.TencentCloudSDKError)
	require.True(t, ok)
	assert.Equal(t, tcerr.CodeAlreadyShutdown, sdkErr.Code)
}

func TestSendWithContext_InjectsIdempotencyTokenWhenRetriesEnabled(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedResponse{{status: 200, body: `{"Response":{"RequestId":"r"}}`}}}
	c := newTestClient(transport)
	c.profile.NetworkFailureMaxRetries = 2

	request := newTestRequest()
	require.Nil(t, request.ClientToken)
	err := c.SendWithContext(context.Background(), request, newTestResponse())
	require.NoError(t, err)
	require.NotNil(t, request.ClientToken)
	assert.NotEmpty(t, *request.ClientToken)
}

func TestSendWithContext_CustomServiceConfigEndpoint(t *testing.T) {
	var capturedHost string
	transport := &scriptedTransport{
		script: []scriptedResponse{{status: 200, body: `{"Response":{"RequestId":"r"}}`}},
	}
	c := newTestClient(transport)
	c.WithServiceConfig(NewServiceConfig("ap-guangzhou", "cvm", "2017-03-12").With(WithCustomEndpoint("https://cvm.example.internal")))

	// Wrap transport to capture the request host actually dispatched.
	capture := &capturingTransport{inner: transport, onRequest: func(r *http.Request) { capturedHost = r.URL.Host }}
	c.WithCustomTransport(capture)

	err := c.SendWithContext(context.Background(), newTestRequest(), newTestResponse())
	require.NoError(t, err)
	assert.Equal(t, "cvm.example.internal", capturedHost)
}

type capturingTransport struct {
	inner     Transport
	onRequest func(*http.Request)
}

func (t *capturingTransport) Do(req *http.Request) (*http.Response, error) {
	if t.onRequest != nil {
		t.onRequest(req)
	}
	return t.inner.Do(req)
}
