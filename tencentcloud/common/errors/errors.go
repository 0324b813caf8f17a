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

// Package errors defines the structured error taxonomy returned by the SDK
// core: client errors, transport errors, service errors, raw (unparseable)
// errors, pagination errors, signer errors and credential-provider errors.
package errors

import "fmt"

// Kind classifies a TencentCloudSDKError into one of the taxonomy buckets
// described by the runtime's error-handling design.
type Kind string

const (
	KindClient             Kind = "ClientError"
	KindTransport          Kind = "TransportError"
	KindService            Kind = "ServiceError"
	KindRaw                Kind = "RawError"
	KindPagination         Kind = "PaginationError"
	KindSigner             Kind = "SignerError"
	KindCredentialProvider Kind = "CredentialProviderError"
)

// Client-error codes (Kind == KindClient).
const (
	CodeAlreadyShutdown = "AlreadyShutdown"
	CodeInvalidURL      = "InvalidURL"
	CodeTooMuchData     = "TooMuchData"
	CodeNotEnoughData   = "NotEnoughData"
	CodeWaiterFailed    = "WaiterFailed"
	CodeWaiterTimeout   = "WaiterTimeout"
	CodeTimeout         = "Timeout"
)

// Pagination-error codes (Kind == KindPagination).
const (
	CodeTotalCountChanged = "TotalCountChanged"
)

// Signer-error codes (Kind == KindSigner).
const (
	CodeSignerInvalidURL = "InvalidURL"
)

// Credential-provider-error codes (Kind == KindCredentialProvider).
const (
	CodeNoProvider         = "NoProvider"
	CodeInvalidCredentials = "InvalidCredentials"
)

// TencentCloudSDKError is the error type the runtime's components use for
// classified failures. Callers distinguish failure modes by inspecting Kind
// and Code, never by string-matching Error(). Request serialization failures
// (JSON, form or multipart encoding) and an unsupported V1 signature method
// are returned as plain errors, not as a TencentCloudSDKError.
type TencentCloudSDKError struct {
	Kind      Kind
	Code      string
	Message   string
	RequestId string
	HttpStatus int
	// Additional carries server-reported fields that don't map to a typed
	// field (e.g. extra diagnostic headers from the API gateway).
	Additional map[string]string
	// cause, when present, is the underlying transport or parse error.
	cause error
}

func (e *TencentCloudSDKError) Error() string {
	if e.RequestId != "" {
		return fmt.Sprintf("[TencentCloudSDKError] Kind=%s, Code=%s, Message=%s, RequestId=%s", e.Kind, e.Code, e.Message, e.RequestId)
	}
	return fmt.Sprintf("[TencentCloudSDKError] Kind=%s, Code=%s, Message=%s", e.Kind, e.Code, e.Message)
}

// Unwrap exposes the underlying cause, if any, to errors.Is/errors.As.
func (e *TencentCloudSDKError) Unwrap() error {
	return e.cause
}

// GetCode returns the service error code, kept for symmetry with the
// upstream SDK family's accessor-style error API.
func (e *TencentCloudSDKError) GetCode() string {
	return e.Code
}

// GetMessage returns the human-readable error message.
func (e *TencentCloudSDKError) GetMessage() string {
	return e.Message
}

// GetRequestId returns the server-assigned request id, empty for
// client-local errors that never reached the server.
func (e *TencentCloudSDKError) GetRequestId() string {
	return e.RequestId
}

func newClient(code, message string) *TencentCloudSDKError {
	return &TencentCloudSDKError{Kind: KindClient, Code: code, Message: message}
}

// NewAlreadyShutdownError reports a call made after the client was shut down.
func NewAlreadyShutdownError() *TencentCloudSDKError {
	return newClient(CodeAlreadyShutdown, "client has already been shut down")
}

// NewInvalidURLError reports a URL the signer could not parse.
func NewInvalidURLError(rawURL string, cause error) *TencentCloudSDKError {
	err := newClient(CodeInvalidURL, fmt.Sprintf("invalid URL %q", rawURL))
	err.Kind = KindSigner
	err.cause = cause
	return err
}

// NewTimeoutError reports a deadline expiring before the call completed.
func NewTimeoutError(cause error) *TencentCloudSDKError {
	err := newClient(CodeTimeout, "request deadline exceeded")
	err.cause = cause
	return err
}

// NewTransportError wraps a transport-level failure (connection refused, TLS
// failure, deadline, etc).
func NewTransportError(cause error) *TencentCloudSDKError {
	return &TencentCloudSDKError{Kind: KindTransport, Code: "TransportError", Message: cause.Error(), cause: cause}
}

// NewServiceError builds a structured error from a decoded
// `{"Response":{"Error":{...}}}` payload.
func NewServiceError(code, message, requestId string, httpStatus int) *TencentCloudSDKError {
	return &TencentCloudSDKError{
		Kind:       KindService,
		Code:       code,
		Message:    message,
		RequestId:  requestId,
		HttpStatus: httpStatus,
	}
}

// NewRawError reports an unparseable server response body.
func NewRawError(httpStatus int, body string, requestId string) *TencentCloudSDKError {
	return &TencentCloudSDKError{
		Kind:       KindRaw,
		Code:       "TCRawError",
		Message:    body,
		RequestId:  requestId,
		HttpStatus: httpStatus,
	}
}

// NewTotalCountChangedError reports a paginator total-count invariant
// violation.
func NewTotalCountChangedError(previous, current int64) *TencentCloudSDKError {
	return &TencentCloudSDKError{
		Kind:    KindPagination,
		Code:    CodeTotalCountChanged,
		Message: fmt.Sprintf("reported total count changed from %d to %d between pages", previous, current),
	}
}

// NewNoProviderError reports a credential provider that found no usable
// credential (e.g. missing environment variables or credentials file).
func NewNoProviderError(message string) *TencentCloudSDKError {
	return &TencentCloudSDKError{Kind: KindCredentialProvider, Code: CodeNoProvider, Message: message}
}

// NewInvalidCredentialsError reports a credential source that was found but
// malformed (e.g. a profile section missing secret_key).
func NewInvalidCredentialsError(message string) *TencentCloudSDKError {
	return &TencentCloudSDKError{Kind: KindCredentialProvider, Code: CodeInvalidCredentials, Message: message}
}
