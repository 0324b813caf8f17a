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

package http

import (
	"encoding/json"
	"io"
	"net/http"

	tcerr "github.com/teco-project/teco-core-go/tencentcloud/common/errors"
)

// Response is the capability a generated response type must provide: the
// ability to inspect its own decoded body for a `Response.Error`.
type Response interface {
	ParseErrorFromHTTPResponse(body []byte) error
}

// BaseResponse is embedded by every generated response type.
type BaseResponse struct {
	RequestId string `json:"-"`
}

type errorEnvelope struct {
	Response struct {
		RequestId string `json:"RequestId"`
		Error     *struct {
			Code    string `json:"Code"`
			Message string `json:"Message"`
		} `json:"Error"`
	} `json:"Response"`
}

// ParseErrorFromHTTPResponse inspects the decoded body for a modeled
// `Response.Error` and, if present, returns a ServiceError. It always
// records RequestId on the receiver, error or not.
func (r *BaseResponse) ParseErrorFromHTTPResponse(body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	r.RequestId = env.Response.RequestId
	if env.Response.Error != nil {
		return tcerr.NewServiceError(env.Response.Error.Code, env.Response.Error.Message, env.Response.RequestId, 200)
	}
	return nil
}

// ParseFromHttpResponse fully reads hr's body, classifies it, and either
// populates response in place or returns a structured error. The http.Response
// body is always closed.
func ParseFromHttpResponse(hr *http.Response, response Response) error {
	defer hr.Body.Close()
	body, err := io.ReadAll(hr.Body)
	if err != nil {
		return tcerr.NewTransportError(err)
	}

	if hr.StatusCode < 200 || hr.StatusCode >= 300 {
		if parseErr := response.ParseErrorFromHTTPResponse(body); parseErr != nil {
			if _, ok := parseErr.(*tcerr.TencentCloudSDKError); ok {
				return parseErr
			}
		}
		return tcerr.NewRawError(hr.StatusCode, string(body), "")
	}

	if parseErr := response.ParseErrorFromHTTPResponse(body); parseErr != nil {
		if _, ok := parseErr.(*tcerr.TencentCloudSDKError); ok {
			return parseErr
		}
		return tcerr.NewRawError(hr.StatusCode, string(body), "")
	}

	if err := json.Unmarshal(body, response); err != nil {
		return tcerr.NewRawError(hr.StatusCode, string(body), "")
	}
	return nil
}
