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

package v20200210

import (
	tchttp "github.com/teco-project/teco-core-go/tencentcloud/common/http"
)

type CreateSDKLoginTokenRequest struct {
	*tchttp.BaseRequest

	// SdkAppId is the application id issued when the CCC instance was
	// created.
	SdkAppId *string `json:"SdkAppId,omitempty" name:"SdkAppId"`
	// StaffId identifies the agent the token logs in as.
	StaffId *uint64 `json:"StaffId,omitempty" name:"StaffId"`
}

type CreateSDKLoginTokenResponseParams struct {
	// Token is the short-lived SDK login token.
	Token *string `json:"Token,omitempty" name:"Token"`
	RequestId *string `json:"RequestId,omitempty" name:"RequestId"`
}

type CreateSDKLoginTokenResponse struct {
	*tchttp.BaseResponse
	Response *CreateSDKLoginTokenResponseParams `json:"Response"`
}

type CreateStaffRequest struct {
	*tchttp.BaseRequest

	SdkAppId *string `json:"SdkAppId,omitempty" name:"SdkAppId"`
	// Name is the staff's display name.
	Name *string `json:"Name,omitempty" name:"Name"`
	// Email, when set, is used for notification delivery.
	Email *string `json:"Email,omitempty" name:"Email"`
	// Skilling is the list of skill group ids the new staff joins.
	Skilling []*int64 `json:"Skilling,omitempty" name:"Skilling"`
	// ClientToken is an idempotency token; repeating the same value for a
	// retried call guarantees at-most-once staff creation.
	ClientToken *string `json:"ClientToken,omitempty" name:"ClientToken"`
}

type CreateStaffResponseParams struct {
	StaffId   *uint64 `json:"StaffId,omitempty" name:"StaffId"`
	RequestId *string `json:"RequestId,omitempty" name:"RequestId"`
}

type CreateStaffResponse struct {
	*tchttp.BaseResponse
	Response *CreateStaffResponseParams `json:"Response"`
}

type DescribeChatMessagesRequest struct {
	*tchttp.BaseRequest

	SdkAppId  *string `json:"SdkAppId,omitempty" name:"SdkAppId"`
	SessionId *string `json:"SessionId,omitempty" name:"SessionId"`
}

type ChatMessage struct {
	Sender    *string `json:"Sender,omitempty" name:"Sender"`
	Content   *string `json:"Content,omitempty" name:"Content"`
	Timestamp *int64  `json:"Timestamp,omitempty" name:"Timestamp"`
}

type DescribeChatMessagesResponseParams struct {
	Messages  []*ChatMessage `json:"Messages,omitempty" name:"Messages"`
	RequestId *string        `json:"RequestId,omitempty" name:"RequestId"`
}

type DescribeChatMessagesResponse struct {
	*tchttp.BaseResponse
	Response *DescribeChatMessagesResponseParams `json:"Response"`
}

type DescribeIMCdrsRequest struct {
	*tchttp.BaseRequest

	SdkAppId  *string `json:"SdkAppId,omitempty" name:"SdkAppId"`
	StartTime *int64  `json:"StartTime,omitempty" name:"StartTime"`
	EndTime   *int64  `json:"EndTime,omitempty" name:"EndTime"`
	Offset    *int64  `json:"Offset,omitempty" name:"Offset"`
	Limit     *int64  `json:"Limit,omitempty" name:"Limit"`
}

type IMCdrInfo struct {
	SessionId *string `json:"SessionId,omitempty" name:"SessionId"`
	StaffId   *uint64 `json:"StaffId,omitempty" name:"StaffId"`
	StartTime *int64  `json:"StartTime,omitempty" name:"StartTime"`
	EndTime   *int64  `json:"EndTime,omitempty" name:"EndTime"`
}

type DescribeIMCdrsResponseParams struct {
	Total     *int64       `json:"Total,omitempty" name:"Total"`
	IMCdrList []*IMCdrInfo `json:"IMCdrList,omitempty" name:"IMCdrList"`
	RequestId *string      `json:"RequestId,omitempty" name:"RequestId"`
}

type DescribeIMCdrsResponse struct {
	*tchttp.BaseResponse
	Response *DescribeIMCdrsResponseParams `json:"Response"`
}

type DescribeTelCdrRequest struct {
	*tchttp.BaseRequest

	SdkAppId  *string `json:"SdkAppId,omitempty" name:"SdkAppId"`
	StartTime *int64  `json:"StartTime,omitempty" name:"StartTime"`
	EndTime   *int64  `json:"EndTime,omitempty" name:"EndTime"`
	Offset    *int64  `json:"Offset,omitempty" name:"Offset"`
	Limit     *int64  `json:"Limit,omitempty" name:"Limit"`
}

type TelCdrInfo struct {
	CallId       *string `json:"CallId,omitempty" name:"CallId"`
	StaffId      *uint64 `json:"StaffId,omitempty" name:"StaffId"`
	Duration     *int64  `json:"Duration,omitempty" name:"Duration"`
	RecordURL    *string `json:"RecordURL,omitempty" name:"RecordURL"`
}

type DescribeTelCdrResponseParams struct {
	Total     *int64        `json:"Total,omitempty" name:"Total"`
	TelCdrList []*TelCdrInfo `json:"TelCdrList,omitempty" name:"TelCdrList"`
	RequestId *string       `json:"RequestId,omitempty" name:"RequestId"`
}

type DescribeTelCdrResponse struct {
	*tchttp.BaseResponse
	Response *DescribeTelCdrResponseParams `json:"Response"`
}

// DescribeStaffListRequest pages through the full agent roster, PageSize
// items at a time, starting at PageNumber 0.
type DescribeStaffListRequest struct {
	*tchttp.BaseRequest

	SdkAppId   *string `json:"SdkAppId,omitempty" name:"SdkAppId"`
	PageNumber *int64  `json:"PageNumber,omitempty" name:"PageNumber"`
	PageSize   *int64  `json:"PageSize,omitempty" name:"PageSize"`
}

type StaffInfo struct {
	StaffId *uint64 `json:"StaffId,omitempty" name:"StaffId"`
	Name    *string `json:"Name,omitempty" name:"Name"`
	Email   *string `json:"Email,omitempty" name:"Email"`
	Status  *string `json:"Status,omitempty" name:"Status"`
}

type DescribeStaffListResponseParams struct {
	// TotalCount is the roster size; held constant across every page absent
	// a concurrent roster change.
	TotalCount *int64 `json:"TotalCount,omitempty" name:"TotalCount"`
	// PageNumber and PageSize echo the page the server actually served, the
	// basis the client uses to request the next one.
	PageNumber *int64       `json:"PageNumber,omitempty" name:"PageNumber"`
	PageSize   *int64       `json:"PageSize,omitempty" name:"PageSize"`
	StaffList  []*StaffInfo `json:"StaffList,omitempty" name:"StaffList"`
	RequestId  *string      `json:"RequestId,omitempty" name:"RequestId"`
}

type DescribeStaffListResponse struct {
	*tchttp.BaseResponse
	Response *DescribeStaffListResponseParams `json:"Response"`
}
