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

// Package v20200210 is a hand-trimmed, illustrative generated service
// client: it exists to exercise the SDK core (signing, retry, pagination)
// against a realistic per-service surface, the way a real code-generated
// package would.
package v20200210

import (
	"context"

	"github.com/teco-project/teco-core-go/tencentcloud/common"
	tchttp "github.com/teco-project/teco-core-go/tencentcloud/common/http"
	"github.com/teco-project/teco-core-go/tencentcloud/common/profile"
)

const APIVersion = "2020-02-10"
const serviceName = "ccc"

type Client struct {
	common.Client
}

// NewClientWithSecretId is the simplest constructor: a fixed secret id and
// key, default profile.
func NewClientWithSecretId(secretId, secretKey, region string) (client *Client, err error) {
	cpf := profile.NewClientProfile()
	client = &Client{}
	client.Init(region).WithSecretId(secretId, secretKey).WithProfile(cpf)
	return
}

func NewClient(credential *common.Credential, region string, clientProfile *profile.ClientProfile) (client *Client, err error) {
	client = &Client{}
	client.Init(region).
		WithCredential(credential).
		WithProfile(clientProfile)
	return
}

func NewCreateSDKLoginTokenRequest() (request *CreateSDKLoginTokenRequest) {
	request = &CreateSDKLoginTokenRequest{
		BaseRequest: &tchttp.BaseRequest{},
	}
	request.Init().WithApiInfo(serviceName, APIVersion, "CreateSDKLoginToken")
	return
}

func NewCreateSDKLoginTokenResponse() (response *CreateSDKLoginTokenResponse) {
	response = &CreateSDKLoginTokenResponse{
		BaseResponse: &tchttp.BaseResponse{},
	}
	return
}

// CreateSDKLoginToken mints a short-lived login token for the web/mobile
// agent SDK.
func (c *Client) CreateSDKLoginToken(request *CreateSDKLoginTokenRequest) (response *CreateSDKLoginTokenResponse, err error) {
	return c.CreateSDKLoginTokenWithContext(context.Background(), request)
}

func (c *Client) CreateSDKLoginTokenWithContext(ctx context.Context, request *CreateSDKLoginTokenRequest) (response *CreateSDKLoginTokenResponse, err error) {
	if request == nil {
		request = NewCreateSDKLoginTokenRequest()
	}
	response = NewCreateSDKLoginTokenResponse()
	err = c.SendWithContext(ctx, request, response)
	return
}

func NewCreateStaffRequest() (request *CreateStaffRequest) {
	request = &CreateStaffRequest{
		BaseRequest: &tchttp.BaseRequest{},
	}
	request.Init().WithApiInfo(serviceName, APIVersion, "CreateStaff")
	return
}

func NewCreateStaffResponse() (response *CreateStaffResponse) {
	response = &CreateStaffResponse{
		BaseResponse: &tchttp.BaseResponse{},
	}
	return
}

// CreateStaff provisions a new agent seat.
func (c *Client) CreateStaff(request *CreateStaffRequest) (response *CreateStaffResponse, err error) {
	return c.CreateStaffWithContext(context.Background(), request)
}

func (c *Client) CreateStaffWithContext(ctx context.Context, request *CreateStaffRequest) (response *CreateStaffResponse, err error) {
	if request == nil {
		request = NewCreateStaffRequest()
	}
	response = NewCreateStaffResponse()
	err = c.SendWithContext(ctx, request, response)
	return
}

func NewDescribeChatMessagesRequest() (request *DescribeChatMessagesRequest) {
	request = &DescribeChatMessagesRequest{
		BaseRequest: &tchttp.BaseRequest{},
	}
	request.Init().WithApiInfo(serviceName, APIVersion, "DescribeChatMessages")
	return
}

func NewDescribeChatMessagesResponse() (response *DescribeChatMessagesResponse) {
	response = &DescribeChatMessagesResponse{
		BaseResponse: &tchttp.BaseResponse{},
	}
	return
}

// DescribeChatMessages fetches the message transcript for one chat session.
func (c *Client) DescribeChatMessages(request *DescribeChatMessagesRequest) (response *DescribeChatMessagesResponse, err error) {
	return c.DescribeChatMessagesWithContext(context.Background(), request)
}

func (c *Client) DescribeChatMessagesWithContext(ctx context.Context, request *DescribeChatMessagesRequest) (response *DescribeChatMessagesResponse, err error) {
	if request == nil {
		request = NewDescribeChatMessagesRequest()
	}
	response = NewDescribeChatMessagesResponse()
	err = c.SendWithContext(ctx, request, response)
	return
}

func NewDescribeIMCdrsRequest() (request *DescribeIMCdrsRequest) {
	request = &DescribeIMCdrsRequest{
		BaseRequest: &tchttp.BaseRequest{},
	}
	request.Init().WithApiInfo(serviceName, APIVersion, "DescribeIMCdrs")
	return
}

func NewDescribeIMCdrsResponse() (response *DescribeIMCdrsResponse) {
	response = &DescribeIMCdrsResponse{
		BaseResponse: &tchttp.BaseResponse{},
	}
	return
}

// DescribeIMCdrs fetches call-detail records for IM (text/rich-media)
// sessions.
func (c *Client) DescribeIMCdrs(request *DescribeIMCdrsRequest) (response *DescribeIMCdrsResponse, err error) {
	return c.DescribeIMCdrsWithContext(context.Background(), request)
}

func (c *Client) DescribeIMCdrsWithContext(ctx context.Context, request *DescribeIMCdrsRequest) (response *DescribeIMCdrsResponse, err error) {
	if request == nil {
		request = NewDescribeIMCdrsRequest()
	}
	response = NewDescribeIMCdrsResponse()
	err = c.SendWithContext(ctx, request, response)
	return
}

func NewDescribeTelCdrRequest() (request *DescribeTelCdrRequest) {
	request = &DescribeTelCdrRequest{
		BaseRequest: &tchttp.BaseRequest{},
	}
	request.Init().WithApiInfo(serviceName, APIVersion, "DescribeTelCdr")
	return
}

func NewDescribeTelCdrResponse() (response *DescribeTelCdrResponse) {
	response = &DescribeTelCdrResponse{
		BaseResponse: &tchttp.BaseResponse{},
	}
	return
}

// DescribeTelCdr fetches call-detail records and recording URLs for
// telephony sessions.
func (c *Client) DescribeTelCdr(request *DescribeTelCdrRequest) (response *DescribeTelCdrResponse, err error) {
	return c.DescribeTelCdrWithContext(context.Background(), request)
}

func (c *Client) DescribeTelCdrWithContext(ctx context.Context, request *DescribeTelCdrRequest) (response *DescribeTelCdrResponse, err error) {
	if request == nil {
		request = NewDescribeTelCdrRequest()
	}
	response = NewDescribeTelCdrResponse()
	err = c.SendWithContext(ctx, request, response)
	return
}

func NewDescribeStaffListRequest() (request *DescribeStaffListRequest) {
	request = &DescribeStaffListRequest{
		BaseRequest: &tchttp.BaseRequest{},
	}
	request.Init().WithApiInfo(serviceName, APIVersion, "DescribeStaffList")
	request.PageSize = common.Int64Ptr(100)
	request.PageNumber = common.Int64Ptr(0)
	return
}

func NewDescribeStaffListResponse() (response *DescribeStaffListResponse) {
	response = &DescribeStaffListResponse{
		BaseResponse: &tchttp.BaseResponse{},
	}
	return
}

// DescribeStaffList fetches one page of the agent roster. Prefer
// DescribeStaffListPages/DescribeStaffListItems for a full traversal.
func (c *Client) DescribeStaffList(request *DescribeStaffListRequest) (response *DescribeStaffListResponse, err error) {
	return c.DescribeStaffListWithContext(context.Background(), request)
}

func (c *Client) DescribeStaffListWithContext(ctx context.Context, request *DescribeStaffListRequest) (response *DescribeStaffListResponse, err error) {
	if request == nil {
		request = NewDescribeStaffListRequest()
	}
	response = NewDescribeStaffListResponse()
	err = c.SendWithContext(ctx, request, response)
	return
}

// DescribeStaffListPages returns a page-level iterator over the full agent
// roster, advancing PageNumber on every call.
func (c *Client) DescribeStaffListPages(ctx context.Context, request *DescribeStaffListRequest) *common.ResponseIterator[*DescribeStaffListRequest, *DescribeStaffListResponse] {
	if request == nil {
		request = NewDescribeStaffListRequest()
	}
	return common.NewResponseIterator(ctx, request, c.DescribeStaffListWithContext, staffListNextRequest, staffListTotalCount, staffListItemCount)
}

// DescribeStaffListItems returns an item-level iterator over every Staff
// record across the full roster.
func (c *Client) DescribeStaffListItems(ctx context.Context, request *DescribeStaffListRequest) *common.ItemIterator[*DescribeStaffListRequest, *DescribeStaffListResponse, *StaffInfo] {
	if request == nil {
		request = NewDescribeStaffListRequest()
	}
	return common.NewItemIterator(ctx, request, c.DescribeStaffListWithContext, staffListNextRequest, staffListTotalCount, staffListItems)
}

// staffListNextRequest relies on the server echoing back the page it served
// in Response.PageNumber, the common convention for Tencent Cloud's
// offset-paginated List APIs; it never needs the originating request.
func staffListNextRequest(resp *DescribeStaffListResponse) (*DescribeStaffListRequest, bool) {
	if resp == nil || resp.Response == nil || len(resp.Response.StaffList) == 0 || resp.Response.PageNumber == nil {
		return nil, false
	}
	next := NewDescribeStaffListRequest()
	next.PageNumber = common.Int64Ptr(*resp.Response.PageNumber + 1)
	if resp.Response.PageSize != nil {
		next.PageSize = resp.Response.PageSize
	}
	return next, true
}

func staffListTotalCount(resp *DescribeStaffListResponse) (int64, bool) {
	if resp == nil || resp.Response == nil || resp.Response.TotalCount == nil {
		return 0, false
	}
	return *resp.Response.TotalCount, true
}

func staffListItemCount(resp *DescribeStaffListResponse) int {
	return len(staffListItems(resp))
}

func staffListItems(resp *DescribeStaffListResponse) []*StaffInfo {
	if resp == nil || resp.Response == nil {
		return nil
	}
	return resp.Response.StaffList
}
