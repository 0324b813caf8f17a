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
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teco-project/teco-core-go/tencentcloud/common"
	"github.com/teco-project/teco-core-go/tencentcloud/common/profile"
)

// pagedStaffTransport serves the given pages in order, one page per call,
// repeating the last page once they run out, so DescribeStaffListPages/Items
// can be exercised end to end without a network.
type pagedStaffTransport struct {
	calls int
	pages []string
}

func (t *pagedStaffTransport) Do(req *http.Request) (*http.Response, error) {
	idx := t.calls
	if idx >= len(t.pages) {
		idx = len(t.pages) - 1
	}
	t.calls++
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewReader([]byte(t.pages[idx]))),
		Header:     make(http.Header),
	}, nil
}

func newTestCCCClient(transport common.Transport) *Client {
	client, err := NewClient(common.NewCredential("id", "key"), "ap-guangzhou", profile.NewClientProfile())
	if err != nil {
		panic(err)
	}
	client.WithCustomTransport(transport)
	return client
}

func TestDescribeStaffListItems_TraversesAllPages(t *testing.T) {
	transport := &pagedStaffTransport{pages: []string{
		`{"Response":{"RequestId":"r1","TotalCount":3,"PageNumber":0,"PageSize":2,"StaffList":[{"StaffId":1,"Name":"a"},{"StaffId":2,"Name":"b"}]}}`,
		`{"Response":{"RequestId":"r2","TotalCount":3,"PageNumber":1,"PageSize":2,"StaffList":[{"StaffId":3,"Name":"c"}]}}`,
		`{"Response":{"RequestId":"r3","TotalCount":3,"PageNumber":2,"PageSize":2,"StaffList":[]}}`,
	}}
	client := newTestCCCClient(transport)

	it := client.DescribeStaffListItems(context.Background(), nil)
	var names []string
	for {
		item, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		names = append(names, *item.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestDescribeStaffListPages_StopsWhenPageEmpty(t *testing.T) {
	transport := &pagedStaffTransport{pages: []string{
		`{"Response":{"RequestId":"r1","TotalCount":1,"PageNumber":0,"PageSize":100,"StaffList":[{"StaffId":1,"Name":"solo"}]}}`,
		`{"Response":{"RequestId":"r2","TotalCount":1,"PageNumber":1,"PageSize":100,"StaffList":[]}}`,
	}}
	client := newTestCCCClient(transport)

	it := client.DescribeStaffListPages(context.Background(), nil)
	var pageSizes []int
	for {
		resp, hasMore, err := it.Next()
		require.NoError(t, err)
		if !hasMore {
			break
		}
		pageSizes = append(pageSizes, len(resp.Response.StaffList))
	}
	// The empty page that ends the traversal is itself yielded as the last
	// page, and no further request is made after it.
	assert.Equal(t, []int{1, 0}, pageSizes)
	assert.Equal(t, 2, transport.calls)
}

func TestDescribeStaffListWithContext_SinglePage(t *testing.T) {
	transport := &pagedStaffTransport{pages: []string{
		`{"Response":{"RequestId":"r1","TotalCount":0,"PageNumber":0,"PageSize":100,"StaffList":[]}}`,
	}}
	client := newTestCCCClient(transport)

	resp, err := client.DescribeStaffListWithContext(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Response)
	assert.EqualValues(t, 0, *resp.Response.TotalCount)
}

func TestCreateStaffWithContext_PropagatesServiceError(t *testing.T) {
	transport := &pagedStaffTransport{pages: []string{
		`{"Response":{"RequestId":"r1","Error":{"Code":"LimitExceeded.StaffLimitExceeded","Message":"seat cap reached"}}}`,
	}}
	client := newTestCCCClient(transport)

	request := NewCreateStaffRequest()
	request.Name = common.StringPtr("new agent")
	_, err := client.CreateStaffWithContext(context.Background(), request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), LIMITEXCEEDED_STAFFLIMITEXCEEDED)
}
