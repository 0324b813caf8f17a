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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPageRequest struct{ page int }

type stubPageResponse struct {
	items      []int
	totalCount int64
	hasTotal   bool
}

func stubPages(pages [][]int, totals []int64, haveTotal bool) func(context.Context, stubPageRequest) (stubPageResponse, error) {
	return func(_ context.Context, req stubPageRequest) (stubPageResponse, error) {
		return stubPageResponse{
			items:      pages[req.page],
			totalCount: totals[req.page],
			hasTotal:   haveTotal,
		}, nil
	}
}

func stubNextRequest(maxPage int) func(stubPageResponse) (stubPageRequest, bool) {
	page := 0
	return func(stubPageResponse) (stubPageRequest, bool) {
		page++
		if page > maxPage {
			return stubPageRequest{}, false
		}
		return stubPageRequest{page: page}, true
	}
}

func stubTotalCount(r stubPageResponse) (int64, bool) { return r.totalCount, r.hasTotal }
func stubItemCount(r stubPageResponse) int            { return len(r.items) }
func stubItems(r stubPageResponse) []int              { return r.items }

func TestPaginate_FoldsInOrder(t *testing.T) {
	pages := [][]int{{1, 2}, {3}, {}}
	totals := []int64{3, 3, 3}

	acc, err := Paginate(
		context.Background(),
		stubPageRequest{page: 0},
		stubPages(pages, totals, true),
		stubNextRequest(2),
		stubTotalCount,
		stubItemCount,
		[]int{},
		func(acc []int, resp stubPageResponse) (bool, []int) {
			return true, append(acc, resp.items...)
		},
	)
	require.NoError(t, err)
	assert.True(t, cmp.Equal([]int{1, 2, 3}, acc))
}

func TestItemIterator_YieldsEveryItem(t *testing.T) {
	pages := [][]int{{1, 2}, {3}, {}}
	totals := []int64{3, 3, 3}

	it := NewItemIterator(
		context.Background(),
		stubPageRequest{page: 0},
		stubPages(pages, totals, true),
		stubNextRequest(2),
		stubTotalCount,
		stubItems,
	)

	var got []int
	for {
		item, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, item)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestResponseIterator_TotalCountChanged(t *testing.T) {
	pages := [][]int{{1, 2}, {3}}
	totals := []int64{3, 4} // changes on second page, which carries items

	it := NewResponseIterator(
		context.Background(),
		stubPageRequest{page: 0},
		stubPages(pages, totals, true),
		stubNextRequest(1),
		stubTotalCount,
		stubItemCount,
	)

	_, hasMore, err := it.Next()
	require.NoError(t, err)
	require.True(t, hasMore)

	_, hasMore, err = it.Next()
	require.Error(t, err)
	assert.False(t, hasMore)
}

func TestResponseIterator_UninhabitedCountNeverChanges(t *testing.T) {
	pages := [][]int{{1, 2}, {3}, {}}
	totals := []int64{0, 0, 0}

	it := NewResponseIterator(
		context.Background(),
		stubPageRequest{page: 0},
		stubPages(pages, totals, false), // totalCount always reports ok=false
		stubNextRequest(2),
		stubTotalCount,
		stubItemCount,
	)

	for {
		_, hasMore, err := it.Next()
		require.NoError(t, err)
		if !hasMore {
			break
		}
	}
}

func TestResponseIterator_DispatchErrorStopsIteration(t *testing.T) {
	boom := errFixture("boom")
	dispatch := func(context.Context, stubPageRequest) (stubPageResponse, error) {
		return stubPageResponse{}, boom
	}
	it := NewResponseIterator(context.Background(), stubPageRequest{}, dispatch, stubNextRequest(1), stubTotalCount, stubItemCount)

	_, hasMore, err := it.Next()
	assert.False(t, hasMore)
	assert.Equal(t, boom, err)

	// Exhausted after an error; subsequent calls return no more pages.
	_, hasMore, err = it.Next()
	assert.False(t, hasMore)
	assert.NoError(t, err)
}

type errFixture string

func (e errFixture) Error() string { return string(e) }
