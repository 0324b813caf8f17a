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

	tcerr "github.com/teco-project/teco-core-go/tencentcloud/common/errors"
)

// ResponseIterator drives a resumable, strictly serial traversal of a
// cursor-shaped list endpoint, one page at a time. It never fetches pages
// concurrently. Item-level iteration (ItemIterator) and the fold form
// (Paginate) are both built on top of it.
type ResponseIterator[Req any, Resp any] struct {
	ctx         context.Context
	current     Req
	exhausted   bool
	dispatch    func(context.Context, Req) (Resp, error)
	nextRequest func(Resp) (Req, bool)
	totalCount  func(Resp) (int64, bool)
	itemCount   func(Resp) int

	havePrevTotal bool
	prevTotal     int64
}

// NewResponseIterator builds a page-level iterator. dispatch performs one
// request through the pipeline; nextRequest derives the following page's
// request from the decoded response, returning ok=false when pagination is
// exhausted; totalCount reports the API's declared total element count, if
// any; itemCount reports how many items the page carried (used only to
// apply the "all-empty page" exception to the total-count invariant).
func NewResponseIterator[Req any, Resp any](
	ctx context.Context,
	initial Req,
	dispatch func(context.Context, Req) (Resp, error),
	nextRequest func(Resp) (Req, bool),
	totalCount func(Resp) (int64, bool),
	itemCount func(Resp) int,
) *ResponseIterator[Req, Resp] {
	return &ResponseIterator[Req, Resp]{
		ctx:         ctx,
		current:     initial,
		dispatch:    dispatch,
		nextRequest: nextRequest,
		totalCount:  totalCount,
		itemCount:   itemCount,
	}
}

// Next dispatches the next page, if any. hasMore is false once pagination is
// exhausted (the zero Resp is returned in that case, with a nil error).
func (it *ResponseIterator[Req, Resp]) Next() (resp Resp, hasMore bool, err error) {
	if it.exhausted {
		var zero Resp
		return zero, false, nil
	}

	resp, err = it.dispatch(it.ctx, it.current)
	if err != nil {
		it.exhausted = true
		var zero Resp
		return zero, false, err
	}

	if total, ok := it.totalCount(resp); ok {
		if it.havePrevTotal && total != it.prevTotal && it.itemCount(resp) > 0 {
			it.exhausted = true
			var zero Resp
			return zero, false, tcerr.NewTotalCountChangedError(it.prevTotal, total)
		}
		it.prevTotal = total
		it.havePrevTotal = true
	}

	next, more := it.nextRequest(resp)
	if !more {
		it.exhausted = true
		return resp, true, nil
	}
	it.current = next
	return resp, true, nil
}

// ItemIterator is a single-consumer, in-order iterator over every item
// across all pages, buffering one page at a time.
type ItemIterator[Req any, Resp any, Item any] struct {
	pages *ResponseIterator[Req, Resp]
	items func(Resp) []Item

	buffer []Item
	idx    int
	done   bool
}

// NewItemIterator builds an item-level iterator over the pages dispatch
// produces. See NewResponseIterator for the other callback semantics.
func NewItemIterator[Req any, Resp any, Item any](
	ctx context.Context,
	initial Req,
	dispatch func(context.Context, Req) (Resp, error),
	nextRequest func(Resp) (Req, bool),
	totalCount func(Resp) (int64, bool),
	items func(Resp) []Item,
) *ItemIterator[Req, Resp, Item] {
	itemCount := func(r Resp) int { return len(items(r)) }
	return &ItemIterator[Req, Resp, Item]{
		pages: NewResponseIterator(ctx, initial, dispatch, nextRequest, totalCount, itemCount),
		items: items,
	}
}

// Next returns the next item in API order, or ok=false once every page has
// been exhausted.
func (it *ItemIterator[Req, Resp, Item]) Next() (item Item, ok bool, err error) {
	for it.idx >= len(it.buffer) {
		if it.done {
			var zero Item
			return zero, false, nil
		}
		resp, hasMore, err := it.pages.Next()
		if err != nil {
			it.done = true
			var zero Item
			return zero, false, err
		}
		if !hasMore {
			it.done = true
			var zero Item
			return zero, false, nil
		}
		it.buffer = it.items(resp)
		it.idx = 0
	}
	item = it.buffer[it.idx]
	it.idx++
	return item, true, nil
}

// Paginate is the fold form: it drives the full traversal, calling reduce
// once per page, and lets reduce stop the traversal early by returning
// cont=false.
func Paginate[Req any, Resp any, Acc any](
	ctx context.Context,
	initial Req,
	dispatch func(context.Context, Req) (Resp, error),
	nextRequest func(Resp) (Req, bool),
	totalCount func(Resp) (int64, bool),
	itemCount func(Resp) int,
	initialAcc Acc,
	reduce func(acc Acc, resp Resp) (cont bool, next Acc),
) (Acc, error) {
	it := NewResponseIterator(ctx, initial, dispatch, nextRequest, totalCount, itemCount)
	acc := initialAcc
	for {
		resp, hasMore, err := it.Next()
		if err != nil {
			return acc, err
		}
		if !hasMore {
			return acc, nil
		}
		cont, next := reduce(acc, resp)
		acc = next
		if !cont {
			return acc, nil
		}
	}
}
