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

// Error codes a generated service package exposes as typed constants, in
// the "Category.SubCode" shape Tencent Cloud APIs report in
// Response.Error.Code. Callers compare against these instead of
// string-matching raw codes.
const (
	FAILEDOPERATION                    = "FailedOperation"
	FAILEDOPERATION_STAFFNOTFOUND      = "FailedOperation.StaffNotFound"
	FAILEDOPERATION_SESSIONNOTFOUND    = "FailedOperation.SessionNotFound"
	INVALIDPARAMETER                   = "InvalidParameter"
	INVALIDPARAMETER_PAGENUMBEROUTOFRANGE = "InvalidParameter.PageNumberOutOfRange"
	LIMITEXCEEDED_STAFFLIMITEXCEEDED   = "LimitExceeded.StaffLimitExceeded"
	RESOURCENOTFOUND_SDKAPPID         = "ResourceNotFound.SdkAppId"
	UNAUTHORIZEDOPERATION             = "UnauthorizedOperation"
)
