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
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	tcerr "github.com/teco-project/teco-core-go/tencentcloud/common/errors"
	tchttp "github.com/teco-project/teco-core-go/tencentcloud/common/http"
)

// SigningMode selects which headers TC3-HMAC-SHA256 signs.
type SigningMode int

const (
	// SigningDefault signs content-type and host; any other header the
	// caller passed in is sent but not signed.
	SigningDefault SigningMode = iota
	// SigningSkipAuthorization sets Authorization to the literal "SKIP" and
	// performs no cryptographic work at all, for transports that
	// authenticate by other means (e.g. a pre-authenticated tunnel).
	SigningSkipAuthorization
	// SigningMinimal signs only content-type and host even if more headers
	// were supplied.
	SigningMinimal
)

const tc3Algorithm = "TC3-HMAC-SHA256"

// emptyPayloadHash is sha256("") — used as the hashed payload for GET
// requests and POST requests with no body.
const emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// SignRequest describes the inputs to SignHeaders: everything the TC3
// algorithm needs to produce an Authorization header and its auxiliary
// headers. SignHeaders is a pure function of these fields plus Timestamp.
type SignRequest struct {
	Method           string
	URL              string
	Headers          map[string]string
	Body             []byte
	Timestamp        time.Time
	Credential       CredentialIface
	Service          string
	Mode             SigningMode
	OmitSessionToken bool
}

// SignHeaders implements TC3-HMAC-SHA256 (spec.md §4.A). It returns only the
// headers to add or overwrite on the outgoing request; it never mutates
// in.Headers. The function is deterministic in all its inputs including
// Timestamp: the same SignRequest always yields the same Authorization.
func SignHeaders(in SignRequest) (map[string]string, error) {
	parsed, err := url.Parse(in.URL)
	if err != nil || parsed.Host == "" {
		return nil, tcerr.NewInvalidURLError(in.URL, err)
	}

	out := make(map[string]string, 3)
	out["X-TC-Timestamp"] = fmt.Sprintf("%d", in.Timestamp.Unix())
	if _, hasHost := lookupHeader(in.Headers, "Host"); !hasHost {
		out["Host"] = parsed.Host
	}
	if in.Credential != nil && in.Credential.GetToken() != "" && !in.OmitSessionToken {
		out["X-TC-Token"] = in.Credential.GetToken()
	}

	if in.Mode == SigningSkipAuthorization {
		out["Authorization"] = "SKIP"
		return out, nil
	}

	method := strings.ToUpper(in.Method)
	canonicalURI := parsed.Path
	if canonicalURI == "" {
		canonicalURI = "/"
	}
	canonicalQueryString := canonicalQuery(parsed.RawQuery)

	contentType, _ := lookupHeader(in.Headers, "Content-Type")
	host := parsed.Host
	if v, ok := lookupHeader(in.Headers, "Host"); ok {
		host = v
	}

	// TC3 canonicalizes exactly content-type and host, regardless of how
	// many other headers the caller is sending; SigningDefault and
	// SigningMinimal are therefore identical in practice (SigningMinimal is
	// kept only because the spec names it as a distinct mode callers may
	// select explicitly).
	signedNames := []string{"content-type", "host"}
	var canonicalHeaders strings.Builder
	canonicalHeaders.WriteString("content-type:" + strings.TrimSpace(contentType) + "\n")
	canonicalHeaders.WriteString("host:" + strings.TrimSpace(host) + "\n")
	signedHeaders := strings.Join(signedNames, ";")

	hashedPayload := emptyPayloadHash
	if len(in.Body) > 0 {
		hashedPayload = sha256Hex(in.Body)
	}

	canonicalRequest := strings.Join([]string{
		method,
		canonicalURI,
		canonicalQueryString,
		canonicalHeaders.String(),
		signedHeaders,
		hashedPayload,
	}, "\n")

	date := in.Timestamp.UTC().Format("2006-01-02")
	credentialScope := fmt.Sprintf("%s/%s/tc3_request", date, in.Service)
	stringToSign := strings.Join([]string{
		tc3Algorithm,
		out["X-TC-Timestamp"],
		credentialScope,
		sha256Hex([]byte(canonicalRequest)),
	}, "\n")

	kDate := hmacSHA256([]byte("TC3"+in.Credential.GetSecretKey()), []byte(date))
	kService := hmacSHA256(kDate, []byte(in.Service))
	kSigning := hmacSHA256(kService, []byte("tc3_request"))
	signature := hex.EncodeToString(hmacSHA256(kSigning, []byte(stringToSign)))

	out["Authorization"] = fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		tc3Algorithm, in.Credential.GetSecretId(), credentialScope, signedHeaders, signature)
	return out, nil
}

func lookupHeader(headers map[string]string, name string) (string, bool) {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// canonicalQuery re-derives raw (singly-decoded) query values from rawQuery
// and re-encodes them per RFC 3986, sorted by name then value. Using the
// already-decoded url.Values ensures we never double-encode a caller's
// pre-encoded query string.
func canonicalQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ""
	}
	type pair struct{ name, value string }
	var pairs []pair
	for name, vals := range values {
		for _, v := range vals {
			pairs = append(pairs, pair{name, v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].name == pairs[j].name {
			return pairs[i].value < pairs[j].value
		}
		return pairs[i].name < pairs[j].name
	})
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, tchttp.EncodeRFC3986(p.name)+"="+tchttp.EncodeRFC3986(p.value))
	}
	return strings.Join(parts, "&")
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key, message []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

func hmacSHA1(key, message []byte) []byte {
	mac := hmac.New(sha1.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// SignV1Query implements the co-resident V1 signer used for legacy
// GET-style signing and COS V5 presigned URLs: a flat base64 "Signature"
// parameter over "{METHOD}{host}{path}?{sortedQuery}", where sortedQuery
// sorts items by name only (ties broken by first occurrence).
func SignV1Query(method, host, path string, params map[string]string, secretKey string, algorithm string) (string, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	sortedQuery := strings.Join(parts, "&")

	signStr := strings.ToUpper(method) + host + path + "?" + sortedQuery

	var mac []byte
	switch algorithm {
	case "HmacSHA1":
		mac = hmacSHA1([]byte(secretKey), []byte(signStr))
	case "HmacSHA256", "":
		mac = hmacSHA256([]byte(secretKey), []byte(signStr))
	default:
		return "", fmt.Errorf("unsupported V1 signature method %q", algorithm)
	}
	return base64.StdEncoding.EncodeToString(mac), nil
}
