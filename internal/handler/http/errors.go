// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while extracting the bearer token from an API
// request. The auth middleware maps all of them to 401.
var (
	// ErrEmptyAuthorizationHeader reports a request that carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader reports a header without a scheme/token
	// pair, such as a bare "Bearer".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken reports a header whose scheme is followed by blank token
	// text.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
