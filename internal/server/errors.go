// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransportsConfigured is returned when the server config names no
// listen address, so there is no transport to serve the testgen API on.
var errNoTransportsConfigured = errors.New("no transport servers configured")
