// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

import "errors"

// ErrFormat is wrapped by errors returned for a malformed or unsupported
// specifier. ErrWrite is wrapped by errors returned when the underlying
// sink fails. Both are additive over the C-style -1 return: n is still
// -1 on failure (an unspecified value on the Go side, documented as
// such), but callers that want to distinguish the two failure kinds can
// use errors.Is instead of re-parsing n.
var (
	ErrFormat = errors.New("sio: format error")
	ErrWrite  = errors.New("sio: write error")
)
