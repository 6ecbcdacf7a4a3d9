// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

import (
	"os"
	"path/filepath"

	"github.com/sio-authors/sio/internal/rio"
)

// progName replaces the process-wide __progname the reference
// assertion path reads. It is captured once from os.Args[0]; embedders
// that want a stable name regardless of how the binary was invoked
// (tests, the demo CLI) can override it with SetProgName.
var progName = filepath.Base(os.Args[0])

// SetProgName overrides the name fatalf reports on an internal
// invariant violation.
func SetProgName(name string) {
	progName = name
}

// fatalf reports msg, best-effort and signal-safely, to fd 2 and then
// panics. It is the replacement for __sio_assert_fail's "print then
// abort": Go has no abort()-only story that preserves a caller's
// ability to recover and log, so this package panics instead of calling
// os.Exit. Callers embedding sio in a larger process may recover from
// this; see doc.go.
func fatalf(msg string) {
	line := progName + ": " + msg + "\n"
	_, _ = rio.WriteFull(2, []byte(line))
	panic(msg)
}
