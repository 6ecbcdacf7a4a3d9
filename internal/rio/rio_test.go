// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package rio

import (
	"os"
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestWriteFullReadFull(t *testing.T) {
	r, w, err := os.Pipe()
	testutils.NoError(t, err)
	defer r.Close()
	defer w.Close()

	want := []byte("reentrant formatted output, retried past EINTR")

	done := make(chan struct{})
	go func() {
		defer close(done)
		n, err := WriteFull(int(w.Fd()), want)
		testutils.NoError(t, err)
		testutils.Equal(t, len(want), n)
	}()

	got := make([]byte, len(want))
	n, err := ReadFull(int(r.Fd()), got)
	testutils.NoError(t, err)
	testutils.Equal(t, len(want), n)
	testutils.Equal(t, string(want), string(got))
	<-done
}

func TestListenTCP(t *testing.T) {
	lfd, err := ListenTCP(0)
	testutils.NoError(t, err)
	defer Close(lfd)

	// Port 0 asks the OS to pick a free port; this test only exercises
	// that listen itself succeeds and returns a usable descriptor,
	// since recovering the chosen port needs a getsockname syscall this
	// package does not expose.
	if lfd < 0 {
		t.Fatal("expected a non-negative listening descriptor")
	}
}
