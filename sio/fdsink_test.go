// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package sio

import (
	"io"
	"os"
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestFDSinkWritesPaddingAndData(t *testing.T) {
	r, w, err := os.Pipe()
	testutils.NoError(t, err)
	defer r.Close()
	defer w.Close()

	s := newFDSink(int(w.Fd()))
	done := make(chan struct{})
	go func() {
		defer close(done)
		n, ok := s.write('*', 2, []byte("hi"), 3)
		testutils.Equal(t, true, ok)
		testutils.Equal(t, 7, n)
		w.Close()
	}()

	got, err := io.ReadAll(r)
	testutils.NoError(t, err)
	testutils.Equal(t, "**hi***", string(got))
	<-done
}

func TestFprintAgainstPipe(t *testing.T) {
	r, w, err := os.Pipe()
	testutils.NoError(t, err)
	defer r.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		n, err := Fprint(int(w.Fd()), "%s=%d\n", Str("answer"), Int(42))
		testutils.NoError(t, err)
		testutils.Equal(t, len("answer=42\n"), n)
		w.Close()
	}()

	got, err := io.ReadAll(r)
	testutils.NoError(t, err)
	testutils.Equal(t, "answer=42\n", string(got))
	<-done
}
