// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

//go:build windows

package rio

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func writeFull(fd int, p []byte) (int, error) {
	h := windows.Handle(fd)
	written := 0
	for written < len(p) {
		var n uint32
		err := windows.WriteFile(h, p[written:], &n, nil)
		if err != nil {
			return written, fmt.Errorf("%w: write: %s", Error, err)
		}
		if n == 0 {
			return written, fmt.Errorf("%w: write: zero-length write", Error)
		}
		written += int(n)
	}
	return written, nil
}

func readFull(fd int, p []byte) (int, error) {
	h := windows.Handle(fd)
	read := 0
	for read < len(p) {
		var n uint32
		err := windows.ReadFile(h, p[read:], &n, nil)
		if err != nil {
			return read, fmt.Errorf("%w: read: %s", Error, err)
		}
		if n == 0 {
			return read, nil
		}
		read += int(n)
	}
	return read, nil
}

func dialTCP(host string, port uint16) (int, error) {
	fd, err := windows.Socket(windows.AF_INET, windows.SOCK_STREAM, 0)
	if err != nil {
		return -1, fmt.Errorf("%w: socket: %s", Error, err)
	}
	addr, err := resolveIPv4(host)
	if err != nil {
		windows.Closesocket(fd)
		return -1, err
	}
	sa := &windows.SockaddrInet4{Port: int(port), Addr: addr}
	if err := windows.Connect(fd, sa); err != nil {
		windows.Closesocket(fd)
		return -1, fmt.Errorf("%w: connect: %s", Error, err)
	}
	return int(fd), nil
}

func closeFD(fd int) error {
	return windows.Closesocket(windows.Handle(fd))
}

func listenTCP(port uint16, backlog int) (int, error) {
	fd, err := windows.Socket(windows.AF_INET, windows.SOCK_STREAM, 0)
	if err != nil {
		return -1, fmt.Errorf("%w: socket: %s", Error, err)
	}
	if err := windows.SetsockoptInt(fd, windows.SOL_SOCKET, windows.SO_REUSEADDR, 1); err != nil {
		windows.Closesocket(fd)
		return -1, fmt.Errorf("%w: setsockopt: %s", Error, err)
	}
	sa := &windows.SockaddrInet4{Port: int(port)}
	if err := windows.Bind(fd, sa); err != nil {
		windows.Closesocket(fd)
		return -1, fmt.Errorf("%w: bind: %s", Error, err)
	}
	if err := windows.Listen(fd, backlog); err != nil {
		windows.Closesocket(fd)
		return -1, fmt.Errorf("%w: listen: %s", Error, err)
	}
	return int(fd), nil
}

func acceptTCP(listenFD int) (int, error) {
	connFD, _, err := windows.Accept(windows.Handle(listenFD))
	if err != nil {
		return -1, fmt.Errorf("%w: accept: %s", Error, err)
	}
	return int(connFD), nil
}
