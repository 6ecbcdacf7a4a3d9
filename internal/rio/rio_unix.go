// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

//go:build linux || darwin || freebsd

package rio

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

func writeFull(fd int, p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(fd, p[written:])
		if n > 0 {
			written += n
		}
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return written, fmt.Errorf("%w: write: %s", Error, err)
		}
		if n == 0 {
			return written, fmt.Errorf("%w: write: zero-length write", Error)
		}
	}
	return written, nil
}

func readFull(fd int, p []byte) (int, error) {
	read := 0
	for read < len(p) {
		n, err := unix.Read(fd, p[read:])
		if n > 0 {
			read += n
		}
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return read, fmt.Errorf("%w: read: %s", Error, err)
		}
		if n == 0 {
			// EOF: a short read is not an error here, symmetrically
			// with rio_readn in the reference implementation.
			return read, nil
		}
	}
	return read, nil
}

func dialTCP(host string, port uint16) (int, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, fmt.Errorf("%w: socket: %s", Error, err)
	}
	addr, err := resolveIPv4(host)
	if err != nil {
		unix.Close(fd)
		return -1, err
	}
	sa := &unix.SockaddrInet4{Port: int(port), Addr: addr}
	for {
		err := unix.Connect(fd, sa)
		if err == nil {
			return fd, nil
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		unix.Close(fd)
		return -1, fmt.Errorf("%w: connect: %s", Error, err)
	}
}

func closeFD(fd int) error {
	return unix.Close(fd)
}

func listenTCP(port uint16, backlog int) (int, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return -1, fmt.Errorf("%w: socket: %s", Error, err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("%w: setsockopt: %s", Error, err)
	}
	sa := &unix.SockaddrInet4{Port: int(port)}
	if err := unix.Bind(fd, sa); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("%w: bind: %s", Error, err)
	}
	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("%w: listen: %s", Error, err)
	}
	return fd, nil
}

func acceptTCP(listenFD int) (int, error) {
	for {
		connFD, _, err := unix.Accept(listenFD)
		if err == nil {
			return connFD, nil
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return -1, fmt.Errorf("%w: accept: %s", Error, err)
	}
}
