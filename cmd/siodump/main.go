// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

// Command siodump exercises the sio package from outside its test suite: it
// prints a branded banner, runs a handful of format specifiers against a
// chosen file descriptor (stdout, a freshly dialed TCP socket, or a
// connection accepted on a listening socket), and optionally emits a cron-scheduled heartbeat line to show that
// concurrent callers can interleave Fprint calls against the same
// descriptor without any locking inside the package itself.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/happy-sdk/happy/pkg/branding"
	"github.com/happy-sdk/happy/pkg/cli/ansicolor"
	"github.com/happy-sdk/happy/pkg/logging"
	"github.com/happy-sdk/happy/pkg/scheduling/cron"
	"github.com/happy-sdk/happy/pkg/strings/humanize"
	"github.com/happy-sdk/happy/pkg/strings/slug"
	"github.com/happy-sdk/happy/pkg/strings/textfmt"
	"github.com/happy-sdk/happy/pkg/version"

	"github.com/sio-authors/sio/internal/rio"
	"github.com/sio-authors/sio/sio"
)

func main() {
	log := logging.NewTextLogger(context.Background(), os.Stderr, logging.DefaultOptions())
	defer func() {
		if r := recover(); r != nil {
			log.BUG("siodump panicked", slog.Any("recovered", r))
			os.Exit(2)
		}
	}()

	if err := run(log); err != nil {
		fmt.Fprintln(os.Stderr, "siodump:", err)
		os.Exit(1)
	}
}

func run(log logging.Logger) error {

	cfg, err := newConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.showVersion {
		fmt.Println(siodumpVersion())
		return nil
	}
	if cfg.showHelp {
		printBanner(log)
		printUsage()
		return nil
	}

	runID := slug.Create(fmt.Sprintf("siodump-%d", os.Getpid()))
	log.Info("starting run", slog.String("run_id", runID))

	fd, closeFD, err := openSink(cfg)
	if err != nil {
		return fmt.Errorf("open sink: %w", err)
	}
	defer closeFD()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.heartbeat != "" {
		sched, err := cron.ParseStandard(cfg.heartbeat)
		if err != nil {
			return fmt.Errorf("parse heartbeat schedule: %w", err)
		}
		go runHeartbeat(ctx, log, fd, sched)
	}

	n, err := dump(fd, cfg)
	if err != nil {
		log.Error("dump failed", slog.String("error", err.Error()))
		return err
	}
	log.Ok("dump complete", slog.String("bytes", humanize.Bytes(uint64(n))))

	if cfg.heartbeat != "" {
		<-ctx.Done()
	}
	return nil
}

// openSink resolves the configured output target to a raw file descriptor
// sio can write to directly.
func openSink(cfg *config) (fd int, closeFD func(), err error) {
	switch {
	case cfg.dialAddr != "":
		fd, err = rio.DialTCP(cfg.dialAddr)
		if err != nil {
			return 0, nil, err
		}
		return fd, func() { _ = rio.Close(fd) }, nil
	case cfg.listenPort != 0:
		// Blocks until one client connects, then writes the dump to that
		// connection, not to the listening socket itself.
		lfd, err := rio.ListenTCP(cfg.listenPort)
		if err != nil {
			return 0, nil, err
		}
		defer rio.Close(lfd)
		connFD, err := rio.AcceptTCP(lfd)
		if err != nil {
			return 0, nil, err
		}
		return connFD, func() { _ = rio.Close(connFD) }, nil
	default:
		return int(os.Stdout.Fd()), func() {}, nil
	}
}

// dump writes the demonstration format specifiers to fd and returns the
// total byte count sio reports across all calls.
func dump(fd int, cfg *config) (int, error) {
	total := 0

	n, err := sio.Fprint(fd, "siodump: pid=%d euid=%ld\n", sio.Int(int64(os.Getpid())), sio.Int(int64(os.Geteuid())))
	if err != nil {
		return total, err
	}
	total += n

	n, err = sio.Fprint(fd, "precision default: %f\n", sio.Float64(cfg.sample))
	if err != nil {
		return total, err
	}
	total += n

	n, err = sio.Fprint(fd, "padded: '%*d' right-padded: '%*d'\n",
		sio.Int(int64(cfg.width)), sio.Int(int64(cfg.sample)),
		sio.Int(int64(-cfg.width)), sio.Int(int64(cfg.sample)),
	)
	if err != nil {
		return total, err
	}
	total += n

	n, err = sio.Fprint(fd, "hex: %x string: %s\n", sio.Uint(uint64(int64(cfg.sample))), sio.Str(cfg.label))
	if err != nil {
		return total, err
	}
	total += n

	return total, nil
}

func runHeartbeat(ctx context.Context, log logging.Logger, fd int, sched interface {
	Next(time.Time) time.Time
}) {
	next := sched.Next(time.Now())
	for {
		wait := time.Until(next)
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case t := <-timer.C:
			if _, err := sio.Fprint(fd, "heartbeat %s\n", sio.Str(t.Format(time.RFC3339))); err != nil {
				log.Warn("heartbeat write failed", slog.String("error", err.Error()))
			}
			next = sched.Next(t)
		}
	}
}

func siodumpVersion() string {
	v, err := version.Parse("v0.1.0")
	if err != nil {
		return "v0.1.0"
	}
	return v.String()
}

func printBanner(log logging.Logger) {
	info := branding.Info{
		Name:        "siodump",
		Version:     siodumpVersion(),
		Slug:        "siodump",
		Description: "demonstrates the sio reentrant formatted-output engine",
	}
	brand, err := branding.New(info).Build()
	if err != nil {
		log.Warn("brand build failed", slog.String("error", err.Error()))
		fmt.Println(info.Name, info.Version)
		return
	}
	theme := brand.ANSI()
	_ = theme // brand.ANSI() carries the palette; Text below uses the plain cli palette directly.
	fmt.Println(ansicolor.Text(brand.Info().Name+" "+brand.Info().Version, ansicolor.FgCyan, 0, 0))
	fmt.Println(brand.Info().Description)
}

func printUsage() {
	fmt.Println("usage: siodump [flags]")
	t := &textfmt.Table{WithHeader: true}
	t.AddRow("FLAG", "MEANING")
	t.AddDivider()
	t.AddRow("-dial addr", "dial this host:port and write the dump there")
	t.AddRow("-listen port", "listen on this TCP port, write the dump to the accepted fd")
	t.AddRow("-heartbeat cron", `cron-scheduled heartbeat line against the same fd, e.g. "@every 5s"`)
	t.AddRow("-width n", "field width used for the padded-integer demonstration")
	t.AddRow("-sample n", "value formatted for the float/width/hex demonstrations")
	t.AddRow("-label s", "string formatted by the %s demonstration")
	t.AddRow("-version", "print the version and exit")
	t.AddRow("-help", "print this message and exit")
	fmt.Println(t.String())
}
