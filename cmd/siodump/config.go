// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2026 The Happy Authors

package main

import (
	"flag"
	"fmt"

	"github.com/happy-sdk/happy/pkg/options"
	"github.com/happy-sdk/happy/pkg/vars"
)

// config holds the resolved command-line knobs for a siodump run. Each
// knob is also registered with an options.Options set so validation and
// read-only enforcement follow the same rules the rest of the happy-sdk
// tooling uses for runtime configuration, even though siodump itself only
// ever reads the values back once at startup.
type config struct {
	dialAddr    string
	listenPort  uint16
	heartbeat   string
	width       int
	sample      float64
	label       string
	showVersion bool
	showHelp    bool
}

func optionSpecs() []options.Spec {
	return []options.Spec{
		options.NewOption("dial", "", "host:port to dial and write the dump to", options.KindRuntime, nil),
		options.NewOption("listen", uint64(0), "TCP port to listen on and write the dump to", options.KindRuntime, nil),
		options.NewOption("heartbeat", "", "cron expression for a repeating heartbeat line", options.KindRuntime, nil),
		options.NewOption("width", int64(10), "field width for the padded-integer demonstration", options.KindRuntime, validatePositive),
		options.NewOption("sample", 42.5, "sample value formatted by the float/hex demonstrations", options.KindRuntime, nil),
		options.NewOption("label", "sio", "string formatted by the %s demonstration", options.KindRuntime, nil),
	}
}

func validatePositive(key string, val vars.Value) error {
	n, err := val.Int64()
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if n < 0 {
		return fmt.Errorf("%s must not be negative", key)
	}
	return nil
}

func newConfig(args []string) (*config, error) {
	opts, err := options.New("siodump", optionSpecs())
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("siodump", flag.ContinueOnError)
	dial := fs.String("dial", "", "dial host:port and write the dump there")
	listen := fs.Uint("listen", 0, "listen on this TCP port and write the dump to the accepted connection")
	heartbeat := fs.String("heartbeat", "", `cron-style heartbeat schedule, e.g. "@every 5s"`)
	width := fs.Int("width", 10, "field width for the padded-integer demonstration")
	sample := fs.Float64("sample", 42.5, "sample value for the float/hex demonstrations")
	label := fs.String("label", "sio", "string for the %s demonstration")
	showVersion := fs.Bool("version", false, "print the version and exit")
	showHelp := fs.Bool("help", false, "print usage and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for key, val := range map[string]any{
		"dial":      *dial,
		"listen":    uint64(*listen),
		"heartbeat": *heartbeat,
		"width":     int64(*width),
		"sample":    *sample,
		"label":     *label,
	} {
		if err := opts.Set(key, val); err != nil {
			return nil, err
		}
	}

	return &config{
		dialAddr:    opts.Get("dial").String(),
		listenPort:  uint16(opts.Get("listen").Uint64()),
		heartbeat:   opts.Get("heartbeat").String(),
		width:       int(opts.Get("width").Int64()),
		sample:      opts.Get("sample").Float64(),
		label:       opts.Get("label").String(),
		showVersion: *showVersion,
		showHelp:    *showHelp,
	}, nil
}
