// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for txdump.
//
// See loadConfig for details on the configuration load process.
type config struct {
	InFile     string `short:"i" long:"infile" description:"File containing the hex-encoded transaction instead of passing it as an argument"`
	JSON       bool   `short:"j" long:"json" description:"Dump the decoded transaction as JSON"`
	FmtStruct  bool   `short:"f" long:"fmtstruct" description:"Dump the decoded transaction struct with spew"`
	LogFile    string `long:"logfile" description:"Write log output to this rotated file in addition to stdout"`
	DebugLevel bool   `short:"d" long:"debug" description:"Enable debug log output"`
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// The transaction comes either from a file or from exactly one
	// positional argument, but not both.
	funcName := "loadConfig"
	if cfg.InFile == "" && len(remainingArgs) != 1 {
		str := "%s: One hex-encoded transaction argument is required " +
			"when no input file is given"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}
	if cfg.InFile != "" && len(remainingArgs) != 0 {
		str := "%s: The input file and a transaction argument can't " +
			"be used together -- choose one of the two"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}
	if cfg.InFile != "" && !fileExists(cfg.InFile) {
		str := "%s: The specified input file [%v] does not exist"
		err := fmt.Errorf(str, funcName, cfg.InFile)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
