// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/codetree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "graph", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--graph] --config-file=FILE [--delete=CODE ...] [CODE ...]", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// validate all codes before anything is logged or inserted
	inserts, err := parseCodes(masterConfiguration.Codes)
	if nil != err {
		exitwithstatus.Message("%s: configuration: %s", program, err)
	}
	extra, err := parseCodes(arguments)
	if nil != err {
		exitwithstatus.Message("%s: argument: %s", program, err)
	}
	inserts = append(inserts, extra...)

	deletes, err := parseCodes(options["delete"])
	if nil != err {
		exitwithstatus.Message("%s: delete: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	tree, err := buildTree(inserts, deletes, logger.New("avl"))
	if fault.IsErrProcess(err) {
		// the tree failed its own consistency checks
		fault.PanicIfError("build tree", err)
	} else if nil != err {
		fault.Criticalf("build tree error: %s", err)
		exitwithstatus.Message("%s: build tree error: %s", program, err)
	}
	log.Infof("count: %d  depth: %d", tree.Count(), tree.Depth())

	render(os.Stdout, tree, len(options["graph"]) > 0)
	if len(options["verbose"]) > 0 {
		summary(os.Stdout, tree)
	}
}
