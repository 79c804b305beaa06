// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
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
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "style", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--style=box|sideways|none] [--check] [--delete=KEY]... <number-of-random-items | item item item ...>", program)
	}

	var theConfiguration *configuration.Configuration
	switch len(options["config-file"]) {
	case 0:
		theConfiguration = configuration.Default(filepath.Join(os.TempDir(), "avltree"))
	case 1:
		configurationFile := options["config-file"][0]
		theConfiguration, err = configuration.GetConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// command line overrides
	if len(options["style"]) > 0 {
		theConfiguration.Style = strings.ToLower(options["style"][len(options["style"])-1])
	}
	if len(options["check"]) > 0 {
		theConfiguration.Check = true
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}
	if !validStyle(theConfiguration.Style) {
		exitwithstatus.Message("%s: style: %q  error: %s", program, theConfiguration.Style, fault.ErrInvalidStyle)
	}

	keys, err := keyList(arguments, theConfiguration)
	if nil != err {
		exitwithstatus.Message("%s: arguments: %q  error: %s", program, arguments, err)
	}
	deletes, err := parseKeys(options["delete"])
	if nil != err {
		exitwithstatus.Message("%s: delete: %q  error: %s", program, options["delete"], err)
	}

	// start logging
	if err = theConfiguration.MakeLogDirectory(); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", theConfiguration)

	d := newDemo(os.Stdout, theConfiguration.Style, theConfiguration.Check, log)
	if err = d.run(keys, deletes); nil != err {
		fault.Criticalf("tree check failed: %s", err)
		exitwithstatus.Message("%s: tree check failed: %s", program, err)
	}
}
