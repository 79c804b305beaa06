// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories are relative to the configuration file)
const (
	DefaultKeyRange = 100 // random keys are in [0, DefaultKeyRange)
	DefaultStyle    = StyleBox

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// drawing styles
const (
	StyleBox      = "box"
	StyleSideways = "sideways"
	StyleNone     = "none"
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings for the tree demonstration
type Configuration struct {
	KeyRange   int                  `gluamapper:"key_range" json:"key_range"`
	RandomSeed int64                `gluamapper:"random_seed" json:"random_seed"`
	Style      string               `gluamapper:"style" json:"style"`
	Check      bool                 `gluamapper:"check" json:"check"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
//
// log files are placed below directory
func Default(directory string) *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		KeyRange:   DefaultKeyRange,
		RandomSeed: 0, // zero selects a time based seed
		Style:      DefaultStyle,
		Check:      false,
		Logging: logger.Configuration{
			Directory: absolutePath(directory, defaultLogDirectory),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if !isFile(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default(dataDirectory)
	options.Logging.Directory = defaultLogDirectory

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// check values and expand paths
func (c *Configuration) validate(directory string) error {
	if c.KeyRange <= 0 {
		return fault.ErrInvalidKeyRange
	}

	c.Style = strings.ToLower(c.Style)
	switch c.Style {
	case StyleBox, StyleSideways, StyleNone:
	default:
		return fault.ErrInvalidStyle
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return fault.ErrInvalidLogFile
	}
	c.Logging.Directory = absolutePath(directory, c.Logging.Directory)

	return nil
}

// MakeLogDirectory - create the log directory if it does not exist
func (c *Configuration) MakeLogDirectory() error {
	return os.MkdirAll(c.Logging.Directory, 0700)
}
