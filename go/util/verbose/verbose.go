// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package verbose

import (
	"os"
	"sync"

	"github.com/attic-labs/kingpin"
	"github.com/sirupsen/logrus"
)

var (
	verbose bool
	logOnce sync.Once
	logger  *logrus.Logger
)

// RegisterVerboseFlags registers -v|--verbose flags for general usage
func RegisterVerboseFlags(app *kingpin.Application) {
	app.Flag("verbose", "show more").Short('v').BoolVar(&verbose)
}

// Verbose returns True if the verbose flag was set
func Verbose() bool {
	return verbose
}

// Logger returns the process logger, at debug level when verbose.
func Logger() *logrus.Logger {
	logOnce.Do(func() {
		logger = logrus.New()
		logger.Out = os.Stderr
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}
	})
	return logger
}
