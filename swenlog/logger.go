// Package swenlog is the pluggable logging seam for swen's packages; the
// parser, the patch applier and cmd/swenhost use it. It follows the
// UseLogger/DisableLog/SetLogWriter/FlushLog shape used by Go parsing
// libraries that want to stay silent unless a host app opts in.
package swenlog

import (
	"errors"
	"io"

	seelog "github.com/cihub/seelog"
)

var logger seelog.LoggerInterface

func init() {
	DisableLog()
}

// DisableLog disables all swen log output. This is the default: a library
// should never write to stdout/stderr unless the embedding app asks it to.
func DisableLog() {
	logger = seelog.Disabled
}

// UseLogger installs a seelog.LoggerInterface as swen's log sink. Use this
// if the host app already runs seelog.
func UseLogger(newLogger seelog.LoggerInterface) {
	logger = newLogger
}

// SetLogWriter installs an io.Writer as swen's log sink, for apps that
// aren't otherwise using seelog.
func SetLogWriter(writer io.Writer) error {
	if writer == nil {
		return errors.New("swenlog: nil writer")
	}
	newLogger, err := seelog.LoggerFromWriterWithMinLevel(writer, seelog.TraceLvl)
	if err != nil {
		return err
	}
	UseLogger(newLogger)
	return nil
}

// FlushLog flushes the underlying logger. Call before process exit.
func FlushLog() {
	logger.Flush()
}

// Tracef, Debugf, Warnf, and Errorf are the call sites swen's packages use
// for recoverable diagnostics (parser token-skip recovery and patch
// rejections, both through Warnf). They are no-ops until the host
// app calls UseLogger or SetLogWriter.

func Tracef(format string, args ...any) { logger.Tracef(format, args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
