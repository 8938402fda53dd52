/*
 * Copyright (c) 2020-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

import (
	"fmt"
	"io"
	"os"
)

// TLogLevel is a logging verbosity. Messages of levels above the current one are discarded
type TLogLevel int32

const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose // aka Debug
	LogLevelTrace
)

var levelNames = [...]string{"none", "error", "warning", "info", "verbose", "trace"}

func (l TLogLevel) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("TLogLevel(%d)", int32(l))
}

// ParseLevel returns the level named by s, see TLogLevel.String()
func ParseLevel(s string) (TLogLevel, error) {
	for l, n := range levelNames {
		if n == s {
			return TLogLevel(l), nil
		}
	}
	return LogLevelNone, fmt.Errorf("unknown log level «%s»", s)
}

// SetLogLevel sets global level and returns the previous one
func SetLogLevel(logLevel TLogLevel) (old TLogLevel) {
	return globalLogPrinter.swapLevel(logLevel)
}

func SetLogLevelWithRestore(logLevel TLogLevel) (restore func()) {
	old := SetLogLevel(logLevel)
	return func() { SetLogLevel(old) }
}

// IsEnabled returns true if messages of specified level are printed
func IsEnabled(logLevel TLogLevel) bool {
	return globalLogPrinter.level() >= logLevel
}

func IsError() bool   { return IsEnabled(LogLevelError) }
func IsWarning() bool { return IsEnabled(LogLevelWarning) }
func IsInfo() bool    { return IsEnabled(LogLevelInfo) }
func IsVerbose() bool { return IsEnabled(LogLevelVerbose) }
func IsTrace() bool   { return IsEnabled(LogLevelTrace) }

func Error(args ...interface{})   { printIfLevel(LogLevelError, args) }
func Warning(args ...interface{}) { printIfLevel(LogLevelWarning, args) }
func Info(args ...interface{})    { printIfLevel(LogLevelInfo, args) }
func Verbose(args ...interface{}) { printIfLevel(LogLevelVerbose, args) }
func Trace(args ...interface{})   { printIfLevel(LogLevelTrace, args) }

// PrintLine writes a formatted line. Tests replace it to capture output
var PrintLine func(level TLogLevel, line string) = DefaultPrintLine

// DefaultPrintLine writes errors to os.Stderr, other levels to os.Stdout
func DefaultPrintLine(level TLogLevel, line string) {
	var w io.Writer = os.Stdout
	if level == LogLevelError {
		w = os.Stderr
	}
	fmt.Fprintln(w, line)
}
