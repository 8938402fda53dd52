/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

// Line prefixes by level, LogLevelNone has no prefix
var levelPrefixes = [...]string{
	LogLevelError:   "*****",
	LogLevelWarning: "!!!",
	LogLevelInfo:    "===",
	LogLevelVerbose: "---",
	LogLevelTrace:   "...",
}

// frames between runtime.Caller in getFuncName and the caller of a public logging function
const defaultSkipStackFrames = 4

const timeLayout = "01/02 15:04:05.000"
