/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package logger

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type logPrinter struct {
	logLevel atomic.Int32
}

var globalLogPrinter = newLogPrinter(LogLevelInfo)

func newLogPrinter(l TLogLevel) *logPrinter {
	p := &logPrinter{}
	p.logLevel.Store(int32(l))
	return p
}

func (p *logPrinter) level() TLogLevel { return TLogLevel(p.logLevel.Load()) }

func (p *logPrinter) swapLevel(l TLogLevel) TLogLevel {
	return TLogLevel(p.logLevel.Swap(int32(l)))
}

func printIfLevel(level TLogLevel, args []interface{}) {
	if IsEnabled(level) {
		globalLogPrinter.print(defaultSkipStackFrames, level, args)
	}
}

func (p *logPrinter) print(skipStackFrames int, level TLogLevel, args []interface{}) {
	funcName, line := p.getFuncName(skipStackFrames)
	PrintLine(level, p.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}

// Returns short function name (package path trimmed) and line of the caller
func (p *logPrinter) getFuncName(skipStackFrames int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skipStackFrames)
	if !ok {
		return "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
		if i := strings.LastIndex(funcName, "/"); i >= 0 {
			funcName = funcName[i+1:]
		}
	}
	return funcName, line
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	var sb strings.Builder
	sb.WriteString(time.Now().Format(timeLayout))
	sb.WriteString(": ")
	sb.WriteString(msgType)
	sb.WriteString(": [")
	sb.WriteString(funcName)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(line))
	sb.WriteString("]:")
	for _, arg := range args {
		sb.WriteByte(' ')
		sb.WriteString(fmt.Sprint(arg))
	}
	return sb.String()
}

func getLevelPrefix(level TLogLevel) string {
	if level > LogLevelNone && int(level) < len(levelPrefixes) {
		return levelPrefixes[level]
	}
	return ""
}
