// Package logger provides leveled logging for the Late Show API.
package logger

import (
	"log"
	"strings"
	"sync/atomic"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var minLevel int32 = levelInfo

// SetLevel adjusts the minimum level that gets logged ("debug", "info", "warn", "error")
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		atomic.StoreInt32(&minLevel, levelDebug)
	case "warn", "warning":
		atomic.StoreInt32(&minLevel, levelWarn)
	case "error":
		atomic.StoreInt32(&minLevel, levelError)
	default:
		atomic.StoreInt32(&minLevel, levelInfo)
	}
}

// Debug logs debug messages
func Debug(format string, args ...interface{}) {
	if atomic.LoadInt32(&minLevel) <= levelDebug {
		log.Printf("DEBUG: "+format, args...)
	}
}

// Info logs informational messages
func Info(format string, args ...interface{}) {
	if atomic.LoadInt32(&minLevel) <= levelInfo {
		log.Printf("INFO: "+format, args...)
	}
}

// Warn logs warning messages
func Warn(format string, args ...interface{}) {
	if atomic.LoadInt32(&minLevel) <= levelWarn {
		log.Printf("WARN: "+format, args...)
	}
}

// Error logs error messages
func Error(format string, args ...interface{}) {
	if atomic.LoadInt32(&minLevel) <= levelError {
		log.Printf("ERROR: "+format, args...)
	}
}
