package core

import (
	"path/filepath"
	"runtime"
)

// UnknownFile names the call site when it cannot be resolved. The line
// is reported as 0 alongside it.
const UnknownFile = "???"

var unknownCaller = CallerInfo{File: UnknownFile, ShortFile: UnknownFile}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Defined   bool
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return unknownCaller
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Defined:   true,
	}
}

// CallerFromPC resolves a program counter, as carried by slog records.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return unknownCaller
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	if f.File == "" {
		return unknownCaller
	}
	return CallerInfo{
		File:      f.File,
		ShortFile: filepath.Base(f.File),
		Line:      f.Line,
		Defined:   true,
	}
}
