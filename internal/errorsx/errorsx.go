// Package errorsx provides error-handling helpers that extend the
// standard library errors package with log-and-continue and
// log-and-panic variants. The layout engine itself does not use them:
// its fatal errors go through container.Fatal.
package errorsx

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs the given error if it is non-nil and returns it unchanged.
// The intended usage is:
//
//	return errorsx.Log(myFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Must panics if err is non-nil, for boundaries where a non-nil error
// is a caller bug rather than a recoverable condition.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v if err is nil, and panics otherwise.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns the file and line of the function that called the
// function that called CallerInfo, for attaching context to log lines.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	name := "unknown"
	if fn != nil {
		name = fn.Name()
	}
	return name + " " + file + ":" + strconv.Itoa(line)
}
