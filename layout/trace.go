package layout

import (
	"log/slog"
)

// Trace gates the engine's verbose per-pass tracing, mirroring
// cogentcore.org/core's DebugSettings.LayoutTrace switch: off by
// default (layout runs on every frame in a real host and is never
// meant to log), flippable by a host or test that wants a blow-by-blow
// account of a single Calculate call.
var Trace = false

func trace(msg string, args ...any) {
	if Trace {
		slog.Debug(msg, args...)
	}
}

func warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}
