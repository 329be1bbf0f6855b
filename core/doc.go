// Package core defines the shared types used across logc.
//
// It provides the Level type used both as the severity filter and as
// the index into the name and color tables, and the Event type that
// describes a single log call while it is being dispatched.
//
// An Event lives only for the duration of one dispatch. Time, Thread
// and Message are filled in lazily the first time a sink needs them
// and are then shared by every sink that fires for that call, so the
// format template is rendered at most once no matter how many sinks
// are registered.
//
// Two behaviors are selected at build time rather than at runtime:
//
//	go build -tags logcolor    // wrap console prefixes in ANSI colors
//	go build -tags logthreads  // include the goroutine id in every line
//
// ColorEnabled and ThreadNames report which of them were compiled in.
package core
