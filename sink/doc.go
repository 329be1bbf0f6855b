// Package sink provides the Sink interface, the Registry that fans
// events out to registered sinks, and the built-in sinks.
//
// A Registry has a fixed number of slots (DefaultCapacity unless set
// otherwise). Register fills the lowest free slot and returns a Handle;
// when every slot is taken it returns ErrRegistryFull. UnregisterLast
// frees the highest occupied slot, and Remove frees the slot named by a
// Handle. Handles carry a generation counter, so a handle kept after its
// slot was freed and reused is rejected with ErrStaleHandle rather than
// removing somebody else's sink.
//
// Dispatch visits every slot in order and skips empty ones, so removing
// an early registration never hides later ones.
//
// Built-in sinks:
//
//   - Console writes the short console layout, by default to stderr.
//   - File writes the dated file layout to any io.Writer, or to a file
//     opened with OpenFile which it then owns.
//   - Zap forwards events to a zapcore.Core.
//   - Func adapts a function, with the registration's opaque data
//     exposed as Event.Data.
//
// The registry never closes or otherwise manages the sinks it holds.
package sink
