package sink

import (
	"github.com/philipp01105/logc/core"
)

// Sink receives every event whose level reaches the sink's minimum level.
//
// Handle runs synchronously on the logging goroutine and, when a lock
// callback is configured, while that lock is held. It must return
// promptly and must not keep e after returning. A returned error is
// discarded by the dispatcher; the next sink is called regardless.
type Sink interface {
	Handle(e *core.Event) error
}

// Func adapts a plain function to the Sink interface. The opaque data
// given at registration is available as e.Data during the call.
type Func func(e *core.Event) error

// Handle calls f(e)
func (f Func) Handle(e *core.Event) error {
	return f(e)
}
