package sink

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/logc/core"
)

// DefaultCapacity is the number of slots in a registry created with a
// non-positive capacity.
const DefaultCapacity = 32

var (
	// ErrRegistryFull is returned by Register when every slot is taken
	ErrRegistryFull = errors.New("sink registry is full")
	// ErrNoSinks is returned by UnregisterLast when nothing is registered
	ErrNoSinks = errors.New("no sinks registered")
	// ErrStaleHandle is returned by Remove for a handle whose slot has
	// been freed or reused since it was issued
	ErrStaleHandle = errors.New("stale sink handle")
)

// Handle identifies one registration. The zero Handle identifies none.
type Handle struct {
	slot int // 1-based
	gen  uint32
}

// Slot returns the 1-based slot number, or 0 for the zero Handle.
func (h Handle) Slot() int {
	return h.slot
}

// Valid reports whether h was issued by a registry
func (h Handle) Valid() bool {
	return h.slot > 0
}

// slot is empty when sink is nil. gen survives clearing so a reused
// slot never matches a handle issued for its previous occupant.
type slot struct {
	sink Sink
	data interface{}
	min  core.Level
	gen  uint32
}

// Registry is a fixed-capacity table of sinks.
//
// Registrations fill the lowest free slot and are never reordered.
// Mutations copy the table under a mutex and publish the copy, so
// Dispatch reads a consistent snapshot without locking.
type Registry struct {
	mu    sync.Mutex
	table atomic.Pointer[[]slot]
}

// NewRegistry creates a registry with room for capacity sinks
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	tbl := make([]slot, capacity)
	r := &Registry{}
	r.table.Store(&tbl)
	return r
}

// Capacity returns the maximum number of concurrently registered sinks
func (r *Registry) Capacity() int {
	return len(*r.table.Load())
}

// Len returns the number of occupied slots
func (r *Registry) Len() int {
	n := 0
	for _, s := range *r.table.Load() {
		if s.sink != nil {
			n++
		}
	}
	return n
}

// Register stores s in the lowest free slot
func (r *Registry) Register(s Sink, min core.Level) (Handle, error) {
	return r.register(s, nil, min)
}

// RegisterFunc stores fn with an opaque data value. e.Data is set to
// data for the duration of each call to fn.
func (r *Registry) RegisterFunc(fn func(e *core.Event) error, data interface{}, min core.Level) (Handle, error) {
	if fn == nil {
		return Handle{}, errors.New("nil sink function")
	}
	return r.register(Func(fn), data, min)
}

func (r *Registry) register(s Sink, data interface{}, min core.Level) (Handle, error) {
	if s == nil {
		return Handle{}, errors.New("nil sink")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.table.Load()
	for i := range cur {
		if cur[i].sink != nil {
			continue
		}
		next := make([]slot, len(cur))
		copy(next, cur)
		gen := cur[i].gen + 1
		next[i] = slot{sink: s, data: data, min: min, gen: gen}
		r.table.Store(&next)
		return Handle{slot: i + 1, gen: gen}, nil
	}
	return Handle{}, ErrRegistryFull
}

// UnregisterLast clears the highest occupied slot and returns the handle
// that identified it.
func (r *Registry) UnregisterLast() (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.table.Load()
	for i := len(cur) - 1; i >= 0; i-- {
		if cur[i].sink == nil {
			continue
		}
		h := Handle{slot: i + 1, gen: cur[i].gen}
		r.clear(cur, i)
		return h, nil
	}
	return Handle{}, ErrNoSinks
}

// Remove clears the slot identified by h
func (r *Registry) Remove(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.table.Load()
	i := h.slot - 1
	if i < 0 || i >= len(cur) || cur[i].sink == nil || cur[i].gen != h.gen {
		return ErrStaleHandle
	}
	r.clear(cur, i)
	return nil
}

// clear publishes a copy of cur with slot i emptied. Callers hold r.mu.
func (r *Registry) clear(cur []slot, i int) {
	next := make([]slot, len(cur))
	copy(next, cur)
	next[i] = slot{gen: cur[i].gen}
	r.table.Store(&next)
}

// Dispatch calls every occupied slot whose minimum level is at or below
// e.Level, in slot order. Empty slots are skipped. The event is stamped
// with now the first time a sink fires. Sink errors are ignored.
func (r *Registry) Dispatch(e *core.Event, now func() time.Time) {
	tbl := *r.table.Load()
	for i := range tbl {
		s := &tbl[i]
		if s.sink == nil || e.Level < s.min {
			continue
		}
		e.Stamp(now)
		e.Data = s.data
		_ = s.sink.Handle(e)
	}
	e.Data = nil
}
