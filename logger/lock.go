package logger

import "sync"

// LockFunc is called with lock=true before a dispatch touches any sink
// and with lock=false once it is done, on every path. udata is the value
// given to SetLock.
type LockFunc func(lock bool, udata interface{})

type lockState struct {
	fn    LockFunc
	udata interface{}
}

// SetLock installs fn as the lock callback. A nil fn removes it, after
// which concurrent dispatches may interleave their output.
func (l *Logger) SetLock(fn LockFunc, udata interface{}) {
	if fn == nil {
		l.lock.Store(nil)
		return
	}
	l.lock.Store(&lockState{fn: fn, udata: udata})
}

// LockerFunc returns a LockFunc that serializes dispatches on mu
func LockerFunc(mu sync.Locker) LockFunc {
	return func(lock bool, _ interface{}) {
		if lock {
			mu.Lock()
		} else {
			mu.Unlock()
		}
	}
}
