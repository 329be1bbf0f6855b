//go:build !logthreads

package core

// ThreadNames reports whether lines carry the goroutine id by default.
const ThreadNames = false
