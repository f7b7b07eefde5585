// Package api
//
// Error values shared outside the queue package, which keeps its own
// sentinels in queue/errors.go. Currently used by ipc/shm only.

package api

import "fmt"

// ErrNotSupported is returned by an ipc/shm backend on a platform with no
// POSIX shared-memory implementation.
var ErrNotSupported = fmt.Errorf("operation not supported")
