// File: queue/errors.go
//
// Error sentinels for the queue package. Get/Dequeue signal the expected
// empty/exhausted control-flow condition via a boolean, not an error; these
// are reserved for invalid configuration, setup failures, and slices passed
// to Put/Enqueue that did not come from this queue.

package queue

import "errors"

var (
	// ErrInvalidCapacity is returned when n_elements is 0 or exceeds 2^32-1.
	ErrInvalidCapacity = errors.New("queue: capacity must be in [1, 2^32-1]")

	// ErrInvalidElementSize is returned when element_size is 0.
	ErrInvalidElementSize = errors.New("queue: element size must be greater than zero")

	// ErrAllocation is returned when the backing region could not be obtained.
	ErrAllocation = errors.New("queue: failed to allocate backing memory")

	// ErrBadMagic is returned by Attach when the region header does not carry
	// the expected sentinel value.
	ErrBadMagic = errors.New("queue: region magic mismatch")

	// ErrRegionTooSmall is returned when a caller-supplied buffer is smaller
	// than RequiredMemory(n, elementSize) demands.
	ErrRegionTooSmall = errors.New("queue: region smaller than required memory")

	// ErrForeignSlot is returned by Put/Enqueue when the supplied slice does
	// not alias this queue's arena.
	ErrForeignSlot = errors.New("queue: slot was not obtained from this queue")
)
