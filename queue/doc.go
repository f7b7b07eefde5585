// File: queue/doc.go
//
// Package queue implements a multi-producer/multi-consumer lock-free bounded
// FIFO whose entire state lives in one contiguous memory region. The region
// is either a private heap allocation or an externally supplied buffer (for
// example a shared-memory mapping), which lets independent processes
// exchange fixed-size elements without taking locks.
//
// The region holds, back to back: a fixed header, an arena of N fixed-size
// payload slots, and a ring of N atomic 64-bit slot descriptors. A producer
// claims a free slot with Get, writes its payload, and publishes it into the
// ring with Enqueue. A consumer claims a published slot with Dequeue and,
// once done reading, returns it to the free list with Put. All four
// operations are atomic CAS/fetch-add loops; there are no mutexes anywhere
// in the hot path. Get and Put never wait on another thread. Enqueue and
// Dequeue can: an Enqueue spins until the consumer that vacated its ring
// position has stored the empty marker, and a Dequeue spins while the
// producer that claimed the tail it is reading has not yet published.
package queue
