// File: pool/doc.go
//
// Package pool provides the NUMA-aware backing-memory allocator used to back
// a privately owned queue region. It has nothing to do with the queue's own
// concurrency protocol (that never locks); it exists purely to hand init a
// chunk of memory on the node a caller prefers, falling back transparently
// to the plain heap on platforms or builds without NUMA support.
package pool
