// File: api/region.go
//
// Defines the contract a queue backing-memory provider satisfies, whether
// it is a private heap allocation, a shared-memory mapping, or a test fake.

package api

// Region is a contiguous byte buffer a queue can be formatted into or
// attached to. Implementations must keep the returned slice's backing
// address stable until Close is called.
type Region interface {
	// Bytes returns the backing buffer.
	Bytes() []byte

	// Close releases any resources tied to the region. It does not zero or
	// otherwise touch the bytes themselves.
	Close() error
}
