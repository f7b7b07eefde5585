// File: ipc/shm/shm.go
//
// Platform-neutral surface; platform-specific open/mmap sit behind
// platformSegment and the *Platform functions in shm_linux.go / shm_stub.go.

package shm

import "github.com/hioload/lfq/api"

// Segment is a memory-mapped shared-memory object. It satisfies api.Region.
type Segment struct {
	name string
	data []byte
	impl platformSegment
}

var _ api.Region = (*Segment)(nil)

// Create opens (creating if necessary) the named shared-memory object,
// sizes it to size bytes, and maps it read/write. The caller owns the
// object: Destroy both unmaps and unlinks it.
func Create(name string, size int) (*Segment, error) {
	impl, data, err := createPlatform(name, size)
	if err != nil {
		return nil, err
	}
	return &Segment{name: name, data: data, impl: impl}, nil
}

// Open maps an already-created named shared-memory object of exactly size
// bytes. Used by a process joining a queue another process called Create
// on.
func Open(name string, size int) (*Segment, error) {
	impl, data, err := openPlatform(name, size)
	if err != nil {
		return nil, err
	}
	return &Segment{name: name, data: data, impl: impl}, nil
}

// Bytes returns the mapped region.
func (s *Segment) Bytes() []byte {
	return s.data
}

// Close unmaps the region without removing the underlying named object, so
// another process can still Open it afterward.
func (s *Segment) Close() error {
	return closePlatform(s.impl, s.data)
}

// Destroy unmaps the region and removes the named object. Any process that
// mapped the object, through Create or Open, may call it; after it returns
// the name can no longer be Opened.
func (s *Segment) Destroy() error {
	if err := closePlatform(s.impl, s.data); err != nil {
		return err
	}
	return unlinkPlatform(s.name)
}
