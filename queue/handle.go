// File: queue/handle.go
//
// Handle is the queue's public entry point: MemInit formats a raw buffer,
// Init allocates one and formats it, Attach views an already-formatted
// buffer without writing to it, and Destroy releases a privately owned
// allocation.

package queue

import (
	"sync/atomic"

	"github.com/hioload/lfq/api"
)

// Handle is a live view over a formatted region. It holds no state beyond
// the region itself (plus the allocator needed to release it); the region
// is the single source of truth, which is what makes it safe to share
// across processes.
type Handle struct {
	mem     []byte
	n       uint64
	rawSize uint64
	release func([]byte) // nil for Attach'd / caller-owned regions
	region  api.Region   // non-nil when Init'd/Attach'd via a Region, closed by Destroy
}

// RegionAllocator abstracts the backing-memory provider used by Init. It is
// satisfied by *pool.RegionAllocator; kept as a minimal local interface so
// this package does not import pool directly (pool depends on platform cgo
// in some builds, queue must not).
type RegionAllocator interface {
	Acquire(size int) ([]byte, error)
	Release(buf []byte)
}

// MemInit formats mem as a fresh queue of capacity n holding elements of
// elementSize bytes. mem must be at least RequiredMemory(n, elementSize)
// bytes and must not be concurrently accessed by anyone else until MemInit
// returns. The returned Handle does not own mem; Destroy on it is a no-op
// beyond bookkeeping.
func MemInit(mem []byte, n, elementSize uint64) (*Handle, error) {
	need, err := RequiredMemory(n, elementSize)
	if err != nil {
		return nil, err
	}
	if uint64(len(mem)) < need {
		return nil, ErrRegionTooSmall
	}

	h := &Handle{
		mem:     mem,
		n:       n,
		rawSize: rawElemSize(elementSize),
	}

	hd := h.hdr()
	hd.magic = magic
	hd.nElements = n
	hd.elementSize = h.rawSize
	hd.head = 0
	hd.tail = 0
	hd.ownsMemory = 0

	// Every ring position i is, at start of day, ready to accept the first
	// lap's producer at tail == i: stamp it as an empty marker recording
	// exactly that tail.
	for i := uint64(0); i < n; i++ {
		atomic.StoreUint64(h.ringDescPtr(i), packEmptyMarker(i))
	}

	// Thread the arena into a singly linked free list, slot 0 first. Links
	// are plain next-offsets; only free_head itself carries an ABA counter.
	for i := uint64(0); i < n; i++ {
		link := h.slotLinkPtr(i)
		if i == n-1 {
			*link = nilOffset
		} else {
			*link = i + 1
		}
	}
	hd.freeHead = packFreeDescriptor(1, 0)

	return h, nil
}

// Init allocates RequiredMemory(n, elementSize) bytes via alloc (or the
// plain heap if alloc is nil) and formats it as a fresh queue. The Handle
// owns the allocation; Destroy releases it.
func Init(n, elementSize uint64, alloc RegionAllocator) (*Handle, error) {
	need, err := RequiredMemory(n, elementSize)
	if err != nil {
		return nil, err
	}

	var mem []byte
	var release func([]byte)
	if alloc != nil {
		mem, err = alloc.Acquire(int(need))
		if err != nil {
			return nil, ErrAllocation
		}
		release = alloc.Release
	} else {
		mem = make([]byte, need)
	}
	if mem == nil {
		return nil, ErrAllocation
	}

	h, err := MemInit(mem, n, elementSize)
	if err != nil {
		return nil, err
	}
	h.hdr().ownsMemory = 1
	h.release = release
	return h, nil
}

// InitRegion formats region's backing buffer as a fresh queue of capacity n
// holding elementSize-byte elements, the same as MemInit over region.Bytes().
// The Handle takes ownership of region: Destroy calls region.Close() instead
// of releasing a plain allocation. This is the entry point for a
// caller-supplied backing store — an ipc/shm.Segment, or any other
// api.Region implementation — rather than a private or NUMA-pinned heap
// allocation.
func InitRegion(n, elementSize uint64, region api.Region) (*Handle, error) {
	h, err := MemInit(region.Bytes(), n, elementSize)
	if err != nil {
		return nil, err
	}
	h.hdr().ownsMemory = 1
	h.region = region
	return h, nil
}

// AttachRegion views an already-formatted region without writing to it, the
// same as Attach(region.Bytes()). Destroy on the returned Handle closes
// region.
func AttachRegion(region api.Region) (*Handle, error) {
	h, err := Attach(region.Bytes())
	if err != nil {
		return nil, err
	}
	h.region = region
	return h, nil
}

// Attach views an already-formatted region without writing to it. Used both
// for a second in-process handle onto the same buffer and for joining a
// queue formatted by another process over shared memory.
func Attach(mem []byte) (*Handle, error) {
	if uint64(len(mem)) < headerSize {
		return nil, ErrRegionTooSmall
	}
	h := &Handle{mem: mem}
	hd := h.hdr()
	if hd.magic != magic {
		return nil, ErrBadMagic
	}
	h.n = hd.nElements
	h.rawSize = hd.elementSize
	need, err := RequiredMemory(h.n, h.rawSize)
	if err != nil || uint64(len(mem)) < need {
		return nil, ErrRegionTooSmall
	}
	return h, nil
}

// Destroy releases the backing allocation iff this Handle owns it (i.e. it
// was returned by Init with a non-nil allocator, or by Init's fallback heap
// path). A Handle returned by InitRegion or AttachRegion instead closes its
// region. Plain Attach'd handles are a no-op on the region itself.
func (h *Handle) Destroy() {
	if h.region != nil {
		h.region.Close()
		h.region = nil
		return
	}
	if h.hdr().ownsMemory == 0 {
		return
	}
	if h.release != nil {
		h.release(h.mem)
	}
	h.mem = nil
}

// Cap returns the queue's fixed capacity N.
func (h *Handle) Cap() int {
	return int(h.n)
}

// ElementSize returns the physical per-slot size (>= 8, 8-byte aligned).
func (h *Handle) ElementSize() int {
	return int(h.rawSize)
}
