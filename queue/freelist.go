// File: queue/freelist.go
//
// The arena's free slots form an intrusive Treiber stack: free_head in the
// header is a CAS'd, ABA-tagged pointer to the top slot, and each free
// slot's first 8 bytes hold the offset of the next free slot (or nilOffset).
// Get and Put are the only operations that touch this stack; Enqueue and
// Dequeue never do.

package queue

import "sync/atomic"

// Get acquires a free arena slot for writing and returns a slice view over
// it. The slice aliases the region directly: callers pass it on to Enqueue
// once filled, or back to Put to abandon it unused. ok is false if the
// queue has no free slots (n_elements already in flight).
func (h *Handle) Get() (slot []byte, ok bool) {
	offset, ok := h.getFree()
	if !ok {
		return nil, false
	}
	return h.slotAt(offset), true
}

// Put releases slot back to the free list without publishing it. slot must
// have been returned by Get (to abandon an unpublished write) or by Dequeue
// (once the caller is done reading a delivered element). Passing any other
// slice returns ErrForeignSlot.
func (h *Handle) Put(slot []byte) error {
	offset, ok := h.offsetOfSlot(slot)
	if !ok {
		return ErrForeignSlot
	}
	h.putFree(offset)
	return nil
}

func (h *Handle) getFree() (uint64, bool) {
	hd := h.hdr()
	for {
		cur := atomic.LoadUint64(&hd.freeHead)
		off := freeOffset(cur)
		if off == nilOffset {
			return 0, false
		}
		next := atomic.LoadUint64(h.slotLinkPtr(off))
		newHead := packFreeDescriptor(freeModCount(cur)+1, next)
		if atomic.CompareAndSwapUint64(&hd.freeHead, cur, newHead) {
			return off, true
		}
		// Lost the race to another Get/Put; free_head moved, retry.
	}
}

func (h *Handle) putFree(offset uint64) {
	hd := h.hdr()
	for {
		cur := atomic.LoadUint64(&hd.freeHead)
		atomic.StoreUint64(h.slotLinkPtr(offset), freeOffset(cur))
		newHead := packFreeDescriptor(freeModCount(cur)+1, offset)
		if atomic.CompareAndSwapUint64(&hd.freeHead, cur, newHead) {
			return
		}
	}
}
