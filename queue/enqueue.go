// File: queue/enqueue.go
//
// Enqueue publishes a slot previously obtained from Get, making it visible
// to Dequeue. It claims a monotonically increasing tail position, then
// spins until the ring position that tail maps to has actually been
// vacated by whichever consumer last held it — the stale-tail check.

package queue

import "sync/atomic"

// Enqueue publishes slot (obtained from Get, and filled with the element's
// bytes) as the new tail of the queue. Returns ErrForeignSlot if slot was
// not obtained from this queue's Get. The queue itself is never "full" at
// Enqueue time from the caller's point of view: capacity is enforced at
// Get, and every slot Get hands out is guaranteed a ring position to land
// in by the time Enqueue reaches it.
func (h *Handle) Enqueue(slot []byte) error {
	offset, ok := h.offsetOfSlot(slot)
	if !ok {
		return ErrForeignSlot
	}

	hd := h.hdr()
	tail := atomic.AddUint64(&hd.tail, 1) - 1
	idx := tail % h.n
	gen := queueGen(tail, h.n)
	want := packRingUsed(gen, offset)

	for {
		cur := atomic.LoadUint64(h.ringDescPtr(idx))
		if isUsed(cur) || emptyMarkerTail(cur) != tail {
			// The consumer that last owned this ring position hasn't
			// stamped its empty marker yet (head has advanced past it but
			// the marker write is a separate instruction) or a stray
			// descriptor is in flight. Either way, spin: the loop ends only
			// once that consumer's marker store has landed.
			continue
		}
		if atomic.CompareAndSwapUint64(h.ringDescPtr(idx), cur, want) {
			return nil
		}
	}
}
