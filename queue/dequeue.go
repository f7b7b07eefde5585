// File: queue/dequeue.go
//
// Dequeue pops the oldest published slot. It checks head against tail
// before claiming a position (the empty check), and before claiming that
// position with a CAS on head, validates the ring descriptor's generation
// against the lap it expects to be reading — the generation-wrap check — so
// it only trusts the slot offset packed into a descriptor of its own lap.

package queue

import "sync/atomic"

// Dequeue removes and returns the oldest published slot. The caller owns
// the returned slice until it passes it back to Put; Dequeue itself does
// not recycle the slot. ok is false if the queue is currently empty.
func (h *Handle) Dequeue() (slot []byte, ok bool) {
	hd := h.hdr()
	for {
		head := atomic.LoadUint64(&hd.head)
		tail := atomic.LoadUint64(&hd.tail)
		if int64(tail-head) <= 0 {
			return nil, false
		}

		idx := head % h.n
		cur := atomic.LoadUint64(h.ringDescPtr(idx))
		if !isUsed(cur) {
			// tail was claimed but Enqueue hasn't published at this
			// position yet; retry until that producer's CAS lands.
			continue
		}

		// The descriptor stores only the low 31 bits of the generation.
		expectedGen := queueGen(head, h.n) & (genMask >> genShift)
		gen := ringGen(cur)
		if gen != expectedGen {
			// A descriptor from a different lap is sitting here. This can
			// only be a transient view of an in-progress Enqueue at a
			// different head; bound the retry so a corrupted region can't
			// spin forever instead of ever observing empty.
			if gen > expectedGen && gen-expectedGen > genWrapGuard {
				return nil, false
			}
			continue
		}

		if atomic.CompareAndSwapUint64(&hd.head, head, head+1) {
			offset := ringOffset(cur)
			atomic.StoreUint64(h.ringDescPtr(idx), packEmptyMarker(head+h.n))
			return h.slotAt(offset), true
		}
		// Lost the race to another consumer for this head; retry from top.
	}
}
