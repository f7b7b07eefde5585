// File: queue/descriptor.go
//
// Packed 64-bit descriptor encodings. Three distinct shapes share the same
// uint64 word depending on where they are stored (ring slot vs. free_head):
//
//	ring descriptor (USED) : [63]=1 [62:32]=queue generation [31:0]=slot offset
//	ring empty marker      : [63]=0 [62:0]=tail of the next producer to publish here
//	free-list descriptor   : [63:32]=mod_count [31:0]=slot offset
//
// Packing is done with explicit shifts and masks rather than a struct
// overlay: the two 32-bit halves are logically independent counters and
// mixing them into one atomic word is the whole point of the scheme.

package queue

const (
	usedBit    uint64 = 1 << 63
	offsetMask uint64 = 0x00000000ffffffff
	genMask    uint64 = 0x7fffffff00000000
	genShift          = 32

	// genWrapGuard bounds how far a consumer's view of the queue generation
	// may trail the generation stamped in a ring descriptor before the gap
	// is treated as a stale-head retry rather than a wrapped 64-bit counter.
	// Kept verbatim from the reference implementation; a 64-bit head/tail
	// pair never actually wraps in practice.
	genWrapGuard uint64 = 0x0fffff
)

// queueGen returns how many full laps of the ring the monotonic counter x
// has completed.
func queueGen(x, n uint64) uint64 {
	return x / n
}

// packRingUsed builds a USED ring descriptor for a publish at generation gen
// referencing arena slot offset.
func packRingUsed(gen, offset uint64) uint64 {
	return usedBit | ((gen << genShift) & genMask) | (offset & offsetMask)
}

// packEmptyMarker builds an empty-slot marker carrying the tail value of the
// next producer allowed to publish at this ring position (i at MemInit time,
// head+N when a consumer vacates the position).
func packEmptyMarker(tail uint64) uint64 {
	return tail &^ usedBit
}

func isUsed(desc uint64) bool {
	return desc&usedBit != 0
}

func ringGen(desc uint64) uint64 {
	return (desc & genMask) >> genShift
}

func ringOffset(desc uint64) uint64 {
	return desc & offsetMask
}

// emptyMarkerTail extracts the recorded tail from a non-USED descriptor.
func emptyMarkerTail(desc uint64) uint64 {
	return desc &^ usedBit
}

// nilOffset marks the end of the free list, and an empty free_head. It is
// never a valid slot offset: capacity is capped at maxCapacity (2^32-1), so
// the highest slot offset is 2^32-2.
const nilOffset uint64 = 0xffffffff

// packFreeDescriptor builds a free-list head descriptor for slot offset,
// tagged with the free list's current ABA generation counter. The
// generation only needs to live in free_head itself: the intrusive next
// links threaded through the arena are plain offsets.
func packFreeDescriptor(modCount uint32, offset uint64) uint64 {
	return (uint64(modCount) << 32) | (offset & 0xffffffff)
}

func freeOffset(desc uint64) uint64 {
	return desc & 0xffffffff
}

func freeModCount(desc uint64) uint32 {
	return uint32(desc >> 32)
}
