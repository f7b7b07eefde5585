// File: queue/queue_test.go

package queue

import (
	"encoding/binary"
	"testing"
)

func mustInit(t *testing.T, n, elementSize uint64) *Handle {
	t.Helper()
	h, err := Init(n, elementSize, nil)
	if err != nil {
		t.Fatalf("Init(%d, %d) failed: %v", n, elementSize, err)
	}
	return h
}

func putUint32(slot []byte, v uint32) {
	binary.LittleEndian.PutUint32(slot, v)
}

func getUint32(slot []byte) uint32 {
	return binary.LittleEndian.Uint32(slot)
}

// Fills the queue to capacity, then drains it, and checks FIFO order is
// preserved end to end.
func TestSerialFillThenDrain(t *testing.T) {
	const n = 16
	h := mustInit(t, n, 4)

	for i := uint32(0); i < n; i++ {
		slot, ok := h.Get()
		if !ok {
			t.Fatalf("Get failed before capacity reached, i=%d", i)
		}
		putUint32(slot, i)
		if err := h.Enqueue(slot); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	if _, ok := h.Get(); ok {
		t.Fatal("Get succeeded past capacity")
	}

	for i := uint32(0); i < n; i++ {
		slot, ok := h.Dequeue()
		if !ok {
			t.Fatalf("Dequeue failed before queue drained, i=%d", i)
		}
		if got := getUint32(slot); got != i {
			t.Fatalf("FIFO violated: want %d got %d", i, got)
		}
		if err := h.Put(slot); err != nil {
			t.Fatalf("Put(%d): %v", i, err)
		}
	}

	if _, ok := h.Dequeue(); ok {
		t.Fatal("Dequeue succeeded on empty queue")
	}
}

// Repeats many partial fill/drain cycles, exercising wraparound of the ring
// many times over (scenario 2 of the reference test suite).
func TestSerialWraparound(t *testing.T) {
	const n = 8
	const laps = 500
	h := mustInit(t, n, 4)

	var next uint32
	for lap := 0; lap < laps; lap++ {
		batch := uint64(lap%n) + 1
		produced := make([]uint32, 0, batch)
		for i := uint64(0); i < batch; i++ {
			slot, ok := h.Get()
			if !ok {
				t.Fatalf("lap %d: Get failed at i=%d", lap, i)
			}
			putUint32(slot, next)
			produced = append(produced, next)
			next++
			if err := h.Enqueue(slot); err != nil {
				t.Fatalf("lap %d: Enqueue: %v", lap, err)
			}
		}
		for _, want := range produced {
			slot, ok := h.Dequeue()
			if !ok {
				t.Fatalf("lap %d: Dequeue failed, expected %d", lap, want)
			}
			if got := getUint32(slot); got != want {
				t.Fatalf("lap %d: FIFO violated: want %d got %d", lap, want, got)
			}
			if err := h.Put(slot); err != nil {
				t.Fatalf("lap %d: Put: %v", lap, err)
			}
		}
	}
}

func TestInitRejectsBadArguments(t *testing.T) {
	if _, err := Init(0, 4, nil); err != ErrInvalidCapacity {
		t.Fatalf("want ErrInvalidCapacity, got %v", err)
	}
	if _, err := Init(4, 0, nil); err != ErrInvalidElementSize {
		t.Fatalf("want ErrInvalidElementSize, got %v", err)
	}
}

func TestElementSizeRoundsUpAndAligns(t *testing.T) {
	h := mustInit(t, 4, 1)
	if h.ElementSize() != 8 {
		t.Fatalf("want rounded element size 8, got %d", h.ElementSize())
	}

	h2 := mustInit(t, 4, 9)
	if h2.ElementSize() != 16 {
		t.Fatalf("want rounded element size 16, got %d", h2.ElementSize())
	}
}

func TestVariableSizedPayload(t *testing.T) {
	h := mustInit(t, 4, 512)

	slot, ok := h.Get()
	if !ok {
		t.Fatal("Get failed")
	}
	if len(slot) != 512 {
		t.Fatalf("want slot len 512, got %d", len(slot))
	}
	payload := make([]byte, 512)
	for i := range payload {
		payload[i] = byte(i)
	}
	copy(slot, payload)
	if err := h.Enqueue(slot); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	out, ok := h.Dequeue()
	if !ok {
		t.Fatal("Dequeue failed")
	}
	for i := range payload {
		if out[i] != payload[i] {
			t.Fatalf("payload mismatch at byte %d: want %d got %d", i, payload[i], out[i])
		}
	}
}

func TestPutForeignSlotRejected(t *testing.T) {
	h := mustInit(t, 4, 8)
	foreign := make([]byte, 8)
	if err := h.Put(foreign); err != ErrForeignSlot {
		t.Fatalf("want ErrForeignSlot, got %v", err)
	}
	if err := h.Enqueue(foreign); err != ErrForeignSlot {
		t.Fatalf("want ErrForeignSlot, got %v", err)
	}
}

func TestAttachSharesState(t *testing.T) {
	h := mustInit(t, 4, 4)
	slot, ok := h.Get()
	if !ok {
		t.Fatal("Get failed")
	}
	putUint32(slot, 42)
	if err := h.Enqueue(slot); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	h2, err := Attach(h.mem)
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	out, ok := h2.Dequeue()
	if !ok {
		t.Fatal("Dequeue via attached handle failed")
	}
	if got := getUint32(out); got != 42 {
		t.Fatalf("want 42, got %d", got)
	}
}

func TestAttachRejectsBadMagic(t *testing.T) {
	mem := make([]byte, headerSize+64)
	if _, err := Attach(mem); err != ErrBadMagic {
		t.Fatalf("want ErrBadMagic, got %v", err)
	}
}

func TestMemInitRejectsUndersizedRegion(t *testing.T) {
	mem := make([]byte, 4)
	if _, err := MemInit(mem, 4, 4); err != ErrRegionTooSmall {
		t.Fatalf("want ErrRegionTooSmall, got %v", err)
	}
}
