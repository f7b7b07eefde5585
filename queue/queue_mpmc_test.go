// File: queue/queue_mpmc_test.go
//
// Moderate-scale MPMC correctness check for the default `go test` run. The
// full-scale stress variant (more producers/consumers, higher iteration
// counts) lives under tests/stress and is gated behind a build tag.

package queue

import (
	"encoding/binary"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMPMCPreservesEveryElement(t *testing.T) {
	const (
		capacity    = 64
		producers   = 4
		consumers   = 4
		perProducer = 2000
	)
	totalItems := int64(producers * perProducer)

	h := mustInit(t, capacity, 8)

	seen := make([]int32, totalItems)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				id := uint64(p*perProducer + i)
				var slot []byte
				for {
					s, ok := h.Get()
					if ok {
						slot = s
						break
					}
					runtime.Gosched()
				}
				binary.LittleEndian.PutUint64(slot, id)
				if err := h.Enqueue(slot); err != nil {
					t.Errorf("Enqueue: %v", err)
					return
				}
			}
		}()
	}

	var receivedCount int64
	consumerWg := sync.WaitGroup{}
	for c := 0; c < consumers; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				slot, ok := h.Dequeue()
				if !ok {
					if atomic.LoadInt64(&receivedCount) >= totalItems {
						return
					}
					runtime.Gosched()
					continue
				}
				id := binary.LittleEndian.Uint64(slot)
				if old := atomic.AddInt32(&seen[id], 1); old != 1 {
					t.Errorf("element %d observed %d times", id, old)
				}
				if err := h.Put(slot); err != nil {
					t.Errorf("Put: %v", err)
				}
				if atomic.AddInt64(&receivedCount, 1) == totalItems {
					return
				}
			}
		}()
	}

	wg.Wait()

	done := make(chan struct{})
	go func() {
		consumerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("element %d seen %d times, want 1", id, n)
			}
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("timeout waiting for consumers, received %d/%d", atomic.LoadInt64(&receivedCount), totalItems)
	}
}
