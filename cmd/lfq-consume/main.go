// File: cmd/lfq-consume/main.go
//
// Attaches to a named shared-memory queue created by lfq-produce, drains
// exactly count values, and prints their sum for a driver to compare
// against lfq-produce's reported sum. Destroys (unlinks) the shared-memory
// object once draining is complete, since it is the last participant still
// touching it.

package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/hioload/lfq/affinity"
	"github.com/hioload/lfq/ipc/shm"
	"github.com/hioload/lfq/queue"
)

func openWithRetry(name string, size int, timeout time.Duration) (*shm.Segment, error) {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		seg, err := shm.Open(name, size)
		if err == nil {
			return seg, nil
		}
		lastErr = err
		time.Sleep(20 * time.Millisecond)
	}
	return nil, lastErr
}

func main() {
	name := flag.String("name", "lfq-demo", "shared-memory object name")
	capacity := flag.Uint64("capacity", 1024, "queue capacity in elements")
	count := flag.Uint64("count", 1_000_000, "number of uint64 values to consume")
	cpu := flag.Int("cpu", -1, "pin to this logical CPU (-1: no pinning)")
	waitFor := flag.Duration("wait-for", 5*time.Second, "how long to wait for the producer to create the segment")
	flag.Parse()

	if *cpu >= 0 {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := affinity.SetAffinity(*cpu); err != nil {
			log.Printf("affinity.SetAffinity(%d): %v (continuing unpinned)", *cpu, err)
		}
	}

	const elementSize = 8
	need, err := queue.RequiredMemory(*capacity, elementSize)
	if err != nil {
		log.Fatalf("RequiredMemory: %v", err)
	}

	seg, err := openWithRetry(*name, int(need), *waitFor)
	if err != nil {
		log.Fatalf("shm.Open: %v", err)
	}
	defer seg.Destroy()

	h, err := queue.AttachRegion(seg)
	if err != nil {
		log.Fatalf("queue.AttachRegion: %v", err)
	}

	var sum uint64
	for i := uint64(0); i < *count; i++ {
		var slot []byte
		for {
			s, ok := h.Dequeue()
			if ok {
				slot = s
				break
			}
			runtime.Gosched()
		}
		sum += binary.LittleEndian.Uint64(slot)
		if err := h.Put(slot); err != nil {
			log.Fatalf("Put(%d): %v", i, err)
		}
	}

	fmt.Printf("consumed %d values, sum=%d\n", *count, sum)
}
