// File: cmd/lfq-produce/main.go
//
// Creates a named shared-memory queue, optionally pins itself to a CPU
// (-cpu), and enqueues
// count consecutive uint64 values starting at 0. Prints the sum it produced
// on exit so a driver can compare it against lfq-consume's output.

package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/hioload/lfq/affinity"
	"github.com/hioload/lfq/ipc/shm"
	"github.com/hioload/lfq/queue"
)

func main() {
	name := flag.String("name", "lfq-demo", "shared-memory object name")
	capacity := flag.Uint64("capacity", 1024, "queue capacity in elements")
	count := flag.Uint64("count", 1_000_000, "number of uint64 values to produce")
	cpu := flag.Int("cpu", -1, "pin to this logical CPU (-1: no pinning)")
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

	seg, err := shm.Create(*name, int(need))
	if err != nil {
		log.Fatalf("shm.Create: %v", err)
	}

	h, err := queue.InitRegion(*capacity, elementSize, seg)
	if err != nil {
		log.Fatalf("queue.InitRegion: %v", err)
	}
	// Destroy only closes (unmaps) our own view of the region: the consumer
	// process is still reading from the named object after this process
	// exits, and is the one that unlinks it once fully drained.
	defer h.Destroy()

	var sum uint64
	for i := uint64(0); i < *count; i++ {
		var slot []byte
		for {
			s, ok := h.Get()
			if ok {
				slot = s
				break
			}
			runtime.Gosched()
		}
		binary.LittleEndian.PutUint64(slot, i)
		if err := h.Enqueue(slot); err != nil {
			log.Fatalf("Enqueue(%d): %v", i, err)
		}
		sum += i
	}

	fmt.Printf("produced %d values, sum=%d\n", *count, sum)
}
