// File: ipc/shm/doc.go
//
// Package shm maps a POSIX named shared-memory object into the process's
// address space as a plain []byte, so queue.InitRegion/queue.AttachRegion
// can format or join a queue region that lives outside any one process's heap. It is a
// thin collaborator around shm_open/ftruncate/mmap/munmap/shm_unlink; it has
// no opinion about what's inside the mapping.
package shm
