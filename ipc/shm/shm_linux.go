// File: ipc/shm/shm_linux.go
//go:build linux
// +build linux

package shm

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// platformSegment holds nothing on Linux: the file descriptor is closed
// immediately after mmap, same as the reference implementation, since the
// mapping itself keeps the pages alive.
type platformSegment struct{}

func shmPath(name string) string {
	return "/dev/shm/" + name
}

func createPlatform(name string, size int) (platformSegment, []byte, error) {
	fd, err := unix.Open(shmPath(name), unix.O_CREAT|unix.O_RDWR, 0o600)
	if err != nil {
		return platformSegment{}, nil, fmt.Errorf("shm: open %s: %w", name, err)
	}
	defer unix.Close(fd)

	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		return platformSegment{}, nil, fmt.Errorf("shm: ftruncate %s: %w", name, err)
	}

	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return platformSegment{}, nil, fmt.Errorf("shm: mmap %s: %w", name, err)
	}
	return platformSegment{}, data, nil
}

func openPlatform(name string, size int) (platformSegment, []byte, error) {
	fd, err := unix.Open(shmPath(name), unix.O_RDWR, 0o600)
	if err != nil {
		return platformSegment{}, nil, fmt.Errorf("shm: open %s: %w", name, err)
	}
	defer unix.Close(fd)

	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return platformSegment{}, nil, fmt.Errorf("shm: mmap %s: %w", name, err)
	}
	return platformSegment{}, data, nil
}

func closePlatform(_ platformSegment, data []byte) error {
	if data == nil {
		return nil
	}
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("shm: munmap: %w", err)
	}
	return nil
}

func unlinkPlatform(name string) error {
	if err := unix.Unlink(shmPath(name)); err != nil {
		return fmt.Errorf("shm: unlink %s: %w", name, err)
	}
	return nil
}
