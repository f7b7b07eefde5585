// File: ipc/shm/shm_stub.go
//go:build !linux
// +build !linux

package shm

import "github.com/hioload/lfq/api"

// platformSegment is empty: no platform-specific resources to track.
type platformSegment struct{}

func createPlatform(name string, size int) (platformSegment, []byte, error) {
	return platformSegment{}, nil, api.ErrNotSupported
}

func openPlatform(name string, size int) (platformSegment, []byte, error) {
	return platformSegment{}, nil, api.ErrNotSupported
}

func closePlatform(_ platformSegment, _ []byte) error {
	return api.ErrNotSupported
}

func unlinkPlatform(name string) error {
	return api.ErrNotSupported
}
