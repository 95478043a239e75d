//go:build linux

package arena

import "golang.org/x/sys/unix"

// alloc maps an anonymous private region outside the Go heap.
func alloc(size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

// free unmaps a region returned by alloc.
func free(data []byte) error {
	if data == nil {
		return nil
	}
	return unix.Munmap(data)
}
