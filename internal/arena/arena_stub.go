//go:build !linux

package arena

// alloc falls back to the Go heap on platforms without mmap support.
// The Go collector does not move heap objects, so the fixed-address
// contract still holds while the arena is reachable.
func alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func free(data []byte) error {
	return nil
}
