// Completion: 100% - Platform-specific module complete
//go:build unix

package vpu

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// allocPage maps an anonymous read/write/execute region. The reference
// design keeps the page writable and executable for its whole lifetime
// and relies on single-threaded ordering plus the pre-execute barrier.
func allocPage(size int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap of %d byte executable page failed: %w", size, err)
	}
	return b, nil
}

func freePage(b []byte) {
	unix.Munmap(b)
}
