// Completion: 100% - Platform-specific module complete
//go:build windows

package vpu

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func allocPage(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_EXECUTE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("VirtualAlloc of %d byte executable page failed: %w", size, err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func freePage(b []byte) {
	windows.VirtualFree(uintptr(unsafe.Pointer(&b[0])), 0, windows.MEM_RELEASE)
}
