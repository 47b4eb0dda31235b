// Completion: 100% - Test helpers complete
package vpu

import (
	"bytes"
	"testing"
	"unsafe"
)

// newAsm builds a fresh in-progress session or fails the test.
func newAsm(t *testing.T, pageSize int) *Assembler {
	t.Helper()
	a, err := New(pageSize)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(a.Release)
	a.Begin()
	return a
}

// alignedRows allocates n rows of eight floats on a 32-byte boundary
// and fills row k with fill(k).
func alignedRows(t *testing.T, n int, fill func(k int) float32) []float32 {
	t.Helper()
	raw := make([]float32, n*8+8)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := 0
	if rem := addr % 32; rem != 0 {
		off = int((32 - rem) / 4)
	}
	data := raw[off : off+n*8]
	for k := 0; k < n; k++ {
		for i := 0; i < 8; i++ {
			data[k*8+i] = fill(k)
		}
	}
	return data
}

// wantBytes finalizes the session and compares the emitted code
// byte-for-byte.
func wantBytes(t *testing.T, a *Assembler, want []byte) {
	t.Helper()
	if err := a.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	got := a.Bytecode()
	if !bytes.Equal(got, want) {
		t.Fatalf("encoding mismatch\n got: % x\nwant: % x", got, want)
	}
}

// requireAVX2 skips tests that actually run emitted code on hosts that
// cannot.
func requireAVX2(t *testing.T) {
	t.Helper()
	if !executeSupported || !Supported() {
		t.Skip("host cannot execute AVX2/FMA code")
	}
}
