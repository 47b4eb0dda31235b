// Completion: 100% - Execution trampoline complete
//go:build amd64

package vpu

const executeSupported = true

// vpucall transfers control to assembled code with the emitted calling
// convention: RCX = data, RDX = function table, R8 = extra. The callee
// must preserve RBX, RBP, RDI, RSI and R12..R15, keep the stack intact
// and return with ret. Implemented in execute_amd64.s.
//
//go:noescape
func vpucall(code, data, table, extra uintptr)

// flushICache is a no-op on x86-64: instruction and data caches are
// coherent, and the trampoline call itself is the serializing edge
// between the writes that formed the buffer and its execution.
func flushICache(b []byte) {}
