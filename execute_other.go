// Completion: 100% - Execution stub for non-amd64 hosts
//go:build !amd64

package vpu

// Assembly still works on non-amd64 hosts (useful for cross building
// and inspecting bytecode); execution does not.
const executeSupported = false

func vpucall(code, data, table, extra uintptr) {}

func flushICache(b []byte) {}
