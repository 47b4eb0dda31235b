// Completion: 100% - Library entry points complete
// Package vpu is a runtime assembler for a useful subset of the x86-64
// AVX/AVX2 instruction set, centered on the sixteen 256-bit YMM registers
// and the sixteen general purpose registers.
//
// A session is driven through mnemonic-level methods that emit encoded
// machine bytes into an executable page. Once End has resolved labels,
// procedures and constant references, the buffer can be invoked as an
// ordinary function:
//
//	a, _ := vpu.New(0)
//	a.Begin()
//	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 32)
//	a.MovAPSLoad(vpu.YMM1, vpu.RCX, 64)
//	a.AddPS(vpu.YMM0, vpu.YMM0, vpu.YMM1)
//	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
//	a.Ret()
//	a.End()
//	a.Execute(unsafe.Pointer(&data[0]))
//
// On entry to the emitted code RCX holds the data pointer, RDX the
// function table pointer and R8 an extra argument slot. The emitted code
// must preserve RBX, RBP, RDI, RSI and R12..R15, and return with ret.
package vpu

import (
	"github.com/xyproto/env/v2"
	"golang.org/x/sys/cpu"
)

// VerboseMode makes every emission print its textual assembly and the
// encoded bytes to stderr. Initialized from the VPU_VERBOSE environment
// variable.
var VerboseMode = env.Bool("VPU_VERBOSE")

// Supported reports whether the host CPU can execute the code this
// package emits. Assembly itself works on any host; execution needs
// AVX2 and FMA.
func Supported() bool {
	return cpu.X86.HasAVX2 && cpu.X86.HasFMA
}
