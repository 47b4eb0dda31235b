// Completion: 100% - Demo front-end complete
// vpudemo drives the runtime assembler through a handful of worked
// examples. It only uses the public API; pick an example by name:
//
//	vpudemo basics | add | normalize | loop | stack | constants |
//	        subroutines | forwardjump | functions
//
// Set VPU_VERBOSE=1 to watch the assembly being emitted.
package main

import (
	"fmt"
	"math"
	"os"
	"unsafe"

	vpu "github.com/robthebloke/libASM"
	"github.com/xyproto/env/v2"
)

var pageSize = env.Int("VPU_PAGE_SIZE", 4096)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	if !vpu.Supported() {
		fmt.Fprintln(os.Stderr, "this CPU does not support AVX2+FMA")
		os.Exit(1)
	}
	examples := map[string]func(){
		"basics":      exampleBasics,
		"add":         exampleAdd,
		"normalize":   exampleNormalize,
		"loop":        exampleLoop,
		"stack":       exampleStack,
		"constants":   exampleConstants,
		"subroutines": exampleSubroutines,
		"forwardjump": exampleForwardJump,
		"functions":   exampleFunctions,
	}
	fn, ok := examples[os.Args[1]]
	if !ok {
		usage()
		os.Exit(1)
	}
	fn()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: vpudemo <basics|add|normalize|loop|stack|constants|subroutines|forwardjump|functions>")
}

// rows allocates n rows of eight floats on a 32-byte boundary and
// fills row k with fill(k).
func rows(n int, fill func(k int) float32) []float32 {
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

func printRow(name string, row []float32) {
	fmt.Printf("%-10s", name)
	for _, v := range row[:8] {
		fmt.Printf(" %9.5f", v)
	}
	fmt.Println()
}

// hexDump prints the emitted bytecode sixteen bytes per line.
func hexDump(code []byte) {
	for i := 0; i < len(code); i += 16 {
		fmt.Printf("%04x:", i)
		for j := i; j < i+16 && j < len(code); j++ {
			fmt.Printf(" %02x", code[j])
		}
		fmt.Println()
	}
}

func mustEnd(a *vpu.Assembler) {
	if err := a.End(); err != nil {
		fmt.Fprintln(os.Stderr, "finalize failed:", err)
		os.Exit(1)
	}
}

// exampleBasics moves a couple of rows around and dumps the bytecode.
func exampleBasics() {
	data := rows(16, func(k int) float32 { return 0.1 * float32(k) })
	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 32)
	a.MovUPSLoad(vpu.YMM1, vpu.RCX, 80)
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
	a.MovUPSStore(vpu.RCX, 8, vpu.YMM1)
	a.Ret()
	mustEnd(a)

	fmt.Printf("assembled %d bytes\n", a.NumBytes())
	hexDump(a.Bytecode())
	a.Execute(unsafe.Pointer(&data[0]))
	printRow("row0", data[0:])
	printRow("row1", data[8:])
}

// exampleAdd adds two rows into a third.
func exampleAdd() {
	data := rows(16, func(k int) float32 { return 0.1 * float32(k) })
	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	a.MovAPSLoad(vpu.YMM1, vpu.RCX, 32)
	a.MovAPSLoad(vpu.YMM2, vpu.RCX, 64)
	a.AddPS(vpu.YMM0, vpu.YMM1, vpu.YMM2)
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
	a.Ret()
	mustEnd(a)

	a.Execute(unsafe.Pointer(&data[0]))
	printRow("0.1+0.2", data[0:])
}

// exampleNormalize normalizes a bundle of eight 3D vectors stored as
// separate x, y, z rows using the fast reciprocal square root.
func exampleNormalize() {
	data := rows(3, func(k int) float32 { return float32(k + 1) })
	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 0)  // x
	a.MovAPSLoad(vpu.YMM1, vpu.RCX, 32) // y
	a.MovAPSLoad(vpu.YMM2, vpu.RCX, 64) // z
	a.MulPS(vpu.YMM3, vpu.YMM0, vpu.YMM0)
	a.MovAPS(vpu.YMM4, vpu.YMM1)
	a.FmAddPS(vpu.YMM4, vpu.YMM1, vpu.YMM3) // y*y + x*x
	a.MovAPS(vpu.YMM3, vpu.YMM2)
	a.FmAddPS(vpu.YMM3, vpu.YMM2, vpu.YMM4) // z*z + ...
	a.RSqrtPS(vpu.YMM3, vpu.YMM3)
	a.MulPS(vpu.YMM0, vpu.YMM0, vpu.YMM3)
	a.MulPS(vpu.YMM1, vpu.YMM1, vpu.YMM3)
	a.MulPS(vpu.YMM2, vpu.YMM2, vpu.YMM3)
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
	a.MovAPSStore(vpu.RCX, 32, vpu.YMM1)
	a.MovAPSStore(vpu.RCX, 64, vpu.YMM2)
	a.Ret()
	mustEnd(a)

	a.Execute(unsafe.Pointer(&data[0]))
	printRow("x/len", data[0:])
	printRow("y/len", data[8:])
	printRow("z/len", data[16:])
}

// exampleLoop accumulates ten rows with a counted loop.
func exampleLoop() {
	data := rows(10, func(k int) float32 { return 0.1 })
	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	a.SetZero(vpu.YMM0)
	a.Mov(vpu.RAX, vpu.RCX)
	a.LoadCount(vpu.R9, 10)
	a.InsertLabel("loop")
	a.AddPSMem(vpu.YMM0, vpu.YMM0, vpu.RAX, 0)
	a.Lea(vpu.RAX, vpu.RAX, 32)
	a.Dec(vpu.R9)
	a.JumpNeLabel("loop")
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
	a.Ret()
	mustEnd(a)

	a.Execute(unsafe.Pointer(&data[0]))
	printRow("sum", data[0:]) // ten sums of 0.1 -> 1.0
}

// exampleStack builds an aligned frame, spills a register row, and
// restores it.
func exampleStack() {
	data := rows(2, func(k int) float32 { return float32(k) + 0.5 })
	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	a.Push(vpu.RBP)
	a.Sub(vpu.RSP, 96)
	a.Lea(vpu.RBP, vpu.RSP, 32)
	a.And(vpu.RBP, -32) // 32-byte aligned scratch
	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 32)
	a.MovAPSStore(vpu.RBP, 0, vpu.YMM0) // spill
	a.SetZero(vpu.YMM0)
	a.MovAPSLoad(vpu.YMM0, vpu.RBP, 0) // reload
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
	a.Add(vpu.RSP, 96)
	a.Pop(vpu.RBP)
	a.Ret()
	mustEnd(a)

	a.Execute(unsafe.Pointer(&data[0]))
	printRow("row0", data[0:])
}

// exampleConstants loads two pool constants and multiplies the input.
func exampleConstants() {
	data := rows(1, func(k int) float32 { return 2.0 })
	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	pi := a.Set1PS(3.14159)
	ramp := a.SetPS(1, 2, 3, 4, 5, 6, 7, 8)
	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 0)
	a.LoadConst(vpu.YMM1, pi)
	a.LoadConst(vpu.YMM2, ramp)
	a.MulPS(vpu.YMM1, vpu.YMM1, vpu.YMM0)
	a.MulPS(vpu.YMM2, vpu.YMM2, vpu.YMM0)
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM1)
	a.Ret()
	mustEnd(a)

	a.Execute(unsafe.Pointer(&data[0]))
	printRow("2*pi", data[0:])
}

// exampleSubroutines calls a procedure twice.
func exampleSubroutines() {
	data := rows(2, func(k int) float32 { return float32(k + 1) })
	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 0)
	a.CallProcedure("double")
	a.CallProcedure("double")
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
	a.Ret()
	a.Procedure("double")
	a.AddPS(vpu.YMM0, vpu.YMM0, vpu.YMM0)
	a.Ret()
	mustEnd(a)

	a.Execute(unsafe.Pointer(&data[0]))
	printRow("x*4", data[0:])
}

// exampleForwardJump branches over a block when every lane is negative.
func exampleForwardJump() {
	data := rows(1, func(k int) float32 { return -1.5 })
	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 0)
	a.MoveMaskPS(vpu.RBX, vpu.YMM0)
	a.Cmp(vpu.RBX, 0xFF)
	a.JumpEqLabel("all_negative")
	a.SetZero(vpu.YMM0) // skipped when every sign bit is set
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
	a.Ret()
	a.InsertLabel("all_negative")
	a.AddPS(vpu.YMM0, vpu.YMM0, vpu.YMM0)
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)
	a.Ret()
	mustEnd(a)

	a.Execute(unsafe.Pointer(&data[0]))
	printRow("2*x", data[0:])
}

// exampleFunctions calls sin and cos from the default function table,
// preserving RCX/RDX around the calls the way the calling convention
// demands.
func exampleFunctions() {
	data := rows(4, func(k int) float32 { return 0.1 * float32(k) })
	ft := vpu.NewFunctionTable()
	if err := ft.AddDefaults(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer ft.Release()

	a, err := vpu.New(pageSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.Release()

	a.Begin()
	a.Push(vpu.RBP)
	a.Sub(vpu.RSP, 64)
	a.Lea(vpu.RBP, vpu.RSP, 0)
	a.Mov64Store(vpu.RBP, 8, vpu.RCX)
	a.Mov64Store(vpu.RBP, 16, vpu.RDX)

	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 32)
	a.Call("sin", ft)
	a.Mov64Load(vpu.RCX, vpu.RBP, 8)
	a.Mov64Load(vpu.RDX, vpu.RBP, 16)
	a.MovAPSStore(vpu.RCX, 0, vpu.YMM0)

	a.MovAPSLoad(vpu.YMM0, vpu.RCX, 96)
	a.Call("cos", ft)
	a.Mov64Load(vpu.RCX, vpu.RBP, 8)
	a.Mov64Load(vpu.RDX, vpu.RBP, 16)
	a.MovAPSStore(vpu.RCX, 64, vpu.YMM0)

	a.Add(vpu.RSP, 64)
	a.Pop(vpu.RBP)
	a.Ret()
	mustEnd(a)

	a.ExecuteWithTable(unsafe.Pointer(&data[0]), ft)
	fmt.Printf("sin(0.1): want %.5f\n", math.Sin(0.1))
	printRow("got", data[0:])
	fmt.Printf("cos(0.3): want %.5f\n", math.Cos(0.3))
	printRow("got", data[16:])
}
