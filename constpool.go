// Completion: 100% - Constant pool complete
package vpu

import (
	"encoding/binary"
	"math"
)

// 256-bit constants live in a pool placed after the code, 32-byte
// aligned, inside the same executable page. A Set* call returns a
// stable id; LoadConst emits a RIP-relative aligned load whose
// displacement End patches once the pool has its final address.

func (a *Assembler) addConst(e constEntry) uint32 {
	a.consts = append(a.consts, e)
	return uint32(len(a.consts) - 1)
}

// Set1PS broadcasts a float across all eight lanes of a constant.
func (a *Assembler) Set1PS(value float32) uint32 {
	var e constEntry
	bits := math.Float32bits(value)
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(e.data[i*4:], bits)
	}
	return a.addConst(e)
}

// Set1PD broadcasts a double across all four lanes of a constant.
func (a *Assembler) Set1PD(value float64) uint32 {
	var e constEntry
	bits := math.Float64bits(value)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(e.data[i*8:], bits)
	}
	return a.addConst(e)
}

// Set1EPI32 broadcasts a 32-bit integer across all eight lanes.
func (a *Assembler) Set1EPI32(value int32) uint32 {
	var e constEntry
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(e.data[i*4:], uint32(value))
	}
	return a.addConst(e)
}

// SetPS builds a constant from eight floats, a0 in the lowest lane.
func (a *Assembler) SetPS(a0, a1, a2, a3, a4, a5, a6, a7 float32) uint32 {
	var e constEntry
	for i, v := range [8]float32{a0, a1, a2, a3, a4, a5, a6, a7} {
		binary.LittleEndian.PutUint32(e.data[i*4:], math.Float32bits(v))
	}
	return a.addConst(e)
}

// SetPD builds a constant from four doubles, a0 in the lowest lane.
func (a *Assembler) SetPD(a0, a1, a2, a3 float64) uint32 {
	var e constEntry
	for i, v := range [4]float64{a0, a1, a2, a3} {
		binary.LittleEndian.PutUint64(e.data[i*8:], math.Float64bits(v))
	}
	return a.addConst(e)
}

// SetEPI32 builds a constant from eight 32-bit integers.
func (a *Assembler) SetEPI32(a0, a1, a2, a3, a4, a5, a6, a7 int32) uint32 {
	var e constEntry
	for i, v := range [8]int32{a0, a1, a2, a3, a4, a5, a6, a7} {
		binary.LittleEndian.PutUint32(e.data[i*4:], uint32(v))
	}
	return a.addConst(e)
}

// LoadConst loads the constant with the given id into a YMM register.
// Encoded as vmovaps target, [rip+disp32]; the displacement is patched
// by End once the pool location is known.
func (a *Assembler) LoadConst(target AVXReg, id uint32) {
	if int(id) >= len(a.consts) {
		a.fail(CategoryOperand, errBadConstant)
		return
	}
	a.trace("vmovaps %s, [const%d]", target, id)
	a.vexRIPConst(ppNone, m0F, w0, l256, 0x28, uint8(target), id)
}

// ConstOffset returns the in-buffer offset of a constant after End.
func (a *Assembler) ConstOffset(id uint32) (int, bool) {
	if a.state != stateFinalized || int(id) >= len(a.consts) {
		return 0, false
	}
	poolBase := (a.n + 31) &^ 31
	return poolBase + 32*int(id), true
}
