// Completion: 100% - Byte emission core complete
package vpu

import (
	"fmt"
	"os"
)

// VEX field constants. pp selects the implied legacy prefix, mm the
// opcode map, w and l the REX.W and vector length bits.
const (
	ppNone = 0
	pp66   = 1
	ppF3   = 2
	ppF2   = 3

	m0F   = 1
	m0F38 = 2
	m0F3A = 3

	w0 = 0
	w1 = 1

	l128 = 0
	l256 = 1
)

// insn stages the bytes of a single instruction so that an emission
// either lands completely in the page or not at all. No AVX encoding
// exceeds 16 bytes.
type insn struct {
	buf [16]byte
	n   int
}

func (c *insn) put(b byte) {
	c.buf[c.n] = b
	c.n++
}

func (c *insn) putU32(v uint32) {
	c.buf[c.n] = byte(v)
	c.buf[c.n+1] = byte(v >> 8)
	c.buf[c.n+2] = byte(v >> 16)
	c.buf[c.n+3] = byte(v >> 24)
	c.n += 4
}

func (c *insn) putU64(v uint64) {
	c.putU32(uint32(v))
	c.putU32(uint32(v >> 32))
}

// vex writes the two- or three-byte VEX prefix. r, x and b are the
// high bits of modrm.reg, sib.index and modrm.rm/sib.base; vvvv is the
// extra source register, not yet inverted. The two-byte form is only
// able to express R, so it is chosen iff x, b and w are clear and the
// opcode lives on the 0F map.
func (c *insn) vex(r, x, b, mm, w, vvvv, l, pp byte) {
	if x == 0 && b == 0 && w == 0 && mm == m0F {
		c.put(0xC5)
		c.put((^r&1)<<7 | (^vvvv&0x0F)<<3 | l<<2 | pp)
		return
	}
	c.put(0xC4)
	c.put((^r&1)<<7 | (^x&1)<<6 | (^b&1)<<5 | mm)
	c.put(w<<7 | (^vvvv&0x0F)<<3 | l<<2 | pp)
}

// emitting reports whether encoder calls may currently write bytes.
// An earlier local (Operand/State) error does not stop emission; only
// the session state does.
func (a *Assembler) emitting() bool {
	return a.state == stateInProgress
}

// trace prints the textual assembly about to be emitted.
func (a *Assembler) trace(format string, args ...any) {
	if VerboseMode && a.emitting() {
		fmt.Fprintf(os.Stderr, format, args...)
		fmt.Fprint(os.Stderr, ":")
	}
}

// commit moves a staged instruction into the page. Emission in the
// wrong session state records a State error; running out of page
// records a Capacity error and poisons the session. Either way the
// buffer is left unchanged on failure.
func (a *Assembler) commit(c *insn) bool {
	if a.state != stateInProgress {
		a.fail(CategoryState, errNotInProgress)
		return false
	}
	if a.n+c.n > a.pageSize {
		a.failedOp = a.opCount
		a.fail(CategoryCapacity, errPageFull)
		if VerboseMode {
			fmt.Fprintln(os.Stderr, " (page full)")
		}
		return false
	}
	copy(a.page[a.n:], c.buf[:c.n])
	a.n += c.n
	a.opCount++
	if VerboseMode {
		for _, b := range c.buf[:c.n] {
			fmt.Fprintf(os.Stderr, " %x", b)
		}
		fmt.Fprintln(os.Stderr)
	}
	return true
}

// patch32 stores a little-endian int32 at an already emitted site.
func (a *Assembler) patch32(site uint32, v int32) {
	a.page[site] = byte(v)
	a.page[site+1] = byte(v >> 8)
	a.page[site+2] = byte(v >> 16)
	a.page[site+3] = byte(v >> 24)
}

// vexRR encodes a register/register VEX instruction: prefix, opcode,
// mod=11 ModR/M, optional trailing immediates.
func (a *Assembler) vexRR(pp, mm, w, l, op byte, reg, vvvv, rm uint8, imm ...byte) bool {
	var c insn
	c.vex(reg>>3, 0, rm>>3, mm, w, vvvv, l, pp)
	c.put(op)
	c.put(0xC0 | (reg&7)<<3 | rm&7)
	for _, b := range imm {
		c.put(b)
	}
	return a.commit(&c)
}

// vexRM encodes a VEX instruction with a [base+disp32] memory operand.
// mod is always 10 so every base register is expressible; RSP and R12
// additionally need the index-less SIB byte.
func (a *Assembler) vexRM(pp, mm, w, l, op byte, reg, vvvv uint8, base Reg, disp int32, imm ...byte) bool {
	var c insn
	bb := uint8(base)
	c.vex(reg>>3, 0, bb>>3, mm, w, vvvv, l, pp)
	c.put(op)
	c.put(0x80 | (reg&7)<<3 | bb&7)
	if bb&7 == 4 {
		c.put(0x24)
	}
	c.putU32(uint32(disp))
	for _, b := range imm {
		c.put(b)
	}
	return a.commit(&c)
}

// vexRIPConst encodes a RIP-relative VEX load whose displacement is a
// placeholder patched at End once the constant pool has a home.
func (a *Assembler) vexRIPConst(pp, mm, w, l, op byte, reg uint8, id uint32) {
	var c insn
	c.vex(reg>>3, 0, 0, mm, w, 0, l, pp)
	c.put(op)
	c.put((reg&7)<<3 | 5) // mod=00 rm=101: RIP+disp32
	site := uint32(a.n + c.n)
	c.putU32(0)
	if a.commit(&c) {
		a.constFixes = append(a.constFixes, constFix{site: site, id: id})
	}
}

// vexVSIB encodes a gather: VSIB addressing with a YMM index register,
// the mask in vvvv, scale and base in the SIB byte.
func (a *Assembler) vexVSIB(pp, mm, w, l, op byte, dst, index, mask uint8, base Reg, disp int32, scale uint8) bool {
	var ss byte
	switch scale {
	case 1:
		ss = 0
	case 2:
		ss = 1
	case 4:
		ss = 2
	case 8:
		ss = 3
	default:
		// operand errors on the memory forms are local: refuse the
		// call, leave the buffer and the session alone
		return false
	}
	var c insn
	bb := uint8(base)
	c.vex(dst>>3, index>>3, bb>>3, mm, w, mask, l, pp)
	c.put(op)
	c.put(0x80 | (dst&7)<<3 | 4)
	c.put(ss<<6 | (index&7)<<3 | bb&7)
	c.putU32(uint32(disp))
	return a.commit(&c)
}

// legacyRR encodes one of the pre-VEX 0F-map instructions kept for
// interface parity (the MMX-era conversions). No REX: the mm registers
// those opcodes address have no high encodings.
func (a *Assembler) legacyRR(prefix, op byte, reg, rm uint8) bool {
	var c insn
	if prefix != 0 {
		c.put(prefix)
	}
	c.put(0x0F)
	c.put(op)
	c.put(0xC0 | (reg&7)<<3 | rm&7)
	return a.commit(&c)
}

// legacyRM is the memory form of legacyRR.
func (a *Assembler) legacyRM(prefix, op byte, reg uint8, base Reg, disp int32) bool {
	var c insn
	if prefix != 0 {
		c.put(prefix)
	}
	bb := uint8(base)
	if bb >= 8 {
		c.put(0x41) // REX.B for the base register
	}
	c.put(0x0F)
	c.put(op)
	c.put(0x80 | (reg&7)<<3 | bb&7)
	if bb&7 == 4 {
		c.put(0x24)
	}
	c.putU32(uint32(disp))
	return a.commit(&c)
}

// rexRR encodes a 64-bit general purpose register/register operation.
func (a *Assembler) rexRR(op byte, reg, rm uint8) bool {
	var c insn
	c.put(0x48 | (reg>>3)<<2 | rm>>3)
	c.put(op)
	c.put(0xC0 | (reg&7)<<3 | rm&7)
	return a.commit(&c)
}

// rexRM encodes a 64-bit general purpose operation with a [base+disp32]
// memory operand.
func (a *Assembler) rexRM(op byte, reg uint8, base Reg, disp int32) bool {
	var c insn
	bb := uint8(base)
	c.put(0x48 | (reg>>3)<<2 | bb>>3)
	c.put(op)
	c.put(0x80 | (reg&7)<<3 | bb&7)
	if bb&7 == 4 {
		c.put(0x24)
	}
	c.putU32(uint32(disp))
	return a.commit(&c)
}

// rexMI encodes the 81 /n immediate group against a 64-bit register.
func (a *Assembler) rexMI(opEx uint8, r Reg, imm int32) bool {
	var c insn
	rr := uint8(r)
	c.put(0x48 | rr>>3)
	c.put(0x81)
	c.put(0xC0 | (opEx&7)<<3 | rr&7)
	c.putU32(uint32(imm))
	return a.commit(&c)
}
