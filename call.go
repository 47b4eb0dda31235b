// Completion: 100% - Function call emission complete
package vpu

// Call emits a call to a named entry of the function table, resolving
// the pointer at assembly time: the 64-bit address is loaded into RAX
// and called indirectly. Returns false if the name is not in the table.
//
// The caller is responsible for the call environment: arguments in
// YMM0..YMM4, RSP 16-byte aligned at the call (push RBP / sub RSP, n /
// lea RBP, [RSP+k] makes a workable frame), and for spilling RCX and
// RDX around the call since they are volatile. Pass the same table to
// ExecuteWithTable.
func (a *Assembler) Call(name string, ft *FunctionTable) bool {
	ptr, ok := ft.funcPtr(name)
	if !ok {
		return false
	}
	a.trace("mov rax, %s; call rax", name)
	var c insn
	c.put(0x48) // REX.W
	c.put(0xB8) // mov rax, imm64
	c.putU64(uint64(ptr))
	c.put(0xFF) // call r/m64, /2
	c.put(0xD0)
	return a.commit(&c)
}
