// Completion: 100% - Session lifecycle complete
package vpu

import (
	"fmt"
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateInProgress
	stateFinalized
	statePoisoned
	stateDead // page allocation failed or released
)

// constEntry is one 256-bit value destined for the constant pool.
type constEntry struct {
	data [32]byte
}

// constFix is a pending RIP-relative displacement pointing at a pool
// constant.
type constFix struct {
	site uint32 // offset of the 32-bit displacement inside the code
	id   uint32
}

// symbol is a named code offset: a label or a procedure. While it is
// undefined, fixups accumulates the displacement sites waiting for it.
type symbol struct {
	offset  uint32
	defined bool
	fixups  []uint32
}

// Assembler is one runtime assembly session. It owns a single RWX page:
// emitted instructions fill the low part, the 32-byte aligned constant
// pool is laid out after the code at End. A session belongs to a single
// goroutine; independent sessions are fully isolated.
type Assembler struct {
	page     []byte
	pageSize int
	n        int // bytes emitted so far
	poolSize int // bytes of pool laid out by End

	state sessionState
	err   error

	opCount  int
	failedOp int

	consts     []constEntry
	constFixes []constFix
	labels     map[string]*symbol
	procs      map[string]*symbol
}

// New allocates a session with an executable page of the given size.
// A pageSize of zero selects the 4096 byte default. The returned
// session is Idle; call Begin before emitting.
func New(pageSize int) (*Assembler, error) {
	if pageSize == 0 {
		pageSize = 4096
	}
	page, err := allocPage(pageSize)
	if err != nil {
		return nil, &sessionError{cat: CategoryOS, err: err}
	}
	return &Assembler{
		page:     page,
		pageSize: pageSize,
		state:    stateIdle,
		failedOp: -1,
	}, nil
}

// fail records a session error. Capacity, Resolution and OS errors are
// fatal and poison the session; State and Operand errors are local —
// they surface through Err (and the per-call return values) but leave
// the session running. A fatal error displaces an earlier local one in
// Err so the poisoning cause is what callers see.
func (a *Assembler) fail(cat ErrorCategory, err error) {
	fatal := cat == CategoryCapacity || cat == CategoryResolution || cat == CategoryOS
	if a.err == nil || (fatal && a.state != statePoisoned) {
		a.err = &sessionError{cat: cat, err: err}
	}
	if fatal && (a.state == stateInProgress || a.state == stateFinalized) {
		a.state = statePoisoned
	}
}

// Err returns the error recorded by the session, if any: the first one,
// unless a later fatal error displaced an earlier local one (see fail).
func (a *Assembler) Err() error { return a.err }

// Begin resets the assembler to take new input. Previously assembled
// code, constants, labels and procedures are all discarded; the
// executable page is kept.
func (a *Assembler) Begin() {
	if a.state == stateDead {
		return
	}
	a.n = 0
	a.poolSize = 0
	a.err = nil
	a.opCount = 0
	a.failedOp = -1
	a.consts = a.consts[:0]
	a.constFixes = a.constFixes[:0]
	a.labels = make(map[string]*symbol)
	a.procs = make(map[string]*symbol)
	a.state = stateInProgress
}

// End freezes the session: every pending label, procedure and constant
// reference is patched, the constant pool is laid out after the code,
// and the page is made coherent for execution. An End that fails on an
// unresolved symbol or an overflowing page poisons the session; Execute
// will refuse to run it. Calling End outside InProgress records a State
// error and leaves the session state as it was.
func (a *Assembler) End() error {
	if a.state != stateInProgress {
		a.fail(CategoryState, errNotInProgress)
		return a.err
	}
	for name, s := range a.labels {
		if !s.defined {
			a.fail(CategoryResolution, fmt.Errorf("label %q never inserted", name))
			return a.err
		}
	}
	for name, s := range a.procs {
		if !s.defined {
			a.fail(CategoryResolution, fmt.Errorf("procedure %q never defined", name))
			return a.err
		}
	}

	poolBase := (a.n + 31) &^ 31
	need := poolBase + 32*len(a.consts)
	if need > a.pageSize {
		a.failedOp = a.opCount
		a.fail(CategoryCapacity, errPageFull)
		return a.err
	}
	for i := range a.consts {
		copy(a.page[poolBase+32*i:], a.consts[i].data[:])
	}
	for _, f := range a.constFixes {
		if int(f.id) >= len(a.consts) {
			a.fail(CategoryResolution, errBadConstant)
			return a.err
		}
		target := uint32(poolBase) + 32*f.id
		a.patch32(f.site, int32(target)-int32(f.site+4))
	}
	a.poolSize = need - a.n

	flushICache(a.page[:need])
	a.state = stateFinalized
	return nil
}

// Release frees the executable page. The session is unusable afterwards.
func (a *Assembler) Release() {
	if a.page != nil {
		freePage(a.page)
		a.page = nil
	}
	a.state = stateDead
}

// NumBytes returns the total size of the emitted bytecode. It grows
// monotonically between Begin calls.
func (a *Assembler) NumBytes() int { return a.n }

// Bytecode returns the emitted bytes. The slice aliases the executable
// page and is stable until the next Begin or Release.
func (a *Assembler) Bytecode() []byte {
	if a.page == nil {
		return nil
	}
	return a.page[:a.n]
}

// CapacityReport describes a page overflow: how many bytes were emitted,
// the page size, and the index of the emission that did not fit
// (-1 when no overflow happened).
func (a *Assembler) CapacityReport() (emitted, pageSize, failedOp int) {
	return a.n, a.pageSize, a.failedOp
}
