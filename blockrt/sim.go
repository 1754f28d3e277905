package blockrt

import (
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	objcabi "github.com/wippyai/objc-abi"
	"github.com/wippyai/objc-abi/abi"
	"github.com/wippyai/objc-abi/errors"
)

var _ objcabi.BlockRuntime = (*Simulator)(nil)

// Stand-ins for the _NSConcreteStackBlock and _NSConcreteMallocBlock
// symbols. Any stable, distinct, non-nil addresses serve as class identity.
var (
	stackBlockClass  int64
	mallocBlockClass int64
)

// MallocBlockClass returns the isa the simulator writes into heap copies.
func MallocBlockClass() unsafe.Pointer {
	return unsafe.Pointer(&mallocBlockClass)
}

type simBlock struct {
	buf []byte
	// src pins the original stack image. The heap copy lives in a buffer
	// the collector does not scan, so every pointer it carries must stay
	// reachable through the original.
	src  unsafe.Pointer
	refs int
}

// Simulator is a pure-Go objcabi.BlockRuntime backed by the Go heap. It
// reproduces the observable behavior of libclosure's _Block_copy and
// _Block_release: a flat byte move on promotion, a copy-helper call after
// the move, reference counting, and a single dispose-helper call when the
// count reaches zero.
//
// Released blocks leave a tombstone behind so that a late Release is
// reported as an over-release rather than an unknown address. The
// simulator is intended for tests and off-target development, where that
// bookkeeping cost is irrelevant.
type Simulator struct {
	blocks map[uintptr]*simBlock
	mu     sync.Mutex
}

func NewSimulator() *Simulator {
	return &Simulator{blocks: make(map[uintptr]*simBlock)}
}

func (s *Simulator) StackBlockClass() unsafe.Pointer {
	return unsafe.Pointer(&stackBlockClass)
}

func (s *Simulator) Copy(p unsafe.Pointer) (unsafe.Pointer, error) {
	if p == nil {
		return nil, errors.NilBlock(errors.PhaseCopy)
	}

	hdr := (*abi.Header)(p)
	size := hdr.Descriptor.Size

	// Byte slices of at least word size come back word-aligned from the Go
	// allocator, which satisfies the header's alignment requirement.
	buf := make([]byte, size)
	copy(buf, unsafe.Slice((*byte)(p), size))
	heap := unsafe.Pointer(&buf[0])

	hh := (*abi.Header)(heap)
	hh.ISA = unsafe.Pointer(&mallocBlockClass)
	hh.Flags |= abi.FlagNeedsFree

	// The byte move already happened; the helper is a hook, not the move.
	if hh.Flags.Has(abi.FlagHasCopyDispose) && hh.Descriptor.Copy != nil {
		hh.Descriptor.Copy(heap, p)
	}

	s.mu.Lock()
	s.blocks[uintptr(heap)] = &simBlock{buf: buf, src: p, refs: 1}
	s.mu.Unlock()

	debugf("copied block %p -> %p (%d bytes)", p, heap, size)
	return heap, nil
}

func (s *Simulator) Retain(p unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blocks[uintptr(p)]
	if !ok || b.refs == 0 {
		Logger().Warn("retain of dead or unknown block",
			zap.Uintptr("block", uintptr(p)))
		return
	}
	b.refs++
}

func (s *Simulator) Release(p unsafe.Pointer) error {
	if p == nil {
		return errors.NilBlock(errors.PhaseRelease)
	}
	addr := uintptr(p)

	s.mu.Lock()
	b, ok := s.blocks[addr]
	if !ok {
		s.mu.Unlock()
		return errors.UnknownBlock(errors.PhaseRelease, addr)
	}
	if b.refs == 0 {
		s.mu.Unlock()
		return errors.OverRelease(addr)
	}
	b.refs--
	last := b.refs == 0
	s.mu.Unlock()

	if !last {
		return nil
	}

	hdr := (*abi.Header)(p)
	if hdr.Flags.Has(abi.FlagHasCopyDispose) && hdr.Descriptor.Dispose != nil {
		hdr.Descriptor.Dispose(p)
	}

	// Drop the storage only after the dispose helper is done with it.
	s.mu.Lock()
	b.buf = nil
	b.src = nil
	s.mu.Unlock()
	runtime.KeepAlive(b)

	debugf("released block 0x%x", addr)
	return nil
}

// LiveBlocks returns the number of heap blocks with a nonzero refcount.
func (s *Simulator) LiveBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, b := range s.blocks {
		if b.refs > 0 {
			n++
		}
	}
	return n
}
