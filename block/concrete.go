package block

import (
	"runtime"
	"unsafe"

	"github.com/wippyai/objc-abi/abi"
	"github.com/wippyai/objc-abi/blockrt"
	"github.com/wippyai/objc-abi/errors"
)

// noCopy triggers vet's copylocks check. A block's descriptor records the
// object's own size and the runtime relocates it by address, so shallow
// copies of a constructed block are never valid.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ConcreteBlock is a block whose closure type is known at compile time. The
// header sits at offset 0 for every instantiation, so any *ConcreteBlock
// can be reinterpreted as *Block regardless of F.
type ConcreteBlock[F any] struct {
	noCopy  noCopy
	header  abi.Header
	closure F
	cleanup func()
}

// The generic view relies on the header starting the object.
const (
	_ uintptr = -unsafe.Offsetof(ConcreteBlock[func()]{}.header)
	_ uintptr = -unsafe.Offsetof(Block{}.header)
	_ uintptr = unsafe.Sizeof(Block{}) - unsafe.Sizeof(abi.Header{})
	_ uintptr = unsafe.Sizeof(abi.Header{}) - unsafe.Sizeof(Block{})
)

// withInvoke builds the block around an already-erased trampoline. The isa
// slot is filled from the installed runtime, or left nil and populated at
// heap promotion when no runtime is installed yet.
func withInvoke[F any](invoke unsafe.Pointer, closure F) *ConcreteBlock[F] {
	b := &ConcreteBlock[F]{closure: closure}

	var isa unsafe.Pointer
	if rt := blockrt.Active(); rt != nil {
		isa = rt.StackBlockClass()
	}
	b.header = abi.Header{
		ISA:    isa,
		Invoke: invoke,
		Descriptor: &abi.Descriptor{
			Size: uint64(unsafe.Sizeof(*b)),
		},
	}
	return b
}

// WithDispose attaches a cleanup that the runtime's dispose helper runs
// exactly once, when the heap copy's refcount reaches zero. It must be
// called before Copy. Attaching a cleanup sets FlagHasCopyDispose and the
// descriptor's helper pair; passing nil clears them again.
func (b *ConcreteBlock[F]) WithDispose(fn func()) *ConcreteBlock[F] {
	b.cleanup = fn
	if fn != nil {
		b.header.Flags |= abi.FlagHasCopyDispose
		b.header.Descriptor.Copy = copyBlock[F]
		b.header.Descriptor.Dispose = disposeBlock[F]
	} else {
		b.header.Flags &^= abi.FlagHasCopyDispose
		b.header.Descriptor.Copy = nil
		b.header.Descriptor.Dispose = nil
	}
	return b
}

// Clone builds a fresh stack block sharing the trampoline and cleanup with
// a copy of the closure value. Each clone's cleanup runs once, for that
// clone.
func (b *ConcreteBlock[F]) Clone() *ConcreteBlock[F] {
	nb := withInvoke(b.header.Invoke, b.closure)
	if b.cleanup != nil {
		nb.WithDispose(b.cleanup)
	}
	return nb
}

// Block reinterprets the block through the arity-generic view.
func (b *ConcreteBlock[F]) Block() *Block {
	return (*Block)(unsafe.Pointer(b))
}

// Header returns a copy of the block's header, for inspection.
func (b *ConcreteBlock[F]) Header() abi.Header {
	return b.header
}

// Copy promotes the block onto the runtime's heap and returns the
// runtime-owned handle. Ownership transfers unconditionally: the receiver
// must not be used again, its cleanup will run via the heap copy's dispose
// helper. A nil isa is filled in here when construction predated Install.
func (b *ConcreteBlock[F]) Copy() (*HeapBlock, error) {
	rt := blockrt.Active()
	if rt == nil {
		return nil, errors.NotInstalled(errors.PhaseCopy)
	}
	if b.header.ISA == nil {
		b.header.ISA = rt.StackBlockClass()
	}

	p, err := rt.Copy(unsafe.Pointer(b))
	if err != nil {
		return nil, errors.CopyFailed(err)
	}
	runtime.KeepAlive(b)

	return &HeapBlock{ptr: (*Block)(p)}, nil
}

// disposeBlock is the descriptor's dispose helper. The runtime calls it
// with the heap copy's address, on whatever thread drops the last
// reference. Single-shot: the cleanup slot is cleared before the call.
func disposeBlock[F any](p unsafe.Pointer) {
	b := (*ConcreteBlock[F])(p)
	if c := b.cleanup; c != nil {
		b.cleanup = nil
		c()
	}
}

// copyBlock is the descriptor's copy helper. The runtime byte-moves the
// block before calling it, so there is nothing left to do; payloads that
// need a deep copy here are unsupported.
func copyBlock[F any](_, _ unsafe.Pointer) {
}
