package block

import (
	"unsafe"

	"github.com/wippyai/objc-abi/abi"
	"github.com/wippyai/objc-abi/blockrt"
	"github.com/wippyai/objc-abi/errors"
)

// Block is the arity-generic view of a block object: the header alone. Its
// layout is a prefix of every ConcreteBlock instantiation, so a *Block is
// how block objects are passed to code that does not know the closure
// type. Invocation goes through InvokeN, which must name the exact
// argument and return types the block was built with.
type Block struct {
	header abi.Header
}

// Header returns a copy of the block's header, for inspection.
func (b *Block) Header() abi.Header {
	return b.header
}

// HeapBlock is a handle to a block promoted onto the runtime's heap. The
// runtime's reference count owns the storage: Retain and Release adjust
// it, and the dispose helper runs when it reaches zero.
type HeapBlock struct {
	ptr *Block
}

// Block returns the heap block's generic view.
func (h *HeapBlock) Block() *Block {
	return h.ptr
}

// Retain increments the runtime's reference count.
func (h *HeapBlock) Retain() {
	if rt := blockrt.Active(); rt != nil {
		rt.Retain(unsafe.Pointer(h.ptr))
	}
}

// Release decrements the runtime's reference count, running the dispose
// helper on the drop to zero.
func (h *HeapBlock) Release() error {
	rt := blockrt.Active()
	if rt == nil {
		return errors.NotInstalled(errors.PhaseRelease)
	}
	return rt.Release(unsafe.Pointer(h.ptr))
}
