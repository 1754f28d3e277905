package abi

import "unsafe"

// Flags is the bit-flags field of a block header.
// Values from Block_private.h in libclosure.
type Flags int32

const (
	// FlagRefcountMask covers the runtime-maintained reference count bits.
	FlagRefcountMask Flags = 0xfffe
	// FlagNeedsFree is set by the runtime on heap copies it must free.
	FlagNeedsFree Flags = 1 << 24
	// FlagHasCopyDispose is set when the descriptor carries copy and
	// dispose helpers, i.e. when the payload needs cleanup.
	FlagHasCopyDispose Flags = 1 << 25
	// FlagIsGlobal marks blocks with static storage duration.
	FlagIsGlobal Flags = 1 << 28
	// FlagHasSignature marks descriptors extended with an encoding string.
	FlagHasSignature Flags = 1 << 30
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Descriptor is the size/copy/dispose metadata a block header points at.
// Copy and Dispose are non-nil if and only if FlagHasCopyDispose is set on
// the owning block.
type Descriptor struct {
	Reserved uint64
	// Size is the byte size of the whole block object, header included.
	Size uint64
	// Copy is called by the runtime with (heap, stack) addresses after it
	// has already byte-moved the block during heap promotion.
	Copy func(dst, src unsafe.Pointer)
	// Dispose is called by the runtime with the block's address when its
	// refcount reaches zero. May run on any thread; must be single-shot.
	Dispose func(block unsafe.Pointer)
}

// Header is the fixed-size record at offset 0 of every block object.
type Header struct {
	// ISA is the runtime class pointer (_NSConcreteStackBlock for blocks
	// built here).
	ISA      unsafe.Pointer
	Flags    Flags
	Reserved int32
	// Invoke is the erased trampoline; see EraseFunc.
	Invoke     unsafe.Pointer
	Descriptor *Descriptor
}

// EraseFunc erases a func value to its address for storage in a header's
// invoke slot. The value must be recovered with RecoverFunc at the same
// type F before it is called.
func EraseFunc[F any](fn F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&fn))
}

// RecoverFunc re-types an erased func value. Naming a type other than the
// one passed to EraseFunc is undefined behavior.
func RecoverFunc[F any](p unsafe.Pointer) F {
	return *(*F)(unsafe.Pointer(&p))
}
