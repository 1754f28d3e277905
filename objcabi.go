package objcabi

import "unsafe"

// BlockRuntime is the surface this library consumes from a Blocks runtime.
//
// On Apple platforms the three entry points correspond to the
// _NSConcreteStackBlock class symbol, _Block_copy/_Block_release and the
// implicit retain performed by Block_copy on an already-heap block. The
// binding to a real runtime lives outside this module; blockrt.Simulator
// provides a pure-Go implementation for testing block layouts off-target.
type BlockRuntime interface {
	// StackBlockClass returns the class pointer stored in the isa slot of
	// stack-allocated blocks.
	StackBlockClass() unsafe.Pointer

	// Copy moves the stack block at p onto runtime-managed heap storage and
	// returns the heap address. The runtime performs a flat byte move of
	// Descriptor.Size bytes and then calls the descriptor's copy helper, if
	// present, with (heap, p). The returned block starts with refcount 1.
	Copy(p unsafe.Pointer) (unsafe.Pointer, error)

	// Retain increments the refcount of a heap block previously returned by
	// Copy.
	Retain(p unsafe.Pointer)

	// Release decrements the refcount of a heap block. When the count hits
	// zero the runtime calls the descriptor's dispose helper, if present,
	// with the block's address, then frees the storage. The dispose call may
	// happen on any thread.
	Release(p unsafe.Pointer) error
}
