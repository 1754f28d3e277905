package block

import (
	"testing"
	"unsafe"

	"github.com/wippyai/objc-abi/abi"
)

func TestHeaderWithoutCleanup(t *testing.T) {
	b := New0(func() int { return 0 })
	hdr := b.Header()

	if hdr.Flags.Has(abi.FlagHasCopyDispose) {
		t.Error("FlagHasCopyDispose set on a block without cleanup")
	}
	if hdr.Invoke == nil {
		t.Error("invoke slot is nil")
	}
	if hdr.Descriptor == nil {
		t.Fatal("descriptor is nil")
	}
	if hdr.Descriptor.Copy != nil || hdr.Descriptor.Dispose != nil {
		t.Error("descriptor carries helpers without cleanup")
	}
	if want := uint64(unsafe.Sizeof(*b)); hdr.Descriptor.Size != want {
		t.Errorf("descriptor size = %d, want %d", hdr.Descriptor.Size, want)
	}
	if hdr.Reserved != 0 {
		t.Errorf("reserved = %d, want 0", hdr.Reserved)
	}
}

func TestHeaderWithCleanup(t *testing.T) {
	b := New12(func(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12 int) int {
		return 0
	}).WithDispose(func() {})
	hdr := b.Header()

	if !hdr.Flags.Has(abi.FlagHasCopyDispose) {
		t.Error("FlagHasCopyDispose not set on a block with cleanup")
	}
	if hdr.Descriptor.Copy == nil || hdr.Descriptor.Dispose == nil {
		t.Error("descriptor missing helpers with cleanup attached")
	}
}

func TestWithDisposeNilClears(t *testing.T) {
	b := New0(func() int { return 0 }).WithDispose(func() {}).WithDispose(nil)
	hdr := b.Header()

	if hdr.Flags.Has(abi.FlagHasCopyDispose) {
		t.Error("FlagHasCopyDispose still set after clearing cleanup")
	}
	if hdr.Descriptor.Copy != nil || hdr.Descriptor.Dispose != nil {
		t.Error("descriptor helpers still set after clearing cleanup")
	}
}

func TestGenericViewSharesAddress(t *testing.T) {
	b := New1(func(x int) int { return x })
	blk := b.Block()

	if unsafe.Pointer(blk) != unsafe.Pointer(b) {
		t.Error("generic view must alias the concrete block")
	}
	if blk.Header().Invoke != b.Header().Invoke {
		t.Error("generic view sees a different header")
	}
}

func TestClone(t *testing.T) {
	n := 0
	b := New0(func() int { n++; return n }).WithDispose(func() {})

	c := b.Clone()
	if c == b {
		t.Fatal("clone must be a fresh object")
	}
	if c.Header().Invoke != b.Header().Invoke {
		t.Error("clone must reuse the trampoline pointer")
	}
	if !c.Header().Flags.Has(abi.FlagHasCopyDispose) {
		t.Error("clone lost the cleanup flag")
	}
	if c.Header().Descriptor == b.Header().Descriptor {
		t.Error("clone must get its own descriptor")
	}

	// Both blocks forward to the same captured state.
	Invoke0[int](b.Block())
	if got := Invoke0[int](c.Block()); got != 2 {
		t.Errorf("clone invocation = %d, want 2", got)
	}
}
