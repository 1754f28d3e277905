//go:build amd64 || arm64 || riscv64 || ppc64le

package abi

import "unsafe"

// The runtime reads the header through its own C definition, so the Go
// layout must line up exactly on 64-bit targets. Each constant below
// compiles only when the subtraction cannot go negative in either
// direction, making the pair an equality assertion.

const (
	_ uintptr = unsafe.Sizeof(Header{}) - 32
	_ uintptr = 32 - unsafe.Sizeof(Header{})

	_ uintptr = unsafe.Offsetof(Header{}.ISA) - 0
	_ uintptr = unsafe.Offsetof(Header{}.Flags) - 8
	_ uintptr = 8 - unsafe.Offsetof(Header{}.Flags)
	_ uintptr = unsafe.Offsetof(Header{}.Reserved) - 12
	_ uintptr = 12 - unsafe.Offsetof(Header{}.Reserved)
	_ uintptr = unsafe.Offsetof(Header{}.Invoke) - 16
	_ uintptr = 16 - unsafe.Offsetof(Header{}.Invoke)
	_ uintptr = unsafe.Offsetof(Header{}.Descriptor) - 24
	_ uintptr = 24 - unsafe.Offsetof(Header{}.Descriptor)

	_ uintptr = unsafe.Sizeof(Descriptor{}) - 32
	_ uintptr = 32 - unsafe.Sizeof(Descriptor{})
	_ uintptr = unsafe.Offsetof(Descriptor{}.Size) - 8
	_ uintptr = 8 - unsafe.Offsetof(Descriptor{}.Size)
	_ uintptr = unsafe.Offsetof(Descriptor{}.Copy) - 16
	_ uintptr = 16 - unsafe.Offsetof(Descriptor{}.Copy)
	_ uintptr = unsafe.Offsetof(Descriptor{}.Dispose) - 24
	_ uintptr = 24 - unsafe.Offsetof(Descriptor{}.Dispose)
)
