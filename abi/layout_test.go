//go:build amd64 || arm64 || riscv64 || ppc64le

package abi

import (
	"testing"
	"unsafe"
)

func TestHeaderIsPlainWords(t *testing.T) {
	// The runtime reinterprets arbitrary block addresses as Header; the
	// struct must stay four machine words plus the flags/reserved pair,
	// with no hidden padding.
	if s := unsafe.Sizeof(Header{}); s != 32 {
		t.Errorf("Sizeof(Header) = %d, want 32", s)
	}
	if s := unsafe.Sizeof(Descriptor{}); s != 32 {
		t.Errorf("Sizeof(Descriptor) = %d, want 32", s)
	}
}

func TestHeaderFieldOffsets(t *testing.T) {
	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"ISA", unsafe.Offsetof(Header{}.ISA), 0},
		{"Flags", unsafe.Offsetof(Header{}.Flags), 8},
		{"Reserved", unsafe.Offsetof(Header{}.Reserved), 12},
		{"Invoke", unsafe.Offsetof(Header{}.Invoke), 16},
		{"Descriptor", unsafe.Offsetof(Header{}.Descriptor), 24},
	}

	for _, o := range offsets {
		if o.got != o.want {
			t.Errorf("Offsetof(Header.%s) = %d, want %d", o.name, o.got, o.want)
		}
	}
}
