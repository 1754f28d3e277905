// Package abi pins the binary layout the Blocks runtime expects at the
// start of every block object.
//
// Header reproduces struct Block_layout and Descriptor reproduces
// struct Block_descriptor_1 from the Apple Blocks ABI
// (https://clang.llvm.org/docs/Block-ABI-Apple.html). Field order, widths
// and offsets are fixed independent of whatever closure payload follows the
// header; layout.go asserts them at compile time.
//
// The invoke slot is signature-erased: it stores the address of a Go func
// value via EraseFunc and is re-typed to the precise trampoline signature
// only at the call site, with RecoverFunc. That round trip is an unchecked
// contract — the caller must name the exact type the pointer was erased
// from.
package abi
