// Package objcabi provides a strongly-typed representation of Objective-C
// runtime type encodings and ABI-compatible block (closure) objects.
//
// The Objective-C compiler describes types as compact strings ("i" for int,
// "{CGPoint=dd}" for a struct of two doubles) and the runtime hands these
// strings back through introspection APIs. This library models the encodings
// as a recursive Go value tree and can check, without allocating, whether a
// runtime-supplied string denotes a given tree. It also builds block objects
// whose leading bytes exactly match the header layout the Blocks runtime
// expects, so a Go closure can be handed to code that invokes, copies and
// releases blocks.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	objcabi/             Root package with the BlockRuntime interface
//	├── encoding/        Type-encoding model, canonical strings, string matcher
//	├── abi/             Raw block header, flags and descriptor layouts
//	├── block/           Concrete block construction, trampolines, heap promotion
//	├── blockrt/         Runtime surface: installation, logging, in-Go simulator
//	├── errors/          Structured error types for runtime-boundary failures
//	└── cmd/encmatch/    CLI for checking encoding strings against known shapes
//
// # Quick Start
//
// Describe a type and check a runtime string against it:
//
//	point := encoding.Struct{Name: "CGPoint", Fields: []encoding.Encoding{
//		encoding.Double, encoding.Double,
//	}}
//	encoding.Matches("{CGPoint=dd}", point)                         // true
//	encoding.Matches("r^{CGPoint=dd}", encoding.Pointer{Elem: point}) // true
//
// Build a block and promote it to the heap:
//
//	blockrt.Install(blockrt.NewSimulator())
//
//	b := block.New2(func(x, y int32) int32 { return x + y })
//	heap, err := b.Copy()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer heap.Release()
//
//	sum := block.Invoke2[int32, int32, int32](heap.Block(), 3, 4) // 7
//
// # Trust Model
//
// The block header and trampoline signatures are unchecked contracts with
// the foreign runtime: the runtime must invoke the stored function pointer
// with the block's own address followed by the exact argument types the
// block was built with. Violating that contract is undefined behavior, not
// a reported error. The matcher, by contrast, is a total function over
// arbitrary input strings.
package objcabi
