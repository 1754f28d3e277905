// Package blockrt manages the process-wide Blocks runtime this library
// hands block objects to.
//
// A runtime is any objcabi.BlockRuntime implementation. On Apple targets
// that would be a thin binding over _Block_copy/_Block_release (outside
// this module); everywhere else, or under test, Simulator reproduces the
// runtime's observable behavior on the Go heap: it byte-moves promoted
// blocks, maintains reference counts and invokes the descriptor's copy and
// dispose helpers at the documented points.
//
// Install the runtime once, before the first heap promotion:
//
//	blockrt.Install(blockrt.NewSimulator())
package blockrt
