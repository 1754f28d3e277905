// Package block constructs closure objects the Blocks runtime can invoke,
// copy and release.
//
// New0 through New12 wrap a Go function of the matching arity in a
// ConcreteBlock: a single allocation unit whose leading bytes are exactly
// the header layout the runtime expects (see the abi package), followed by
// the stored closure. Each constructor generates a dedicated trampoline
// that unpacks the closure from the block's own address and forwards the
// call; the trampoline is stored signature-erased in the header and
// re-typed only where the runtime actually calls it.
//
// Copy promotes a stack block to runtime-managed heap storage. The runtime
// performs a flat byte move and owns the copy's lifetime from then on; the
// original must not be used afterwards, and any cleanup attached with
// WithDispose runs exactly once, when the heap copy's refcount reaches
// zero. Payloads that would need a deep copy during promotion are
// unsupported: the copy helper is a no-op because the runtime has already
// moved the bytes.
package block
