package block

import "github.com/wippyai/objc-abi/abi"

// One construction path per supported arity, 0 through 12. Each NewN pins a
// dedicated trampoline that unpacks the stored closure and forwards the
// call; the matching InvokeN re-imposes the trampoline's signature on a
// generic *Block. The runtime calls the stored trampoline with the block's
// own address followed by the declared arguments — InvokeN does the same
// from Go. Argument and return types must be representable to the foreign
// ABI (describable with the encoding package).

// New0 wraps a zero-argument function in a stack block.
func New0[R any](fn func() R) *ConcreteBlock[func() R] {
	return withInvoke(abi.EraseFunc(invoke0[R]), fn)
}

func invoke0[R any](b *ConcreteBlock[func() R]) R {
	return b.closure()
}

// Invoke0 calls a zero-argument block through its generic view.
func Invoke0[R any](b *Block) R {
	return abi.RecoverFunc[func(*Block) R](b.header.Invoke)(b)
}

// New1 wraps a one-argument function in a stack block.
func New1[A1, R any](fn func(A1) R) *ConcreteBlock[func(A1) R] {
	return withInvoke(abi.EraseFunc(invoke1[A1, R]), fn)
}

func invoke1[A1, R any](b *ConcreteBlock[func(A1) R], a1 A1) R {
	return b.closure(a1)
}

// Invoke1 calls a one-argument block through its generic view.
func Invoke1[A1, R any](b *Block, a1 A1) R {
	return abi.RecoverFunc[func(*Block, A1) R](b.header.Invoke)(b, a1)
}

// New2 wraps a two-argument function in a stack block.
func New2[A1, A2, R any](fn func(A1, A2) R) *ConcreteBlock[func(A1, A2) R] {
	return withInvoke(abi.EraseFunc(invoke2[A1, A2, R]), fn)
}

func invoke2[A1, A2, R any](b *ConcreteBlock[func(A1, A2) R], a1 A1, a2 A2) R {
	return b.closure(a1, a2)
}

// Invoke2 calls a two-argument block through its generic view.
func Invoke2[A1, A2, R any](b *Block, a1 A1, a2 A2) R {
	return abi.RecoverFunc[func(*Block, A1, A2) R](b.header.Invoke)(b, a1, a2)
}

// New3 wraps a three-argument function in a stack block.
func New3[A1, A2, A3, R any](fn func(A1, A2, A3) R) *ConcreteBlock[func(A1, A2, A3) R] {
	return withInvoke(abi.EraseFunc(invoke3[A1, A2, A3, R]), fn)
}

func invoke3[A1, A2, A3, R any](b *ConcreteBlock[func(A1, A2, A3) R], a1 A1, a2 A2, a3 A3) R {
	return b.closure(a1, a2, a3)
}

// Invoke3 calls a three-argument block through its generic view.
func Invoke3[A1, A2, A3, R any](b *Block, a1 A1, a2 A2, a3 A3) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3) R](b.header.Invoke)(b, a1, a2, a3)
}

// New4 wraps a four-argument function in a stack block.
func New4[A1, A2, A3, A4, R any](fn func(A1, A2, A3, A4) R) *ConcreteBlock[func(A1, A2, A3, A4) R] {
	return withInvoke(abi.EraseFunc(invoke4[A1, A2, A3, A4, R]), fn)
}

func invoke4[A1, A2, A3, A4, R any](b *ConcreteBlock[func(A1, A2, A3, A4) R], a1 A1, a2 A2, a3 A3, a4 A4) R {
	return b.closure(a1, a2, a3, a4)
}

// Invoke4 calls a four-argument block through its generic view.
func Invoke4[A1, A2, A3, A4, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4) R](b.header.Invoke)(b, a1, a2, a3, a4)
}

// New5 wraps a five-argument function in a stack block.
func New5[A1, A2, A3, A4, A5, R any](fn func(A1, A2, A3, A4, A5) R) *ConcreteBlock[func(A1, A2, A3, A4, A5) R] {
	return withInvoke(abi.EraseFunc(invoke5[A1, A2, A3, A4, A5, R]), fn)
}

func invoke5[A1, A2, A3, A4, A5, R any](b *ConcreteBlock[func(A1, A2, A3, A4, A5) R], a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) R {
	return b.closure(a1, a2, a3, a4, a5)
}

// Invoke5 calls a five-argument block through its generic view.
func Invoke5[A1, A2, A3, A4, A5, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4, A5) R](b.header.Invoke)(b, a1, a2, a3, a4, a5)
}

// New6 wraps a six-argument function in a stack block.
func New6[A1, A2, A3, A4, A5, A6, R any](fn func(A1, A2, A3, A4, A5, A6) R) *ConcreteBlock[func(A1, A2, A3, A4, A5, A6) R] {
	return withInvoke(abi.EraseFunc(invoke6[A1, A2, A3, A4, A5, A6, R]), fn)
}

func invoke6[A1, A2, A3, A4, A5, A6, R any](b *ConcreteBlock[func(A1, A2, A3, A4, A5, A6) R], a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) R {
	return b.closure(a1, a2, a3, a4, a5, a6)
}

// Invoke6 calls a six-argument block through its generic view.
func Invoke6[A1, A2, A3, A4, A5, A6, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4, A5, A6) R](b.header.Invoke)(b, a1, a2, a3, a4, a5, a6)
}

// New7 wraps a seven-argument function in a stack block.
func New7[A1, A2, A3, A4, A5, A6, A7, R any](fn func(A1, A2, A3, A4, A5, A6, A7) R) *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7) R] {
	return withInvoke(abi.EraseFunc(invoke7[A1, A2, A3, A4, A5, A6, A7, R]), fn)
}

func invoke7[A1, A2, A3, A4, A5, A6, A7, R any](b *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7) R], a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) R {
	return b.closure(a1, a2, a3, a4, a5, a6, a7)
}

// Invoke7 calls a seven-argument block through its generic view.
func Invoke7[A1, A2, A3, A4, A5, A6, A7, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4, A5, A6, A7) R](b.header.Invoke)(b, a1, a2, a3, a4, a5, a6, a7)
}

// New8 wraps an eight-argument function in a stack block.
func New8[A1, A2, A3, A4, A5, A6, A7, A8, R any](fn func(A1, A2, A3, A4, A5, A6, A7, A8) R) *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8) R] {
	return withInvoke(abi.EraseFunc(invoke8[A1, A2, A3, A4, A5, A6, A7, A8, R]), fn)
}

func invoke8[A1, A2, A3, A4, A5, A6, A7, A8, R any](b *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8) R], a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) R {
	return b.closure(a1, a2, a3, a4, a5, a6, a7, a8)
}

// Invoke8 calls an eight-argument block through its generic view.
func Invoke8[A1, A2, A3, A4, A5, A6, A7, A8, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4, A5, A6, A7, A8) R](b.header.Invoke)(b, a1, a2, a3, a4, a5, a6, a7, a8)
}

// New9 wraps a nine-argument function in a stack block.
func New9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R any](fn func(A1, A2, A3, A4, A5, A6, A7, A8, A9) R) *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8, A9) R] {
	return withInvoke(abi.EraseFunc(invoke9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R]), fn)
}

func invoke9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R any](b *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8, A9) R], a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9) R {
	return b.closure(a1, a2, a3, a4, a5, a6, a7, a8, a9)
}

// Invoke9 calls a nine-argument block through its generic view.
func Invoke9[A1, A2, A3, A4, A5, A6, A7, A8, A9, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4, A5, A6, A7, A8, A9) R](b.header.Invoke)(b, a1, a2, a3, a4, a5, a6, a7, a8, a9)
}

// New10 wraps a ten-argument function in a stack block.
func New10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R any](fn func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10) R) *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10) R] {
	return withInvoke(abi.EraseFunc(invoke10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R]), fn)
}

func invoke10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R any](b *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10) R], a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10) R {
	return b.closure(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10)
}

// Invoke10 calls a ten-argument block through its generic view.
func Invoke10[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10) R](b.header.Invoke)(b, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10)
}

// New11 wraps an eleven-argument function in a stack block.
func New11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R any](fn func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11) R) *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11) R] {
	return withInvoke(abi.EraseFunc(invoke11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R]), fn)
}

func invoke11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R any](b *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11) R], a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11) R {
	return b.closure(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11)
}

// Invoke11 calls an eleven-argument block through its generic view.
func Invoke11[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11) R](b.header.Invoke)(b, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11)
}

// New12 wraps a twelve-argument function in a stack block.
func New12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R any](fn func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12) R) *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12) R] {
	return withInvoke(abi.EraseFunc(invoke12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R]), fn)
}

func invoke12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R any](b *ConcreteBlock[func(A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12) R], a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11, a12 A12) R {
	return b.closure(a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12)
}

// Invoke12 calls a twelve-argument block through its generic view.
func Invoke12[A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12, R any](b *Block, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6, a7 A7, a8 A8, a9 A9, a10 A10, a11 A11, a12 A12) R {
	return abi.RecoverFunc[func(*Block, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11, A12) R](b.header.Invoke)(b, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12)
}
