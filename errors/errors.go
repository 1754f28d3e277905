package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // block construction
	PhaseCopy      Phase = "copy"      // heap promotion
	PhaseRetain    Phase = "retain"    // refcount increment
	PhaseRelease   Phase = "release"   // refcount decrement / dispose
	PhaseRuntime   Phase = "runtime"   // runtime installation
)

// Kind categorizes the error
type Kind string

const (
	KindNotInstalled Kind = "not_installed"
	KindNilBlock     Kind = "nil_block"
	KindUnknownBlock Kind = "unknown_block"
	KindOverRelease  Kind = "over_release"
	KindCopyFailed   Kind = "copy_failed"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	// Block is the offending block address, when one exists.
	Block uintptr
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Block != 0 {
		fmt.Fprintf(&b, " block=0x%x", e.Block)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Block sets the offending block address
func (b *Builder) Block(addr uintptr) *Builder {
	b.err.Block = addr
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotInstalled indicates an operation needed a block runtime before one
// was installed.
func NotInstalled(phase Phase) *Error {
	return New(phase, KindNotInstalled).
		Detail("no block runtime installed; call blockrt.Install first").
		Build()
}

// NilBlock indicates a nil block address crossed the runtime boundary.
func NilBlock(phase Phase) *Error {
	return New(phase, KindNilBlock).
		Detail("nil block pointer").
		Build()
}

// UnknownBlock indicates an address the runtime never allocated.
func UnknownBlock(phase Phase, addr uintptr) *Error {
	return New(phase, KindUnknownBlock).
		Block(addr).
		Detail("address is not a live heap block").
		Build()
}

// OverRelease indicates a release on a block whose refcount already
// reached zero.
func OverRelease(addr uintptr) *Error {
	return New(PhaseRelease, KindOverRelease).
		Block(addr).
		Detail("refcount already zero").
		Build()
}

// CopyFailed wraps a runtime copy entry point failure.
func CopyFailed(cause error) *Error {
	return New(PhaseCopy, KindCopyFailed).
		Cause(cause).
		Detail("runtime copy entry point failed").
		Build()
}
