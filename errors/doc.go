// Package errors provides structured error types for the objc-abi library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category) and only arise at the runtime boundary: encoding
// matching is a total boolean function and block construction is checked
// at compile time, so neither has an error path.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCopy, errors.KindNotInstalled).
//		Detail("no block runtime installed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotInstalled(errors.PhaseCopy)
//	err := errors.OverRelease(addr)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
