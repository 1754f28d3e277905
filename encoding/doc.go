// Package encoding models Objective-C runtime type-encoding strings as a
// recursive Go value tree.
//
// Use the Primitive constants and the BitField, Pointer, Array, Struct and
// Union composites to describe a type, String/Append to render the canonical
// encoding string, and Matches to check a runtime-supplied string against a
// known tree. Matching strips leading qualifier characters (const, in, out,
// ...) and requires the rest of the string to be consumed exactly.
//
// The tree is built from compile-time-known type descriptions and never from
// untrusted input, so there is no string-to-tree parser; Matches is the only
// operation that reads foreign strings, and it is a total boolean function.
package encoding
