package encoding

// Objective-C type encodings.
// Grammar reference: https://developer.apple.com/library/archive/documentation/Cocoa/Conceptual/ObjCRuntimeGuide/Articles/ocrtTypeEncodings.html

// Encoding describes the memory shape of a type the Objective-C compiler can
// encode. The set of implementations is closed: the Primitive constants below
// plus BitField, Pointer, Array, Struct and Union.
type Encoding interface {
	isEncoding()
}

// Primitive is a leaf encoding whose value is its canonical code.
type Primitive string

const (
	Char      Primitive = "c"
	Short     Primitive = "s"
	Int       Primitive = "i"
	Long      Primitive = "l"
	LongLong  Primitive = "q"
	UChar     Primitive = "C"
	UShort    Primitive = "S"
	UInt      Primitive = "I"
	ULong     Primitive = "L"
	ULongLong Primitive = "Q"
	Float     Primitive = "f"
	Double    Primitive = "d"
	Bool      Primitive = "B"
	Void      Primitive = "v"
	CharPtr   Primitive = "*"
	Object    Primitive = "@"
	Block     Primitive = "@?"
	Class     Primitive = "#"
	Sel       Primitive = ":"
	Unknown   Primitive = "?"
)

func (Primitive) isEncoding() {}

// BitField is a bitfield of the given width in bits, encoded "b<width>".
type BitField struct {
	Bits uint64
}

func (BitField) isEncoding() {}

// Pointer is a pointer to Elem, encoded "^<elem>".
type Pointer struct {
	Elem Encoding
}

func (Pointer) isEncoding() {}

// Array is a fixed-size array of Len elements, encoded "[<len><elem>]".
type Array struct {
	Elem Encoding
	Len  uint64
}

func (Array) isEncoding() {}

// Struct is a named struct with ordered fields, encoded "{<name>=<fields>}".
// The name is matched byte-for-byte; any UTF-8 text is permitted.
type Struct struct {
	Name   string
	Fields []Encoding
}

func (Struct) isEncoding() {}

// Union is a named union with ordered members, encoded "(<name>=<members>)".
type Union struct {
	Name    string
	Members []Encoding
}

func (Union) isEncoding() {}
