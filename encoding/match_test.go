package encoding

import "testing"

var cgPoint = Struct{Name: "CGPoint", Fields: []Encoding{Double, Double}}

func TestMatchesPrimitives(t *testing.T) {
	tests := []struct {
		name string
		s    string
		enc  Encoding
		want bool
	}{
		{"char", "c", Char, true},
		{"short", "s", Short, true},
		{"int", "i", Int, true},
		{"long", "l", Long, true},
		{"longlong", "q", LongLong, true},
		{"uchar", "C", UChar, true},
		{"ushort", "S", UShort, true},
		{"uint", "I", UInt, true},
		{"ulong", "L", ULong, true},
		{"ulonglong", "Q", ULongLong, true},
		{"float", "f", Float, true},
		{"double", "d", Double, true},
		{"bool", "B", Bool, true},
		{"void", "v", Void, true},
		{"cstring", "*", CharPtr, true},
		{"object", "@", Object, true},
		{"blockptr", "@?", Block, true},
		{"class", "#", Class, true},
		{"sel", ":", Sel, true},
		{"unknown", "?", Unknown, true},
		{"wrong code", "i", Char, false},
		{"empty", "", Int, false},
		{"object is not block", "@?", Object, false},
		{"block is not object", "@", Block, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.s, tt.enc); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestMatchesQualifiers(t *testing.T) {
	tests := []struct {
		name string
		s    string
		enc  Encoding
		want bool
	}{
		{"oneway void", "Vv", Void, true},
		{"const cstring", "r*", CharPtr, true},
		{"every qualifier at once", "rnNoORVi", Int, true},
		{"repeated qualifiers", "rrrrNNi", Int, true},
		{"qualified pointer", "r^i", Pointer{Elem: Int}, true},
		{"qualifiers alone", "rnN", Int, false},
		{"qualifier after code", "ir", Int, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.s, tt.enc); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestMatchesTrailingContent(t *testing.T) {
	encs := []Encoding{
		Int,
		CharPtr,
		BitField{Bits: 8},
		Pointer{Elem: Char},
		Array{Len: 4, Elem: Float},
		cgPoint,
		Union{Name: "U", Members: []Encoding{Char, Int}},
	}

	for _, enc := range encs {
		s := String(enc)
		t.Run(s, func(t *testing.T) {
			if !Matches(s, enc) {
				t.Fatalf("Matches(%q) = false, want true", s)
			}
			for _, suffix := range []string{"x", "i", "}", "c"} {
				if Matches(s+suffix, enc) {
					t.Errorf("Matches(%q) = true, want false", s+suffix)
				}
			}
		})
	}
}

func TestMatchesBitField(t *testing.T) {
	tests := []struct {
		name string
		s    string
		enc  Encoding
		want bool
	}{
		{"exact width", "b32", BitField{Bits: 32}, true},
		{"missing width", "b", BitField{Bits: 32}, false},
		{"wrong width", "b16", BitField{Bits: 32}, false},
		{"negative width", "b-32", BitField{Bits: 32}, false},
		{"plus sign", "b+32", BitField{Bits: 32}, false},
		{"leading zeros accepted", "b032", BitField{Bits: 32}, true},
		{"overflowing digits", "b99999999999999999999999999", BitField{Bits: 32}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.s, tt.enc); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestMatchesPointerAndArray(t *testing.T) {
	tests := []struct {
		name string
		s    string
		enc  Encoding
		want bool
	}{
		{"pointer to int", "^i", Pointer{Elem: Int}, true},
		{"pointer to pointer", "^^i", Pointer{Elem: Pointer{Elem: Int}}, true},
		{"pointer missing elem", "^", Pointer{Elem: Int}, false},
		{"array of chars", "[10c]", Array{Len: 10, Elem: Char}, true},
		{"array wrong len", "[11c]", Array{Len: 10, Elem: Char}, false},
		{"array missing len", "[c]", Array{Len: 10, Elem: Char}, false},
		{"array unterminated", "[10c", Array{Len: 10, Elem: Char}, false},
		{"array of structs", "[2{CGPoint=dd}]", Array{Len: 2, Elem: cgPoint}, true},
		{"pointer to array", "^[3f]", Pointer{Elem: Array{Len: 3, Elem: Float}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.s, tt.enc); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestMatchesStructAndUnion(t *testing.T) {
	nested := Struct{Name: "A", Fields: []Encoding{
		Struct{Name: "B", Fields: []Encoding{Char, Int}},
		Char,
		Int,
	}}

	tests := []struct {
		name string
		s    string
		enc  Encoding
		want bool
	}{
		{"cgpoint", "{CGPoint=dd}", cgPoint, true},
		{"nested", "{A={B=ci}ci}", nested, true},
		{"nested unterminated", "{A={B=ci}ci", nested, false},
		{"nested inner unterminated", "{A={B=cici}", nested, false},
		{"wrong name", "{CGSize=dd}", cgPoint, false},
		{"name prefix only", "{CGPoin=dd}", cgPoint, false},
		{"missing equals", "{CGPointdd}", cgPoint, false},
		{"extra field", "{CGPoint=ddd}", cgPoint, false},
		{"missing field", "{CGPoint=d}", cgPoint, false},
		{"unicode name", "{☃=ci}", Struct{Name: "☃", Fields: []Encoding{Char, Int}}, true},
		{"union", "(U=ci)", Union{Name: "U", Members: []Encoding{Char, Int}}, true},
		{"union with struct delims", "{U=ci}", Union{Name: "U", Members: []Encoding{Char, Int}}, false},
		{"empty struct", "{Empty=}", Struct{Name: "Empty"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.s, tt.enc); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

// Matching must not allocate regardless of nesting depth.
func TestMatchesDoesNotAllocate(t *testing.T) {
	enc := Struct{Name: "A", Fields: []Encoding{
		Pointer{Elem: Array{Len: 16, Elem: cgPoint}},
		BitField{Bits: 7},
		Union{Name: "U", Members: []Encoding{Char, Int}},
	}}
	s := "rN" + String(enc)

	allocs := testing.AllocsPerRun(100, func() {
		if !Matches(s, enc) {
			t.Fatal("expected match")
		}
	})
	if allocs != 0 {
		t.Errorf("Matches allocated %v times per run, want 0", allocs)
	}
}

func FuzzMatches(f *testing.F) {
	f.Add("{CGPoint=dd}")
	f.Add("rN^[8{A=(U=ci)b3}]")
	f.Add("b18446744073709551616")
	f.Add("@?")
	f.Add("")

	targets := []Encoding{
		Int,
		Block,
		BitField{Bits: 32},
		Pointer{Elem: cgPoint},
		Array{Len: 8, Elem: Struct{Name: "A", Fields: []Encoding{
			Union{Name: "U", Members: []Encoding{Char, Int}},
			BitField{Bits: 3},
		}}},
	}

	f.Fuzz(func(t *testing.T, s string) {
		for _, enc := range targets {
			// Must never panic, and the canonical string with qualifiers
			// prepended must keep matching.
			Matches(s, enc)
			if !Matches("rnNoORV"+String(enc), enc) {
				t.Errorf("canonical string for %#v stopped matching", enc)
			}
		}
	})
}
