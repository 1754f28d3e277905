package encoding

import "strings"

// Qualifiers are annotation characters the compiler may prepend to an
// encoding: const, in, inout, out, bycopy, byref, oneway. They carry no
// structural meaning and are ignored during matching.
const Qualifiers = "rnNoORV"

// Matches reports whether s exactly denotes enc. Leading qualifier
// characters are stripped in any quantity and order; after that the whole
// of s must be consumed by the structural prefix for enc, with nothing left
// over. There is no partial matching and no backtracking, and the function
// never allocates.
func Matches(s string, enc Encoding) bool {
	s = strings.TrimLeft(s, Qualifiers)
	rest, ok := trimEncoding(s, enc)
	return ok && rest == ""
}

// trimEncoding strips the code for enc from the front of s, returning the
// remainder. Any mismatch fails the whole match.
func trimEncoding(s string, enc Encoding) (string, bool) {
	switch e := enc.(type) {
	case Primitive:
		return strings.CutPrefix(s, string(e))

	case BitField:
		s, ok := strings.CutPrefix(s, "b")
		if !ok {
			return "", false
		}
		return trimUint(s, e.Bits)

	case Pointer:
		s, ok := strings.CutPrefix(s, "^")
		if !ok {
			return "", false
		}
		return trimEncoding(s, e.Elem)

	case Array:
		s, ok := strings.CutPrefix(s, "[")
		if !ok {
			return "", false
		}
		if s, ok = trimUint(s, e.Len); !ok {
			return "", false
		}
		if s, ok = trimEncoding(s, e.Elem); !ok {
			return "", false
		}
		return strings.CutPrefix(s, "]")

	case Struct:
		s, ok := strings.CutPrefix(s, "{")
		if !ok {
			return "", false
		}
		if s, ok = strings.CutPrefix(s, e.Name); !ok {
			return "", false
		}
		if s, ok = strings.CutPrefix(s, "="); !ok {
			return "", false
		}
		for _, f := range e.Fields {
			if s, ok = trimEncoding(s, f); !ok {
				return "", false
			}
		}
		return strings.CutPrefix(s, "}")

	case Union:
		s, ok := strings.CutPrefix(s, "(")
		if !ok {
			return "", false
		}
		if s, ok = strings.CutPrefix(s, e.Name); !ok {
			return "", false
		}
		if s, ok = strings.CutPrefix(s, "="); !ok {
			return "", false
		}
		for _, m := range e.Members {
			if s, ok = trimEncoding(s, m); !ok {
				return "", false
			}
		}
		return strings.CutPrefix(s, ")")
	}

	return "", false
}

// trimUint strips the maximal run of ASCII decimal digits from the front of
// s and requires its value to equal want. An empty run or overflow fails;
// signs never parse.
func trimUint(s string, want uint64) (string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", false
	}
	var n uint64
	for j := 0; j < i; j++ {
		d := uint64(s[j] - '0')
		if n > (^uint64(0)-d)/10 {
			return "", false
		}
		n = n*10 + d
	}
	if n != want {
		return "", false
	}
	return s[i:], true
}
