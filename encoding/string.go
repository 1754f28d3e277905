package encoding

import "strconv"

// Append appends the canonical encoding string for enc to dst and returns
// the extended slice. It allocates only when dst lacks capacity.
func Append(dst []byte, enc Encoding) []byte {
	switch e := enc.(type) {
	case Primitive:
		return append(dst, string(e)...)
	case BitField:
		dst = append(dst, 'b')
		return strconv.AppendUint(dst, e.Bits, 10)
	case Pointer:
		dst = append(dst, '^')
		return Append(dst, e.Elem)
	case Array:
		dst = append(dst, '[')
		dst = strconv.AppendUint(dst, e.Len, 10)
		dst = Append(dst, e.Elem)
		return append(dst, ']')
	case Struct:
		dst = append(dst, '{')
		dst = append(dst, e.Name...)
		dst = append(dst, '=')
		for _, f := range e.Fields {
			dst = Append(dst, f)
		}
		return append(dst, '}')
	case Union:
		dst = append(dst, '(')
		dst = append(dst, e.Name...)
		dst = append(dst, '=')
		for _, m := range e.Members {
			dst = Append(dst, m)
		}
		return append(dst, ')')
	}
	return dst
}

// String returns the canonical encoding string for enc.
func String(enc Encoding) string {
	return string(Append(nil, enc))
}
