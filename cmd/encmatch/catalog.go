package main

import "github.com/wippyai/objc-abi/encoding"

// Known type shapes to check runtime strings against. Encodings are built
// here, never parsed: the library deliberately has no string-to-tree
// parser.

type catalogEntry struct {
	name string
	enc  encoding.Encoding
}

var (
	cgPoint = encoding.Struct{Name: "CGPoint", Fields: []encoding.Encoding{
		encoding.Double, encoding.Double,
	}}
	cgSize = encoding.Struct{Name: "CGSize", Fields: []encoding.Encoding{
		encoding.Double, encoding.Double,
	}}
	cgRect = encoding.Struct{Name: "CGRect", Fields: []encoding.Encoding{
		cgPoint, cgSize,
	}}
	nsRange = encoding.Struct{Name: "_NSRange", Fields: []encoding.Encoding{
		encoding.ULongLong, encoding.ULongLong,
	}}
	cgAffineTransform = encoding.Struct{Name: "CGAffineTransform", Fields: []encoding.Encoding{
		encoding.Double, encoding.Double, encoding.Double,
		encoding.Double, encoding.Double, encoding.Double,
	}}
	nsEdgeInsets = encoding.Struct{Name: "NSEdgeInsets", Fields: []encoding.Encoding{
		encoding.Double, encoding.Double, encoding.Double, encoding.Double,
	}}
)

var catalog = []catalogEntry{
	{"BOOL", encoding.Bool},
	{"CGAffineTransform", cgAffineTransform},
	{"CGFloat", encoding.Double},
	{"CGPoint", cgPoint},
	{"CGRect", cgRect},
	{"CGSize", cgSize},
	{"Class", encoding.Class},
	{"NSEdgeInsets", nsEdgeInsets},
	{"NSInteger", encoding.LongLong},
	{"NSRange", nsRange},
	{"NSUInteger", encoding.ULongLong},
	{"SEL", encoding.Sel},
	{"char *", encoding.CharPtr},
	{"dispatch_block_t", encoding.Block},
	{"double", encoding.Double},
	{"float", encoding.Float},
	{"id", encoding.Object},
	{"id *", encoding.Pointer{Elem: encoding.Object}},
	{"int", encoding.Int},
	{"unsigned int", encoding.UInt},
	{"void", encoding.Void},
	{"void *", encoding.Pointer{Elem: encoding.Void}},
}

// matchesOf returns the catalog entries s denotes.
func matchesOf(s string) []catalogEntry {
	var out []catalogEntry
	for _, e := range catalog {
		if encoding.Matches(s, e.enc) {
			out = append(out, e)
		}
	}
	return out
}
