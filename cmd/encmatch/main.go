// Command encmatch checks Objective-C type-encoding strings against a
// catalog of well-known type shapes.
//
// Usage:
//
//	encmatch -enc '{CGPoint=dd}'     check one string
//	encmatch -list                   print the catalog
//	encmatch -i                      interactive mode
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/objc-abi/encoding"
)

func main() {
	var (
		enc         = flag.String("enc", "", "Encoding string to check")
		list        = flag.Bool("list", false, "List known type shapes and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *list {
		printCatalog()
		return
	}

	if *enc == "" {
		fmt.Fprintln(os.Stderr, "Usage: encmatch -enc <string>")
		fmt.Fprintln(os.Stderr, "       encmatch -list")
		fmt.Fprintln(os.Stderr, "       encmatch -i  (interactive mode)")
		os.Exit(1)
	}

	if !check(*enc) {
		os.Exit(1)
	}
}

func printCatalog() {
	for _, e := range catalog {
		fmt.Printf("%-20s %s\n", e.name, encoding.String(e.enc))
	}
}

// check prints what the string denotes; returns false when nothing in the
// catalog matches.
func check(s string) bool {
	stripped := strings.TrimLeft(s, encoding.Qualifiers)
	if stripped != s {
		fmt.Printf("qualifiers: %s\n", s[:len(s)-len(stripped)])
	}

	matches := matchesOf(s)
	if len(matches) == 0 {
		fmt.Printf("%s: no known type shape\n", s)
		return false
	}
	for _, m := range matches {
		fmt.Printf("%s: %s\n", s, m.name)
	}
	return true
}

// isTTY reports whether stdout is a terminal; the interactive mode
// refuses to start without one.
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
