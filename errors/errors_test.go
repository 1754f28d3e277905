package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(PhaseRelease, KindOverRelease).
		Block(0xdeadbeef).
		Detail("refcount already zero").
		Build()

	msg := err.Error()
	for _, want := range []string{"[release]", "over_release", "0xdeadbeef", "refcount already zero"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestErrorIsMatchesPhaseAndKind(t *testing.T) {
	err := NotInstalled(PhaseCopy)

	if !stderrors.Is(err, &Error{Phase: PhaseCopy, Kind: KindNotInstalled}) {
		t.Error("expected Is to match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseRelease, Kind: KindNotInstalled}) {
		t.Error("expected Is to reject a different phase")
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("out of memory")
	err := CopyFailed(cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), "out of memory") {
		t.Errorf("cause missing from message: %q", err.Error())
	}
}

func TestDetailFormatting(t *testing.T) {
	err := New(PhaseRetain, KindUnknownBlock).Detail("count=%d", 3).Build()
	if err.Detail != "count=3" {
		t.Errorf("Detail = %q, want %q", err.Detail, "count=3")
	}
}
