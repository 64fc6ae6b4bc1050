// Package testutil provides shared test utilities for the chess-features project.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-features/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// Any cmp.Option among msgAndArgs is passed to cmp.Diff; the remaining
// values form the failure message.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	opts, rest := splitOptions(msgAndArgs)
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		fail(t, rest, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertSquares fails unless set holds exactly the named squares. want must
// be listed in ascending square order (a1, b1, ..., h8).
func AssertSquares(t *testing.T, set chess.SquareSet, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	got := make([]string, 0, set.Len())
	for _, sq := range set.Squares() {
		got = append(got, sq.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "squares mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected error but got nil")
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, msgAndArgs, "error %v does not wrap %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t *testing.T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "expected false but got true")
	}
}

// AssertNil fails if got is not nil, typed nils included.
func AssertNil(t *testing.T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(got) {
		fail(t, msgAndArgs, "expected nil but got %v", got)
	}
}

// AssertNotNil fails if got is nil, typed nils included.
func AssertNotNil(t *testing.T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(got) {
		fail(t, msgAndArgs, "expected non-nil value but got nil")
	}
}

// fail reports a failure, prefixed by the optional caller message.
func fail(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// splitOptions separates cmp options from message arguments.
func splitOptions(args []interface{}) (cmp.Options, []interface{}) {
	var opts cmp.Options
	var rest []interface{}
	for _, arg := range args {
		if opt, ok := arg.(cmp.Option); ok {
			opts = append(opts, opt)
			continue
		}
		rest = append(rest, arg)
	}
	return opts, rest
}

// isNil checks if a value is nil, handling both untyped and typed nils.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) == 1:
		return fmt.Sprint(msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs[0])
}
