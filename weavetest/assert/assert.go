// Package assert holds the assertions shared by the tokenswap tests. Every
// assertion stops the test on failure.
//
// The package depends on the standard library only, so that any package,
// errors and store included, can use it in its own tests.
package assert

import (
	"bytes"
	"reflect"
)

// Tester is the part of testing.TB used by the assertions.
type Tester interface {
	Helper()
	Fatalf(string, ...interface{})
}

// Nil fails unless value is nil or a nil pointer, slice, map, channel,
// function or interface.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of a wrapped error.
		t.Fatalf("want nil, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails unless want and got are deeply equal. Byte slices are shown
// in hex, which is how keys and addresses are usually read.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		return
	}
	wb, wok := want.([]byte)
	gb, gok := got.([]byte)
	if wok && gok {
		if bytes.Equal(wb, gb) {
			// nil and empty slice
			return
		}
		t.Fatalf("bytes not equal\nwant %X\n got %X", wb, gb)
		return
	}
	t.Fatalf("values not equal\nwant %T %v\n got %T %v", want, want, got, got)
}

// Panics fails unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatalf("want a panic")
	}
}

func panics(fn func()) (panicked bool) {
	defer func() {
		panicked = recover() != nil
	}()
	fn()
	return false
}

// IsErr fails unless got is want or want recognizes got through an
// Is(error) bool method, which the errors package implements for wrapped
// errors.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if w, ok := want.(interface{ Is(error) bool }); ok && w.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}
