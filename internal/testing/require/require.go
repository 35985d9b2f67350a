// Package require contains test helpers that fail the current test
// immediately (unlike testify's assert package, which only records the
// failure and continues). Each helper calls t.Fatal on failure; Equal,
// NotEqual, ErrorIs and Contains delegate the comparison itself to
// testify/assert. Call sites read like testify's own require package
// without pulling in its extra dependency surface.
package require

import (
	"fmt"
	"reflect"

	"github.com/stretchr/testify/assert"
)

// TestingT is the subset of *testing.T these helpers need, allowing them
// to be used from within a benchmark or a fuzz target as well.
type TestingT interface {
	Helper()
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

// NoError fails the test if err is non-nil.
func NoError(t TestingT, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatal(formatFailure(fmt.Sprintf("unexpected error: %v", err), msgAndArgs...))
	}
}

// Error fails the test if err is nil.
func Error(t TestingT, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		t.Fatal(formatFailure("expected an error, but there was none", msgAndArgs...))
	}
}

// EqualError fails the test unless err is non-nil and its message equals
// expected.
func EqualError(t TestingT, err error, expected string, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		t.Fatal(formatFailure("expected an error, but there was none", msgAndArgs...))
		return
	}
	if err.Error() != expected {
		t.Fatal(formatFailure(fmt.Sprintf("expected error %q, but got %q", expected, err.Error()), msgAndArgs...))
	}
}

// ErrorIs fails the test unless errors.Is(err, target).
func ErrorIs(t TestingT, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !assert.ErrorIs(dummyT{}, err, target) {
		t.Fatal(formatFailure(fmt.Sprintf("expected error chain to contain %v, but got %v", target, err), msgAndArgs...))
	}
}

// True fails the test unless value is true.
func True(t TestingT, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !value {
		t.Fatal(formatFailure("expected true, but was false", msgAndArgs...))
	}
}

// False fails the test unless value is false.
func False(t TestingT, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if value {
		t.Fatal(formatFailure("expected false, but was true", msgAndArgs...))
	}
}

// Equal fails the test unless expected and actual are deeply equal.
func Equal(t TestingT, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !assert.ObjectsAreEqual(expected, actual) {
		t.Fatal(formatFailure(fmt.Sprintf("expected %#v, but was %#v", expected, actual), msgAndArgs...))
	}
}

// NotEqual fails the test if expected and actual are deeply equal.
func NotEqual(t TestingT, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if assert.ObjectsAreEqual(expected, actual) {
		t.Fatal(formatFailure(fmt.Sprintf("expected to not equal %#v", actual), msgAndArgs...))
	}
}

// Zero fails the test unless value is the zero value for its type.
func Zero(t TestingT, value interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if value != nil && !reflect.DeepEqual(value, reflect.Zero(reflect.TypeOf(value)).Interface()) {
		t.Fatal(formatFailure(fmt.Sprintf("expected zero value, but was %#v", value), msgAndArgs...))
	}
}

// NotZero fails the test if value is the zero value for its type.
func NotZero(t TestingT, value interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if value == nil || reflect.DeepEqual(value, reflect.Zero(reflect.TypeOf(value)).Interface()) {
		t.Fatal(formatFailure("expected a non-zero value", msgAndArgs...))
	}
}

// Nil fails the test unless value is nil.
func Nil(t TestingT, value interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(value) {
		t.Fatal(formatFailure(fmt.Sprintf("expected nil, but was %#v", value), msgAndArgs...))
	}
}

// NotNil fails the test if value is nil.
func NotNil(t TestingT, value interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(value) {
		t.Fatal(formatFailure("expected a non-nil value", msgAndArgs...))
	}
}

// Contains fails the test unless s contains substr.
func Contains(t TestingT, s, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !assert.Contains(dummyT{}, s, substr) {
		t.Fatal(formatFailure(fmt.Sprintf("expected %q to contain %q", s, substr), msgAndArgs...))
	}
}

// CapturePanic runs fn and returns the recovered panic value as an
// error, or nil if fn didn't panic.
func CapturePanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	fn()
	return
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func formatFailure(msg string, msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return msg
	}
	extra := fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	return msg + ": " + extra
}

// dummyT satisfies assert.TestingT without ever actually failing the
// real test directly; the ErrorIs/Contains wrappers above translate the
// bool their assert call returns into a real t.Fatal via the TestingT
// interface.
type dummyT struct{}

func (dummyT) Errorf(format string, args ...interface{}) {}
