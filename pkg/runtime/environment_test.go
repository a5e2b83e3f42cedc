package runtime

import (
	"errors"
	"testing"
)

func TestDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NumberValue{Val: 1})
	val, err := env.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num, ok := val.(NumberValue); !ok || num.Val != 1 {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestDefineOverwritesWithoutError(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", NumberValue{Val: 1})
	env.Define("x", StringValue{Val: "two"})
	val, _ := env.Get("x")
	if str, ok := val.(StringValue); !ok || str.Val != "two" {
		t.Fatalf("redeclare should overwrite, got %#v", val)
	}
}

func TestGetWalksParentChain(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", NumberValue{Val: 1})
	child := global.Extend().Extend()
	val, err := child.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num := val.(NumberValue); num.Val != 1 {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestGetUndefinedFails(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get("missing")
	var rtErr *Error
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if rtErr.Message != "undefined variable 'missing'" {
		t.Fatalf("unexpected message %q", rtErr.Message)
	}
}

func TestAssignMutatesNearestBinding(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", NumberValue{Val: 1})
	inner := global.Extend()
	inner.Define("x", NumberValue{Val: 10})
	if err := inner.Assign("x", NumberValue{Val: 20}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, _ := global.Get("x")
	if outer.(NumberValue).Val != 1 {
		t.Fatalf("assignment leaked into the outer scope: %#v", outer)
	}
	val, _ := inner.Get("x")
	if val.(NumberValue).Val != 20 {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestAssignThroughChain(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", NumberValue{Val: 1})
	child := global.Extend()
	if err := child.Assign("x", NumberValue{Val: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, _ := global.Get("x")
	if val.(NumberValue).Val != 5 {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestAssignUndefinedFails(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign("missing", NilValue{})
	var rtErr *Error
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if rtErr.Message != "cannot assign to undefined variable 'missing'" {
		t.Fatalf("unexpected message %q", rtErr.Message)
	}
}

func TestHasIsScopeChained(t *testing.T) {
	global := NewEnvironment(nil)
	global.Define("x", NilValue{})
	child := global.Extend()
	if !child.Has("x") {
		t.Fatalf("expected chained existence check to find 'x'")
	}
	if child.Has("y") {
		t.Fatalf("did not expect 'y'")
	}
}
