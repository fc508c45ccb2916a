package copier

import (
	"reflect"
	"unsafe"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(errorType)
}

// addressable returns v itself when it is addressable, otherwise an
// addressable copy of it.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}

	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)

	return tmp
}

// exposed returns a view of the addressable value v that is free of the
// read-only flag reflect puts on values reached through unexported fields.
func exposed(v reflect.Value) reflect.Value {
	if v.CanInterface() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// writable is like exposed but for destinations.
func writable(v reflect.Value) reflect.Value {
	if v.CanSet() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// isAbsent reports whether v holds no value: a nil pointer, map, slice,
// interface, func or channel.
func isAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
