// Package collection provides small generic containers that the copier
// rebuilds by re-inserting copied elements instead of copying their internals.
//
// Every container exposes the same capability surface:
//   - Category reports the ordering guarantee (ordered, unordered, sorted)
//   - Len and Each walk the elements in iteration order
//   - Insert adds an untyped element, checking it against the element type
//   - Spawn returns an empty container of the same concrete type
package collection

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrElementType is returned by Insert when the element does not fit the container.
var ErrElementType = errors.New("element has wrong type for container")

// asElem converts an untyped element to T. A nil element is accepted only
// when T itself can hold nil.
func asElem[T any](elem any) (T, error) {
	if v, ok := elem.(T); ok {
		return v, nil
	}

	var zero T
	if elem == nil {
		t := reflect.TypeFor[T]()
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
	}

	return zero, fmt.Errorf("%w: %T is not %s", ErrElementType, elem, reflect.TypeFor[T]())
}
