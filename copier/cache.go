package copier

import (
	"reflect"
	"unsafe"
)

// identity is the reference-level key of a value: two values share an
// identity only when they are the same object, never when they are merely equal.
type identity struct {
	typ reflect.Type
	ptr unsafe.Pointer
	len int
}

// identityOf returns the identity of v, or false for values that have none
// (scalars, structs and arrays held by value, nil and empty references).
func identityOf(v reflect.Value) (identity, bool) {
	switch v.Kind() {
	default:
		return identity{}, false

	case reflect.Ptr:
		// pointers to zero-sized values may all share one address
		if v.IsNil() || v.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.UnsafePointer()}, true

	case reflect.Map:
		if v.IsNil() {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.UnsafePointer()}, true

	case reflect.Slice:
		if v.IsNil() || v.Cap() == 0 || v.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.UnsafePointer(), len: v.Len()}, true
	}
}

// Cache maps source identities to their copies for the duration of one
// top-level copy call. Entries are never overwritten, so a second encounter
// of the same source always resolves to the first copy.
type Cache struct {
	entries map[identity]reflect.Value
	hits    int
}

func newCache() *Cache {
	return &Cache{entries: make(map[identity]reflect.Value)}
}

// Lookup returns the copy registered for src.
func (c *Cache) Lookup(src reflect.Value) (reflect.Value, bool) {
	id, ok := identityOf(src)
	if !ok {
		return reflect.Value{}, false
	}

	dst, ok := c.entries[id]
	if ok {
		c.hits++
	}

	return dst, ok
}

// Register records dst as the copy of src. It reports whether a new entry
// was created; an existing entry is kept as is.
func (c *Cache) Register(src, dst reflect.Value) bool {
	id, ok := identityOf(src)
	if !ok {
		return false
	}

	if _, exists := c.entries[id]; exists {
		return false
	}

	c.entries[id] = dst
	return true
}

// Len returns the number of registered identities.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Hits returns how many lookups were answered from the cache.
func (c *Cache) Hits() int {
	return c.hits
}

// Clear drops every entry.
func (c *Cache) Clear() {
	clear(c.entries)
	c.hits = 0
}
