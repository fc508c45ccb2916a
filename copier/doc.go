// Package copier produces fully independent deep copies of Go object graphs.
//
// Values are classified by shape (see package shape) and copied by the
// matching strategy: scalars are returned as is, boxed numbers and other
// pointers are reallocated, slices, maps and arrays are rebuilt element by
// element, structs are rebuilt through the aggregate constructor and user
// collections implementing Container are rebuilt by insertion.
//
// Each top-level call owns a cycle cache keyed by identity, so shared
// references in the source stay shared in the copy and cyclic graphs
// terminate. Calls never share a cache and run in parallel.
//
// Struct instances are created by a registered initializer when there is
// one (see Registry.RegisterInitializer), otherwise by their zero value,
// and every present field is then copied over the new instance.
//
// Functions, channels and unsafe pointers cannot be copied and fail with
// ErrUnsupportedShape.
package copier
