package shape

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=Shape -output=shape_string.go

type Shape int

const (
	_ Shape = iota // skip zero value, use it as a default (unknown) value for Shape

	ShapeScalar      // bool, numbers, strings, enumerants, time.Time: returned as is
	ShapeBoxed       // pointer to a numeric scalar: reallocated
	ShapeSequence    // slice
	ShapeContainer   // user collection rebuilt by insertion
	ShapeMap         // map
	ShapeArray       // fixed size array
	ShapeAggregate   // struct
	ShapePointer     // pointer to anything that is not a number
	ShapeInterface   // interface holding a dynamic value
	ShapeUnsupported // func, chan, unsafe.Pointer

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// IsComposite reports whether values of the shape own child values.
func (s Shape) IsComposite() bool {
	switch s {
	default:
		return false
	case ShapeSequence, ShapeContainer, ShapeMap, ShapeArray, ShapeAggregate:
		return true
	}
}

// IsIndirect reports whether the shape only points at another value.
func (s Shape) IsIndirect() bool {
	switch s {
	default:
		return false
	case ShapeBoxed, ShapePointer, ShapeInterface:
		return true
	}
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// FromReflectType classifies a static type. Containers are recognized by the
// copier, which knows the capability interface, so they never come from here.
func FromReflectType(rtype reflect.Type) Shape {
	if rtype == nil {
		return 0
	}

	// opaque value types treated as immutable leaves
	switch rtype {
	case timeType, durationType:
		return ShapeScalar
	}

	switch rtype.Kind() {
	default:
		return 0

	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return ShapeScalar

	case reflect.Ptr:
		if IsNumber(rtype.Elem().Kind()) {
			return ShapeBoxed
		}
		return ShapePointer

	case reflect.Slice:
		return ShapeSequence

	case reflect.Map:
		return ShapeMap

	case reflect.Array:
		return ShapeArray

	case reflect.Struct:
		return ShapeAggregate

	case reflect.Interface:
		return ShapeInterface

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return ShapeUnsupported
	}
}

// IsNumber reports whether k is an integer, floating-point or complex kind.
func IsNumber(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
}

// IsNilable reports whether a value of kind k may be nil.
func IsNilable(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
}
