package shape_test

import (
	"container/list"
	"deepcopier/shape"
	"fmt"
	"reflect"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(shape.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf("")))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(shape.FromReflectType(reflect.TypeOf(new(int64))))
	fmt.Println(shape.FromReflectType(nil))
	// Output:
	// ShapeScalar
	// ShapeScalar
	// ShapeScalar
	// ShapeScalar
	// ShapeScalar
	// ShapeScalar
	// ShapeAggregate
	// ShapeBoxed
	// Shape(0)
}

func TestFromReflectType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  reflect.Type
		want shape.Shape
	}{
		{"bool", reflect.TypeFor[bool](), shape.ShapeScalar},
		{"complex", reflect.TypeFor[complex128](), shape.ShapeScalar},
		{"boxed float", reflect.TypeFor[*float32](), shape.ShapeBoxed},
		{"boxed duration", reflect.TypeFor[*time.Duration](), shape.ShapeBoxed},
		{"string pointer", reflect.TypeFor[*string](), shape.ShapePointer},
		{"struct pointer", reflect.TypeFor[*list.List](), shape.ShapePointer},
		{"slice", reflect.TypeFor[[]string](), shape.ShapeSequence},
		{"map", reflect.TypeFor[map[string]int](), shape.ShapeMap},
		{"array", reflect.TypeFor[[3]int](), shape.ShapeArray},
		{"interface", reflect.TypeFor[any](), shape.ShapeInterface},
		{"error", reflect.TypeFor[error](), shape.ShapeInterface},
		{"func", reflect.TypeFor[func()](), shape.ShapeUnsupported},
		{"chan", reflect.TypeFor[chan int](), shape.ShapeUnsupported},
		{"unsafe pointer", reflect.TypeFor[unsafe.Pointer](), shape.ShapeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, shape.FromReflectType(tt.typ))
		})
	}
}

func TestShapePredicates(t *testing.T) {
	t.Parallel()

	for s := shape.Shape(1); int(s) < shape.ShapeTotal; s++ {
		assert.False(t, s.IsComposite() && s.IsIndirect(), "%s is both composite and indirect", s)
	}

	assert.True(t, shape.ShapeAggregate.IsComposite())
	assert.True(t, shape.ShapeInterface.IsIndirect())
	assert.False(t, shape.ShapeScalar.IsComposite())
	assert.True(t, shape.IsNilable(reflect.Map))
	assert.False(t, shape.IsNilable(reflect.Struct))
	assert.Equal(t, "sorted", shape.CategorySorted.String())
	assert.Equal(t, "unknown", shape.Category(42).String())
}
