package copier_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepcopier/copier"
)

type point struct{ X, Y int }

func newPoint() point                  { return point{} }
func newPointAt(x, y int) *point       { return &point{X: x, Y: y} }
func loadPoint(string) (*point, error) { return nil, errors.New("not found") }
func doublePoint() **point             { panic("not implemented") }
func notAStruct() int                  { panic("not implemented") }
func variadicPoint(...int) point       { panic("not implemented") }
func wrongSecond(int) (point, bool)    { panic("not implemented") }

func ExampleParseInitializer() {
	in, err := copier.ParseInitializer(newPoint)
	fmt.Println(err, in.PackageAlias, in.Name, in.Arity(), in.ReturnsPointer, in.HasErr)

	in, err = copier.ParseInitializer(newPointAt)
	fmt.Println(err, in.PackageAlias, in.Name, in.Arity(), in.ReturnsPointer, in.HasErr)

	in, err = copier.ParseInitializer(loadPoint)
	fmt.Println(err, in, in.Target, in.Arity(), in.ReturnsPointer, in.HasErr)

	_, err = copier.ParseInitializer(doublePoint)
	fmt.Println(err)

	_, err = copier.ParseInitializer(notAStruct)
	fmt.Println(err)

	_, err = copier.ParseInitializer(variadicPoint)
	fmt.Println(err)

	_, err = copier.ParseInitializer(wrongSecond)
	fmt.Println(err)

	_, err = copier.ParseInitializer(42)
	fmt.Println(err)

	// Output:
	// <nil> copier_test newPoint 0 false false
	// <nil> copier_test newPointAt 2 true false
	// <nil> copier_test.loadPoint copier_test.point 1 true true
	// initializer function does not support double pointers
	// provided function is not a recognizable initializer
	// provided function is not a recognizable initializer
	// provided function is not a recognizable initializer
	// provided initializer is not a function
}

func TestRegistry_Initializers(t *testing.T) {
	t.Parallel()

	reg := copier.NewRegistry()
	reg.MustRegisterInitializer(newPointAt, newPoint)

	inits := reg.Initializers(reflect.TypeFor[point]())
	require.Len(t, inits, 2)
	assert.Equal(t, "newPointAt", inits[0].Name)
	assert.Equal(t, "newPoint", inits[1].Name)

	err := reg.RegisterInitializer(notAStruct)
	require.ErrorIs(t, err, copier.ErrNotAnInitializer)

	assert.Panics(t, func() { reg.MustRegisterInitializer(nil) })
	assert.Empty(t, reg.Initializers(reflect.TypeFor[int]()))
}
