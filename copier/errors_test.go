package copier_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepcopier/collection"
	"deepcopier/copier"
	"deepcopier/diagnostic"
	"deepcopier/options"
	"deepcopier/shape"
)

type withFunc struct {
	Name string
	Hook func()
}

type withChan struct {
	Queues map[string]chan int
}

func TestUnsupportedShape(t *testing.T) {
	t.Parallel()

	_, err := copier.DeepCopy(withFunc{Name: "x", Hook: func() {}})
	require.ErrorIs(t, err, copier.ErrUnsupportedShape)

	var cerr *copier.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "copier_test.withFunc.Hook", cerr.Path)
	assert.Equal(t,
		"deep copy of copier_test.withFunc: unsupported shape at copier_test.withFunc.Hook (func())",
		err.Error())

	_, err = copier.DeepCopy(withChan{Queues: map[string]chan int{"jobs": make(chan int)}})
	require.ErrorIs(t, err, copier.ErrUnsupportedShape)
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "copier_test.withChan.Queues[jobs]", cerr.Path)

	// absent values never reach the dispatcher
	_, err = copier.DeepCopy(withFunc{Name: "x"})
	require.NoError(t, err)
}

type account struct {
	ID    int
	Owner string
}

var errNoAccount = errors.New("no such account")

func TestConstructionFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		init  any
		cause error
	}{
		{
			name:  "initializer error",
			init:  func() (*account, error) { return nil, errNoAccount },
			cause: errNoAccount,
		},
		{
			name: "initializer panic",
			init: func() account { panic("boom") },
		},
		{
			name: "nil instance",
			init: func() *account { return nil },
		},
		{
			name: "more parameters than fields",
			init: func(int, string, bool) account { return account{} },
		},
		{
			name: "field does not fit parameter",
			init: func(string, string) account { return account{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := copier.NewRegistry()
			require.NoError(t, reg.RegisterInitializer(tt.init))

			c := copier.New(copier.WithRegistry(reg))
			_, err := copier.CopyWith(c, &account{ID: 1, Owner: "smith"})
			require.ErrorIs(t, err, copier.ErrConstruction)

			if tt.cause != nil {
				require.ErrorIs(t, err, tt.cause)
			}

			assert.NotErrorIs(t, err, copier.ErrFieldAccess)
		})
	}
}

func TestInitializers(t *testing.T) {
	t.Parallel()

	var calls []string

	reg := copier.NewRegistry()
	reg.MustRegisterInitializer(
		func(id int) account {
			calls = append(calls, "one")
			return account{ID: id}
		},
		func(id int, owner string) account {
			calls = append(calls, "two")
			return account{ID: id, Owner: owner + "?"}
		},
		func(owner int, id string) *account {
			calls = append(calls, "two again")
			return &account{}
		},
	)

	c := copier.New(copier.WithRegistry(reg))
	dst, report, err := copier.CopyReport(c, account{ID: 7, Owner: "smith"})
	require.NoError(t, err)

	// richest first, ties in registration order, fields win afterwards
	assert.Equal(t, []string{"two"}, calls)
	assert.Equal(t, account{ID: 7, Owner: "smith"}, dst)
	assert.True(t, report.HasCode(diagnostic.CodePositionalInitializer))

	reg.MustRegisterInitializer(func() account {
		calls = append(calls, "zero")
		return account{}
	})

	calls = nil
	_, report, err = copier.CopyReport(c, account{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, []string{"zero"}, calls)
	assert.False(t, report.HasCode(diagnostic.CodePositionalInitializer))

	calls = nil
	off := copier.New(copier.WithRegistry(reg), copier.WithFeatures(options.FeatureAll.With(options.FeatureInitializers, false)))
	_, err = copier.CopyWith(off, account{ID: 7})
	require.NoError(t, err)
	assert.Empty(t, calls)
}

type secret struct {
	Public  string
	private *int
	hidden  []string
}

func TestFieldAccess(t *testing.T) {
	t.Parallel()

	n := 5
	c := copier.New(copier.WithFeatures(options.FeatureAll.With(options.FeatureUnexported, false)))

	_, err := copier.CopyWith(c, secret{Public: "p", private: &n})
	require.ErrorIs(t, err, copier.ErrFieldAccess)

	var cerr *copier.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "copier_test.secret.private", cerr.Path)

	// unset unexported fields are absent and skipped
	dst, err := copier.CopyWith(c, secret{Public: "p"})
	require.NoError(t, err)
	assert.Equal(t, "p", dst.Public)

	dst, err = copier.DeepCopy(secret{Public: "p", private: &n, hidden: []string{"h"}})
	require.NoError(t, err)
	assert.NotSame(t, &n, dst.private)
	assert.Equal(t, 5, *dst.private)
	assert.Equal(t, []string{"h"}, dst.hidden)
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	type link struct {
		Next *link
	}

	var head *link
	for range 10 {
		head = &link{Next: head}
	}

	_, err := copier.CopyWith(copier.New(copier.WithMaxDepth(3)), head)
	require.ErrorIs(t, err, copier.ErrDepthExceeded)

	_, err = copier.CopyWith(copier.New(copier.WithMaxDepth(10)), head)
	require.NoError(t, err)
}

// bag is a container that cannot spawn a replacement of its own type.
type bag struct {
	category shape.Category
	items    []any
}

func (b *bag) Category() shape.Category { return b.category }
func (b *bag) Len() int                 { return len(b.items) }

func (b *bag) Each(fn func(elem any) bool) {
	for _, it := range b.items {
		if !fn(it) {
			return
		}
	}
}

type holder struct {
	Any  any
	Bag  *bag
	Cont copier.Container
}

func TestUnsupportedContainer(t *testing.T) {
	t.Parallel()

	src := &bag{category: shape.CategoryUnordered, items: []any{1, 2}}

	// sorted containers have no default replacement
	_, err := copier.DeepCopy(holder{Any: &bag{category: shape.CategorySorted, items: []any{1}}})
	require.ErrorIs(t, err, copier.ErrUnsupportedContainer)

	fallback, err := copier.DeepCopy(holder{Any: src})
	require.NoError(t, err)
	assert.IsType(t, &collection.Set[any]{}, fallback.Any)

	reg := copier.NewRegistry()
	reg.RegisterDefaultContainer(shape.CategoryUnordered, func() copier.Inserter {
		return collection.NewSet[int]()
	})

	c := copier.New(copier.WithRegistry(reg))

	// the default replacement does not fit a *bag slot
	_, err = copier.CopyWith(c, holder{Bag: src})
	require.ErrorIs(t, err, copier.ErrUnsupportedContainer)

	dst, report, err := copier.CopyReport(c, holder{Any: src, Cont: src})
	require.NoError(t, err)
	assert.True(t, report.HasCode(diagnostic.CodeContainerFallback))

	set, ok := dst.Any.(*collection.Set[int])
	require.True(t, ok)
	assert.True(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.Same(t, set, dst.Cont, "one replacement per source container")

	// the fallback can be switched off
	strict := copier.New(copier.WithRegistry(reg),
		copier.WithFeatures(options.FeatureAll.With(options.FeatureContainerFallback, false)))
	_, err = copier.CopyWith(strict, holder{Any: src})
	require.ErrorIs(t, err, copier.ErrUnsupportedContainer)
}

func TestRegisteredContainer(t *testing.T) {
	t.Parallel()

	reg := copier.NewRegistry()
	copier.RegisterContainer(reg, func() *collection.List[string] {
		return collection.NewList("header")
	})

	c := copier.New(copier.WithRegistry(reg))
	dst, err := copier.CopyWith(c, collection.NewList("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"header", "a", "b"}, dst.Values())
}

func TestContainerInsertFailure(t *testing.T) {
	t.Parallel()

	reg := copier.NewRegistry()
	reg.RegisterDefaultContainer(shape.CategoryUnordered, func() copier.Inserter {
		return collection.NewSet[string]()
	})

	c := copier.New(copier.WithRegistry(reg))
	_, err := copier.CopyWith(c, holder{Any: &bag{category: shape.CategoryUnordered, items: []any{"a", 1}}})
	require.ErrorIs(t, err, copier.ErrUnsupportedContainer)
	require.ErrorIs(t, err, collection.ErrElementType)

	var cerr *copier.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "copier_test.holder.Any[1]", cerr.Path)

	// unhashable elements cannot go into the default set
	_, err = copier.DeepCopy(holder{Any: &bag{category: shape.CategoryUnordered, items: []any{[]int{1}}}})
	require.ErrorIs(t, err, copier.ErrUnsupportedContainer)
}

func TestPlan(t *testing.T) {
	t.Parallel()

	c := copier.New()

	plan, err := c.Plan(reflect.TypeFor[secret]())
	require.NoError(t, err)
	require.Len(t, plan.Fields, 3)

	assert.Equal(t, "Public", plan.Fields[0].Name)
	assert.True(t, plan.Fields[0].Exported)
	assert.Equal(t, shape.ShapeScalar, plan.Fields[0].Shape)

	assert.Equal(t, "private", plan.Fields[1].Name)
	assert.False(t, plan.Fields[1].Exported)
	assert.Equal(t, shape.ShapeBoxed, plan.Fields[1].Shape)
	assert.True(t, plan.Fields[1].Nilable)

	again, err := c.Plan(reflect.TypeFor[secret]())
	require.NoError(t, err)
	assert.Same(t, plan, again)

	_, err = c.Plan(reflect.TypeFor[int]())
	require.Error(t, err)
}
