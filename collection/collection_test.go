package collection_test

import (
	"deepcopier/collection"
	"deepcopier/shape"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleSortedSet() {
	s := collection.NewSortedSet("punch", "kick", "punch", "block")
	fmt.Println(s.Values(), s.Len(), s.Category())
	// Output:
	// [block kick punch] 3 sorted
}

func TestList(t *testing.T) {
	t.Parallel()

	l := collection.NewList("Book_1", "Book_2")
	require.NoError(t, l.Insert("Book_3"))
	assert.Equal(t, []string{"Book_1", "Book_2", "Book_3"}, l.Values())
	assert.Equal(t, shape.CategoryOrdered, l.Category())

	err := l.Insert(42)
	require.ErrorIs(t, err, collection.ErrElementType)

	spawned, ok := l.Spawn().(*collection.List[string])
	require.True(t, ok)
	assert.Zero(t, spawned.Len())
}

func TestList_NilElements(t *testing.T) {
	t.Parallel()

	l := collection.NewList[any]()
	require.NoError(t, l.Insert(nil))
	require.NoError(t, l.Insert("x"))
	assert.Equal(t, []any{nil, "x"}, l.Values())

	p := collection.NewList[*int]()
	require.NoError(t, p.Insert(nil))
	assert.Nil(t, p.Get(0))
}

func TestLinkedSet_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := collection.NewLinkedSet(3, 1, 2, 1, 3)
	require.NoError(t, s.Insert(0))

	var seen []any
	s.Each(func(elem any) bool {
		seen = append(seen, elem)
		return true
	})

	assert.Equal(t, []any{3, 1, 2, 0}, seen)
	assert.Equal(t, []int{3, 1, 2, 0}, s.Values())
	assert.True(t, s.Contains(2))
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := collection.NewSet("a", "b")
	require.NoError(t, s.Insert("a"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, shape.CategoryUnordered, s.Category())

	s.Remove("a")
	assert.False(t, s.Contains("a"))

	var zero collection.Set[int]
	require.NoError(t, zero.Insert(7))
	assert.True(t, zero.Contains(7))
}

func TestSortedSet_EachStopsEarly(t *testing.T) {
	t.Parallel()

	s := collection.NewSortedSet(5, 4, 3, 2, 1)

	var seen []any
	s.Each(func(elem any) bool {
		seen = append(seen, elem)
		return len(seen) < 2
	})

	assert.Equal(t, []any{1, 2}, seen)

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, 1, first)
}
