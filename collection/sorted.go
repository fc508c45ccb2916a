package collection

import (
	"cmp"
	"slices"

	"deepcopier/shape"
)

// SortedSet keeps unique elements in ascending order.
type SortedSet[T cmp.Ordered] struct {
	items []T
}

// NewSortedSet creates a sorted set holding items.
func NewSortedSet[T cmp.Ordered](items ...T) *SortedSet[T] {
	s := &SortedSet[T]{}
	s.Add(items...)

	return s
}

// Add inserts items at their sorted position, ignoring duplicates.
func (s *SortedSet[T]) Add(items ...T) {
	for _, v := range items {
		i, found := slices.BinarySearch(s.items, v)
		if found {
			continue
		}

		s.items = slices.Insert(s.items, i, v)
	}
}

// Contains reports whether v is in the set.
func (s *SortedSet[T]) Contains(v T) bool {
	_, found := slices.BinarySearch(s.items, v)
	return found
}

// Values returns the elements in ascending order.
func (s *SortedSet[T]) Values() []T {
	return append([]T(nil), s.items...)
}

// First returns the smallest element.
func (s *SortedSet[T]) First() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[0], true
}

func (s *SortedSet[T]) Len() int { return len(s.items) }

func (s *SortedSet[T]) Category() shape.Category { return shape.CategorySorted }

func (s *SortedSet[T]) Each(fn func(elem any) bool) {
	for _, v := range s.items {
		if !fn(v) {
			return
		}
	}
}

func (s *SortedSet[T]) Insert(elem any) error {
	v, err := asElem[T](elem)
	if err != nil {
		return err
	}

	s.Add(v)
	return nil
}

func (s *SortedSet[T]) Spawn() any { return NewSortedSet[T]() }
