package collection

import "deepcopier/shape"

// Set is an unordered collection of unique elements.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet creates a set holding items.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	s.Add(items...)

	return s
}

// Add puts items into the set, ignoring the ones already present.
func (s *Set[T]) Add(items ...T) {
	if s.items == nil {
		s.items = make(map[T]struct{}, len(items))
	}

	for _, v := range items {
		s.items[v] = struct{}{}
	}
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Remove deletes v from the set.
func (s *Set[T]) Remove(v T) {
	delete(s.items, v)
}

func (s *Set[T]) Len() int { return len(s.items) }

func (s *Set[T]) Category() shape.Category { return shape.CategoryUnordered }

func (s *Set[T]) Each(fn func(elem any) bool) {
	for v := range s.items {
		if !fn(v) {
			return
		}
	}
}

func (s *Set[T]) Insert(elem any) error {
	v, err := asElem[T](elem)
	if err != nil {
		return err
	}

	s.Add(v)
	return nil
}

func (s *Set[T]) Spawn() any { return NewSet[T]() }

// LinkedSet is a set of unique elements that iterates in insertion order.
type LinkedSet[T comparable] struct {
	index map[T]int
	order []T
}

// NewLinkedSet creates a linked set holding items in first-seen order.
func NewLinkedSet[T comparable](items ...T) *LinkedSet[T] {
	s := &LinkedSet[T]{index: make(map[T]int, len(items))}
	s.Add(items...)

	return s
}

// Add appends items that are not in the set yet.
func (s *LinkedSet[T]) Add(items ...T) {
	if s.index == nil {
		s.index = make(map[T]int, len(items))
	}

	for _, v := range items {
		if _, ok := s.index[v]; ok {
			continue
		}

		s.index[v] = len(s.order)
		s.order = append(s.order, v)
	}
}

// Contains reports whether v is in the set.
func (s *LinkedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Values returns the elements in insertion order.
func (s *LinkedSet[T]) Values() []T {
	return append([]T(nil), s.order...)
}

func (s *LinkedSet[T]) Len() int { return len(s.order) }

func (s *LinkedSet[T]) Category() shape.Category { return shape.CategoryOrdered }

func (s *LinkedSet[T]) Each(fn func(elem any) bool) {
	for _, v := range s.order {
		if !fn(v) {
			return
		}
	}
}

func (s *LinkedSet[T]) Insert(elem any) error {
	v, err := asElem[T](elem)
	if err != nil {
		return err
	}

	s.Add(v)
	return nil
}

func (s *LinkedSet[T]) Spawn() any { return NewLinkedSet[T]() }
