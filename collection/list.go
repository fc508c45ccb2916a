package collection

import "deepcopier/shape"

// List is an ordered sequence that allows duplicates.
type List[T any] struct {
	items []T
}

// NewList creates a list holding items in the given order.
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	l.Add(items...)

	return l
}

// Add appends items to the end of the list.
func (l *List[T]) Add(items ...T) {
	l.items = append(l.items, items...)
}

// Get returns the element at index i. It panics when i is out of range.
func (l *List[T]) Get(i int) T {
	return l.items[i]
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) {
	l.items[i] = v
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	return append([]T(nil), l.items...)
}

func (l *List[T]) Len() int { return len(l.items) }

func (l *List[T]) Category() shape.Category { return shape.CategoryOrdered }

func (l *List[T]) Each(fn func(elem any) bool) {
	for _, v := range l.items {
		if !fn(v) {
			return
		}
	}
}

func (l *List[T]) Insert(elem any) error {
	v, err := asElem[T](elem)
	if err != nil {
		return err
	}

	l.items = append(l.items, v)
	return nil
}

func (l *List[T]) Spawn() any { return NewList[T]() }
