package copier

import (
	"reflect"
)

// copyBoxed allocates a new box holding the same number. The source box is
// never reused.
func (s *session) copyBoxed(dst, src reflect.Value) error {
	box := reflect.New(src.Type().Elem())
	box.Elem().Set(exposed(src.Elem()))

	s.cache.Register(src, box)
	dst.Set(box)

	return nil
}

// copyPointer copies the pointee into a new allocation. Struct pointees go
// through the aggregate constructor so registered initializers are honoured.
func (s *session) copyPointer(dst, src reflect.Value) error {
	elem := src.Type().Elem()

	if elem.Kind() == reflect.Struct {
		ptr, err := s.instantiate(elem, src.Elem())
		if err != nil {
			return err
		}

		// register before population so self references resolve to ptr
		s.cache.Register(src, ptr)
		s.registerInterior(ptr.Elem(), src.Elem())
		dst.Set(ptr)

		return s.populate(ptr.Elem(), src.Elem())
	}

	ptr := reflect.New(elem)
	s.cache.Register(src, ptr)
	s.registerInterior(ptr.Elem(), src.Elem())
	dst.Set(ptr)

	return s.assign(ptr.Elem(), src.Elem())
}

// copyInterface copies the dynamic value held by src and stores it in dst.
func (s *session) copyInterface(dst, src reflect.Value) error {
	elem := src.Elem()

	// a typed nil keeps its dynamic type
	if isAbsent(elem) {
		dst.Set(elem)
		return nil
	}

	if isContainer(elem.Type()) {
		out, err := s.copyContainer(elem, dst.Type())
		if err != nil {
			return err
		}

		dst.Set(out)
		return nil
	}

	slot := reflect.New(elem.Type()).Elem()
	if err := s.assign(slot, elem); err != nil {
		return err
	}

	dst.Set(slot)

	return nil
}
