package copier

import (
	"reflect"

	"deepcopier/shape"
)

// copyArray copies a fixed size array. Arrays of scalars are copied flat,
// any other element type slot by slot.
func (s *session) copyArray(dst, src reflect.Value) error {
	if classify(src.Type().Elem()) == shape.ShapeScalar {
		dst.Set(src)
		return nil
	}

	src = addressable(src)

	for i := range src.Len() {
		s.path.push(indexSegment(i))

		if err := s.assign(dst.Index(i), src.Index(i)); err != nil {
			return err
		}

		s.path.pop()
	}

	return nil
}
