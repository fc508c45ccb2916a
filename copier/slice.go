package copier

import (
	"reflect"

	"deepcopier/shape"
)

// copySlice builds a new backing array with the same length and capacity.
func (s *session) copySlice(dst, src reflect.Value) error {
	out := reflect.MakeSlice(src.Type(), src.Len(), src.Cap())

	// register before population so a slice holding itself terminates
	s.cache.Register(src, out)
	s.registerInterior(out, src)
	dst.Set(out)

	if classify(src.Type().Elem()) == shape.ShapeScalar {
		reflect.Copy(out, src)
		return nil
	}

	for i := range src.Len() {
		s.path.push(indexSegment(i))

		if err := s.assign(out.Index(i), src.Index(i)); err != nil {
			return err
		}

		s.path.pop()
	}

	return nil
}
