package copier

import (
	"reflect"
)

// copyMap builds a new map in which every key and every value is a deep copy.
func (s *session) copyMap(dst, src reflect.Value) error {
	t := src.Type()
	out := reflect.MakeMapWithSize(t, src.Len())

	// register before population so a map holding itself terminates
	s.cache.Register(src, out)
	dst.Set(out)

	key := reflect.New(t.Key()).Elem()
	val := reflect.New(t.Elem()).Elem()

	iter := src.MapRange()
	for iter.Next() {
		k, v := iter.Key(), iter.Value()

		s.path.push(keySegment(k))

		if err := s.assign(key, k); err != nil {
			return err
		}

		if err := s.assign(val, v); err != nil {
			return err
		}

		out.SetMapIndex(key, val)
		s.path.pop()
	}

	return nil
}
