package copier

import (
	"fmt"
	"reflect"

	"deepcopier/diagnostic"
	"deepcopier/options"
	"deepcopier/shape"
)

// Container is implemented by collection types that are rebuilt by inserting
// copied elements into a fresh container rather than copied field by field.
// Only pointer types are recognized as containers.
type Container interface {
	Category() shape.Category
	Len() int
	Each(fn func(elem any) bool)
}

// Inserter is a Container that accepts new elements.
type Inserter interface {
	Container
	Insert(elem any) error
}

// Spawner is implemented by containers that can create an empty container of
// their own concrete type.
type Spawner interface {
	Spawn() any
}

var containerType = reflect.TypeOf((*Container)(nil)).Elem()

func isContainer(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr && t.Implements(containerType)
}

// newContainer resolves the replacement for src: a factory registered for
// its exact type, then the container itself, then the category default.
func (s *session) newContainer(src Container, t reflect.Type) (Inserter, bool, error) {
	if factory, ok := s.c.registry.containerFactory(t); ok {
		if target := factory(); target != nil {
			return target, false, nil
		}
	}

	if sp, ok := src.(Spawner); ok {
		if target, ok := sp.Spawn().(Inserter); ok && target != nil {
			return target, false, nil
		}
	}

	if s.c.features.Has(options.FeatureContainerFallback) {
		if factory, ok := s.c.registry.defaultContainer(src.Category()); ok {
			if target := factory(); target != nil {
				return target, true, nil
			}
		}
	}

	return nil, false, fmt.Errorf("no replacement for %s container %s", src.Category(), t)
}

// copyContainer rebuilds the container src and returns a value assignable to want.
func (s *session) copyContainer(src reflect.Value, want reflect.Type) (reflect.Value, error) {
	if src.IsNil() {
		return reflect.Zero(src.Type()), nil
	}

	if cached, ok := s.cache.Lookup(src); ok {
		if !cached.Type().AssignableTo(want) {
			return reflect.Value{}, s.fail(ErrUnsupportedContainer, src.Type(),
				fmt.Errorf("replacement %s does not fit %s", cached.Type(), want))
		}
		return cached, nil
	}

	c := src.Interface().(Container)

	target, fallback, err := s.newContainer(c, src.Type())
	if err != nil {
		return reflect.Value{}, s.fail(ErrUnsupportedContainer, src.Type(), err)
	}

	out := reflect.ValueOf(target)
	if !out.Type().AssignableTo(want) {
		return reflect.Value{}, s.fail(ErrUnsupportedContainer, src.Type(),
			fmt.Errorf("replacement %s does not fit %s", out.Type(), want))
	}

	if fallback {
		s.report.AddWarning(diagnostic.CodeContainerFallback,
			fmt.Sprintf("%s replaced with %s", src.Type(), out.Type()),
			src.Type().String(), s.path.String())
	}

	// register before population so a container holding itself terminates
	s.cache.Register(src, out)

	i := 0
	c.Each(func(elem any) bool {
		s.path.push(indexSegment(i))
		defer s.path.pop()
		i++

		var v any
		if v, err = s.copyAny(elem); err != nil {
			return false
		}

		if err = insert(target, v); err != nil {
			err = s.fail(ErrUnsupportedContainer, out.Type(), err)
			return false
		}

		return true
	})

	if err != nil {
		return reflect.Value{}, err
	}

	return out, nil
}

// insert adds elem to target, turning a panic (an unhashable set element,
// for one) into an error.
func insert(target Inserter, elem any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("insert into %T panicked: %v", target, r)
		}
	}()

	return target.Insert(elem)
}

// copyAny deep-copies an untyped element handed out by Container.Each.
func (s *session) copyAny(elem any) (any, error) {
	if elem == nil {
		return nil, nil
	}

	src := reflect.ValueOf(elem)
	dst := reflect.New(src.Type()).Elem()
	if err := s.assign(dst, src); err != nil {
		return nil, err
	}

	return dst.Interface(), nil
}
