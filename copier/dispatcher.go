package copier

import (
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deepcopier/diagnostic"
	"deepcopier/options"
	"deepcopier/shape"
)

// session is the state of one top-level copy call. It is never shared
// between calls, so it needs no locking.
type session struct {
	c      *Copier
	cache  *Cache
	path   trail
	depth  int
	report diagnostic.Report
}

func (c *Copier) newSession(root reflect.Type) *session {
	s := &session{c: c, cache: newCache()}
	s.path.reset(root.String())

	return s
}

// classify returns the shape of the static type t. Pointer types that
// implement Container are containers, whatever they point at.
func classify(t reflect.Type) shape.Shape {
	if isContainer(t) {
		return shape.ShapeContainer
	}

	return shape.FromReflectType(t)
}

func (s *session) fail(kind error, t reflect.Type, cause error) error {
	return &Error{Kind: kind, Path: s.path.String(), Type: t, Err: cause}
}

func (s *session) enter(sh shape.Shape, t reflect.Type) error {
	s.depth++
	if s.depth > s.report.Stats.MaxDepth {
		s.report.Stats.MaxDepth = s.depth
	}

	if limit := s.c.maxDepth; limit > 0 && s.depth > limit {
		return s.fail(ErrDepthExceeded, t, nil)
	}

	s.report.Stats.Visit(sh)

	if ce := s.c.logger.Check(zapcore.DebugLevel, "copy"); ce != nil {
		ce.Write(
			zap.Stringer("shape", sh),
			zap.Stringer("type", t),
			zap.String("path", s.path.String()),
			zap.Int("depth", s.depth),
		)
	}

	return nil
}

func (s *session) leave() {
	s.depth--
}

// assign deep-copies src into dst. dst must be settable and of the same
// type as src. src must not carry the read-only flag of unexported fields.
func (s *session) assign(dst, src reflect.Value) error {
	t := src.Type()

	if isAbsent(src) {
		dst.Set(reflect.Zero(t))
		return nil
	}

	if cached, ok := s.cache.Lookup(src); ok {
		if !cached.Type().AssignableTo(dst.Type()) {
			return s.fail(ErrUnsupportedContainer, t, nil)
		}

		dst.Set(cached)
		return nil
	}

	sh := classify(t)
	if err := s.enter(sh, t); err != nil {
		return err
	}
	defer s.leave()

	switch sh {
	default: // shape.ShapeUnsupported
		return s.fail(ErrUnsupportedShape, t, nil)

	case shape.ShapeScalar:
		dst.Set(src)
		return nil

	case shape.ShapeBoxed:
		return s.copyBoxed(dst, src)

	case shape.ShapeContainer:
		out, err := s.copyContainer(src, dst.Type())
		if err != nil {
			return err
		}

		dst.Set(out)
		return nil

	case shape.ShapeSequence:
		return s.copySlice(dst, src)

	case shape.ShapeMap:
		return s.copyMap(dst, src)

	case shape.ShapeArray:
		return s.copyArray(dst, src)

	case shape.ShapeAggregate:
		return s.copyStruct(dst, src)

	case shape.ShapePointer:
		return s.copyPointer(dst, src)

	case shape.ShapeInterface:
		return s.copyInterface(dst, src)
	}
}

// registerInterior records every field or slot of dst as the copy of the
// matching field or slot of src, descending into structs and arrays held by
// value. It runs before any of them is copied, so a pointer into src
// resolves to dst wherever in the graph it is met.
func (s *session) registerInterior(dst, src reflect.Value) {
	if !s.c.features.Has(options.FeatureInteriorPointers) {
		return
	}

	switch src.Kind() {
	case reflect.Slice:
		// elements are addressable even when the header is not
		if dst.Len() < src.Len() {
			return
		}
	case reflect.Struct, reflect.Array:
		if !src.CanAddr() || !dst.CanAddr() {
			return
		}
	default:
		return
	}

	s.registerSlots(dst, src)
}

func (s *session) registerSlots(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Struct:
		t := src.Type()
		for i := range t.NumField() {
			if !t.Field(i).IsExported() && !s.c.features.Has(options.FeatureUnexported) {
				continue
			}

			s.registerSlot(writable(dst.Field(i)), exposed(src.Field(i)))
		}

	case reflect.Array, reflect.Slice:
		for i := range src.Len() {
			s.registerSlot(dst.Index(i), src.Index(i))
		}
	}
}

func (s *session) registerSlot(dst, src reflect.Value) {
	s.cache.Register(src.Addr(), dst.Addr())

	switch src.Kind() {
	case reflect.Struct, reflect.Array:
		s.registerSlots(dst, src)
	}
}
