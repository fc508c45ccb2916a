package copier

import (
	"fmt"
	"reflect"
	"strings"

	"deepcopier/diagnostic"
	"deepcopier/options"
	"deepcopier/shape"
)

// FieldDescriptor describes one declared field of a struct type.
type FieldDescriptor struct {
	Index    int
	Name     string
	Type     reflect.Type
	Shape    shape.Shape
	Exported bool
	Nilable  bool
}

func (f FieldDescriptor) String() string {
	access := "exported"
	if !f.Exported {
		access = "unexported"
	}

	return fmt.Sprintf("%d %s %s %s %s", f.Index, f.Name, f.Type, f.Shape, access)
}

// Plan is the field descriptor table of a struct type, built once per type.
type Plan struct {
	Type   reflect.Type
	Fields []FieldDescriptor
}

func (p *Plan) String() string {
	var b strings.Builder
	b.WriteString(p.Type.String())

	for _, f := range p.Fields {
		b.WriteString("\n\t")
		b.WriteString(f.String())
	}

	return b.String()
}

func buildPlan(t reflect.Type) *Plan {
	p := &Plan{Type: t, Fields: make([]FieldDescriptor, 0, t.NumField())}

	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}

		p.Fields = append(p.Fields, FieldDescriptor{
			Index:    i,
			Name:     sf.Name,
			Type:     sf.Type,
			Shape:    classify(sf.Type),
			Exported: sf.IsExported(),
			Nilable:  shape.IsNilable(sf.Type.Kind()),
		})
	}

	return p
}

// Plan returns the cached field descriptor table of the struct type t.
func (c *Copier) Plan(t reflect.Type) (*Plan, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct type", t)
	}

	c.mu.RLock()
	p, ok := c.plans[t]
	c.mu.RUnlock()

	if ok {
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok = c.plans[t]; !ok {
		p = buildPlan(t)
		c.plans[t] = p
	}

	return p, nil
}

// copyStruct copies a struct held by value.
func (s *session) copyStruct(dst, src reflect.Value) error {
	inst, err := s.instantiate(src.Type(), src)
	if err != nil {
		return err
	}

	dst.Set(inst.Elem())

	return s.populate(dst, src)
}

// instantiate returns a pointer to a new instance of the struct type t.
//
// A registered parameterless initializer is preferred. Otherwise the
// initializer with the most parameters is called with the fields of src in
// declaration order: parameters are matched to fields by position only,
// never by name, and every such call leaves a warning in the report.
// Without registered initializers the zero value is used.
func (s *session) instantiate(t reflect.Type, src reflect.Value) (reflect.Value, error) {
	if !s.c.features.Has(options.FeatureInitializers) {
		return reflect.New(t), nil
	}

	in, ok := pick(s.c.registry.Initializers(t))
	if !ok {
		return reflect.New(t), nil
	}

	var args []reflect.Value
	if in.Arity() > 0 {
		var err error
		if args, err = s.positionalArgs(in, src); err != nil {
			return reflect.Value{}, err
		}

		s.report.AddWarning(diagnostic.CodePositionalInitializer,
			fmt.Sprintf("%s called with %d fields matched by position", in, in.Arity()),
			t.String(), s.path.String())
	}

	ptr, err := in.call(args)
	if err != nil {
		return reflect.Value{}, s.fail(ErrConstruction, t, err)
	}

	s.report.Stats.Initializers++

	return ptr, nil
}

func (s *session) positionalArgs(in Initializer, src reflect.Value) ([]reflect.Value, error) {
	t := src.Type()
	if t.NumField() < in.Arity() {
		return nil, s.fail(ErrConstruction, t,
			fmt.Errorf("%s takes %d parameters, %s has %d fields", in, in.Arity(), t, t.NumField()))
	}

	src = addressable(src)
	args := make([]reflect.Value, in.Arity())

	for i, param := range in.Params {
		sf := t.Field(i)
		if !sf.IsExported() && !s.c.features.Has(options.FeatureUnexported) {
			return nil, s.fail(ErrFieldAccess, t, fmt.Errorf("unexported field %s", sf.Name))
		}

		if !sf.Type.AssignableTo(param) {
			return nil, s.fail(ErrConstruction, t,
				fmt.Errorf("field %s of type %s does not fit parameter %d of %s (%s)", sf.Name, sf.Type, i, in, param))
		}

		args[i] = exposed(src.Field(i))
	}

	return args, nil
}

// populate copies every present field of src over the matching field of dst.
// dst must be addressable.
func (s *session) populate(dst, src reflect.Value) error {
	plan, err := s.c.Plan(src.Type())
	if err != nil {
		return s.fail(ErrFieldAccess, src.Type(), err)
	}

	src = addressable(src)

	for _, f := range plan.Fields {
		sf := src.Field(f.Index)
		if isAbsent(sf) {
			continue
		}

		s.path.push(fieldSegment(f.Name))

		if !f.Exported && !s.c.features.Has(options.FeatureUnexported) {
			return s.fail(ErrFieldAccess, f.Type, fmt.Errorf("unexported field %s", f.Name))
		}

		if err := s.assign(writable(dst.Field(f.Index)), exposed(sf)); err != nil {
			return err
		}

		s.path.pop()
	}

	return nil
}
