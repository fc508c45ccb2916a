package copier

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"deepcopier/utils"
)

var (
	ErrInitializerNotAFunction  = errors.New("provided initializer is not a function")
	ErrNotAnInitializer         = errors.New("provided function is not a recognizable initializer")
	ErrInitializerDoublePointer = errors.New("initializer function does not support double pointers")

	errNilInstance = errors.New("initializer returned a nil instance")
)

// Initializer is a function registered to build new instances of a struct type.
type Initializer struct {
	Target         reflect.Type   // struct type the function builds
	Params         []reflect.Type // parameter types in declaration order
	PackageAlias   string
	Name           string
	ReturnsPointer bool
	HasErr         bool

	fn reflect.Value
}

// ParseInitializer inspects the provided function and returns an Initializer
// if it is a valid initializer function.
//
// Supports interfaces:
//   - func(args...) (dst T)
//   - func(args...) (dst *T)
//   - func(args...) (dst T, error)
//   - func(args...) (dst *T, error)
//
// where T is a struct type. Variadic functions are rejected.
func ParseInitializer(fn any) (Initializer, error) {
	if fn == nil {
		return Initializer{}, ErrInitializerNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Initializer{}, ErrInitializerNotAFunction
	}

	if fnVal.IsNil() || fnType.IsVariadic() || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return Initializer{}, ErrNotAnInitializer
	}

	dst := fnType.Out(0)
	returnsPointer := false
	if dst.Kind() == reflect.Ptr {
		if dst.Elem().Kind() == reflect.Ptr {
			return Initializer{}, ErrInitializerDoublePointer
		}

		dst = dst.Elem()
		returnsPointer = true
	}

	if dst.Kind() != reflect.Struct {
		return Initializer{}, ErrNotAnInitializer
	}

	in := Initializer{
		Target:         dst,
		Params:         make([]reflect.Type, fnType.NumIn()),
		ReturnsPointer: returnsPointer,
		fn:             fnVal,
	}

	for i := range in.Params {
		in.Params[i] = fnType.In(i)
	}

	if fnType.NumOut() == 2 {
		if !isError(fnType.Out(1)) {
			return Initializer{}, ErrNotAnInitializer
		}

		in.HasErr = true
	}

	// Get the function object from the pointer
	if fnPC := runtime.FuncForPC(fnVal.Pointer()); fnPC != nil {
		pkgPath, name := utils.Unpack2(splitFuncName(fnPC.Name()))
		in.Name = name
		in.PackageAlias = utils.Second(path.Split(pkgPath))
	}

	return in, nil
}

// Arity returns the number of parameters the initializer takes.
func (in Initializer) Arity() int {
	return len(in.Params)
}

func (in Initializer) String() string {
	if in.PackageAlias == "" {
		return in.Name
	}

	return in.PackageAlias + "." + in.Name
}

// call invokes the initializer and always returns a pointer to the new instance.
func (in Initializer) call(args []reflect.Value) (ptr reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("initializer %s panicked: %v", in, r)
		}
	}()

	out := in.fn.Call(args)
	if in.HasErr {
		if e, _ := out[1].Interface().(error); e != nil {
			return reflect.Value{}, fmt.Errorf("initializer %s: %w", in, e)
		}
	}

	res := out[0]
	if in.ReturnsPointer {
		if res.IsNil() {
			return reflect.Value{}, errNilInstance
		}

		return res, nil
	}

	ptr = reflect.New(in.Target)
	ptr.Elem().Set(res)

	return ptr, nil
}

// pick selects the parameterless initializer when there is one, otherwise
// the one with the most parameters; ties keep registration order.
func pick(inits []Initializer) (Initializer, bool) {
	best := -1
	for i, in := range inits {
		if in.Arity() == 0 {
			return in, true
		}

		if best < 0 || in.Arity() > inits[best].Arity() {
			best = i
		}
	}

	if best < 0 {
		return Initializer{}, false
	}

	return inits[best], true
}

// splitFuncName splits a runtime function name like
// "deepcopier/internal/fixture.NewAgent" into package path and name.
func splitFuncName(full string) []string {
	slash := strings.LastIndexByte(full, '/')
	dot := strings.IndexByte(full[slash+1:], '.')
	if dot < 0 {
		return []string{"", full}
	}

	cut := slash + 1 + dot
	return []string{full[:cut], full[cut+1:]}
}
