package copier

import (
	"fmt"
	"reflect"
	"sync"

	"deepcopier/collection"
	"deepcopier/shape"
)

// ContainerFactory returns a new empty container.
type ContainerFactory func() Inserter

// Registry holds the initializers and container factories a Copier consults.
// It is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	initializers map[reflect.Type][]Initializer
	containers   map[reflect.Type]ContainerFactory
	defaults     map[shape.Category]ContainerFactory
}

// DefaultRegistry is used by copiers created without WithRegistry. Ordered
// containers fall back to collection.List and unordered ones to
// collection.Set; sorted containers have no default.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterDefaultContainer(shape.CategoryOrdered, func() Inserter { return collection.NewList[any]() })
	r.RegisterDefaultContainer(shape.CategoryUnordered, func() Inserter { return collection.NewSet[any]() })

	return r
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		initializers: make(map[reflect.Type][]Initializer),
		containers:   make(map[reflect.Type]ContainerFactory),
		defaults:     make(map[shape.Category]ContainerFactory),
	}
}

// RegisterInitializer parses fn with ParseInitializer and adds it to the
// initializers of the struct type it builds. Registration order is kept and
// breaks ties between initializers with the same number of parameters.
func (r *Registry) RegisterInitializer(fn any) error {
	in, err := ParseInitializer(fn)
	if err != nil {
		return fmt.Errorf("register initializer %T: %w", fn, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.initializers[in.Target] = append(r.initializers[in.Target], in)

	return nil
}

// MustRegisterInitializer is like RegisterInitializer but panics on error.
func (r *Registry) MustRegisterInitializer(fns ...any) {
	for _, fn := range fns {
		if err := r.RegisterInitializer(fn); err != nil {
			panic(err)
		}
	}
}

// Initializers returns the initializers registered for the struct type t.
func (r *Registry) Initializers(t reflect.Type) []Initializer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Initializer(nil), r.initializers[t]...)
}

// RegisterDefaultContainer sets the replacement used for containers of the
// given category whose own type has no factory and cannot spawn itself.
func (r *Registry) RegisterDefaultContainer(category shape.Category, factory ContainerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults[category] = factory
}

func (r *Registry) containerFactory(t reflect.Type) (ContainerFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.containers[t]
	return f, ok
}

func (r *Registry) defaultContainer(category shape.Category) (ContainerFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.defaults[category]
	return f, ok
}

// RegisterContainer sets the factory used to rebuild containers of type C.
func RegisterContainer[C Inserter](r *Registry, factory func() C) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.containers[reflect.TypeFor[C]()] = func() Inserter { return factory() }
}

// RegisterInitializer adds fn to DefaultRegistry.
func RegisterInitializer(fn any) error {
	return DefaultRegistry.RegisterInitializer(fn)
}
