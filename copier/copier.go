package copier

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"deepcopier/diagnostic"
	"deepcopier/options"
)

// Copier produces deep copies of object graphs. It is safe for concurrent
// use: every top-level call owns its cycle cache, and only type plans and
// the registry are shared.
type Copier struct {
	logger   *zap.Logger
	features options.FeatureEnum
	maxDepth int
	registry *Registry

	mu    sync.RWMutex
	plans map[reflect.Type]*Plan
}

// Option configures a Copier.
type Option func(*Copier)

// WithLogger sets the logger used for per-dispatch debug records and call
// summaries.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Copier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFeatures replaces the enabled feature set. All features are on by default.
func WithFeatures(features options.FeatureEnum) Option {
	return func(c *Copier) {
		c.features = features
	}
}

// WithMaxDepth limits the nesting depth of a copied graph; 0 means no limit.
func WithMaxDepth(depth int) Option {
	return func(c *Copier) {
		c.maxDepth = max(depth, 0)
	}
}

// WithRegistry sets the initializer and container registry. DefaultRegistry
// is used otherwise.
func WithRegistry(r *Registry) Option {
	return func(c *Copier) {
		if r != nil {
			c.registry = r
		}
	}
}

// New creates a Copier.
func New(opts ...Option) *Copier {
	c := &Copier{
		logger:   zap.NewNop(),
		features: options.FeatureAll,
		registry: DefaultRegistry,
		plans:    make(map[reflect.Type]*Plan),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var std = New()

// Default returns the copier used by DeepCopy and MustCopy.
func Default() *Copier {
	return std
}

// Registry returns the registry the copier consults.
func (c *Copier) Registry() *Registry {
	return c.registry
}

// Features returns the enabled features.
func (c *Copier) Features() options.FeatureEnum {
	return c.features
}

// CopyValue deep-copies v. The returned report carries the warnings and
// statistics of the call even when it fails.
func (c *Copier) CopyValue(v reflect.Value) (reflect.Value, diagnostic.Report, error) {
	if !v.IsValid() {
		return v, diagnostic.Report{}, nil
	}

	t := v.Type()
	s := c.newSession(t)
	start := time.Now()

	out := reflect.New(t).Elem()
	s.registerInterior(out, v)

	var err error
	if v.CanInterface() {
		err = s.assign(out, v)
	} else {
		err = s.fail(ErrFieldAccess, t, errors.New("value obtained through an unexported field"))
	}

	s.report.Stats.CacheHits = s.cache.Hits()
	s.report.Stats.CacheSize = s.cache.Len()
	s.report.Stats.Elapsed = time.Since(start)
	s.cache.Clear()

	if err != nil {
		c.logger.Debug("deep copy failed",
			zap.Stringer("type", t),
			zap.Error(err),
		)
		return reflect.Value{}, s.report, fmt.Errorf("deep copy of %s: %w", t, err)
	}

	c.logger.Debug("deep copy done",
		zap.Stringer("type", t),
		zap.Int("visits", s.report.Stats.Total()),
		zap.Int("cache_size", s.report.Stats.CacheSize),
		zap.Int("cache_hits", s.report.Stats.CacheHits),
		zap.Int("warnings", len(s.report.Warnings)),
		zap.Duration("elapsed", s.report.Stats.Elapsed),
	)

	return out, s.report, nil
}

// Copy deep-copies v and returns the copy with the same dynamic type.
func (c *Copier) Copy(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	out, _, err := c.CopyValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}

	return out.Interface(), nil
}

// CopyReport deep-copies v with c and returns the report of the call.
func CopyReport[T any](c *Copier, v T) (T, diagnostic.Report, error) {
	var zero T

	out, report, err := c.CopyValue(reflect.ValueOf(&v).Elem())
	if err != nil {
		return zero, report, err
	}

	res, _ := out.Interface().(T)

	return res, report, nil
}

// CopyWith deep-copies v with c.
func CopyWith[T any](c *Copier, v T) (T, error) {
	res, _, err := CopyReport(c, v)
	return res, err
}

// DeepCopy deep-copies v with the default copier.
func DeepCopy[T any](v T) (T, error) {
	return CopyWith(std, v)
}

// MustCopy is like DeepCopy but panics on error.
func MustCopy[T any](v T) T {
	res, err := DeepCopy(v)
	if err != nil {
		panic(err)
	}

	return res
}
