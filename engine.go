// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package reify

import (
	"log/slog"

	"github.com/wdamron/reify/internal/cache"
	"github.com/wdamron/reify/types"
)

// DefaultFunc supplies a type for a type-variable when an argument list under-specifies a signature.
// Returning false leaves the position unresolved.
type DefaultFunc func(*types.Var) (types.Type, bool)

// DeclaredDefault returns the default declared with the type-variable, if any.
func DeclaredDefault(tv *types.Var) (types.Type, bool) {
	d := tv.Default()
	return d, d != nil
}

// NoDefaults leaves every under-specified position unresolved.
func NoDefaults(*types.Var) (types.Type, bool) { return nil, false }

// Option configures an Engine.
type Option func(*Engine)

// WithDefaults sets the defaulting policy consulted for under-specified argument lists.
// By default, declared defaults are used.
func WithDefaults(f DefaultFunc) Option {
	return func(e *Engine) {
		if f == nil {
			f = NoDefaults
		}
		e.defaults = f
	}
}

// WithLogger sets the logger for debug events (reification and cache eviction). By default, nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// CacheStats is a snapshot of the canonicalization cache counters.
type CacheStats = cache.Stats

// Engine reifies parameterized types and tests values and types against them.
//
// An engine may be used concurrently. Canonically equal parameterizations of a template reified
// through the same engine are the same object for as long as any of them is reachable.
type Engine struct {
	defaults DefaultFunc
	log      *slog.Logger
	cache    *cache.Cache[types.Reified]
}

// Create a new engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{defaults: DeclaredDefault, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(e)
	}
	e.cache = cache.New[types.Reified](e.evicted)
	return e
}

func (e *Engine) evicted(key string) { e.log.Debug("evicted reified type", "key", key) }

// CacheStats returns a snapshot of the canonicalization cache counters.
func (e *Engine) CacheStats() CacheStats { return e.cache.Stats() }

// Purge removes cache entries for reified types which are no longer reachable, and returns the number removed.
// Entries are also removed automatically after collection; Purge makes removal deterministic.
func (e *Engine) Purge() int { return e.cache.Purge() }

// Reify returns the canonical reified type for a template (or partial type) and type-arguments.
//
// If t is a template, args are bound positionally; under-specified positions are resolved through the
// engine's defaulting policy or left unresolved. If t is a partial type, args fill its unresolved
// positions from left to right. The result is partial if any position remains unresolved.
func (e *Engine) Reify(t types.Type, args ...types.Type) (*types.Reified, error) {
	origin, b, err := e.Resolve(t, args...)
	if err != nil {
		return nil, err
	}
	return e.reify(origin, b)
}

// Canonical converts symbolic applications within t to canonical reified types. Applications are
// resolved and validated; type-variables are returned unchanged.
func (e *Engine) Canonical(t types.Type) (types.Type, error) {
	switch t := t.(type) {
	case nil:
		return nil, &types.KindError{Op: "canonical", Reason: "nil type"}
	case *types.App:
		r, err := e.Reify(t)
		if err != nil {
			return nil, err
		}
		return r, nil
	case *types.Union:
		members := t.Members()
		for i, m := range members {
			c, err := e.Canonical(m)
			if err != nil {
				return nil, err
			}
			members[i] = c
		}
		return types.NewUnion(members...), nil
	}
	return t, nil
}

// Canonicalize a symbolic binding and fetch (or create) the reified type for it.
func (e *Engine) reify(origin *types.Class, b types.Binding) (*types.Reified, error) {
	if b.Len() != origin.NumParams() {
		return nil, &types.ArityError{Type: origin.Name(), Have: b.Len(), Want: origin.NumParams()}
	}
	canon := types.NewBindingBuilder()
	for i := 0; i < b.Len(); i++ {
		t, err := e.canonicalEntry(b.Get(i), origin.Param(i))
		if err != nil {
			return nil, err
		}
		canon.Append(t)
	}
	binding := canon.Build()
	return e.cache.GetOrCreate(types.AppKey(origin, binding), func() (*types.Reified, error) {
		r := types.NewReified(origin, binding)
		e.log.Debug("reified type", "type", r.String(), "flavor", r.Flavor().String())
		return r, nil
	})
}

// An unresolved position is represented by the signature's own type-variable, so the canonical
// binding carries no identity from the caller's type-variables. Type-variables within a union are
// replaced by the position's placeholders in order of appearance.
func (e *Engine) canonicalEntry(t types.Type, param *types.Var) (types.Type, error) {
	switch t := t.(type) {
	case *types.Var:
		return param, nil
	case *types.Union:
		members := t.Members()
		n := 0
		for i, m := range members {
			if _, ok := m.(*types.Var); ok {
				members[i] = param.Placeholder(n)
				n++
				continue
			}
			c, err := e.canonical(m)
			if err != nil {
				return nil, err
			}
			members[i] = c
		}
		return types.NewUnion(members...), nil
	}
	return e.canonical(t)
}

func (e *Engine) canonical(t types.Type) (types.Type, error) {
	switch t := t.(type) {
	case *types.App:
		r, err := e.reify(t.Func, t.Args)
		if err != nil {
			return nil, err
		}
		return r, nil
	case *types.Union:
		members := t.Members()
		for i, m := range members {
			c, err := e.canonical(m)
			if err != nil {
				return nil, err
			}
			members[i] = c
		}
		return types.NewUnion(members...), nil
	}
	return t, nil
}

func (e *Engine) canonicalBinding(b types.Binding) (types.Binding, error) {
	builder := types.NewBindingBuilder()
	for i := 0; i < b.Len(); i++ {
		t := b.Get(i)
		if !t.IsGeneric() {
			c, err := e.canonical(t)
			if err != nil {
				return types.EmptyBinding, err
			}
			t = c
		}
		builder.Append(t)
	}
	return builder.Build(), nil
}

// New constructs an object of a class or concrete type, with the type's binding attached.
//
// Constructing an object of a partial type fails with an *types.AbstractError. Constructing an object
// of an unparameterized template attaches the binding produced by the defaulting policy.
func (e *Engine) New(t types.Type) (*types.Object, error) {
	switch t := t.(type) {
	case *types.Reified:
		if t.IsPartial() {
			return nil, &types.AbstractError{Type: t, Positions: t.Binding().Unresolved()}
		}
		return types.NewObject(t, t.Binding()), nil
	case *types.App:
		r, err := e.Reify(t)
		if err != nil {
			return nil, err
		}
		return e.New(r)
	case *types.Class:
		if !t.IsTemplate() {
			return types.NewObject(t, types.EmptyBinding), nil
		}
		b, err := e.resolveTemplate(t, nil)
		if err != nil {
			return nil, err
		}
		return types.NewObject(t, b), nil
	case nil:
		return nil, &types.KindError{Op: "new", Reason: "nil type"}
	}
	return nil, &types.KindError{Op: "new", Type: t, Reason: "cannot be instantiated"}
}
