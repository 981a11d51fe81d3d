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
	"github.com/wdamron/reify/types"
)

// IsSubtype reports whether sub is a subtype of super.
//
// Parameterizations of the same template are compared position-wise: an unresolved position of super
// matches anything, and resolved positions are compared according to the variance of the template's
// type-variable at that position. Types of different templates are compared nominally, after resolving
// the binding which sub assigns to super's template. Unions are matched literally at argument positions.
//
// Type-variables and nil types are malformed operands.
func (e *Engine) IsSubtype(sub, super types.Type) (bool, error) {
	if err := operand("subtype", sub); err != nil {
		return false, err
	}
	if err := operand("subtype", super); err != nil {
		return false, err
	}
	sub, err := e.Canonical(sub)
	if err != nil {
		return false, err
	}
	if super, err = e.Canonical(super); err != nil {
		return false, err
	}
	return e.subtype(sub, super)
}

// IsInstance reports whether an object is an instance of t.
//
// The object's class must derive from the template of t. The binding attached to the object at
// construction is then resolved for the template of t and compared position-wise with t's binding.
func (e *Engine) IsInstance(o *types.Object, t types.Type) (bool, error) {
	if o == nil {
		return false, &types.KindError{Op: "instance", Reason: "nil object"}
	}
	if err := operand("instance", t); err != nil {
		return false, err
	}
	t, err := e.Canonical(t)
	if err != nil {
		return false, err
	}
	return e.isInstance(o, t)
}

func (e *Engine) isInstance(o *types.Object, t types.Type) (bool, error) {
	if u, ok := t.(*types.Union); ok {
		for _, m := range u.Members() {
			if ok, err := e.isInstance(o, m); ok || err != nil {
				return ok, err
			}
		}
		return false, nil
	}
	origin := types.Origin(t)
	if origin == nil || !o.Class().IsSubclassOf(origin) {
		return false, nil
	}
	r, ok := t.(*types.Reified)
	if !ok {
		return true, nil
	}
	b, found, err := e.ancestorBinding(o.Class(), o.Binding(), origin)
	if err != nil || !found {
		return false, err
	}
	return e.MatchBindings(origin, b, r.Binding())
}

func operand(op string, t types.Type) error {
	switch t.(type) {
	case nil:
		return &types.KindError{Op: op, Reason: "nil type"}
	case *types.Var:
		return &types.KindError{Op: op, Type: t, Reason: "is a type-variable"}
	}
	return nil
}

// Subtype test for canonical operands.
func (e *Engine) subtype(sub, super types.Type) (bool, error) {
	if types.Identical(sub, super) {
		return true, nil
	}
	if u, ok := sub.(*types.Union); ok {
		for _, m := range u.Members() {
			if ok, err := e.subtype(m, super); !ok || err != nil {
				return false, err
			}
		}
		return true, nil
	}
	if u, ok := super.(*types.Union); ok {
		for _, m := range u.Members() {
			if ok, err := e.subtype(sub, m); ok || err != nil {
				return ok, err
			}
		}
		return false, nil
	}
	switch super.(type) {
	case *types.Var:
		return true, nil
	case *types.App:
		r, err := e.Canonical(super)
		if err != nil {
			return false, err
		}
		return e.subtype(sub, r)
	}
	if _, ok := sub.(*types.Var); ok {
		return false, nil
	}

	subOrigin, superOrigin := types.Origin(sub), types.Origin(super)
	if subOrigin == nil || superOrigin == nil || !subOrigin.IsSubclassOf(superOrigin) {
		return false, nil
	}
	r, ok := super.(*types.Reified)
	if !ok {
		return true, nil
	}
	var start types.Binding
	switch sub := sub.(type) {
	case *types.Reified:
		start = sub.Binding()
	case *types.App:
		start = sub.Args
	}
	b, found, err := e.ancestorBinding(subOrigin, start, superOrigin)
	if err != nil || !found {
		return false, err
	}
	return e.MatchBindings(superOrigin, b, r.Binding())
}

// MatchBindings compares two bindings of a template's signature position-wise.
//
// An unresolved entry of super matches anything. Resolved entries of super are matched according to
// the variance of the template's type-variable at each position. Both bindings must have one entry per
// position of the signature.
func (e *Engine) MatchBindings(template *types.Class, sub, super types.Binding) (bool, error) {
	n := template.NumParams()
	if sub.Len() != n {
		return false, &types.ArityError{Type: template.Name(), Have: sub.Len(), Want: n}
	}
	if super.Len() != n {
		return false, &types.ArityError{Type: template.Name(), Have: super.Len(), Want: n}
	}
	for i := 0; i < n; i++ {
		ok, err := e.matchEntry(template.Param(i).Variance(), sub.Get(i), super.Get(i))
		if !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

func (e *Engine) matchEntry(v types.Variance, l, r types.Type) (bool, error) {
	if _, ok := r.(*types.Var); ok {
		return true, nil
	}
	if r.IsGeneric() {
		return e.matchPattern(v, l, r)
	}
	if _, ok := l.(*types.Var); ok {
		return false, nil
	}
	switch v {
	case types.Covariant:
		return e.covers(r, l)
	case types.Contravariant:
		return e.covers(l, r)
	}
	return types.Identical(l, r), nil
}

// Report whether sup covers sub. A union is covered only by a union containing each of its members;
// a union never covers a type which is not literally one of its members.
func (e *Engine) covers(sup, sub types.Type) (bool, error) {
	if _, ok := sup.(*types.Union); !ok {
		return e.subtype(sub, sup)
	}
	members := []types.Type{sub}
	if u, ok := sub.(*types.Union); ok {
		members = u.Members()
	}
	for _, m := range members {
		if !literal(m, sup) {
			return false, nil
		}
	}
	return true, nil
}

// Match an entry against a pattern which contains type-variables. Type-variables within the pattern
// are wildcards. Covariant patterns of applied types are matched by subtyping; otherwise the entry must
// have the pattern's shape.
func (e *Engine) matchPattern(v types.Variance, l, r types.Type) (bool, error) {
	switch r := r.(type) {
	case *types.Var:
		return true, nil

	case *types.Union:
		members := []types.Type{l}
		if u, ok := l.(*types.Union); ok {
			members = u.Members()
		}
		for _, m := range members {
			matched := false
			for _, alt := range r.Members() {
				ok, err := e.matchPattern(types.Invariant, m, alt)
				if err != nil {
					return false, err
				}
				if ok {
					matched = true
					break
				}
			}
			if !matched {
				return false, nil
			}
		}
		return true, nil

	case *types.Reified:
		if v == types.Covariant {
			return e.subtype(l, r)
		}
		return e.sameShape(l, r.Template(), r.Binding())

	case *types.App:
		if v == types.Covariant {
			return e.subtype(l, r)
		}
		return e.sameShape(l, r.Func, r.Args)
	}
	if _, ok := l.(*types.Var); ok {
		return false, nil
	}
	return types.Identical(l, r), nil
}

func (e *Engine) sameShape(l types.Type, template *types.Class, pattern types.Binding) (bool, error) {
	var b types.Binding
	switch l := l.(type) {
	case *types.Reified:
		b = l.Binding()
	case *types.App:
		b = l.Args
	default:
		return false, nil
	}
	if types.Origin(l) != template || b.Len() != pattern.Len() {
		return false, nil
	}
	for i := 0; i < b.Len(); i++ {
		ok, err := e.matchPattern(types.Invariant, b.Get(i), pattern.Get(i))
		if !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

// Report whether t is literally set, or one of the members of set if set is a union.
func literal(t, set types.Type) bool {
	if u, ok := set.(*types.Union); ok {
		return u.Contains(t)
	}
	return types.Identical(t, set)
}
