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
	"github.com/wdamron/reify/internal/typeutil"
	"github.com/wdamron/reify/types"
)

// AncestorBinding resolves the binding which sub assigns to the signature of an ancestor template.
//
// The snapshot bindings captured at each derivation step from sub to ancestor are composed by
// type-variable identity. Entries are either resolved types or type-variables of sub's own signature.
// If sub is a reified type or application, its own binding is substituted as well.
//
// If ancestor is not an ancestor of sub (or sub itself), the returned flag is false and the error is nil.
func (e *Engine) AncestorBinding(sub types.Type, ancestor *types.Class) (types.Binding, bool, error) {
	if ancestor == nil {
		return types.EmptyBinding, false, &types.KindError{Op: "ancestor", Reason: "nil ancestor"}
	}
	origin, start, err := e.start(sub)
	if err != nil {
		return types.EmptyBinding, false, err
	}
	return e.ancestorBinding(origin, start, ancestor)
}

// ResolvedAncestorBinding is AncestorBinding with each remaining type-variable replaced by the type
// supplied by the defaulting policy, if any.
func (e *Engine) ResolvedAncestorBinding(sub types.Type, ancestor *types.Class) (types.Binding, bool, error) {
	b, found, err := e.AncestorBinding(sub, ancestor)
	if err != nil || !found || b.IsResolved() {
		return b, found, err
	}
	defaults := types.NewVarMap()
	for _, tv := range types.BindingFreeVars(b) {
		if d, ok := e.defaults(tv); ok && d != nil {
			defaults = defaults.Set(tv, d)
		}
	}
	b, err = e.canonicalBinding(typeutil.SubstBinding(b, defaults))
	return b, err == nil, err
}

// TypeVarMatching maps each type-variable of an ancestor template's signature to the type which sub
// assigns to it. Nested applications and unions are substituted structurally; unions are flattened.
func (e *Engine) TypeVarMatching(ancestor *types.Class, sub types.Type) (types.VarMap, bool, error) {
	b, found, err := e.AncestorBinding(sub, ancestor)
	if err != nil || !found {
		return types.EmptyVarMap, found, err
	}
	return types.BindingMap(ancestor.Params(), b), true, nil
}

// InheritancePath returns the derivation chain from sub to ancestor, starting with sub and ending with
// ancestor. If withGenerics is true, each parameterized base is listed before its template.
func (e *Engine) InheritancePath(sub, ancestor *types.Class, withGenerics bool) ([]types.Type, bool) {
	edges, found := sub.PathTo(ancestor)
	if !found {
		return nil, false
	}
	path := make([]types.Type, 1, 2*len(edges)+1)
	path[0] = sub
	for _, edge := range edges {
		if withGenerics {
			if r, ok := edge.Base.Type.(*types.Reified); ok {
				path = append(path, r)
			}
		}
		path = append(path, edge.Base.Origin)
	}
	return path, true
}

func (e *Engine) start(sub types.Type) (*types.Class, types.Binding, error) {
	switch sub := sub.(type) {
	case *types.Class:
		return sub, types.EmptyBinding, nil
	case *types.Reified:
		return sub.Template(), sub.Binding(), nil
	case *types.App:
		return e.Resolve(sub)
	case nil:
		return nil, types.EmptyBinding, &types.KindError{Op: "ancestor", Reason: "nil type"}
	}
	return nil, types.EmptyBinding, &types.KindError{Op: "ancestor", Type: sub, Reason: "has no ancestors"}
}

// Compose snapshot bindings from ancestor down to sub, then substitute sub's own binding, if any.
func (e *Engine) ancestorBinding(sub *types.Class, start types.Binding, ancestor *types.Class) (types.Binding, bool, error) {
	edges, found := sub.PathTo(ancestor)
	if !found {
		return types.EmptyBinding, false, nil
	}
	b := types.IdentityBinding(ancestor.Params())
	for i := len(edges) - 1; i >= 0; i-- {
		base := edges[i].Base
		b = typeutil.SubstBinding(b, types.BindingMap(base.Origin.Params(), base.Args))
	}
	if start.Len() > 0 {
		b = typeutil.SubstBinding(b, types.BindingMap(sub.Params(), start))
	}
	b, err := e.canonicalBinding(b)
	if err != nil {
		return types.EmptyBinding, false, err
	}
	return b, true, nil
}
